// Package linecode maps bit strings to baseband voltage levels.
//
// Every coder walks the bits once, left to right, and renders a stair-step
// trace with two points per bit (four for the Manchester family, which
// switch level mid-bit). Substitution codes advance their cursor past the
// whole substituted block. Running state lives only for one call.
package linecode

import (
	"strings"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// Levels.
const (
	high = 1.0
	low  = -1.0
	zero = 0.0
)

// Runs of zeros replaced by the substitution codes.
const (
	b8zsRun = "00000000"
	hdb3Run = "0000"
)

// trace accumulates a stair-step signal.
type trace []waveform.Point

// hold keeps level v for the whole of bit i.
func (tr *trace) hold(i int, v float64) {
	*tr = append(*tr,
		waveform.Point{X: float64(i) * waveform.BitDuration, Y: v},
		waveform.Point{X: float64(i+1) * waveform.BitDuration, Y: v},
	)
}

// split holds first for the first half of bit i and second for the rest.
func (tr *trace) split(i int, first, second float64) {
	start := float64(i) * waveform.BitDuration
	mid := (float64(i) + 0.5) * waveform.BitDuration
	end := float64(i+1) * waveform.BitDuration
	*tr = append(*tr,
		waveform.Point{X: start, Y: first},
		waveform.Point{X: mid, Y: first},
		waveform.Point{X: mid, Y: second},
		waveform.Point{X: end, Y: second},
	)
}

func newTrace(bits string, pointsPerBit int) trace {
	return make(trace, 0, pointsPerBit*len(bits))
}

// NRZL sends +1 for '0' and -1 for '1'.
func NRZL(bits string) []waveform.Point {
	tr := newTrace(bits, 2)
	for i := 0; i < len(bits); i++ {
		v := high
		if bits[i] == '1' {
			v = low
		}
		tr.hold(i, v)
	}
	return tr
}

// NRZI starts at +1 and inverts the level on every '1'.
func NRZI(bits string) []waveform.Point {
	tr := newTrace(bits, 2)
	level := high
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			level = -level
		}
		tr.hold(i, level)
	}
	return tr
}

// Manchester sends '0' as high-to-low and '1' as low-to-high.
func Manchester(bits string) []waveform.Point {
	tr := newTrace(bits, 4)
	for i := 0; i < len(bits); i++ {
		if bits[i] == '0' {
			tr.split(i, high, low)
		} else {
			tr.split(i, low, high)
		}
	}
	return tr
}

// DifferentialManchester always transitions mid-bit and additionally
// inverts at the start of every '0'. The level starts at +1.
func DifferentialManchester(bits string) []waveform.Point {
	tr := newTrace(bits, 4)
	level := high
	for i := 0; i < len(bits); i++ {
		if bits[i] == '0' {
			level = -level
		}
		tr.split(i, level, -level)
		level = -level
	}
	return tr
}

// AMI sends '0' as 0 V and each '1' with the opposite polarity of the
// previous one, the first being +1.
func AMI(bits string) []waveform.Point {
	return alternateMarks(bits, '1')
}

// Pseudoternary is AMI with the roles of '0' and '1' swapped.
func Pseudoternary(bits string) []waveform.Point {
	return alternateMarks(bits, '0')
}

func alternateMarks(bits string, mark byte) []waveform.Point {
	tr := newTrace(bits, 2)
	polarity := low
	for i := 0; i < len(bits); i++ {
		v := zero
		if bits[i] == mark {
			polarity = -polarity
			v = polarity
		}
		tr.hold(i, v)
	}
	return tr
}

// B8ZS is AMI except that eight zeros starting at the cursor are replaced
// by 000VB0VB, where V repeats the last mark's polarity (a bipolar
// violation) and B is its opposite. The last polarity becomes B.
func B8ZS(bits string) []waveform.Point {
	tr := newTrace(bits, 2)
	polarity := low
	for i := 0; i < len(bits); {
		if strings.HasPrefix(bits[i:], b8zsRun) {
			v, b := polarity, -polarity
			for j, level := range [...]float64{zero, zero, zero, v, b, zero, v, b} {
				tr.hold(i+j, level)
			}
			polarity = b
			i += len(b8zsRun)
			continue
		}

		v := zero
		if bits[i] == '1' {
			polarity = -polarity
			v = polarity
		}
		tr.hold(i, v)
		i++
	}
	return tr
}

// HDB3 is AMI except that four zeros starting at the cursor are replaced
// depending on how many marks were sent since the last substitution:
// 000V after an even count, B00V after an odd one. V repeats the running
// polarity in the even case; in the odd case B inverts it and V equals B.
// The mark count restarts after each substitution.
func HDB3(bits string) []waveform.Point {
	tr := newTrace(bits, 2)
	polarity := low
	marks := 0
	for i := 0; i < len(bits); {
		if strings.HasPrefix(bits[i:], hdb3Run) {
			var pattern [4]float64
			if marks%2 == 0 {
				pattern = [4]float64{zero, zero, zero, polarity}
			} else {
				b := -polarity
				pattern = [4]float64{b, zero, zero, b}
				polarity = b
			}
			for j, level := range pattern {
				tr.hold(i+j, level)
			}
			marks = 0
			i += len(hdb3Run)
			continue
		}

		v := zero
		if bits[i] == '1' {
			polarity = -polarity
			v = polarity
			marks++
		}
		tr.hold(i, v)
		i++
	}
	return tr
}
