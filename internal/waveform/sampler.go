package waveform

import (
	"errors"
	"fmt"
	"math"
)

// Bit string errors.
var (
	// ErrEmptyBits indicates a zero-length bit string.
	ErrEmptyBits = errors.New("waveform: bit string is empty")

	// ErrInvalidBit indicates a character other than '0' or '1'.
	ErrInvalidBit = errors.New("waveform: bit string may only contain '0' and '1'")
)

// Sine samples amp*sin(2*pi*freq*t) over Duration seconds at samplesPerSec.
// The caller is responsible for rejecting non-positive freq and amp.
func Sine(freq, amp float64, samplesPerSec int) []Point {
	total := int(Duration * float64(samplesPerSec))
	inv := 1.0 / float64(samplesPerSec)
	twoPiFreq := 2 * math.Pi * freq

	pts := make([]Point, total)
	for i := range total {
		t := float64(i) * inv
		pts[i] = Point{X: t, Y: amp * math.Sin(twoPiFreq*t)}
	}
	return pts
}

// ValidateBits checks that bits is non-empty and only holds '0' and '1'.
func ValidateBits(bits string) error {
	if bits == "" {
		return ErrEmptyBits
	}
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return fmt.Errorf("%w: found %q at position %d", ErrInvalidBit, bits[i], i)
		}
	}
	return nil
}

// BitSteps renders bits as a stair-step reference trace: a start and end
// point per bit, each bit lasting BitDuration, at the bit's value.
// bits must already have passed ValidateBits.
func BitSteps(bits string) []Point {
	pts := make([]Point, 0, 2*len(bits))
	for i := 0; i < len(bits); i++ {
		y := BitValue(bits[i])
		pts = append(pts,
			Point{X: float64(i) * BitDuration, Y: y},
			Point{X: float64(i+1) * BitDuration, Y: y},
		)
	}
	return pts
}

// BitValue maps '1' to 1 and anything else to 0.
func BitValue(b byte) float64 {
	if b == '1' {
		return 1
	}
	return 0
}
