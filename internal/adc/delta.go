package adc

import (
	"github.com/toprakmurat/SignalSculptor/internal/mathutil"
	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

const (
	// approxLimit bounds the running approximation to +-approxLimit*amp.
	approxLimit = 1.5

	// holdOffset is how far before each tick the previous level is repeated,
	// so the rendered output reads as hold-then-jump.
	holdOffset = 0.001
)

// Delta encodes signal with one bit per tick. The running approximation
// starts at zero and moves by amp*stepSize toward the input on every tick,
// clamped to +-1.5*amp.
//
// transmitted holds the bit per tick. output is a staircase of the
// approximation: it starts at the origin, holds the previous level until
// just before each tick, and is extended to the signal's last sample time.
// Requires amp > 0, samplingRate > 0 and 0 < stepSize <= 1.
func Delta(signal []waveform.Point, amp, samplingRate, stepSize float64) (transmitted, output []waveform.Point) {
	_, end := waveform.Span(signal)
	delta := amp * stepSize
	lo, hi := -amp*approxLimit, amp*approxLimit

	approx := 0.0
	output = append(output, waveform.Point{X: 0, Y: approx})

	for t := range Ticks(end, samplingRate) {
		v := waveform.At(signal, t)

		bit := 0.0
		if v > approx {
			bit = 1
		}
		transmitted = append(transmitted, waveform.Point{X: t, Y: bit})

		if bit == 1 {
			approx += delta
		} else {
			approx -= delta
		}
		approx = mathutil.Clamp(approx, lo, hi)

		// The hold point never precedes the previous point, which keeps the
		// trace ordered at t=0 and at rates above 1/holdOffset.
		prev := output[len(output)-1]
		output = append(output,
			waveform.Point{X: max(t-holdOffset, prev.X), Y: prev.Y},
			waveform.Point{X: t, Y: approx},
		)
	}

	last := output[len(output)-1]
	output = append(output, waveform.Point{X: end, Y: last.Y})
	return transmitted, output
}
