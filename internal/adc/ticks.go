// Package adc converts a sampled analog signal to a digital representation
// using pulse-code modulation or delta modulation.
//
// Both converters read the analog signal through waveform.At on a tick grid
// of their own sampling rate, independent of the signal's sample spacing.
package adc

import (
	"iter"

	"github.com/toprakmurat/SignalSculptor/internal/mathutil"
)

// Ticks yields the sample times i/rate for i = 0, 1, ... while the unrounded
// time does not exceed end. Each yielded time is snapped to the microsecond
// grid. rate must be positive.
func Ticks(end, rate float64) iter.Seq[float64] {
	interval := 1.0 / rate
	return func(yield func(float64) bool) {
		for i := 0; ; i++ {
			t := float64(i) * interval
			if t > end {
				return
			}
			if !yield(mathutil.RoundTime(t)) {
				return
			}
		}
	}
}
