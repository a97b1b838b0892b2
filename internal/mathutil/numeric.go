// Package mathutil holds the numeric helpers shared by the transforms.
package mathutil

import "math"

// timeScale is the reciprocal of the time grid used for sample lookups (1 µs).
const timeScale = 1e6

// RoundTime snaps t to the nearest microsecond. Sample times built by
// repeated multiplication drift by a few ulps; snapping keeps lookups
// on the same side of a breakpoint on every platform.
func RoundTime(t float64) float64 {
	return math.Round(t*timeScale) / timeScale
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsPositive reports whether v is a finite number greater than zero.
func IsPositive(v float64) bool {
	return IsFinite(v) && v > 0
}
