// Package testutil provides reusable assertions for waveform tests.
package testutil

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// DefaultTolerance is the delta used when comparing computed samples.
const DefaultTolerance = 1e-10

// failf reports a helper failure, keeping the caller's message.
func failf(t *testing.T, msgAndArgs []any, format string, args ...any) bool {
	t.Helper()
	return assert.Fail(t, fmt.Sprintf(format, args...), msgAndArgs...)
}

// AssertNoNaNOrInf verifies that every sample is finite.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return failf(t, msgAndArgs, "sample %d is %v", i, v)
		}
	}
	return true
}

// AssertAllInRange verifies that every sample lies within [lo, hi].
func AssertAllInRange(t *testing.T, s []float64, lo, hi float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < lo || v > hi {
			return failf(t, msgAndArgs, "sample %d = %g outside [%g, %g]", i, v, lo, hi)
		}
	}
	return true
}

// AssertInRange verifies that a single value lies within [lo, hi].
func AssertInRange(t *testing.T, v, lo, hi float64, msgAndArgs ...any) bool {
	t.Helper()
	if v < lo || v > hi {
		return failf(t, msgAndArgs, "%g outside [%g, %g]", v, lo, hi)
	}
	return true
}

// AssertMonotonic verifies that a slice never decreases.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return failf(t, msgAndArgs, "s[%d] = %g drops below s[%d] = %g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertNonDecreasingX verifies the time axis of a point sequence never
// runs backwards and never starts before zero.
func AssertNonDecreasingX(t *testing.T, pts []waveform.Point, msgAndArgs ...any) bool {
	t.Helper()
	if len(pts) > 0 && pts[0].X < 0 {
		return failf(t, msgAndArgs, "negative start time %g", pts[0].X)
	}
	return AssertMonotonic(t, waveform.Xs(pts), msgAndArgs...)
}

// AssertValuesIn verifies that every Y belongs to the allowed set.
func AssertValuesIn(t *testing.T, pts []waveform.Point, allowed []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, p := range pts {
		if !slices.Contains(allowed, p.Y) {
			return failf(t, msgAndArgs, "pts[%d].Y = %g not one of %v", i, p.Y, allowed)
		}
	}
	return true
}

// StepLevels returns one level per bit from a two-points-per-bit stair-step.
func StepLevels(pts []waveform.Point) []float64 {
	levels := make([]float64, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		levels = append(levels, pts[i].Y)
	}
	return levels
}
