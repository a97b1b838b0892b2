// Package simdops provides the vector kernels shared by the waveform
// transforms, backed by github.com/tphakala/simd.
//
// The kernels are element-wise and exactly rounded, so vectorised results
// are bit-identical to the equivalent scalar loops.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Scale writes a[i]*s into dst[i]. dst must be at least as long as a.
func Scale(dst, a []float64, s float64) {
	if len(a) == 0 {
		return
	}
	f64.Scale(dst[:len(a)], a, s)
}

// Scaled returns a new slice holding a[i]*s.
func Scaled(a []float64, s float64) []float64 {
	dst := make([]float64, len(a))
	Scale(dst, a, s)
	return dst
}

// Sum returns the sum of all elements.
func Sum(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return f64.Sum(a)
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return Sum(a) / float64(len(a))
}

// CPUInfo describes the SIMD instruction set selected at runtime.
func CPUInfo() string {
	return cpu.Info()
}

// Dot returns the dot product of a and b, which must have equal length.
func Dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return f64.DotProduct(a, b)
}
