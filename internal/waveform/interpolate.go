package waveform

import "sort"

// At returns the value of the piecewise-linear signal pts at time t.
//
// Times before the first point or after the last are clamped to the end
// values. Inside the signal the bracketing pair is found by binary search;
// when both points of the pair share the same X the left value is returned.
// Callers should pass t through mathutil.RoundTime first.
func At(pts []Point, t float64) float64 {
	if len(pts) == 0 {
		return 0
	}

	first, last := pts[0], pts[len(pts)-1]
	if t <= first.X {
		return first.Y
	}
	if t >= last.X {
		return last.Y
	}

	// First point with X >= t.
	idx := sort.Search(len(pts), func(i int) bool { return pts[i].X >= t })
	if idx == 0 {
		return pts[0].Y
	}

	p1, p2 := pts[idx-1], pts[idx]
	if p2.X == p1.X {
		return p1.Y
	}

	ratio := (t - p1.X) / (p2.X - p1.X)
	// The conversion stops the compiler fusing into an FMA, which would
	// change the last bit on some architectures.
	return p1.Y + float64(ratio*(p2.Y-p1.Y))
}

// Uniform samples pts on a regular grid of rate samples per second, from
// the first point's time through the last.
func Uniform(pts []Point, rate float64) []float64 {
	if len(pts) == 0 || rate <= 0 {
		return nil
	}

	start, end := Span(pts)
	n := int((end-start)*rate) + 1
	out := make([]float64, n)
	inv := 1.0 / rate
	for i := range n {
		out[i] = At(pts, start+float64(i)*inv)
	}
	return out
}
