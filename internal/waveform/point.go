// Package waveform builds the base signals consumed by the transforms and
// samples them at arbitrary times.
//
// A signal is an ordered []Point with non-decreasing X. Continuous signals
// are read as piecewise-linear; digital signals are stair-steps where two
// points sharing an X encode an instantaneous transition.
package waveform

// Point is a single (time, value) sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ys returns the Y values of pts in order.
func Ys(pts []Point) []float64 {
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}
	return ys
}

// Xs returns the X values of pts in order.
func Xs(pts []Point) []float64 {
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
	}
	return xs
}

// FromYs pairs ys with the X values of like. The slices must have equal length.
func FromYs(like []Point, ys []float64) []Point {
	pts := make([]Point, len(like))
	for i, p := range like {
		pts[i] = Point{X: p.X, Y: ys[i]}
	}
	return pts
}

// Span returns the first and last X of pts, or zeros when pts is empty.
func Span(pts []Point) (start, end float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	return pts[0].X, pts[len(pts)-1].X
}
