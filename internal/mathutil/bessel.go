package mathutil

import "math"

// Polynomial fits for I0 from Abramowitz & Stegun 9.8.1 and 9.8.2.
const (
	besselSplit = 3.75

	i0Small1 = 3.5156229
	i0Small2 = 3.0899424
	i0Small3 = 1.2067492
	i0Small4 = 0.2659732
	i0Small5 = 0.360768e-1
	i0Small6 = 0.45813e-2

	i0Large0 = 0.39894228
	i0Large1 = 0.1328592e-1
	i0Large2 = 0.225319e-2
	i0Large3 = -0.157565e-2
	i0Large4 = 0.916281e-2
	i0Large5 = -0.2057706e-1
	i0Large6 = 0.2635537e-1
	i0Large7 = -0.1647633e-1
	i0Large8 = 0.392377e-2
)

// BesselI0 returns the modified Bessel function of the first kind, order
// zero. It is even in x and accurate to about seven significant digits,
// which is plenty for shaping analysis windows.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)

	if ax < besselSplit {
		t := x / besselSplit
		t *= t
		return 1.0 + t*(i0Small1+t*(i0Small2+t*(i0Small3+
			t*(i0Small4+t*(i0Small5+t*i0Small6)))))
	}

	// exp(x)/sqrt(x) times a polynomial in 3.75/x
	t := besselSplit / ax
	p := i0Large0 + t*(i0Large1+t*(i0Large2+
		t*(i0Large3+t*(i0Large4+t*(i0Large5+
			t*(i0Large6+t*(i0Large7+t*i0Large8)))))))
	return math.Exp(ax) * p / math.Sqrt(ax)
}
