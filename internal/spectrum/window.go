package spectrum

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/dsp/window"

	"github.com/toprakmurat/SignalSculptor/internal/mathutil"
)

// Window selects the taper applied before the transform.
type Window int

const (
	// Rectangular leaves the samples untouched.
	Rectangular Window = iota
	// Hann applies a raised cosine.
	Hann
	// Kaiser applies a Kaiser-Bessel window shaped by Options.Beta.
	Kaiser
)

// DefaultKaiserBeta gives roughly 90 dB of sidelobe suppression.
const DefaultKaiserBeta = 8.6

var windowNames = [...]string{
	Rectangular: "rectangular",
	Hann:        "hann",
	Kaiser:      "kaiser",
}

func (w Window) String() string {
	if w >= 0 && int(w) < len(windowNames) {
		return windowNames[w]
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// ParseWindow maps a case-insensitive window name to its Window. The empty
// string and "none" select Rectangular.
func ParseWindow(name string) (Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return Rectangular, nil
	}
	for i, n := range windowNames {
		if n == name {
			return Window(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}

// apply tapers seq in place.
func (w Window) apply(seq []float64, beta float64) error {
	switch w {
	case Rectangular:
	case Hann:
		window.Hann(seq)
	case Kaiser:
		if beta == 0 {
			beta = DefaultKaiserBeta
		}
		if beta < 0 || !mathutil.IsFinite(beta) {
			return fmt.Errorf("%w: kaiser beta %v", ErrUnknownWindow, beta)
		}
		kaiser(seq, beta)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownWindow, w)
	}
	return nil
}

// kaiser multiplies seq by w[n] = I0(beta*sqrt(1-x^2)) / I0(beta), where x
// runs from -1 to 1 across the sequence.
func kaiser(seq []float64, beta float64) {
	n := len(seq)
	if n < 2 {
		return
	}

	half := float64(n-1) / 2
	norm := mathutil.BesselI0(beta)
	for i := range seq {
		x := (float64(i) - half) / half
		seq[i] *= mathutil.BesselI0(beta*math.Sqrt(max(0, 1-x*x))) / norm
	}
}
