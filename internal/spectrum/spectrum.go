// Package spectrum computes the single-sided magnitude spectrum of a trace.
//
// The trace is first resampled on a uniform grid, then its mean is removed
// and an optional Hann or Kaiser window applied before a real FFT
// (gonum.org/v1/gonum/dsp/fourier).
package spectrum

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/toprakmurat/SignalSculptor/internal/mathutil"
	"github.com/toprakmurat/SignalSculptor/internal/simdops"
	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// minSamples is the shortest grid worth transforming.
const minSamples = 4

var (
	// ErrTooShort indicates a trace with too few samples at the chosen rate.
	ErrTooShort = errors.New("spectrum: trace too short")

	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("spectrum: invalid sample rate")

	// ErrTooLong indicates a grid longer than Options.MaxSamples.
	ErrTooLong = errors.New("spectrum: trace too long")

	// ErrUnknownWindow indicates an unsupported window or window parameter.
	ErrUnknownWindow = errors.New("spectrum: unknown window")
)

// Bin is one frequency bin.
type Bin struct {
	Frequency float64 `json:"frequency"`
	Magnitude float64 `json:"magnitude"`
}

// Spectrum summarizes a trace in the frequency domain.
type Spectrum struct {
	SampleRate float64 `json:"sample_rate"`
	Samples    int     `json:"samples"`

	// Length is the transform size: Samples zero-padded to the next
	// length whose only prime factors are 2, 3 and 5.
	Length int `json:"length"`

	// Mean is the removed DC offset and RMS the root mean square of the
	// trace after removal.
	Mean float64 `json:"mean"`
	RMS  float64 `json:"rms"`

	Bins     []Bin `json:"bins"`
	Dominant Bin   `json:"dominant"`
}

// Options controls the analysis.
type Options struct {
	// SampleRate is the resampling grid in samples per second.
	SampleRate float64

	// Window tapers the samples before the transform.
	Window Window

	// Beta shapes the Kaiser window; zero selects DefaultKaiserBeta.
	Beta float64

	// MaxSamples rejects traces whose grid would exceed it. Zero means
	// no limit.
	MaxSamples int
}

// Analyze returns the magnitude spectrum of pts. Magnitudes are scaled so
// a sinusoid of amplitude A that completes a whole number of cycles over
// an unpadded grid reports A in its bin.
func Analyze(pts []waveform.Point, opts Options) (Spectrum, error) {
	if !mathutil.IsPositive(opts.SampleRate) {
		return Spectrum{}, fmt.Errorf("%w: %v", ErrInvalidRate, opts.SampleRate)
	}

	if opts.MaxSamples > 0 && len(pts) > 0 {
		start, end := waveform.Span(pts)
		if want := (end-start)*opts.SampleRate + 1; want > float64(opts.MaxSamples) {
			return Spectrum{}, fmt.Errorf("%w: %.0f samples, limit %d", ErrTooLong, want, opts.MaxSamples)
		}
	}

	seq := waveform.Uniform(pts, opts.SampleRate)
	n := len(seq)
	if n < minSamples {
		return Spectrum{}, fmt.Errorf("%w: %d samples, need %d", ErrTooShort, n, minSamples)
	}

	mean := simdops.Mean(seq)
	for i := range seq {
		seq[i] -= mean
	}
	rms := math.Sqrt(simdops.Dot(seq, seq) / float64(n))

	if err := opts.Window.apply(seq, opts.Beta); err != nil {
		return Spectrum{}, err
	}

	m := smoothLength(n)
	seq = append(seq, make([]float64, m-n)...)

	fft := fourier.NewFFT(m)
	coeffs := fft.Coefficients(nil, seq)

	bins := make([]Bin, len(coeffs))
	scale := 2.0 / float64(n)
	for i, c := range coeffs {
		mag := cmplx.Abs(c) * scale
		if i == 0 || (m%2 == 0 && i == len(coeffs)-1) {
			mag /= 2
		}
		bins[i] = Bin{Frequency: fft.Freq(i) * opts.SampleRate, Magnitude: mag}
	}

	return Spectrum{
		SampleRate: opts.SampleRate,
		Samples:    n,
		Length:     m,
		Mean:       mean,
		RMS:        rms,
		Bins:       bins,
		Dominant:   slices.MaxFunc(bins, byMagnitude),
	}, nil
}

// smoothLength returns the smallest length >= n whose only prime factors
// are 2, 3 and 5. Lengths with large prime factors make the FFT slow.
func smoothLength(n int) int {
	for m := max(n, 1); ; m++ {
		r := m
		for _, p := range [...]int{2, 3, 5} {
			for r%p == 0 {
				r /= p
			}
		}
		if r == 1 {
			return m
		}
	}
}

// Top returns the k strongest bins, strongest first.
func (s Spectrum) Top(k int) []Bin {
	sorted := slices.Clone(s.Bins)
	slices.SortStableFunc(sorted, func(a, b Bin) int { return byMagnitude(b, a) })
	return sorted[:max(0, min(k, len(sorted)))]
}

func byMagnitude(a, b Bin) int {
	return cmp.Compare(a.Magnitude, b.Magnitude)
}
