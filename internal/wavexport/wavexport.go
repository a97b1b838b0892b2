// Package wavexport renders a point sequence as a mono PCM WAV stream.
//
// The trace is resampled on a uniform grid through linear interpolation,
// scaled so its largest magnitude maps to full scale, and encoded with
// github.com/go-audio/wav.
package wavexport

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// Supported bit depths.
const (
	BitDepth16 = 16
	BitDepth24 = 24
	BitDepth32 = 32
)

const (
	monoChannels = 1
	pcmFormat    = 1 // WAVE_FORMAT_PCM

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// DefaultSampleRate keeps a two-second trace short enough to inline
	// in an HTTP reply.
	DefaultSampleRate = 8000
)

var (
	// ErrEmptyTrace indicates a trace without points.
	ErrEmptyTrace = errors.New("wavexport: trace is empty")

	// ErrInvalidOptions indicates an unsupported sample rate or bit depth.
	ErrInvalidOptions = errors.New("wavexport: invalid options")
)

// Options controls the encoded stream.
type Options struct {
	SampleRate int
	BitDepth   int
}

// DefaultOptions returns 16-bit audio at DefaultSampleRate.
func DefaultOptions() Options {
	return Options{SampleRate: DefaultSampleRate, BitDepth: BitDepth16}
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidOptions)
	}
	switch o.BitDepth {
	case BitDepth16, BitDepth24, BitDepth32:
		return nil
	default:
		return fmt.Errorf("%w: bit depth must be 16, 24 or 32, got %d", ErrInvalidOptions, o.BitDepth)
	}
}

// Samples returns pts resampled at opts.SampleRate and quantized to
// opts.BitDepth. A silent trace yields all zeros.
func Samples(pts []waveform.Point, opts Options) []int {
	values := waveform.Uniform(pts, float64(opts.SampleRate))

	peak := 0.0
	for _, v := range values {
		peak = max(peak, math.Abs(v))
	}

	out := make([]int, len(values))
	if peak == 0 {
		return out
	}

	scale := fullScale(opts.BitDepth) / peak
	for i, v := range values {
		out[i] = int(math.Round(v * scale))
	}
	return out
}

// Write encodes pts to ws.
func Write(ws io.WriteSeeker, pts []waveform.Point, opts Options) error {
	if len(pts) == 0 {
		return ErrEmptyTrace
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  opts.SampleRate,
		},
		Data:           Samples(pts, opts),
		SourceBitDepth: opts.BitDepth,
	}

	enc := wav.NewEncoder(ws, opts.SampleRate, opts.BitDepth, monoChannels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// Encode returns pts as a complete WAV file.
func Encode(pts []waveform.Point, opts Options) ([]byte, error) {
	var f memFile
	if err := Write(&f, pts, opts); err != nil {
		return nil, err
	}
	return f.buf, nil
}

func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case BitDepth24:
		return maxInt24
	case BitDepth32:
		return maxInt32
	default:
		return maxInt16
	}
}

// Read decodes a PCM WAV stream into points spaced 1/rate apart, with
// full scale mapped to 1. Only the first channel of a multichannel file is
// kept.
func Read(rs io.ReadSeeker) ([]waveform.Point, Options, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, Options{}, fmt.Errorf("%w: not a PCM WAV stream", ErrInvalidOptions)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Options{}, fmt.Errorf("failed to read samples: %w", err)
	}

	opts := Options{SampleRate: int(dec.SampleRate), BitDepth: int(dec.BitDepth)}
	if err := opts.Validate(); err != nil {
		return nil, Options{}, err
	}

	channels := max(1, int(dec.NumChans))
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, opts, ErrEmptyTrace
	}

	scale := fullScale(opts.BitDepth)
	step := 1 / float64(opts.SampleRate)
	pts := make([]waveform.Point, frames)
	for i := range pts {
		pts[i] = waveform.Point{X: float64(i) * step, Y: float64(buf.Data[i*channels]) / scale}
	}
	return pts, opts, nil
}
