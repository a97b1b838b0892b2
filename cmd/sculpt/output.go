package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"

	signalsculptor "github.com/toprakmurat/SignalSculptor"
	"github.com/toprakmurat/SignalSculptor/internal/spectrum"
	"github.com/toprakmurat/SignalSculptor/internal/wavexport"
)

// expandPath formats strftime conversions in pattern, such as
// "am-%Y%m%d-%H%M%S.json", against now.
func expandPath(pattern string, now time.Time) (string, error) {
	path, err := strftime.Format(pattern, now)
	if err != nil {
		return "", fmt.Errorf("invalid output pattern %q: %w", pattern, err)
	}
	return path, nil
}

// createFile creates path and its parent directories.
func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirMode); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, outputFileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// writeResult writes res as indented JSON to stdout when path is "-", or
// to the file path otherwise.
func writeResult(stdout io.Writer, path string, res signalsculptor.Result) error {
	if path == "-" {
		return encodeResult(stdout, res)
	}

	f, err := createFile(path)
	if err != nil {
		return err
	}
	return closeAfter(f, encodeResult(f, res))
}

func encodeResult(w io.Writer, res signalsculptor.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// closeAfter closes c and returns err, or the close error when err is nil.
func closeAfter(c io.Closer, err error) error {
	if cerr := c.Close(); err == nil && cerr != nil {
		return fmt.Errorf("failed to close output file: %w", cerr)
	}
	return err
}

// writeWAV renders pts to a WAV file at path.
func writeWAV(path string, pts []signalsculptor.Point, opts wavexport.Options) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}

	return closeAfter(f, wavexport.Write(f, pts, opts))
}

// printSpectrum writes a short summary of the strongest bins of pts.
func printSpectrum(w io.Writer, trace string, pts []signalsculptor.Point, opts spectrum.Options, top int) error {
	s, err := spectrum.Analyze(pts, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Spectrum of %s (%d samples at %g Hz, %s window):\n", trace, s.Samples, s.SampleRate, opts.Window)
	fmt.Fprintf(w, "  Mean: %.6f\n", s.Mean)
	fmt.Fprintf(w, "  RMS: %.6f\n", s.RMS)
	fmt.Fprintf(w, "  Dominant: %.3f Hz (%.6f)\n", s.Dominant.Frequency, s.Dominant.Magnitude)
	for i, b := range s.Top(top) {
		fmt.Fprintf(w, "  #%d %8.3f Hz  %.6f\n", i+1, b.Frequency, b.Magnitude)
	}
	return nil
}
