package signalsculptor

import (
	"errors"
	"fmt"
	"time"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// Point is a single (time, value) sample.
type Point = waveform.Point

// Result is the bundle returned by every transform.
type Result struct {
	Input             []Point `json:"input"`
	Transmitted       []Point `json:"transmitted"`
	Output            []Point `json:"output"`
	CalculationTimeMs float64 `json:"calculation_time_ms"`
}

// IsEmpty reports whether both Input and Transmitted are empty, which is
// how a failed transform looks to callers that ignore the error.
func (r Result) IsEmpty() bool {
	return len(r.Input) == 0 && len(r.Transmitted) == 0
}

// Trace returns the sequence called name: "input", "transmitted" or "output".
func (r Result) Trace(name string) ([]Point, error) {
	switch name {
	case TraceInput:
		return r.Input, nil
	case TraceTransmitted:
		return r.Transmitted, nil
	case TraceOutput:
		return r.Output, nil
	default:
		return nil, fmt.Errorf("%w: unknown trace %q", ErrInvalidParameter, name)
	}
}

// Common errors returned by the transforms.
var (
	// ErrInvalidParameter indicates a rejected frequency, amplitude, bit
	// string or converter configuration.
	ErrInvalidParameter = errors.New("invalid parameters")

	// ErrUnsupportedScheme indicates a selector outside the known schemes.
	ErrUnsupportedScheme = errors.New("algorithm not implemented")
)

// stopwatch measures one transform.
type stopwatch time.Time

func startStopwatch() stopwatch { return stopwatch(time.Now()) }

// elapsedMs returns the milliseconds since the stopwatch started.
func (s stopwatch) elapsedMs() float64 {
	return float64(time.Since(time.Time(s))) / float64(time.Millisecond)
}
