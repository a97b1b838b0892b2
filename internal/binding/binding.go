// Package binding re-exposes the transforms to a foreign host through
// plain values: float64, string, map[string]any and []any.
//
// Results come back as bundles shaped like the core result, with points as
// {"x", "y"} maps. A failed call returns empty sequences and an "error"
// entry instead of panicking, so hosts that only test for emptiness keep
// working.
package binding

import (
	"errors"
	"fmt"
	"math"

	signalsculptor "github.com/toprakmurat/SignalSculptor"
)

// ErrBadArgument indicates a host value of the wrong type or arity.
var ErrBadArgument = errors.New("binding: bad argument")

// Func is a host-callable entry point.
type Func func(args []any) map[string]any

// Exports maps host-visible names to entry points.
var Exports = map[string]Func{
	"AnalogToAnalog": func(args []any) map[string]any {
		freq, amp, scheme, err := toneArgs(args)
		if err != nil {
			return failed(err)
		}
		return AnalogToAnalog(freq, amp, scheme)
	},
	"AnalogToDigitalPCM": func(args []any) map[string]any {
		freq, amp, cfg, err := toneArgs(args)
		if err != nil {
			return failed(err)
		}
		return AnalogToDigitalPCM(freq, amp, cfg)
	},
	"AnalogToDigitalDM": func(args []any) map[string]any {
		freq, amp, cfg, err := toneArgs(args)
		if err != nil {
			return failed(err)
		}
		return AnalogToDigitalDM(freq, amp, cfg)
	},
	"DigitalToAnalog": func(args []any) map[string]any {
		bits, scheme, err := bitArgs(args)
		if err != nil {
			return failed(err)
		}
		return DigitalToAnalog(bits, scheme)
	},
	"DigitalToDigital": func(args []any) map[string]any {
		bits, code, err := bitArgs(args)
		if err != nil {
			return failed(err)
		}
		return DigitalToDigital(bits, code)
	},
}

// AnalogToAnalog runs an analog modulation. scheme is a name ("AM") or
// an enum index.
func AnalogToAnalog(msgFreq, msgAmp float64, scheme any) map[string]any {
	s, err := resolve(scheme, signalsculptor.ParseAnalogScheme)
	if err != nil {
		return failed(err)
	}
	return bundle(signalsculptor.AnalogToAnalog(msgFreq, msgAmp, s))
}

// AnalogToDigitalPCM runs PCM. cfg holds sampling_rate and
// quantization_levels.
func AnalogToDigitalPCM(freq, amp float64, cfg any) map[string]any {
	m, err := object(cfg)
	if err != nil {
		return failed(err)
	}
	rate, err := number(m["sampling_rate"])
	if err != nil {
		return failed(fmt.Errorf("sampling_rate: %w", err))
	}
	levels, err := integer(m["quantization_levels"])
	if err != nil {
		return failed(fmt.Errorf("quantization_levels: %w", err))
	}
	return bundle(signalsculptor.AnalogToDigitalPCM(freq, amp, signalsculptor.PCMConfig{
		SamplingRate:       rate,
		QuantizationLevels: levels,
	}))
}

// AnalogToDigitalDM runs delta modulation. cfg holds sampling_rate and
// delta_step_size.
func AnalogToDigitalDM(freq, amp float64, cfg any) map[string]any {
	m, err := object(cfg)
	if err != nil {
		return failed(err)
	}
	rate, err := number(m["sampling_rate"])
	if err != nil {
		return failed(fmt.Errorf("sampling_rate: %w", err))
	}
	step, err := number(m["delta_step_size"])
	if err != nil {
		return failed(fmt.Errorf("delta_step_size: %w", err))
	}
	return bundle(signalsculptor.AnalogToDigitalDM(freq, amp, signalsculptor.DeltaConfig{
		SamplingRate:  rate,
		DeltaStepSize: step,
	}))
}

// DigitalToAnalog runs a digital keying.
func DigitalToAnalog(bits string, scheme any) map[string]any {
	s, err := resolve(scheme, signalsculptor.ParseDigitalScheme)
	if err != nil {
		return failed(err)
	}
	return bundle(signalsculptor.DigitalToAnalog(bits, s))
}

// DigitalToDigital runs a line code.
func DigitalToDigital(bits string, code any) map[string]any {
	c, err := resolve(code, signalsculptor.ParseLineCode)
	if err != nil {
		return failed(err)
	}
	return bundle(signalsculptor.DigitalToDigital(bits, c))
}

// Enums returns the selector tables keyed by enum name, each mapping a
// scheme name to its index.
func Enums() map[string]any {
	return map[string]any{
		"AnalogModulation":  table(signalsculptor.AnalogSchemes()),
		"DigitalModulation": table(signalsculptor.DigitalSchemes()),
		"LineCoding":        table(signalsculptor.LineCodes()),
	}
}

func table[T interface {
	~int
	fmt.Stringer
}](values []T) map[string]any {
	t := make(map[string]any, len(values))
	for _, v := range values {
		t[v.String()] = int(v)
	}
	return t
}

// resolve accepts a scheme name or a numeric index.
func resolve[T ~int](v any, parse func(string) (T, error)) (T, error) {
	switch s := v.(type) {
	case string:
		return parse(s)
	case T:
		return s, nil
	default:
		i, err := integer(v)
		if err != nil {
			return 0, err
		}
		return T(i), nil
	}
}

func toneArgs(args []any) (freq, amp float64, third any, err error) {
	if len(args) != 3 {
		return 0, 0, nil, fmt.Errorf("%w: want 3 arguments, got %d", ErrBadArgument, len(args))
	}
	if freq, err = number(args[0]); err != nil {
		return 0, 0, nil, err
	}
	if amp, err = number(args[1]); err != nil {
		return 0, 0, nil, err
	}
	return freq, amp, args[2], nil
}

func bitArgs(args []any) (bits string, selector any, err error) {
	if len(args) != 2 {
		return "", nil, fmt.Errorf("%w: want 2 arguments, got %d", ErrBadArgument, len(args))
	}
	bits, ok := args[0].(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: bits must be a string, got %T", ErrBadArgument, args[0])
	}
	return bits, args[1], nil
}

func object(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: config must be an object, got %T", ErrBadArgument, v)
	}
	return m, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: want a number, got %T", ErrBadArgument, v)
	}
}

func integer(v any) (int, error) {
	f, err := number(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: want an integer, got %v", ErrBadArgument, f)
	}
	return int(f), nil
}

func bundle(res signalsculptor.Result, err error) map[string]any {
	b := map[string]any{
		"input":               points(res.Input),
		"transmitted":         points(res.Transmitted),
		"output":              points(res.Output),
		"calculation_time_ms": res.CalculationTimeMs,
	}
	if err != nil {
		b["error"] = err.Error()
	}
	return b
}

func failed(err error) map[string]any {
	return bundle(signalsculptor.Result{}, err)
}

func points(pts []signalsculptor.Point) []any {
	out := make([]any, len(pts))
	for i, p := range pts {
		out[i] = map[string]any{"x": p.X, "y": p.Y}
	}
	return out
}
