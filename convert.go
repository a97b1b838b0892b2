package signalsculptor

import "fmt"

// Kind selects a transform family for [Convert].
type Kind int

const (
	// KindAnalog runs [AnalogToAnalog].
	KindAnalog Kind = iota
	// KindPCM runs [AnalogToDigitalPCM].
	KindPCM
	// KindDelta runs [AnalogToDigitalDM].
	KindDelta
	// KindKeying runs [DigitalToAnalog].
	KindKeying
	// KindLine runs [DigitalToDigital].
	KindLine
)

var kindNames = [...]string{
	KindAnalog: "analog",
	KindPCM:    "pcm",
	KindDelta:  "delta",
	KindKeying: "keying",
	KindLine:   "line",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a family name: analog, pcm, delta, keying or line.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if normalizeName(n) == normalizeName(name) {
			return Kind(i), nil
		}
	}
	return -1, fmt.Errorf("%w: unknown kind %q", ErrUnsupportedScheme, name)
}

// Request carries the parameters of any transform. Only the fields used
// by Kind are read.
type Request struct {
	Kind Kind

	// Frequency and Amplitude describe the sine for the analog and ADC
	// families.
	Frequency float64
	Amplitude float64

	// Bits feeds the keying and line families.
	Bits string

	Analog  AnalogScheme
	Digital DigitalScheme
	Line    LineCode

	PCM   PCMConfig
	Delta DeltaConfig
}

// Convert runs the transform selected by req.Kind.
func Convert(req Request) (Result, error) {
	switch req.Kind {
	case KindAnalog:
		return AnalogToAnalog(req.Frequency, req.Amplitude, req.Analog)
	case KindPCM:
		return AnalogToDigitalPCM(req.Frequency, req.Amplitude, req.PCM)
	case KindDelta:
		return AnalogToDigitalDM(req.Frequency, req.Amplitude, req.Delta)
	case KindKeying:
		return DigitalToAnalog(req.Bits, req.Digital)
	case KindLine:
		return DigitalToDigital(req.Bits, req.Line)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedScheme, req.Kind)
	}
}
