// Package server exposes the transforms over HTTP with JSON bodies.
//
// Service holds the four conversion operations and their status mapping.
// Handler wires them to routes, adds WAV and spectrum renderings, and logs
// every request.
package server

import (
	signalsculptor "github.com/toprakmurat/SignalSculptor"
	"github.com/toprakmurat/SignalSculptor/internal/config"
)

// AnalogToAnalogRequest asks for an AM, FM or PM trace.
type AnalogToAnalogRequest struct {
	MessageFrequency float64 `json:"message_frequency"`
	MessageAmplitude float64 `json:"message_amplitude"`
	Algorithm        string  `json:"algorithm"`
}

// AnalogToDigitalRequest asks for a PCM or delta-modulated trace. Exactly
// one of PCM and DeltaModulation must be set.
type AnalogToDigitalRequest struct {
	Frequency       float64                     `json:"frequency"`
	Amplitude       float64                     `json:"amplitude"`
	PCM             *signalsculptor.PCMConfig   `json:"pcm,omitempty"`
	DeltaModulation *signalsculptor.DeltaConfig `json:"delta_modulation,omitempty"`
}

// DigitalToAnalogRequest asks for an ASK, FSK or PSK trace.
type DigitalToAnalogRequest struct {
	BinaryInput string `json:"binary_input"`
	Algorithm   string `json:"algorithm"`
}

// DigitalToDigitalRequest asks for a line-coded trace.
type DigitalToDigitalRequest struct {
	BinaryInput string `json:"binary_input"`
	Algorithm   string `json:"algorithm"`
}

// Service implements the conversion operations. It is safe for
// concurrent use.
type Service struct {
	limits config.LimitsConfig
}

// NewService returns a Service enforcing limits.
func NewService(limits config.LimitsConfig) *Service {
	return &Service{limits: limits}
}

// AnalogToAnalog runs an analog modulation.
func (s *Service) AnalogToAnalog(req AnalogToAnalogRequest) (signalsculptor.Result, error) {
	scheme, err := signalsculptor.ParseAnalogScheme(req.Algorithm)
	if err != nil {
		return signalsculptor.Result{}, unimplemented()
	}
	return finish(signalsculptor.AnalogToAnalog(req.MessageFrequency, req.MessageAmplitude, scheme))
}

// AnalogToDigital runs PCM or delta modulation.
func (s *Service) AnalogToDigital(req AnalogToDigitalRequest) (signalsculptor.Result, error) {
	switch {
	case req.PCM != nil && req.DeltaModulation != nil:
		return signalsculptor.Result{}, invalidArgument("pcm and delta_modulation are mutually exclusive")
	case req.PCM != nil:
		if err := s.checkRate(req.PCM.SamplingRate); err != nil {
			return signalsculptor.Result{}, err
		}
		return finish(signalsculptor.AnalogToDigitalPCM(req.Frequency, req.Amplitude, *req.PCM))
	case req.DeltaModulation != nil:
		if err := s.checkRate(req.DeltaModulation.SamplingRate); err != nil {
			return signalsculptor.Result{}, err
		}
		return finish(signalsculptor.AnalogToDigitalDM(req.Frequency, req.Amplitude, *req.DeltaModulation))
	default:
		return signalsculptor.Result{}, invalidArgument("missing configuration")
	}
}

// DigitalToAnalog runs a digital keying.
func (s *Service) DigitalToAnalog(req DigitalToAnalogRequest) (signalsculptor.Result, error) {
	scheme, err := signalsculptor.ParseDigitalScheme(req.Algorithm)
	if err != nil {
		return signalsculptor.Result{}, unimplemented()
	}
	if err := s.checkBits(req.BinaryInput); err != nil {
		return signalsculptor.Result{}, err
	}
	return finish(signalsculptor.DigitalToAnalog(req.BinaryInput, scheme))
}

// DigitalToDigital runs a line code.
func (s *Service) DigitalToDigital(req DigitalToDigitalRequest) (signalsculptor.Result, error) {
	code, err := signalsculptor.ParseLineCode(req.Algorithm)
	if err != nil {
		return signalsculptor.Result{}, unimplemented()
	}
	if err := s.checkBits(req.BinaryInput); err != nil {
		return signalsculptor.Result{}, err
	}
	return finish(signalsculptor.DigitalToDigital(req.BinaryInput, code))
}

func (s *Service) checkBits(bits string) error {
	if len(bits) > s.limits.MaxBits {
		return invalidArgument("binary_input longer than %d bits", s.limits.MaxBits)
	}
	return nil
}

func (s *Service) checkRate(rate float64) error {
	if rate > s.limits.MaxSamplingRate {
		return invalidArgument("sampling_rate above %g", s.limits.MaxSamplingRate)
	}
	return nil
}

// finish maps a core outcome to the service contract. An empty result is
// always a parameter failure, even without an error.
func finish(res signalsculptor.Result, err error) (signalsculptor.Result, error) {
	if err != nil {
		return signalsculptor.Result{}, statusOf(err)
	}
	if res.IsEmpty() {
		return signalsculptor.Result{}, invalidArgument("invalid parameters")
	}
	return res, nil
}
