package signalsculptor

import (
	"fmt"

	"github.com/toprakmurat/SignalSculptor/internal/mathutil"
)

// PCMConfig configures pulse-code modulation.
type PCMConfig struct {
	// SamplingRate is the number of ticks per second.
	SamplingRate float64 `json:"sampling_rate" yaml:"sampling_rate"`

	// QuantizationLevels is the number of output levels, at least 2.
	QuantizationLevels int `json:"quantization_levels" yaml:"quantization_levels"`
}

// Validate checks if the configuration is valid.
func (c PCMConfig) Validate() error {
	if !mathutil.IsPositive(c.SamplingRate) {
		return fmt.Errorf("%w: sampling rate must be positive", ErrInvalidParameter)
	}
	if c.QuantizationLevels < minQuantizationLevels {
		return fmt.Errorf("%w: quantization levels must be at least %d", ErrInvalidParameter, minQuantizationLevels)
	}
	return nil
}

// DeltaConfig configures delta modulation.
type DeltaConfig struct {
	// SamplingRate is the number of ticks per second.
	SamplingRate float64 `json:"sampling_rate" yaml:"sampling_rate"`

	// DeltaStepSize is the approximation step as a fraction of the
	// amplitude, in (0, 1].
	DeltaStepSize float64 `json:"delta_step_size" yaml:"delta_step_size"`
}

// Validate checks if the configuration is valid.
func (c DeltaConfig) Validate() error {
	if !mathutil.IsPositive(c.SamplingRate) {
		return fmt.Errorf("%w: sampling rate must be positive", ErrInvalidParameter)
	}
	if !mathutil.IsPositive(c.DeltaStepSize) || c.DeltaStepSize > maxDeltaStepSize {
		return fmt.Errorf("%w: delta step size must be in (0, %g]", ErrInvalidParameter, maxDeltaStepSize)
	}
	return nil
}

func validateTone(freq, amp float64) error {
	if !mathutil.IsPositive(freq) {
		return fmt.Errorf("%w: frequency must be positive", ErrInvalidParameter)
	}
	if !mathutil.IsPositive(amp) {
		return fmt.Errorf("%w: amplitude must be positive", ErrInvalidParameter)
	}
	return nil
}
