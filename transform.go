package signalsculptor

import (
	"fmt"
	"slices"

	"github.com/toprakmurat/SignalSculptor/internal/adc"
	"github.com/toprakmurat/SignalSculptor/internal/linecode"
	"github.com/toprakmurat/SignalSculptor/internal/modulation"
	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

type analogModulator func(msg []Point, msgFreq, msgAmp float64) []Point

type bitCoder func(bits string) []Point

var (
	analogModulators = [...]analogModulator{
		AM: modulation.AM,
		FM: modulation.FM,
		PM: modulation.PM,
	}

	digitalModulators = [...]bitCoder{
		ASK: modulation.ASK,
		FSK: modulation.FSK,
		PSK: modulation.PSK,
	}

	lineCoders = [...]bitCoder{
		NRZL:                   linecode.NRZL,
		NRZI:                   linecode.NRZI,
		Manchester:             linecode.Manchester,
		DifferentialManchester: linecode.DifferentialManchester,
		AMI:                    linecode.AMI,
		Pseudoternary:          linecode.Pseudoternary,
		B8ZS:                   linecode.B8ZS,
		HDB3:                   linecode.HDB3,
	}
)

// AnalogToAnalog modulates a carrier at five times msgFreq by a sine
// message of msgFreq Hz and peak msgAmp, sampled 200 times per second for
// two seconds. Output repeats the message.
func AnalogToAnalog(msgFreq, msgAmp float64, scheme AnalogScheme) (Result, error) {
	sw := startStopwatch()
	if !scheme.valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedScheme, scheme)
	}
	if err := validateTone(msgFreq, msgAmp); err != nil {
		return Result{}, err
	}

	input := waveform.Sine(msgFreq, msgAmp, waveform.ModulatorRate)
	transmitted := analogModulators[scheme](input, msgFreq, msgAmp)

	return Result{
		Input:             input,
		Transmitted:       transmitted,
		Output:            slices.Clone(input),
		CalculationTimeMs: sw.elapsedMs(),
	}, nil
}

// AnalogToDigitalPCM quantizes a sine of freq Hz and peak amp, sampled 100
// times per second for two seconds, as configured by cfg.
//
// Transmitted holds the quantization index per tick and Output the value
// reconstructed from it.
func AnalogToDigitalPCM(freq, amp float64, cfg PCMConfig) (Result, error) {
	sw := startStopwatch()
	if err := validateTone(freq, amp); err != nil {
		return Result{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	input := waveform.Sine(freq, amp, waveform.ConverterRate)
	transmitted, output := adc.PCM(input, amp, cfg.SamplingRate, cfg.QuantizationLevels)

	return Result{
		Input:             input,
		Transmitted:       transmitted,
		Output:            output,
		CalculationTimeMs: sw.elapsedMs(),
	}, nil
}

// AnalogToDigitalDM delta-modulates a sine of freq Hz and peak amp,
// sampled 100 times per second for two seconds, as configured by cfg.
//
// Transmitted holds one bit per tick. Output is the staircase traced by
// the running approximation, which never leaves [-1.5*amp, 1.5*amp].
func AnalogToDigitalDM(freq, amp float64, cfg DeltaConfig) (Result, error) {
	sw := startStopwatch()
	if err := validateTone(freq, amp); err != nil {
		return Result{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	input := waveform.Sine(freq, amp, waveform.ConverterRate)
	transmitted, output := adc.Delta(input, amp, cfg.SamplingRate, cfg.DeltaStepSize)

	return Result{
		Input:             input,
		Transmitted:       transmitted,
		Output:            output,
		CalculationTimeMs: sw.elapsedMs(),
	}, nil
}

// DigitalToAnalog keys a carrier by bits, one second and 101 points per
// bit. Input and Output hold the bits as a stair-step trace.
func DigitalToAnalog(bits string, scheme DigitalScheme) (Result, error) {
	if !scheme.valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedScheme, scheme)
	}
	return codeBits(bits, digitalModulators[scheme])
}

// DigitalToDigital line-codes bits, one second per bit. Input and Output
// hold the bits as a stair-step trace.
func DigitalToDigital(bits string, code LineCode) (Result, error) {
	if !code.valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedScheme, code)
	}
	return codeBits(bits, lineCoders[code])
}

func codeBits(bits string, coder bitCoder) (Result, error) {
	sw := startStopwatch()
	if err := waveform.ValidateBits(bits); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	input := waveform.BitSteps(bits)
	return Result{
		Input:             input,
		Transmitted:       coder(bits),
		Output:            slices.Clone(input),
		CalculationTimeMs: sw.elapsedMs(),
	}, nil
}
