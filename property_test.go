package signalsculptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

func drawTone(t *rapid.T) (freq, amp float64) {
	freq = rapid.Float64Range(0.01, 50).Draw(t, "freq")
	amp = rapid.Float64Range(0.01, 100).Draw(t, "amp")
	return freq, amp
}

func drawBits(t *rapid.T) string {
	return rapid.StringMatching(`[01]{1,64}`).Draw(t, "bits")
}

func TestProperty_AnalogOutputEqualsInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freq, amp := drawTone(t)
		scheme := rapid.SampledFrom(AnalogSchemes()).Draw(t, "scheme")

		res, err := AnalogToAnalog(freq, amp, scheme)
		require.NoError(t, err)
		assert.Equal(t, res.Input, res.Output)
		assert.Len(t, res.Transmitted, 400)
	})
}

func TestProperty_DeltaApproximationBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freq, amp := drawTone(t)
		cfg := DeltaConfig{
			SamplingRate:  rapid.Float64Range(0.5, 2000).Draw(t, "rate"),
			DeltaStepSize: rapid.Float64Range(0.001, 1).Draw(t, "step"),
		}

		res, err := AnalogToDigitalDM(freq, amp, cfg)
		require.NoError(t, err)

		bound := 1.5 * amp
		xs := waveform.Xs(res.Output)
		for i, p := range res.Output {
			assert.LessOrEqual(t, p.Y, bound)
			assert.GreaterOrEqual(t, p.Y, -bound)
			assert.GreaterOrEqual(t, p.X, 0.0)
			if i > 0 {
				assert.GreaterOrEqual(t, p.X, xs[i-1])
			}
		}
	})
}

func TestProperty_PCMTwoLevels(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freq, amp := drawTone(t)
		rate := rapid.Float64Range(0.5, 500).Draw(t, "rate")

		res, err := AnalogToDigitalPCM(freq, amp, PCMConfig{SamplingRate: rate, QuantizationLevels: 2})
		require.NoError(t, err)
		require.NotEmpty(t, res.Output)
		for _, p := range res.Output {
			if p.Y != amp && p.Y != -amp {
				t.Fatalf("reconstructed %v at %v, want +-%v", p.Y, p.X, amp)
			}
		}
	})
}

func TestProperty_InvalidBitsYieldEmptyResult(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.StringMatching(`[01]{0,16}[2-9a-z ][01]{0,16}`).Draw(t, "bits")
		code := rapid.SampledFrom(LineCodes()).Draw(t, "code")
		scheme := rapid.SampledFrom(DigitalSchemes()).Draw(t, "scheme")

		res, err := DigitalToDigital(bits, code)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.True(t, res.IsEmpty())

		res, err = DigitalToAnalog(bits, scheme)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.True(t, res.IsEmpty())
	})
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom([]Kind{KindAnalog, KindPCM, KindDelta, KindKeying, KindLine}).Draw(t, "kind")
		freq, amp := drawTone(t)
		req := Request{
			Kind:      kind,
			Frequency: freq,
			Amplitude: amp,
			Bits:      drawBits(t),
			Analog:    rapid.SampledFrom(AnalogSchemes()).Draw(t, "analog"),
			Digital:   rapid.SampledFrom(DigitalSchemes()).Draw(t, "digital"),
			Line:      rapid.SampledFrom(LineCodes()).Draw(t, "line"),
			PCM: PCMConfig{
				SamplingRate:       rapid.Float64Range(0.5, 300).Draw(t, "pcmRate"),
				QuantizationLevels: rapid.IntRange(2, 256).Draw(t, "levels"),
			},
			Delta: DeltaConfig{
				SamplingRate:  rapid.Float64Range(0.5, 300).Draw(t, "dmRate"),
				DeltaStepSize: rapid.Float64Range(0.01, 1).Draw(t, "step"),
			},
		}

		first, err := Convert(req)
		require.NoError(t, err)
		second, err := Convert(req)
		require.NoError(t, err)

		assert.Equal(t, first.Input, second.Input)
		assert.Equal(t, first.Transmitted, second.Transmitted)
		assert.Equal(t, first.Output, second.Output)
	})
}

func TestProperty_LineCodesOrdered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := drawBits(t)
		code := rapid.SampledFrom(LineCodes()).Draw(t, "code")

		res, err := DigitalToDigital(bits, code)
		require.NoError(t, err)

		prev := 0.0
		for i, p := range res.Transmitted {
			if p.X < prev {
				t.Fatalf("x decreases at %d: %v < %v", i, p.X, prev)
			}
			prev = p.X
		}
		assert.Equal(t, float64(len(bits)), prev)
	})
}
