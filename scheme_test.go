package signalsculptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineCode(t *testing.T) {
	tests := []struct {
		name string
		want LineCode
	}{
		{"NRZ_L", NRZL},
		{"nrz-l", NRZL},
		{"Nrz-I", NRZI},
		{"manchester", Manchester},
		{"differential-manchester", DifferentialManchester},
		{"DIFFERENTIAL_MANCHESTER", DifferentialManchester},
		{" ami ", AMI},
		{"pseudoternary", Pseudoternary},
		{"b8zs", B8ZS},
		{"HDB3", HDB3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLineCode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := ParseLineCode("NRZ")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = ParseAnalogScheme("QAM")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = ParseDigitalScheme("")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = ParseKind("spectrum")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestSchemeNamesRoundTrip(t *testing.T) {
	for _, s := range AnalogSchemes() {
		got, err := ParseAnalogScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, s := range DigitalSchemes() {
		got, err := ParseDigitalScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, c := range LineCodes() {
		got, err := ParseLineCode(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, k := range []Kind{KindAnalog, KindPCM, KindDelta, KindKeying, KindLine} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestString_OutOfRange(t *testing.T) {
	assert.Equal(t, "AnalogScheme(7)", AnalogScheme(7).String())
	assert.Equal(t, "DigitalScheme(-1)", DigitalScheme(-1).String())
	assert.Equal(t, "LineCode(8)", LineCode(8).String())
	assert.Equal(t, "Kind(5)", Kind(5).String())
}

func TestLineCodes_Order(t *testing.T) {
	assert.Equal(t, []LineCode{NRZL, NRZI, Manchester, DifferentialManchester, AMI, Pseudoternary, B8ZS, HDB3}, LineCodes())
}

func TestConvert(t *testing.T) {
	res, err := Convert(Request{Kind: KindLine, Bits: "0000", Line: HDB3})
	require.NoError(t, err)
	assert.Len(t, res.Transmitted, 8)

	res, err = Convert(Request{Kind: KindPCM, Frequency: 1, Amplitude: 1, PCM: PCMConfig{SamplingRate: 4, QuantizationLevels: 3}})
	require.NoError(t, err)
	assert.Len(t, res.Transmitted, 8)

	_, err = Convert(Request{Kind: Kind(9)})
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = Convert(Request{Kind: KindDelta, Frequency: 1, Amplitude: 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
