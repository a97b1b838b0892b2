package modulation

import "math"

// Analog modulation parameters.
const (
	carrierMultiplier = 5   // carrier frequency = message frequency * carrierMultiplier
	carrierAmplitude  = 1.0 // fixed carrier amplitude
	amIndex           = 0.8 // AM modulation index
	fmDeviationRatio  = 0.5 // FM frequency deviation as a fraction of the carrier

	pmDeviation = math.Pi / 2 // PM peak phase deviation in radians
)

// Digital keying parameters.
const (
	// SamplesPerBit is the number of sample intervals per bit; each bit is
	// rendered with SamplesPerBit+1 points so it spans its interval fully.
	SamplesPerBit = 100

	askCarrierHz = 5.0
	askMark      = 1.0 // amplitude for '1'
	askSpace     = 0.2 // amplitude for '0'

	fskMarkHz  = 7.0
	fskSpaceHz = 3.0

	pskCarrierHz = 5.0
)
