package modulation

import (
	"math"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// keyFunc returns the sample for bit value b at absolute time t.
type keyFunc func(bit byte, t float64) float64

// key renders each bit as SamplesPerBit+1 points spanning its interval.
func key(bits string, f keyFunc) []waveform.Point {
	step := waveform.BitDuration / SamplesPerBit
	out := make([]waveform.Point, 0, len(bits)*(SamplesPerBit+1))
	for i := 0; i < len(bits); i++ {
		base := float64(i) * waveform.BitDuration
		for j := 0; j <= SamplesPerBit; j++ {
			t := base + float64(float64(j)*step)
			out = append(out, waveform.Point{X: t, Y: f(bits[i], t)})
		}
	}
	return out
}

// ASK keys the amplitude of a 5 Hz carrier: 1.0 for '1', 0.2 for '0'.
func ASK(bits string) []waveform.Point {
	twoPiCarrier := angular(askCarrierHz)
	return key(bits, func(bit byte, t float64) float64 {
		amplitude := askSpace
		if bit == '1' {
			amplitude = askMark
		}
		return amplitude * math.Sin(twoPiCarrier*t)
	})
}

// FSK keys the carrier frequency: 7 Hz for '1', 3 Hz for '0'.
func FSK(bits string) []waveform.Point {
	twoPiMark := angular(fskMarkHz)
	twoPiSpace := angular(fskSpaceHz)
	return key(bits, func(bit byte, t float64) float64 {
		w := twoPiSpace
		if bit == '1' {
			w = twoPiMark
		}
		return math.Sin(w * t)
	})
}

// PSK keys the phase of a 5 Hz carrier: 0 for '1', pi for '0'.
func PSK(bits string) []waveform.Point {
	twoPiCarrier := angular(pskCarrierHz)
	return key(bits, func(bit byte, t float64) float64 {
		shift := math.Pi
		if bit == '1' {
			shift = 0
		}
		return math.Sin(float64(twoPiCarrier*t) + shift)
	})
}
