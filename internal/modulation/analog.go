// Package modulation implements continuous-carrier modulation of a sampled
// message (AM, FM, PM) and carrier keying by bit strings (ASK, FSK, PSK).
//
// All functions are pure: they allocate their output and never retain or
// modify their inputs.
package modulation

import (
	"math"

	"github.com/toprakmurat/SignalSculptor/internal/simdops"
	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// CarrierFrequency returns the carrier used for a message of msgFreq Hz.
func CarrierFrequency(msgFreq float64) float64 {
	return msgFreq * carrierMultiplier
}

// angular returns 2*pi*f. Kept as a function so the product is rounded in
// float64 steps rather than folded as an exact constant.
func angular(f float64) float64 {
	return 2 * math.Pi * f
}

// normalized scales the message samples into [-1, 1].
func normalized(msg []waveform.Point, msgAmp float64) []float64 {
	return simdops.Scaled(waveform.Ys(msg), 1.0/msgAmp)
}

// AM modulates the carrier envelope:
//
//	y = A_c * (1 + 0.8*m(t)) * sin(2*pi*f_c*t)
func AM(msg []waveform.Point, msgFreq, msgAmp float64) []waveform.Point {
	m := normalized(msg, msgAmp)
	twoPiCarrier := angular(CarrierFrequency(msgFreq))

	out := make([]waveform.Point, len(msg))
	for i, p := range msg {
		carrier := math.Sin(twoPiCarrier * p.X)
		envelope := 1 + float64(amIndex*m[i])
		out[i] = waveform.Point{X: p.X, Y: carrierAmplitude * envelope * carrier}
	}
	return out
}

// FM modulates the carrier phase with a deviation of half the carrier
// frequency:
//
//	phi(t) = 2*pi*f_c*t + 2*pi*f_d*m(t)*t/f_m
//
// This is not the integral form of FM; the output must stay as is for
// compatibility with existing consumers.
func FM(msg []waveform.Point, msgFreq, msgAmp float64) []waveform.Point {
	m := normalized(msg, msgAmp)
	fc := CarrierFrequency(msgFreq)
	twoPiCarrier := angular(fc)
	twoPiDev := angular(fc * fmDeviationRatio)
	invMsgFreq := 1.0 / msgFreq

	out := make([]waveform.Point, len(msg))
	for i, p := range msg {
		t := p.X
		phase := float64(twoPiCarrier*t) + float64(twoPiDev*m[i]*t*invMsgFreq)
		out[i] = waveform.Point{X: t, Y: carrierAmplitude * math.Sin(phase)}
	}
	return out
}

// PM shifts the carrier phase by up to pi/2:
//
//	phi(t) = 2*pi*f_c*t + (pi/2)*m(t)
func PM(msg []waveform.Point, msgFreq, msgAmp float64) []waveform.Point {
	m := normalized(msg, msgAmp)
	twoPiCarrier := angular(CarrierFrequency(msgFreq))

	out := make([]waveform.Point, len(msg))
	for i, p := range msg {
		phase := float64(twoPiCarrier*p.X) + float64(pmDeviation*m[i])
		out[i] = waveform.Point{X: p.X, Y: carrierAmplitude * math.Sin(phase)}
	}
	return out
}
