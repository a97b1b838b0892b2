package adc

import (
	"math"

	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

// PCM uniformly quantizes signal, whose peak amplitude is amp, into levels
// steps at samplingRate ticks per second.
//
// transmitted holds the quantization index per tick and output the value
// reconstructed from it. Requires amp > 0, samplingRate > 0 and levels >= 2.
func PCM(signal []waveform.Point, amp, samplingRate float64, levels int) (transmitted, output []waveform.Point) {
	_, end := waveform.Span(signal)
	invAmp := 1.0 / amp
	quantRange := float64(levels - 1)
	invQuantRange := 1.0 / quantRange

	for t := range Ticks(end, samplingRate) {
		v := waveform.At(signal, t)

		normalized := (float64(v*invAmp) + 1) * 0.5
		quantized := math.Round(normalized * quantRange)
		reconstructed := (float64(quantized*invQuantRange*2) - 1) * amp

		transmitted = append(transmitted, waveform.Point{X: t, Y: quantized})
		output = append(output, waveform.Point{X: t, Y: reconstructed})
	}
	return transmitted, output
}
