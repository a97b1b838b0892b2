package adc

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toprakmurat/SignalSculptor/internal/testutil"
	"github.com/toprakmurat/SignalSculptor/internal/waveform"
)

func TestTicks(t *testing.T) {
	got := slices.Collect(Ticks(1, 4))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	got = slices.Collect(Ticks(1.99, 10))
	require.Len(t, got, 20)
	assert.InDelta(t, 1.9, got[19], 0)

	// Breaking out of the loop early must stop the sequence.
	n := 0
	for range Ticks(100, 1) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestTicks_MatchConverterGrid(t *testing.T) {
	signal := waveform.Sine(1, 1, waveform.ConverterRate)
	_, end := waveform.Span(signal)
	got := slices.Collect(Ticks(end, waveform.ConverterRate))
	assert.Len(t, got, len(signal))
}

func TestPCM_TwoLevels(t *testing.T) {
	const amp = 2.5
	signal := waveform.Sine(1, amp, waveform.ConverterRate)
	transmitted, output := PCM(signal, amp, 10, 2)

	require.Len(t, transmitted, 20)
	require.Len(t, output, 20)
	testutil.AssertValuesIn(t, transmitted, []float64{0, 1})
	testutil.AssertValuesIn(t, output, []float64{-amp, amp})

	// A zero input sits exactly halfway and rounds away from zero.
	assert.InDelta(t, 1.0, transmitted[0].Y, 0)
	assert.InDelta(t, amp, output[0].Y, 0)
}

func TestPCM_QuantizationError(t *testing.T) {
	const (
		amp    = 1.0
		levels = 16
	)
	signal := waveform.Sine(0.5, amp, waveform.ConverterRate)
	transmitted, output := PCM(signal, amp, 40, levels)

	require.Len(t, output, len(transmitted))
	halfStep := amp / float64(levels-1)
	for i, p := range output {
		in := waveform.At(signal, p.X)
		assert.LessOrEqual(t, math.Abs(p.Y-in), halfStep+1e-12, "tick %d", i)

		idx := transmitted[i].Y
		assert.Equal(t, math.Trunc(idx), idx, "index must be integral")
		testutil.AssertInRange(t, idx, 0, levels-1)
	}
	testutil.AssertNonDecreasingX(t, output)
}

func TestDelta_HandWorked(t *testing.T) {
	signal := []waveform.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}
	transmitted, output := Delta(signal, 1, 1, 1)

	assert.Equal(t, []waveform.Point{{X: 0, Y: 1}, {X: 1, Y: 0}}, transmitted)
	assert.Equal(t, []float64{0, 0, 1, 1, 0, 0}, waveform.Ys(output))
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0.999, 1, 1}, waveform.Xs(output), 1e-12)
}

func TestDelta_Layout(t *testing.T) {
	signal := waveform.Sine(1, 1, waveform.ConverterRate)
	transmitted, output := Delta(signal, 1, 25, 0.1)

	ticks := len(transmitted)
	require.Equal(t, 50, ticks)
	require.Len(t, output, 2*ticks+2)

	assert.Equal(t, waveform.Point{}, output[0])
	_, end := waveform.Span(signal)
	assert.InDelta(t, end, output[len(output)-1].X, 0)
	assert.InDelta(t, output[len(output)-2].Y, output[len(output)-1].Y, 0)

	testutil.AssertNonDecreasingX(t, output)
	testutil.AssertValuesIn(t, transmitted, []float64{0, 1})
}

func TestDelta_Clamped(t *testing.T) {
	const amp = 2.0
	signal := []waveform.Point{{X: 0, Y: 50}, {X: 2, Y: 50}}
	_, output := Delta(signal, amp, 20, 1)

	testutil.AssertAllInRange(t, waveform.Ys(output), -1.5*amp, 1.5*amp)
	assert.InDelta(t, 1.5*amp, output[len(output)-1].Y, 0)
}

func TestDelta_HighRateStaysOrdered(t *testing.T) {
	signal := waveform.Sine(1, 1, waveform.ConverterRate)
	_, output := Delta(signal, 1, 4000, 0.05)
	testutil.AssertNonDecreasingX(t, output)
}

// Reference vectors for a 1.3 Hz, amplitude 2 tone read at 37 ticks per
// second, where every tick after the first lands off the 10 ms grid and
// is snapped to the microsecond.
var (
	refPCMIndices = []float64{
		4, 4, 5, 6, 6, 7, 7, 7, 7, 7, 6, 6, 5, 4, 4, 3, 2, 1, 1, 0, 0, 0, 0, 0, 1,
		1, 2, 2, 3, 4, 5, 5, 6, 6, 7, 7, 7, 7, 7, 6, 5, 5, 4, 3, 3, 2, 1, 1, 0, 0,
		0, 0, 0, 1, 1, 2, 3, 4, 4, 5, 6, 6, 7, 7, 7, 7, 7, 6, 6, 5, 4, 4, 3, 2,
	}
	refDeltaBits = "01111101010001000000101011011111110101001000000010101011111111010101000000"
	refDeltaHead = []float64{-0.5, 0, 0.5, 1, 1.5, 2, 1.5, 2, 1.5, 2, 1.5, 1}
)

func TestPCM_ReferenceVector(t *testing.T) {
	signal := waveform.Sine(1.3, 2, waveform.ConverterRate)
	transmitted, output := PCM(signal, 2, 37, 8)

	require.Len(t, transmitted, len(refPCMIndices))
	assert.Equal(t, refPCMIndices, waveform.Ys(transmitted))
	assert.Equal(t, []float64{0, 0.027027, 0.054054}, waveform.Xs(transmitted[:3]))
	assert.Equal(t, 1.972973, transmitted[len(transmitted)-1].X)

	for i, q := range refPCMIndices {
		assert.InDelta(t, (q/7*2-1)*2, output[i].Y, 1e-12, "tick %d", i)
	}
}

func TestDelta_ReferenceVector(t *testing.T) {
	signal := waveform.Sine(1.3, 2, waveform.ConverterRate)
	transmitted, output := Delta(signal, 2, 37, 0.25)

	bits := make([]byte, len(transmitted))
	for i, p := range transmitted {
		bits[i] = '0' + byte(p.Y)
	}
	assert.Equal(t, refDeltaBits, string(bits))

	require.Len(t, output, 2*len(refDeltaBits)+2)
	for i, want := range refDeltaHead {
		assert.Equal(t, want, output[2+2*i].Y, "approximation after tick %d", i)
	}
	assert.Equal(t, 0.027027, output[4].X)
	assert.Equal(t, 1.99, output[len(output)-1].X)
}
