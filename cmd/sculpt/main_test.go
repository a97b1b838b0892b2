package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signalsculptor "github.com/toprakmurat/SignalSculptor"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestRun_LineToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"line", "--scheme", "ami", "--bits", "1010"}, &stdout, &stderr, fixedNow)
	require.NoError(t, err, stderr.String())

	var res signalsculptor.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	require.Len(t, res.Transmitted, 8)
	ys := make([]float64, len(res.Transmitted))
	for i, p := range res.Transmitted {
		ys[i] = p.Y
	}
	assert.Equal(t, []float64{1, 1, 0, 0, -1, -1, 0, 0}, ys)
}

func TestRun_OutputPattern(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "runs", "pcm-%Y%m%d-%H%M%S.json")

	var stdout, stderr bytes.Buffer
	err := run([]string{"pcm", "--rate", "10", "--levels", "4", "--out", pattern}, &stdout, &stderr, fixedNow)
	require.NoError(t, err, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(filepath.Join(dir, "runs", "pcm-20240309-140507.json"))
	require.NoError(t, err)

	var res signalsculptor.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Len(t, res.Transmitted, 20)
}

func TestRun_WAVAndSpectrum(t *testing.T) {
	wavPath := filepath.Join(t.TempDir(), "fsk.wav")

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"keying", "-s", "fsk", "-b", "10",
		"--wav", wavPath, "--wav-rate", "1000",
		"--spectrum", "--top", "2", "--window", "kaiser",
	}, &stdout, &stderr, fixedNow)
	require.NoError(t, err, stderr.String())

	f, err := os.Open(wavPath)
	require.NoError(t, err)
	defer f.Close()
	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(1000), dec.SampleRate)

	assert.Contains(t, stderr.String(), "Spectrum of transmitted")
	assert.Contains(t, stderr.String(), "kaiser window")
	assert.Contains(t, stderr.String(), "#2")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no kind", nil},
		{"unknown kind", []string{"radio"}},
		{"unknown scheme", []string{"analog", "--scheme", "qam"}},
		{"invalid parameter", []string{"analog", "--freq", "0"}},
		{"invalid bits", []string{"line", "--bits", "10x"}},
		{"bad trace", []string{"line", "--trace", "carrier"}},
		{"bad wav depth", []string{"line", "--wav", filepath.Join(t.TempDir(), "x.wav"), "--wav-depth", "12"}},
		{"bad window", []string{"line", "--spectrum", "--window", "blackman"}},
		{"extra argument", []string{"line", "extra"}},
		{"unknown flag", []string{"line", "--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(tt.args, &stdout, &stderr, fixedNow))
		})
	}
}

func TestRun_InvalidParameterIsReported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"delta", "--step", "1.5"}, &stdout, &stderr, fixedNow)
	assert.ErrorIs(t, err, signalsculptor.ErrInvalidParameter)
}

func TestExpandPath(t *testing.T) {
	got, err := expandPath("out/%Y-%m-%d.json", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "out/2024-03-09.json", got)

	got, err = expandPath("plain.json", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "plain.json", got)
}

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseAfter(t *testing.T) {
	errWrite := errors.New("write failed")
	errClose := errors.New("disk full")

	c := &closer{err: errClose}
	err := closeAfter(c, nil)
	assert.True(t, c.closed)
	assert.ErrorIs(t, err, errClose)

	c = &closer{err: errClose}
	assert.ErrorIs(t, closeAfter(c, errWrite), errWrite)
	assert.True(t, c.closed)

	c = &closer{}
	assert.NoError(t, closeAfter(c, nil))
	assert.True(t, c.closed)
}
