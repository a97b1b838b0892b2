package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:50051", cfg.Listen)
	assert.False(t, cfg.Discovery.Enabled)
}

func TestParse_MergesOverDefaults(t *testing.T) {
	data := []byte(`
listen: 127.0.0.1:9000
shutdown_timeout: 3s
log:
  level: debug
limits:
  max_bits: 64
discovery:
  enabled: true
wav:
  bit_depth: 24
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, 64, cfg.Limits.MaxBits)
	assert.Equal(t, float64(DefaultMaxSamplingRate), cfg.Limits.MaxSamplingRate)
	assert.Equal(t, DefaultMaxSpectrum, cfg.Limits.MaxSpectrumSamples)
	assert.True(t, cfg.Discovery.Enabled)
	assert.Equal(t, DefaultServiceName, cfg.Discovery.Name)
	assert.Equal(t, 24, cfg.WAV.BitDepth)
	assert.Equal(t, DefaultWAVSampleRate, cfg.WAV.SampleRate)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty listen", `listen: ""`},
		{"log level", "log:\n  level: verbose"},
		{"log format", "log:\n  format: xml"},
		{"max bits", "limits:\n  max_bits: 0"},
		{"sampling rate", "limits:\n  max_sampling_rate: -1"},
		{"body bytes", "limits:\n  max_body_bytes: 0"},
		{"spectrum samples", "limits:\n  max_spectrum_samples: 3"},
		{"discovery name", "discovery:\n  enabled: true\n  name: \"\""},
		{"wav rate", "wav:\n  sample_rate: 0"},
		{"wav depth", "wav:\n  bit_depth: 8"},
		{"shutdown", "shutdown_timeout: 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("listen: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sculptor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":8080\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
