// Package config loads the server configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level server configuration.
type Config struct {
	Listen          string          `yaml:"listen"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	Log             LogConfig       `yaml:"log"`
	Limits          LimitsConfig    `yaml:"limits"`
	Discovery       DiscoveryConfig `yaml:"discovery"`
	WAV             WAVConfig       `yaml:"wav"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LimitsConfig bounds the work a single request may ask for.
type LimitsConfig struct {
	MaxBits         int     `yaml:"max_bits"`
	MaxSamplingRate float64 `yaml:"max_sampling_rate"`
	MaxBodyBytes    int64   `yaml:"max_body_bytes"`

	// MaxSpectrumSamples caps the grid a spectrum request may transform.
	MaxSpectrumSamples int `yaml:"max_spectrum_samples"`
}

// DiscoveryConfig controls the DNS-SD announcement.
type DiscoveryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Name    string `yaml:"name"`
}

// WAVConfig sets the format of ?format=wav replies.
type WAVConfig struct {
	SampleRate int `yaml:"sample_rate"`
	BitDepth   int `yaml:"bit_depth"`
}

// Default values.
const (
	DefaultListen          = "0.0.0.0:50051"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMaxBits         = 4096
	DefaultMaxSamplingRate = 100000
	DefaultMaxBodyBytes    = 1 << 20
	DefaultMaxSpectrum     = 1 << 16
	DefaultServiceName     = "SignalSculptor"
	DefaultWAVSampleRate   = 8000
	DefaultWAVBitDepth     = 16
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "logfmt"}
	bitDepths  = []int{16, 24, 32}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:          DefaultListen,
		ShutdownTimeout: DefaultShutdownTimeout,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Limits: LimitsConfig{
			MaxBits:         DefaultMaxBits,
			MaxSamplingRate: DefaultMaxSamplingRate,
			MaxBodyBytes:    DefaultMaxBodyBytes,

			MaxSpectrumSamples: DefaultMaxSpectrum,
		},
		Discovery: DiscoveryConfig{
			Name: DefaultServiceName,
		},
		WAV: WAVConfig{
			SampleRate: DefaultWAVSampleRate,
			BitDepth:   DefaultWAVBitDepth,
		},
	}
}

// Load reads filename over the defaults and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Keys
// absent from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidConfig)
	}
	if !contains(logLevels, c.Log.Level) {
		return fmt.Errorf("%w: log level must be one of %v", ErrInvalidConfig, logLevels)
	}
	if !contains(logFormats, c.Log.Format) {
		return fmt.Errorf("%w: log format must be one of %v", ErrInvalidConfig, logFormats)
	}
	if c.Limits.MaxBits < 1 {
		return fmt.Errorf("%w: max_bits must be at least 1", ErrInvalidConfig)
	}
	if c.Limits.MaxSpectrumSamples < 4 {
		return fmt.Errorf("%w: max_spectrum_samples must be at least 4", ErrInvalidConfig)
	}
	if !(c.Limits.MaxSamplingRate > 0) {
		return fmt.Errorf("%w: max_sampling_rate must be positive", ErrInvalidConfig)
	}
	if c.Limits.MaxBodyBytes < 1 {
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	if c.Discovery.Enabled && c.Discovery.Name == "" {
		return fmt.Errorf("%w: discovery name is empty", ErrInvalidConfig)
	}
	if c.WAV.SampleRate <= 0 {
		return fmt.Errorf("%w: wav sample rate must be positive", ErrInvalidConfig)
	}
	if !contains(bitDepths, c.WAV.BitDepth) {
		return fmt.Errorf("%w: wav bit depth must be one of %v", ErrInvalidConfig, bitDepths)
	}
	return nil
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
