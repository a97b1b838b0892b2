package main

// Default command-line flag values
const (
	defaultFrequency = 2.0 // Hz
	defaultAmplitude = 1.0
	defaultBits      = "1011000000001"
	defaultRate      = 20.0 // ADC ticks per second
	defaultLevels    = 8
	defaultStep      = 0.2
	defaultOut       = "-"
)

// Spectrum summary parameters
const (
	defaultSpectrumRate = 200.0 // Grid used to resample a trace
	defaultSpectrumTop  = 5     // Strongest bins printed
)

// File modes
const (
	outputFileMode = 0o644
	outputDirMode  = 0o755
)
