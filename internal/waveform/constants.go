package waveform

// Base signal timing.
const (
	// Duration is the length of every analog base signal in seconds.
	Duration = 2.0

	// ModulatorRate is the tone sampling rate used by the analog modulators.
	ModulatorRate = 200

	// ConverterRate is the tone sampling rate used by the PCM and delta converters.
	ConverterRate = 100

	// BitDuration is the time each bit occupies in a digital base signal.
	BitDuration = 1.0
)
