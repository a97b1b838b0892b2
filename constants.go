package signalsculptor

// Trace names accepted by [Result.Trace].
const (
	TraceInput       = "input"
	TraceTransmitted = "transmitted"
	TraceOutput      = "output"
)

// Parameter limits.
const (
	minQuantizationLevels = 2
	maxDeltaStepSize      = 1.0
)
