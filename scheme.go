package signalsculptor

import (
	"fmt"
	"strings"
)

// AnalogScheme selects an analog-to-analog modulation.
type AnalogScheme int

const (
	// AM is amplitude modulation with index 0.8.
	AM AnalogScheme = iota
	// FM is frequency modulation with a deviation of half the carrier.
	FM
	// PM is phase modulation with a pi/2 deviation.
	PM
)

// DigitalScheme selects a digital-to-analog keying.
type DigitalScheme int

const (
	// ASK keys the carrier amplitude.
	ASK DigitalScheme = iota
	// FSK keys the carrier frequency.
	FSK
	// PSK keys the carrier phase.
	PSK
)

// LineCode selects a digital-to-digital line coding.
type LineCode int

const (
	// NRZL sends -1 for a one and +1 for a zero.
	NRZL LineCode = iota
	// NRZI toggles the level on every one.
	NRZI
	// Manchester flips at mid-bit: high to low for zero, low to high for one.
	Manchester
	// DifferentialManchester flips at mid-bit and also at the start of a zero.
	DifferentialManchester
	// AMI alternates the polarity of ones and sends zeros as 0 V.
	AMI
	// Pseudoternary alternates the polarity of zeros and sends ones as 0 V.
	Pseudoternary
	// B8ZS is AMI with eight-zero runs replaced by 000VB0VB.
	B8ZS
	// HDB3 is AMI with four-zero runs replaced by 000V or B00V.
	HDB3
)

var (
	analogNames  = [...]string{AM: "AM", FM: "FM", PM: "PM"}
	digitalNames = [...]string{ASK: "ASK", FSK: "FSK", PSK: "PSK"}
	lineNames    = [...]string{
		NRZL:                   "NRZ_L",
		NRZI:                   "NRZ_I",
		Manchester:             "MANCHESTER",
		DifferentialManchester: "DIFFERENTIAL_MANCHESTER",
		AMI:                    "AMI",
		Pseudoternary:          "PSEUDOTERNARY",
		B8ZS:                   "B8ZS",
		HDB3:                   "HDB3",
	}
)

// AnalogSchemes lists every analog scheme in declaration order.
func AnalogSchemes() []AnalogScheme { return []AnalogScheme{AM, FM, PM} }

// DigitalSchemes lists every digital scheme in declaration order.
func DigitalSchemes() []DigitalScheme { return []DigitalScheme{ASK, FSK, PSK} }

// LineCodes lists every line code in declaration order.
func LineCodes() []LineCode {
	codes := make([]LineCode, len(lineNames))
	for i := range codes {
		codes[i] = LineCode(i)
	}
	return codes
}

func (s AnalogScheme) valid() bool  { return s >= 0 && int(s) < len(analogNames) }
func (s DigitalScheme) valid() bool { return s >= 0 && int(s) < len(digitalNames) }
func (c LineCode) valid() bool      { return c >= 0 && int(c) < len(lineNames) }

func (s AnalogScheme) String() string {
	if !s.valid() {
		return fmt.Sprintf("AnalogScheme(%d)", int(s))
	}
	return analogNames[s]
}

func (s DigitalScheme) String() string {
	if !s.valid() {
		return fmt.Sprintf("DigitalScheme(%d)", int(s))
	}
	return digitalNames[s]
}

func (c LineCode) String() string {
	if !c.valid() {
		return fmt.Sprintf("LineCode(%d)", int(c))
	}
	return lineNames[c]
}

// ParseAnalogScheme parses a scheme name such as "am" or "FM".
func ParseAnalogScheme(name string) (AnalogScheme, error) {
	i, err := lookup(analogNames[:], name)
	return AnalogScheme(i), err
}

// ParseDigitalScheme parses a scheme name such as "ask" or "PSK".
func ParseDigitalScheme(name string) (DigitalScheme, error) {
	i, err := lookup(digitalNames[:], name)
	return DigitalScheme(i), err
}

// ParseLineCode parses a line code name. Case is ignored and '-' is
// treated as '_', so "nrz-l", "NRZ_L" and "Nrz-L" all name [NRZL].
func ParseLineCode(name string) (LineCode, error) {
	i, err := lookup(lineNames[:], name)
	return LineCode(i), err
}

func lookup(names []string, name string) (int, error) {
	key := normalizeName(name)
	for i, n := range names {
		if n == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "_")
}
