package etl

import "slices"

// Purpose is the semantic role of a field.
type Purpose string

const (
	PurposeSubject Purpose = "subject"
	PurposeQuality Purpose = "quality"
	PurposeMValue  Purpose = "mvalue"
	PurposeMComp   Purpose = "mcomp"
	PurposeMSpan   Purpose = "mspan"
)

// Purposes lists every recognized purpose.
var Purposes = []Purpose{PurposeSubject, PurposeQuality, PurposeMValue, PurposeMComp, PurposeMSpan}

// IsValid returns true if the purpose is a recognized value.
func (p Purpose) IsValid() bool {
	return slices.Contains(Purposes, p)
}

// IsMeasurement returns true for the purposes that describe a measurement
// (value, component or span).
func (p Purpose) IsMeasurement() bool {
	switch p {
	case PurposeMValue, PurposeMComp, PurposeMSpan:
		return true
	default:
		return false
	}
}

// ParsePurpose converts a string into a Purpose.
func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.IsValid() {
		return "", &UnknownPurposeError{Value: s}
	}

	return p, nil
}

// UnmarshalText rejects unrecognized purposes at decode time.
func (p *Purpose) UnmarshalText(text []byte) error {
	parsed, err := ParsePurpose(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
