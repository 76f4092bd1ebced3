package etl

import "fmt"

// EmptyInputError is returned by strict operations that require at least
// one input element.
type EmptyInputError struct {
	// Op names the operation that received no input.
	Op string
}

func (e *EmptyInputError) Error() string {
	return e.Op + ": empty input"
}

// MissingReferenceError is returned when a time span source lacks the
// reference date or interval needed to reconcile it.
type MissingReferenceError struct {
	Filename string
	Field    string
	// What names the missing element, e.g. "time.reference.value".
	What string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: field %q is missing %s", e.Filename, e.Field, e.What)
}

// UnknownTimeUnitError is returned for unit names outside the TimeUnit set.
type UnknownTimeUnitError struct {
	Value string
}

func (e *UnknownTimeUnitError) Error() string {
	return fmt.Sprintf("unknown time unit %q", e.Value)
}

// UnknownPurposeError is returned for purpose names outside the Purpose set.
type UnknownPurposeError struct {
	Value string
}

func (e *UnknownPurposeError) Error() string {
	return fmt.Sprintf("unknown purpose %q (expected one of subject, quality, mvalue, mcomp, mspan)", e.Value)
}

// DateParseError is returned when a reference date does not match the
// format declared by its source.
type DateParseError struct {
	Filename string
	Value    string
	Format   string
	Err      error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q with format %q: %v", e.Filename, e.Value, e.Format, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
