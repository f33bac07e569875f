package custody

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotProcessed is returned when derived fields are requested
	// before Dataset.Process ran.
	ErrNotProcessed = errors.New("dataset not processed")

	// ErrBadFraction is returned by Reduce for fractions outside (0,1].
	ErrBadFraction = errors.New("fraction must be in (0,1]")
)

// ParseError reports a field value which cannot be interpreted, e.g. an
// age which is neither an integer nor the "Unk" sentinel.
type ParseError struct {
	Field string
	Index int // record index, -1 if not known
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("record %d: cannot parse %s %q: %v", e.Index, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports required columns absent from the input.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// DataValidationError reports a value outside a fixed enumeration. It
// is only produced in Strict mode.
type DataValidationError struct {
	Field string
	Index int
	Value string
}

func (e *DataValidationError) Error() string {
	return fmt.Sprintf("record %d: %s value %q not in enumeration", e.Index, e.Field, e.Value)
}
