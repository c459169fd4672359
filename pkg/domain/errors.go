package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidLines is returned when the cast does not hold six valid line values.
var ErrInvalidLines = errors.New("invalid line values")

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// ErrCorruptTable signals a static table that violates its own invariants.
// It is only ever raised during package initialization.
var ErrCorruptTable = errors.New("corrupt static table")

// LineError describes why a cast was rejected.
type LineError struct {
	// Index is the offending 0-based line, or -1 when the count is wrong.
	Index int
	Value int
	Count int
}

func (e *LineError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("expected 6 line values, got %d", e.Count)
	}
	return fmt.Sprintf("line %d: value %d is not one of 1,2,3,4,6,7,8,9", e.Index+1, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidLines).
func (e *LineError) Unwrap() error {
	return ErrInvalidLines
}

// ParseError is returned by text unmarshalers of the calendar alphabets.
type ParseError struct {
	Kind  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}
