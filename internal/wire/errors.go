package wire

import (
	"errors"
	"fmt"
)

// Parse error kinds. Use errors.Is to test a *ParseError against them.
var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidDistance  = errors.New("invalid distance")
)

// ErrNoIntersections is returned by the analyzer when the two wires never
// share a grid point. It is an expected outcome for some inputs.
var ErrNoIntersections = errors.New("no intersections between the two wires")

// ErrWireCount is returned when an input does not contain exactly two wires.
var ErrWireCount = errors.New("expected exactly two wires")

// ErrTooLarge is returned by Render when the plot exceeds the size limit.
var ErrTooLarge = errors.New("plot exceeds size limit")

// ParseError describes a malformed path token.
type ParseError struct {
	Index int    // Position of the token in its line, or -1 for a lone token
	Token string // The offending token text
	Kind  error  // ErrInvalidDirection or ErrInvalidDistance
	Err   error  // Underlying conversion error, if any
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("wire: token %q: %v", e.Token, e.Kind)
	if e.Index >= 0 {
		msg = fmt.Sprintf("wire: token %d %q: %v", e.Index, e.Token, e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the error kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
