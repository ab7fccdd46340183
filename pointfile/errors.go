package pointfile

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen wraps failures to open the input.
	ErrOpen = errors.New("pointfile: cannot open input")

	// ErrMissingField is reported when a line has fewer than two fields.
	ErrMissingField = errors.New("pointfile: expected two integer fields")

	// ErrInvalidCoordinate is reported when one of the first two fields is not an integer.
	ErrInvalidCoordinate = errors.New("pointfile: invalid coordinate")
)

// LineError describes a malformed input line.
type LineError struct {
	Line int    // 1-based line number
	Text string // line content without the trailing newline
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("pointfile: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
