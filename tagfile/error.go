package tagfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMultipleSections is returned by NewSection when its input contains
	// a blank line.
	ErrMultipleSections = errors.New("more than one section was found")
	// ErrEmptySection is returned by NewSection for an empty input.
	ErrEmptySection = errors.New("an empty string was passed")
	// ErrMissingSeparator reports a key line without a ':'.
	ErrMissingSeparator = errors.New("line doesn't contain a ':' separator")
	// ErrNoKey reports an indented line that has no field to extend.
	ErrNoKey = errors.New("no key defined for the currently indented line")
)

// ParserError is the error returned for malformed tag files.
type ParserError struct {
	// Err is one of the sentinel errors of this package.
	Err error
	// Line is the 1-based line number the error refers to, or 0 when the
	// error is not tied to a line.
	Line int
}

func (e *ParserError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d", e.Err, e.Line)
	}
	return e.Err.Error()
}

// Unwrap returns the sentinel error, for use with errors.Is.
func (e *ParserError) Unwrap() error { return e.Err }

func parserError(err error, line int) *ParserError {
	return &ParserError{Err: err, Line: line}
}
