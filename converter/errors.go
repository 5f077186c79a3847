package converter

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStructure marks a document that parsed as JSON but lacks the
// keys the conversion needs
var ErrUnexpectedStructure = errors.New("unexpected document structure")

// IOError reports a failure to read the input or write the output
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports input that is not valid JSON or lacks the expected structure
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func structureError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedStructure, fmt.Sprintf(format, args...))
}
