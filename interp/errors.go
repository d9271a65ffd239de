package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRTF means the stream does not open with {\rtf.
	ErrNotRTF = errors.New("not an RTF document")
	// ErrAfterEnd means content follows the close of the root group.
	ErrAfterEnd = errors.New("content after end of document")
	// ErrUnterminated means input ended inside the root group.
	ErrUnterminated = errors.New("document not terminated")
	// ErrClosed is returned by Write after Close.
	ErrClosed = errors.New("interpreter closed")
)

// SemanticError reports a token the interpreter could not place.
type SemanticError struct {
	Token string // offending token, empty at end of input
	Pos   int64
	Err   error
}

func (e *SemanticError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("rtf: %v", e.Err)
	}
	return fmt.Sprintf("rtf: %v at offset %d (%s)", e.Err, e.Pos, e.Token)
}

func (e *SemanticError) Unwrap() error { return e.Err }
