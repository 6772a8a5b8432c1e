package namecodec

import (
	"errors"
	"fmt"
)

// ErrMalformed is the sentinel for every decode failure in this package.
// Callers branch with errors.Is; the wrapping *Error carries position detail.
var ErrMalformed = errors.New("namecodec: malformed input")

// Error describes where a decode failed.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Op      string
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("namecodec: %s: %s (offset %d)", e.Op, e.Message, e.Offset)
}

func (e *Error) Unwrap() error { return ErrMalformed }

func malformed(op string, offset int, msg string) error {
	return &Error{Op: op, Offset: offset, Message: msg}
}

// IsMalformed reports whether err is (or wraps) a decode failure.
func IsMalformed(err error) bool { return errors.Is(err, ErrMalformed) }
