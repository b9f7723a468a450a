package ase

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kinds of decoding failure. Every error returned by the decoder matches
// exactly one of these with errors.Is.
var (
	ErrUnexpectedEndOfData = errors.New("unexpected end of data")
	ErrMagicMismatch       = errors.New("magic number mismatch")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrInvalidRange        = errors.New("invalid range")
	ErrDecompression       = errors.New("data decompression failed")
	ErrUnsupportedCelType  = errors.New("invalid/unsupported cel type")
)

// DecodeError describes where in the buffer decoding stopped.
type DecodeError struct {
	Kind   error // one of the Err* values above
	Offset int   // byte offset the failure relates to; -1 if none
	Detail string
}

func (e *DecodeError) Error() string {
	msg := "ase: " + e.Kind.Error()
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap lets errors.Is match the error kind.
func (e *DecodeError) Unwrap() error { return e.Kind }

// Cause makes errors.Cause return the error kind.
func (e *DecodeError) Cause() error { return e.Kind }

func newError(kind error, offset int, format string, args ...interface{}) error {
	return errors.WithStack(&DecodeError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	})
}
