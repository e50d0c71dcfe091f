package game

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotANumber is returned by ParseGuess for input that is not an unsigned integer.
	ErrNotANumber = errors.New("not a number")
	// ErrReadLine marks a failure to read from the input stream, including end of
	// stream and invalid encoding.
	ErrReadLine = errors.New("failed to read line")
	// ErrInvalidUTF8 is wrapped by a ReadError when a line is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// ReadError is returned when the input stream can no longer produce lines.
// It matches ErrReadLine and unwraps to the underlying read error.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return ErrReadLine.Error() + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrReadLine
}
