package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a parameter outside an operation's domain,
// such as a table size that is not a power of two or an alphabet smaller than 2.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Msg)
}

// Is lets errors.Is(err, ErrInvalidArgument) succeed.
func (e InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Invalidf builds an InvalidArgumentError for op.
func Invalidf(op, format string, args ...any) error {
	return InvalidArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// VerificationError carries the first input for which the De Bruijn lookup
// disagreed with the trailing-zero reference.
type VerificationError struct {
	Input int64
	Got   int
	Want  int
}

func (e VerificationError) Error() string {
	return fmt.Sprintf("verification failed: ffs(%d) = %d, want %d", e.Input, e.Got, e.Want)
}
