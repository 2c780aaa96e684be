package debruijn

import "github.com/klittlepage/misapplied-math/internal/core"

// ErrInvalidArgument matches any InvalidArgumentError via errors.Is.
var ErrInvalidArgument = core.ErrInvalidArgument

type (
	// InvalidArgumentError reports a parameter outside an operation's domain.
	InvalidArgumentError = core.InvalidArgumentError
	// VerificationError carries the first input a lookup got wrong.
	VerificationError = core.VerificationError
)
