package debruijn

import (
	"context"

	"github.com/klittlepage/misapplied-math/internal/builder"
	"github.com/klittlepage/misapplied-math/internal/core"
)

// VerifyConfig controls how Verify walks the input space.
type VerifyConfig = core.VerifyConfig

// VerifyTimings reports how long a verification took and how many
// inputs it compared.
type VerifyTimings = core.VerifyTimings

// DefaultVerifyConfig is exhaustive, quiet and uses every CPU.
func DefaultVerifyConfig() VerifyConfig {
	return core.DefaultVerifyConfig()
}

// Verify checks FFS(constant, table, x) against TrailingZeros32 for every
// int32 x. It returns nil on success, or a VerificationError for the first
// (lowest) mismatching input.
func Verify(constant uint32, table Table) error {
	_, err := VerifyWithConfig(context.Background(), constant, table, DefaultVerifyConfig())
	return err
}

// VerifyWithConfig is Verify with explicit workers, logging and sampling.
// Cancelling ctx stops an exhaustive run early with a wrapped ctx.Err().
func VerifyWithConfig(ctx context.Context, constant uint32, table Table, config VerifyConfig) (VerifyTimings, error) {
	if table.Len() != core.Word32Bits {
		return VerifyTimings{}, core.Invalidf("Verify", "table has %d slots, need %d", table.Len(), core.Word32Bits)
	}
	return builder.Verify(ctx, func(x int32) int {
		return FFS(constant, table, x)
	}, config)
}
