package builder

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klittlepage/misapplied-math/internal/core"
	"github.com/klittlepage/misapplied-math/internal/util"
)

const (
	inputSpace  = uint64(1) << 32
	verifyBlock = uint64(1) << 20 // Inputs between progress/cancellation checks
	noFailure   = uint64(math.MaxUint64)
)

// Lookup32 is a find-first-set implementation under test.
type Lookup32 func(x int32) int

// Reference32 is the trusted trailing-zero count, 32 for zero.
func Reference32(x int32) int {
	return bits.TrailingZeros32(uint32(x))
}

// inputAt maps an ordinal in [0, 2^32) to an int32, starting at MinInt32
// and ending at MaxInt32.
func inputAt(u uint64) int32 {
	return int32(uint32(u) ^ 0x8000_0000)
}

// Verify compares lookup against Reference32. Exhaustive mode covers every
// int32 split across config.Workers() goroutines; sampled mode covers every
// bit position, zero and both sign extremes. The returned error is the
// VerificationError for the first mismatching input in ascending order, a
// context error, or nil.
func Verify(ctx context.Context, lookup Lookup32, config core.VerifyConfig) (core.VerifyTimings, error) {
	start := time.Now()
	if config.Sampled {
		n, err := verifySampled(lookup, config)
		return core.VerifyTimings{Elapsed: time.Since(start), Checked: n}, err
	}
	n, err := verifyExhaustive(ctx, lookup, config)
	return core.VerifyTimings{Elapsed: time.Since(start), Checked: n}, err
}

// SampleInputs returns the inputs checked in sampled mode: for every bit
// position p the isolated bit, the value with all bits >= p set, and the
// bit under a fixed high-bit pattern; plus zero, MinInt32, MaxInt32.
func SampleInputs() []int32 {
	samples := []int32{0, math.MinInt32, math.MaxInt32}
	for p := 0; p < core.Word32Bits; p++ {
		lo := uint32(1) << uint(p)
		samples = append(samples,
			int32(lo),
			int32(-lo),
			int32(lo|(0xA5A5_A5A5&^(lo<<1-1))),
		)
	}
	return samples
}

func verifySampled(lookup Lookup32, config core.VerifyConfig) (uint64, error) {
	samples := SampleInputs()
	util.Log(config.Verbose, "Verifying %d sampled inputs", len(samples))
	for i, x := range samples {
		if got, want := lookup(x), Reference32(x); got != want {
			return uint64(i + 1), core.VerificationError{Input: int64(x), Got: got, Want: want}
		}
	}
	return uint64(len(samples)), nil
}

func verifyExhaustive(ctx context.Context, lookup Lookup32, config core.VerifyConfig) (uint64, error) {
	numThreads := config.Workers()
	shard := (inputSpace + uint64(numThreads) - 1) / uint64(numThreads)
	util.Log(config.Verbose, "Verifying all %d inputs with %d workers", inputSpace, numThreads)

	progress := util.NewProgressLogger((inputSpace+verifyBlock-1)/verifyBlock, "verify: ", "", config.Verbose)
	defer progress.Finalize()

	// Lowest failing ordinal seen so far. A worker keeps going only while
	// it is below this, so the reported failure is the first in order.
	var firstFailure atomic.Uint64
	firstFailure.Store(noFailure)
	var checked atomic.Uint64
	var ctxErr error
	var ctxOnce sync.Once

	var wg sync.WaitGroup
	wg.Add(numThreads)

	worker := func(from, to uint64) {
		defer wg.Done()
		for blockStart := from; blockStart < to; blockStart += verifyBlock {
			if err := ctx.Err(); err != nil {
				ctxOnce.Do(func() { ctxErr = err })
				return
			}
			if blockStart > firstFailure.Load() {
				return
			}
			blockEnd := min(blockStart+verifyBlock, to)
			for u := blockStart; u < blockEnd; u++ {
				x := inputAt(u)
				if lookup(x) != Reference32(x) {
					recordFailure(&firstFailure, u)
					checked.Add(u - blockStart + 1)
					return
				}
			}
			checked.Add(blockEnd - blockStart)
			progress.Log()
		}
	}

	for tid := 0; tid < numThreads; tid++ {
		from := uint64(tid) * shard
		to := min(from+shard, inputSpace)
		if from >= to {
			wg.Done()
			continue
		}
		go worker(from, to)
	}
	wg.Wait()

	if u := firstFailure.Load(); u != noFailure {
		x := inputAt(u)
		return checked.Load(), core.VerificationError{Input: int64(x), Got: lookup(x), Want: Reference32(x)}
	}
	if ctxErr != nil {
		return checked.Load(), fmt.Errorf("verification interrupted: %w", ctxErr)
	}
	return checked.Load(), nil
}

// recordFailure lowers *first to u if u is smaller.
func recordFailure(first *atomic.Uint64, u uint64) {
	for {
		cur := first.Load()
		if u >= cur || first.CompareAndSwap(cur, u) {
			return
		}
	}
}
