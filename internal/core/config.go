package core

import (
	"runtime"
	"time"
)

// Constants for the binary, 32-bit case the lookup is built around.
const (
	Word32Bits      = 32
	Word64Bits      = 64
	BinaryAlphabet  = 2
	MaxSequenceSize = 1 << 28 // Upper bound on k^n accepted by the generator
)

// VerifyTimings stores timings for a verification run.
type VerifyTimings struct {
	Elapsed time.Duration
	Checked uint64 // Inputs compared against the reference
}

// VerifyConfig holds parameters for checking a constant/table pair.
type VerifyConfig struct {
	NumThreads int  // Workers sharing the input space; < 1 means 1
	Verbose    bool // Log milestones and progress
	Sampled    bool // Check only bit-position classes, zero and sign extremes
}

// DefaultVerifyConfig creates a configuration with default values.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		NumThreads: runtime.NumCPU(),
		Verbose:    false,
		Sampled:    false,
	}
}

// Workers returns the effective worker count.
func (c VerifyConfig) Workers() int {
	if c.NumThreads < 1 {
		return 1
	}
	return c.NumThreads
}
