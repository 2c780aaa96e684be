package core

import "math/bits"

// MaxWordBits is the widest word a table can index.
const MaxWordBits = 64

// IsPositivePowerOfTwo reports whether x > 0 and x has exactly one bit set.
func IsPositivePowerOfTwo(x int) bool {
	return x > 0 && x&-x == x
}

// Lg returns log2(n) for a power of two n, read off the bit pattern
// rather than computed in floating point.
func Lg(n int) int {
	return bits.TrailingZeros64(uint64(n))
}

// WordMask returns a mask of the low width bits. width must be in [1, 64].
func WordMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// Pow returns k^n and false if the result does not fit in limit.
func Pow(k, n int, limit uint64) (uint64, bool) {
	r := uint64(1)
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(r, uint64(k))
		if hi != 0 || lo > limit {
			return 0, false
		}
		r = lo
	}
	return r, true
}
