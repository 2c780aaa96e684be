package debruijn

import "math/bits"

// FFS returns the 0-based position of the lowest set bit of x, or 32 when
// x is zero. table must come from BuildHashTable(constant, 32).
//
// x & -x isolates the lowest set bit; multiplying the constant by it is a
// left shift, and the top lg(32) bits of the wrapped product index table.
func FFS(constant uint32, table Table, x int32) int {
	if x == 0 {
		return 32
	}
	v := uint32(x)
	v &= -v
	return table[(v*constant)>>uint(32-table.LgN())]
}

// FFS64 is FFS for 64-bit words: table must come from
// BuildHashTable(constant, 64). It returns 64 when x is zero.
func FFS64(constant uint64, table Table, x int64) int {
	if x == 0 {
		return 64
	}
	v := uint64(x)
	v &= -v
	return table[(v*constant)>>uint(64-table.LgN())]
}

// TrailingZeros32 is the reference FFS is checked against: the number of
// trailing zero bits of x, 32 for zero.
func TrailingZeros32(x int32) int {
	return bits.TrailingZeros32(uint32(x))
}
