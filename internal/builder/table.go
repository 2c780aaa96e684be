package builder

import (
	"github.com/klittlepage/misapplied-math/internal/core"
)

// BuildTable builds the minimal perfect hash table for a De Bruijn constant
// of window length lg(n), over an n-bit word. n must be a power of two in
// [1, 64] and constant must fit in n bits.
//
// Slot (constant << i) >> (n - lg n), taken in n-bit arithmetic, receives i.
// A constant that hits some slot twice is not a De Bruijn constant for this
// width and is rejected; no partial table is returned.
func BuildTable(constant uint64, n int) (core.Table, error) {
	if !core.IsPositivePowerOfTwo(n) || n > core.MaxWordBits {
		return nil, core.Invalidf("BuildTable", "n = %d is not a positive power of two <= %d", n, core.MaxWordBits)
	}
	mask := core.WordMask(n)
	if constant&^mask != 0 {
		return nil, core.Invalidf("BuildTable", "constant %#x does not fit in %d bits", constant, n)
	}

	lgN := core.Lg(n)
	shift := uint(n - lgN)
	table := make(core.Table, n)
	written := core.NewBitVector(uint64(n))
	for i := 0; i < n; i++ {
		idx := ((constant << uint(i)) & mask) >> shift
		if written.TestAndSet(idx) {
			return nil, core.Invalidf("BuildTable", "constant %#x is not a De Bruijn constant for B(2, %d): slot %d written twice", constant, lgN, idx)
		}
		table[idx] = i
	}
	return table, nil
}
