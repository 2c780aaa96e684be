package debruijn

import (
	"github.com/klittlepage/misapplied-math/internal/builder"
	"github.com/klittlepage/misapplied-math/internal/core"
)

// Table is a De Bruijn minimal perfect hash table. Its values are a
// permutation of [0, Len()). Tables are read-only once built.
type Table = core.Table

// BuildHashTable builds the lookup table for a De Bruijn constant over an
// n-bit word. n must be a positive power of two no larger than 64, and the
// constant must be a De Bruijn constant of window length lg(n); otherwise
// an InvalidArgumentError is returned and no table.
func BuildHashTable(constant uint64, n int) (Table, error) {
	return builder.BuildTable(constant, n)
}
