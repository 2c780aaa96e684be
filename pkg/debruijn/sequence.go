// Package debruijn provides a table-driven find-first-set built from
// De Bruijn sequences: sequence generation, minimal perfect hash table
// construction, O(1) lookup and exhaustive self-verification.
//
// A typical 32-bit setup:
//
//	seq, _ := debruijn.GenerateSequence(2, 5)
//	c, _ := seq.Constant()
//	table, _ := debruijn.BuildHashTable(c, 32)
//	pos := debruijn.FFS(uint32(c), table, x)
package debruijn

import (
	"strconv"
	"strings"

	"github.com/klittlepage/misapplied-math/internal/builder"
	"github.com/klittlepage/misapplied-math/internal/core"
)

// Sequence is a De Bruijn sequence B(k, n). It is immutable.
type Sequence struct {
	k, n    int
	symbols []int
}

// GenerateSequence returns the FKM-order De Bruijn sequence B(k, n), of
// length k^n over symbols 0..k-1. k < 2 or n < 1 is an InvalidArgumentError.
func GenerateSequence(k, n int) (Sequence, error) {
	symbols, err := builder.GenerateSequence(k, n)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{k: k, n: n, symbols: symbols}, nil
}

// K returns the alphabet size.
func (s Sequence) K() int { return s.k }

// N returns the window length.
func (s Sequence) N() int { return s.n }

// Len returns the number of symbols, k^n.
func (s Sequence) Len() int { return len(s.symbols) }

// Symbols returns a copy of the symbols.
func (s Sequence) Symbols() []int {
	out := make([]int, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// String renders one base-36 digit per symbol when k <= 36, and
// dot-separated decimals otherwise.
func (s Sequence) String() string {
	var sb strings.Builder
	if s.k <= 36 {
		sb.Grow(len(s.symbols))
		for _, v := range s.symbols {
			sb.WriteString(strconv.FormatInt(int64(v), 36))
		}
		return sb.String()
	}
	for i, v := range s.symbols {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// HasUniqueWindows reports whether every length-n word over the alphabet
// appears exactly once among the cyclic windows of s.
func (s Sequence) HasUniqueWindows() bool {
	return builder.HasUniqueWindows(s.symbols, s.k, s.n)
}

// Constant reads a binary sequence as a base-2 numeral, first symbol most
// significant. It fails for k != 2 or sequences longer than 64 symbols.
func (s Sequence) Constant() (uint64, error) {
	if s.k != core.BinaryAlphabet {
		return 0, core.Invalidf("Sequence.Constant", "alphabet size %d, need a binary sequence", s.k)
	}
	if len(s.symbols) == 0 || len(s.symbols) > core.MaxWordBits {
		return 0, core.Invalidf("Sequence.Constant", "length %d does not fit a %d-bit word", len(s.symbols), core.MaxWordBits)
	}
	var c uint64
	for _, v := range s.symbols {
		c = c<<1 | uint64(v)
	}
	return c, nil
}
