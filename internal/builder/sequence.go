package builder

import (
	"github.com/klittlepage/misapplied-math/internal/core"
)

// fkmGenerator holds the state of the recursive prenecklace walk
// (Fredricksen-Kessler-Maiorana). a[1..t-1] is the current prenecklace
// prefix; a[0] stays zero so a[t-p] is defined for p == t.
type fkmGenerator struct {
	k, n int
	a    []int
	out  []int
}

// GenerateSequence returns the symbols of the De Bruijn sequence B(k, n)
// in FKM order: the concatenation, in lexicographic order, of every Lyndon
// word over {0..k-1} whose length divides n. The result has length k^n.
func GenerateSequence(k, n int) ([]int, error) {
	if k < 2 {
		return nil, core.Invalidf("GenerateSequence", "alphabet size k = %d, need k >= 2", k)
	}
	if n < 1 {
		return nil, core.Invalidf("GenerateSequence", "window length n = %d, need n >= 1", n)
	}
	size, ok := core.Pow(k, n, core.MaxSequenceSize)
	if !ok {
		return nil, core.Invalidf("GenerateSequence", "k^n for k = %d, n = %d exceeds %d symbols", k, n, core.MaxSequenceSize)
	}

	g := &fkmGenerator{
		k:   k,
		n:   n,
		a:   make([]int, n+1),
		out: make([]int, 0, size),
	}
	g.walk(1, 1)
	return g.out, nil
}

// walk extends the prefix at depth t, p being the length of its smallest period.
// Recursion depth is bounded by n.
func (g *fkmGenerator) walk(t, p int) {
	if t > g.n {
		if g.n%p == 0 {
			g.out = append(g.out, g.a[1:p+1]...)
		}
		return
	}

	g.a[t] = g.a[t-p]
	g.walk(t+1, p)
	for j := g.a[t-p] + 1; j < g.k; j++ {
		g.a[t] = j
		g.walk(t+1, t)
	}
}

// HasUniqueWindows reports whether every length-n word over {0..k-1}
// occurs exactly once among the cyclic windows of seq.
func HasUniqueWindows(seq []int, k, n int) bool {
	size, ok := core.Pow(k, n, core.MaxSequenceSize)
	if !ok || uint64(len(seq)) != size {
		return false
	}
	seen := core.NewBitVector(size)
	for start := range seq {
		var idx uint64
		for j := 0; j < n; j++ {
			s := seq[(start+j)%len(seq)]
			if s < 0 || s >= k {
				return false
			}
			idx = idx*uint64(k) + uint64(s)
		}
		if seen.TestAndSet(idx) {
			return false
		}
	}
	return seen.Full()
}
