package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPositivePowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32, 64, 1 << 30} {
		assert.True(t, IsPositivePowerOfTwo(n), "n=%d", n)
	}
	for _, n := range []int{0, -1, -2, -64, 3, 5, 6, 100, math.MinInt} {
		assert.False(t, IsPositivePowerOfTwo(n), "n=%d", n)
	}
}

func TestLg(t *testing.T) {
	for p := 0; p < 62; p++ {
		assert.Equal(t, p, Lg(1<<p))
	}
}

func TestWordMask(t *testing.T) {
	assert.Equal(t, uint64(1), WordMask(1))
	assert.Equal(t, uint64(0xff), WordMask(8))
	assert.Equal(t, uint64(math.MaxUint32), WordMask(32))
	assert.Equal(t, uint64(math.MaxUint64), WordMask(64))
}

func TestPow(t *testing.T) {
	r, ok := Pow(2, 5, MaxSequenceSize)
	assert.True(t, ok)
	assert.Equal(t, uint64(32), r)

	r, ok = Pow(3, 4, MaxSequenceSize)
	assert.True(t, ok)
	assert.Equal(t, uint64(81), r)

	_, ok = Pow(2, 29, MaxSequenceSize)
	assert.False(t, ok)

	_, ok = Pow(math.MaxInt, 3, math.MaxUint64)
	assert.False(t, ok, "overflow of 64 bits must be reported")
}
