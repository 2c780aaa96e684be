package core

import "math/bits"

// BitVector is a fixed-size set of bits. It marks which slots or windows
// have already been seen while a table or sequence is being checked.
type BitVector struct {
	bits []uint64
	size uint64 // Number of bits stored
}

// NewBitVector creates a bit vector initialized to zero for a given size.
func NewBitVector(size uint64) *BitVector {
	numWords := (size + 63) / 64
	return &BitVector{
		bits: make([]uint64, numWords),
		size: size,
	}
}

// Size returns the number of bits the vector conceptually holds.
func (bv *BitVector) Size() uint64 {
	return bv.size
}

// Set sets the bit at the given position to 1.
func (bv *BitVector) Set(pos uint64) {
	if pos >= bv.size {
		panic("BitVector.Set: position out of bounds")
	}
	bv.bits[pos/64] |= 1 << (pos % 64)
}

// Get returns true if the bit at the given position is 1.
func (bv *BitVector) Get(pos uint64) bool {
	if pos >= bv.size {
		panic("BitVector.Get: position out of bounds")
	}
	return bv.bits[pos/64]&(1<<(pos%64)) != 0
}

// TestAndSet sets the bit at pos and returns its previous value.
func (bv *BitVector) TestAndSet(pos uint64) bool {
	if pos >= bv.size {
		panic("BitVector.TestAndSet: position out of bounds")
	}
	word, mask := pos/64, uint64(1)<<(pos%64)
	was := bv.bits[word]&mask != 0
	bv.bits[word] |= mask
	return was
}

// Count returns the number of set bits.
func (bv *BitVector) Count() uint64 {
	var n uint64
	for _, w := range bv.bits {
		n += uint64(bits.OnesCount64(w))
	}
	return n
}

// Full reports whether every bit in [0, Size()) is set.
func (bv *BitVector) Full() bool {
	return bv.Count() == bv.size
}
