package core

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Table is a De Bruijn minimal perfect hash table: slot i holds the bit
// position whose isolated bit hashes to i. len(Table) is the word width.
// A built Table is never modified and may be shared between goroutines.
type Table []int

// Len returns the number of slots (the word width in bits).
func (t Table) Len() int { return len(t) }

// LgN returns log2(len(t)), the number of index bits a lookup keeps.
func (t Table) LgN() int { return Lg(len(t)) }

// IsPermutation reports whether the values of t are exactly {0, ..., len(t)-1}.
func (t Table) IsPermutation() bool {
	if len(t) == 0 {
		return false
	}
	seen := NewBitVector(uint64(len(t)))
	for _, v := range t {
		if v < 0 || v >= len(t) || seen.TestAndSet(uint64(v)) {
			return false
		}
	}
	return true
}

// String provides a string representation.
func (t Table) String() string {
	return fmt.Sprintf("Table%v", []int(t))
}

// MarshalBinary implements encoding.BinaryMarshaler.
// Layout: slot count (uint32 LE) followed by one byte per slot.
func (t Table) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4+len(t))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(t)))
	for i, v := range t {
		if v < 0 || v >= MaxWordBits {
			return nil, fmt.Errorf("table slot %d holds out-of-range position %d", i, v)
		}
		buf[4+i] = byte(v)
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return io.ErrUnexpectedEOF
	}
	n := binary.LittleEndian.Uint32(data[0:4])
	if uint64(len(data)-4) != uint64(n) {
		return fmt.Errorf("table payload is %d bytes, header declares %d slots", len(data)-4, n)
	}
	if !IsPositivePowerOfTwo(int(n)) || n > MaxWordBits {
		return Invalidf("Table.UnmarshalBinary", "slot count %d is not a power of two in [1, %d]", n, MaxWordBits)
	}
	tab := make(Table, n)
	for i := range tab {
		tab[i] = int(data[4+i])
	}
	if !tab.IsPermutation() {
		return fmt.Errorf("decoded table is not a permutation of [0, %d)", n)
	}
	*t = tab
	return nil
}
