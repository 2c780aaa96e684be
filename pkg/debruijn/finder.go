package debruijn

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/klittlepage/misapplied-math/internal/builder"
	"github.com/klittlepage/misapplied-math/internal/core"
	"github.com/klittlepage/misapplied-math/internal/serial"
)

// Finder bundles a De Bruijn constant with its table so callers can pass
// one read-only value around instead of two. It is safe for concurrent use.
type Finder struct {
	constant uint64
	table    Table
	width    int
	mask     uint64
	shift    uint
}

// NewFinder builds a finder for width-bit words from a De Bruijn constant
// of window length lg(width).
func NewFinder(constant uint64, width int) (*Finder, error) {
	table, err := BuildHashTable(constant, width)
	if err != nil {
		return nil, err
	}
	return newFinder(constant, table), nil
}

func newFinder(constant uint64, table Table) *Finder {
	width := table.Len()
	return &Finder{
		constant: constant,
		table:    table,
		width:    width,
		mask:     core.WordMask(width),
		shift:    uint(width - table.LgN()),
	}
}

// NewFinderForWidth derives the constant from GenerateSequence(2, lg(width)).
// width must be a power of two in [2, 64].
func NewFinderForWidth(width int) (*Finder, error) {
	if !core.IsPositivePowerOfTwo(width) || width < 2 || width > core.MaxWordBits {
		return nil, core.Invalidf("NewFinderForWidth", "width %d is not a power of two in [2, %d]", width, core.MaxWordBits)
	}
	seq, err := GenerateSequence(core.BinaryAlphabet, core.Lg(width))
	if err != nil {
		return nil, err
	}
	constant, err := seq.Constant()
	if err != nil {
		return nil, err
	}
	return NewFinder(constant, width)
}

// NewFinder32 returns the finder for 32-bit words, built from B(2, 5).
func NewFinder32() (*Finder, error) { return NewFinderForWidth(core.Word32Bits) }

// NewFinder64 returns the finder for 64-bit words, built from B(2, 6).
func NewFinder64() (*Finder, error) { return NewFinderForWidth(core.Word64Bits) }

func (f *Finder) Constant() uint64 { return f.constant }
func (f *Finder) Width() int       { return f.width }

// Table returns a copy of the lookup table.
func (f *Finder) Table() Table {
	out := make(Table, len(f.table))
	copy(out, f.table)
	return out
}

// Find returns the position of the lowest set bit among the low Width()
// bits of x, or Width() if none is set.
func (f *Finder) Find(x uint64) int {
	x &= f.mask
	if x == 0 {
		return f.width
	}
	x &= -x
	return f.table[((x*f.constant)&f.mask)>>f.shift]
}

// Find32 is Find for a signed 32-bit word.
func (f *Finder) Find32(x int32) int {
	return f.Find(uint64(uint32(x)))
}

// SelfCheck confirms every single-bit word maps to its own position and
// zero maps to Width(). This is exhaustive over the hash's domain, since
// Find only ever hashes isolated bits.
func (f *Finder) SelfCheck() error {
	if got := f.Find(0); got != f.width {
		return core.VerificationError{Input: 0, Got: got, Want: f.width}
	}
	for i := 0; i < f.width; i++ {
		x := uint64(1) << uint(i)
		if got := f.Find(x); got != i {
			return core.VerificationError{Input: int64(x), Got: got, Want: i}
		}
	}
	return nil
}

// Verify runs the 32-bit verifier against Find32. Only 32-bit finders
// can be verified this way.
func (f *Finder) Verify(ctx context.Context, config VerifyConfig) (VerifyTimings, error) {
	if f.width != core.Word32Bits {
		return VerifyTimings{}, core.Invalidf("Finder.Verify", "width %d, need %d", f.width, core.Word32Bits)
	}
	return builder.Verify(ctx, f.Find32, config)
}

// Fingerprint is the xxhash of the serialized constant and table.
func (f *Finder) Fingerprint() uint64 {
	data, err := f.MarshalBinary()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data[:len(data)-8])
}

// --- Serialization ---

const (
	finderMagic   = "DBFF"
	finderVersion = 1
	finderHeader  = 4 + 1 + 1 + 2 + 8 // magic, version, width, reserved, constant
)

// MarshalBinary implements encoding.BinaryMarshaler. The trailing eight
// bytes are an xxhash checksum of everything before them.
func (f *Finder) MarshalBinary() ([]byte, error) {
	tableData, err := serial.TryMarshal(f.table)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table: %w", err)
	}

	totalSize := finderHeader + 8 + len(tableData) + 8
	buf := make([]byte, totalSize)
	offset := 0

	copy(buf[offset:offset+4], finderMagic)
	offset += 4
	buf[offset] = finderVersion
	offset++
	buf[offset] = byte(f.width)
	offset += 1 + 2 // width + reserved
	binary.LittleEndian.PutUint64(buf[offset:offset+8], f.constant)
	offset += 8

	binary.LittleEndian.PutUint64(buf[offset:offset+8], uint64(len(tableData)))
	offset += 8
	copy(buf[offset:offset+len(tableData)], tableData)
	offset += len(tableData)

	binary.LittleEndian.PutUint64(buf[offset:offset+8], xxhash.Sum64(buf[:offset]))
	offset += 8

	if offset != totalSize {
		return nil, fmt.Errorf("internal marshal error: offset %d != totalSize %d", offset, totalSize)
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded table
// must match the one rebuilt from the decoded constant.
func (f *Finder) UnmarshalBinary(data []byte) error {
	if len(data) < finderHeader+8+8 {
		return io.ErrUnexpectedEOF
	}
	body, sum := data[:len(data)-8], binary.LittleEndian.Uint64(data[len(data)-8:])
	if string(body[0:4]) != finderMagic {
		return fmt.Errorf("invalid magic identifier")
	}
	if got := xxhash.Sum64(body); got != sum {
		return fmt.Errorf("checksum mismatch: stored %#x, computed %#x", sum, got)
	}
	offset := 4
	if version := body[offset]; version != finderVersion {
		return fmt.Errorf("unsupported version: %d", version)
	}
	offset++
	width := int(body[offset])
	offset += 1 + 2
	constant := binary.LittleEndian.Uint64(body[offset : offset+8])
	offset += 8

	tableLen := binary.LittleEndian.Uint64(body[offset : offset+8])
	offset += 8
	if uint64(offset)+tableLen != uint64(len(body)) {
		return io.ErrUnexpectedEOF
	}
	var table Table
	if err := serial.TryUnmarshal(&table, body[offset:]); err != nil {
		return fmt.Errorf("failed to unmarshal table: %w", err)
	}
	if table.Len() != width {
		return fmt.Errorf("table has %d slots, header declares width %d", table.Len(), width)
	}

	rebuilt, err := BuildHashTable(constant, width)
	if err != nil {
		return fmt.Errorf("decoded constant is unusable: %w", err)
	}
	for i := range rebuilt {
		if rebuilt[i] != table[i] {
			return fmt.Errorf("decoded table differs from table rebuilt from constant %#x at slot %d", constant, i)
		}
	}

	*f = *newFinder(constant, table)
	return nil
}
