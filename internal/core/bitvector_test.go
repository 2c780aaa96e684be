package core

import (
	"testing"
)

func TestBitVectorBasic(t *testing.T) {
	size := uint64(100)
	bv := NewBitVector(size)

	if bv.Size() != size {
		t.Fatalf("Expected size %d, got %d", size, bv.Size())
	}

	for i := uint64(0); i < size; i++ {
		if bv.Get(i) {
			t.Errorf("Bit %d should be 0 initially", i)
		}
	}

	bv.Set(0)
	bv.Set(10)
	bv.Set(63)
	bv.Set(64)
	bv.Set(99)

	for _, pos := range []uint64{0, 10, 63, 64, 99} {
		if !bv.Get(pos) {
			t.Errorf("Bit %d should be set", pos)
		}
	}
	for _, pos := range []uint64{1, 62, 65, 98} {
		if bv.Get(pos) {
			t.Errorf("Bit %d should not be set", pos)
		}
	}
	if bv.Count() != 5 {
		t.Errorf("Count() = %d, want 5", bv.Count())
	}
}

func TestBitVectorTestAndSet(t *testing.T) {
	bv := NewBitVector(70)
	if bv.TestAndSet(65) {
		t.Fatalf("first TestAndSet(65) reported the bit already set")
	}
	if !bv.TestAndSet(65) {
		t.Fatalf("second TestAndSet(65) reported the bit unset")
	}
	if bv.Full() {
		t.Fatalf("Full() with one bit of 70 set")
	}
	for i := uint64(0); i < 70; i++ {
		bv.Set(i)
	}
	if !bv.Full() {
		t.Fatalf("Full() false after setting every bit")
	}
}

func TestBitVectorOutOfBounds(t *testing.T) {
	bv := NewBitVector(8)
	for name, op := range map[string]func(){
		"Get":        func() { bv.Get(8) },
		"Set":        func() { bv.Set(8) },
		"TestAndSet": func() { bv.TestAndSet(100) },
	} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s out of bounds should panic", name)
				}
			}()
			op()
		}()
	}
}
