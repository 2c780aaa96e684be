package core

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsPermutation(t *testing.T) {
	useCases := []struct {
		description string
		table       Table
		expect      bool
	}{
		{description: "identity", table: Table{0, 1, 2, 3}, expect: true},
		{description: "shuffled", table: Table{0, 1, 2, 5, 3, 7, 6, 4}, expect: true},
		{description: "single slot", table: Table{0}, expect: true},
		{description: "duplicate", table: Table{0, 1, 1, 3}, expect: false},
		{description: "out of range", table: Table{0, 1, 2, 4}, expect: false},
		{description: "negative", table: Table{0, -1}, expect: false},
		{description: "empty", table: Table{}, expect: false},
	}
	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, useCase.table.IsPermutation(), useCase.description)
	}
}

func TestTableLgN(t *testing.T) {
	assert.Equal(t, 5, make(Table, 32).LgN())
	assert.Equal(t, 6, make(Table, 64).LgN())
	assert.Equal(t, 0, make(Table, 1).LgN())
}

func TestTableMarshalBinary(t *testing.T) {
	table := Table{0, 1, 2, 5, 3, 7, 6, 4}
	data, err := table.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 4+8)

	var decoded Table
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, table, decoded)
}

func TestTableUnmarshalBinaryRejects(t *testing.T) {
	var table Table
	assert.ErrorIs(t, table.UnmarshalBinary([]byte{1, 0}), io.ErrUnexpectedEOF)
	// Header says 4 slots, 3 follow.
	assert.Error(t, table.UnmarshalBinary([]byte{4, 0, 0, 0, 0, 1, 2}))
	// 3 slots is not a power of two.
	assert.ErrorIs(t, table.UnmarshalBinary([]byte{3, 0, 0, 0, 0, 1, 2}), ErrInvalidArgument)
	// Not a permutation.
	assert.Error(t, table.UnmarshalBinary([]byte{2, 0, 0, 0, 1, 1}))
	assert.Nil(t, table)
}

func TestTableMarshalBinaryRejectsWidePositions(t *testing.T) {
	_, err := Table{0, 64}.MarshalBinary()
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	err := Invalidf("BuildTable", "n = %d", 3)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "BuildTable: invalid argument: n = 3", err.Error())

	var ia InvalidArgumentError
	require.True(t, errors.As(err, &ia))
	assert.Equal(t, "BuildTable", ia.Op)

	verr := VerificationError{Input: -8, Got: 7, Want: 3}
	assert.Equal(t, "verification failed: ffs(-8) = 7, want 3", verr.Error())
	assert.False(t, errors.Is(verr, ErrInvalidArgument))
}

func TestVerifyConfigWorkers(t *testing.T) {
	config := DefaultVerifyConfig()
	assert.GreaterOrEqual(t, config.Workers(), 1)
	assert.False(t, config.Sampled)

	config.NumThreads = 0
	assert.Equal(t, 1, config.Workers())
	config.NumThreads = -3
	assert.Equal(t, 1, config.Workers())
}
