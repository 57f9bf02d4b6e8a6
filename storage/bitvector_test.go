// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBitVector_RoundsLengthUpToWholeBytes(t *testing.T) {
	tests := []struct {
		length     int
		wantLen    int
		wantSizeof int
	}{
		{1, 8, 1},
		{8, 8, 1},
		{9, 16, 2},
		{42, 48, 6},
		{48, 48, 6},
	}
	for _, test := range tests {
		vector, err := NewBitVector(test.length)
		require.NoError(t, err)
		require.Equal(t, test.wantLen, vector.Len(), "length %d", test.length)
		require.Equal(t, test.wantSizeof, vector.Sizeof(), "length %d", test.length)
	}
}

func TestNewBitVector_RejectsNonPositiveLengths(t *testing.T) {
	for _, length := range []int{0, -1, -42} {
		_, err := NewBitVector(length)
		require.ErrorContains(t, err, "length can't be 0 or negative")
	}
}

func TestBitVector_IsZeroInitialized(t *testing.T) {
	vector, err := NewBitVector(42)
	require.NoError(t, err)
	for i := 0; i < vector.Len(); i++ {
		require.False(t, vector.Get(i), "%d-th flag failed to be false", i)
	}
	require.Equal(t, 0, vector.Count())
}

func TestBitVector_SetAndGet(t *testing.T) {
	require := require.New(t)
	indices := []int{0, 1, 7, 8, 15, 16, 37, 42, 47}

	vector, err := NewBitVector(48)
	require.NoError(err)
	for i, index := range indices {
		for j := range indices {
			require.Equal(j < i, vector.Get(indices[j]), "Before setting: i=%d,j=%d", i, j)
		}
		vector.Set(index, true)
		for j := range indices {
			require.Equal(j <= i, vector.Get(indices[j]), "After setting: i=%d,j=%d", i, j)
		}
	}
	require.Equal(len(indices), vector.Count())

	vector.Set(37, false)
	require.False(vector.Get(37))
	require.Equal(len(indices)-1, vector.Count())
}

func TestBitVector_Toggle_FlipsSingleFlag(t *testing.T) {
	vector, err := NewBitVector(16)
	require.NoError(t, err)
	vector.Toggle(11)
	require.True(t, vector.Get(11))
	require.Equal(t, 1, vector.Count())
	vector.Toggle(11)
	require.False(t, vector.Get(11))
	require.Equal(t, 0, vector.Count())
}

func TestBitVector_Clear_RemovesAllFlags(t *testing.T) {
	require := require.New(t)
	indices := []int{0, 5, 8, 13, 23}

	vector, err := NewBitVector(24)
	require.NoError(err)
	for _, index := range indices {
		vector.Set(index, true)
	}
	for i := 0; i < vector.Len(); i++ {
		require.Equal(slices.Contains(indices, i), vector.Get(i))
	}

	vector.Clear()
	require.Equal(0, vector.Count())
	for i := 0; i < vector.Len(); i++ {
		require.False(vector.Get(i), "all flags should be cleared")
	}
}

func TestBitVector_OutOfRangeIndexPanics(t *testing.T) {
	vector, err := NewBitVector(42)
	require.NoError(t, err)
	for _, index := range []int{-1, -73, vector.Len(), vector.Len() + 25} {
		require.Panics(t, func() { vector.Get(index) }, "Get(%d)", index)
		require.Panics(t, func() { vector.Set(index, true) }, "Set(%d)", index)
		require.Panics(t, func() { vector.Toggle(index) }, "Toggle(%d)", index)
	}
}

func TestBitVector_String(t *testing.T) {
	vector, err := NewBitVector(42)
	require.NoError(t, err)
	require.Equal(t, "<BitVector (size: 6, length: 48)>", vector.String())
}
