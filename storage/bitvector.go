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

import "fmt"

// BitVector is a variable-length vector of boolean flags backed by BitField
// bytes. The requested length is rounded up to the next multiple of 8 so the
// vector always occupies whole bytes; Len reports the rounded length.
//
// Index arguments must be in [0, Len()); accesses outside this range panic.
type BitVector struct {
	fields []BitField
	length int
}

// NewBitVector creates a zero-initialized vector holding at least the given
// number of flags. Lengths below 1 are rejected.
func NewBitVector(length int) (*BitVector, error) {
	if length < 1 {
		return nil, fmt.Errorf("length can't be 0 or negative")
	}
	size := (length + 7) / 8
	return &BitVector{
		fields: make([]BitField, size),
		length: size * 8,
	}, nil
}

// Len returns the number of addressable flags.
func (v *BitVector) Len() int {
	return v.length
}

// Sizeof returns the vector's storage size in bytes.
func (v *BitVector) Sizeof() int {
	return len(v.fields)
}

func (v *BitVector) locate(index int) (*BitField, uint8) {
	if index < 0 || index >= v.length {
		panic(fmt.Sprintf("bit index %d out of range [0,%d)", index, v.length))
	}
	return &v.fields[index/8], uint8(index % 8)
}

// Get returns the flag at the given index.
func (v *BitVector) Get(index int) bool {
	field, bit := v.locate(index)
	return field.GetBit(bit)
}

// Set sets the flag at the given index to the given value.
func (v *BitVector) Set(index int, flag bool) {
	field, bit := v.locate(index)
	field.SetBit(bit, flag)
}

// Toggle flips the flag at the given index.
func (v *BitVector) Toggle(index int) {
	field, bit := v.locate(index)
	field.ToggleBit(bit)
}

// Clear resets all flags to false.
func (v *BitVector) Clear() {
	for i := range v.fields {
		v.fields[i].Clear()
	}
}

// Count returns the total number of set flags.
func (v *BitVector) Count() int {
	count := 0
	for i := range v.fields {
		count += v.fields[i].Count()
	}
	return count
}

func (v *BitVector) String() string {
	return fmt.Sprintf("<BitVector (size: %d, length: %d)>", v.Sizeof(), v.Len())
}
