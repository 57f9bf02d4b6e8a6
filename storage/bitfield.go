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

// onesInByte maps every possible byte value to its number of set bits.
var onesInByte = [256]uint8{
	0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	4, 5, 5, 6, 5, 6, 6, 7, 5, 6, 6, 7, 6, 7, 7, 8,
}

// BitField treats a single byte as 8 independently addressable boolean flags
// indexed 0-7. The zero value has all flags cleared.
//
// Bit positions above 7 address no flag at all: the shifted bit mask is zero,
// so mutators leave the field unchanged and GetBit reports false. Callers are
// expected to stay within [0,7].
type BitField struct {
	field uint8
}

// Clear resets all flags to false.
func (f *BitField) Clear() {
	f.field = 0
}

// Count returns the number of flags currently set, in [0,8]. It is a single
// lookup in the precomputed ones-in-byte table rather than a per-call scan.
func (f *BitField) Count() int {
	return int(onesInByte[f.field])
}

// SetBit sets the flag at the given bit position to the given value, leaving
// all other flags unchanged.
func (f *BitField) SetBit(bit uint8, flag bool) {
	var value uint8
	if flag {
		value = 1
	}
	f.field = f.field&^(1<<bit) | value<<bit
}

// ToggleBit flips the flag at the given bit position.
func (f *BitField) ToggleBit(bit uint8) {
	f.field ^= 1 << bit
}

// ClearBit forces the flag at the given bit position to false.
func (f *BitField) ClearBit(bit uint8) {
	f.field &^= 1 << bit
}

// GetBit returns the flag at the given bit position.
func (f *BitField) GetBit(bit uint8) bool {
	return f.field>>bit&1 != 0
}

// Sizeof returns the storage size of the field in bytes.
func (f *BitField) Sizeof() int {
	return 1
}
