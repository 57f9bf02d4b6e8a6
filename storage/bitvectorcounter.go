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

// BitVectorCounter is a variable-length vector of 4-bit saturating counters
// packed two per BitCounter byte. The requested length is rounded up to the
// next even count so the vector always occupies whole bytes; Len reports the
// rounded length.
//
// Index arguments must be in [0, Len()); accesses outside this range panic.
type BitVectorCounter struct {
	counters []BitCounter
	length   int
}

// NewBitVectorCounter creates a zero-initialized vector holding at least the
// given number of counters. Lengths below 1 are rejected.
func NewBitVectorCounter(length int) (*BitVectorCounter, error) {
	if length < 1 {
		return nil, fmt.Errorf("length can't be 0 or negative")
	}
	size := (length + 1) / 2
	return &BitVectorCounter{
		counters: make([]BitCounter, size),
		length:   size * 2,
	}, nil
}

// Len returns the number of addressable counters.
func (v *BitVectorCounter) Len() int {
	return v.length
}

// Sizeof returns the vector's storage size in bytes.
func (v *BitVectorCounter) Sizeof() int {
	return len(v.counters)
}

func (v *BitVectorCounter) locate(index int) (*BitCounter, CounterSelector) {
	if index < 0 || index >= v.length {
		panic(fmt.Sprintf("counter index %d out of range [0,%d)", index, v.length))
	}
	selector := LowCounter
	if index&1 == 1 {
		selector = HighCounter
	}
	return &v.counters[index/2], selector
}

// Increment increments the counter at the given index by 1, saturating at 15.
func (v *BitVectorCounter) Increment(index int) {
	counter, selector := v.locate(index)
	counter.Inc(selector)
}

// Decrement decrements the counter at the given index by 1, saturating at 0.
func (v *BitVectorCounter) Decrement(index int) {
	counter, selector := v.locate(index)
	counter.Dec(selector)
}

// Value returns the current value of the counter at the given index,
// in [0,15].
func (v *BitVectorCounter) Value(index int) uint8 {
	counter, selector := v.locate(index)
	return counter.Value(selector)
}

// Reset sets all counters back to 0.
func (v *BitVectorCounter) Reset() {
	for i := range v.counters {
		v.counters[i].Reset()
	}
}

func (v *BitVectorCounter) String() string {
	return fmt.Sprintf("<BitVectorCounter (size: %d, length: %d)>", v.Sizeof(), v.Len())
}
