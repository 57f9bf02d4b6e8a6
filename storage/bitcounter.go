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

// CounterSelector identifies one of the two 4-bit counters packed into a
// BitCounter.
type CounterSelector uint8

const (
	// LowCounter selects the counter stored in bits 0-3.
	LowCounter CounterSelector = iota
	// HighCounter selects the counter stored in bits 4-7.
	HighCounter
)

const (
	lowNibble  uint8 = 0x0f
	highNibble uint8 = 0xf0
)

// BitCounter packs two independent 4-bit saturating counters into a single
// byte. Each counter stays within [0,15]: an increment at 15 and a decrement
// at 0 leave the counter unchanged. Operations on one counter never modify
// the bits of its sibling. The zero value has both counters at 0 and is
// ready to use.
//
// Selector values other than LowCounter and HighCounter are tolerated:
// mutators do nothing and Value reports 0.
type BitCounter struct {
	counter uint8
}

// add sums two bytes using only bitwise operations, propagating the carry
// until none remains.
func add(summand1, summand2 uint8) uint8 {
	for summand2 != 0 {
		carry := summand1 & summand2
		summand1 ^= summand2
		summand2 = carry << 1
	}
	return summand1
}

// Reset sets both counters back to 0.
func (c *BitCounter) Reset() {
	c.counter = 0
}

// ResetCounter sets the selected counter back to 0, leaving its sibling
// untouched.
func (c *BitCounter) ResetCounter(selector CounterSelector) {
	switch selector {
	case LowCounter:
		c.counter &= highNibble
	case HighCounter:
		c.counter &= lowNibble
	}
}

// Inc increments the selected counter by 1, saturating at 15.
func (c *BitCounter) Inc(selector CounterSelector) {
	switch selector {
	case LowCounter:
		if c.counter&lowNibble != lowNibble {
			c.counter = c.counter&highNibble | add(c.counter&lowNibble, 0x01)
		}
	case HighCounter:
		if c.counter&highNibble != highNibble {
			c.counter = c.counter&lowNibble | add(c.counter&highNibble, 0x10)
		}
	}
}

// Dec decrements the selected counter by 1, saturating at 0.
func (c *BitCounter) Dec(selector CounterSelector) {
	switch selector {
	case LowCounter:
		if value := c.counter & lowNibble; value != 0 {
			c.counter = c.counter&highNibble | (value - 0x01)
		}
	case HighCounter:
		if value := c.counter & highNibble; value != 0 {
			c.counter = c.counter&lowNibble | (value - 0x10)
		}
	}
}

// Value returns the selected counter's current value in [0,15]. Unknown
// selectors report 0.
func (c *BitCounter) Value(selector CounterSelector) uint8 {
	switch selector {
	case LowCounter:
		return c.counter & lowNibble
	case HighCounter:
		return c.counter >> 4
	}
	return 0
}

// Sizeof returns the storage size of the counter pair in bytes.
func (c *BitCounter) Sizeof() int {
	return 1
}
