// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package hashing provides the seedable hash functions shared by the
// probabilistic data structures of this library. Index derivation in those
// structures relies on the murmur3 x86 32-bit variant, exposed here as thin
// wrappers so all consumers agree on the algorithm and its default seed.
package hashing

import "github.com/spaolacci/murmur3"

// DefaultSeed is the seed applied by consumers that do not pick their own.
const DefaultSeed uint32 = 42

// Sum32 returns the murmur3 x86 32-bit hash of data under the given seed.
func Sum32(data []byte, seed uint32) uint32 {
	return murmur3.Sum32WithSeed(data, seed)
}

// Sum32String returns the murmur3 x86 32-bit hash of the string's bytes
// under the given seed.
func Sum32String(s string, seed uint32) uint32 {
	return murmur3.Sum32WithSeed([]byte(s), seed)
}
