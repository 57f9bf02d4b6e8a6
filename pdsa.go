// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package pdsa is the root of a collection of building blocks for
// probabilistic and compact data structures.
//
// The functionality lives in the subpackages:
//   - storage: bit-packed storage primitives (BitField, BitCounter,
//     BitVector, BitVectorCounter)
//   - hashing: the seedable murmur3 helper shared by consumers for index
//     derivation
package pdsa
