// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package storage provides compact bit-packed storage primitives used as
// building blocks by probabilistic data structures:
//   - BitField packs 8 boolean flags into a single byte and counts set flags
//     with a single table lookup
//   - BitCounter packs two independent 4-bit saturating counters into a
//     single byte
//   - BitVector and BitVectorCounter extend the two byte-sized primitives to
//     arbitrary lengths
//
// All types are plain in-memory values without internal synchronization.
// Concurrent mutation of a shared instance requires synchronization on the
// caller's side; the package-level lookup table is read-only and safe to
// share between any number of readers.
package storage
