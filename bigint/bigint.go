// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package bigint provides the ordering adapter for BON's extended numeric
// tag (249): a 32-byte little-endian unsigned integer, wide enough that
// float64 cannot represent it precisely, so the comparator delegates to
// an arbitrary-precision type instead.
package bigint

import "math/big"

// Compare orders two 256-bit little-endian unsigned magnitudes the way
// math/big.Int.Cmp orders them: -1 if a<b, 0 if a==b, 1 if a>b.
//
// The format's original Rust implementation uses num_bigint for this; Go
// has no third-party arbitrary-precision integer library in common use
// that improves on the standard library's math/big, so this is the one
// place the codec reaches for stdlib over a pack dependency (see
// DESIGN.md).
func Compare(a, b [32]byte) int {
	return toBig(a).Cmp(toBig(b))
}

func toBig(v [32]byte) *big.Int {
	be := make([]byte, len(v))
	for i, b := range v {
		be[len(v)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}
