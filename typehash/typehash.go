// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package typehash derives a BON container's opaque 32-bit type hash from
// a human-readable name, so callers don't have to invent or hand-manage
// hash constants for their own struct/array/map shapes.
package typehash

import "github.com/cespare/xxhash/v2"

// reservedMax is the top of the codec's reserved hash band (bon.HashMap);
// duplicated here rather than imported to keep this package free of a
// dependency on the root bon package.
const reservedMax = 3

// Of returns a type hash for name: the low 32 bits of its 64-bit xxhash
// digest, folded up past the reserved 0..3 band (ignore/object/array/map)
// if it happens to land there.
func Of(name string) uint32 {
	h := uint32(xxhash.Sum64String(name))
	if h <= reservedMax {
		h += reservedMax + 1
	}
	return h
}
