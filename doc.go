// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package bon implements the Binary Object Notation: a self-describing
// binary encoding together with an append-only encoder, a forward-only
// decoder, and an order-preserving byte comparator that ranks two encoded
// values without decoding them to Go types.
//
// Every encoded value begins with a single tag byte that names its shape
// (null, bool, an integer or float of some width, a string, a binary blob,
// or a container) and, for small values, the value itself. Containers
// additionally carry a byte length and a 4-byte opaque type hash, so a
// reader uninterested in a container's contents can skip exactly that many
// bytes without descending into it.
//
// The format is little-endian throughout, including the lengthen varint
// used for element counts inside generic containers (the original
// implementation this format derives from left that varint in host byte
// order; this port pins it to little-endian and documents the deviation on
// Encoder.WriteLengthen and Decoder.ReadLengthen).
//
//	e := bon.NewEncoder(nil)
//	e.WriteString("hello")
//	e.WriteInt64(-7)
//	d := bon.NewDecoder(e.Bytes(), 0)
//	s, _ := d.ReadString()
//	n, _ := d.ReadInt64()
//
// Two encoded buffers can be ordered without decoding either one:
//
//	order, ok := bon.Compare(e1.Bytes(), e2.Bytes())
//
// Compare returns ok=false when either buffer is malformed; it never
// panics. MustCompare panics in that case and is intended for callers that
// have already validated their inputs, mirroring how the Rust original's
// Ord::cmp panics atop a fallible PartialOrd::partial_cmp.
package bon
