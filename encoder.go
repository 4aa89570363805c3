// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "math"

// growThreshold is the point above which the encoder switches from
// doubling growth to exact-reserve growth, bounding peak memory for very
// large blobs.
const growThreshold = 4 << 20 // 4 MiB

// Encoder appends BON-encoded values to a growing byte buffer. The zero
// value is not usable; construct one with NewEncoder.
type Encoder struct {
	buf  []byte
	tail int
}

// NewEncoder constructs an Encoder that appends to buf. If buf is nil, a
// fresh buffer is allocated on first use. Passing a pre-sized buffer (with
// len(buf)==0 and adequate cap) avoids reallocation when the output size
// is predictable.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf, tail: len(buf)}
}

// Bytes returns the encoded data written so far. The returned slice
// aliases the Encoder's internal buffer; do not mutate it while continuing
// to use the Encoder.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.tail }

// reserve grows the buffer so that at least n more bytes can be appended
// without reallocating: below growThreshold the backing array doubles on
// demand (amortised O(1) append); above it, exactly the requested extra
// capacity is reserved, to bound peak memory for large blobs.
func (e *Encoder) reserve(n int) {
	need := len(e.buf) + n
	if need <= cap(e.buf) {
		return
	}
	var newCap int
	if cap(e.buf) > growThreshold {
		newCap = cap(e.buf) + n
	} else {
		newCap = cap(e.buf) * 2
		if newCap < need {
			newCap = need
		}
	}
	grown := make([]byte, len(e.buf), newCap)
	copy(grown, e.buf)
	e.buf = grown
}

// WriteNull appends the one-byte null tag.
func (e *Encoder) WriteNull() {
	e.reserve(1)
	e.buf = append(e.buf, tagNull)
	e.tail++
}

// WriteBool appends the one-byte true/false tag.
func (e *Encoder) WriteBool(v bool) {
	e.reserve(1)
	if v {
		e.buf = append(e.buf, tagTrue)
	} else {
		e.buf = append(e.buf, tagFalse)
	}
	e.tail++
}

// writeCommon appends the single-byte encoding for an integer in -1..19.
func (e *Encoder) writeCommon(v int8) {
	e.reserve(1)
	e.buf = append(e.buf, byte(v+16))
	e.tail++
}

func (e *Encoder) write8(v uint8, t byte) {
	e.reserve(2)
	e.buf = append(e.buf, t, v)
	e.tail += 2
}

func (e *Encoder) write16(v uint16, t byte) {
	e.reserve(3)
	e.buf = append(e.buf, t, byte(v), byte(v>>8))
	e.tail += 3
}

func (e *Encoder) write32(v uint32, t byte) {
	e.reserve(5)
	e.buf = append(e.buf, t, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	e.tail += 5
}

// write48 splits v into a low-16 fragment followed by a high-32 fragment,
// both little-endian. The resulting six bytes are the same as a flat
// 6-byte little-endian integer, which is how Decoder.le48 reads them.
func (e *Encoder) write48(v uint64, t byte) {
	e.reserve(7)
	lo := uint16(v)
	hi := uint32(v >> 16)
	e.buf = append(e.buf, t, byte(lo), byte(lo>>8),
		byte(hi), byte(hi>>8), byte(hi>>16), byte(hi>>24))
	e.tail += 7
}

func (e *Encoder) write64(v uint64, t byte) {
	e.reserve(9)
	e.buf = append(e.buf, t,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
	e.tail += 9
}

func (e *Encoder) write128(lo, hi uint64, t byte) {
	e.reserve(17)
	e.buf = append(e.buf, t,
		byte(lo), byte(lo>>8), byte(lo>>16), byte(lo>>24),
		byte(lo>>32), byte(lo>>40), byte(lo>>48), byte(lo>>56),
		byte(hi), byte(hi>>8), byte(hi>>16), byte(hi>>24),
		byte(hi>>32), byte(hi>>40), byte(hi>>48), byte(hi>>56))
	e.tail += 17
}

func (e *Encoder) writeUnsigned32(v uint32) {
	switch {
	case v <= 0xFF:
		e.write8(uint8(v), tagPos8)
	case v <= 0xFFFF:
		e.write16(uint16(v), tagPos16)
	default:
		e.write32(v, tagPos32)
	}
}

func (e *Encoder) writeUnsigned64(v uint64) {
	switch {
	case v <= 0xFFFFFFFF:
		e.writeUnsigned32(uint32(v))
	case v <= 0xFFFFFFFFFFFF:
		e.write48(v, tagPos48)
	default:
		e.write64(v, tagPos64)
	}
}

// WriteUint8 appends the narrowest tag representing v.
func (e *Encoder) WriteUint8(v uint8) { e.WriteUint64(uint64(v)) }

// WriteUint16 appends the narrowest tag representing v.
func (e *Encoder) WriteUint16(v uint16) { e.WriteUint64(uint64(v)) }

// WriteUint32 appends the narrowest tag representing v.
func (e *Encoder) WriteUint32(v uint32) { e.WriteUint64(uint64(v)) }

// WriteUint64 appends the narrowest tag representing v: a single byte for
// 0..19 (tagSmallLo..tagSmallHi), else the smallest unsigned width that
// fits.
func (e *Encoder) WriteUint64(v uint64) {
	if v < 20 {
		e.writeCommon(int8(v))
		return
	}
	e.writeUnsigned64(v)
}

// WriteUint128 appends the narrowest tag representing v, given as
// low/high 64-bit halves (little-endian order: lo holds bits 0..63).
func (e *Encoder) WriteUint128(lo, hi uint64) {
	if hi == 0 {
		e.WriteUint64(lo)
		return
	}
	e.write128(lo, hi, tagPos128)
}

func (e *Encoder) writeSigned32(v uint32, t byte) {
	switch {
	case v <= 0xFF:
		e.write8(uint8(v), t)
	case v <= 0xFFFF:
		e.write16(uint16(v), t+1)
	default:
		e.write32(v, t+2)
	}
}

func (e *Encoder) writeSigned64(v uint64, t byte) {
	if v <= 0xFFFFFFFF {
		e.writeSigned32(uint32(v), t)
		return
	}
	if v <= 0xFFFFFFFFFFFF {
		e.write48(v, t+3)
	} else {
		e.write64(v, t+4)
	}
}

// WriteInt8 appends the narrowest tag representing v.
func (e *Encoder) WriteInt8(v int8) { e.WriteInt64(int64(v)) }

// WriteInt16 appends the narrowest tag representing v.
func (e *Encoder) WriteInt16(v int16) { e.WriteInt64(int64(v)) }

// WriteInt32 appends the narrowest tag representing v.
func (e *Encoder) WriteInt32(v int32) { e.WriteInt64(int64(v)) }

// WriteInt64 appends the narrowest tag representing v: a single byte for
// -1..19, else the sign branch (tagNeg8.. for negative, tagPos8.. for
// positive) at the smallest width whose magnitude fits. Negative tags
// store the absolute value, never two's complement (invariant 2).
func (e *Encoder) WriteInt64(v int64) {
	if v >= -1 && v < 20 {
		e.writeCommon(int8(v))
		return
	}
	if v < 0 {
		e.writeSigned64(uint64(-v), tagNeg8)
		return
	}
	e.writeSigned64(uint64(v), tagPos8)
}

// WriteInt128 appends the narrowest tag representing v, given as a sign
// flag and the magnitude's low/high 64-bit halves.
func (e *Encoder) WriteInt128(neg bool, lo, hi uint64) {
	if hi == 0 {
		v := lo
		if v < 20 && !neg {
			e.writeCommon(int8(v))
			return
		}
		if v == 1 && neg {
			e.writeCommon(-1)
			return
		}
		if !neg {
			e.writeSigned64(v, tagPos8)
		} else {
			e.writeSigned64(v, tagNeg8)
		}
		return
	}
	t := byte(tagPos128)
	if neg {
		t = tagNeg128
	}
	e.write128(lo, hi, t)
}

// WriteF32 appends a 32-bit float. Exact bit-equality with 0.0 or 1.0
// triggers the compact one-byte tags; all other values emit the 4-byte
// payload tag.
func (e *Encoder) WriteF32(v float32) {
	if math.Float32bits(v) == 0 {
		e.reserve(1)
		e.buf = append(e.buf, tagF0)
		e.tail++
		return
	}
	if v == 1.0 {
		e.reserve(1)
		e.buf = append(e.buf, tagF1)
		e.tail++
		return
	}
	e.reserve(5)
	bits := math.Float32bits(v)
	e.buf = append(e.buf, tagF32, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	e.tail += 5
}

// WriteF64 appends a 64-bit float. Exact bit-equality with 0.0 or 1.0
// triggers the compact one-byte tags; all other values emit the 8-byte
// payload tag.
func (e *Encoder) WriteF64(v float64) {
	if math.Float64bits(v) == 0 {
		e.reserve(1)
		e.buf = append(e.buf, tagF0)
		e.tail++
		return
	}
	if v == 1.0 {
		e.reserve(1)
		e.buf = append(e.buf, tagF1)
		e.tail++
		return
	}
	e.reserve(9)
	bits := math.Float64bits(v)
	e.buf = append(e.buf, tagF64,
		byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24),
		byte(bits>>32), byte(bits>>40), byte(bits>>48), byte(bits>>56))
	e.tail += 9
}

// writeData appends the tag-banded length prefix and payload for a string
// or binary value, per the dataBand rule.
func (e *Encoder) writeData(data []byte, base byte) {
	tag, prefixLen := dataBand(base, len(data))
	e.reserve(1 + prefixLen + len(data))
	e.buf = append(e.buf, tag)
	n := len(data)
	switch prefixLen {
	case 0:
	case 1:
		e.buf = append(e.buf, byte(n))
	case 2:
		e.buf = append(e.buf, byte(n), byte(n>>8))
	case 4:
		e.buf = append(e.buf, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	case 6:
		e.buf = append(e.buf, byte(n), byte(n>>8), byte(n>>16), byte(n>>24), byte(n>>32), byte(n>>40))
	}
	e.buf = append(e.buf, data...)
	e.tail += 1 + prefixLen + len(data)
}

// WriteString appends a UTF-8 string.
func (e *Encoder) WriteString(s string) {
	e.writeData([]byte(s), tagStrLo)
}

// WriteBinary appends a binary blob.
func (e *Encoder) WriteBinary(data []byte) {
	e.writeData(data, tagBinLo)
}
