// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

// containerBandFor returns the header width (in bytes, including the tag
// byte) and the largest length that width can address, for a container
// payload of the given byte length. A length beyond the 48-bit band
// cannot be represented: the format's tag table stops at tag 248 (a
// 64-bit length slot was never added to the table).
func containerBandFor(length uint64) (headerLen int, limit uint64, ok bool) {
	switch {
	case length <= 64:
		return 1, 64, true
	case length <= 0xFF:
		return 2, 0xFF, true
	case length <= 0xFFFF:
		return 3, 0xFFFF, true
	case length <= 0xFFFFFFFF:
		return 5, 0xFFFFFFFF, true
	case length <= 0xFFFFFFFFFFFF:
		return 7, 0xFFFFFFFFFFFF, true
	default:
		return 0, 0, false
	}
}

// WriteContainer writes a container: a tag, a byte-length prefix, the
// 4-byte opaque type hash, and whatever fn writes as the children. The
// length field measures the hash plus the bytes fn writes, matching the
// original implementation (and conformance scenario #4's hash(4)+2
// payload bytes producing length 6), so a reader skips exactly that many
// bytes starting right after the length prefix to clear the whole
// container, hash included.
//
// estimatedSize sizes the header reserved before fn runs; pass -1 if the
// size is unknown, which reserves the 1-byte inline band and relies on
// relocation. If fn ends up writing more than the reserved band can
// address, WriteContainer shifts the payload forward to make room for a
// wider length prefix; it never shrinks a header that turns out larger
// than the final length needs; a reserved-but-oversized header is still
// valid and decodable. Containers whose payload exceeds 2^48-1 bytes
// fail, since the format has no wider length band.
func (e *Encoder) WriteContainer(hash uint32, estimatedSize int, fn func(*Encoder) error) error {
	t0 := len(e.buf)
	var headerLen int
	if estimatedSize < 0 {
		headerLen, _, _ = containerBandFor(64)
	} else {
		headerLen, _, _ = containerBandFor(uint64(estimatedSize) + 4)
	}

	e.reserve(headerLen + 4)
	e.buf = append(e.buf, make([]byte, headerLen)...)
	e.tail += headerLen

	bodyStart := len(e.buf)
	e.writeUint32LE(hash)
	if err := fn(e); err != nil {
		return err
	}
	length := uint64(len(e.buf) - bodyStart)

	newHeaderLen, _, ok := containerBandFor(length)
	if !ok {
		return errOther("container overflow: payload of %d bytes exceeds the 48-bit length band", length)
	}
	if newHeaderLen > headerLen {
		delta := newHeaderLen - headerLen
		e.reserve(delta)
		e.buf = append(e.buf, make([]byte, delta)...)
		copy(e.buf[t0+newHeaderLen:], e.buf[t0+headerLen:len(e.buf)-delta])
		e.tail += delta
		headerLen = newHeaderLen
	}
	// If the payload fits within the already-reserved band (newHeaderLen
	// <= headerLen), the header is simply patched in place at its
	// reserved width rather than narrowed.

	e.patchContainerHeader(t0, headerLen, length)
	return nil
}

// patchContainerHeader writes the final tag and length prefix into the
// header bytes reserved at offset t0.
func (e *Encoder) patchContainerHeader(t0, headerLen int, length uint64) {
	switch headerLen {
	case 1:
		e.buf[t0] = byte(tagContainerLo + length)
	case 2:
		e.buf[t0] = tagContainer8
		e.buf[t0+1] = byte(length)
	case 3:
		e.buf[t0] = tagContainer16
		e.buf[t0+1] = byte(length)
		e.buf[t0+2] = byte(length >> 8)
	case 5:
		e.buf[t0] = tagContainer32
		e.buf[t0+1] = byte(length)
		e.buf[t0+2] = byte(length >> 8)
		e.buf[t0+3] = byte(length >> 16)
		e.buf[t0+4] = byte(length >> 24)
	case 7:
		e.buf[t0] = tagContainer48
		e.buf[t0+1] = byte(length)
		e.buf[t0+2] = byte(length >> 8)
		e.buf[t0+3] = byte(length >> 16)
		e.buf[t0+4] = byte(length >> 24)
		e.buf[t0+5] = byte(length >> 32)
		e.buf[t0+6] = byte(length >> 40)
	}
}

func (e *Encoder) writeUint32LE(v uint32) {
	e.buf = append(e.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	e.tail += 4
}
