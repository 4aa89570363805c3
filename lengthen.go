// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "encoding/binary"

// lengthenMax is the first value rejected by WriteLengthen: the 29-bit
// band tops out just below it.
const lengthenMax = 0x20000000

// WriteLengthen appends the dynamic-width unsigned integer used for
// element counts inside generic containers (not for a container's own
// byte length, which uses the tag-table length prefix instead). Values
// below 0x20000000 are encoded in 1, 2, or 4 bytes:
//
//	0xxxxxxx                                   7-bit value
//	10xxxxxx xxxxxxxx                          14-bit value, biased +0x8000
//	110xxxxx xxxxxxxx xxxxxxxx xxxxxxxx         29-bit value, biased +0xC0000000
//
// The format's original implementation encodes the 2- and 4-byte forms in
// host byte order, which breaks portability between big- and
// little-endian machines. This port always uses little-endian, per the
// format's own design notes recommending that fix.
func (e *Encoder) WriteLengthen(v uint32) error {
	switch {
	case v < 0x80:
		e.reserve(1)
		e.buf = append(e.buf, byte(v))
		e.tail++
	case v < 0x4000:
		e.reserve(2)
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], uint16(0x8000+v))
		e.buf = append(e.buf, tmp[:]...)
		e.tail += 2
	case v < lengthenMax:
		e.reserve(4)
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], 0xC0000000+v)
		e.buf = append(e.buf, tmp[:]...)
		e.tail += 4
	default:
		return errOther("invalid lengthen: %d", v)
	}
	return nil
}

// ReadLengthen reads a value written by WriteLengthen. See that method's
// doc comment for the little-endian deviation from the format's
// original host-endian implementation.
func (d *Decoder) ReadLengthen() (uint32, error) {
	if err := d.probe(1); err != nil {
		return 0, err
	}
	t := d.buf[d.head]
	switch {
	case t < 0x80:
		d.head++
		return uint32(t), nil
	case t < 0xC0:
		if err := d.probe(2); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint16(d.buf[d.head:])
		d.head += 2
		return uint32(v) - 0x8000, nil
	case t < 0xE0:
		if err := d.probe(4); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint32(d.buf[d.head:])
		d.head += 4
		return v - 0xC0000000, nil
	default:
		return 0, errTypeMismatch("lengthen", t, d.head)
	}
}
