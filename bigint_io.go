// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "math/big"

// WriteBigInt appends v as tag 249: a 256-bit unsigned little-endian
// magnitude. v must be non-negative and fit in 256 bits; this is an
// extension beyond the format's original implementation, which only ever
// compares tag-249 values (via the bigint ordering adapter) and never
// emits one itself. The wire shape is unchanged: 32 bytes, little-endian,
// the same as what Compare and bon/bigint.Compare already consume.
func (e *Encoder) WriteBigInt(v *big.Int) error {
	if v.Sign() < 0 {
		return errOther("WriteBigInt: negative value not representable")
	}
	be := v.Bytes()
	if len(be) > 32 {
		return errOther("WriteBigInt: value exceeds 256 bits")
	}
	e.reserve(33)
	e.buf = append(e.buf, tagBigInt)
	var le [32]byte
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	e.buf = append(e.buf, le[:]...)
	e.tail += 33
	return nil
}

// ReadBigInt reads a tag-249 value and returns it as an arbitrary
// precision, always non-negative, integer.
func (d *Decoder) ReadBigInt() (*big.Int, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return nil, err
	}
	if t != tagBigInt {
		d.head = pos
		return nil, errTypeMismatch("bigint", t, pos)
	}
	if err := d.probe(32); err != nil {
		return nil, err
	}
	le := d.buf[d.head : d.head+32]
	be := make([]byte, 32)
	for i, b := range le {
		be[31-i] = b
	}
	d.head += 32
	return new(big.Int).SetBytes(be), nil
}
