// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "math"

// Decoder reads BON-encoded values from a borrowed byte slice, starting at
// a given head offset. It never copies the input except where a typed
// read must materialize owned data (ReadString, ReadBinary, ReadBigInt).
type Decoder struct {
	buf    []byte
	head   int
	logger Logger
}

// NewDecoder constructs a Decoder over buf, starting at head. buf must
// outlive the Decoder; it is borrowed, not copied.
func NewDecoder(buf []byte, head int) *Decoder {
	return &Decoder{buf: buf, head: head, logger: defaultLogger}
}

// WithLogger attaches a Logger used for the decoder's non-fatal
// diagnostics (currently only the read_integer exhaustion case). It
// returns the receiver for chaining.
func (d *Decoder) WithLogger(l Logger) *Decoder {
	if l == nil {
		l = NopLogger{}
	}
	d.logger = l
	return d
}

// Head returns the decoder's current read position.
func (d *Decoder) Head() int { return d.head }

// Len returns the total length of the borrowed buffer (not the number of
// bytes remaining).
func (d *Decoder) Len() int { return len(d.buf) }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.head }

func (d *Decoder) probe(n int) error {
	if n > d.Remaining() {
		return errOverflow(n, d.Remaining())
	}
	return nil
}

// PeekTag returns the next tag byte without advancing the cursor.
func (d *Decoder) PeekTag() (byte, error) {
	if err := d.probe(1); err != nil {
		return 0, err
	}
	return d.buf[d.head], nil
}

// ReadTag returns the next tag byte and advances past it.
func (d *Decoder) ReadTag() (byte, error) {
	t, err := d.PeekTag()
	if err != nil {
		return 0, err
	}
	d.head++
	return t, nil
}

// IsNil reports whether the next value is the null tag, without consuming
// it unless it is.
func (d *Decoder) IsNil() (bool, error) {
	t, err := d.PeekTag()
	if err != nil {
		return false, err
	}
	if t == tagNull {
		d.head++
		return true, nil
	}
	return false, nil
}

// ReadBool reads a bool. The tag must be tagFalse or tagTrue.
func (d *Decoder) ReadBool() (bool, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return false, err
	}
	switch t {
	case tagFalse:
		return false, nil
	case tagTrue:
		return true, nil
	default:
		return false, errTypeMismatch("bool", t, pos)
	}
}

func (d *Decoder) le16() uint16 {
	v := uint16(d.buf[d.head]) | uint16(d.buf[d.head+1])<<8
	d.head += 2
	return v
}

func (d *Decoder) le32() uint32 {
	v := uint32(d.buf[d.head]) | uint32(d.buf[d.head+1])<<8 |
		uint32(d.buf[d.head+2])<<16 | uint32(d.buf[d.head+3])<<24
	d.head += 4
	return v
}

func (d *Decoder) le48() uint64 {
	lo := uint64(d.buf[d.head]) | uint64(d.buf[d.head+1])<<8
	hi := uint64(d.buf[d.head+2]) | uint64(d.buf[d.head+3])<<8 |
		uint64(d.buf[d.head+4])<<16 | uint64(d.buf[d.head+5])<<24
	d.head += 6
	return lo | hi<<16
}

func (d *Decoder) le64() uint64 {
	v := uint64(d.buf[d.head]) | uint64(d.buf[d.head+1])<<8 |
		uint64(d.buf[d.head+2])<<16 | uint64(d.buf[d.head+3])<<24 |
		uint64(d.buf[d.head+4])<<32 | uint64(d.buf[d.head+5])<<40 |
		uint64(d.buf[d.head+6])<<48 | uint64(d.buf[d.head+7])<<56
	d.head += 8
	return v
}

func (d *Decoder) le128() (lo, hi uint64) {
	lo = d.le64()
	hi = d.le64()
	return
}

// readMagnitude reads the raw integer payload at the cursor (the tag
// must already have been consumed by the caller) and returns its sign and
// 128-bit magnitude. tag selects how many payload bytes follow.
func (d *Decoder) readMagnitude(tag byte) (neg bool, lo, hi uint64, err error) {
	if tag == tagNegOne {
		return true, 1, 0, nil
	}
	if tag >= tagSmallLo && tag <= tagSmallHi {
		return false, uint64(tag - tagSmallLo), 0, nil
	}
	switch tag {
	case tagNeg8:
		if err = d.probe(1); err != nil {
			return
		}
		lo = uint64(d.buf[d.head])
		d.head++
		return true, lo, 0, nil
	case tagNeg16:
		if err = d.probe(2); err != nil {
			return
		}
		return true, uint64(d.le16()), 0, nil
	case tagNeg32:
		if err = d.probe(4); err != nil {
			return
		}
		return true, uint64(d.le32()), 0, nil
	case tagNeg48:
		if err = d.probe(6); err != nil {
			return
		}
		return true, d.le48(), 0, nil
	case tagNeg64:
		if err = d.probe(8); err != nil {
			return
		}
		return true, d.le64(), 0, nil
	case tagNeg128:
		if err = d.probe(16); err != nil {
			return
		}
		lo, hi = d.le128()
		return true, lo, hi, nil
	case tagPos8:
		if err = d.probe(1); err != nil {
			return
		}
		lo = uint64(d.buf[d.head])
		d.head++
		return false, lo, 0, nil
	case tagPos16:
		if err = d.probe(2); err != nil {
			return
		}
		return false, uint64(d.le16()), 0, nil
	case tagPos32:
		if err = d.probe(4); err != nil {
			return
		}
		return false, uint64(d.le32()), 0, nil
	case tagPos48:
		if err = d.probe(6); err != nil {
			return
		}
		return false, d.le48(), 0, nil
	case tagPos64:
		if err = d.probe(8); err != nil {
			return
		}
		return false, d.le64(), 0, nil
	case tagPos128:
		if err = d.probe(16); err != nil {
			return
		}
		lo, hi = d.le128()
		return false, lo, hi, nil
	default:
		d.logger.Error("bon: read integer: unrecognized tag", Fields{"tag": tag, "position": d.head - 1})
		return false, 0, 0, errTypeMismatch("integer", tag, d.head-1)
	}
}

// readInteger reads any integer-tagged value (tags 9..41) and returns its
// sign and 128-bit magnitude. Width wider than the eventual target is the
// caller's concern: ReadIntN/ReadUintN silently truncate on cast,
// intentionally and by design.
func (d *Decoder) readInteger() (neg bool, lo, hi uint64, err error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return false, 0, 0, err
	}
	if t < tagNeg8 || (t > tagPos128) {
		return false, 0, 0, errTypeMismatch("integer", t, pos)
	}
	return d.readMagnitude(t)
}

func asSignedMagnitude(neg bool, lo uint64) int64 {
	if neg {
		return -int64(lo)
	}
	return int64(lo)
}

// ReadInt8 reads any integer tag and truncates to 8 bits.
func (d *Decoder) ReadInt8() (int8, error) {
	v, err := d.ReadInt64()
	return int8(v), err
}

// ReadInt16 reads any integer tag and truncates to 16 bits.
func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadInt64()
	return int16(v), err
}

// ReadInt32 reads any integer tag and truncates to 32 bits.
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadInt64()
	return int32(v), err
}

// ReadInt64 reads any integer tag (signed or unsigned) and casts to
// int64, truncating a wider stored value.
func (d *Decoder) ReadInt64() (int64, error) {
	neg, lo, _, err := d.readInteger()
	if err != nil {
		return 0, err
	}
	return asSignedMagnitude(neg, lo), nil
}

// ReadInt128 reads any integer tag and returns its sign and 128-bit
// magnitude (low/high 64-bit halves) without truncation.
func (d *Decoder) ReadInt128() (neg bool, lo, hi uint64, err error) {
	return d.readInteger()
}

// ReadUint8 reads any integer tag and truncates to 8 bits.
func (d *Decoder) ReadUint8() (uint8, error) {
	v, err := d.ReadUint64()
	return uint8(v), err
}

// ReadUint16 reads any integer tag and truncates to 16 bits.
func (d *Decoder) ReadUint16() (uint16, error) {
	v, err := d.ReadUint64()
	return uint16(v), err
}

// ReadUint32 reads any integer tag and truncates to 32 bits.
func (d *Decoder) ReadUint32() (uint32, error) {
	v, err := d.ReadUint64()
	return uint32(v), err
}

// ReadUint64 reads any integer tag and casts to uint64, truncating a
// wider stored value.
func (d *Decoder) ReadUint64() (uint64, error) {
	neg, lo, _, err := d.readInteger()
	if err != nil {
		return 0, err
	}
	if neg {
		return uint64(-int64(lo)), nil
	}
	return lo, nil
}

// ReadUint128 reads any integer tag and returns it as low/high 64-bit
// halves. A negative value whose magnitude fits in 64 bits is returned as
// its 64-bit two's-complement cast in lo with hi zero, as ReadUint64
// does; a negative 128-bit-wide value's magnitude is returned without
// its sign.
func (d *Decoder) ReadUint128() (lo, hi uint64, err error) {
	neg, lo, hi, err := d.readInteger()
	if err != nil {
		return 0, 0, err
	}
	if neg && hi == 0 {
		lo = uint64(-int64(lo))
	}
	return lo, hi, nil
}

// ReadF32 reads a float. Tags tagF0, tagF1, and tagF32 are accepted
// directly; any integer tag is read as an integer and cast, mirroring the
// "numbers compare across tag families" rule the comparator also
// implements.
func (d *Decoder) ReadF32() (float32, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return 0, err
	}
	switch t {
	case tagF0:
		return 0.0, nil
	case tagF1:
		return 1.0, nil
	case tagF32:
		if err := d.probe(4); err != nil {
			return 0, err
		}
		return float32FromBits(d.le32()), nil
	default:
		d.head = pos
		if v, err := d.ReadInt64(); err == nil {
			return float32(v), nil
		}
		return 0, errTypeMismatch("f32", t, pos)
	}
}

// ReadF64 reads a float. Tags tagF0, tagF1, tagF32, and tagF64 are
// accepted directly; any integer tag is read as an integer and cast.
func (d *Decoder) ReadF64() (float64, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return 0, err
	}
	switch t {
	case tagF0:
		return 0.0, nil
	case tagF1:
		return 1.0, nil
	case tagF32:
		if err := d.probe(4); err != nil {
			return 0, err
		}
		return float64(float32FromBits(d.le32())), nil
	case tagF64:
		if err := d.probe(8); err != nil {
			return 0, err
		}
		return float64FromBits(d.le64()), nil
	default:
		d.head = pos
		if v, err := d.ReadInt64(); err == nil {
			return float64(v), nil
		}
		return 0, errTypeMismatch("f64", t, pos)
	}
}

// dataLen reads the tag-banded length (and any prefix bytes) for a string
// or binary value whose tag has already been consumed by the caller.
func (d *Decoder) dataLen(tag, base byte) (int, error) {
	switch {
	case tag >= base && tag <= base+64:
		return int(tag - base), nil
	case tag == base+65:
		if err := d.probe(1); err != nil {
			return 0, err
		}
		n := int(d.buf[d.head])
		d.head++
		return n, nil
	case tag == base+66:
		if err := d.probe(2); err != nil {
			return 0, err
		}
		return int(d.le16()), nil
	case tag == base+67:
		if err := d.probe(4); err != nil {
			return 0, err
		}
		return int(d.le32()), nil
	case tag == base+68:
		if err := d.probe(6); err != nil {
			return 0, err
		}
		return int(d.le48()), nil
	default:
		return 0, errTypeMismatch("data", tag, d.head-1)
	}
}

// ReadString reads a UTF-8 string. Malformed byte sequences decode with
// the U+FFFD replacement character rather than failing (invariant 3).
func (d *Decoder) ReadString() (string, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return "", err
	}
	n, err := d.dataLen(t, tagStrLo)
	if err != nil {
		d.head = pos
		return "", err
	}
	if err := d.probe(n); err != nil {
		return "", err
	}
	s := lossyUTF8(d.buf[d.head : d.head+n])
	d.head += n
	return s, nil
}

// ReadBinary reads a binary blob and returns an owned copy.
func (d *Decoder) ReadBinary() ([]byte, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return nil, err
	}
	n, err := d.dataLen(t, tagBinLo)
	if err != nil {
		d.head = pos
		return nil, err
	}
	if err := d.probe(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, d.buf[d.head:d.head+n])
	d.head += n
	return out, nil
}

func float32FromBits(b uint32) float32 { return math.Float32frombits(b) }
func float64FromBits(b uint64) float64 { return math.Float64frombits(b) }
