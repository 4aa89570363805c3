// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

// Value is the sum type returned by Decoder.Read. Its concrete types are
// sealed to this package (the unexported bonValue method), mirroring the
// closed EnumValue in the format's original implementation.
type Value interface {
	Kind() Kind
	bonValue()
}

type Void struct{}

func (Void) Kind() Kind { return KindNull }
func (Void) bonValue()  {}

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) bonValue()  {}

type Int64 int64

func (Int64) Kind() Kind { return KindInt }
func (Int64) bonValue()  {}

// Int128 holds a signed 128-bit integer as a sign flag plus a 128-bit
// magnitude (low/high 64-bit halves), since Go has no native int128 and
// the format itself never stores two's-complement (invariant 2).
type Int128 struct {
	Neg    bool
	Lo, Hi uint64
}

func (Int128) Kind() Kind { return KindInt }
func (Int128) bonValue()  {}

type Uint64 uint64

func (Uint64) Kind() Kind { return KindUint }
func (Uint64) bonValue()  {}

// Uint128 holds an unsigned 128-bit integer as low/high 64-bit halves.
type Uint128 struct{ Lo, Hi uint64 }

func (Uint128) Kind() Kind { return KindUint }
func (Uint128) bonValue()  {}

type F32 float32

func (F32) Kind() Kind { return KindF32 }
func (F32) bonValue()  {}

type F64 float64

func (F64) Kind() Kind { return KindF64 }
func (F64) bonValue()  {}

type Str string

func (Str) Kind() Kind { return KindString }
func (Str) bonValue()  {}

type Bin []byte

func (Bin) Kind() Kind { return KindBinary }
func (Bin) bonValue()  {}

// Field is one (name, Value) pair inside a Struct container. The format
// does not encode field names on the wire (invariant: only the 32-bit
// type hash is self-describing); Name is supplied and interpreted by the
// application's own schema, carried here only so round-tripping an
// application-level Struct through BON's generic container path doesn't
// lose it.
type Field struct {
	Name  string
	Value Value
}

// Struct is a decoded generic container: its opaque 32-bit type hash plus
// an ordered sequence of application-defined fields.
type Struct struct {
	Hash   uint32
	Fields []Field
}

func (Struct) Kind() Kind { return KindContainer }
func (Struct) bonValue()  {}

// Arr is a decoded generic-array container (type hash HashArray).
type Arr struct {
	Hash uint32
	Elem []Value
}

func (Arr) Kind() Kind { return KindContainer }
func (Arr) bonValue()  {}

// MapEntry is one key/value pair inside a decoded generic-map container.
// The format does not canonicalize map key order (spec's Non-goals); the
// entries are returned in wire order.
type MapEntry struct {
	Key, Val Value
}

// Map is a decoded generic-map container (type hash HashMap).
type Map struct {
	Hash    uint32
	Entries []MapEntry
}

func (Map) Kind() Kind { return KindContainer }
func (Map) bonValue()  {}

// RawContainer stands for a container whose tag requires a length prefix
// wider than the inline band (tags 245..248): rather than eagerly
// descending into it, Read signals IsContainer and the caller switches to
// ReadContainer. Read never returns a RawContainer value; it is
// documented here so the two paths (generic Read vs ReadContainer) are
// discoverable from one place.
type RawContainer struct{}

func (RawContainer) Kind() Kind { return KindContainer }
func (RawContainer) bonValue()  {}

// BigInt is a decoded tag-249 extended numeric value: a 256-bit unsigned
// magnitude, little-endian.
type BigInt [32]byte

func (BigInt) Kind() Kind { return KindBigInt }
func (BigInt) bonValue()  {}

// Read decodes the next value generically. Tags 245..248 (containers
// whose length prefix is wider than the inline band) are signalled via
// *Error{Kind: KindIsContainerErr} rather than descended into, so the
// caller can switch to the structured ReadContainer path without losing
// its place. Tags 5 and 8 (reserved float widths) are rejected with
// KindOtherErr.
func (d *Decoder) Read() (Value, error) {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return nil, err
	}
	switch {
	case t == tagNull:
		return Void{}, nil
	case t == tagFalse:
		return Bool(false), nil
	case t == tagTrue:
		return Bool(true), nil
	case t == tagF0:
		return F32(0), nil
	case t == tagF1:
		return F32(1), nil
	case t == tagF16:
		return nil, errOther("16-bit float unsupported")
	case t == tagF32:
		if err := d.probe(4); err != nil {
			return nil, err
		}
		return F32(float32FromBits(d.le32())), nil
	case t == tagF64:
		if err := d.probe(8); err != nil {
			return nil, err
		}
		return F64(float64FromBits(d.le64())), nil
	case t == tagF128:
		return nil, errOther("128-bit float unsupported")
	case t == tagNegOne:
		return Int64(-1), nil
	case t >= tagSmallLo && t <= tagSmallHi:
		return Int64(int64(t) - 16), nil
	case t >= tagNeg8 && t <= tagNeg128:
		neg, lo, hi, err := d.readMagnitude(t)
		if err != nil {
			return nil, err
		}
		if hi != 0 {
			return Int128{Neg: neg, Lo: lo, Hi: hi}, nil
		}
		return Int64(asSignedMagnitude(neg, lo)), nil
	case t >= tagPos8 && t <= tagPos128:
		_, lo, hi, err := d.readMagnitude(t)
		if err != nil {
			return nil, err
		}
		if hi != 0 {
			return Uint128{Lo: lo, Hi: hi}, nil
		}
		return Uint64(lo), nil
	case t >= tagStrLo && t <= tagStr48:
		n, err := d.dataLen(t, tagStrLo)
		if err != nil {
			return nil, err
		}
		if err := d.probe(n); err != nil {
			return nil, err
		}
		s := lossyUTF8(d.buf[d.head : d.head+n])
		d.head += n
		return Str(s), nil
	case t >= tagBinLo && t <= tagBin48:
		n, err := d.dataLen(t, tagBinLo)
		if err != nil {
			return nil, err
		}
		if err := d.probe(n); err != nil {
			return nil, err
		}
		out := make([]byte, n)
		copy(out, d.buf[d.head:d.head+n])
		d.head += n
		return Bin(out), nil
	case t >= tagContainer8 && t <= tagContainer48:
		return nil, errIsContainer(t)
	case t >= tagContainerLo && t <= tagContainerHi:
		d.head = pos
		return d.readInlineContainer()
	case t == tagBigInt:
		if err := d.probe(32); err != nil {
			return nil, err
		}
		var bi BigInt
		copy(bi[:], d.buf[d.head:d.head+32])
		d.head += 32
		return bi, nil
	default:
		return nil, errOther("unexpected type: %d", t)
	}
}

// readInlineContainer decodes a small (<=64 byte payload) container into
// Arr, Map, or Struct, recursively calling Read for each child. It is
// only reached for the inline container band, where zero-copy inspection
// matters less because the payload is already bounded and small.
func (d *Decoder) readInlineContainer() (Value, error) {
	var result Value
	err := d.ReadContainer(func(inner *Decoder, hash uint32, length int) error {
		end := inner.head + length
		switch hash {
		case HashArray:
			var elems []Value
			for inner.head < end {
				v, err := inner.Read()
				if err != nil {
					return err
				}
				elems = append(elems, v)
			}
			result = Arr{Hash: hash, Elem: elems}
		case HashMap:
			var entries []MapEntry
			for inner.head < end {
				k, err := inner.Read()
				if err != nil {
					return err
				}
				v, err := inner.Read()
				if err != nil {
					return err
				}
				entries = append(entries, MapEntry{Key: k, Val: v})
			}
			result = Map{Hash: hash, Entries: entries}
		default:
			var fields []Field
			for inner.head < end {
				v, err := inner.Read()
				if err != nil {
					return err
				}
				fields = append(fields, Field{Value: v})
			}
			result = Struct{Hash: hash, Fields: fields}
		}
		if inner.head != end {
			return errOther("container decoded to wrong length: at %d, expected %d", inner.head, end)
		}
		return nil
	})
	return result, err
}
