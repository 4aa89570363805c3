// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

// Encodable is implemented by application types that know how to append
// themselves to an Encoder directly, in place of the free functions below.
type Encodable interface {
	EncodeBON(e *Encoder) error
}

// Decodable is the Encodable counterpart for reading.
type Decodable interface {
	DecodeBON(d *Decoder) error
}

// Signed and Unsigned constrain the generic integer helpers below to Go's
// fixed-width integer kinds, standing in for the original
// implementation's trait bounds.
type Signed interface{ ~int8 | ~int16 | ~int32 | ~int64 }
type Unsigned interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

// EncodeSigned appends v using the narrowest tag that represents it.
func EncodeSigned[T Signed](e *Encoder, v T) { e.WriteInt64(int64(v)) }

// DecodeSigned reads any integer tag and casts to T, truncating a wider
// stored value exactly as Decoder.ReadInt64 does.
func DecodeSigned[T Signed](d *Decoder) (T, error) {
	v, err := d.ReadInt64()
	return T(v), err
}

// EncodeUnsigned appends v using the narrowest tag that represents it.
func EncodeUnsigned[T Unsigned](e *Encoder, v T) { e.WriteUint64(uint64(v)) }

// DecodeUnsigned reads any integer tag and casts to T.
func DecodeUnsigned[T Unsigned](d *Decoder) (T, error) {
	v, err := d.ReadUint64()
	return T(v), err
}

// EncodeF32 appends v as a 32-bit float, or one of the compact 0.0/1.0
// tags when it matches exactly.
func EncodeF32[T ~float32](e *Encoder, v T) { e.WriteF32(float32(v)) }

func DecodeF32[T ~float32](d *Decoder) (T, error) {
	v, err := d.ReadF32()
	return T(v), err
}

// EncodeF64 appends v as a 64-bit float, or one of the compact 0.0/1.0
// tags when it matches exactly.
func EncodeF64[T ~float64](e *Encoder, v T) { e.WriteF64(float64(v)) }

func DecodeF64[T ~float64](d *Decoder) (T, error) {
	v, err := d.ReadF64()
	return T(v), err
}

func EncodeBool[T ~bool](e *Encoder, v T) { e.WriteBool(bool(v)) }

func DecodeBool[T ~bool](d *Decoder) (T, error) {
	v, err := d.ReadBool()
	return T(v), err
}

func EncodeString[T ~string](e *Encoder, v T) { e.WriteString(string(v)) }

func DecodeString[T ~string](d *Decoder) (T, error) {
	v, err := d.ReadString()
	return T(v), err
}

func EncodeBytes(e *Encoder, v []byte) { e.WriteBinary(v) }

func DecodeBytes(d *Decoder) ([]byte, error) { return d.ReadBinary() }

// EncodeOptional appends null for a nil pointer, or else delegates to enc
// for the pointed-to value (the original implementation's Option<T>).
func EncodeOptional[T any](e *Encoder, v *T, enc func(*Encoder, T)) {
	if v == nil {
		e.WriteNull()
		return
	}
	enc(e, *v)
}

// DecodeOptional is EncodeOptional's reverse: it reads null as a nil
// pointer, or else delegates to dec and returns a pointer to the result.
func DecodeOptional[T any](d *Decoder, dec func(*Decoder) (T, error)) (*T, error) {
	isNil, err := d.IsNil()
	if err != nil {
		return nil, err
	}
	if isNil {
		return nil, nil
	}
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeSlice writes v as a generic-array container (type hash
// HashArray), encoding each element with enc.
func EncodeSlice[T any](e *Encoder, v []T, enc func(*Encoder, T) error) error {
	return e.WriteContainer(HashArray, -1, func(e *Encoder) error {
		for _, x := range v {
			if err := enc(e, x); err != nil {
				return err
			}
		}
		return nil
	})
}

// DecodeSlice reads a generic-array container written by EncodeSlice,
// decoding each element with dec until the container's byte length is
// exhausted.
func DecodeSlice[T any](d *Decoder, dec func(*Decoder) (T, error)) ([]T, error) {
	var out []T
	err := d.ReadContainer(func(inner *Decoder, hash uint32, length int) error {
		end := inner.head + length
		for inner.head < end {
			v, err := dec(inner)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	return out, err
}

// EncodeMap writes m as a generic-map container (type hash HashMap),
// alternating key and value for each entry. Map iteration order is
// unspecified, matching the format's own non-canonical map encoding.
func EncodeMap[K comparable, V any](e *Encoder, m map[K]V, encKey func(*Encoder, K) error, encVal func(*Encoder, V) error) error {
	return e.WriteContainer(HashMap, -1, func(e *Encoder) error {
		for k, v := range m {
			if err := encKey(e, k); err != nil {
				return err
			}
			if err := encVal(e, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// DecodeMap reads a generic-map container written by EncodeMap.
func DecodeMap[K comparable, V any](d *Decoder, decKey func(*Decoder) (K, error), decVal func(*Decoder) (V, error)) (map[K]V, error) {
	out := make(map[K]V)
	err := d.ReadContainer(func(inner *Decoder, hash uint32, length int) error {
		end := inner.head + length
		for inner.head < end {
			k, err := decKey(inner)
			if err != nil {
				return err
			}
			v, err := decVal(inner)
			if err != nil {
				return err
			}
			out[k] = v
		}
		return nil
	})
	return out, err
}
