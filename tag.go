// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "strconv"

// Tag byte values. Each encoded value begins with one of these, chosen by
// the encoder to be the narrowest representation of the value (invariant 1
// in the format's data model).
const (
	tagNull   = 0
	tagFalse  = 1
	tagTrue   = 2
	tagF0     = 3 // float 0.0, either width
	tagF1     = 4 // float 1.0, either width
	tagF16    = 5 // reserved, rejected
	tagF32    = 6 // 32-bit float payload, little-endian
	tagF64    = 7 // 64-bit float payload, little-endian
	tagF128   = 8 // reserved, rejected
	tagNeg8   = 9
	tagNeg16  = 10
	tagNeg32  = 11
	tagNeg48  = 12
	tagNeg64  = 13
	tagNeg128 = 14
	tagNegOne = 15 // integer -1

	// tagSmallLo..tagSmallHi: integer t-16 for t in 16..35, i.e. 0..19.
	tagSmallLo = 16
	tagSmallHi = 35

	tagPos8   = 36
	tagPos16  = 37
	tagPos32  = 38
	tagPos48  = 39
	tagPos64  = 40
	tagPos128 = 41

	// tagStrLo..tagStrHi: inline UTF-8 string of length t-42, 0..64.
	tagStrLo  = 42
	tagStrHi  = 106
	tagStr8   = 107 // 8-bit length prefix
	tagStr16  = 108 // 16-bit length prefix
	tagStr32  = 109 // 32-bit length prefix
	tagStr48  = 110 // 48-bit length prefix

	// tagBinLo..tagBinHi: inline binary of length t-111, 0..64.
	tagBinLo = 111
	tagBinHi = 175
	tagBin8  = 176
	tagBin16 = 177
	tagBin32 = 178
	tagBin48 = 179

	// tagContainerLo..tagContainerHi: inline container of byte-length t-180.
	tagContainerLo = 180
	tagContainerHi = 244
	tagContainer8  = 245
	tagContainer16 = 246
	tagContainer32 = 247
	tagContainer48 = 248

	tagBigInt = 249
)

// Reserved type-hash values for generic containers; anything else is
// caller-defined and opaque to the codec.
const (
	HashIgnore  uint32 = 0
	HashObject  uint32 = 1
	HashArray   uint32 = 2
	HashMap     uint32 = 3
	reservedMax        = HashMap
)

// dataBand picks the tag band and length-prefix width for a string or
// binary payload of the given length, given the band's base tag. It
// mirrors write_data in the format's original implementation: lengths up
// to 64 are inlined in the tag itself; beyond that a 1/2/4/6-byte
// little-endian length prefix follows, selected by the smallest width
// that fits.
func dataBand(base byte, length int) (tag byte, prefixLen int) {
	switch {
	case length <= 64:
		return base + byte(length), 0
	case length <= 0xFF:
		return base + 65, 1
	case length <= 0xFFFF:
		return base + 66, 2
	case length <= 0xFFFFFFFF:
		return base + 67, 4
	default:
		return base + 68, 6
	}
}

// Kind names the shape of a decoded value, independent of which tag width
// the encoder happened to choose for it.
type Kind byte

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindF32
	KindF64
	KindString
	KindBinary
	KindContainer
	KindBigInt
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindContainer:
		return "container"
	case KindBigInt:
		return "bigint"
	default:
		return "invalid"
	}
}

// KindOf reports the shape named by a tag byte, without consuming
// anything. It returns false for the reserved float widths (5, 8), which
// the format defines but neither the encoder nor the decoder implement.
func KindOf(tag byte) (Kind, bool) {
	switch {
	case tag == tagNull:
		return KindNull, true
	case tag == tagFalse || tag == tagTrue:
		return KindBool, true
	case tag == tagF16 || tag == tagF128:
		return KindInvalid, false
	case tag == tagF0 || tag == tagF1 || tag == tagF32:
		return KindF32, true
	case tag == tagF64:
		return KindF64, true
	case tag >= tagNeg8 && tag <= tagNeg128:
		return KindInt, true
	case tag == tagNegOne:
		return KindInt, true
	case tag >= tagSmallLo && tag <= tagSmallHi:
		return KindInt, true
	case tag >= tagPos8 && tag <= tagPos128:
		return KindUint, true
	case tag >= tagStrLo && tag <= tagStr48:
		return KindString, true
	case tag >= tagBinLo && tag <= tagBin48:
		return KindBinary, true
	case tag >= tagContainerLo && tag <= tagContainer48:
		return KindContainer, true
	case tag == tagBigInt:
		return KindBigInt, true
	default:
		return KindInvalid, false
	}
}

// typeName returns a short human label for a tag, used in TypeMismatch
// errors. It mirrors ReadBonErr::type_no_match's act_type rendering in the
// original implementation.
func typeName(tag byte) string {
	switch {
	case tag == tagNull:
		return "null"
	case tag == tagFalse:
		return "false"
	case tag == tagTrue:
		return "true"
	case tag == tagF0:
		return "0.0"
	case tag == tagF1:
		return "1.0"
	case tag >= tagF16 && tag < tagF32:
		return "float"
	case tag >= tagNeg8 && tag < tagNegOne:
		return "int"
	case tag == tagNegOne:
		return "-1"
	case tag > tagNegOne && tag < tagPos8:
		return strconv.Itoa(int(tag) - 16)
	case tag >= tagPos8 && tag < tagStrLo:
		return "uint"
	case tag >= tagStrLo && tag < tagBinLo:
		return "string"
	case tag >= tagBinLo && tag < tagContainerLo:
		return "bin"
	case tag >= tagContainerLo && tag <= tagBigInt:
		return "container"
	default:
		return "invalid type"
	}
}
