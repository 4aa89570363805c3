// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReadInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 19, 20, -20, 127, -127, 128, -128,
		32767, -32768, 1 << 20, -(1 << 20), 1 << 40, -(1 << 40),
		1<<63 - 1, -(1 << 62)}

	for _, v := range cases {
		e := NewEncoder(nil)
		e.WriteInt64(v)
		d := NewDecoder(e.Bytes(), 0)
		got, err := d.ReadInt64()
		if err != nil {
			t.Fatalf("WriteInt64(%d): ReadInt64: %v", v, err)
		}
		if got != v {
			t.Errorf("WriteInt64(%d): round trip got %d", v, got)
		}
		if d.Head() != e.Len() {
			t.Errorf("WriteInt64(%d): decoder consumed %d bytes, encoder wrote %d", v, d.Head(), e.Len())
		}
	}
}

func TestWriteReadUint64RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 19, 20, 255, 256, 65535, 65536,
		1 << 32, 1<<48 - 1, 1 << 48, 1<<64 - 1}

	for _, v := range cases {
		e := NewEncoder(nil)
		e.WriteUint64(v)
		d := NewDecoder(e.Bytes(), 0)
		got, err := d.ReadUint64()
		if err != nil {
			t.Fatalf("WriteUint64(%d): ReadUint64: %v", v, err)
		}
		if got != v {
			t.Errorf("WriteUint64(%d): round trip got %d", v, got)
		}
	}
}

func TestSmallIntegersUseOneByte(t *testing.T) {
	for v := int64(-1); v <= 19; v++ {
		e := NewEncoder(nil)
		e.WriteInt64(v)
		if e.Len() != 1 {
			t.Errorf("WriteInt64(%d): wrote %d bytes, want 1", v, e.Len())
		}
	}
}

func TestWriteReadBoolNull(t *testing.T) {
	e := NewEncoder(nil)
	e.WriteBool(true)
	e.WriteBool(false)
	e.WriteNull()

	d := NewDecoder(e.Bytes(), 0)
	if v, err := d.ReadBool(); err != nil || v != true {
		t.Fatalf("ReadBool #1: got (%v, %v), want (true, nil)", v, err)
	}
	if v, err := d.ReadBool(); err != nil || v != false {
		t.Fatalf("ReadBool #2: got (%v, %v), want (false, nil)", v, err)
	}
	isNil, err := d.IsNil()
	if err != nil || !isNil {
		t.Fatalf("IsNil: got (%v, %v), want (true, nil)", isNil, err)
	}
}

func TestWriteReadFloat(t *testing.T) {
	cases := []float64{0.0, 1.0, -1.0, 3.14159, -2.5, 1e100, -1e-100}
	for _, v := range cases {
		e := NewEncoder(nil)
		e.WriteF64(v)
		d := NewDecoder(e.Bytes(), 0)
		got, err := d.ReadF64()
		if err != nil {
			t.Fatalf("WriteF64(%v): ReadF64: %v", v, err)
		}
		if got != v {
			t.Errorf("WriteF64(%v): round trip got %v", v, got)
		}
	}
	// 0.0 and 1.0 compact to a single byte.
	e := NewEncoder(nil)
	e.WriteF64(0.0)
	if e.Len() != 1 {
		t.Errorf("WriteF64(0.0): wrote %d bytes, want 1", e.Len())
	}
}

func TestWriteReadStringRoundTrip(t *testing.T) {
	cases := []string{"", "a", "hello, world", string(make([]byte, 100))}
	for _, s := range cases {
		e := NewEncoder(nil)
		e.WriteString(s)
		d := NewDecoder(e.Bytes(), 0)
		got, err := d.ReadString()
		if err != nil {
			t.Fatalf("WriteString(%q): ReadString: %v", s, err)
		}
		if got != s {
			t.Errorf("WriteString(%q): round trip got %q", s, got)
		}
	}
}

func TestWriteReadBinaryRoundTrip(t *testing.T) {
	cases := [][]byte{{}, {1}, make([]byte, 300)}
	for _, b := range cases {
		e := NewEncoder(nil)
		e.WriteBinary(b)
		d := NewDecoder(e.Bytes(), 0)
		got, err := d.ReadBinary()
		if err != nil {
			t.Fatalf("WriteBinary(%d bytes): ReadBinary: %v", len(b), err)
		}
		if diff := cmp.Diff(b, got); diff != "" {
			t.Errorf("WriteBinary(%d bytes): round trip mismatch (-want +got):\n%s", len(b), diff)
		}
	}
}

func TestWriteInt128RoundTrip(t *testing.T) {
	e := NewEncoder(nil)
	e.WriteInt128(false, 1, 1) // genuinely 128-bit: hi != 0
	d := NewDecoder(e.Bytes(), 0)
	neg, lo, hi, err := d.ReadInt128()
	if err != nil {
		t.Fatalf("ReadInt128: %v", err)
	}
	if neg || lo != 1 || hi != 1 {
		t.Errorf("ReadInt128: got (%v, %d, %d), want (false, 1, 1)", neg, lo, hi)
	}
}

func TestDecodeOverflow(t *testing.T) {
	d := NewDecoder([]byte{tagPos32}, 0)
	if _, err := d.ReadUint64(); err == nil {
		t.Fatal("ReadUint64 on truncated input: got nil error, want overflow")
	}
}
