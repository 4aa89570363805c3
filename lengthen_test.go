// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "testing"

func TestLengthenRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0x1FFFFFFF}
	for _, v := range cases {
		e := NewEncoder(nil)
		if err := e.WriteLengthen(v); err != nil {
			t.Fatalf("WriteLengthen(%#x): %v", v, err)
		}
		d := NewDecoder(e.Bytes(), 0)
		got, err := d.ReadLengthen()
		if err != nil {
			t.Fatalf("ReadLengthen after WriteLengthen(%#x): %v", v, err)
		}
		if got != v {
			t.Errorf("WriteLengthen(%#x): round trip got %#x", v, got)
		}
		if d.Head() != e.Len() {
			t.Errorf("WriteLengthen(%#x): decoder consumed %d, encoder wrote %d", v, d.Head(), e.Len())
		}
	}
}

func TestLengthenBandWidths(t *testing.T) {
	tests := []struct {
		v        uint32
		wantSize int
	}{
		{0, 1}, {0x7F, 1}, {0x80, 2}, {0x3FFF, 2}, {0x4000, 4}, {0x1FFFFFFF, 4},
	}
	for _, tc := range tests {
		e := NewEncoder(nil)
		if err := e.WriteLengthen(tc.v); err != nil {
			t.Fatalf("WriteLengthen(%#x): %v", tc.v, err)
		}
		if e.Len() != tc.wantSize {
			t.Errorf("WriteLengthen(%#x): wrote %d bytes, want %d", tc.v, e.Len(), tc.wantSize)
		}
	}
}

func TestLengthenRejectsOutOfRange(t *testing.T) {
	e := NewEncoder(nil)
	if err := e.WriteLengthen(lengthenMax); err == nil {
		t.Fatal("WriteLengthen(lengthenMax): got nil error, want error")
	}
}
