// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadDispatchesScalars(t *testing.T) {
	e := NewEncoder(nil)
	e.WriteNull()
	e.WriteBool(true)
	e.WriteInt64(-5)
	e.WriteUint64(5)
	e.WriteString("hi")
	e.WriteBinary([]byte{1, 2, 3})

	d := NewDecoder(e.Bytes(), 0)
	// 5 is written with the shared one-byte small-integer tag, which Read
	// decodes as Int64 whichever writer produced it.
	want := []Value{Void{}, Bool(true), Int64(-5), Int64(5), Str("hi"), Bin([]byte{1, 2, 3})}
	for i, w := range want {
		got, err := d.Read()
		if err != nil {
			t.Fatalf("Read #%d: %v", i, err)
		}
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("Read #%d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestReadInlineArray(t *testing.T) {
	e := NewEncoder(nil)
	e.WriteContainer(HashArray, -1, func(e *Encoder) error {
		e.WriteInt64(1)
		e.WriteInt64(2)
		e.WriteInt64(3)
		return nil
	})

	d := NewDecoder(e.Bytes(), 0)
	v, err := d.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	arr, ok := v.(Arr)
	if !ok {
		t.Fatalf("Read: got %T, want Arr", v)
	}
	want := []Value{Int64(1), Int64(2), Int64(3)}
	if diff := cmp.Diff(want, arr.Elem); diff != "" {
		t.Errorf("Arr.Elem mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWideContainerSignalsIsContainer(t *testing.T) {
	e := NewEncoder(nil)
	big := make([]byte, 100)
	e.WriteContainer(1, -1, func(e *Encoder) error {
		e.WriteBinary(big)
		return nil
	})

	d := NewDecoder(e.Bytes(), 0)
	_, err := d.Read()
	var berr *Error
	if err == nil {
		t.Fatal("Read on wide container: got nil error, want IsContainer")
	}
	if !errors.As(err, &berr) || berr.Kind != KindIsContainerErr {
		t.Errorf("Read on wide container: got %v, want *Error{Kind: KindIsContainerErr}", err)
	}
}
