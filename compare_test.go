// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "testing"

func encodeOne(t *testing.T, write func(*Encoder)) []byte {
	t.Helper()
	e := NewEncoder(nil)
	write(e)
	return e.Bytes()
}

func TestCompareAcrossCategories(t *testing.T) {
	num := encodeOne(t, func(e *Encoder) { e.WriteInt64(5) })
	str := encodeOne(t, func(e *Encoder) { e.WriteString("a") })
	bin := encodeOne(t, func(e *Encoder) { e.WriteBinary([]byte("a")) })

	if order, ok := Compare(num, str); !ok || order >= 0 {
		t.Errorf("Compare(number, string) = (%d, %v), want negative, true", order, ok)
	}
	if order, ok := Compare(str, bin); !ok || order >= 0 {
		t.Errorf("Compare(string, binary) = (%d, %v), want negative, true", order, ok)
	}
	if order, ok := Compare(bin, num); !ok || order <= 0 {
		t.Errorf("Compare(binary, number) = (%d, %v), want positive, true", order, ok)
	}
}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		a, b int64
	}{
		{1, 2}, {-1, 1}, {-100, -1}, {0, 1}, {1 << 40, 1 << 41},
	}
	for _, tc := range tests {
		a := encodeOne(t, func(e *Encoder) { e.WriteInt64(tc.a) })
		b := encodeOne(t, func(e *Encoder) { e.WriteInt64(tc.b) })
		order, ok := Compare(a, b)
		if !ok {
			t.Fatalf("Compare(%d, %d): no ordering", tc.a, tc.b)
		}
		if order >= 0 {
			t.Errorf("Compare(%d, %d) = %d, want negative", tc.a, tc.b, order)
		}
	}
}

func TestCompareFloatAndIntCrossFamily(t *testing.T) {
	f := encodeOne(t, func(e *Encoder) { e.WriteF64(5.5) })
	i := encodeOne(t, func(e *Encoder) { e.WriteInt64(5) })
	order, ok := Compare(f, i)
	if !ok {
		t.Fatal("Compare(float, int): no ordering")
	}
	if order <= 0 {
		t.Errorf("Compare(5.5, 5) = %d, want positive", order)
	}
}

func TestCompareStringsLexicographic(t *testing.T) {
	a := encodeOne(t, func(e *Encoder) { e.WriteString("apple") })
	b := encodeOne(t, func(e *Encoder) { e.WriteString("banana") })
	order, ok := Compare(a, b)
	if !ok || order >= 0 {
		t.Errorf("Compare(%q, %q) = (%d, %v), want negative, true", "apple", "banana", order, ok)
	}
}

func TestCompareEqualValues(t *testing.T) {
	a := encodeOne(t, func(e *Encoder) { e.WriteInt64(42) })
	b := encodeOne(t, func(e *Encoder) { e.WriteInt64(42) })
	order, ok := Compare(a, b)
	if !ok || order != 0 {
		t.Errorf("Compare(42, 42) = (%d, %v), want (0, true)", order, ok)
	}
}

func TestCompareContainersElementWise(t *testing.T) {
	small := encodeOne(t, func(e *Encoder) {
		e.WriteContainer(HashArray, -1, func(e *Encoder) error {
			e.WriteInt64(1)
			e.WriteInt64(2)
			return nil
		})
	})
	large := encodeOne(t, func(e *Encoder) {
		e.WriteContainer(HashArray, -1, func(e *Encoder) error {
			e.WriteInt64(1)
			e.WriteInt64(3)
			return nil
		})
	})
	order, ok := Compare(small, large)
	if !ok {
		t.Fatal("Compare(containers): no ordering")
	}
	if order >= 0 {
		t.Errorf("Compare([1,2], [1,3]) = %d, want negative", order)
	}
}

func TestCompareContainerPrefixIsLess(t *testing.T) {
	short := encodeOne(t, func(e *Encoder) {
		e.WriteContainer(HashArray, -1, func(e *Encoder) error {
			e.WriteInt64(1)
			return nil
		})
	})
	long := encodeOne(t, func(e *Encoder) {
		e.WriteContainer(HashArray, -1, func(e *Encoder) error {
			e.WriteInt64(1)
			e.WriteInt64(2)
			return nil
		})
	})
	order, ok := Compare(short, long)
	if !ok || order >= 0 {
		t.Errorf("Compare([1], [1,2]) = (%d, %v), want negative, true", order, ok)
	}
}

func TestMustComparePanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompare: expected panic on malformed input")
		}
	}()
	MustCompare(nil, nil)
}
