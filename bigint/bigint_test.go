// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bigint

import "testing"

func le(hi byte, lo ...byte) [32]byte {
	var v [32]byte
	copy(v[:], lo)
	v[len(v)-1] = hi
	return v
}

func TestCompareOrdersByMagnitude(t *testing.T) {
	zero := [32]byte{}
	one := le(0, 1)
	big := le(0xFF)

	if got := Compare(zero, one); got >= 0 {
		t.Errorf("Compare(0, 1) = %d, want < 0", got)
	}
	if got := Compare(one, zero); got <= 0 {
		t.Errorf("Compare(1, 0) = %d, want > 0", got)
	}
	if got := Compare(big, one); got <= 0 {
		t.Errorf("Compare(0xFF<<248, 1) = %d, want > 0", got)
	}
}

func TestCompareEqual(t *testing.T) {
	a := le(0, 1, 2, 3)
	b := le(0, 1, 2, 3)
	if got := Compare(a, b); got != 0 {
		t.Errorf("Compare(a, a) = %d, want 0", got)
	}
}

func TestCompareMaxMagnitude(t *testing.T) {
	var max [32]byte
	for i := range max {
		max[i] = 0xFF
	}
	one := le(0, 1)
	if got := Compare(max, one); got <= 0 {
		t.Errorf("Compare(max, 1) = %d, want > 0", got)
	}
	if got := Compare(max, max); got != 0 {
		t.Errorf("Compare(max, max) = %d, want 0", got)
	}
}
