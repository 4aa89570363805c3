// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package typehash

import "testing"

func TestOfIsDeterministic(t *testing.T) {
	a := Of("widget.v1")
	b := Of("widget.v1")
	if a != b {
		t.Errorf("Of(%q) = %d then %d, want identical", "widget.v1", a, b)
	}
}

func TestOfDistinguishesNames(t *testing.T) {
	if Of("widget.v1") == Of("widget.v2") {
		t.Error("Of: distinct names hashed to the same value")
	}
}

func TestOfAvoidsReservedBand(t *testing.T) {
	for _, name := range []string{"", "x", "widget.v1", "order.created"} {
		if h := Of(name); h <= reservedMax {
			t.Errorf("Of(%q) = %d, want > %d", name, h, reservedMax)
		}
	}
}
