// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

// Package bontest provides round-trip and ordering assertions shared
// across bon's package tests, in the style of testify's require package.
package bontest

import (
	"testing"

	"github.com/bonfmt/bon"
	"github.com/stretchr/testify/require"
)

// RoundTripBytes asserts that write(enc) followed by read(dec) recovers a
// value equal to want, using cmp-style equality via require.Equal.
func RoundTripBytes(t *testing.T, write func(*bon.Encoder), read func(*bon.Decoder) (any, error), want any) {
	t.Helper()
	e := bon.NewEncoder(nil)
	write(e)
	d := bon.NewDecoder(e.Bytes(), 0)
	got, err := read(d)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, e.Len(), d.Head(), "decoder must consume exactly what the encoder wrote")
}

// AssertOrdered asserts that Compare(lo, hi) reports lo strictly less
// than hi, and that the relation is antisymmetric.
func AssertOrdered(t *testing.T, lo, hi []byte) {
	t.Helper()
	order, ok := bon.Compare(lo, hi)
	require.True(t, ok, "expected an ordering between %x and %x", lo, hi)
	require.Less(t, order, 0)

	rev, ok := bon.Compare(hi, lo)
	require.True(t, ok)
	require.Greater(t, rev, 0)
}

// AssertEqualOrder asserts Compare(a, b) reports equality both ways.
func AssertEqualOrder(t *testing.T, a, b []byte) {
	t.Helper()
	order, ok := bon.Compare(a, b)
	require.True(t, ok)
	require.Equal(t, 0, order)
}
