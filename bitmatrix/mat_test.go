package bitmatrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestOneIsLeftAndRightIdentity(t *testing.T) {
	a := Shift[uint32](8, 3)
	one := One[uint32](8)

	require.Empty(t, cmp.Diff(a.Columns(), one.Dot(a).Columns()), "one * A != A")
	require.Empty(t, cmp.Diff(a.Columns(), a.Dot(one).Columns()), "A * one != A")
}

func TestAddIsSelfInverse(t *testing.T) {
	a := Shift[uint32](8, -3)
	zero := Zero[uint32](8)
	require.Empty(t, cmp.Diff(zero.Columns(), a.Add(a).Columns()), "A + A != 0")
}

func TestDotIsAssociative(t *testing.T) {
	a := Shift[uint32](8, 1)
	b := Shift[uint32](8, 2)
	c := Shift[uint32](8, -1)

	left := a.Dot(b).Dot(c)
	right := a.Dot(b.Dot(c))
	require.Empty(t, cmp.Diff(left.Columns(), right.Columns()), "(A*B)*C != A*(B*C)")
}

func TestPowOneAndTwo(t *testing.T) {
	a := Shift[uint32](8, 3)
	require.True(t, a.Pow(1).Equal(a), "A.Pow(1) != A")
	require.True(t, a.Pow(2).Equal(a.Dot(a)), "A.Pow(2) != A.Dot(A)")
}

func TestPowZeroIsIdentity(t *testing.T) {
	a := Shift[uint32](8, 5)
	one := One[uint32](8)
	require.True(t, a.Pow(0).Equal(one), "A.Pow(0) != identity")
}

func TestPowIsCompositional(t *testing.T) {
	a := Shift[uint32](8, 1).Add(One[uint32](8))
	left := a.Pow(5).Dot(a.Pow(7))
	right := a.Pow(12)
	require.True(t, left.Equal(right), "A^5 * A^7 != A^12")
}

func TestShiftRoundTripsThroughDotVec(t *testing.T) {
	left := Shift[uint32](32, 7)
	right := Shift[uint32](32, -7)
	x := uint32(0xA5A5A5A5)
	got := right.DotVec(left.DotVec(x))
	const top7 = uint32(1)<<25 | uint32(1)<<26 | uint32(1)<<27 | uint32(1)<<28 | uint32(1)<<29 | uint32(1)<<30 | uint32(1)<<31
	want := x &^ top7
	require.Equal(t, want, got)
}

func TestNewPanicsOnOversizedWidth(t *testing.T) {
	require.Panics(t, func() {
		New[uint8](make([]uint8, 9))
	})
}

func TestDotPanicsOnWidthMismatch(t *testing.T) {
	a := Zero[uint32](4)
	b := Zero[uint32](8)
	require.Panics(t, func() {
		a.Dot(b)
	})
}

func TestEqualDistinguishesColumns(t *testing.T) {
	a := New[uint32]([]uint32{1, 2, 3})
	b := New[uint32]([]uint32{1, 2, 3})
	c := New[uint32]([]uint32{1, 2, 4})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
