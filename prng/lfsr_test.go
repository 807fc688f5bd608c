package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLFSR88MillionSteps(t *testing.T) {
	g, err := NewLFSR88(2, 8, 16)
	require.NoError(t, err)
	var got uint32
	for i := 0; i < 1_000_000; i++ {
		got = g.NextU32()
	}
	require.EqualValues(t, 555308294, got)
}

func TestLFSR88TenSteps(t *testing.T) {
	g, err := NewLFSR88(2, 8, 16)
	require.NoError(t, err)
	var got uint32
	for i := 0; i < 10; i++ {
		got = g.NextU32()
	}
	require.EqualValues(t, 2432790592, got)
}

func TestLFSR88RejectsBelowMinimumSeed(t *testing.T) {
	_, err := NewLFSR88(1, 8, 16)
	require.Error(t, err, "s1 = 1 is below the minimum of 2")

	_, err = NewLFSR88(2, 7, 16)
	require.Error(t, err, "s2 = 7 is below the minimum of 8")

	_, err = NewLFSR88(2, 8, 15)
	require.Error(t, err, "s3 = 15 is below the minimum of 16")
}

func TestLFSR88ClampedRaisesBelowMinimumSeed(t *testing.T) {
	g := NewLFSR88Clamped(0, 0, 0)
	s1, s2, s3 := g.State()
	require.Equal(t, lfsr88Min1, s1)
	require.Equal(t, lfsr88Min2, s2)
	require.Equal(t, lfsr88Min3, s3)
}

func TestLFSR88JumpAheadMatchesSequentialSteps(t *testing.T) {
	const n = 90001
	seq, err := NewLFSR88(2, 8, 16)
	require.NoError(t, err)
	var want uint32
	for i := 0; i < n; i++ {
		want = seq.NextU32()
	}

	jumped, err := NewLFSR88(2, 8, 16)
	require.NoError(t, err)
	jumped.JumpAhead(n)
	s1, s2, s3 := jumped.State()
	require.Equal(t, want, s1^s2^s3)
}

func TestLFSR113MillionSteps(t *testing.T) {
	g, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	var got uint32
	for i := 0; i < 1_000_000; i++ {
		got = g.NextU32()
	}
	require.EqualValues(t, 839960890, got)
}

func TestLFSR113TenSteps(t *testing.T) {
	g, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	var got uint32
	for i := 0; i < 10; i++ {
		got = g.NextU32()
	}
	require.EqualValues(t, 2911752425, got)
}

func TestLFSR113RejectsBelowMinimumSeed(t *testing.T) {
	_, err := NewLFSR113(1, 8, 16, 128)
	require.Error(t, err, "z1 = 1 is below the minimum of 2")

	_, err = NewLFSR113(2, 8, 16, 127)
	require.Error(t, err, "z4 = 127 is below the minimum of 128")
}

func TestLFSR113JumpAheadMatchesSequentialSteps(t *testing.T) {
	const n = 123456
	seq, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	var want uint32
	for i := 0; i < n; i++ {
		want = seq.NextU32()
	}

	jumped, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	jumped.JumpAhead(n)
	z1, z2, z3, z4 := jumped.State()
	require.Equal(t, want, z1^z2^z3^z4)
}

func TestLFSR88JumpAheadNegativeRewinds(t *testing.T) {
	g, err := NewLFSR88(2, 8, 16)
	require.NoError(t, err)
	beforeS1, beforeS2, beforeS3 := g.State()

	g.JumpAhead(8080)
	g.JumpAhead(-8080)

	s1, s2, s3 := g.State()
	require.Equal(t, beforeS1, s1)
	require.Equal(t, beforeS2, s2)
	require.Equal(t, beforeS3, s3)
}

func TestLFSR113JumpAheadNegativeRewinds(t *testing.T) {
	g, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	beforeZ1, beforeZ2, beforeZ3, beforeZ4 := g.State()

	g.JumpAhead(13579)
	g.JumpAhead(-13579)

	z1, z2, z3, z4 := g.State()
	require.Equal(t, beforeZ1, z1)
	require.Equal(t, beforeZ2, z2)
	require.Equal(t, beforeZ3, z3)
	require.Equal(t, beforeZ4, z4)
}

func TestLFSR113JumpAheadCompositional(t *testing.T) {
	a, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	a.JumpAhead(4000)
	a.JumpAhead(6000)

	b, err := NewLFSR113(2, 8, 16, 128)
	require.NoError(t, err)
	b.JumpAhead(10000)

	require.Equal(t, b, a)
}
