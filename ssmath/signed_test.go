package ssmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsAsUnsigned(t *testing.T) {
	require.EqualValues(t, 5, AbsAsUnsigned[int32, uint32](-5))
	require.EqualValues(t, 5, AbsAsUnsigned[int32, uint32](5))
	require.Zero(t, AbsAsUnsigned[int32, uint32](0))
}

func TestAbsAsUnsignedMostNegative(t *testing.T) {
	// The classic naive-port failure case: negating math.MinInt32
	// overflows the signed range. Go defines the wraparound, and the
	// cast to the unsigned companion recovers the true magnitude.
	got := AbsAsUnsigned[int32, uint32](math.MinInt32)
	require.Equal(t, uint32(1)<<31, got)

	got64 := AbsAsUnsigned[int64, uint64](math.MinInt64)
	require.Equal(t, uint64(1)<<63, got64)
}

func TestModuloSpotValues(t *testing.T) {
	require.EqualValues(t, 4, Modulo[uint32](12345, 7))
	require.EqualValues(t, 3, Modulo[uint32](-12345, 7))
}

func TestModuloAlwaysInRange(t *testing.T) {
	for _, m := range []uint32{1, 2, 7, 1000003} {
		for _, a := range []int64{-1000000, -7, -1, 0, 1, 7, 1000000} {
			got := Modulo(a, m)
			require.Less(t, got, m, "Modulo(%d,%d) out of range", a, m)
			diff := a - int64(got)
			require.Zero(t, diff%int64(m), "Modulo(%d,%d) not congruent to a mod m", a, m)
		}
	}
}

func TestModuloPanicsOnZeroModulus(t *testing.T) {
	require.Panics(t, func() {
		Modulo[uint32](5, 0)
	})
}

// TestModuloNarrowModulusWideDividend guards against reducing in the
// narrow M domain: a naive M(a) % m would truncate a's high bits before
// dividing whenever M is narrower than a needs, corrupting the result.
func TestModuloNarrowModulusWideDividend(t *testing.T) {
	const a int64 = 1_000_000_000
	const m uint8 = 200
	want := uint8(a % int64(m))
	require.Equal(t, want, Modulo[uint8](a, m))
}
