package prng

import "github.com/zacharytomlinson/ssrand/ssmath"

// congA and congC are Marsaglia's constants for the linear congruential
// recurrence x' = congA*x + congC (mod 2^32).
const (
	congA uint32 = 69069
	congC uint32 = 12345
)

// congPeriod is this recurrence's full period. congA mod 4 == 1 and
// congC is odd, satisfying the Hull-Dobell theorem's conditions for a
// power-of-two modulus, so the map cycles through every one of the
// 2^32 possible states before repeating — a negative or overlarge jump
// count can always be reduced mod congPeriod first.
const congPeriod uint64 = 1 << 32

// Cong is Marsaglia's 32-bit linear congruential generator:
// x_{n+1} = 69069*x_n + 12345 (mod 2^32).
//
// Unlike the XOR/shift-mixing generators in this package, Cong's
// recurrence is affine rather than linear over GF(2), so its
// jump-ahead is built on the wrapping_pow / wrapping_geom_series
// modular toolkit (package ssmath) instead of a bit-matrix: N steps of
// x' = a*x + c unroll to x_{+N} = a^N*x + c*(a^{N-1} + ... + a + 1),
// i.e. a^N*x + c*S(a,N).
type Cong struct {
	x uint32
}

// NewCong constructs a Cong generator from a 32-bit seed. Every seed
// value, including zero, is a valid starting state: Cong's additive
// constant keeps zero from being absorbing.
func NewCong(seed uint32) Cong {
	return Cong{x: seed}
}

// State returns the generator's current 32-bit word.
func (c Cong) State() uint32 {
	return c.x
}

// NextU32 advances the generator one step and returns the new state.
func (c *Cong) NextU32() uint32 {
	c.x = congA*c.x + congC
	return c.x
}

// JumpAhead advances the generator by n steps in O(log n) time. n may
// be negative: it is reduced modulo this recurrence's full period
// first, turning a rewind into the equivalent forward jump.
func (c *Cong) JumpAhead(n int64) {
	u := ssmath.Modulo(n, congPeriod)
	aN := ssmath.WrappingPow[uint32, uint64](congA, u)
	s := ssmath.WrappingGeomSeries[uint32, uint64](congA, u)
	c.x = aN*c.x + congC*s
}
