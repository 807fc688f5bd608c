package prng

import (
	"github.com/zacharytomlinson/ssrand/bitmatrix"
	"github.com/zacharytomlinson/ssrand/ssmath"
)

// SHR3 is Marsaglia's 32-bit xorshift generator:
//
//	j ^= j << 13
//	j ^= j >> 17
//	j ^= j << 5
//
// Every step is linear over GF(2) (XOR and fixed shifts only), so the
// whole recurrence is a single 32x32 bit-matrix and N steps collapse
// to one matrix power: s_{+N} = M^N * s.
type SHR3 struct {
	j uint32
}

// NewSHR3 constructs an SHR3 generator. The all-zero state is a fixed
// point of this recurrence (0 xorshifted by anything is still 0), so
// a zero seed is rejected rather than silently producing an all-zero
// stream forever.
func NewSHR3(seed uint32) (SHR3, error) {
	if seed == 0 {
		return SHR3{}, errZeroSeed("SHR3")
	}
	return SHR3{j: seed}, nil
}

// State returns the generator's current 32-bit word.
func (g SHR3) State() uint32 {
	return g.j
}

// NextU32 advances the generator one step and returns the new state.
func (g *SHR3) NextU32() uint32 {
	j := g.j
	j ^= j << 13
	j ^= j >> 17
	j ^= j << 5
	g.j = j
	return j
}

// shr3Matrix is the 32x32 GF(2) matrix representing one SHR3 step.
// Built once and shared across all jump-aheads: the recurrence is
// fixed, only the exponent (step count) varies per call.
var shr3Matrix = func() bitmatrix.Mat[uint32] {
	m := bitmatrix.One[uint32](32)
	m = m.Add(bitmatrix.Shift[uint32](32, 13).Dot(m))
	m2 := m.Add(bitmatrix.Shift[uint32](32, -17).Dot(m))
	m3 := m2.Add(bitmatrix.Shift[uint32](32, 5).Dot(m2))
	return m3
}()

// shr3Period is this shift triple's full cycle length over the
// 2^32 - 1 nonzero states (the all-zero state is excluded, and is
// never reached from a nonzero one).
const shr3Period uint64 = 1<<32 - 1

// JumpAhead advances the generator by n steps in O(log n) time. n may
// be negative: it is reduced modulo shr3Period first, turning a
// rewind into the equivalent forward jump.
func (g *SHR3) JumpAhead(n int64) {
	u := ssmath.Modulo(n, shr3Period)
	g.j = shr3Matrix.Pow(u).DotVec(g.j)
}
