package ssmath

import "golang.org/x/exp/constraints"

// AbsAsUnsigned returns the absolute value of the signed a, as the
// unsigned type of matching width U.
//
// Unlike a hand-rolled two's-complement negate-and-cast, this is correct
// at the most-negative value of S: Go defines signed-integer overflow to
// wrap (-math.MinInt32 wraps back to math.MinInt32), and converting that
// wrapped bit pattern to the unsigned type U reinterprets it as the
// correct magnitude, so no special-case branch is needed.
func AbsAsUnsigned[S constraints.Signed, U constraints.Unsigned](a S) U {
	if a >= 0 {
		return U(a)
	}
	return U(-a)
}

// Modulo returns a mod m, in the range [0, m), for a signed dividend a
// and an unsigned modulus m. Panics if m == 0.
//
// The fully generic modulo<A, M> of the originating design (any signed
// width A, any unsigned width M) is specialized here to A = int64: Go
// generics have no associated-type mechanism to recover "the signed type
// whose width matches M" the way the source language's trait system
// does, and every real caller in this module (every generator's
// JumpAhead(n int64), reducing n modulo the generator's period before
// jumping) only ever needs A = int64 — callers with a narrower signed
// value widen it to int64 first, which is always lossless.
//
// The reduction itself is done in the wider uint64 domain and only the
// final, already-in-range result is narrowed to M: narrowing a first
// (M(a) % m) would silently truncate a's high bits whenever M is
// narrower than int64, corrupting the remainder for any a that doesn't
// fit in M.
func Modulo[M constraints.Unsigned](a int64, m M) M {
	if m == 0 {
		panic("ssmath: Modulo by zero modulus")
	}
	wideM := uint64(m)
	if a >= 0 {
		return M(uint64(a) % wideM)
	}
	au := AbsAsUnsigned[int64, uint64](a)
	r := au % wideM
	if r == 0 {
		return 0
	}
	return M(wideM - r)
}
