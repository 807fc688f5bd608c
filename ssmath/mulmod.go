package ssmath

import "golang.org/x/exp/constraints"

// MulMod returns (a * b) mod m without overflow, for any a, b < 2*m.
// Panics if m == 0.
//
// For widths 8, 16 and 32 the product is computed by widening into the
// next native unsigned type (preferred: one multiply, one modulo, one
// narrowing cast). For width 64, Go has no native 128-bit
// widen-then-divide primitive that is safe for an arbitrary modulus, so
// the generic double-and-add shift-add algorithm is used instead — the
// same algorithm the Uint128 companion type uses, since 128 bits is as
// wide as this package's generic machinery goes. The branch is a type
// switch on the zero value of T, the idiomatic Go analog of the
// per-width specialization the source language expresses through trait
// implementations (compare ring.ModExp's branch on whether q is a power
// of two, in the teacher this package is adapted from).
func MulMod[T constraints.Unsigned](a, b, m T) T {
	if m == 0 {
		panic("ssmath: MulMod by zero modulus")
	}
	var zero T
	switch any(zero).(type) {
	case uint8:
		a8, b8, m8 := any(a).(uint8), any(b).(uint8), any(m).(uint8)
		r := uint16(a8) * uint16(b8) % uint16(m8)
		return any(uint8(r)).(T)
	case uint16:
		a16, b16, m16 := any(a).(uint16), any(b).(uint16), any(m).(uint16)
		r := uint32(a16) * uint32(b16) % uint32(m16)
		return any(uint16(r)).(T)
	case uint32:
		a32, b32, m32 := any(a).(uint32), any(b).(uint32), any(m).(uint32)
		r := uint64(a32) * uint64(b32) % uint64(m32)
		return any(uint32(r)).(T)
	default:
		return mulModShiftAdd(a, b, m)
	}
}

// mulModShiftAdd computes (a * b) mod m by double-and-add in base T,
// using only T's own wrapping arithmetic. Used for width 64 (and any
// other width that falls through MulMod's fast paths) where no wider
// native type is available to widen into.
//
// At every step the loop invariant is: the true product-so-far, folded
// modulo m, equals result; b_work always holds (2^i * b) mod m for the
// current bit i of a.
func mulModShiftAdd[T constraints.Unsigned](a, b, m T) T {
	aWork, bWork := a, b
	var result T

	if bWork >= m {
		bWork = reduceOnce(bWork, m)
	}

	for aWork != 0 {
		if aWork&1 != 0 {
			if bWork >= m-result {
				result -= m
			}
			result += bWork
		}
		aWork >>= 1

		temp := bWork
		if bWork >= m-temp {
			temp -= m
		}
		bWork += temp
	}
	return result
}

// reduceOnce brings a value known to be < 2*m down into [0, m), without
// risking the overflow that x % m could hit if m is close to T's
// maximum representable value.
func reduceOnce[T constraints.Unsigned](x, m T) T {
	half := ^T(0) / 2
	if m > half {
		return x - m
	}
	return x % m
}
