// Package ssmath provides the integer-utility, modular-arithmetic and
// wrapping-arithmetic primitives that the ssrand jump-ahead engines are
// built on.
//
// Every function here is generic over the unsigned integer width it
// operates on (constrained with golang.org/x/exp/constraints.Unsigned),
// except where Go has no native type wide enough: width-128 arithmetic
// is provided by the companion Uint128 type in uint128.go.
package ssmath

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// SizeOfBits returns the bit width of T.
func SizeOfBits[T constraints.Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// BitWidthMask returns 2^k - 1 for 0 <= k < bits(T), and the all-ones
// value of T when k >= bits(T) — this avoids the undefined behavior of
// shifting a T by its own bit width.
func BitWidthMask[T constraints.Unsigned](k int) T {
	bits := SizeOfBits[T]()
	if k < bits {
		return (T(1) << uint(k)) - 1
	}
	return ^T(0)
}
