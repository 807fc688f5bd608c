package ssmath

import "golang.org/x/exp/constraints"

// WrappingPow returns base^n mod 2^bits(T), using square-and-multiply
// with Go's defined (non-panicking) unsigned wraparound arithmetic.
// Returns 1 at n == 0.
func WrappingPow[T constraints.Unsigned, N constraints.Unsigned](base T, n N) T {
	var result T = 1
	exp := base
	nWork := n

	for {
		if nWork&1 != 0 {
			result *= exp
		}
		nWork >>= 1
		if nWork == 0 {
			break
		}
		exp *= exp
	}
	return result
}

// WrappingGeomSeries computes 1 + r + r^2 + ... + r^(n-1), modulo
// 2^bits(T), in O(log n) time and O(1) space. Returns 0 when n == 0.
//
// The boundary n == 0 is short-circuited before the loop: the loop
// invariant "total == result + mult * S(r_current, n)" only holds for
// n >= 1, since S(r, 0) is defined to be 0 by convention rather than by
// the pairing identity the loop implements.
func WrappingGeomSeries[T constraints.Unsigned, N constraints.Unsigned](r T, n N) T {
	if n == 0 {
		return 0
	}

	tempR := r
	var mult T = 1
	var result T

	nWork := n
	for nWork > 1 {
		if nWork&1 != 0 {
			result += WrappingPow(tempR, nWork-1) * mult
		}
		mult = (1 + tempR) * mult
		tempR *= tempR
		nWork >>= 1
	}
	result += mult
	return result
}
