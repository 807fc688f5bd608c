package ssmath

import "golang.org/x/exp/constraints"

// PowMod returns base^n mod m, using right-to-left square-and-multiply
// over MulMod. Panics if m == 0.
//
// PowMod(_, 0, m) == 1 mod m, so PowMod(_, 0, 1) == 0 — this is the
// documented convention (spec.md §9's open question), not an
// unintentional special case.
func PowMod[T constraints.Unsigned, N constraints.Unsigned](base T, n N, m T) T {
	if m == 0 {
		panic("ssmath: PowMod by zero modulus")
	}
	result := T(1) % m
	exp := base
	nWork := n

	for {
		if nWork&1 != 0 {
			result = MulMod(result, exp, m)
		}
		nWork >>= 1
		if nWork == 0 {
			break
		}
		exp = MulMod(exp, exp, m)
	}
	return result
}
