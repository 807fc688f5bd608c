package ssmath

import "math/bits"

// Uint128 is an unsigned 128-bit integer, stored as two uint64 halves.
// Go has no native 128-bit integer kind, so width-128 arithmetic (only
// needed by PowMod/MulMod's widest supported width, not by any
// generator in this module) is realized as its own value type rather
// than through the generic machinery in mulmod.go/powmod.go/wrapping.go.
type Uint128 struct {
	Hi, Lo uint64
}

// NewUint128 builds a Uint128 from its high and low 64-bit halves.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// IsZero reports whether x is zero.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x Uint128) Cmp(y Uint128) int {
	if x.Hi != y.Hi {
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	}
	switch {
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// Add returns x + y, wrapping modulo 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns x - y, wrapping modulo 2^128.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Shl1 returns x << 1, wrapping modulo 2^128.
func (x Uint128) Shl1() Uint128 {
	hi := (x.Hi << 1) | (x.Lo >> 63)
	lo := x.Lo << 1
	return Uint128{Hi: hi, Lo: lo}
}

// Shr1 returns x >> 1.
func (x Uint128) Shr1() Uint128 {
	lo := (x.Lo >> 1) | (x.Hi << 63)
	hi := x.Hi >> 1
	return Uint128{Hi: hi, Lo: lo}
}

// Bit0 reports whether the least-significant bit of x is set.
func (x Uint128) Bit0() bool {
	return x.Lo&1 != 0
}

// MulMod returns (x*y) mod m, for any x, y < 2*m. Panics if m is zero.
//
// Go has no 256-bit intermediate to widen into, so this uses the same
// generic shift-add double-and-add algorithm as ssmath.MulMod's width-64
// fallback, expressed in Uint128 arithmetic.
func (x Uint128) MulMod(y, m Uint128) Uint128 {
	if m.IsZero() {
		panic("ssmath: Uint128.MulMod by zero modulus")
	}
	a, b := x, y
	var result Uint128

	if b.Cmp(m) >= 0 {
		b = reduceOnce128(b, m)
	}

	for !a.IsZero() {
		if a.Bit0() {
			if b.Cmp(m.Sub(result)) >= 0 {
				result = result.Sub(m)
			}
			result = result.Add(b)
		}
		a = a.Shr1()

		temp := b
		if b.Cmp(m.Sub(temp)) >= 0 {
			temp = temp.Sub(m)
		}
		b = b.Add(temp)
	}
	return result
}

func reduceOnce128(x, m Uint128) Uint128 {
	half := Uint128{Hi: ^uint64(0) >> 1, Lo: ^uint64(0)}
	if m.Cmp(half) > 0 {
		return x.Sub(m)
	}
	return divModSmall(x, m)
}

// divModSmall returns x mod m via repeated doubling-subtraction
// (binary long division), used only as the fallback reduction path for
// a modulus in the lower half of the 128-bit range.
func divModSmall(x, m Uint128) Uint128 {
	if m.IsZero() {
		panic("ssmath: division by zero modulus")
	}
	var rem Uint128
	for i := 127; i >= 0; i-- {
		rem = rem.Shl1()
		if bitAt(x, i) {
			rem.Lo |= 1
		}
		if rem.Cmp(m) >= 0 {
			rem = rem.Sub(m)
		}
	}
	return rem
}

func bitAt(x Uint128, i int) bool {
	if i >= 64 {
		return (x.Hi>>(uint(i)-64))&1 != 0
	}
	return (x.Lo >> uint(i) & 1) != 0
}

// PowMod returns base^n mod m using right-to-left square-and-multiply
// over Uint128.MulMod. Panics if m is zero.
func (base Uint128) PowMod(n Uint128, m Uint128) Uint128 {
	if m.IsZero() {
		panic("ssmath: Uint128.PowMod by zero modulus")
	}
	result := Uint128{Lo: 1}
	if m.Cmp(result) == 0 {
		result = Uint128{}
	}
	exp := base
	nWork := n

	for {
		if nWork.Bit0() {
			result = result.MulMod(exp, m)
		}
		nWork = nWork.Shr1()
		if nWork.IsZero() {
			break
		}
		exp = exp.MulMod(exp, m)
	}
	return result
}
