package prng

import "github.com/zacharytomlinson/ssrand/ssmath"

// Each MWC lane packs its carry into the high half of a single machine
// word and its value into the low half, so the generator's seed and
// state need only one word per lane (no separate carry field). A
// multiply-with-carry lane with multiplier a and base b = 2^16 is
// number-theoretically equivalent to a linear congruential generator
// modulo M = a*b - 1: the step
//
//	t = a*(y mod b) + (y div b)
//
// satisfies t = a*y (mod M) for every y, and lands in [0, M) whenever
// y < M. A seed above M takes a few steps to come down to M or below,
// and M itself, like 0, is a fixed point of the step; once the state is
// below M, N steps collapse to a single modular exponentiation,
// y_{+N} = a^N * y (mod M), via ssmath.PowMod/MulMod.
const (
	mwc1ZMult uint64 = 36969
	mwc1WMult uint64 = 18000
	mwcBase   uint64 = 1 << 16
)

var (
	mwc1ZModulus = mwc1ZMult*mwcBase - 1
	mwc1WModulus = mwc1WMult*mwcBase - 1
)

func mwcLaneStep(mult uint64, y uint32) uint32 {
	return uint32(mult*uint64(y&0xFFFF) + uint64(y>>16))
}

// mwcLaneJump advances a lane by n steps, n possibly negative. Modulus
// is prime by construction (the defining property of a valid MWC
// multiplier: mult*base - 1 prime), so by Fermat's little theorem
// mult^(modulus-1) == 1 (mod modulus) — modulus-1 is therefore always a
// multiple of the lane's true multiplicative order, and reducing n
// modulo it turns a rewind into the equivalent forward jump.
func mwcLaneJump(mult, modulus uint64, y uint32, n int64) uint32 {
	if n == 0 {
		return y
	}
	for n > 0 && uint64(y) > modulus {
		y = mwcLaneStep(mult, y)
		n--
	}
	if n == 0 || uint64(y)%modulus == 0 {
		return y
	}
	effective := ssmath.Modulo(n, modulus-1)
	factor := ssmath.PowMod[uint64, uint64](mult, effective, modulus)
	base := uint64(y) % modulus
	return uint32(ssmath.MulMod(factor, base, modulus))
}

// MWC1 is Marsaglia's classic two-lane multiply-with-carry generator:
// independent lanes z (multiplier 36969) and w (multiplier 18000),
// combined as (z << 16) + w.
type MWC1 struct {
	z, w uint32
}

// NewMWC1 constructs an MWC1 generator from a (z, w) seed pair.
func NewMWC1(z, w uint32) MWC1 {
	return MWC1{z: z, w: w}
}

// State returns the generator's current (z, w) lane values.
func (g MWC1) State() (z, w uint32) {
	return g.z, g.w
}

// NextU32 advances the generator one step and returns the combined
// output word.
func (g *MWC1) NextU32() uint32 {
	g.z = mwcLaneStep(mwc1ZMult, g.z)
	g.w = mwcLaneStep(mwc1WMult, g.w)
	return (g.z << 16) + g.w
}

// JumpAhead advances the generator by n steps in O(log n) time. n may
// be negative; each lane rewinds via its own modular inverse jump.
func (g *MWC1) JumpAhead(n int64) {
	g.z = mwcLaneJump(mwc1ZMult, mwc1ZModulus, g.z, n)
	g.w = mwcLaneJump(mwc1WMult, mwc1WModulus, g.w, n)
}

// MWC2 uses the same two lanes as MWC1 but combines them in the
// opposite order: (w << 16) + z.
type MWC2 struct {
	z, w uint32
}

// NewMWC2 constructs an MWC2 generator from a (z, w) seed pair.
func NewMWC2(z, w uint32) MWC2 {
	return MWC2{z: z, w: w}
}

// State returns the generator's current (z, w) lane values.
func (g MWC2) State() (z, w uint32) {
	return g.z, g.w
}

// NextU32 advances the generator one step and returns the combined
// output word.
func (g *MWC2) NextU32() uint32 {
	g.z = mwcLaneStep(mwc1ZMult, g.z)
	g.w = mwcLaneStep(mwc1WMult, g.w)
	return (g.w << 16) + g.z
}

// JumpAhead advances the generator by n steps in O(log n) time. n may
// be negative; each lane rewinds via its own modular inverse jump.
func (g *MWC2) JumpAhead(n int64) {
	g.z = mwcLaneJump(mwc1ZMult, mwc1ZModulus, g.z, n)
	g.w = mwcLaneJump(mwc1WMult, mwc1WModulus, g.w, n)
}

// mwc64Mult and mwc64Modulus parameterize MWC64's single 32-bit lane
// with an explicit carry word, base b = 2^32: M = a*b - 1.
const mwc64Mult uint64 = 698769069

var mwc64Modulus = mwc64Mult<<32 - 1

// MWC64 is Marsaglia's 64-bit-arithmetic multiply-with-carry
// generator: a single lane z with explicit carry c, stepped as
// t = a*z + c, c' = t >> 32, z' = t & 0xFFFFFFFF. The output word is z.
type MWC64 struct {
	z, c uint32
}

// NewMWC64 constructs an MWC64 generator from a (z, c) seed pair.
func NewMWC64(z, c uint32) MWC64 {
	return MWC64{z: z, c: c}
}

// State returns the generator's current (z, c) values.
func (g MWC64) State() (z, c uint32) {
	return g.z, g.c
}

// NextU32 advances the generator one step and returns the new z word.
func (g *MWC64) NextU32() uint32 {
	t := mwc64Mult*uint64(g.z) + uint64(g.c)
	g.c = uint32(t >> 32)
	g.z = uint32(t)
	return g.z
}

// JumpAhead advances the generator by n steps in O(log n) time, n
// possibly negative. It treats the (c, z) pair as a single combined
// integer y = c*2^32 + z, exponentiates it modulo a*2^32 - 1, and
// splits the result back into (z, c) — the same lane/carry equivalence
// MWC1 and MWC2 use, just with base 2^32 instead of 2^16; a combined
// value above the modulus is stepped directly until it is not. As with
// mwcLaneJump, mwc64Modulus-1 is a multiple of the lane's true
// multiplicative order (Fermat, mwc64Modulus prime), so reducing n
// modulo it turns a rewind into the equivalent forward jump.
func (g *MWC64) JumpAhead(n int64) {
	if n == 0 {
		return
	}
	for n > 0 && (uint64(g.c)<<32|uint64(g.z)) > mwc64Modulus {
		g.NextU32()
		n--
	}
	y := uint64(g.c)<<32 | uint64(g.z)
	if n == 0 || y%mwc64Modulus == 0 {
		return
	}
	effective := ssmath.Modulo(n, mwc64Modulus-1)
	factor := ssmath.PowMod[uint64, uint64](mwc64Mult, effective, mwc64Modulus)
	base := y % mwc64Modulus
	result := ssmath.MulMod(factor, base, mwc64Modulus)
	g.c = uint32(result >> 32)
	g.z = uint32(result)
}
