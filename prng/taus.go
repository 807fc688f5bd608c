package prng

import (
	"github.com/zacharytomlinson/ssrand/bitmatrix"
	"github.com/zacharytomlinson/ssrand/ssmath"
)

// tausStep computes one step of a combined Tausworthe (LFSR) lane:
//
//	s' = ((s & mask) << d) ^ (((s << a) ^ s) >> b)
//
// Every operation here — AND with a constant, shift, XOR — is linear
// over GF(2), which is what lets LFSR88 and LFSR113 jump N steps ahead
// via a single bit-matrix power instead of N sequential calls.
func tausStep(s, a, b uint32, mask uint32, d uint32) uint32 {
	return ((s & mask) << d) ^ (((s << a) ^ s) >> b)
}

// tausMatrix builds the 32x32 GF(2) matrix for one tausStep call with
// the given parameters. The AND-by-mask is itself a linear operator:
// masking identity's columns by mask zeroes out every column whose bit
// position the mask clears, which is exactly the diagonal matrix for
// "multiply elementwise by mask".
func tausMatrix(a, b int, mask uint32, d int) bitmatrix.Mat[uint32] {
	maskMatrix := bitmatrix.One[uint32](32).And(mask)
	part1 := bitmatrix.Shift[uint32](32, d).Dot(maskMatrix)
	shiftedXorIdentity := bitmatrix.Shift[uint32](32, a).Add(bitmatrix.One[uint32](32))
	part2 := bitmatrix.Shift[uint32](32, -b).Dot(shiftedXorIdentity)
	return part1.Add(part2)
}

// tausLane bundles a Tausworthe state word with the step parameters it
// was constructed with (one per L'Ecuyer's published LFSR88 / LFSR113
// parameter sets), a pointer to that lane's step matrix, and the
// lane's period (2^k - 1, for a primitive recurrence of degree k — the
// size of the nonzero orbit the mask/tap combination cycles through).
// The matrix is shared package-level state built once (see lfsr88.go /
// lfsr113.go) rather than stored by value, so that LFSR88 and LFSR113
// values — whose only varying content is their state words — stay
// comparable with ==, the same as the other generators in this package.
type tausLane struct {
	s          uint32
	a, b       uint32
	mask       uint32
	d          uint32
	period     uint64
	stepMatrix *bitmatrix.Mat[uint32]
}

func newTausLane(seed, min uint32, a, b int, mask uint32, d int, period uint64, m *bitmatrix.Mat[uint32]) (tausLane, error) {
	if seed < min {
		return tausLane{}, errSeedBelowMinimum(seed, min)
	}
	return newTausLaneClamped(seed, 0, a, b, mask, d, period, m), nil
}

func newTausLaneClamped(seed, min uint32, a, b int, mask uint32, d int, period uint64, m *bitmatrix.Mat[uint32]) tausLane {
	if seed < min {
		seed = min
	}
	return tausLane{
		s: seed, a: uint32(a), b: uint32(b), mask: mask, d: uint32(d),
		period:     period,
		stepMatrix: m,
	}
}

func (l *tausLane) next() uint32 {
	l.s = tausStep(l.s, l.a, l.b, l.mask, l.d)
	return l.s
}

// jumpAhead advances the lane by n steps, n possibly negative: n is
// reduced modulo the lane's period first, turning a rewind into the
// equivalent forward jump through the same step matrix.
func (l *tausLane) jumpAhead(n int64) {
	effective := ssmath.Modulo(n, l.period)
	l.s = l.stepMatrix.Pow(effective).DotVec(l.s)
}
