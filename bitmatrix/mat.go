// Package bitmatrix implements square matrices over GF(2) — the two
// element field with XOR as addition and AND as multiplication — packed
// column-wise into machine words. It is the engine that lets every
// linear bit-recurrence (LFSR taps, xorshift mixers) in package prng be
// jumped ahead by N steps in O(log N) time via a single matrix power.
package bitmatrix

import (
	"fmt"

	"github.com/zacharytomlinson/ssrand/ssmath"
	"golang.org/x/exp/constraints"
)

// Mat is a Width x Width matrix over GF(2). Column j is stored as bit i
// (LSB-first) of cols[j] holding row i of column j.
//
// Columns are held in a slice rather than a fixed-size array: Go has no
// const-generic array length, so Width is a runtime field instead,
// checked once at construction — the same trade-off
// utils/structs.Vector[T] makes in the teacher this package is adapted
// from, which wraps a slice rather than an array for the same reason.
type Mat[T constraints.Unsigned] struct {
	width int
	cols  []T
}

// New builds a Mat from width pre-validated columns. Panics if
// bits(T) < width — a violated structural precondition is a programmer
// error, not a recoverable condition.
func New[T constraints.Unsigned](cols []T) Mat[T] {
	width := len(cols)
	if ssmath.SizeOfBits[T]() < width {
		panic(fmt.Sprintf("bitmatrix: width %d exceeds %d-bit element type", width, ssmath.SizeOfBits[T]()))
	}
	out := make([]T, width)
	copy(out, cols)
	return Mat[T]{width: width, cols: out}
}

// Width returns the matrix dimension.
func (m Mat[T]) Width() int {
	return m.width
}

// Zero returns the width x width all-zero matrix.
func Zero[T constraints.Unsigned](width int) Mat[T] {
	return Mat[T]{width: width, cols: make([]T, width)}
}

// One returns the width x width identity matrix.
func One[T constraints.Unsigned](width int) Mat[T] {
	out := make([]T, width)
	var value T = 1
	for i := 0; i < width; i++ {
		out[i] = value
		value <<= 1
	}
	return Mat[T]{width: width, cols: out}
}

// Shift builds the matrix representing "shift the input left (k > 0) or
// right (-k) by |k| positions, truncated to width bits". For k >= 0,
// column j is 1 << (j+k) masked to width bits (or 0 once j+k >= width);
// for k < 0, the first |k| columns are zero and column j (j >= |k|) is
// 1 << (j - |k|).
func Shift[T constraints.Unsigned](width int, k int) Mat[T] {
	out := make([]T, width)
	mask := ssmath.BitWidthMask[T](width)

	var value T
	if k >= 0 {
		value = T(1) << uint(k)
	}
	shiftTemp := k
	for i := 0; i < width; i++ {
		out[i] = value
		if shiftTemp < 0 {
			shiftTemp++
			if shiftTemp == 0 {
				value = 1
			}
		} else {
			value = (value << 1) & mask
		}
	}
	return Mat[T]{width: width, cols: out}
}

// DotVec treats b as an input bit-vector (bit i of b is row i) and
// returns M*b in GF(2): the XOR of every column whose corresponding bit
// of b is set.
func (m Mat[T]) DotVec(b T) T {
	var result T
	bTemp := b
	for i := 0; i < m.width; i++ {
		if bTemp&1 != 0 {
			result ^= m.cols[i]
		}
		bTemp >>= 1
	}
	return result
}

// Dot returns m * other (matrix product over GF(2)): column j of the
// result is m applied to column j of other.
func (m Mat[T]) Dot(other Mat[T]) Mat[T] {
	m.mustMatchWidth(other)
	out := make([]T, m.width)
	for i := 0; i < m.width; i++ {
		out[i] = m.DotVec(other.cols[i])
	}
	return Mat[T]{width: m.width, cols: out}
}

// Mul is an alias for Dot, matching the conventional matrix-product name.
func (m Mat[T]) Mul(other Mat[T]) Mat[T] {
	return m.Dot(other)
}

// Add returns the element-wise XOR (GF(2) sum) of m and other.
func (m Mat[T]) Add(other Mat[T]) Mat[T] {
	m.mustMatchWidth(other)
	out := make([]T, m.width)
	for i := range out {
		out[i] = m.cols[i] ^ other.cols[i]
	}
	return Mat[T]{width: m.width, cols: out}
}

// Pow raises m to the n-th power by O(log n) square-and-multiply.
// Pow(0) is the identity matrix.
func (m Mat[T]) Pow(n uint64) Mat[T] {
	result := One[T](m.width)
	exp := m
	nWork := n

	for {
		if nWork&1 != 0 {
			result = result.Dot(exp)
		}
		nWork >>= 1
		if nWork == 0 {
			break
		}
		exp = exp.Dot(exp)
	}
	return result
}

// And masks every column of m by rhs — the matrix whose matrix-vector
// product represents the bit operation "apply m, then mask by rhs".
func (m Mat[T]) And(rhs T) Mat[T] {
	out := make([]T, m.width)
	for i := range out {
		out[i] = m.cols[i] & rhs
	}
	return Mat[T]{width: m.width, cols: out}
}

// Shl shifts every column of m left by s bits, masked to width bits.
func (m Mat[T]) Shl(s int) Mat[T] {
	mask := ssmath.BitWidthMask[T](m.width)
	out := make([]T, m.width)
	for i := range out {
		out[i] = (m.cols[i] << uint(s)) & mask
	}
	return Mat[T]{width: m.width, cols: out}
}

// Shr shifts every column of m right by s bits.
func (m Mat[T]) Shr(s int) Mat[T] {
	out := make([]T, m.width)
	for i := range out {
		out[i] = m.cols[i] >> uint(s)
	}
	return Mat[T]{width: m.width, cols: out}
}

// Equal reports whether m and other have the same width and columns.
func (m Mat[T]) Equal(other Mat[T]) bool {
	if m.width != other.width {
		return false
	}
	for i := range m.cols {
		if m.cols[i] != other.cols[i] {
			return false
		}
	}
	return true
}

// Columns returns a copy of the matrix's columns, for callers that need
// to inspect or serialize the raw representation.
func (m Mat[T]) Columns() []T {
	out := make([]T, len(m.cols))
	copy(out, m.cols)
	return out
}

func (m Mat[T]) mustMatchWidth(other Mat[T]) {
	if m.width != other.width {
		panic(fmt.Sprintf("bitmatrix: width mismatch %d != %d", m.width, other.width))
	}
}
