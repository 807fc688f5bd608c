package prng

// LFSR88 is L'Ecuyer's three-lane combined Tausworthe generator
// (also known as taus88): three independent linear-feedback shift
// register lanes, each with its own tap parameters, XORed together at
// output. The lanes never interact, so each jumps ahead independently
// through its own 32x32 GF(2) bit-matrix.
type LFSR88 struct {
	s1, s2, s3 tausLane
}

// Per-lane minimums below which a lane cannot populate every tap it
// needs and its period collapses.
const (
	lfsr88Min1 uint32 = 2
	lfsr88Min2 uint32 = 8
	lfsr88Min3 uint32 = 16
)

// Per-lane periods: each lane implements a primitive recurrence of
// degree k (31, 29, 28 respectively, L'Ecuyer's published taus88
// parameters), cycling through all 2^k - 1 nonzero states.
const (
	lfsr88Period1 uint64 = 1<<31 - 1
	lfsr88Period2 uint64 = 1<<29 - 1
	lfsr88Period3 uint64 = 1<<28 - 1
)

// Step matrices for LFSR88's three lanes, built once at package init
// and shared by every generator value (mirrors shr3Matrix in shr3.go).
var (
	lfsr88Matrix1 = tausMatrix(13, 19, 0xFFFFFFFE, 12)
	lfsr88Matrix2 = tausMatrix(2, 25, 0xFFFFFFF8, 4)
	lfsr88Matrix3 = tausMatrix(3, 11, 0xFFFFFFF0, 17)
)

// NewLFSR88 constructs an LFSR88 generator from a three-word seed.
// Each word must meet its lane's minimum (2, 8, 16); a seed below the
// minimum is rejected rather than silently weakening the period.
func NewLFSR88(s1, s2, s3 uint32) (LFSR88, error) {
	l1, err := newTausLane(s1, lfsr88Min1, 13, 19, 0xFFFFFFFE, 12, lfsr88Period1, &lfsr88Matrix1)
	if err != nil {
		return LFSR88{}, err
	}
	l2, err := newTausLane(s2, lfsr88Min2, 2, 25, 0xFFFFFFF8, 4, lfsr88Period2, &lfsr88Matrix2)
	if err != nil {
		return LFSR88{}, err
	}
	l3, err := newTausLane(s3, lfsr88Min3, 3, 11, 0xFFFFFFF0, 17, lfsr88Period3, &lfsr88Matrix3)
	if err != nil {
		return LFSR88{}, err
	}
	return LFSR88{s1: l1, s2: l2, s3: l3}, nil
}

// NewLFSR88Clamped constructs an LFSR88 generator, raising any seed
// word that falls below its lane's minimum up to that minimum instead
// of failing construction.
func NewLFSR88Clamped(s1, s2, s3 uint32) LFSR88 {
	return LFSR88{
		s1: newTausLaneClamped(s1, lfsr88Min1, 13, 19, 0xFFFFFFFE, 12, lfsr88Period1, &lfsr88Matrix1),
		s2: newTausLaneClamped(s2, lfsr88Min2, 2, 25, 0xFFFFFFF8, 4, lfsr88Period2, &lfsr88Matrix2),
		s3: newTausLaneClamped(s3, lfsr88Min3, 3, 11, 0xFFFFFFF0, 17, lfsr88Period3, &lfsr88Matrix3),
	}
}

// State returns the generator's current (s1, s2, s3) lane values.
func (g LFSR88) State() (s1, s2, s3 uint32) {
	return g.s1.s, g.s2.s, g.s3.s
}

// NextU32 advances every lane one step and returns the XOR of all
// three.
func (g *LFSR88) NextU32() uint32 {
	return g.s1.next() ^ g.s2.next() ^ g.s3.next()
}

// JumpAhead advances the generator by n steps in O(log n) time. n may
// be negative; each lane rewinds independently through its own period.
func (g *LFSR88) JumpAhead(n int64) {
	g.s1.jumpAhead(n)
	g.s2.jumpAhead(n)
	g.s3.jumpAhead(n)
}
