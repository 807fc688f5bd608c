package prng

// LFSR113 is L'Ecuyer's four-lane combined Tausworthe generator: four
// independent LFSR lanes XORed together at output, each jumped ahead
// independently through its own 32x32 GF(2) bit-matrix, the same way
// LFSR88's three lanes are.
type LFSR113 struct {
	z1, z2, z3, z4 tausLane
}

// Per-lane minimums below which a lane's period collapses.
const (
	lfsr113Min1 uint32 = 2
	lfsr113Min2 uint32 = 8
	lfsr113Min3 uint32 = 16
	lfsr113Min4 uint32 = 128
)

// Per-lane periods: each lane implements a primitive recurrence of
// degree k (31, 29, 28, 25 respectively, L'Ecuyer's published taus113
// parameters), cycling through all 2^k - 1 nonzero states.
const (
	lfsr113Period1 uint64 = 1<<31 - 1
	lfsr113Period2 uint64 = 1<<29 - 1
	lfsr113Period3 uint64 = 1<<28 - 1
	lfsr113Period4 uint64 = 1<<25 - 1
)

// Step matrices for LFSR113's four lanes, built once at package init
// and shared by every generator value.
var (
	lfsr113Matrix1 = tausMatrix(6, 13, 0xFFFFFFFE, 18)
	lfsr113Matrix2 = tausMatrix(2, 27, 0xFFFFFFF8, 2)
	lfsr113Matrix3 = tausMatrix(13, 21, 0xFFFFFFF0, 7)
	lfsr113Matrix4 = tausMatrix(3, 12, 0xFFFFFF80, 13)
)

// NewLFSR113 constructs an LFSR113 generator from a four-word seed.
// Each word must meet its lane's minimum (2, 8, 16, 128); a seed below
// the minimum is rejected.
func NewLFSR113(z1, z2, z3, z4 uint32) (LFSR113, error) {
	l1, err := newTausLane(z1, lfsr113Min1, 6, 13, 0xFFFFFFFE, 18, lfsr113Period1, &lfsr113Matrix1)
	if err != nil {
		return LFSR113{}, err
	}
	l2, err := newTausLane(z2, lfsr113Min2, 2, 27, 0xFFFFFFF8, 2, lfsr113Period2, &lfsr113Matrix2)
	if err != nil {
		return LFSR113{}, err
	}
	l3, err := newTausLane(z3, lfsr113Min3, 13, 21, 0xFFFFFFF0, 7, lfsr113Period3, &lfsr113Matrix3)
	if err != nil {
		return LFSR113{}, err
	}
	l4, err := newTausLane(z4, lfsr113Min4, 3, 12, 0xFFFFFF80, 13, lfsr113Period4, &lfsr113Matrix4)
	if err != nil {
		return LFSR113{}, err
	}
	return LFSR113{z1: l1, z2: l2, z3: l3, z4: l4}, nil
}

// NewLFSR113Clamped constructs an LFSR113 generator, raising any seed
// word below its lane's minimum up to that minimum instead of failing
// construction.
func NewLFSR113Clamped(z1, z2, z3, z4 uint32) LFSR113 {
	return LFSR113{
		z1: newTausLaneClamped(z1, lfsr113Min1, 6, 13, 0xFFFFFFFE, 18, lfsr113Period1, &lfsr113Matrix1),
		z2: newTausLaneClamped(z2, lfsr113Min2, 2, 27, 0xFFFFFFF8, 2, lfsr113Period2, &lfsr113Matrix2),
		z3: newTausLaneClamped(z3, lfsr113Min3, 13, 21, 0xFFFFFFF0, 7, lfsr113Period3, &lfsr113Matrix3),
		z4: newTausLaneClamped(z4, lfsr113Min4, 3, 12, 0xFFFFFF80, 13, lfsr113Period4, &lfsr113Matrix4),
	}
}

// State returns the generator's current (z1, z2, z3, z4) lane values.
func (g LFSR113) State() (z1, z2, z3, z4 uint32) {
	return g.z1.s, g.z2.s, g.z3.s, g.z4.s
}

// NextU32 advances every lane one step and returns the XOR of all
// four.
func (g *LFSR113) NextU32() uint32 {
	return g.z1.next() ^ g.z2.next() ^ g.z3.next() ^ g.z4.next()
}

// JumpAhead advances the generator by n steps in O(log n) time. n may
// be negative; each lane rewinds independently through its own period.
func (g *LFSR113) JumpAhead(n int64) {
	g.z1.jumpAhead(n)
	g.z2.jumpAhead(n)
	g.z3.jumpAhead(n)
	g.z4.jumpAhead(n)
}
