package prng

// KISS2 is a variant combiner over the same generator family as KISS:
// an MWC2 lane pair, a Cong counter and an SHR3 register, combined as
// mwc + cong + jsr (addition instead of KISS's XOR-then-add).
//
// As with KISS, the three constituents evolve independently, so
// jump-ahead is just each constituent's own jump-ahead plus
// recombination.
type KISS2 struct {
	mwc  MWC2
	cong Cong
	shr3 SHR3
}

// NewKISS2 constructs a KISS2 generator from a four-word seed: the
// MWC2 (z, w) pair, the Cong counter and the SHR3 register.
func NewKISS2(z, w, congSeed, shr3Seed uint32) (KISS2, error) {
	shr3, err := NewSHR3(shr3Seed)
	if err != nil {
		return KISS2{}, err
	}
	return KISS2{
		mwc:  NewMWC2(z, w),
		cong: NewCong(congSeed),
		shr3: shr3,
	}, nil
}

// NextU32 advances every constituent one step and returns the
// combined output word.
func (g *KISS2) NextU32() uint32 {
	mwcOut := g.mwc.NextU32()
	congOut := g.cong.NextU32()
	shr3Out := g.shr3.NextU32()
	return mwcOut + congOut + shr3Out
}

// JumpAhead advances the generator by n steps in O(log n) time by
// jumping each constituent independently.
func (g *KISS2) JumpAhead(n int64) {
	g.mwc.JumpAhead(n)
	g.cong.JumpAhead(n)
	g.shr3.JumpAhead(n)
}
