package prng

// KISS is Marsaglia's "keep it simple stupid" composite generator: an
// MWC1 lane pair, a Cong counter and an SHR3 register stepped
// independently every call and combined as (mwc ^ cong) + jsr.
//
// The three constituents never interact — each evolves under its own
// recurrence and only their outputs are combined — so jumping KISS
// ahead by N steps is exactly jumping each constituent ahead by N and
// recombining, with no new machinery beyond what Cong, SHR3 and MWC1
// already provide.
type KISS struct {
	mwc  MWC1
	cong Cong
	shr3 SHR3
}

// NewKISS constructs a KISS generator from a four-word seed: the MWC1
// (z, w) pair, the Cong counter and the SHR3 register. The SHR3 word
// must be nonzero, for the same reason NewSHR3 rejects a zero seed.
func NewKISS(z, w, congSeed, shr3Seed uint32) (KISS, error) {
	shr3, err := NewSHR3(shr3Seed)
	if err != nil {
		return KISS{}, err
	}
	return KISS{
		mwc:  NewMWC1(z, w),
		cong: NewCong(congSeed),
		shr3: shr3,
	}, nil
}

// NextU32 advances every constituent one step and returns the
// combined output word.
func (g *KISS) NextU32() uint32 {
	mwcOut := g.mwc.NextU32()
	congOut := g.cong.NextU32()
	shr3Out := g.shr3.NextU32()
	return (mwcOut ^ congOut) + shr3Out
}

// JumpAhead advances the generator by n steps in O(log n) time by
// jumping each constituent independently.
func (g *KISS) JumpAhead(n int64) {
	g.mwc.JumpAhead(n)
	g.cong.JumpAhead(n)
	g.shr3.JumpAhead(n)
}
