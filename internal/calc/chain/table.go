package chain

// Single-strand roller chains, GOST 13568-97.
type StandardChain struct {
	PitchMM       float64 `json:"pitch_mm"`
	BreakingLoadN float64 `json:"breaking_load_n"`
	MassKgM       float64 `json:"mass_kg_m"`
}

// ascending pitch, SelectPitch depends on the order
var standardChains = []StandardChain{
	{PitchMM: 12.7, BreakingLoadN: 18100, MassKgM: 0.80},
	{PitchMM: 15.875, BreakingLoadN: 28900, MassKgM: 1.25},
	{PitchMM: 19.05, BreakingLoadN: 44500, MassKgM: 1.80},
	{PitchMM: 25.4, BreakingLoadN: 89000, MassKgM: 2.60},
	{PitchMM: 31.75, BreakingLoadN: 137000, MassKgM: 3.80},
	{PitchMM: 38.1, BreakingLoadN: 198000, MassKgM: 5.50},
}

// StandardChains returns a copy of the catalog in ascending pitch order.
func StandardChains() []StandardChain {
	out := make([]StandardChain, len(standardChains))
	copy(out, standardChains)
	return out
}

func lookup(pitch float64) (StandardChain, bool) {
	for _, c := range standardChains {
		if c.PitchMM == pitch {
			return c, true
		}
	}
	return StandardChain{}, false
}
