package models

type Round struct {
	RoundNumber         int      `json:"roundNumber"`
	Matches             []*Match `json:"matches"`
	IsDoubleElimination bool     `json:"isDoubleElimination"`
	IsChampionshipRound bool     `json:"isChampionshipRound"`
}

// Clone returns a deep copy of r.
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	c := *r
	c.Matches = make([]*Match, len(r.Matches))
	for i, m := range r.Matches {
		c.Matches[i] = m.Clone()
	}
	return &c
}
