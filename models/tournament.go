package models

// Tournament is the complete history of a double-elimination event. Rounds and
// EliminatedTeams are append-only; the bracket engine is the only writer of Rounds,
// EliminatedTeams, Winner and WinnersBracketFinalLoser.
type Tournament struct {
	League                    string   `json:"league,omitempty"`
	Model                     string   `json:"model,omitempty"`
	Rounds                    []*Round `json:"rounds"`
	CurrentRound              int      `json:"currentRound"`
	EliminatedTeams           []*Team  `json:"eliminatedTeams"`
	ChampionshipMatchesPlayed int      `json:"championshipMatchesPlayed"`
	Winner                    *Team    `json:"winner,omitempty"`
	WinnersBracketFinalLoser  *Team    `json:"winnersBracketFinalLoser,omitempty"`
}

// Clone returns a deep copy of t.
func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	c := *t
	c.Rounds = make([]*Round, len(t.Rounds))
	for i, r := range t.Rounds {
		c.Rounds[i] = r.Clone()
	}
	c.EliminatedTeams = make([]*Team, len(t.EliminatedTeams))
	for i, team := range t.EliminatedTeams {
		c.EliminatedTeams[i] = team.Clone()
	}
	c.Winner = t.Winner.Clone()
	c.WinnersBracketFinalLoser = t.WinnersBracketFinalLoser.Clone()
	return &c
}

// ActiveRound returns the round referenced by CurrentRound, or nil.
func (t *Tournament) ActiveRound() *Round {
	if t == nil || t.CurrentRound < 1 || t.CurrentRound > len(t.Rounds) {
		return nil
	}
	return t.Rounds[t.CurrentRound-1]
}

// FindMatch looks a match up by id in the active round.
func (t *Tournament) FindMatch(id string) (*Match, bool) {
	round := t.ActiveRound()
	if round == nil {
		return nil, false
	}
	for _, m := range round.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// IsEliminated reports whether a team id is listed in EliminatedTeams.
func (t *Tournament) IsEliminated(id int) bool {
	for _, team := range t.EliminatedTeams {
		if team.ID == id {
			return true
		}
	}
	return false
}
