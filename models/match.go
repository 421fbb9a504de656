package models

// Bracket identifies which sub-bracket a match belongs to.
type Bracket string

const (
	BracketWinners      Bracket = "winners"
	BracketLosers       Bracket = "losers"
	BracketChampionship Bracket = "championship"
)

type Score struct {
	Team1Score int `json:"team1Score"`
	Team2Score int `json:"team2Score"`
}

// Match is a single pairing inside a round. A nil Team1 or Team2 means "bye" (or "TBD" for
// placeholder cards).
type Match struct {
	ID              string  `json:"id"`
	RoundNumber     int     `json:"roundNumber"`
	Team1           *Team   `json:"team1"`
	Team2           *Team   `json:"team2"`
	IsCompleted     bool    `json:"isCompleted"`
	IsBye           bool    `json:"isBye"`
	Winner          *Team   `json:"winner,omitempty"`
	Loser           *Team   `json:"loser,omitempty"`
	Bracket         Bracket `json:"bracket"`
	Score           Score   `json:"score"`
	EliminatedLabel *string `json:"eliminatedLabel,omitempty"`
	RequiresRematch bool    `json:"requiresRematch,omitempty"`
}

// Clone returns a deep copy of m.
func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	c := *m
	c.Team1 = m.Team1.Clone()
	c.Team2 = m.Team2.Clone()
	c.Winner = m.Winner.Clone()
	c.Loser = m.Loser.Clone()
	if m.EliminatedLabel != nil {
		label := *m.EliminatedLabel
		c.EliminatedLabel = &label
	}
	return &c
}

// IsPlayable reports whether the match is a real pairing of two teams.
func (m *Match) IsPlayable() bool {
	return !m.IsBye && m.Team1 != nil && m.Team2 != nil
}

// HasTeam reports whether the team with the given id plays in m.
func (m *Match) HasTeam(id int) bool {
	return (m.Team1 != nil && m.Team1.ID == id) || (m.Team2 != nil && m.Team2.ID == id)
}
