package brackets

import (
	"fmt"

	"github.com/Dosada05/dominoes-tournament/models"
)

const (
	labelEliminationMatch = "LOSER ELIMINATED"
	labelSecondMatch      = "SECOND MATCH REQUIRED"
)

type MatchParams struct {
	ID              string
	RoundNumber     int
	Team1           *models.Team
	Team2           *models.Team
	Bracket         models.Bracket
	EliminatedLabel string
	RequiresRematch bool
}

// NewMatch builds a match with normalized defaults: teams are copied, the score is zeroed
// and a match with a single present team is resolved as a bye in that team's favor.
func NewMatch(p MatchParams) *models.Match {
	m := &models.Match{
		ID:              p.ID,
		RoundNumber:     p.RoundNumber,
		Team1:           p.Team1.Clone(),
		Team2:           p.Team2.Clone(),
		Bracket:         p.Bracket,
		RequiresRematch: p.RequiresRematch,
	}
	if m.Bracket == "" {
		m.Bracket = models.BracketWinners
	}
	if p.EliminatedLabel != "" {
		label := p.EliminatedLabel
		m.EliminatedLabel = &label
	}

	switch {
	case m.Team1 != nil && m.Team2 == nil:
		m.IsBye = true
		m.IsCompleted = true
		m.Winner = m.Team1.Clone()
	case m.Team1 == nil && m.Team2 != nil:
		m.IsBye = true
		m.IsCompleted = true
		m.Winner = m.Team2.Clone()
	}
	return m
}

// roundBuilder numbers the matches of one round per bracket: R3-W1, R3-L2, R3-C1, ...
type roundBuilder struct {
	number  int
	matches []*models.Match
	seq     map[models.Bracket]int
}

func newRoundBuilder(number int) *roundBuilder {
	return &roundBuilder{number: number, matches: []*models.Match{}, seq: make(map[models.Bracket]int)}
}

func (b *roundBuilder) add(p MatchParams) *models.Match {
	b.seq[p.Bracket]++
	p.RoundNumber = b.number
	p.ID = matchID(b.number, p.Bracket, b.seq[p.Bracket])
	m := NewMatch(p)
	b.matches = append(b.matches, m)
	return m
}

func (b *roundBuilder) pair(bracket models.Bracket, t1, t2 *models.Team) *models.Match {
	p := MatchParams{Bracket: bracket, Team1: t1, Team2: t2}
	if bracket == models.BracketLosers && t1 != nil && t2 != nil {
		p.EliminatedLabel = labelEliminationMatch
	}
	return b.add(p)
}

func (b *roundBuilder) bye(bracket models.Bracket, team *models.Team) *models.Match {
	return b.add(MatchParams{Bracket: bracket, Team1: team})
}

func matchID(round int, bracket models.Bracket, seq int) string {
	code := "W"
	switch bracket {
	case models.BracketLosers:
		code = "L"
	case models.BracketChampionship:
		code = "C"
	}
	return fmt.Sprintf("R%d-%s%d", round, code, seq)
}
