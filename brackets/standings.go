package brackets

import (
	"fmt"

	"github.com/Dosada05/dominoes-tournament/models"
)

// standings is everything the engine derives from history on each call. Nothing here is
// trusted from cached counters on the tournament.
type standings struct {
	tournament *models.Tournament
	current    *models.Round
	nextRound  int

	order  []int
	teams  map[int]*models.Team
	wins   map[int]int
	losses map[int]int

	eliminated      map[int]bool
	newlyEliminated []*models.Team

	winnersTeams []*models.Team
	losersTeams  []*models.Team
	justDropped  []*models.Team
	residents    []*models.Team

	// finalLoser is the sticky winners-bracket runner-up, carried locally until the
	// advanced tournament is assembled.
	finalLoser *models.Team
}

func validateForAdvance(t *models.Tournament) error {
	if t == nil {
		return fmt.Errorf("%w: tournament is nil", ErrInvalidState)
	}
	if len(t.Rounds) == 0 {
		return fmt.Errorf("%w: tournament has no rounds", ErrInvalidState)
	}
	for i, r := range t.Rounds {
		if r == nil || r.RoundNumber != i+1 {
			return fmt.Errorf("%w: round at position %d is not numbered %d", ErrInvalidState, i, i+1)
		}
	}
	if t.CurrentRound != len(t.Rounds) {
		return fmt.Errorf("%w: current round %d is not the last round %d", ErrInvalidState, t.CurrentRound, len(t.Rounds))
	}
	current := t.Rounds[len(t.Rounds)-1]
	if len(current.Matches) == 0 {
		return fmt.Errorf("%w: round %d has no matches", ErrInvalidState, current.RoundNumber)
	}
	for _, m := range current.Matches {
		if m == nil {
			return fmt.Errorf("%w: round %d contains an empty match slot", ErrInvalidState, current.RoundNumber)
		}
		if !m.IsCompleted {
			return fmt.Errorf("%w: match %s in round %d is not completed", ErrInvalidState, m.ID, current.RoundNumber)
		}
		if m.IsPlayable() && (m.Winner == nil || m.Loser == nil) {
			return fmt.Errorf("%w: completed match %s has no result", ErrInvalidState, m.ID)
		}
	}
	return nil
}

func computeStandings(t *models.Tournament) *standings {
	s := &standings{
		tournament: t,
		teams:      make(map[int]*models.Team),
		wins:       make(map[int]int),
		losses:     make(map[int]int),
		eliminated: make(map[int]bool),
	}
	if len(t.Rounds) > 0 {
		s.current = t.Rounds[len(t.Rounds)-1]
		s.nextRound = s.current.RoundNumber + 1
	}

	for _, r := range t.Rounds {
		for _, m := range r.Matches {
			s.see(m.Team1)
			s.see(m.Team2)
			if !m.IsCompleted || m.IsBye {
				continue
			}
			if m.Winner != nil {
				s.wins[m.Winner.ID]++
			}
			if m.Loser != nil {
				s.losses[m.Loser.ID]++
			}
		}
	}
	for _, id := range s.order {
		s.teams[id].Wins = s.wins[id]
		s.teams[id].Losses = s.losses[id]
	}

	for _, team := range t.EliminatedTeams {
		s.eliminated[team.ID] = true
	}
	for _, id := range s.order {
		if s.losses[id] >= 2 && !s.eliminated[id] {
			s.eliminated[id] = true
			s.newlyEliminated = append(s.newlyEliminated, s.team(id))
		}
	}

	for _, id := range s.order {
		if s.eliminated[id] {
			continue
		}
		switch s.losses[id] {
		case 0:
			s.winnersTeams = append(s.winnersTeams, s.team(id))
		case 1:
			s.losersTeams = append(s.losersTeams, s.team(id))
		}
	}

	s.splitLosers()
	s.finalLoser = s.identifyFinalLoser()
	return s
}

func (s *standings) see(team *models.Team) {
	if team == nil {
		return
	}
	if _, ok := s.teams[team.ID]; ok {
		return
	}
	s.order = append(s.order, team.ID)
	s.teams[team.ID] = team.Clone()
}

// team returns a fresh copy of the team annotated with its recomputed counters.
func (s *standings) team(id int) *models.Team {
	return s.teams[id].Clone()
}

func (s *standings) inLosers(id int) bool {
	for _, t := range s.losersTeams {
		if t.ID == id {
			return true
		}
	}
	return false
}

// splitLosers orders the losers bracket: teams that dropped out of the winners bracket in
// the current round first, in match order, then the teams already resident there.
func (s *standings) splitLosers() {
	if s.current == nil {
		return
	}
	placed := make(map[int]bool)
	for _, m := range s.current.Matches {
		if m.Bracket != models.BracketWinners || !m.IsPlayable() || m.Loser == nil {
			continue
		}
		if id := m.Loser.ID; s.inLosers(id) && !placed[id] {
			placed[id] = true
			s.justDropped = append(s.justDropped, s.team(id))
		}
	}
	for _, m := range s.current.Matches {
		if m.Bracket != models.BracketLosers || m.Winner == nil {
			continue
		}
		if id := m.Winner.ID; s.inLosers(id) && !placed[id] {
			placed[id] = true
			s.residents = append(s.residents, s.team(id))
		}
	}
	for _, t := range s.losersTeams {
		if !placed[t.ID] {
			placed[t.ID] = true
			s.residents = append(s.residents, t.Clone())
		}
	}
}

// identifyFinalLoser keeps the recorded winners-bracket runner-up, or records the loser of
// the winners-bracket final when the winners bracket has just shrunk to one team.
func (s *standings) identifyFinalLoser() *models.Team {
	if prev := s.tournament.WinnersBracketFinalLoser; prev != nil {
		if _, ok := s.teams[prev.ID]; ok {
			return s.team(prev.ID)
		}
		return prev.Clone()
	}
	if len(s.winnersTeams) != 1 || s.current == nil {
		return nil
	}
	for _, m := range s.current.Matches {
		if m.Bracket == models.BracketWinners && m.IsPlayable() && m.Loser != nil && !s.eliminated[m.Loser.ID] {
			return s.team(m.Loser.ID)
		}
	}
	return nil
}

// activeFinalLoser is the recorded runner-up while it is still alive in the losers bracket.
func (s *standings) activeFinalLoser() *models.Team {
	if s.finalLoser == nil || s.eliminated[s.finalLoser.ID] || !s.inLosers(s.finalLoser.ID) {
		return nil
	}
	return s.finalLoser
}

// wonLatest reports whether the team's most recent appearance ended in its favor, byes and
// placeholder cards included.
func (s *standings) wonLatest(id int) bool {
	rounds := s.tournament.Rounds
	for i := len(rounds) - 1; i >= 0; i-- {
		for _, m := range rounds[i].Matches {
			if m.HasTeam(id) {
				return m.Winner != nil && m.Winner.ID == id
			}
		}
	}
	return false
}

// TeamStanding is the recomputed record of a single team.
type TeamStanding struct {
	Team       *models.Team   `json:"team"`
	Wins       int            `json:"wins"`
	Losses     int            `json:"losses"`
	Eliminated bool           `json:"eliminated"`
	Bracket    models.Bracket `json:"bracket,omitempty"`
}

// Standings recomputes every team's record from the tournament's full history. Teams are
// listed in order of first appearance.
func Standings(t *models.Tournament) []TeamStanding {
	if t == nil {
		return nil
	}
	s := computeStandings(t)
	out := make([]TeamStanding, 0, len(s.order))
	for _, id := range s.order {
		st := TeamStanding{
			Team:       s.team(id),
			Wins:       s.wins[id],
			Losses:     s.losses[id],
			Eliminated: s.eliminated[id],
		}
		if !st.Eliminated {
			switch st.Losses {
			case 0:
				st.Bracket = models.BracketWinners
			case 1:
				st.Bracket = models.BracketLosers
			}
		}
		out = append(out, st)
	}
	return out
}
