package brackets

import (
	"github.com/Dosada05/dominoes-tournament/models"
)

// outcome is what a branch of the advancement decision tree schedules.
type outcome struct {
	championship []*models.Match
	standard     []*models.Match
}

func (o outcome) matches() []*models.Match {
	out := make([]*models.Match, 0, len(o.championship)+len(o.standard))
	out = append(out, o.championship...)
	return append(out, o.standard...)
}

// branch reports false when its condition does not hold for the standings.
type branch func(e *DoubleEliminationEngine, s *standings, b *roundBuilder) bool

// canonicalBranches is the advancement decision tree in priority order. losersFinal needs a
// single winners-bracket team and winnersFinal exactly two, so those two never compete.
var canonicalBranches = []branch{
	championshipUnderway,
	championshipStart,
	losersFinal,
	winnersFinal,
	standardRound,
}

// DoubleEliminationEngine is the round advancement engine. Engines differ in their seeding
// table; the first branch whose condition holds decides the round.
type DoubleEliminationEngine struct {
	name     string
	seeding  SeedingTable
	branches []branch
}

// NewMorelEngine reseeds the losers bracket in rounds 3, 4 and 5.
func NewMorelEngine() *DoubleEliminationEngine {
	return &DoubleEliminationEngine{
		name: ModelMorel,
		seeding: SeedingTable{
			3: SplitHalvesSeeding,
			4: CrossCohortSeeding,
			5: FoldResidentsSeeding,
		},
		branches: canonicalBranches,
	}
}

// NewMDLCEngine reseeds only rounds 3 and 4.
func NewMDLCEngine() *DoubleEliminationEngine {
	return &DoubleEliminationEngine{
		name: ModelMDLC,
		seeding: SeedingTable{
			3: CrossCohortSeeding,
			4: FoldResidentsSeeding,
		},
		branches: canonicalBranches,
	}
}

func (e *DoubleEliminationEngine) GetName() string {
	return e.name
}

func (e *DoubleEliminationEngine) CreateInitialRounds(teams []models.Team) *models.Tournament {
	t := createInitialRounds(teams)
	t.Model = e.name
	return t
}

func (e *DoubleEliminationEngine) UpdateMatchScore(match *models.Match, score models.Score) *models.Match {
	return updateMatchScore(match, score)
}

// AdvanceToNextRound derives standings from the full history and appends the next round.
// A decided tournament, or one for which no playable match can be scheduled, comes back
// without a new round.
func (e *DoubleEliminationEngine) AdvanceToNextRound(t *models.Tournament) (*models.Tournament, error) {
	if t != nil && t.Winner != nil {
		return t.Clone(), nil
	}
	if err := validateForAdvance(t); err != nil {
		return nil, err
	}

	s := computeStandings(t)
	b := newRoundBuilder(s.nextRound)
	for _, br := range e.branches {
		if br(e, s, b) {
			break
		}
	}
	winner := detectWinner(s)

	next := t.Clone()
	for _, team := range s.newlyEliminated {
		next.EliminatedTeams = append(next.EliminatedTeams, team.Clone())
	}
	next.Winner = winner
	next.WinnersBracketFinalLoser = s.finalLoser.Clone()

	if !hasPlayable(b.matches) {
		return next, nil
	}

	round := &models.Round{
		RoundNumber: s.nextRound,
		Matches:     b.matches,
	}
	for _, m := range b.matches {
		switch m.Bracket {
		case models.BracketChampionship:
			round.IsChampionshipRound = true
			round.IsDoubleElimination = true
		case models.BracketLosers:
			round.IsDoubleElimination = true
		}
	}

	next.Rounds = append(next.Rounds, round)
	next.CurrentRound = round.RoundNumber
	if round.IsChampionshipRound {
		next.ChampionshipMatchesPlayed++
	}
	return next, nil
}

// championshipUnderway handles the round after a championship match. A losers-bracket
// representative winning the first meeting forces a reset match; any other result decides
// the tournament and schedules nothing.
func championshipUnderway(_ *DoubleEliminationEngine, s *standings, b *roundBuilder) bool {
	if s.tournament.ChampionshipMatchesPlayed == 0 || !s.current.IsChampionshipRound {
		return false
	}
	final := latestChampionshipMatch(s.current)
	if final == nil {
		return false
	}
	if s.tournament.ChampionshipMatchesPlayed == 1 && models.SameTeam(final.Winner, final.Team2) {
		b.add(MatchParams{
			Bracket:         models.BracketChampionship,
			Team1:           s.team(final.Team1.ID),
			Team2:           s.team(final.Team2.ID),
			EliminatedLabel: labelSecondMatch,
			RequiresRematch: true,
		})
		b.bye(models.BracketWinners, s.team(final.Team1.ID))
	}
	return true
}

// championshipStart schedules the first championship match once each bracket is down to a
// single team and the losers-bracket finalist has won its way there.
func championshipStart(_ *DoubleEliminationEngine, s *standings, b *roundBuilder) bool {
	if s.tournament.ChampionshipMatchesPlayed != 0 || len(s.winnersTeams) != 1 || len(s.losersTeams) != 1 {
		return false
	}
	champion, challenger := s.winnersTeams[0], s.losersTeams[0]
	if !s.wonLatest(challenger.ID) && !models.SameTeam(challenger, s.finalLoser) {
		return false
	}
	b.add(MatchParams{
		Bracket: models.BracketChampionship,
		Team1:   champion,
		Team2:   challenger,
	})
	b.bye(models.BracketWinners, champion)
	return true
}

// losersFinal routes the winners-bracket runner-up. While more than one other team is
// alive in the losers bracket they keep playing and the runner-up is shown on a
// placeholder card; once one remains, the two meet in the losers-bracket final.
func losersFinal(e *DoubleEliminationEngine, s *standings, b *roundBuilder) bool {
	runnerUp := s.activeFinalLoser()
	if len(s.winnersTeams) != 1 || len(s.losersTeams) < 1 || runnerUp == nil {
		return false
	}

	contenders := withoutTeam(append(append([]*models.Team{}, s.justDropped...), s.residents...), runnerUp)
	if len(contenders) == 1 && contenders[0].ID != runnerUp.ID {
		b.pair(models.BracketLosers, runnerUp, contenders[0])
		b.bye(models.BracketWinners, s.winnersTeams[0])
		return true
	}

	pairWinners(b, s.winnersTeams)
	e.pairLosers(b, s, nil, contenders)
	b.bye(models.BracketLosers, runnerUp)
	return true
}

// winnersFinal plays the two-team winners bracket directly alongside the losers bracket.
func winnersFinal(e *DoubleEliminationEngine, s *standings, b *roundBuilder) bool {
	if len(s.winnersTeams) != 2 || len(s.losersTeams) < 1 {
		return false
	}
	b.pair(models.BracketWinners, s.winnersTeams[0], s.winnersTeams[1])
	e.pairLosers(b, s, s.justDropped, s.residents)
	return true
}

func standardRound(e *DoubleEliminationEngine, s *standings, b *roundBuilder) bool {
	pairWinners(b, s.winnersTeams)
	e.pairLosers(b, s, s.justDropped, s.residents)
	return true
}

// pairWinners pairs consecutive teams; an odd team out gets a bye.
func pairWinners(b *roundBuilder, teams []*models.Team) {
	for i := 0; i+1 < len(teams); i += 2 {
		b.pair(models.BracketWinners, teams[i], teams[i+1])
	}
	if len(teams)%2 == 1 {
		b.bye(models.BracketWinners, teams[len(teams)-1])
	}
}

// pairLosers builds the losers bracket for the round. The winners-bracket runner-up is
// never part of it. With an odd number of candidates the most recently dropped team sits
// out on a bye; the rest are ordered by the round's seeding override and paired.
func (e *DoubleEliminationEngine) pairLosers(b *roundBuilder, s *standings, dropped, residents []*models.Team) {
	dropped = withoutTeam(dropped, s.finalLoser)
	residents = withoutTeam(residents, s.finalLoser)

	var byeTeam *models.Team
	if (len(dropped)+len(residents))%2 == 1 {
		if len(dropped) > 0 {
			byeTeam = dropped[len(dropped)-1]
			dropped = dropped[:len(dropped)-1]
		} else {
			byeTeam = residents[len(residents)-1]
			residents = residents[:len(residents)-1]
		}
	}

	ordered := e.seeding.order(b.number, dropped, residents)
	for i := 0; i+1 < len(ordered); i += 2 {
		b.pair(models.BracketLosers, ordered[i], ordered[i+1])
	}
	if byeTeam != nil {
		b.bye(models.BracketLosers, byeTeam)
	}
}

// detectWinner crowns the winner of the latest completed championship match unless the
// losers-bracket representative took the first meeting, which forces a reset match.
func detectWinner(s *standings) *models.Team {
	if s.current == nil || !s.current.IsChampionshipRound {
		return nil
	}
	final := latestChampionshipMatch(s.current)
	if final == nil || final.Winner == nil {
		return nil
	}
	if s.tournament.ChampionshipMatchesPlayed <= 1 && models.SameTeam(final.Winner, final.Team2) {
		return nil
	}
	return s.team(final.Winner.ID)
}

func latestChampionshipMatch(r *models.Round) *models.Match {
	for i := len(r.Matches) - 1; i >= 0; i-- {
		m := r.Matches[i]
		if m.Bracket == models.BracketChampionship && m.IsPlayable() && m.IsCompleted {
			return m
		}
	}
	return nil
}

func hasPlayable(matches []*models.Match) bool {
	for _, m := range matches {
		if m.IsPlayable() {
			return true
		}
	}
	return false
}

func withoutTeam(teams []*models.Team, drop *models.Team) []*models.Team {
	out := make([]*models.Team, 0, len(teams))
	for _, t := range teams {
		if drop != nil && t.ID == drop.ID {
			continue
		}
		out = append(out, t)
	}
	return out
}
