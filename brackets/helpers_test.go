package brackets

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/dominoes-tournament/models"
)

func fakeTeams(n int, seed uint64) []models.Team {
	faker := gofakeit.New(seed)
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{
			ID:   i + 1,
			Name: fmt.Sprintf("%s %d", faker.Company(), i+1),
			City: faker.City(),
		}
	}
	return teams
}

func namedTeams(names ...string) []models.Team {
	teams := make([]models.Team, len(names))
	for i, name := range names {
		teams[i] = models.Team{ID: i + 1, Name: name, City: "Santo Domingo"}
	}
	return teams
}

func score(t *testing.T, e Engine, tour *models.Tournament, matchID string, s1, s2 int) *models.Tournament {
	t.Helper()
	next, err := ApplyScore(e, tour, matchID, models.Score{Team1Score: s1, Team2Score: s2})
	require.NoError(t, err)
	return next
}

func advance(t *testing.T, e Engine, tour *models.Tournament) *models.Tournament {
	t.Helper()
	next, err := e.AdvanceToNextRound(tour)
	require.NoError(t, err)
	return next
}

func matchByID(t *testing.T, r *models.Round, id string) *models.Match {
	t.Helper()
	for _, m := range r.Matches {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("match %s not found in round %d", id, r.RoundNumber)
	return nil
}

func teamName(team *models.Team) string {
	if team == nil {
		return "<bye>"
	}
	return team.Name
}

func pairing(m *models.Match) string {
	return teamName(m.Team1) + " vs " + teamName(m.Team2)
}

func playable(r *models.Round, bracket models.Bracket) []string {
	var out []string
	for _, m := range r.Matches {
		if m.Bracket == bracket && m.IsPlayable() {
			out = append(out, pairing(m))
		}
	}
	return out
}

func eliminatedNames(tour *models.Tournament) []string {
	out := make([]string, len(tour.EliminatedTeams))
	for i, team := range tour.EliminatedTeams {
		out[i] = team.Name
	}
	return out
}
