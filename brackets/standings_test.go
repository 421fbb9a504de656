package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/dominoes-tournament/models"
)

func TestStandingsAfterSecondRound(t *testing.T) {
	e := NewMorelEngine()
	tour := e.CreateInitialRounds(namedTeams("A", "B", "C", "D"))
	tour = score(t, e, tour, "R1-W1", 2, 1)
	tour = score(t, e, tour, "R1-W2", 0, 2)
	tour = advance(t, e, tour)
	tour = score(t, e, tour, "R2-W1", 2, 0)
	tour = score(t, e, tour, "R2-L1", 2, 1)

	got := Standings(tour)
	require.Len(t, got, 4)

	byName := make(map[string]TeamStanding, len(got))
	for _, st := range got {
		byName[st.Team.Name] = st
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{got[0].Team.Name, got[1].Team.Name, got[2].Team.Name, got[3].Team.Name})

	assert.Equal(t, TeamStanding{Team: byName["A"].Team, Wins: 2, Losses: 0, Bracket: models.BracketWinners}, byName["A"])
	assert.Equal(t, 1, byName["B"].Losses)
	assert.Equal(t, models.BracketLosers, byName["B"].Bracket)
	assert.Equal(t, 1, byName["D"].Losses)
	assert.Equal(t, models.BracketLosers, byName["D"].Bracket)

	assert.Equal(t, 2, byName["C"].Losses)
	assert.True(t, byName["C"].Eliminated)
	assert.Empty(t, byName["C"].Bracket)
}

func TestStandingsIgnoreByesAndTies(t *testing.T) {
	e := NewMorelEngine()
	tour := e.CreateInitialRounds(namedTeams("A", "B", "C"))
	tour = score(t, e, tour, "R1-W1", 1, 1)

	for _, st := range Standings(tour) {
		assert.Zero(t, st.Wins, st.Team.Name)
		assert.Zero(t, st.Losses, st.Team.Name)
	}
	assert.Nil(t, Standings(nil))
}
