package brackets

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Dosada05/dominoes-tournament/models"
)

func team1Wins(*models.Match) models.Score {
	return models.Score{Team1Score: 1}
}

// playToRound lets the first listed team win every match until round is the active one.
func playToRound(t *testing.T, e Engine, teams, round int) *models.Tournament {
	t.Helper()
	tour := e.CreateInitialRounds(fakeTeams(teams, 1))
	for tour.CurrentRound < round {
		played, _ := AutoCompleteRound(e, tour, team1Wins)
		tour = advance(t, e, played)
	}
	return tour
}

func pairedIDs(r *models.Round, bracket models.Bracket) []string {
	var out []string
	for _, m := range r.Matches {
		if m.Bracket == bracket && m.IsPlayable() {
			out = append(out, fmt.Sprintf("%d-%d", m.Team1.ID, m.Team2.ID))
		}
	}
	return out
}

func TestLosersBracketSeedingByRound(t *testing.T) {
	consecutiveRound2 := []string{"2-4", "6-8", "10-12", "14-16", "18-20", "22-24", "26-28", "30-32"}

	tests := []struct {
		model   string
		losers  map[int][]string
		winners map[int][]string
	}{
		{
			model: ModelMorel,
			losers: map[int][]string{
				2: consecutiveRound2,
				3: {"3-18", "7-22", "11-26", "15-30", "19-2", "23-6", "27-10", "31-14"},
				4: {"5-31", "13-27", "21-23", "29-19", "15-11", "7-3"},
				5: {"9-5", "25-13", "21-7", "29-15"},
			},
			winners: map[int][]string{
				3: {"1-5", "9-13", "17-21", "25-29"},
				4: {"1-9", "17-25"},
				5: {"1-17"},
			},
		},
		{
			model: ModelMDLC,
			losers: map[int][]string{
				2: consecutiveRound2,
				3: {"3-30", "7-26", "11-22", "15-18", "19-14", "23-10", "27-6", "31-2"},
				4: {"5-3", "13-7", "21-11", "29-15", "19-31", "23-27"},
				5: {"9-25", "5-13", "21-29", "19-23"},
			},
			winners: map[int][]string{
				3: {"1-5", "9-13", "17-21", "25-29"},
				4: {"1-9", "17-25"},
				5: {"1-17"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			e, _ := Lookup(tt.model)
			tour := playToRound(t, e, 32, 5)

			for round, want := range tt.losers {
				assert.Equal(t, want, pairedIDs(tour.Rounds[round-1], models.BracketLosers), "losers bracket of round %d", round)
			}
			for round, want := range tt.winners {
				assert.Equal(t, want, pairedIDs(tour.Rounds[round-1], models.BracketWinners), "winners bracket of round %d", round)
			}
		})
	}
}

func TestFinalsBranchOrderDoesNotChangePlay(t *testing.T) {
	for _, base := range []*DoubleEliminationEngine{NewMorelEngine(), NewMDLCEngine()} {
		swapped := &DoubleEliminationEngine{
			name:    base.name,
			seeding: base.seeding,
			branches: []branch{
				championshipUnderway,
				championshipStart,
				winnersFinal,
				losersFinal,
				standardRound,
			},
		}
		for _, n := range []int{4, 7, 16, 32} {
			for seed := uint64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%s/%d-teams/seed-%d", base.name, n, seed), func(t *testing.T) {
					teams := fakeTeams(n, seed)
					want, err := PlayToCompletion(base, base.CreateInitialRounds(teams), RandomScores(rand.New(rand.NewPCG(seed, uint64(n)))), 4*n+8)
					assert.NoError(t, err)
					got, err := PlayToCompletion(swapped, swapped.CreateInitialRounds(teams), RandomScores(rand.New(rand.NewPCG(seed, uint64(n)))), 4*n+8)
					assert.NoError(t, err)

					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("branch order changed the tournament (-canonical +swapped):\n%s", diff)
					}
				})
			}
		}
	}
}
