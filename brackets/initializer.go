package brackets

import (
	"math"

	"github.com/Dosada05/dominoes-tournament/models"
)

// createInitialRounds seeds round one by pairing consecutive teams. When the field is not a
// power of two the trailing pairings lack a second team and become byes; pairings with no
// team at all are not emitted.
func createInitialRounds(teams []models.Team) *models.Tournament {
	n := len(teams)

	numRounds := 1
	if n > 1 {
		numRounds = int(math.Ceil(math.Log2(float64(n))))
	}
	numMatches := 1 << uint(numRounds-1)
	if n == 0 {
		numMatches = 0
	}

	b := newRoundBuilder(1)
	for i := 0; i < numMatches; i++ {
		t1, t2 := freshEntry(teams, 2*i), freshEntry(teams, 2*i+1)
		if t1 == nil && t2 == nil {
			continue
		}
		b.pair(models.BracketWinners, t1, t2)
	}

	return &models.Tournament{
		Rounds: []*models.Round{{
			RoundNumber: 1,
			Matches:     b.matches,
		}},
		CurrentRound:    1,
		EliminatedTeams: []*models.Team{},
	}
}

func freshEntry(teams []models.Team, i int) *models.Team {
	if i >= len(teams) {
		return nil
	}
	t := teams[i]
	t.Wins, t.Losses = 0, 0
	return t.Clone()
}
