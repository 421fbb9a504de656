package brackets

import (
	"fmt"
	"math/rand/v2"

	"github.com/Dosada05/dominoes-tournament/models"
)

const maxScoreAttempts = 16

// ScoreFunc produces the result of a pending match. It must never return a tie.
type ScoreFunc func(m *models.Match) models.Score

// RandomScores returns a ScoreFunc for best-of-three domino sets: the winner takes two
// games and the loser zero or one, with the winning side picked at random.
func RandomScores(rng *rand.Rand) ScoreFunc {
	return func(*models.Match) models.Score {
		loser := rng.IntN(2)
		if rng.IntN(2) == 0 {
			return models.Score{Team1Score: 2, Team2Score: loser}
		}
		return models.Score{Team1Score: loser, Team2Score: 2}
	}
}

// ApplyScore returns a copy of t in which the active-round match matchID carries score.
func ApplyScore(e Engine, t *models.Tournament, matchID string, score models.Score) (*models.Tournament, error) {
	round := t.ActiveRound()
	if round == nil {
		return nil, fmt.Errorf("%w: tournament has no active round", ErrInvalidState)
	}
	for i, m := range round.Matches {
		if m.ID != matchID {
			continue
		}
		next := t.Clone()
		next.Rounds[t.CurrentRound-1].Matches[i] = e.UpdateMatchScore(m, score)
		return next, nil
	}
	return nil, fmt.Errorf("%w: %s is not part of round %d", ErrMatchNotFound, matchID, round.RoundNumber)
}

// AutoCompleteRound scores every pending match of the active round through the engine's
// score resolution, retrying a bounded number of times when the ScoreFunc yields a tie.
func AutoCompleteRound(e Engine, t *models.Tournament, scores ScoreFunc) (*models.Tournament, int) {
	round := t.ActiveRound()
	if round == nil {
		return t.Clone(), 0
	}
	next := t.Clone()
	matches := next.Rounds[t.CurrentRound-1].Matches
	scored := 0
	for i, m := range matches {
		if m.IsCompleted || !m.IsPlayable() {
			continue
		}
		resolved := e.UpdateMatchScore(m, scores(m))
		for attempt := 1; !resolved.IsCompleted && attempt < maxScoreAttempts; attempt++ {
			resolved = e.UpdateMatchScore(m, scores(m))
		}
		matches[i] = resolved
		if resolved.IsCompleted {
			scored++
		}
	}
	return next, scored
}

// PlayToCompletion alternates auto-completion and advancement until a winner is crowned,
// no further round can be produced, or maxRounds rounds have been appended.
func PlayToCompletion(e Engine, t *models.Tournament, scores ScoreFunc, maxRounds int) (*models.Tournament, error) {
	current := t
	for i := 0; i < maxRounds && current.Winner == nil; i++ {
		played, _ := AutoCompleteRound(e, current, scores)
		next, err := e.AdvanceToNextRound(played)
		if err != nil {
			return played, err
		}
		stalled := next.CurrentRound == played.CurrentRound
		current = next
		if stalled {
			break
		}
	}
	return current, nil
}
