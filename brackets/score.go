package brackets

import "github.com/Dosada05/dominoes-tournament/models"

// updateMatchScore applies a score to a copy of match. A tie leaves the copy incomplete with
// no winner or loser; byes and matches missing a team are returned unchanged.
func updateMatchScore(match *models.Match, score models.Score) *models.Match {
	next := match.Clone()
	if next == nil || !next.IsPlayable() {
		return next
	}

	next.Score = score
	next.Winner = nil
	next.Loser = nil
	if score.Team1Score == score.Team2Score {
		next.IsCompleted = false
		return next
	}

	winner, loser := next.Team1.Clone(), next.Team2.Clone()
	if score.Team2Score > score.Team1Score {
		winner, loser = loser, winner
	}
	winner.Wins++
	loser.Losses++

	next.IsCompleted = true
	next.Winner = winner
	next.Loser = loser
	return next
}
