package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/dominoes-tournament/brackets"
	"github.com/Dosada05/dominoes-tournament/models"
)

var errNoChampion = errors.New("tournament ended without a champion")

type runResult struct {
	Seed                      uint64 `json:"seed"`
	Rounds                    int    `json:"rounds"`
	ChampionshipMatchesPlayed int    `json:"championshipMatchesPlayed"`
	ChampionID                int    `json:"championId"`
	Violation                 string `json:"violation,omitempty"`
}

type summary struct {
	Model      string      `json:"model"`
	Teams      int         `json:"teams"`
	Runs       int         `json:"runs"`
	MinRounds  int         `json:"minRounds"`
	MaxRounds  int         `json:"maxRounds"`
	MeanRounds float64     `json:"meanRounds"`
	Resets     int         `json:"resets"`
	Violations []runResult `json:"violations,omitempty"`
}

type simulation struct {
	engine  brackets.Engine
	teams   []models.Team
	runs    int
	workers int
	seed    uint64
}

// run plays every tournament on a bounded pool of workers. Invariant violations are
// recorded per run; only context cancellation aborts the batch.
func (s simulation) run(ctx context.Context) (summary, error) {
	results := make([]runResult, s.runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.workers, 1))
	for i := 0; i < s.runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.playOne(s.seed + uint64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary{}, err
	}
	return s.summarize(results), nil
}

func (s simulation) playOne(seed uint64) runResult {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	res := runResult{Seed: seed}

	start := s.engine.CreateInitialRounds(s.teams)
	final, err := brackets.PlayToCompletion(s.engine, start, brackets.RandomScores(rng), 4*len(s.teams)+8)
	if err == nil {
		err = verify(final, len(s.teams))
	}
	if final != nil {
		res.Rounds = len(final.Rounds)
		res.ChampionshipMatchesPlayed = final.ChampionshipMatchesPlayed
		if final.Winner != nil {
			res.ChampionID = final.Winner.ID
		}
	}
	if err != nil {
		res.Violation = err.Error()
	}
	return res
}

// verify checks the end state of a finished tournament against its recomputed history.
func verify(t *models.Tournament, teams int) error {
	if t.Winner == nil {
		return errNoChampion
	}
	if len(t.EliminatedTeams) != teams-1 {
		return fmt.Errorf("%d teams eliminated, want %d", len(t.EliminatedTeams), teams-1)
	}
	seen := make(map[int]bool, len(t.EliminatedTeams))
	for _, team := range t.EliminatedTeams {
		if seen[team.ID] {
			return fmt.Errorf("team %d eliminated twice", team.ID)
		}
		seen[team.ID] = true
	}
	for _, st := range brackets.Standings(t) {
		if (st.Losses >= 2) != seen[st.Team.ID] {
			return fmt.Errorf("team %d has %d losses but eliminated=%v", st.Team.ID, st.Losses, seen[st.Team.ID])
		}
	}
	if seen[t.Winner.ID] {
		return fmt.Errorf("champion %d is listed as eliminated", t.Winner.ID)
	}
	for i, r := range t.Rounds {
		if r.RoundNumber != i+1 {
			return fmt.Errorf("round at position %d is numbered %d", i, r.RoundNumber)
		}
	}
	return nil
}

func (s simulation) summarize(results []runResult) summary {
	out := summary{Model: s.engine.GetName(), Teams: len(s.teams), Runs: len(results)}
	total := 0
	for i, r := range results {
		if i == 0 || r.Rounds < out.MinRounds {
			out.MinRounds = r.Rounds
		}
		if r.Rounds > out.MaxRounds {
			out.MaxRounds = r.Rounds
		}
		total += r.Rounds
		if r.ChampionshipMatchesPlayed > 1 {
			out.Resets++
		}
		if r.Violation != "" {
			out.Violations = append(out.Violations, r)
		}
	}
	if len(results) > 0 {
		out.MeanRounds = float64(total) / float64(len(results))
	}
	return out
}
