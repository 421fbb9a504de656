package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Dosada05/dominoes-tournament/brackets"
	"github.com/Dosada05/dominoes-tournament/metrics"
	"github.com/Dosada05/dominoes-tournament/models"
	"github.com/Dosada05/dominoes-tournament/repositories"
	"github.com/Dosada05/dominoes-tournament/storage"
)

const MaxAdvanceRounds = 64

// TeamSource hands out league rosters.
type TeamSource interface {
	Teams(league string) ([]models.Team, error)
}

// Publisher pushes state changes to connected clients.
type Publisher interface {
	PublishTournament(league string, tournament interface{})
}

// Archiver keeps a copy of decided tournaments.
type Archiver interface {
	Store(ctx context.Context, t *models.Tournament) (*storage.UploadResult, error)
}

type TournamentService interface {
	// Get returns the league's tournament, creating it from the roster on first use.
	Get(ctx context.Context) (*models.Tournament, error)
	// Reset discards the stored tournament, readable or not, and seeds a new one.
	Reset(ctx context.Context) (*models.Tournament, error)
	// Advance auto-completes the current round with random scores and advances, up to
	// rounds times, stopping as soon as a champion exists.
	Advance(ctx context.Context, rounds int) (*models.Tournament, error)
	// AdvanceRound advances once; every match of the current round must already be completed.
	AdvanceRound(ctx context.Context) (*models.Tournament, error)
	SubmitScore(ctx context.Context, matchID string, score models.Score) (*models.Tournament, error)
	Standings(ctx context.Context) ([]brackets.TeamStanding, error)
	Model(ctx context.Context) (string, error)
	// SetModel switches the bracket engine and restarts the tournament under it.
	SetModel(ctx context.Context, name string) (*models.Tournament, error)
	League() string
}

type tournamentService struct {
	mu sync.Mutex

	league   string
	teams    TeamSource
	repo     repositories.TournamentRepository
	selector ModelSelector
	hub      Publisher
	archive  Archiver
	metrics  metrics.TournamentMetrics
	logger   *slog.Logger
	scores   brackets.ScoreFunc
}

// NewTournamentService wires the tournament of one league. hub and archive are optional.
func NewTournamentService(
	league string,
	teams TeamSource,
	repo repositories.TournamentRepository,
	selector ModelSelector,
	hub Publisher,
	archive Archiver,
	recorder metrics.TournamentMetrics,
	logger *slog.Logger,
	rng *rand.Rand,
) TournamentService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &tournamentService{
		league:   league,
		teams:    teams,
		repo:     repo,
		selector: selector,
		hub:      hub,
		archive:  archive,
		metrics:  recorder,
		logger:   logger.With(slog.String("league", league)),
		scores:   brackets.RandomScores(rng),
	}
}

func (s *tournamentService) League() string {
	return s.league
}

func (s *tournamentService) Get(ctx context.Context) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, _, err := s.load(ctx)
	return t, err
}

func (s *tournamentService) Reset(ctx context.Context) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine, err := s.selector.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, s.league); err != nil && !errors.Is(err, repositories.ErrStateNotFound) {
		return nil, fmt.Errorf("failed to discard tournament: %w", err)
	}
	return s.initialize(ctx, engine)
}

func (s *tournamentService) Advance(ctx context.Context, rounds int) (*models.Tournament, error) {
	if rounds < 1 || rounds > MaxAdvanceRounds {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAdvanceCount, rounds)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, engine, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if t.Winner != nil {
		return t, nil
	}

	current := t
	for i := 0; i < rounds && current.Winner == nil; i++ {
		played, scored := brackets.AutoCompleteRound(engine, current, s.scores)
		s.metrics.MatchesScored(engine.GetName(), scored)

		next, stalled, err := s.step(engine, played)
		if err != nil {
			return nil, err
		}
		current = next
		if stalled {
			s.logger.Warn("tournament cannot produce another round", slog.Int("round", current.CurrentRound))
			break
		}
	}

	if err := s.commit(ctx, t, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *tournamentService) AdvanceRound(ctx context.Context) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, engine, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if t.Winner != nil {
		return t, nil
	}

	next, _, err := s.step(engine, t)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, t, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *tournamentService) SubmitScore(ctx context.Context, matchID string, score models.Score) (*models.Tournament, error) {
	if score.Team1Score < 0 || score.Team2Score < 0 {
		return nil, ErrInvalidScore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, engine, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if t.Winner != nil {
		return nil, ErrTournamentDecided
	}

	match, ok := t.FindMatch(matchID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", brackets.ErrMatchNotFound, matchID)
	}
	if !match.IsPlayable() {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotPlayable, matchID)
	}

	next, err := brackets.ApplyScore(engine, t, matchID, score)
	if err != nil {
		return nil, err
	}
	if updated, _ := next.FindMatch(matchID); updated.IsCompleted && !match.IsCompleted {
		s.metrics.MatchesScored(engine.GetName(), 1)
	}

	if err := s.commit(ctx, t, next); err != nil {
		return nil, err
	}
	s.logger.Info("match scored",
		slog.String("match_id", matchID),
		slog.Int("team1_score", score.Team1Score),
		slog.Int("team2_score", score.Team2Score),
	)
	return next, nil
}

func (s *tournamentService) Standings(ctx context.Context) ([]brackets.TeamStanding, error) {
	t, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return brackets.Standings(t), nil
}

func (s *tournamentService) Model(ctx context.Context) (string, error) {
	engine, err := s.selector.Current(ctx)
	if err != nil {
		return "", err
	}
	return engine.GetName(), nil
}

func (s *tournamentService) SetModel(ctx context.Context, name string) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.selector.Select(ctx, name); err != nil {
		return nil, err
	}
	engine, err := s.selector.Current(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bracket model switched", slog.String("model", engine.GetName()))
	return s.initialize(ctx, engine)
}

// load returns the stored tournament together with the engine that must drive it. A
// missing, unreadable or foreign-model state is replaced by a fresh tournament.
func (s *tournamentService) load(ctx context.Context) (*models.Tournament, brackets.Engine, error) {
	engine, err := s.selector.Current(ctx)
	if err != nil {
		return nil, nil, err
	}

	t, err := s.repo.Load(ctx, s.league)
	switch {
	case errors.Is(err, repositories.ErrStateNotFound):
		s.logger.Info("no stored tournament, creating one", slog.String("model", engine.GetName()))
	case errors.Is(err, repositories.ErrStateInvalid):
		s.logger.Warn("stored tournament is unreadable, starting over", slog.Any("error", err))
	case err != nil:
		return nil, nil, fmt.Errorf("failed to load tournament: %w", err)
	case t.Model != engine.GetName():
		s.logger.Info("stored tournament belongs to another model, starting over",
			slog.String("stored_model", t.Model),
			slog.String("model", engine.GetName()),
		)
	default:
		return t, engine, nil
	}

	t, err = s.initialize(ctx, engine)
	if err != nil {
		return nil, nil, err
	}
	return t, engine, nil
}

func (s *tournamentService) initialize(ctx context.Context, engine brackets.Engine) (*models.Tournament, error) {
	teams, err := s.teams.Teams(s.league)
	if err != nil {
		return nil, err
	}
	t := engine.CreateInitialRounds(teams)
	t.League = s.league

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to save tournament: %w", err)
	}
	s.publish(t)
	s.logger.Info("tournament initialized",
		slog.String("model", engine.GetName()),
		slog.Int("teams", len(teams)),
		slog.Int("first_round_matches", len(t.Rounds[0].Matches)),
	)
	return t, nil
}

// step runs one advancement and reports whether it stalled without a champion.
func (s *tournamentService) step(engine brackets.Engine, t *models.Tournament) (*models.Tournament, bool, error) {
	start := time.Now()
	next, err := engine.AdvanceToNextRound(t)
	s.metrics.ObserveAdvance(engine.GetName(), time.Since(start))
	if err != nil {
		return nil, false, err
	}

	if next.CurrentRound > t.CurrentRound {
		s.metrics.RoundGenerated(engine.GetName())
		round := next.ActiveRound()
		s.logger.Info("round generated",
			slog.Int("round", round.RoundNumber),
			slog.Int("matches", len(round.Matches)),
			slog.Bool("championship", round.IsChampionshipRound),
			slog.Int("eliminated", len(next.EliminatedTeams)),
		)
		return next, false, nil
	}
	return next, next.Winner == nil, nil
}

// commit persists next, notifies listeners, and archives the champion when next is the
// call that decided the tournament.
func (s *tournamentService) commit(ctx context.Context, prev, next *models.Tournament) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save tournament: %w", err)
	}
	s.publish(next)

	if prev.Winner != nil || next.Winner == nil {
		return nil
	}
	s.metrics.ChampionCrowned(next.Model)
	s.logger.Info("champion crowned",
		slog.Int("team_id", next.Winner.ID),
		slog.String("team", next.Winner.Name),
		slog.Int("rounds", len(next.Rounds)),
		slog.Int("championship_matches", next.ChampionshipMatchesPlayed),
	)

	if s.archive == nil {
		return nil
	}
	res, err := s.archive.Store(ctx, next)
	if err != nil {
		// The tournament itself is already saved; a missing archive copy is not fatal.
		s.logger.Error("failed to archive champion", slog.Any("error", err))
		return nil
	}
	s.logger.Info("champion archived", slog.String("key", res.Key), slog.String("location", res.Location))
	return nil
}

func (s *tournamentService) publish(t *models.Tournament) {
	if s.hub != nil {
		s.hub.PublishTournament(s.league, t)
	}
}
