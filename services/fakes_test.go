package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/dominoes-tournament/brackets"
	"github.com/Dosada05/dominoes-tournament/models"
	"github.com/Dosada05/dominoes-tournament/repositories"
	"github.com/Dosada05/dominoes-tournament/storage"
)

type memTournamentRepo struct {
	mu      sync.Mutex
	states  map[string]*models.Tournament
	saves   int
	loadErr error
	saveErr error
}

func newMemTournamentRepo() *memTournamentRepo {
	return &memTournamentRepo{states: map[string]*models.Tournament{}}
}

func (r *memTournamentRepo) Load(_ context.Context, league string) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	t, ok := r.states[league]
	if !ok {
		return nil, repositories.ErrStateNotFound
	}
	return t.Clone(), nil
}

func (r *memTournamentRepo) Save(_ context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.states[t.League] = t.Clone()
	return nil
}

func (r *memTournamentRepo) Delete(_ context.Context, league string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[league]; !ok {
		return repositories.ErrStateNotFound
	}
	delete(r.states, league)
	return nil
}

type memSettingsRepo struct {
	model string
	err   error
}

func (r *memSettingsRepo) GetModel(context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.model == "" {
		return "", repositories.ErrSettingNotFound
	}
	return r.model, nil
}

func (r *memSettingsRepo) SetModel(_ context.Context, model string) error {
	if r.err != nil {
		return r.err
	}
	r.model = model
	return nil
}

type fakeTeams struct {
	rosters map[string][]models.Team
}

func (f fakeTeams) Teams(league string) ([]models.Team, error) {
	roster, ok := f.rosters[league]
	if !ok {
		return nil, fmt.Errorf("unknown league %q", league)
	}
	out := make([]models.Team, len(roster))
	copy(out, roster)
	return out, nil
}

func generatedRoster(n int, seed uint64) []models.Team {
	faker := gofakeit.New(seed)
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{ID: i + 1, Name: fmt.Sprintf("%s %d", faker.Company(), i+1), City: faker.City()}
	}
	return teams
}

type recordingHub struct {
	mu       sync.Mutex
	messages []*models.Tournament
}

func (h *recordingHub) PublishTournament(_ string, t interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, t.(*models.Tournament))
}

func (h *recordingHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

type recordingArchive struct {
	stored []*models.Tournament
	err    error
}

func (a *recordingArchive) Store(_ context.Context, t *models.Tournament) (*storage.UploadResult, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.stored = append(a.stored, t)
	return &storage.UploadResult{Key: "champions/test.json", Location: "https://cdn.example.com/champions/test.json"}, nil
}

type countingMetrics struct {
	rounds, scored, champions, advances int
}

func (m *countingMetrics) RoundGenerated(string) { m.rounds++ }

func (m *countingMetrics) MatchesScored(_ string, n int) { m.scored += n }

func (m *countingMetrics) ChampionCrowned(string) { m.champions++ }

func (m *countingMetrics) ObserveAdvance(string, time.Duration) { m.advances++ }

type fixture struct {
	svc      TournamentService
	repo     *memTournamentRepo
	settings *memSettingsRepo
	hub      *recordingHub
	archive  *recordingArchive
	metrics  *countingMetrics
}

func newFixture(t *testing.T, teams int) *fixture {
	t.Helper()
	f := &fixture{
		repo:     newMemTournamentRepo(),
		settings: &memSettingsRepo{},
		hub:      &recordingHub{},
		archive:  &recordingArchive{},
		metrics:  &countingMetrics{},
	}
	selector, err := NewModelSelector(f.settings, brackets.DefaultModel)
	require.NoError(t, err)

	source := fakeTeams{rosters: map[string][]models.Team{"dominoes": generatedRoster(teams, 42)}}
	f.svc = NewTournamentService("dominoes", source, f.repo, selector, f.hub, f.archive, f.metrics, nil, rand.New(rand.NewPCG(1, 2)))
	return f
}

var errBackend = errors.New("backend unavailable")
