package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dosada05/dominoes-tournament/models"
)

var (
	ErrStateNotFound = errors.New("tournament state not found")
	ErrStateInvalid  = errors.New("tournament state is not valid")
)

// TournamentRepository persists the single running tournament of each league.
type TournamentRepository interface {
	Load(ctx context.Context, league string) (*models.Tournament, error)
	Save(ctx context.Context, t *models.Tournament) error
	Delete(ctx context.Context, league string) error
}

const createTournamentStateTable = `
	CREATE TABLE IF NOT EXISTS tournament_states (
		league     TEXT PRIMARY KEY,
		model      TEXT NOT NULL,
		state      JSONB NOT NULL,
		winner_id  INTEGER,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type postgresTournamentRepository struct {
	db SQLExecutor
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

// EnsureTournamentSchema creates the state table when it does not exist yet.
func EnsureTournamentSchema(ctx context.Context, exec SQLExecutor) error {
	if _, err := exec.ExecContext(ctx, createTournamentStateTable); err != nil {
		return fmt.Errorf("failed to create tournament_states table: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) Load(ctx context.Context, league string) (*models.Tournament, error) {
	query := `SELECT state FROM tournament_states WHERE league = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, league).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, handleStateError(err)
	}

	t := &models.Tournament{}
	if err := json.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateInvalid, err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	state, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode tournament state: %w", err)
	}

	var winnerID sql.NullInt64
	if t.Winner != nil {
		winnerID = sql.NullInt64{Int64: int64(t.Winner.ID), Valid: true}
	}

	query := `
		INSERT INTO tournament_states (league, model, state, winner_id, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (league) DO UPDATE
		SET model = EXCLUDED.model, state = EXCLUDED.state,
			winner_id = EXCLUDED.winner_id, updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query, t.League, t.Model, state, winnerID)
	return handleStateError(err)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, league string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournament_states WHERE league = $1`, league)
	if err != nil {
		return handleStateError(err)
	}
	return checkAffectedRows(result, ErrStateNotFound)
}

func handleStateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42P01":
			return fmt.Errorf("tournament_states table is missing: %w", err)
		case "22P02", "22032":
			return fmt.Errorf("%w: %s", ErrStateInvalid, pqErr.Message)
		}
	}
	return err
}
