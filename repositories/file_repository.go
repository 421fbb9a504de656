package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dosada05/dominoes-tournament/models"
)

// jsonFile reads and atomically rewrites one JSON document on disk.
type jsonFile struct {
	path string
	mu   sync.Mutex
}

func (f *jsonFile) read(dst interface{}) (bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrStateInvalid, f.path, err)
	}
	return true, nil
}

func (f *jsonFile) write(src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

const corruptSuffix = ".corrupt"

type fileTournamentRepository struct {
	file jsonFile
}

// NewFileTournamentRepository stores every league's tournament in one JSON document keyed
// by league.
func NewFileTournamentRepository(path string) TournamentRepository {
	return &fileTournamentRepository{file: jsonFile{path: path}}
}

func (r *fileTournamentRepository) states() (map[string]*models.Tournament, error) {
	states := make(map[string]*models.Tournament)
	if _, err := r.file.read(&states); err != nil {
		return nil, err
	}
	return states, nil
}

// writableStates is states for a read-modify-write cycle. An unparseable document is moved
// to <path>.corrupt so the next write starts from an empty one instead of failing forever.
func (r *fileTournamentRepository) writableStates() (map[string]*models.Tournament, error) {
	states, err := r.states()
	if !errors.Is(err, ErrStateInvalid) {
		return states, err
	}
	if err := os.Rename(r.file.path, r.file.path+corruptSuffix); err != nil {
		return nil, fmt.Errorf("failed to set aside %s: %w", r.file.path, err)
	}
	return make(map[string]*models.Tournament), nil
}

func (r *fileTournamentRepository) Load(ctx context.Context, league string) (*models.Tournament, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	states, err := r.states()
	if err != nil {
		return nil, err
	}
	t, ok := states[league]
	if !ok || t == nil {
		return nil, ErrStateNotFound
	}
	return t, nil
}

func (r *fileTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	states, err := r.writableStates()
	if err != nil {
		return err
	}
	states[t.League] = t
	return r.file.write(states)
}

func (r *fileTournamentRepository) Delete(ctx context.Context, league string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	states, err := r.writableStates()
	if err != nil {
		return err
	}
	if _, ok := states[league]; !ok {
		return ErrStateNotFound
	}
	delete(states, league)
	return r.file.write(states)
}

type settingsDocument struct {
	Model string `json:"model"`
}

type fileSettingsRepository struct {
	file jsonFile
}

func NewFileSettingsRepository(path string) SettingsRepository {
	return &fileSettingsRepository{file: jsonFile{path: path}}
}

func (r *fileSettingsRepository) GetModel(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var doc settingsDocument
	found, err := r.file.read(&doc)
	if err != nil {
		return "", err
	}
	if !found || doc.Model == "" {
		return "", ErrSettingNotFound
	}
	return doc.Model, nil
}

func (r *fileSettingsRepository) SetModel(ctx context.Context, model string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	return r.file.write(settingsDocument{Model: model})
}
