package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/dominoes-tournament/brackets"
	"github.com/Dosada05/dominoes-tournament/repositories"
)

// ModelSelector resolves the active bracket engine from the settings store. Callers run
// the engine operations on the returned strategy, so they never branch on the algorithm.
type ModelSelector interface {
	Current(ctx context.Context) (brackets.Engine, error)
	Select(ctx context.Context, name string) error
}

type modelSelector struct {
	settings     repositories.SettingsRepository
	defaultModel string
}

// NewModelSelector falls back to defaultModel while the settings store holds no choice.
func NewModelSelector(settings repositories.SettingsRepository, defaultModel string) (ModelSelector, error) {
	if _, ok := brackets.Lookup(defaultModel); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, defaultModel)
	}
	return &modelSelector{settings: settings, defaultModel: defaultModel}, nil
}

func (s *modelSelector) Current(ctx context.Context) (brackets.Engine, error) {
	name, err := s.settings.GetModel(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrSettingNotFound) {
			return nil, fmt.Errorf("failed to read bracket model: %w", err)
		}
		name = s.defaultModel
	}
	engine, ok := brackets.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: stored model %q", ErrUnknownModel, name)
	}
	return engine, nil
}

func (s *modelSelector) Select(ctx context.Context, name string) error {
	if _, ok := brackets.Lookup(name); !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownModel, name, brackets.EngineNames())
	}
	if err := s.settings.SetModel(ctx, name); err != nil {
		return fmt.Errorf("failed to store bracket model: %w", err)
	}
	return nil
}
