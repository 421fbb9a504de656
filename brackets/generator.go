package brackets

import (
	"errors"
	"sort"

	"github.com/Dosada05/dominoes-tournament/models"
)

// ErrInvalidState is returned when a tournament handed to an engine breaks one of the
// preconditions of round advancement.
var ErrInvalidState = errors.New("invalid tournament state")

var ErrMatchNotFound = errors.New("match not found in active round")

const (
	ModelMorel = "morel"
	ModelMDLC  = "mdlc"

	DefaultModel = ModelMorel
)

// Engine is a bracket advancement strategy. Implementations are pure: they never mutate
// their inputs and always return fresh values.
type Engine interface {
	GetName() string

	CreateInitialRounds(teams []models.Team) *models.Tournament

	UpdateMatchScore(match *models.Match, score models.Score) *models.Match

	AdvanceToNextRound(tournament *models.Tournament) (*models.Tournament, error)
}

var engines = map[string]Engine{
	ModelMorel: NewMorelEngine(),
	ModelMDLC:  NewMDLCEngine(),
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, bool) {
	e, ok := engines[name]
	return e, ok
}

// EngineNames lists the registered engine names in lexical order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
