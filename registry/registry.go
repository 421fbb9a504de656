// Package registry serves the fixed team rosters tournaments are seeded from.
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/dominoes-tournament/models"
)

const DefaultLeague = "dominoes"

var ErrUnknownLeague = errors.New("unknown league")

//go:embed leagues/*.yaml
var embedded embed.FS

type rosterFile struct {
	League string        `yaml:"league"`
	Teams  []models.Team `yaml:"teams"`
}

// Registry holds one ordered roster per league.
type Registry struct {
	rosters map[string][]models.Team
}

// Default loads the rosters compiled into the binary.
func Default() (*Registry, error) {
	sub, err := fs.Sub(embedded, "leagues")
	if err != nil {
		return nil, fmt.Errorf("open embedded rosters: %w", err)
	}
	return Load(sub)
}

// Load reads every *.yaml roster at the root of fsys. A file that omits the league key is
// registered under its base name.
func Load(fsys fs.FS) (*Registry, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}

	r := &Registry{rosters: make(map[string][]models.Team, len(files))}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read roster %s: %w", name, err)
		}

		var doc rosterFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode roster %s: %w", name, err)
		}
		league := doc.League
		if league == "" {
			league = strings.TrimSuffix(path.Base(name), path.Ext(name))
		}
		if _, dup := r.rosters[league]; dup {
			return nil, fmt.Errorf("league %q is defined more than once", league)
		}
		if err := validateRoster(league, doc.Teams); err != nil {
			return nil, err
		}
		r.rosters[league] = doc.Teams
	}
	return r, nil
}

func validateRoster(league string, teams []models.Team) error {
	seen := make(map[int]bool, len(teams))
	for _, t := range teams {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("league %q: team %d has no name", league, t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("league %q: duplicate team id %d", league, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// Leagues lists the known league identifiers in lexical order.
func (r *Registry) Leagues() []string {
	names := make([]string, 0, len(r.rosters))
	for name := range r.rosters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Teams returns a fresh copy of the league's roster in registry order.
func (r *Registry) Teams(league string) ([]models.Team, error) {
	roster, ok := r.rosters[league]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLeague, league)
	}
	out := make([]models.Team, len(roster))
	for i := range roster {
		out[i] = *roster[i].Clone()
	}
	return out, nil
}
