package registry

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRosters(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"demo", DefaultLeague}, r.Leagues())

	teams, err := r.Teams(DefaultLeague)
	require.NoError(t, err)
	assert.Len(t, teams, 32)

	ids := make(map[int]bool)
	for _, team := range teams {
		assert.False(t, ids[team.ID], "duplicate id %d", team.ID)
		ids[team.ID] = true
		assert.NotEmpty(t, team.Name)
		assert.NotEmpty(t, team.City)
		assert.Zero(t, team.Wins)
		assert.Zero(t, team.Losses)
	}

	demo, err := r.Teams("demo")
	require.NoError(t, err)
	assert.Len(t, demo, 8)
}

func TestTeamsReturnsFreshCopy(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	first, err := r.Teams("demo")
	require.NoError(t, err)
	first[0].Name = "changed"
	first[0].Losses = 2

	second, err := r.Teams("demo")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Name)
	assert.Zero(t, second[0].Losses)
}

func TestUnknownLeague(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	_, err = r.Teams("chess")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLeague))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
		leagues []string
	}{
		{
			name: "league defaults to file name",
			files: fstest.MapFS{
				"club.yaml": {Data: []byte("teams:\n  - id: 1\n    name: Uno\n  - id: 2\n    name: Dos\n")},
			},
			leagues: []string{"club"},
		},
		{
			name: "duplicate ids",
			files: fstest.MapFS{
				"club.yaml": {Data: []byte("teams:\n  - id: 1\n    name: Uno\n  - id: 1\n    name: Dos\n")},
			},
			wantErr: "duplicate team id 1",
		},
		{
			name: "nameless team",
			files: fstest.MapFS{
				"club.yaml": {Data: []byte("teams:\n  - id: 4\n")},
			},
			wantErr: "team 4 has no name",
		},
		{
			name: "league defined twice",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("league: x\nteams: []\n")},
				"b.yaml": {Data: []byte("league: x\nteams: []\n")},
			},
			wantErr: "defined more than once",
		},
		{
			name: "malformed yaml",
			files: fstest.MapFS{
				"club.yaml": {Data: []byte("teams: [\n")},
			},
			wantErr: "decode roster club.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Load(tt.files)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.leagues, r.Leagues())
		})
	}
}
