package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dosada05/dominoes-tournament/models"
)

func cohort(prefix string, n int) []*models.Team {
	out := make([]*models.Team, n)
	for i := range out {
		out[i] = &models.Team{ID: len(prefix)*100 + i, Name: prefix + string(rune('1'+i))}
	}
	return out
}

func names(teams []*models.Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.Name
	}
	return out
}

func TestSeedingFuncs(t *testing.T) {
	tests := []struct {
		name      string
		fn        SeedingFunc
		dropped   int
		residents int
		want      []string
	}{
		{
			name:    "consecutive keeps dropped first",
			fn:      ConsecutiveSeeding,
			dropped: 2, residents: 2,
			want: []string{"d1", "d2", "r1", "r2"},
		},
		{
			name:    "split halves crosses top and bottom",
			fn:      SplitHalvesSeeding,
			dropped: 4, residents: 4,
			want: []string{"d1", "r3", "d2", "r4", "d3", "r1", "d4", "r2"},
		},
		{
			name:    "cross cohort meets first dropped with last resident",
			fn:      CrossCohortSeeding,
			dropped: 4, residents: 8,
			want: []string{"d1", "r8", "d2", "r7", "d3", "r6", "d4", "r5", "r4", "r3", "r2", "r1"},
		},
		{
			name:    "fold residents",
			fn:      FoldResidentsSeeding,
			dropped: 2, residents: 6,
			want: []string{"d1", "r1", "d2", "r2", "r3", "r6", "r4", "r5"},
		},
		{
			name:    "fold residents with no dropped teams",
			fn:      FoldResidentsSeeding,
			dropped: 0, residents: 4,
			want: []string{"r1", "r4", "r2", "r3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(cohort("d", tt.dropped), cohort("r", tt.residents))
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSeedingFuncsArePermutations(t *testing.T) {
	funcs := map[string]SeedingFunc{
		"consecutive": ConsecutiveSeeding,
		"split":       SplitHalvesSeeding,
		"cross":       CrossCohortSeeding,
		"fold":        FoldResidentsSeeding,
	}
	for name, fn := range funcs {
		for d := 0; d <= 9; d++ {
			for r := 0; r <= 9; r++ {
				dropped, residents := cohort("d", d), cohort("r", r)
				got := fn(dropped, residents)
				assert.ElementsMatch(t, names(append(dropped, residents...)), names(got), "%s d=%d r=%d", name, d, r)
			}
		}
	}
}

func TestSeedingTableFallsBackToConsecutive(t *testing.T) {
	table := SeedingTable{3: CrossCohortSeeding}
	dropped, residents := cohort("d", 2), cohort("r", 2)

	assert.Equal(t, []string{"d1", "d2", "r1", "r2"}, names(table.order(2, dropped, residents)))
	assert.Equal(t, []string{"d1", "r2", "d2", "r1"}, names(table.order(3, dropped, residents)))
}
