package brackets

import "github.com/Dosada05/dominoes-tournament/models"

// SeedingFunc orders losers-bracket candidates for consecutive pairing. dropped holds the
// teams that just fell out of the winners bracket, residents the teams already in the
// losers bracket. The result must be a permutation of dropped followed by residents.
type SeedingFunc func(dropped, residents []*models.Team) []*models.Team

// SeedingTable maps a round number to the seeding override used when that round's losers
// bracket is built. Rounds without an entry use straight consecutive pairing.
type SeedingTable map[int]SeedingFunc

func (t SeedingTable) order(round int, dropped, residents []*models.Team) []*models.Team {
	if fn, ok := t[round]; ok && fn != nil {
		return fn(dropped, residents)
	}
	return ConsecutiveSeeding(dropped, residents)
}

// ConsecutiveSeeding keeps dropped teams ahead of residents.
func ConsecutiveSeeding(dropped, residents []*models.Team) []*models.Team {
	out := make([]*models.Team, 0, len(dropped)+len(residents))
	out = append(out, dropped...)
	return append(out, residents...)
}

// SplitHalvesSeeding meets the top half of the dropped teams with the bottom half of the
// residents and the bottom half of the dropped teams with the top half of the residents.
func SplitHalvesSeeding(dropped, residents []*models.Team) []*models.Team {
	hd := (len(dropped) + 1) / 2
	hr := (len(residents) + 1) / 2
	out := interleave(dropped[:hd], residents[hr:])
	return append(out, interleave(dropped[hd:], residents[:hr])...)
}

// CrossCohortSeeding meets the first dropped team with the last resident, the second with
// the second to last, and so on.
func CrossCohortSeeding(dropped, residents []*models.Team) []*models.Team {
	return interleave(dropped, reversed(residents))
}

// FoldResidentsSeeding meets dropped teams with the top residents in order, then folds the
// remaining residents first against last.
func FoldResidentsSeeding(dropped, residents []*models.Team) []*models.Team {
	n := min(len(dropped), len(residents))
	out := interleave(dropped[:n], residents[:n])
	out = append(out, dropped[n:]...)

	rest := residents[n:]
	for i, j := 0, len(rest)-1; i <= j; i, j = i+1, j-1 {
		out = append(out, rest[i])
		if i != j {
			out = append(out, rest[j])
		}
	}
	return out
}

func interleave(a, b []*models.Team) []*models.Team {
	out := make([]*models.Team, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
	}
	return out
}

func reversed(teams []*models.Team) []*models.Team {
	out := make([]*models.Team, len(teams))
	for i, t := range teams {
		out[len(teams)-1-i] = t
	}
	return out
}
