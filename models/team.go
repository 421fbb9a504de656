package models

// Team is a roster entry. Win and loss counters are recomputed from match history by the
// bracket engine; a Team value is copied with new counters, never updated in place.
type Team struct {
	ID     int     `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	City   string  `json:"city" yaml:"city"`
	Losses int     `json:"losses" yaml:"-"`
	Wins   int     `json:"wins" yaml:"-"`
	Logo   *string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// Clone returns a copy of t that shares no pointers with it.
func (t *Team) Clone() *Team {
	if t == nil {
		return nil
	}
	c := *t
	if t.Logo != nil {
		logo := *t.Logo
		c.Logo = &logo
	}
	return &c
}

// SameTeam reports whether a and b are both present and carry the same id.
func SameTeam(a, b *Team) bool {
	return a != nil && b != nil && a.ID == b.ID
}
