package pet

import (
	"github.com/cory-johannsen/kennel/internal/game/condition"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// StatLine is one statistic as seen by a presentation layer.
type StatLine struct {
	Kind       stat.Kind
	Value      int
	Multiplier float64
}

// Snapshot is a detached copy of a pet's observable state.
type Snapshot struct {
	Name       string
	BreedID    string
	BreedName  string
	Age        float64
	Years      int
	Months     int
	Stage      Stage
	Stats      []StatLine
	Conditions []*condition.Rule
}

// Snapshot copies the pet's current state. Stats are in catalog order and
// conditions in evaluation order.
func (p *Pet) Snapshot() Snapshot {
	years, months := p.AgeInYearsAndMonths()
	s := Snapshot{
		Name:       p.name,
		BreedID:    p.breed.ID,
		BreedName:  p.breed.Name,
		Age:        p.age,
		Years:      years,
		Months:     months,
		Stage:      p.Stage(),
		Stats:      make([]StatLine, 0, stat.Count),
		Conditions: p.active.Rules(),
	}
	for _, k := range stat.All() {
		s.Stats = append(s.Stats, StatLine{Kind: k, Value: p.Stat(k), Multiplier: p.Multiplier(k)})
	}
	return s
}

// Stat returns the value recorded for k, or 0 when absent.
func (s Snapshot) Stat(k stat.Kind) int {
	for _, l := range s.Stats {
		if l.Kind == k {
			return l.Value
		}
	}
	return 0
}
