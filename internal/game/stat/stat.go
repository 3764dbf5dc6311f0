// Package stat defines the fixed catalog of statistics tracked for a pet.
package stat

import (
	"errors"
	"fmt"
)

// Bounds every statistic value is clamped into.
const (
	Min = 0
	Max = 100
)

// ErrUnknownKind is returned when a stat id or Kind is not in the catalog.
var ErrUnknownKind = errors.New("unknown stat kind")

// ErrInvalidBounds is returned by Clamp when lo > hi.
var ErrInvalidBounds = errors.New("invalid clamp bounds")

// Kind identifies one statistic.
type Kind uint8

const (
	Energy Kind = iota
	Hunger
	Happiness
	Health
	Cleanliness
	Sleep
	Anxiety
	Obedience
	Sociability
	Attachment

	// Count is the number of kinds; it is not itself a valid Kind.
	Count
)

// Info is the immutable catalog entry for a Kind.
type Info struct {
	ID    string
	Label string
	Glyph string
}

var catalog = [Count]Info{
	Energy:      {ID: "energy", Label: "Energy", Glyph: "⚡"},
	Hunger:      {ID: "hunger", Label: "Hunger", Glyph: "🍖"},
	Happiness:   {ID: "happiness", Label: "Happiness", Glyph: "😊"},
	Health:      {ID: "health", Label: "Health", Glyph: "🏥"},
	Cleanliness: {ID: "cleanliness", Label: "Cleanliness", Glyph: "🚿"},
	Sleep:       {ID: "sleep", Label: "Sleep", Glyph: "😴"},
	Anxiety:     {ID: "anxiety", Label: "Anxiety", Glyph: "😟"},
	Obedience:   {ID: "obedience", Label: "Obedience", Glyph: "🎓"},
	Sociability: {ID: "sociability", Label: "Sociability", Glyph: "🐶"},
	Attachment:  {ID: "attachment", Label: "Attachment", Glyph: "👨‍👦"},
}

// All returns every Kind in catalog order.
//
// Postcondition: len(result) == int(Count); the slice is a fresh allocation.
func All() []Kind {
	out := make([]Kind, Count)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is a catalog entry.
func (k Kind) Valid() bool {
	return k < Count
}

// Info returns the catalog entry for k, or the zero Info if k is not valid.
func (k Kind) Info() Info {
	if !k.Valid() {
		return Info{}
	}
	return catalog[k]
}

// ID returns the stable lowercase identifier used in YAML and Lua.
func (k Kind) ID() string { return k.Info().ID }

// Label returns the display label.
func (k Kind) Label() string { return k.Info().Label }

// Glyph returns the display glyph.
func (k Kind) Glyph() string { return k.Info().Glyph }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("stat(%d)", uint8(k))
	}
	return catalog[k].ID
}

// Parse resolves a stat id such as "energy" to its Kind.
//
// Postcondition: Returns the Kind, or an error wrapping ErrUnknownKind.
func Parse(id string) (Kind, error) {
	for i, info := range catalog {
		if info.ID == id {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, id)
}

// Clamp bounds value into [lo, hi].
//
// Precondition: lo <= hi, otherwise ErrInvalidBounds is returned.
// Postcondition: lo <= result <= hi.
func Clamp(value, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, lo, hi)
	}
	return min(hi, max(value, lo)), nil
}

// Bound clamps value into [Min, Max].
func Bound(value int) int {
	return min(Max, max(value, Min))
}
