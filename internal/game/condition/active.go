package condition

import (
	"slices"

	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// Set is an immutable set of active Rules. The zero value is the empty set.
type Set struct {
	byID  map[string]*Rule
	order []*Rule
}

// Evaluate scans every rule against the values reported by value and returns
// the set of rules that are active.
//
// Precondition: value must not be nil.
// Postcondition: result.Has(r.ID) == r.Active(value(r.Stat)) for every r in rules.
func Evaluate(rules []*Rule, value func(stat.Kind) int) Set {
	s := Set{byID: make(map[string]*Rule)}
	for _, r := range rules {
		if _, dup := s.byID[r.ID]; dup {
			continue
		}
		if r.Active(value(r.Stat)) {
			s.byID[r.ID] = r
			s.order = append(s.order, r)
		}
	}
	return s
}

// Has reports whether the rule with id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of rules in the set.
func (s Set) Len() int {
	return len(s.order)
}

// Empty reports whether no rule is active.
func (s Set) Empty() bool {
	return len(s.order) == 0
}

// Equal reports whether s and o contain the same rule ids, ignoring order.
func (s Set) Equal(o Set) bool {
	if len(s.byID) != len(o.byID) {
		return false
	}
	for id := range s.byID {
		if _, ok := o.byID[id]; !ok {
			return false
		}
	}
	return true
}

// Rules returns the active rules in evaluation order.
// The slice is a new allocation; the Rules themselves are shared and must not be modified.
func (s Set) Rules() []*Rule {
	return slices.Clone(s.order)
}

// IDs returns the active rule ids in evaluation order.
func (s Set) IDs() []string {
	out := make([]string, len(s.order))
	for i, r := range s.order {
		out[i] = r.ID
	}
	return out
}

// Diff returns the ids present in next but not in s, and the ids present in s
// but not in next.
func (s Set) Diff(next Set) (added, removed []string) {
	for _, r := range next.order {
		if !s.Has(r.ID) {
			added = append(added, r.ID)
		}
	}
	for _, r := range s.order {
		if !next.Has(r.ID) {
			removed = append(removed, r.ID)
		}
	}
	return added, removed
}
