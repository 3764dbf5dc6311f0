// Package pet implements the pet entity: breed and age multipliers, initial
// stat seeding, clamped mutation and condition derivation.
package pet

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/game/breed"
	"github.com/cory-johannsen/kennel/internal/game/condition"
	"github.com/cory-johannsen/kennel/internal/game/dice"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// ErrInvalidArgument is wrapped by every rejected input: an unknown breed,
// an age outside [MinAge, MaxAge] or an unknown stat kind.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	MinAge = 0
	MaxAge = 29
)

// ConditionObserver is notified with the condition ids that appeared and
// disappeared each time the active set is replaced.
type ConditionObserver func(added, removed []string)

// Option configures a Pet at construction.
type Option func(*options)

type options struct {
	breeds   *breed.Registry
	rules    *condition.Registry
	src      dice.Source
	logger   *zap.Logger
	observer ConditionObserver
}

// WithBreeds resolves breed ids against reg instead of the built-in catalog.
func WithBreeds(reg *breed.Registry) Option {
	return func(o *options) { o.breeds = reg }
}

// WithConditions evaluates the rules of reg instead of the built-in catalog.
func WithConditions(reg *condition.Registry) Option {
	return func(o *options) { o.rules = reg }
}

// WithSource draws initial stat values from src.
func WithSource(src dice.Source) Option {
	return func(o *options) { o.src = src }
}

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithConditionObserver registers fn to be called after every condition set replacement.
func WithConditionObserver(fn ConditionObserver) Option {
	return func(o *options) { o.observer = fn }
}

// Pet is a single dog and its derived state.
//
// Not safe for concurrent use; the caller must serialise access.
type Pet struct {
	name        string
	breed       *breed.Profile
	age         float64
	multipliers map[stat.Kind]float64
	values      map[stat.Kind]int
	rules       []*condition.Rule
	active      condition.Set
	logger      *zap.Logger
	observer    ConditionObserver
}

// New creates a pet of the given breed and age in whole years.
//
// Precondition: breedID must name a registered breed; ageYears must be in [0, 29].
// Postcondition: every stat has a value in [0, 100] and a multiplier; Energy is 100,
// Hunger is 0, and Conditions() reflects the seeded values.
func New(name, breedID string, ageYears int, opts ...Option) (*Pet, error) {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.breeds == nil {
		o.breeds = breed.DefaultRegistry()
	}
	if o.rules == nil {
		o.rules = condition.DefaultRegistry()
	}
	if o.src == nil {
		o.src = dice.NewCryptoSource()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	profile, err := o.breeds.Lookup(breedID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	age := float64(ageYears)
	if err := validateAge(age); err != nil {
		return nil, err
	}

	p := &Pet{
		name:        name,
		breed:       profile,
		age:         age,
		multipliers: Multipliers(profile, age),
		values:      make(map[stat.Kind]int, stat.Count),
		rules:       o.rules.All(),
		logger:      o.logger,
		observer:    o.observer,
	}
	p.seed(dice.NewRoller(o.src, o.logger))
	p.active = condition.Evaluate(p.rules, p.Stat)

	p.logger.Debug("pet created",
		zap.String("name", name),
		zap.String("breed", profile.ID),
		zap.Float64("age", age),
		zap.Stringer("stage", StageForAge(age)),
		zap.Strings("conditions", p.active.IDs()),
	)
	return p, nil
}

// seed populates the initial stat values from the multiplier table.
func (p *Pet) seed(r *dice.Roller) {
	for _, k := range stat.All() {
		if v, ok := pinned[k]; ok {
			p.values[k] = v
			continue
		}
		rng := seedRanges[k]
		base := r.Between(k.ID(), rng.lo, rng.hi)
		p.values[k] = stat.Bound(int(math.Round(float64(base) * p.multipliers[k])))
	}
}

func validateAge(years float64) error {
	if math.IsNaN(years) || years < MinAge || years > MaxAge {
		return fmt.Errorf("%w: age %v outside [%d, %d]", ErrInvalidArgument, years, MinAge, MaxAge)
	}
	return nil
}

// Name returns the pet's name.
func (p *Pet) Name() string { return p.name }

// Breed returns the breed profile the pet was created with.
func (p *Pet) Breed() *breed.Profile { return p.breed }

// Age returns the age in fractional years.
func (p *Pet) Age() float64 { return p.age }

// Stage returns the life stage for the current age.
func (p *Pet) Stage() Stage { return StageForAge(p.age) }

// AgeInYearsAndMonths splits the age into whole years and whole remaining months.
func (p *Pet) AgeInYearsAndMonths() (years, months int) {
	years = int(p.age)
	months = int((p.age - float64(years)) * 12)
	return years, months
}

// SetAge stores a new age. The multiplier table is left as computed at construction.
//
// Precondition: years in [0, 29].
// Postcondition: on error the pet is unchanged.
func (p *Pet) SetAge(years float64) error {
	if err := validateAge(years); err != nil {
		return err
	}
	p.age = years
	return nil
}

// Stat returns the current value of k, or 0 for a kind with no value.
func (p *Pet) Stat(k stat.Kind) int {
	return p.values[k]
}

// Multiplier returns the multiplier of k, or 1.0 for a kind with no entry.
func (p *Pet) Multiplier(k stat.Kind) float64 {
	if m, ok := p.multipliers[k]; ok {
		return m
	}
	return 1.0
}

// SetStat clamps value into [0, 100], stores it and re-derives the active conditions.
//
// Precondition: k must be a valid stat.Kind.
// Postcondition: Stat(k) == clamp(value, 0, 100) and Conditions() matches the rule
// predicate over the current values; on error the pet is unchanged.
func (p *Pet) SetStat(k stat.Kind, value int) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %w: %s", ErrInvalidArgument, stat.ErrUnknownKind, k)
	}
	v, err := stat.Clamp(value, stat.Min, stat.Max)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	p.values[k] = v
	p.recompute()
	return nil
}

// Adjust adds delta to the current value of k through SetStat. A sum that
// would overflow int saturates at the matching bound.
func (p *Pet) Adjust(k stat.Kind, delta int) error {
	cur := p.Stat(k)
	var next int
	switch {
	case delta > 0 && cur > math.MaxInt-delta:
		next = stat.Max
	case delta < 0 && cur < math.MinInt-delta:
		next = stat.Min
	default:
		next = cur + delta
	}
	return p.SetStat(k, next)
}

// Conditions returns the active condition set.
func (p *Pet) Conditions() condition.Set {
	return p.active
}

// HasCondition reports whether the condition with id is active.
func (p *Pet) HasCondition(id string) bool {
	return p.active.Has(id)
}

// recompute evaluates every rule against the current values and replaces the
// active set only when the result differs. It reports whether it replaced.
func (p *Pet) recompute() bool {
	next := condition.Evaluate(p.rules, p.Stat)
	if next.Equal(p.active) {
		return false
	}
	added, removed := p.active.Diff(next)
	p.active = next
	p.logger.Debug("conditions changed",
		zap.String("name", p.name),
		zap.Strings("added", added),
		zap.Strings("removed", removed),
	)
	if p.observer != nil {
		p.observer(added, removed)
	}
	return true
}
