package pet

import (
	"github.com/cory-johannsen/kennel/internal/game/breed"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// Stage is the life stage that selects an age adjustment bracket.
type Stage uint8

const (
	Puppy Stage = iota
	Adult
	Senior
)

const (
	puppyMaxAge  = 2
	seniorMinAge = 9
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case Puppy:
		return "puppy"
	case Senior:
		return "senior"
	default:
		return "adult"
	}
}

// StageForAge classifies an age in years: at most 2 is a puppy, at least 9 a senior.
func StageForAge(age float64) Stage {
	switch {
	case age <= puppyMaxAge:
		return Puppy
	case age >= seniorMinAge:
		return Senior
	default:
		return Adult
	}
}

// ageAdjustments holds the additive multiplier adjustment per stage.
// Adults have none and Happiness is never adjusted.
var ageAdjustments = map[Stage]map[stat.Kind]float64{
	Puppy: {
		stat.Energy:      0.20,
		stat.Hunger:      0.10,
		stat.Health:      0.05,
		stat.Cleanliness: -0.10,
		stat.Sleep:       0.15,
		stat.Anxiety:     0.15,
		stat.Obedience:   -0.20,
		stat.Sociability: 0.10,
		stat.Attachment:  0.15,
	},
	Senior: {
		stat.Energy:      -0.25,
		stat.Hunger:      -0.10,
		stat.Health:      -0.25,
		stat.Cleanliness: 0.10,
		stat.Sleep:       -0.20,
		stat.Anxiety:     0.10,
		stat.Obedience:   -0.15,
		stat.Sociability: -0.15,
		stat.Attachment:  0.10,
	},
}

// Multipliers computes the per-stat multiplier table for a breed at a given age:
// 1.0 plus the breed delta plus the life stage adjustment.
//
// Precondition: profile must not be nil.
// Postcondition: the result has exactly one entry per stat.Kind.
func Multipliers(profile *breed.Profile, age float64) map[stat.Kind]float64 {
	adj := ageAdjustments[StageForAge(age)]
	out := make(map[stat.Kind]float64, stat.Count)
	for _, k := range stat.All() {
		out[k] = 1.0 + profile.Mod(k) + adj[k]
	}
	return out
}

// seedRange is the inclusive base range an initial stat value is drawn from.
type seedRange struct {
	lo, hi int
}

// seedRanges covers every randomized stat. Energy and Hunger are absent
// because they start pinned at the scale extremes.
var seedRanges = map[stat.Kind]seedRange{
	stat.Happiness:   {40, 80},
	stat.Health:      {60, 90},
	stat.Cleanliness: {30, 80},
	stat.Sleep:       {30, 70},
	stat.Anxiety:     {10, 50},
	stat.Obedience:   {20, 70},
	stat.Sociability: {30, 80},
	stat.Attachment:  {20, 80},
}

// pinned holds the fixed starting value of the non-randomized stats.
var pinned = map[stat.Kind]int{
	stat.Energy: stat.Max,
	stat.Hunger: stat.Min,
}
