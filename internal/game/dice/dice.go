// Package dice provides the randomness abstraction behind pet seeding and
// care-action rolls.
package dice

import (
	"fmt"
	"strings"
)

// Source is the randomness provider for every roll the engine makes.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Result holds the individual dice and modifier of one expression roll.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type Result struct {
	Expression string
	Dice       []int
	Modifier   int
}

// Total returns the sum of all die results plus the modifier.
func (r Result) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll as "2d6+3: 4+5 (+3) = 12".
func (r Result) String() string {
	parts := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		parts[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf("%s: %s (%+d) = %d", r.Expression, strings.Join(parts, "+"), r.Modifier, r.Total())
}

// Between returns a uniformly distributed integer in [lo, hi] drawn from src.
//
// Precondition: lo <= hi; src must be non-nil.
// Postcondition: lo <= result <= hi.
func Between(src Source, lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("dice: Between(%d, %d) precondition violated: lo > hi", lo, hi))
	}
	return lo + src.Intn(hi-lo+1)
}
