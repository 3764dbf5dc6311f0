package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned by Parse for malformed input.
var ErrInvalidExpression = errors.New("dice: invalid expression")

// maxDice bounds Count so a script cannot request an unbounded roll.
const maxDice = 100

var exprPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Expression is a parsed "NdS+M" roll.
type Expression struct {
	Raw      string
	Count    int
	Sides    int
	Modifier int
}

// Parse parses expressions of the form "d20", "2d6", "2d6+3" and "1d4-1".
// A bare integer such as "5" parses as a constant with no dice.
//
// Postcondition: on success, 0 <= Count <= 100 and Sides >= 2 whenever Count > 0.
func Parse(expr string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Expression{}, fmt.Errorf("%w: empty", ErrInvalidExpression)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Expression{Raw: expr, Modifier: n}, nil
	}
	m := exprPattern.FindStringSubmatch(s)
	if m == nil {
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}
	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	if count < 1 || count > maxDice {
		return Expression{}, fmt.Errorf("%w: die count in %q must be in [1, %d]", ErrInvalidExpression, expr, maxDice)
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil || sides < 2 {
		return Expression{}, fmt.Errorf("%w: die sides in %q must be >= 2", ErrInvalidExpression, expr)
	}
	mod := 0
	if m[3] != "" {
		if mod, err = strconv.Atoi(m[3]); err != nil {
			return Expression{}, fmt.Errorf("%w: modifier in %q", ErrInvalidExpression, expr)
		}
	}
	return Expression{Raw: expr, Count: count, Sides: sides, Modifier: mod}, nil
}

// Roll evaluates e against src.
//
// Postcondition: len(result.Dice) == e.Count and each die is in [1, e.Sides].
func (e Expression) Roll(src Source) Result {
	rolled := make([]int, e.Count)
	for i := range rolled {
		rolled[i] = src.Intn(e.Sides) + 1
	}
	return Result{Expression: e.Raw, Dice: rolled, Modifier: e.Modifier}
}
