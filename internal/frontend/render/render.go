// Package render formats pet state and catalogs as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/kennel/internal/game/breed"
	"github.com/cory-johannsen/kennel/internal/game/condition"
	"github.com/cory-johannsen/kennel/internal/game/pet"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// NoConditions is printed in place of the condition list when none is active.
const NoConditions = "None"

// inverted lists the stats where a high value is bad.
var inverted = map[stat.Kind]bool{
	stat.Hunger:  true,
	stat.Anxiety: true,
}

// Renderer turns snapshots into text. The zero value renders without color.
type Renderer struct {
	Color bool
}

func (r Renderer) paint(code, text string) string {
	if !r.Color || code == "" {
		return text
	}
	return code + text + Reset
}

// valueColor grades a value: red when it is in the worst 30, green in the best 30.
func valueColor(k stat.Kind, v int) string {
	if inverted[k] {
		v = stat.Max - v
	}
	switch {
	case v <= 30:
		return Red
	case v >= 70:
		return Green
	default:
		return Yellow
	}
}

// StatLine formats one statistic as "<glyph> <label>: <value>/100".
func (r Renderer) StatLine(k stat.Kind, value int) string {
	return fmt.Sprintf("%s %s: %s/%d", k.Glyph(), k.Label(), r.paint(valueColor(k, value), fmt.Sprint(value)), stat.Max)
}

// ConditionLine lists the active condition descriptions, or NoConditions.
func (r Renderer) ConditionLine(rules []*condition.Rule) string {
	if len(rules) == 0 {
		return "Conditions: " + r.paint(Dim, NoConditions)
	}
	descs := make([]string, len(rules))
	for i, c := range rules {
		descs[i] = c.String()
	}
	return "Conditions: " + r.paint(Yellow, strings.Join(descs, ", "))
}

// Header formats the identity line, e.g. "Rex the Beagle, 3 years 6 months (adult)".
func (r Renderer) Header(s pet.Snapshot) string {
	return fmt.Sprintf("%s the %s, %s %s",
		r.paint(Bold, s.Name), s.BreedName, plural(s.Years, "year"), plural(s.Months, "month")) +
		" (" + s.Stage.String() + ")"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Status renders the full status block: header, one line per stat, conditions.
func (r Renderer) Status(s pet.Snapshot) string {
	var b strings.Builder
	b.WriteString(r.Header(s))
	b.WriteString("\n")
	for _, l := range s.Stats {
		b.WriteString("  ")
		b.WriteString(r.StatLine(l.Kind, l.Value))
		b.WriteString("\n")
	}
	b.WriteString(r.ConditionLine(s.Conditions))
	b.WriteString("\n")
	return b.String()
}

// Breeds renders one line per breed with its non-zero modifier deltas.
func (r Renderer) Breeds(profiles []*breed.Profile) string {
	var b strings.Builder
	for _, p := range profiles {
		var mods []string
		for _, k := range stat.All() {
			if d := p.Mod(k); d != 0 {
				mods = append(mods, fmt.Sprintf("%s %+.2f", k.ID(), d))
			}
		}
		fmt.Fprintf(&b, "%s %s  %s\n", r.paint(Cyan, fmt.Sprintf("%-22s", p.ID)), p.Name, r.paint(Dim, strings.Join(mods, ", ")))
	}
	return b.String()
}

// Rules renders one line per condition rule with its thresholds.
func (r Renderer) Rules(rules []*condition.Rule) string {
	var b strings.Builder
	for _, c := range rules {
		var th []string
		if c.Min != nil {
			th = append(th, fmt.Sprintf("%s >= %d", c.Stat.ID(), *c.Min))
		}
		if c.Max != nil {
			th = append(th, fmt.Sprintf("%s <= %d", c.Stat.ID(), *c.Max))
		}
		fmt.Fprintf(&b, "%s %-28s %s\n", r.paint(Cyan, fmt.Sprintf("%-16s", c.ID)), strings.Join(th, " or "), c.Description)
	}
	return b.String()
}
