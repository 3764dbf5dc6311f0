// Package condition defines the qualitative states a pet can be in and the
// threshold rules that derive them from statistic values.
package condition

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// Rule is the static definition of a condition bound to one statistic.
//
// Invariant: at least one of Min and Max is non-nil.
type Rule struct {
	ID          string
	Name        string
	Stat        stat.Kind
	Min         *int // active when value >= *Min
	Max         *int // active when value <= *Max
	Description string
}

// AtLeast returns a pointer to n, for building Rule.Min.
func AtLeast(n int) *int { return &n }

// AtMost returns a pointer to n, for building Rule.Max.
func AtMost(n int) *int { return &n }

// Clone returns a copy of r whose thresholds are not shared with r.
func (r *Rule) Clone() *Rule {
	c := *r
	if r.Min != nil {
		c.Min = AtLeast(*r.Min)
	}
	if r.Max != nil {
		c.Max = AtMost(*r.Max)
	}
	return &c
}

// Active reports whether the rule activates for the given statistic value.
func (r *Rule) Active(value int) bool {
	return (r.Min != nil && value >= *r.Min) || (r.Max != nil && value <= *r.Max)
}

// String returns the description, which is what a status line shows.
func (r *Rule) String() string {
	return r.Description
}

// Validate checks the rule invariants.
func (r *Rule) Validate() error {
	if r.ID == "" {
		return errors.New("condition id must not be empty")
	}
	if !r.Stat.Valid() {
		return fmt.Errorf("condition %q: %w: %s", r.ID, stat.ErrUnknownKind, r.Stat)
	}
	if r.Min == nil && r.Max == nil {
		return fmt.Errorf("condition %q: at least one of min or max must be set", r.ID)
	}
	return nil
}

// Registry holds all known Rules keyed by ID, preserving registration order.
// Evaluation order follows registration order.
type Registry struct {
	rules map[string]*Rule
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]*Rule)}
}

// Register adds rule, overwriting any existing entry with the same ID in place.
//
// Precondition: rule must not be nil.
// Postcondition: Get(rule.ID) returns rule, or an error is returned and the registry is unchanged.
func (r *Registry) Register(rule *Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	if _, exists := r.rules[rule.ID]; !exists {
		r.order = append(r.order, rule.ID)
	}
	r.rules[rule.ID] = rule
	return nil
}

// Get returns the Rule for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*Rule, bool) {
	rule, ok := r.rules[id]
	return rule, ok
}

// All returns a snapshot slice of all registered Rules in registration order.
func (r *Registry) All() []*Rule {
	out := make([]*Rule, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rules[id])
	}
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.order)
}

// ruleFile is the YAML form of a Rule.
type ruleFile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Stat        string `yaml:"stat"`
	Min         *int   `yaml:"min"`
	Max         *int   `yaml:"max"`
	Description string `yaml:"description"`
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Rule, and
// registers it into reg. Two files in dir declaring the same id are an error.
//
// Precondition: dir must be a readable directory; reg must not be nil.
// Postcondition: Returns the number of rules loaded, or an error if any file fails to parse.
func LoadDirectory(reg *Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading condition dir %q: %w", dir, err)
	}
	n := 0
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return n, fmt.Errorf("reading %q: %w", path, err)
		}
		var f ruleFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return n, fmt.Errorf("parsing %q: %w", path, err)
		}
		if prev, dup := seen[f.ID]; dup {
			return n, fmt.Errorf("condition id %q declared in both %q and %q", f.ID, prev, path)
		}
		seen[f.ID] = path
		k, err := stat.Parse(f.Stat)
		if err != nil {
			return n, fmt.Errorf("parsing %q: %w", path, err)
		}
		rule := &Rule{
			ID:          f.ID,
			Name:        f.Name,
			Stat:        k,
			Min:         f.Min,
			Max:         f.Max,
			Description: f.Description,
		}
		if err := reg.Register(rule); err != nil {
			return n, fmt.Errorf("registering %q: %w", path, err)
		}
		n++
	}
	return n, nil
}
