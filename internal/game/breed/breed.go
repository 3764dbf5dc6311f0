// Package breed defines breed profiles: per-statistic modifier deltas that
// skew how a pet's statistics are initialised.
package breed

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/kennel/internal/game/stat"
)

// MaxDelta bounds the magnitude of a single modifier delta.
const MaxDelta = 1.0

// ErrUnknownBreed is returned when a breed id is not registered.
var ErrUnknownBreed = errors.New("unknown breed")

// Profile is the immutable catalog entry for one breed.
type Profile struct {
	ID        string
	Name      string
	Modifiers map[stat.Kind]float64
}

// Mod returns the modifier delta for k, or 0 if the breed does not skew k.
func (p *Profile) Mod(k stat.Kind) float64 {
	return p.Modifiers[k]
}

// Clone returns a copy of p that shares no mutable state with it.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Modifiers = maps.Clone(p.Modifiers)
	return &c
}

// String returns the display name.
func (p *Profile) String() string {
	return p.Name
}

// Validate checks the profile invariants.
//
// Postcondition: Returns nil, or an error naming the first violation.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return errors.New("breed id must not be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("breed %q: name must not be empty", p.ID)
	}
	for k, d := range p.Modifiers {
		if !k.Valid() {
			return fmt.Errorf("breed %q: %w: %s", p.ID, stat.ErrUnknownKind, k)
		}
		if math.IsNaN(d) || math.Abs(d) > MaxDelta {
			return fmt.Errorf("breed %q: %s delta %v outside [-%v, %v]", p.ID, k, d, MaxDelta, MaxDelta)
		}
	}
	return nil
}

// Registry holds breed profiles keyed by ID, preserving registration order.
// It is not safe for concurrent mutation; reads after loading are safe.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]*Profile)}
}

// Register adds p, replacing any profile with the same ID in place.
//
// Precondition: p must not be nil.
// Postcondition: Get(p.ID) returns p, or an error is returned and the registry is unchanged.
func (r *Registry) Register(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.profiles[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.profiles[p.ID] = p
	return nil
}

// Get returns the profile for id.
func (r *Registry) Get(id string) (*Profile, bool) {
	p, ok := r.profiles[id]
	return p, ok
}

// Lookup is Get with an error wrapping ErrUnknownBreed on a miss.
func (r *Registry) Lookup(id string) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBreed, id)
	}
	return p, nil
}

// All returns the registered profiles in registration order.
func (r *Registry) All() []*Profile {
	out := make([]*Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	return len(r.order)
}

// profileFile is the YAML form of a Profile; modifiers are keyed by stat id.
type profileFile struct {
	ID        string             `yaml:"id"`
	Name      string             `yaml:"name"`
	Modifiers map[string]float64 `yaml:"modifiers"`
}

func (f profileFile) profile() (*Profile, error) {
	mods := make(map[stat.Kind]float64, len(f.Modifiers))
	for id, d := range f.Modifiers {
		k, err := stat.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("breed %q: %w", f.ID, err)
		}
		mods[k] = d
	}
	return &Profile{ID: f.ID, Name: f.Name, Modifiers: mods}, nil
}

// LoadDirectory parses every *.yaml file in dir as a Profile and registers it
// into r, replacing any profile already registered under the same id. Two
// files in dir declaring the same id are an error.
//
// Precondition: dir must be a readable directory; r must not be nil.
// Postcondition: Returns the number of profiles loaded, or the first error.
func LoadDirectory(r *Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading breed dir %q: %w", dir, err)
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
		var f profileFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return n, fmt.Errorf("parsing %q: %w", path, err)
		}
		if prev, dup := seen[f.ID]; dup {
			return n, fmt.Errorf("breed id %q declared in both %q and %q", f.ID, prev, path)
		}
		seen[f.ID] = path
		p, err := f.profile()
		if err != nil {
			return n, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := r.Register(p); err != nil {
			return n, fmt.Errorf("registering %q: %w", path, err)
		}
		n++
	}
	return n, nil
}
