// Package kennel holds adopted pets behind per-pet exclusive locks so that a
// pet can be driven from several goroutines.
package kennel

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/game/pet"
)

// ErrPetNotFound is returned for an id that is not (or no longer) in the kennel.
var ErrPetNotFound = errors.New("pet not found")

// Factory builds a pet for Adopt. pet.New with bound options is the usual implementation.
type Factory func(name, breedID string, age int) (*pet.Pet, error)

type entry struct {
	mu  sync.Mutex
	pet *pet.Pet
}

// Kennel tracks all adopted pets by id.
// All methods are safe for concurrent use.
type Kennel struct {
	mu      sync.RWMutex
	pets    map[string]*entry
	factory Factory
	logger  *zap.Logger
}

// New creates an empty Kennel that builds pets with factory.
//
// Precondition: factory must not be nil.
func New(factory Factory, logger *zap.Logger) *Kennel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Kennel{
		pets:    make(map[string]*entry),
		factory: factory,
		logger:  logger,
	}
}

// Adopt builds a new pet and registers it under a fresh id.
//
// Postcondition: Returns the new id, or the factory error with nothing registered.
func (k *Kennel) Adopt(name, breedID string, age int) (string, error) {
	p, err := k.factory(name, breedID, age)
	if err != nil {
		return "", fmt.Errorf("adopting %q: %w", name, err)
	}
	id := uuid.NewString()

	k.mu.Lock()
	k.pets[id] = &entry{pet: p}
	k.mu.Unlock()

	k.logger.Info("pet adopted",
		zap.String("id", id),
		zap.String("name", name),
		zap.String("breed", breedID),
		zap.Int("age", age),
	)
	return id, nil
}

func (k *Kennel) lookup(id string) (*entry, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	e, ok := k.pets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPetNotFound, id)
	}
	return e, nil
}

// Do runs fn with exclusive access to the pet with id and returns fn's error.
//
// Precondition: fn must not retain p after returning.
func (k *Kennel) Do(id string, fn func(p *pet.Pet) error) error {
	e, err := k.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.pet)
}

// Get returns a snapshot of the pet with id.
func (k *Kennel) Get(id string) (pet.Snapshot, error) {
	var s pet.Snapshot
	err := k.Do(id, func(p *pet.Pet) error {
		s = p.Snapshot()
		return nil
	})
	return s, err
}

// Release removes the pet with id. A Do already in progress completes normally.
func (k *Kennel) Release(id string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.pets[id]; !ok {
		return fmt.Errorf("%w: %q", ErrPetNotFound, id)
	}
	delete(k.pets, id)
	k.logger.Info("pet released", zap.String("id", id))
	return nil
}

// IDs returns the ids of all pets, sorted.
func (k *Kennel) IDs() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]string, 0, len(k.pets))
	for id := range k.pets {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of pets in the kennel.
func (k *Kennel) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pets)
}
