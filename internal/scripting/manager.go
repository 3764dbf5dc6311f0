package scripting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/game/dice"
	"github.com/cory-johannsen/kennel/internal/game/pet"
)

// ErrUnknownAction is returned by Perform for an action no loaded script defines.
var ErrUnknownAction = errors.New("unknown care action")

// Manager owns one sandboxed LState holding the care actions.
//
// All methods are safe for concurrent use; actions run one at a time.
type Manager struct {
	mu      sync.Mutex
	L       *lua.LState
	actions []string
	current *pet.Pet
	roller  *dice.Roller
	logger  *zap.Logger
	limit   int
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: roller must be non-nil; instLimit >= 0 where 0 selects DefaultInstructionLimit.
func NewManager(roller *dice.Roller, logger *zap.Logger, instLimit int) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{roller: roller, logger: logger, limit: instLimit}
}

// Load creates a fresh VM, registers the engine modules, and executes every
// *.lua file in scriptDir in lexicographic order. Every global function the
// scripts define becomes an action. A previously loaded VM is replaced.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: on error the previous VM, if any, stays in place.
func (m *Manager) Load(ctx context.Context, scriptDir string) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(scriptDir, e.Name()))
		}
	}
	slices.Sort(files)

	L := NewSandboxedState()
	m.RegisterModules(L)
	baseline := globalNames(L)

	for _, path := range files {
		err := runBudgeted(ctx, L, m.limit, func() error { return L.DoFile(path) })
		if err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	var actions []string
	L.G.Global.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok || baseline[string(name)] {
			return
		}
		if _, isFn := v.(*lua.LFunction); isFn {
			actions = append(actions, string(name))
		}
	})
	slices.Sort(actions)

	m.mu.Lock()
	old := m.L
	m.L = L
	m.actions = actions
	m.mu.Unlock()
	if old != nil {
		old.Close()
	}

	m.logger.Info("care scripts loaded",
		zap.String("dir", scriptDir),
		zap.Int("files", len(files)),
		zap.Strings("actions", actions),
	)
	return nil
}

func globalNames(L *lua.LState) map[string]bool {
	names := make(map[string]bool)
	L.G.Global.ForEach(func(k, _ lua.LValue) {
		if s, ok := k.(lua.LString); ok {
			names[string(s)] = true
		}
	})
	return names
}

// Actions returns the loaded action names, sorted.
func (m *Manager) Actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.actions)
}

// Perform runs the named action against p.
//
// Precondition: the caller holds exclusive access to p (see kennel.Kennel.Do).
// Postcondition: returns ErrUnknownAction when no script defines action, a
// wrapped ErrInstructionLimit when the budget is exhausted, or a wrapped Lua error.
func (m *Manager) Perform(ctx context.Context, p *pet.Pet, action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.L == nil || !slices.Contains(m.actions, action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	fn := m.L.GetGlobal(action)

	m.current = p
	defer func() { m.current = nil }()

	L := m.L
	err := runBudgeted(ctx, L, m.limit, func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})
	if err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("action", action),
			zap.String("pet", p.Name()),
			zap.Error(err),
		)
		return fmt.Errorf("scripting: action %q: %w", action, err)
	}
	m.logger.Debug("care action performed",
		zap.String("action", action),
		zap.String("pet", p.Name()),
		zap.Strings("conditions", p.Conditions().IDs()),
	)
	return nil
}

// Close releases the VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.L != nil {
		m.L.Close()
		m.L = nil
		m.actions = nil
	}
}
