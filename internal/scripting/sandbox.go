// Package scripting runs care actions written in Lua against a pet. Scripts
// execute in a sandboxed GopherLua state with a per-action opcode budget.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the opcode budget per script execution when no
// override is configured.
const DefaultInstructionLimit = 100_000

// ErrInstructionLimit is wrapped when a script exhausts its opcode budget.
var ErrInstructionLimit = errors.New("scripting: instruction limit exceeded")

// countingContext cancels itself after Done() has been called limit times.
// GopherLua calls Done() once per opcode when a context is set.
type countingContext struct {
	context.Context
	cancel    context.CancelFunc
	remaining atomic.Int64
}

func (c *countingContext) Done() <-chan struct{} {
	if c.remaining.Add(-1) <= 0 {
		c.cancel()
	}
	return c.Context.Done()
}

func (c *countingContext) exhausted() bool {
	return c.remaining.Load() <= 0
}

// newCountingContext derives a context from parent that cancels after limit
// opcodes, or when parent is done.
//
// Precondition: limit > 0.
func newCountingContext(parent context.Context, limit int) *countingContext {
	base, cancel := context.WithCancel(parent)
	c := &countingContext{Context: base, cancel: cancel}
	c.remaining.Store(int64(limit))
	return c
}

// NewSandboxedState creates a GopherLua LState with:
//   - Only safe stdlib loaded: base, table, string, math
//   - Dangerous globals removed: dofile, loadfile, load, collectgarbage, require
//
// Postcondition: The caller owns the LState and must call L.Close() when done.
func NewSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "collectgarbage", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// runBudgeted runs fn with L bound to a context that allows at most limit
// opcodes. A limit <= 0 selects DefaultInstructionLimit.
//
// Postcondition: L has no context bound on return.
func runBudgeted(ctx context.Context, L *lua.LState, limit int, fn func() error) error {
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}
	cctx := newCountingContext(ctx, limit)
	defer cctx.cancel()

	L.SetContext(cctx)
	defer L.RemoveContext()

	err := fn()
	if err != nil && cctx.exhausted() && ctx.Err() == nil {
		return fmt.Errorf("%w: %w", ErrInstructionLimit, err)
	}
	return err
}
