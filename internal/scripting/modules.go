package scripting

import (
	"errors"
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/game/pet"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

var errNoPet = errors.New("no pet bound to this call")

// RegisterModules installs the engine global into L:
//
//	engine.pet.stat(id)            -> int
//	engine.pet.set_stat(id, v)
//	engine.pet.adjust(id, delta)   -> int (new value)
//	engine.pet.has_condition(id)   -> bool
//	engine.pet.name() / breed() / stage() -> string
//	engine.pet.age()               -> number
//	engine.dice.roll(expr)         -> int
//	engine.dice.between(lo, hi)    -> int
//	engine.log(msg)
//
// Precondition: L must be from NewSandboxedState.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "pet", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"stat":          m.luaStat,
		"set_stat":      m.luaSetStat,
		"adjust":        m.luaAdjust,
		"has_condition": m.luaHasCondition,
		"name":          m.luaName,
		"breed":         m.luaBreed,
		"stage":         m.luaStage,
		"age":           m.luaAge,
	}))
	L.SetField(engine, "dice", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"roll":    m.luaRoll,
		"between": m.luaBetween,
	}))
	L.SetField(engine, "log", L.NewFunction(m.luaLog))
	L.SetGlobal("engine", engine)
}

// boundPet returns the pet bound to the running action, raising a Lua error when
// called outside Perform.
func (m *Manager) boundPet(L *lua.LState) *pet.Pet {
	if m.current == nil {
		L.RaiseError("%s", errNoPet)
	}
	return m.current
}

func checkKind(L *lua.LState, n int) stat.Kind {
	k, err := stat.Parse(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return k
}

func (m *Manager) luaStat(L *lua.LState) int {
	p := m.boundPet(L)
	L.Push(lua.LNumber(p.Stat(checkKind(L, 1))))
	return 1
}

// checkAmount reads argument n as a number and saturates it into int range.
// NaN raises an argument error.
func checkAmount(L *lua.LState, n int) int {
	f := float64(L.CheckNumber(n))
	switch {
	case math.IsNaN(f):
		L.ArgError(n, "number expected, got nan")
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func (m *Manager) luaSetStat(L *lua.LState) int {
	p := m.boundPet(L)
	if err := p.SetStat(checkKind(L, 1), checkAmount(L, 2)); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (m *Manager) luaAdjust(L *lua.LState) int {
	p := m.boundPet(L)
	k := checkKind(L, 1)
	if err := p.Adjust(k, checkAmount(L, 2)); err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(lua.LNumber(p.Stat(k)))
	return 1
}

func (m *Manager) luaHasCondition(L *lua.LState) int {
	p := m.boundPet(L)
	L.Push(lua.LBool(p.HasCondition(L.CheckString(1))))
	return 1
}

func (m *Manager) luaName(L *lua.LState) int {
	L.Push(lua.LString(m.boundPet(L).Name()))
	return 1
}

func (m *Manager) luaBreed(L *lua.LState) int {
	L.Push(lua.LString(m.boundPet(L).Breed().ID))
	return 1
}

func (m *Manager) luaStage(L *lua.LState) int {
	L.Push(lua.LString(m.boundPet(L).Stage().String()))
	return 1
}

func (m *Manager) luaAge(L *lua.LState) int {
	L.Push(lua.LNumber(m.boundPet(L).Age()))
	return 1
}

func (m *Manager) luaRoll(L *lua.LState) int {
	res, err := m.roller.Roll(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LNumber(res.Total()))
	return 1
}

func (m *Manager) luaBetween(L *lua.LState) int {
	lo, hi := L.CheckInt(1), L.CheckInt(2)
	if lo > hi {
		L.ArgError(2, "hi must be >= lo")
	}
	L.Push(lua.LNumber(m.roller.Between("script", lo, hi)))
	return 1
}

func (m *Manager) luaLog(L *lua.LState) int {
	fields := []zap.Field{zap.String("text", L.CheckString(1))}
	if m.current != nil {
		fields = append(fields, zap.String("pet", m.current.Name()))
	}
	m.logger.Info("care script", fields...)
	return 0
}
