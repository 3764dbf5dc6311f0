package scripting_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/kennel/internal/game/dice"
	"github.com/cory-johannsen/kennel/internal/game/pet"
	"github.com/cory-johannsen/kennel/internal/game/stat"
	"github.com/cory-johannsen/kennel/internal/scripting"
)

func newTestManager(t testing.TB, limit int) (*scripting.Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	mgr := scripting.NewManager(dice.NewRoller(dice.Fixed(0), logger), logger, limit)
	t.Cleanup(mgr.Close)
	return mgr, logs
}

func writeTempLua(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
	}
	return dir
}

func newTestPet(t testing.TB) *pet.Pet {
	t.Helper()
	p, err := pet.New("Rex", "beagle", 5, pet.WithSource(dice.Fixed(0)))
	require.NoError(t, err)
	return p
}

func TestManager_Load_DiscoversActions(t *testing.T) {
	mgr, logs := newTestManager(t, 0)
	dir := writeTempLua(t, map[string]string{
		"a.lua": `function treat() engine.pet.adjust("happiness", 5) end`,
		"b.lua": `local function helper() end
		          function brush() helper() end`,
		"notes.txt": `ignored`,
	})
	require.NoError(t, mgr.Load(context.Background(), dir))
	assert.Equal(t, []string{"brush", "treat"}, mgr.Actions())
	assert.Equal(t, 1, logs.FilterMessage("care scripts loaded").Len())
}

func TestManager_Perform_DrivesPet(t *testing.T) {
	mgr, _ := newTestManager(t, 0)
	dir := writeTempLua(t, map[string]string{"treat.lua": `
		function treat()
			local v = engine.pet.adjust("happiness", 45)
			assert(v == 85, "adjust must return the new value")
			assert(engine.pet.has_condition("happy"))
			assert(engine.pet.name() == "Rex")
			assert(engine.pet.breed() == "beagle")
			assert(engine.pet.stage() == "adult")
			assert(engine.pet.age() == 5)
			engine.pet.set_stat("hunger", 500)
		end`})
	require.NoError(t, mgr.Load(context.Background(), dir))

	p := newTestPet(t)
	require.NoError(t, mgr.Perform(context.Background(), p, "treat"))
	assert.Equal(t, 85, p.Stat(stat.Happiness))
	assert.Equal(t, 100, p.Stat(stat.Hunger))
	assert.True(t, p.HasCondition("starving"))
}

func TestManager_Perform_HugeNumbersClampToNearestBound(t *testing.T) {
	mgr, _ := newTestManager(t, 0)
	require.NoError(t, mgr.Load(context.Background(), writeTempLua(t, map[string]string{"huge.lua": `
		function overfeed()
			engine.pet.set_stat("hunger", 1e300)
			engine.pet.set_stat("anxiety", -1e300)
			assert(engine.pet.adjust("happiness", 1e300) == 100)
			assert(engine.pet.adjust("obedience", -1e300) == 0)
			assert(engine.pet.adjust("health", 1/0) == 100)
		end
		function poison() engine.pet.set_stat("hunger", 0/0) end`})))

	p := newTestPet(t)
	require.NoError(t, mgr.Perform(context.Background(), p, "overfeed"))
	assert.Equal(t, 100, p.Stat(stat.Hunger))
	assert.Equal(t, 0, p.Stat(stat.Anxiety))
	assert.Equal(t, 100, p.Stat(stat.Happiness))
	assert.Equal(t, 0, p.Stat(stat.Obedience))
	assert.Equal(t, 100, p.Stat(stat.Health))

	err := mgr.Perform(context.Background(), p, "poison")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nan")
	assert.Equal(t, 100, p.Stat(stat.Hunger), "a rejected call leaves the pet unchanged")
}

func TestManager_Perform_UnknownAction(t *testing.T) {
	mgr, _ := newTestManager(t, 0)
	p := newTestPet(t)
	assert.ErrorIs(t, mgr.Perform(context.Background(), p, "feed"), scripting.ErrUnknownAction)

	require.NoError(t, mgr.Load(context.Background(), writeTempLua(t, map[string]string{"x.lua": `value = 3`})))
	assert.Empty(t, mgr.Actions(), "non-function globals are not actions")
	assert.ErrorIs(t, mgr.Perform(context.Background(), p, "value"), scripting.ErrUnknownAction)
	assert.ErrorIs(t, mgr.Perform(context.Background(), p, "print"), scripting.ErrUnknownAction)
}

func TestManager_Perform_RuntimeError_WarnsAndWraps(t *testing.T) {
	mgr, logs := newTestManager(t, 0)
	require.NoError(t, mgr.Load(context.Background(), writeTempLua(t, map[string]string{"bad.lua": `
		function bad() error("intentional error") end
		function badstat() engine.pet.stat("mana") end`})))

	p := newTestPet(t)
	err := mgr.Perform(context.Background(), p, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intentional error")
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())

	err = mgr.Perform(context.Background(), p, "badstat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stat kind")
}

func TestManager_Perform_InstructionLimit(t *testing.T) {
	mgr, _ := newTestManager(t, 1000)
	require.NoError(t, mgr.Load(context.Background(), writeTempLua(t, map[string]string{"spin.lua": `
		function spin() while true do end end
		function ok() engine.pet.adjust("energy", -1) end`})))
	p := newTestPet(t)
	assert.ErrorIs(t, mgr.Perform(context.Background(), p, "spin"), scripting.ErrInstructionLimit)
	require.NoError(t, mgr.Perform(context.Background(), p, "ok"), "budget is per action")
	assert.Equal(t, 99, p.Stat(stat.Energy))
}

func TestManager_Load_TopLevelCannotTouchPet(t *testing.T) {
	mgr, _ := newTestManager(t, 0)
	err := mgr.Load(context.Background(), writeTempLua(t, map[string]string{"eager.lua": `engine.pet.stat("energy")`}))
	assert.ErrorContains(t, err, "no pet bound")
}

func TestManager_Load_ErrorKeepsPreviousScripts(t *testing.T) {
	mgr, _ := newTestManager(t, 0)
	require.NoError(t, mgr.Load(context.Background(), writeTempLua(t, map[string]string{"a.lua": `function pat() end`})))
	err := mgr.Load(context.Background(), writeTempLua(t, map[string]string{"bad.lua": `function (`}))
	require.Error(t, err)
	assert.Equal(t, []string{"pat"}, mgr.Actions())
}

func TestManager_Load_MissingDir(t *testing.T) {
	mgr, _ := newTestManager(t, 0)
	assert.Error(t, mgr.Load(context.Background(), "/nonexistent/scripts"))
}

func TestManager_DiceAndLog(t *testing.T) {
	mgr, logs := newTestManager(t, 0)
	require.NoError(t, mgr.Load(context.Background(), writeTempLua(t, map[string]string{"d.lua": `
		function roll()
			assert(engine.dice.roll("3d6+2") == 5)
			assert(engine.dice.between(7, 9) == 7)
			engine.log("rolled")
		end
		function badroll() engine.dice.roll("nope") end`})))
	p := newTestPet(t)
	require.NoError(t, mgr.Perform(context.Background(), p, "roll"))
	entries := logs.FilterMessage("care script").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rolled", entries[0].ContextMap()["text"])
	assert.Equal(t, "Rex", entries[0].ContextMap()["pet"])
	assert.Error(t, mgr.Perform(context.Background(), p, "badroll"))
}
