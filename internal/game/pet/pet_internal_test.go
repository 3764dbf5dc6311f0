package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/kennel/internal/game/dice"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

func TestRecompute_SkipsWhenUnchanged(t *testing.T) {
	calls := 0
	p, err := New("Rex", "beagle", 5, WithSource(dice.Fixed(0)), WithConditionObserver(func(_, _ []string) { calls++ }))
	require.NoError(t, err)

	assert.False(t, p.recompute())
	assert.False(t, p.recompute())
	assert.Zero(t, calls)

	p.values[stat.Energy] = 5
	assert.True(t, p.recompute())
	assert.False(t, p.recompute())
	assert.Equal(t, 1, calls)
	assert.True(t, p.HasCondition("exhausted"))
}

func TestAccessors_DefaultsForMissingEntries(t *testing.T) {
	p, err := New("Rex", "beagle", 5, WithSource(dice.Fixed(0)))
	require.NoError(t, err)
	delete(p.values, stat.Sleep)
	delete(p.multipliers, stat.Sleep)
	assert.Equal(t, 0, p.Stat(stat.Sleep))
	assert.Equal(t, 1.0, p.Multiplier(stat.Sleep))
}
