package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/kennel/internal/frontend/render"
	"github.com/cory-johannsen/kennel/internal/game/breed"
	"github.com/cory-johannsen/kennel/internal/game/condition"
	"github.com/cory-johannsen/kennel/internal/game/dice"
	"github.com/cory-johannsen/kennel/internal/game/pet"
	"github.com/cory-johannsen/kennel/internal/game/stat"
)

func TestStatLine_Format(t *testing.T) {
	assert.Equal(t, "🍖 Hunger: 42/100", render.Renderer{}.StatLine(stat.Hunger, 42))
}

func TestStatLine_ColorGrades(t *testing.T) {
	r := render.Renderer{Color: true}
	assert.Contains(t, r.StatLine(stat.Energy, 10), render.Red+"10"+render.Reset)
	assert.Contains(t, r.StatLine(stat.Energy, 90), render.Green+"90")
	assert.Contains(t, r.StatLine(stat.Hunger, 90), render.Red+"90", "high hunger is bad")
	assert.Contains(t, r.StatLine(stat.Anxiety, 50), render.Yellow+"50")
}

func TestConditionLine_None(t *testing.T) {
	assert.Equal(t, "Conditions: None", render.Renderer{}.ConditionLine(nil))
}

func TestConditionLine_Descriptions(t *testing.T) {
	reg := condition.DefaultRegistry()
	hungry, _ := reg.Get("hungry")
	dirty, _ := reg.Get("dirty")
	assert.Equal(t, "Conditions: Is hungry, Needs a bath", render.Renderer{}.ConditionLine([]*condition.Rule{hungry, dirty}))
}

func TestStatus(t *testing.T) {
	p, err := pet.New("Rex", "beagle", 3, pet.WithSource(dice.Fixed(0)))
	require.NoError(t, err)
	require.NoError(t, p.SetAge(3.5))
	out := render.Renderer{}.Status(p.Snapshot())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, int(stat.Count)+2)
	assert.Equal(t, "Rex the Beagle, 3 years 6 months (adult)", lines[0])
	assert.Equal(t, "  ⚡ Energy: 100/100", lines[1])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "Conditions: "))
}

func TestHeader_Singular(t *testing.T) {
	s := pet.Snapshot{Name: "Bo", BreedName: "Poodle", Years: 1, Months: 1, Stage: pet.Puppy}
	assert.Equal(t, "Bo the Poodle, 1 year 1 month (puppy)", render.Renderer{}.Header(s))
}

func TestColor_StripsToPlain(t *testing.T) {
	p, err := pet.New("Rex", "poodle", 10, pet.WithSource(dice.Fixed(5)))
	require.NoError(t, err)
	s := p.Snapshot()
	assert.Equal(t, render.Renderer{}.Status(s), render.StripANSI(render.Renderer{Color: true}.Status(s)))
}

func TestBreedsAndRules(t *testing.T) {
	breeds := render.Renderer{}.Breeds(breed.DefaultRegistry().All())
	assert.Len(t, strings.Split(strings.TrimSuffix(breeds, "\n"), "\n"), 18)
	assert.Contains(t, breeds, "energy +0.50")
	assert.NotContains(t, breeds, "happiness")

	rules := render.Renderer{}.Rules(condition.DefaultRegistry().All())
	assert.Contains(t, rules, "hunger >= 70")
	assert.Contains(t, rules, "energy <= 10")
}

func TestBreedsAndRules_ColorKeepsColumns(t *testing.T) {
	profiles := breed.DefaultRegistry().All()
	assert.Equal(t, render.Renderer{}.Breeds(profiles), render.StripANSI(render.Renderer{Color: true}.Breeds(profiles)))

	rules := condition.DefaultRegistry().All()
	assert.Equal(t, render.Renderer{}.Rules(rules), render.StripANSI(render.Renderer{Color: true}.Rules(rules)))
}

func TestPropertyStatLine_PlainFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.SampledFrom(stat.All()).Draw(t, "kind")
		v := rapid.IntRange(stat.Min, stat.Max).Draw(t, "value")
		colored := render.Renderer{Color: true}.StatLine(k, v)
		plain := render.Renderer{}.StatLine(k, v)
		assert.Equal(t, plain, render.StripANSI(colored))
		assert.True(t, strings.HasSuffix(plain, "/100"))
		assert.True(t, strings.HasPrefix(plain, k.Glyph()+" "+k.Label()+": "))
	})
}
