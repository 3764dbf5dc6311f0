package condition

import "github.com/cory-johannsen/kennel/internal/game/stat"

var builtin = []*Rule{
	{ID: "hungry", Name: "Hungry", Stat: stat.Hunger, Min: AtLeast(70), Description: "Is hungry"},
	{ID: "starving", Name: "Starving", Stat: stat.Hunger, Min: AtLeast(90), Description: "Is malnourished"},
	{ID: "tired", Name: "Tired", Stat: stat.Energy, Max: AtMost(30), Description: "Is tired"},
	{ID: "exhausted", Name: "Exhausted", Stat: stat.Energy, Max: AtMost(10), Description: "Cannot move"},
	{ID: "happy", Name: "Happy", Stat: stat.Happiness, Min: AtLeast(80), Description: "Is very happy"},
	{ID: "sad", Name: "Sad", Stat: stat.Happiness, Max: AtMost(40), Description: "Looks down"},
	{ID: "depressed", Name: "Depressed", Stat: stat.Happiness, Max: AtMost(20), Description: "Has no energy for anything"},
	{ID: "sick", Name: "Sick", Stat: stat.Health, Max: AtMost(30), Description: "Looks sick"},
	{ID: "critically_ill", Name: "Critically Ill", Stat: stat.Health, Max: AtMost(10), Description: "Is in very bad shape"},
	{ID: "dirty", Name: "Dirty", Stat: stat.Cleanliness, Max: AtMost(30), Description: "Needs a bath"},
	{ID: "infested", Name: "Infested", Stat: stat.Cleanliness, Max: AtMost(10), Description: "Is infested with parasites"},
	{ID: "anxious", Name: "Anxious", Stat: stat.Anxiety, Min: AtLeast(70), Description: "Is restless"},
	{ID: "stressed", Name: "Stressed", Stat: stat.Anxiety, Min: AtLeast(90), Description: "Is under a lot of strain"},
	{ID: "rebellious", Name: "Rebellious", Stat: stat.Obedience, Max: AtMost(30), Description: "Ignores commands"},
	{ID: "lonely", Name: "Lonely", Stat: stat.Attachment, Max: AtMost(30), Description: "Feels lonely"},
	{ID: "clingy", Name: "Clingy", Stat: stat.Attachment, Min: AtLeast(80), Description: "Depends heavily on the owner"},
	{ID: "scared", Name: "Scared", Stat: stat.Anxiety, Min: AtLeast(70), Description: "Is fearful"},
	{ID: "aggressive", Name: "Aggressive", Stat: stat.Sociability, Max: AtMost(20), Description: "Behaves aggressively"},
}

// DefaultRegistry returns a new Registry holding the built-in condition rules.
//
// Postcondition: Len() == 18; each call returns an independent Registry.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, rule := range builtin {
		if err := reg.Register(rule.Clone()); err != nil {
			panic("condition: invalid built-in rule: " + err.Error())
		}
	}
	return reg
}
