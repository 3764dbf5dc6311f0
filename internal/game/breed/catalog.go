package breed

import "github.com/cory-johannsen/kennel/internal/game/stat"

// deltas builds a modifier table. Happiness is never skewed by breed.
func deltas(energy, hunger, health, cleanliness, sleep, anxiety, obedience, sociability, attachment float64) map[stat.Kind]float64 {
	return map[stat.Kind]float64{
		stat.Energy:      energy,
		stat.Hunger:      hunger,
		stat.Health:      health,
		stat.Cleanliness: cleanliness,
		stat.Sleep:       sleep,
		stat.Anxiety:     anxiety,
		stat.Obedience:   obedience,
		stat.Sociability: sociability,
		stat.Attachment:  attachment,
	}
}

// builtin is the fixed breed catalog, grouped by the trait each breed is
// known for.
var builtin = []*Profile{
	// high energy
	{ID: "border_collie", Name: "Border Collie", Modifiers: deltas(0.5, 0.1, 0.0, -0.1, -0.3, -0.1, 0.5, 0.3, 0.1)},
	{ID: "alaskan_malamute", Name: "Alaskan Malamute", Modifiers: deltas(0.4, 0.1, 0.1, -0.2, -0.4, -0.2, -0.2, 0.5, -0.3)},
	{ID: "dalmatian", Name: "Dalmatian", Modifiers: deltas(0.45, 0.2, 0.0, -0.1, -0.2, -0.05, -0.1, 0.4, -0.2)},

	// big appetite
	{ID: "labrador", Name: "Labrador", Modifiers: deltas(0.3, 0.5, 0.1, 0.0, -0.1, -0.1, 0.3, 0.3, 0.5)},
	{ID: "beagle", Name: "Beagle", Modifiers: deltas(0.1, 0.5, 0.05, -0.1, -0.1, 0.2, -0.2, 0.4, 0.3)},
	{ID: "bulldog", Name: "Bulldog", Modifiers: deltas(-0.3, 0.4, 0.3, 0.0, 0.3, 0.05, -0.3, -0.2, 0.4)},

	// robust health
	{ID: "australian_cattle_dog", Name: "Australian Cattle Dog", Modifiers: deltas(0.5, 0.1, 0.5, 0.1, -0.3, -0.1, 0.4, 0.1, 0.2)},
	{ID: "shiba_inu", Name: "Shiba Inu", Modifiers: deltas(0.1, 0.0, 0.5, 0.5, 0.1, 0.4, -0.4, -0.1, -0.5)},

	// gets dirty fast, or stays clean
	{ID: "golden_retriever", Name: "Golden Retriever", Modifiers: deltas(0.2, 0.3, 0.2, -0.3, -0.1, -0.1, 0.4, 0.5, 0.5)},
	{ID: "german_shepherd", Name: "German Shepherd", Modifiers: deltas(0.3, 0.2, 0.4, -0.2, -0.1, -0.2, 0.5, 0.3, 0.4)},
	{ID: "poodle", Name: "Poodle", Modifiers: deltas(-0.1, -0.2, 0.1, 0.5, 0.1, 0.0, 0.5, 0.3, 0.3)},

	// needs lots of rest
	{ID: "basset_hound", Name: "Basset Hound", Modifiers: deltas(-0.2, 0.2, 0.3, 0.1, 0.5, -0.1, -0.2, -0.1, 0.5)},
	{ID: "great_dane", Name: "Great Dane", Modifiers: deltas(-0.4, 0.3, 0.2, 0.1, 0.5, -0.2, 0.0, 0.1, 0.4)},
	{ID: "chihuahua", Name: "Chihuahua", Modifiers: deltas(0.2, -0.3, -0.2, 0.3, -0.5, 0.5, -0.3, 0.1, 0.5)},

	// high or low anxiety
	{ID: "jack_russell_terrier", Name: "Jack Russell Terrier", Modifiers: deltas(0.5, 0.2, -0.1, -0.1, -0.4, 0.5, 0.1, 0.5, -0.3)},
	{ID: "dachshund", Name: "Dachshund", Modifiers: deltas(0.1, 0.3, 0.0, 0.0, 0.1, 0.4, -0.1, 0.2, 0.4)},
	{ID: "saint_bernard", Name: "Saint Bernard", Modifiers: deltas(-0.5, 0.0, 0.5, 0.3, 0.4, -0.5, 0.3, -0.1, 0.5)},
	{ID: "akita_inu", Name: "Akita Inu", Modifiers: deltas(-0.1, -0.2, 0.4, 0.1, 0.3, -0.4, 0.3, -0.3, -0.5)},
}

// DefaultRegistry returns a new Registry holding the built-in breeds.
//
// Postcondition: Len() == 18; each call returns an independent Registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range builtin {
		if err := r.Register(p.Clone()); err != nil {
			panic("breed: invalid built-in profile: " + err.Error())
		}
	}
	return r
}
