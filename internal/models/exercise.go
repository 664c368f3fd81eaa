package models

// Muscles groups the muscle tags an exercise trains.
type Muscles struct {
	Primary   []string `json:"primary" yaml:"primary"`
	Secondary []string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Exercise is a catalog entry describing one movement. Identity is the ID
// slug; the rest is descriptive and never validated against other entries.
type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Muscles      Muscles  `json:"muscles"`
	Type         string   `json:"type"`      // compound or isolation
	Equipment    string   `json:"equipment"` // barbell, dumbbell, cable, ...
	Alternatives []string `json:"alternatives,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// MuscleGroups lists the muscle tags used for categorization.
var MuscleGroups = []string{
	"chest", "back", "shoulders", "biceps", "triceps", "forearms",
	"quads", "hamstrings", "glutes", "calves", "abs", "traps", "lats",
}

// EquipmentTypes lists the recognized equipment tags.
var EquipmentTypes = []string{
	"barbell", "dumbbell", "cable", "machine", "bodyweight",
	"kettlebell", "bands", "ez-bar", "smith-machine", "other",
}
