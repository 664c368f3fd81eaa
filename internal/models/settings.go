package models

// ExertionMetric names the per-set effort scale recorded in set tables.
type ExertionMetric string

const (
	ExertionRPE ExertionMetric = "rpe" // rate of perceived exertion, 0-10
	ExertionRIR ExertionMetric = "rir" // reps in reserve
)

// Settings carries the vault layout and tracking preferences. A Settings
// value is passed explicitly into every parser and catalog constructor.
type Settings struct {
	WorkoutsFolder  string
	ExercisesFolder string
	TemplatesFolder string
	WorkoutTypes    []string
	WeightUnit      string // kg or lbs
	TrackExertion   bool   // include the exertion column in generated tables
	Exertion        ExertionMetric
}

// ExertionLabel returns the column header for the configured metric.
func (s Settings) ExertionLabel() string {
	if s.Exertion == ExertionRIR {
		return "RIR"
	}
	return "RPE"
}

// DefaultSettings mirrors the layout a fresh vault is seeded with.
func DefaultSettings() Settings {
	return Settings{
		WorkoutsFolder:  "Workouts",
		ExercisesFolder: "Workouts/Exercises",
		TemplatesFolder: "Workouts/Templates",
		WorkoutTypes:    []string{"push", "pull", "legs", "upper", "lower", "full-body"},
		WeightUnit:      "lbs",
		TrackExertion:   true,
		Exertion:        ExertionRPE,
	}
}
