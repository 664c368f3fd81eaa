package models

// WorkoutSet is one recorded set. Exertion is RPE or RIR depending on
// settings; nil when not recorded.
type WorkoutSet struct {
	Weight   float64  `json:"weight"`
	Reps     int      `json:"reps"`
	Exertion *float64 `json:"exertion,omitempty"`
}

// Empty reports whether the set carries no data. Empty sets are filtered
// out when a workout is generated or saved.
func (s WorkoutSet) Empty() bool {
	return s.Weight == 0 && s.Reps == 0
}

// WorkoutExercise is one exercise entry within a logged session. The
// ExerciseID is a reference by slug and is not checked against the catalog.
type WorkoutExercise struct {
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
}

// Workout is a single logged training session, persisted as one document.
type Workout struct {
	Date      string            `json:"date"` // YYYY-MM-DD, doubles as sort key
	Type      string            `json:"type"` // push, pull, legs, ...
	Duration  int               `json:"duration,omitempty"` // minutes
	Exercises []WorkoutExercise `json:"exercises"`
	Notes     string            `json:"notes,omitempty"`
}

// Exercise returns the entry for the given exercise ID, or nil.
func (w *Workout) Exercise(exerciseID string) *WorkoutExercise {
	for i := range w.Exercises {
		if w.Exercises[i].ExerciseID == exerciseID {
			return &w.Exercises[i]
		}
	}
	return nil
}

// FileName returns the document name a workout is stored under.
func (w *Workout) FileName() string {
	return w.Date + "-" + w.Type + ".md"
}

// ProgressionPoint is one session's aggregate for a single exercise,
// used for chronological charting.
type ProgressionPoint struct {
	Date        string  `json:"date"`
	MaxWeight   float64 `json:"maxWeight"`
	MaxReps     int     `json:"maxReps"`
	TotalVolume float64 `json:"totalVolume"`
}

// Performance is the sets an exercise was last performed with.
type Performance struct {
	Date string       `json:"date"`
	Sets []WorkoutSet `json:"sets"`
}
