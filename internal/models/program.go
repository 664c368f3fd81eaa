package models

// ProgramExercise is one prescription row in a program workout table.
type ProgramExercise struct {
	ExerciseID  string `json:"exerciseId"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"` // "6-8", "10-12", "AMRAP", ...
	Progression string `json:"progression,omitempty"` // e.g. "+5lbs at 4x8"
}

// ProgramWorkout is one training-day blueprint within a program.
type ProgramWorkout struct {
	Type      string            `json:"type"`
	Exercises []ProgramExercise `json:"exercises"`
}

// Program is a training program: a rotation of typed workout blueprints.
type Program struct {
	Name     string           `json:"name"`
	Split    []string         `json:"split"` // rotation order, e.g. push, pull, legs
	Started  string           `json:"started,omitempty"` // YYYY-MM-DD
	Workouts []ProgramWorkout `json:"workouts"`
}

// Workout returns the blueprint for the given type, or nil.
func (p *Program) Workout(workoutType string) *ProgramWorkout {
	for i := range p.Workouts {
		if p.Workouts[i].Type == workoutType {
			return &p.Workouts[i]
		}
	}
	return nil
}

// InSplit reports whether the given type is part of the rotation.
func (p *Program) InSplit(workoutType string) bool {
	for _, t := range p.Split {
		if t == workoutType {
			return true
		}
	}
	return false
}

// ExerciseSuggestion pairs a program prescription with the most recent
// matching performance and a computed suggested weight.
type ExerciseSuggestion struct {
	ExerciseID      string       `json:"exerciseId"`
	TargetSets      int          `json:"targetSets"`
	TargetReps      string       `json:"targetReps"`
	SuggestedWeight float64      `json:"suggestedWeight"`
	LastPerformance *Performance `json:"lastPerformance,omitempty"`
	Progression     string       `json:"progression,omitempty"`
}

// WorkoutSuggestion is a derived, non-persisted preview of the next
// prescribed workout. It is rendered directly into a workout document.
type WorkoutSuggestion struct {
	Date        string               `json:"date"`
	Type        string               `json:"type"`
	ProgramName string               `json:"programName"`
	Exercises   []ExerciseSuggestion `json:"exercises"`
}
