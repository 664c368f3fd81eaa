package models

// TemplateExercise is one row of a template's exercise table.
type TemplateExercise struct {
	ExerciseID string `json:"exerciseId"`
	Sets       int    `json:"sets"`
	Reps       string `json:"reps"`
}

// WorkoutTemplate is a reusable workout blueprint, one document per
// template, identified by its filename-derived slug.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Exercises []TemplateExercise `json:"exercises"`
}
