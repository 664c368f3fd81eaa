package models

import "errors"

var (
	ErrDuplicateExercise = errors.New("exercise already exists")
	ErrDuplicateTemplate = errors.New("template already exists")
	ErrNoActiveProgram   = errors.New("no active program found")
	ErrNoProgramWorkout  = errors.New("no program workout defined for rotation type")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrTemplateNotFound  = errors.New("template not found")
)
