package workout

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkout is returned by Validate for workouts the engine cannot run.
var ErrInvalidWorkout = errors.New("invalid workout")

// Section is a named group of steps, e.g. "Warmup".
type Section struct {
	Name  string `json:"name"`
	Steps Steps  `json:"steps"`
}

// Workout is one entry of the catalog. Steps and Sections are optional; a nil
// slice means the field was absent. When both are present, Sections wins.
type Workout struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Steps        Steps     `json:"steps,omitempty"`
	Sections     []Section `json:"sections,omitempty"`
	MuscleGroups []string  `json:"muscleGroups,omitempty"`
}

// Data is the shape of workouts.json.
type Data struct {
	Workouts []Workout `json:"workouts"`
}

// Validate checks the invariants the engine relies on: an id, non-negative
// durations and repetition counts of at least one.
func (w Workout) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidWorkout)
	}
	if w.Sections != nil {
		for i, s := range w.Sections {
			if err := validateSteps(s.Steps); err != nil {
				return fmt.Errorf("%w %q: section %d (%s): %v", ErrInvalidWorkout, w.ID, i, s.Name, err)
			}
		}
		return nil
	}
	if err := validateSteps(w.Steps); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidWorkout, w.ID, err)
	}
	return nil
}

func validateSteps(steps Steps) error {
	for i, step := range steps {
		switch s := step.(type) {
		case Exercise:
			if s.DurationSeconds < 0 {
				return fmt.Errorf("step %d: negative duration %d", i, s.DurationSeconds)
			}
		case Rest:
			if s.DurationSeconds < 0 {
				return fmt.Errorf("step %d: negative duration %d", i, s.DurationSeconds)
			}
		case Repetition:
			if s.Count < 1 {
				return fmt.Errorf("step %d: repetition count %d, want >= 1", i, s.Count)
			}
			if s.RestBetweenRepsSeconds < 0 {
				return fmt.Errorf("step %d: negative rest between reps %d", i, s.RestBetweenRepsSeconds)
			}
			if err := validateSteps(s.Steps); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		default:
			return fmt.Errorf("step %d: %w %T", i, ErrUnknownStepType, step)
		}
	}
	return nil
}
