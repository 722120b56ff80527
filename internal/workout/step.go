package workout

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownStepType is returned when a step's "type" tag is missing or is not
// one of exercise, rest or repetition.
var ErrUnknownStepType = errors.New("unknown step type")

// Kind is the JSON discriminator of a step.
type Kind string

const (
	KindExercise   Kind = "exercise"
	KindRest       Kind = "rest"
	KindRepetition Kind = "repetition"
)

// Step is one of Exercise, Rest or Repetition. The set is closed: the
// unexported marker method keeps other packages from adding variants, so a
// type switch over the three cases is exhaustive.
type Step interface {
	Kind() Kind
	isStep()
}

// Runnable is a step the runner can count down: Exercise or Rest.
type Runnable interface {
	Step
	Seconds() int
}

// Exercise is a timed exercise.
type Exercise struct {
	Name            string
	DurationSeconds int
	Description     string
}

// Rest is a timed pause.
type Rest struct {
	DurationSeconds int
}

// Repetition repeats Steps Count times, with an optional rest inserted
// between consecutive passes (never after the last).
type Repetition struct {
	Count                  int
	Steps                  Steps
	RestBetweenRepsSeconds int
}

func (Exercise) Kind() Kind   { return KindExercise }
func (Rest) Kind() Kind       { return KindRest }
func (Repetition) Kind() Kind { return KindRepetition }

func (Exercise) isStep()   {}
func (Rest) isStep()       {}
func (Repetition) isStep() {}

func (e Exercise) Seconds() int { return e.DurationSeconds }
func (r Rest) Seconds() int     { return r.DurationSeconds }

// Steps is an ordered step sequence that decodes the tagged JSON form.
type Steps []Step

// wireStep is the union of all step fields as they appear in workouts.json.
type wireStep struct {
	Type            Kind   `json:"type"`
	Name            string `json:"name,omitempty"`
	Duration        *int   `json:"duration,omitempty"`
	Description     string `json:"description,omitempty"`
	Count           *int   `json:"count,omitempty"`
	Steps           Steps  `json:"steps,omitempty"`
	RestBetweenReps *int   `json:"restBetweenReps,omitempty"`
}

func (s *Steps) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = nil
		return nil
	}
	out := make(Steps, 0, len(raw))
	for i, msg := range raw {
		step, err := decodeStep(msg)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, step)
	}
	*s = out
	return nil
}

func decodeStep(data []byte) (Step, error) {
	var w wireStep
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	switch w.Type {
	case KindExercise:
		return Exercise{Name: w.Name, DurationSeconds: deref(w.Duration), Description: w.Description}, nil
	case KindRest:
		return Rest{DurationSeconds: deref(w.Duration)}, nil
	case KindRepetition:
		return Repetition{Count: deref(w.Count), Steps: w.Steps, RestBetweenRepsSeconds: deref(w.RestBetweenReps)}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStepType, w.Type)
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func intPtr(v int) *int { return &v }

func (e Exercise) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireStep{Type: KindExercise, Name: e.Name, Duration: intPtr(e.DurationSeconds), Description: e.Description})
}

func (r Rest) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireStep{Type: KindRest, Duration: intPtr(r.DurationSeconds)})
}

func (r Repetition) MarshalJSON() ([]byte, error) {
	w := wireStep{Type: KindRepetition, Count: intPtr(r.Count), Steps: r.Steps}
	if r.RestBetweenRepsSeconds != 0 {
		w.RestBetweenReps = intPtr(r.RestBetweenRepsSeconds)
	}
	return json.Marshal(w)
}

// unexpectedStep reports a Step value outside the closed set. Only a nil Step
// can get here, which is a programming error in the caller.
func unexpectedStep(s Step) string {
	return fmt.Sprintf("workout: unexpected step %T", s)
}
