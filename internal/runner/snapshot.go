package runner

import "github.com/claude/workoutguide/internal/workout"

// Snapshot is a read-only view of a runner for presentation layers.
type Snapshot struct {
	State            State                  `json:"state"`
	Outcome          Outcome                `json:"outcome,omitempty"`
	CurrentIndex     int                    `json:"currentIndex"`
	SecondsRemaining int                    `json:"secondsRemaining"`
	Current          *workout.FlattenedStep `json:"current,omitempty"`
	Next             *workout.FlattenedStep `json:"next,omitempty"`
	TotalSteps       int                    `json:"totalSteps"`
	TimeLeftSeconds  int                    `json:"timeLeftSeconds"`
}

// Snapshot captures the runner's current position. Current is nil before
// Start and for workouts with no runnable steps.
func (r *Runner) Snapshot() Snapshot {
	s := Snapshot{
		State:            r.state,
		Outcome:          r.outcome,
		CurrentIndex:     r.index,
		SecondsRemaining: r.remaining,
		TotalSteps:       len(r.steps),
	}
	if len(r.steps) == 0 {
		return s
	}
	cur := r.steps[r.index]
	s.Current = &cur
	if r.state == StateFinished {
		return s
	}
	s.TimeLeftSeconds = r.remaining
	for _, fs := range r.steps[r.index+1:] {
		s.TimeLeftSeconds += fs.Step.Seconds()
	}
	if r.index+1 < len(r.steps) {
		next := r.steps[r.index+1]
		s.Next = &next
	}
	return s
}
