// Package runner steps through a flattened workout with a countdown clock.
//
// The Runner owns no timer. Whoever drives it calls Tick once per elapsed
// second; that keeps the state machine testable without wall-clock waits.
package runner

import (
	"errors"
	"fmt"

	"github.com/claude/workoutguide/internal/workout"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// runner's current state, e.g. Skip after the run has finished.
var ErrInvalidTransition = errors.New("invalid runner transition")

// State is the lifecycle state of a run.
type State string

const (
	StateNotStarted State = "not_started"
	StateRunning    State = "running"
	StatePaused     State = "paused"
	StateFinished   State = "finished"
)

// Outcome tells how a finished run ended.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCompleted Outcome = "completed"
	OutcomeAborted   Outcome = "aborted"
)

// Runner is the state machine for one run of one workout. It is not safe for
// concurrent use and is not reused: start a new Runner for every run.
type Runner struct {
	workout workout.Workout
	steps   []workout.FlattenedStep

	state     State
	outcome   Outcome
	index     int
	remaining int

	done chan struct{}
}

// New returns a Runner for w in the NotStarted state.
func New(w workout.Workout) *Runner {
	return &Runner{
		workout: w,
		state:   StateNotStarted,
		done:    make(chan struct{}),
	}
}

// Start flattens the workout and begins the first step. A workout with no
// runnable steps, or only zero-length ones, finishes immediately.
func (r *Runner) Start() error {
	if r.state != StateNotStarted {
		return r.reject("start")
	}
	r.steps = workout.Flatten(r.workout)
	r.state = StateRunning
	if len(r.steps) == 0 {
		r.finish(OutcomeCompleted)
		return nil
	}
	r.enter(0)
	return nil
}

// Tick advances the clock by one second. It reports whether anything
// changed; ticks outside the Running state are ignored.
func (r *Runner) Tick() bool {
	if r.state != StateRunning {
		return false
	}
	r.remaining--
	if r.remaining <= 0 {
		r.advance()
	}
	return true
}

// Skip expires the current step right away, as if its countdown had run out.
func (r *Runner) Skip() error {
	if !r.active() {
		return r.reject("skip")
	}
	r.advance()
	return nil
}

// Previous goes back to the nearest earlier step with a non-zero duration
// and restarts its countdown. On the first such step it restarts the step.
func (r *Runner) Previous() error {
	if !r.active() {
		return r.reject("previous")
	}
	for i := r.index - 1; i >= 0; i-- {
		if r.steps[i].Step.Seconds() > 0 {
			r.index = i
			r.remaining = r.steps[i].Step.Seconds()
			return nil
		}
	}
	r.remaining = r.steps[r.index].Step.Seconds()
	return nil
}

// Pause stops the clock; ticks are ignored until Resume.
func (r *Runner) Pause() error {
	if r.state != StateRunning {
		return r.reject("pause")
	}
	r.state = StatePaused
	return nil
}

// Resume restarts the clock after Pause.
func (r *Runner) Resume() error {
	if r.state != StatePaused {
		return r.reject("resume")
	}
	r.state = StateRunning
	return nil
}

// Abort ends the run early. The caller is expected to have confirmed it with
// the user. No progress is kept.
func (r *Runner) Abort() error {
	if !r.active() {
		return r.reject("abort")
	}
	r.finish(OutcomeAborted)
	return nil
}

// Done is closed when the run finishes, naturally or by Abort.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// State returns the current lifecycle state.
func (r *Runner) State() State { return r.state }

// Outcome returns how the run ended, or OutcomeNone while it is still going.
func (r *Runner) Outcome() Outcome { return r.outcome }

// Steps returns the flattened sequence being run. The slice must not be modified.
func (r *Runner) Steps() []workout.FlattenedStep { return r.steps }

// Workout returns the workout this runner was created for.
func (r *Runner) Workout() workout.Workout { return r.workout }

func (r *Runner) active() bool {
	return r.state == StateRunning || r.state == StatePaused
}

// advance moves past the current step: to the next one, or to Finished when
// the current step is the last.
func (r *Runner) advance() {
	if r.index >= len(r.steps)-1 {
		r.remaining = 0
		r.finish(OutcomeCompleted)
		return
	}
	r.enter(r.index + 1)
}

// enter makes step i current. Zero-length steps are passed through in the
// same call, so a countdown of 0 is never left standing.
func (r *Runner) enter(i int) {
	for ; i < len(r.steps); i++ {
		r.index = i
		r.remaining = r.steps[i].Step.Seconds()
		if r.remaining > 0 {
			return
		}
	}
	r.index = len(r.steps) - 1
	r.remaining = 0
	r.finish(OutcomeCompleted)
}

func (r *Runner) finish(o Outcome) {
	r.state = StateFinished
	r.outcome = o
	close(r.done)
}

func (r *Runner) reject(op string) error {
	return fmt.Errorf("%s while %s: %w", op, r.state, ErrInvalidTransition)
}
