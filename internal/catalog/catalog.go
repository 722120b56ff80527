package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/claude/workoutguide/internal/workout"
)

// ErrNotFound is returned when a workout id is not in the catalog.
var ErrNotFound = errors.New("workout not found")

// Catalog is the immutable set of workouts loaded for a session.
type Catalog struct {
	workouts []workout.Workout
	byID     map[string]int
}

// New builds a catalog from ws, validating every workout and rejecting
// duplicate ids. The slice is copied.
func New(ws []workout.Workout) (*Catalog, error) {
	c := &Catalog{
		workouts: make([]workout.Workout, 0, len(ws)),
		byID:     make(map[string]int, len(ws)),
	}
	for _, w := range ws {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate workout id %q", w.ID)
		}
		c.byID[w.ID] = len(c.workouts)
		c.workouts = append(c.workouts, w)
	}
	return c, nil
}

// Empty returns a catalog with no workouts.
func Empty() *Catalog {
	c, _ := New(nil)
	return c
}

// Decode reads a workouts.json document and returns the validated catalog.
func Decode(r io.Reader) (*Catalog, error) {
	var data workout.Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c, err := New(data.Workouts)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}

// Filtered returns a new catalog with test-only workouts removed unless dev is set.
func (c *Catalog) Filtered(dev bool) *Catalog {
	out, _ := New(workout.FilterWorkouts(c.workouts, dev))
	return out
}

// Len returns the number of workouts.
func (c *Catalog) Len() int { return len(c.workouts) }

// All returns the workouts in catalog order. The slice must not be modified.
func (c *Catalog) All() []workout.Workout { return c.workouts }

// Get looks a workout up by id.
func (c *Catalog) Get(id string) (workout.Workout, bool) {
	i, ok := c.byID[id]
	if !ok {
		return workout.Workout{}, false
	}
	return c.workouts[i], true
}

// Summaries returns the listing entry of every workout in catalog order.
func (c *Catalog) Summaries() []workout.Summary {
	out := make([]workout.Summary, 0, len(c.workouts))
	for _, w := range c.workouts {
		out = append(out, workout.Summarize(w))
	}
	return out
}

// ListWorkouts returns all workout summaries. Together with GetWorkout it
// lets a Catalog serve as a local data source for the MCP server.
func (c *Catalog) ListWorkouts(_ context.Context) ([]workout.Summary, error) {
	return c.Summaries(), nil
}

// GetWorkout returns the workout with the given id or ErrNotFound.
func (c *Catalog) GetWorkout(_ context.Context, id string) (workout.Workout, error) {
	w, ok := c.Get(id)
	if !ok {
		return workout.Workout{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return w, nil
}
