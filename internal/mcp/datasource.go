package mcp

import (
	"context"

	"github.com/claude/workoutguide/internal/catalog"
	"github.com/claude/workoutguide/internal/workout"
)

// DataSource abstracts the catalog for MCP tools. Both *catalog.Catalog
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListWorkouts(ctx context.Context) ([]workout.Summary, error)
	GetWorkout(ctx context.Context, id string) (workout.Workout, error)
}

// Compile-time check: *catalog.Catalog satisfies DataSource.
var _ DataSource = (*catalog.Catalog)(nil)
