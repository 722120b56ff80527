package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/claude/workoutguide/internal/catalog"
	"github.com/claude/workoutguide/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List the workouts in the catalog with id, name, muscle groups and total duration."),
	mcp.WithString("muscle_group", mcp.Description("Only list workouts training this muscle group (case-insensitive, e.g. 'legs')")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Preview a workout: its steps or sections, the total duration and each section's duration."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout id as returned by list_workouts")),
)

var toolGetWorkoutPlan = mcp.NewTool("get_workout_plan",
	mcp.WithDescription("The flattened step sequence of a workout as a run walks it: repetitions expanded, rests between repetitions inserted, each step with its duration in M:SS and its section name."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout id as returned by list_workouts")),
)

// --- Tool handlers ---

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := h.ds.ListWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp list_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if group := req.GetString("muscle_group", ""); group != "" {
		summaries = filterByMuscleGroup(summaries, group)
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, errResult := h.lookup(ctx, req, "get_workout")
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(workout.NewPreview(w))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, errResult := h.lookup(ctx, req, "get_workout_plan")
	if errResult != nil {
		return errResult, nil
	}

	total := workout.DurationOfWorkout(w)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"id":           w.ID,
		"name":         w.Name,
		"totalSeconds": total,
		"totalDisplay": workout.FormatDuration(total),
		"steps":        workout.Plan(w),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// lookup resolves the required id argument. A non-nil result is the error to
// hand back to the client.
func (h *handlers) lookup(ctx context.Context, req mcp.CallToolRequest, tool string) (workout.Workout, *mcp.CallToolResult) {
	id, err := req.RequireString("id")
	if err != nil {
		return workout.Workout{}, mcp.NewToolResultError("id parameter is required")
	}

	w, err := h.ds.GetWorkout(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return workout.Workout{}, mcp.NewToolResultError("workout not found: " + id)
	}
	if err != nil {
		h.log.Error("mcp "+tool, "id", id, "error", err)
		return workout.Workout{}, mcp.NewToolResultError("query failed: " + err.Error())
	}
	return w, nil
}

func filterByMuscleGroup(summaries []workout.Summary, group string) []workout.Summary {
	out := make([]workout.Summary, 0, len(summaries))
	for _, s := range summaries {
		for _, g := range s.MuscleGroups {
			if strings.EqualFold(g, group) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
