package workoutguide

import "embed"

// WebFS holds the browser front end and the default workouts.json.
//
//go:embed web
var WebFS embed.FS
