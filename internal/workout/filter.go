package workout

import "regexp"

// testWorkoutID matches catalog entries that only exist for development,
// e.g. "test-1". Ids like "test" or "test-workout" are real workouts.
var testWorkoutID = regexp.MustCompile(`^test-\d+$`)

// FilterWorkouts drops test-only workouts unless dev is set. Surviving
// entries keep their order; in dev mode ws is returned as is.
func FilterWorkouts(ws []Workout, dev bool) []Workout {
	if dev {
		return ws
	}
	out := make([]Workout, 0, len(ws))
	for _, w := range ws {
		if testWorkoutID.MatchString(w.ID) {
			continue
		}
		out = append(out, w)
	}
	return out
}
