package workout

// DurationOfSteps returns the total seconds of a step sequence, expanding
// repetitions. Rest between reps is charged count-1 times.
func DurationOfSteps(steps Steps) int {
	total := 0
	for _, step := range steps {
		switch s := step.(type) {
		case Exercise:
			total += s.DurationSeconds
		case Rest:
			total += s.DurationSeconds
		case Repetition:
			if s.Count <= 0 {
				continue
			}
			total += s.Count*DurationOfSteps(s.Steps) + (s.Count-1)*s.RestBetweenRepsSeconds
		default:
			panic(unexpectedStep(step))
		}
	}
	return total
}

// DurationOfSection returns the total seconds of one section.
func DurationOfSection(s Section) int {
	return DurationOfSteps(s.Steps)
}

// DurationOfWorkout returns the total seconds of a workout. Sections take
// precedence over top-level steps; a workout with neither lasts 0 seconds.
func DurationOfWorkout(w Workout) int {
	if w.Sections != nil {
		total := 0
		for _, s := range w.Sections {
			total += DurationOfSection(s)
		}
		return total
	}
	return DurationOfSteps(w.Steps)
}
