package workout

// FlattenedStep is one atomic step of a run, tagged with the section it came
// from. SectionName is nil for workouts without sections.
type FlattenedStep struct {
	Step        Runnable `json:"step"`
	SectionName *string  `json:"sectionName,omitempty"`
}

// Flatten expands sections and repetitions into the linear sequence the
// runner walks. The result is freshly allocated on every call and the input
// is never modified.
func Flatten(w Workout) []FlattenedStep {
	out := []FlattenedStep{}
	if w.Sections != nil {
		for _, s := range w.Sections {
			name := s.Name
			out = flattenSteps(out, s.Steps, &name)
		}
		return out
	}
	return flattenSteps(out, w.Steps, nil)
}

func flattenSteps(out []FlattenedStep, steps Steps, section *string) []FlattenedStep {
	for _, step := range steps {
		switch s := step.(type) {
		case Exercise:
			out = append(out, FlattenedStep{Step: s, SectionName: section})
		case Rest:
			out = append(out, FlattenedStep{Step: s, SectionName: section})
		case Repetition:
			for i := 0; i < s.Count; i++ {
				out = flattenSteps(out, s.Steps, section)
				if i < s.Count-1 && s.RestBetweenRepsSeconds > 0 {
					out = append(out, FlattenedStep{Step: Rest{DurationSeconds: s.RestBetweenRepsSeconds}, SectionName: section})
				}
			}
		default:
			panic(unexpectedStep(step))
		}
	}
	return out
}
