package workout

// Summary is the catalog listing entry for a workout.
type Summary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	TotalSeconds int      `json:"totalSeconds"`
	TotalDisplay string   `json:"totalDisplay"`
}

// SectionPreview is a section with its own total.
type SectionPreview struct {
	Name         string `json:"name"`
	TotalSeconds int    `json:"totalSeconds"`
	TotalDisplay string `json:"totalDisplay"`
	Steps        Steps  `json:"steps"`
}

// Preview is what the overview screen shows before a run starts. It decodes
// back into a Workout, since the step and section fields keep their names.
type Preview struct {
	Summary
	Steps    Steps            `json:"steps,omitempty"`
	Sections []SectionPreview `json:"sections,omitempty"`
}

// PlanEntry is one flattened step rendered for display.
type PlanEntry struct {
	Index       int    `json:"index"`
	Type        Kind   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Seconds     int    `json:"seconds"`
	Display     string `json:"display"`
	SectionName string `json:"sectionName,omitempty"`
}

// Summarize returns the listing entry for w.
func Summarize(w Workout) Summary {
	total := DurationOfWorkout(w)
	return Summary{
		ID:           w.ID,
		Name:         w.Name,
		MuscleGroups: w.MuscleGroups,
		TotalSeconds: total,
		TotalDisplay: FormatDuration(total),
	}
}

// NewPreview returns the overview of w with per-section totals.
func NewPreview(w Workout) Preview {
	p := Preview{Summary: Summarize(w)}
	if w.Sections == nil {
		p.Steps = w.Steps
		return p
	}
	p.Sections = make([]SectionPreview, 0, len(w.Sections))
	for _, s := range w.Sections {
		total := DurationOfSection(s)
		p.Sections = append(p.Sections, SectionPreview{
			Name:         s.Name,
			TotalSeconds: total,
			TotalDisplay: FormatDuration(total),
			Steps:        s.Steps,
		})
	}
	return p
}

// Plan flattens w into display entries, one per step the runner will visit.
func Plan(w Workout) []PlanEntry {
	flat := Flatten(w)
	out := make([]PlanEntry, 0, len(flat))
	for i, fs := range flat {
		e := PlanEntry{
			Index:   i,
			Type:    fs.Step.Kind(),
			Seconds: fs.Step.Seconds(),
			Display: FormatDuration(fs.Step.Seconds()),
		}
		if fs.SectionName != nil {
			e.SectionName = *fs.SectionName
		}
		switch s := fs.Step.(type) {
		case Exercise:
			e.Name = s.Name
			e.Description = s.Description
		case Rest:
			e.Name = "Rest"
		default:
			panic(unexpectedStep(fs.Step))
		}
		out = append(out, e)
	}
	return out
}
