package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claude/workoutguide/internal/runner"
	"github.com/claude/workoutguide/internal/tui/theme"
	"github.com/claude/workoutguide/internal/workout"
)

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenOverview:
		body = m.overview.View()
	case screenRun:
		body = m.viewRun()
	case screenFinished:
		body = m.viewFinished()
	default:
		body = m.list.View()
	}
	footer := m.help.View(m.keys.forScreen(m.screen, m.confirming))
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

func renderOverview(w workout.Workout) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(w.Name))
	b.WriteString("\n")
	total := workout.DurationOfWorkout(w)
	b.WriteString(theme.Muted.Render(fmt.Sprintf("Total %s", workout.FormatDuration(total))))
	if len(w.MuscleGroups) > 0 {
		b.WriteString(theme.Muted.Render("  ·  " + strings.Join(w.MuscleGroups, ", ")))
	}
	b.WriteString("\n\n")

	if w.Sections != nil {
		for _, s := range w.Sections {
			b.WriteString(theme.Section.Render(s.Name))
			b.WriteString(theme.Muted.Render(fmt.Sprintf("  %s", workout.FormatDuration(workout.DurationOfSection(s)))))
			b.WriteString("\n")
			writeSteps(&b, s.Steps, "  ")
			b.WriteString("\n")
		}
		return b.String()
	}
	writeSteps(&b, w.Steps, "")
	return b.String()
}

func writeSteps(b *strings.Builder, steps workout.Steps, indent string) {
	for _, step := range steps {
		switch s := step.(type) {
		case workout.Exercise:
			fmt.Fprintf(b, "%s%-28s %s\n", indent, s.Name, workout.FormatDuration(s.DurationSeconds))
			if s.Description != "" {
				fmt.Fprintf(b, "%s  %s\n", indent, theme.Muted.Render(s.Description))
			}
		case workout.Rest:
			fmt.Fprintf(b, "%s%-28s %s\n", indent, "Rest", workout.FormatDuration(s.DurationSeconds))
		case workout.Repetition:
			label := fmt.Sprintf("Repeat %d×", s.Count)
			if s.RestBetweenRepsSeconds > 0 {
				label += fmt.Sprintf(" (rest %s between)", workout.FormatDuration(s.RestBetweenRepsSeconds))
			}
			fmt.Fprintf(b, "%s%s\n", indent, label)
			writeSteps(b, s.Steps, indent+"  ")
		}
	}
}

func stepLabel(fs *workout.FlattenedStep) string {
	if e, ok := fs.Step.(workout.Exercise); ok {
		return e.Name
	}
	return "Rest"
}

func (m Model) viewRun() string {
	snap := m.run.Snapshot()
	if snap.Current == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.selected.Name))
	b.WriteString("\n")
	if snap.Current.SectionName != nil {
		b.WriteString(theme.Section.Render(*snap.Current.SectionName))
	}
	b.WriteString("\n\n")

	switch s := snap.Current.Step.(type) {
	case workout.Exercise:
		b.WriteString(theme.StepName.Render(s.Name))
		if s.Description != "" {
			b.WriteString("\n" + theme.Muted.Render(s.Description))
		}
	default:
		b.WriteString(theme.RestName.Render("Rest"))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Clock.Render(workout.FormatDuration(snap.SecondsRemaining)))
	if snap.State == runner.StatePaused {
		b.WriteString("  " + theme.Paused.Render("paused"))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Muted.Render(fmt.Sprintf("~%s left  ·  step %d of %d",
		workout.FormatTimeLeft(snap.TimeLeftSeconds), snap.CurrentIndex+1, snap.TotalSteps)))
	if snap.Next != nil {
		b.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("Next: %s (%s)",
			stepLabel(snap.Next), workout.FormatDuration(snap.Next.Step.Seconds()))))
	}

	if m.confirming {
		b.WriteString("\n\n" + theme.Warning.Render("End workout early? (y/n)"))
	}
	return theme.Pane.Render(b.String())
}

func (m Model) viewFinished() string {
	msg := "Workout finished!"
	if m.run != nil && m.run.Outcome() == runner.OutcomeAborted {
		msg = "Workout ended early"
	}
	return theme.Pane.Render(theme.Title.Render(m.selected.Name) + "\n\n" + theme.Done.Render(msg))
}
