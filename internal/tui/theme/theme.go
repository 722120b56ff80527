package theme

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext  = lipgloss.Color("#a6adc8")
	Surface  = lipgloss.Color("#45475a")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
)

var (
	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Padding(0, 1)

	Title   = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Section = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext)

	// Runner screen
	StepName = lipgloss.NewStyle().Foreground(Text).Bold(true)
	RestName = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Clock    = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Paused   = lipgloss.NewStyle().Foreground(Subtext).Italic(true)
	Warning  = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Done     = lipgloss.NewStyle().Foreground(Green).Bold(true)
)
