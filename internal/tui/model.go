// Package tui is the terminal front end: pick a workout, preview it and run
// it with a live countdown.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claude/workoutguide/internal/catalog"
	"github.com/claude/workoutguide/internal/runner"
	"github.com/claude/workoutguide/internal/tui/theme"
	"github.com/claude/workoutguide/internal/workout"
)

type screen int

const (
	screenList screen = iota
	screenOverview
	screenRun
	screenFinished
)

// tickMsg is one clock tick for the run with the given generation. Ticks from
// an earlier run carry an older generation and are dropped.
type tickMsg struct {
	gen int
}

// ─── list item ───────────────────────────────────────────────────────────────

type workoutItem struct {
	w       workout.Workout
	summary workout.Summary
}

func (i workoutItem) Title() string { return i.w.Name }
func (i workoutItem) Description() string {
	d := i.summary.TotalDisplay
	for n, g := range i.w.MuscleGroups {
		if n == 0 {
			d += "  ·  "
		} else {
			d += ", "
		}
		d += g
	}
	return d
}
func (i workoutItem) FilterValue() string { return i.w.Name }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It drives a runner.Runner directly;
// Bubble Tea delivers messages one at a time, so no locking is needed.
type Model struct {
	interval time.Duration

	keys     keyMap
	help     help.Model
	list     list.Model
	overview viewport.Model

	screen     screen
	selected   workout.Workout
	run        *runner.Runner
	gen        int
	confirming bool

	width  int
	height int
}

// New returns a Model listing the workouts in cat. interval is the length of
// one countdown second, normally time.Second.
func New(cat *catalog.Catalog, interval time.Duration) Model {
	items := make([]list.Item, 0, cat.Len())
	for _, w := range cat.All() {
		items = append(items, workoutItem{w: w, summary: workout.Summarize(w)})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(items, delegate, 80, 20)
	l.Title = "Workouts"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetStatusBarItemName("workout", "workouts")

	return Model{
		interval: interval,
		keys:     defaultKeys(),
		help:     help.New(),
		list:     l,
		overview: viewport.New(80, 20),
		screen:   screenList,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenList:
			return m.updateList(msg)
		case screenOverview:
			return m.updateOverview(msg)
		case screenRun:
			return m.updateRun(msg)
		case screenFinished:
			return m.updateFinished(msg)
		}
	}

	if m.screen == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize() {
	h := m.height - 4 // help line and padding
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width, h)
	m.overview.Width = m.width
	m.overview.Height = h
	m.help.Width = m.width
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(workoutItem)
		if !ok {
			return m, nil
		}
		m.selected = item.w
		m.overview.SetContent(renderOverview(item.w))
		m.overview.GotoTop()
		m.screen = screenOverview
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateOverview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.startRun()
	}
	var cmd tea.Cmd
	m.overview, cmd = m.overview.Update(msg)
	return m, cmd
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.run = runner.New(m.selected)
	m.gen++
	m.confirming = false
	if err := m.run.Start(); err != nil {
		// A fresh runner always starts; anything else is a bug.
		panic(err)
	}
	if m.run.State() == runner.StateFinished {
		m.screen = screenFinished
		return m, nil
	}
	m.screen = screenRun
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.run == nil || msg.gen != m.gen || m.run.State() == runner.StateFinished {
		return m, nil
	}
	m.run.Tick()
	if m.run.State() == runner.StateFinished {
		m.screen = screenFinished
		m.confirming = false
		return m, nil
	}
	return m, m.tick()
}

func (m Model) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			_ = m.run.Abort()
			m.confirming = false
			m.screen = screenFinished
		case key.Matches(msg, m.keys.Cancel):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Skip):
		_ = m.run.Skip()
	case key.Matches(msg, m.keys.Previous):
		_ = m.run.Previous()
	case key.Matches(msg, m.keys.Pause):
		if m.run.State() == runner.StatePaused {
			_ = m.run.Resume()
		} else {
			_ = m.run.Pause()
		}
	case key.Matches(msg, m.keys.End):
		m.confirming = true
	}
	if m.run.State() == runner.StateFinished {
		m.screen = screenFinished
	}
	return m, nil
}

func (m Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
		m.run = nil
		m.screen = screenList
	}
	return m, nil
}
