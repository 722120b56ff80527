// Package session owns the single active workout run and the clock that
// drives it.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/workoutguide/internal/runner"
	"github.com/claude/workoutguide/internal/workout"
)

var (
	// ErrRunActive is returned by Start while another run is running or paused.
	ErrRunActive = errors.New("a workout run is already active")
	// ErrNoActiveRun is returned when no run has been started.
	ErrNoActiveRun = errors.New("no active workout run")
	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("run manager closed")
)

// Ticker delivers clock ticks to a run.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker. Ticks missed by a slow receiver are
// dropped, so a stalled run catches up by at most one tick.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Status describes the active run for API and UI callers.
type Status struct {
	ID          uuid.UUID `json:"id"`
	WorkoutID   string    `json:"workoutId"`
	WorkoutName string    `json:"workoutName"`
	StartedAt   time.Time `json:"startedAt"`
	runner.Snapshot
}

type run struct {
	id        uuid.UUID
	startedAt time.Time
	runner    *runner.Runner
	stop      chan struct{}
}

// Manager serializes access to the current run and ticks it once per interval.
type Manager struct {
	interval  time.Duration
	newTicker TickerFunc
	log       *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	cur    *run
	closed bool
	wg     sync.WaitGroup

	subsMu sync.Mutex
	subs   map[chan Status]struct{}

	// afterTick is called by the scheduler goroutine after each tick has been
	// applied. Tests use it to wait for a tick.
	afterTick func()
}

// NewManager returns a Manager that ticks runs every interval using real time.
func NewManager(interval time.Duration, log *slog.Logger) *Manager {
	return &Manager{
		interval:  interval,
		newTicker: NewTimeTicker,
		log:       log,
		now:       time.Now,
		subs:      make(map[chan Status]struct{}),
	}
}

// Subscribe returns a channel receiving the run status after every change,
// and a function to unsubscribe. Slow subscribers miss updates.
func (m *Manager) Subscribe() (<-chan Status, func()) {
	ch := make(chan Status, 16)
	m.subsMu.Lock()
	m.subs[ch] = struct{}{}
	m.subsMu.Unlock()
	return ch, func() {
		m.subsMu.Lock()
		delete(m.subs, ch)
		m.subsMu.Unlock()
	}
}

func (m *Manager) broadcast(st Status) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for ch := range m.subs {
		select {
		case ch <- st:
		default:
			// slow subscriber, skip
		}
	}
}

// Start begins a new run of w. A finished previous run is replaced; one that
// is still running or paused yields ErrRunActive.
func (m *Manager) Start(w workout.Workout) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Status{}, ErrClosed
	}
	if m.cur != nil {
		switch m.cur.runner.State() {
		case runner.StateRunning, runner.StatePaused:
			return Status{}, ErrRunActive
		}
		m.stopLocked()
	}

	r := runner.New(w)
	if err := r.Start(); err != nil {
		return Status{}, fmt.Errorf("starting run: %w", err)
	}
	cur := &run{
		id:        uuid.New(),
		startedAt: m.now(),
		runner:    r,
		stop:      make(chan struct{}),
	}
	m.cur = cur
	m.log.Info("run started", "run_id", cur.id, "workout_id", w.ID, "steps", len(r.Steps()))

	st := m.statusLocked()
	m.broadcast(st)
	if r.State() == runner.StateFinished {
		m.logEnd(cur)
		return st, nil
	}

	t := m.newTicker(m.interval)
	m.wg.Add(1)
	go m.schedule(cur, t)
	return st, nil
}

// schedule applies ticks to cur until it finishes, is replaced or the manager
// is closed.
func (m *Manager) schedule(cur *run, t Ticker) {
	defer m.wg.Done()
	defer t.Stop()
	for {
		select {
		case <-cur.stop:
			return
		case <-cur.runner.Done():
			m.mu.Lock()
			m.logEnd(cur)
			m.mu.Unlock()
			return
		case <-t.C():
			m.mu.Lock()
			if cur.runner.Tick() && m.cur == cur {
				m.broadcast(m.statusLocked())
			}
			hook := m.afterTick
			m.mu.Unlock()
			if hook != nil {
				hook()
			}
		}
	}
}

func (m *Manager) logEnd(cur *run) {
	m.log.Info("run ended",
		"run_id", cur.id,
		"workout_id", cur.runner.Workout().ID,
		"outcome", cur.runner.Outcome(),
		"elapsed", m.now().Sub(cur.startedAt).Round(time.Second),
	)
}

// Skip expires the current step.
func (m *Manager) Skip() (Status, error) { return m.apply((*runner.Runner).Skip) }

// Previous returns to the previous step.
func (m *Manager) Previous() (Status, error) { return m.apply((*runner.Runner).Previous) }

// Pause stops the run's clock.
func (m *Manager) Pause() (Status, error) { return m.apply((*runner.Runner).Pause) }

// Resume restarts the run's clock.
func (m *Manager) Resume() (Status, error) { return m.apply((*runner.Runner).Resume) }

// Abort ends the run early. Callers confirm with the user first.
func (m *Manager) Abort() (Status, error) { return m.apply((*runner.Runner).Abort) }

// Current returns the status of the active or most recently finished run.
func (m *Manager) Current() (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur == nil {
		return Status{}, ErrNoActiveRun
	}
	return m.statusLocked(), nil
}

// Close stops the scheduler and waits for it to exit.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	if m.cur != nil {
		m.stopLocked()
	}
	m.mu.Unlock()
	m.wg.Wait()
}

func (m *Manager) apply(op func(*runner.Runner) error) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur == nil {
		return Status{}, ErrNoActiveRun
	}
	if err := op(m.cur.runner); err != nil {
		return Status{}, err
	}
	st := m.statusLocked()
	m.broadcast(st)
	return st, nil
}

func (m *Manager) stopLocked() {
	select {
	case <-m.cur.stop:
	default:
		close(m.cur.stop)
	}
}

func (m *Manager) statusLocked() Status {
	r := m.cur.runner
	return Status{
		ID:          m.cur.id,
		WorkoutID:   r.Workout().ID,
		WorkoutName: r.Workout().Name,
		StartedAt:   m.cur.startedAt,
		Snapshot:    r.Snapshot(),
	}
}
