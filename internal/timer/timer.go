package timer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/timelyhq/timely/internal/monitor"
	"github.com/timelyhq/timely/internal/session"
	"github.com/timelyhq/timely/internal/store"
)

const tickInterval = 1 * time.Second

type Status int

const (
	Stopped Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Manager is the single authority on whether a session is being tracked,
// its elapsed time, and its completion. Exactly one Manager owns the
// current session; construct it once and pass it by reference.
type Manager struct {
	store   *store.Store
	monitor *monitor.Monitor
	userID  string

	mu          sync.Mutex
	status      Status
	current     *session.Session
	startTime   time.Time
	pauseStart  time.Time
	totalPaused time.Duration
	elapsed     time.Duration
	idleSeconds int

	cancelTick context.CancelFunc

	onChange []func()

	now func() time.Time
}

func NewManager(st *store.Store, mon *monitor.Monitor, userID string) *Manager {
	return &Manager{
		store:   st,
		monitor: mon,
		userID:  userID,
		now:     time.Now,
	}
}

// Start begins tracking a new session. No-op unless currently Stopped.
func (m *Manager) Start() {
	m.mu.Lock()
	if m.status != Stopped {
		m.mu.Unlock()
		return
	}

	now := m.now()
	m.current = session.New(m.userID, now)
	m.startTime = now
	m.totalPaused = 0
	m.elapsed = 0
	m.idleSeconds = 0
	m.status = Running
	m.startTick()
	m.mu.Unlock()

	if err := m.monitor.StartMonitoring(); err != nil {
		log.Printf("activity monitoring unavailable: %v", err)
	}

	m.notify()
}

// Pause suspends the tick and the monitor, preserving accumulated time.
// No-op unless currently Running.
func (m *Manager) Pause() {
	m.mu.Lock()
	if m.status != Running {
		m.mu.Unlock()
		return
	}

	m.stopTick()
	m.pauseStart = m.now()
	m.status = Paused
	m.mu.Unlock()

	m.monitor.StopMonitoring()
	m.notify()
}

// Resume adds the pause interval to the paused-time accumulator and
// restarts the tick and the monitor. No-op unless currently Paused.
func (m *Manager) Resume() {
	m.mu.Lock()
	if m.status != Paused || m.current == nil {
		m.mu.Unlock()
		return
	}

	m.totalPaused += m.now().Sub(m.pauseStart)
	m.status = Running
	m.startTick()
	m.mu.Unlock()

	if err := m.monitor.StartMonitoring(); err != nil {
		log.Printf("activity monitoring unavailable: %v", err)
	}

	m.notify()
}

// Stop finalizes the current session and hands it to the store. The
// transition to Stopped completes even when the append fails; the error
// is returned and the session's durable copy is lost. No-op when already
// Stopped.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if m.status == Stopped || m.current == nil {
		m.mu.Unlock()
		return nil
	}

	m.stopTick()

	finished := m.current
	finished.End(m.now())
	finished.KeyboardEvents, finished.MouseEvents = m.monitor.Counts()
	finished.IdleTimeMinutes = m.idleSeconds / 60

	m.status = Stopped
	m.current = nil
	m.elapsed = 0
	m.totalPaused = 0
	m.idleSeconds = 0
	m.mu.Unlock()

	err := m.store.Append(finished)
	if err != nil {
		err = fmt.Errorf("session %s not persisted: %w", finished.ID, err)
	} else {
		log.Printf("session %s stopped after %d minute(s)", finished.ID, finished.DurationMinutes())
	}

	m.monitor.StopMonitoring()
	m.monitor.ResetCounters()

	m.notify()
	return err
}

// startTick and stopTick are called with m.mu held. The tick goroutine
// takes the same mutex, so a Stop issued during an in-flight tick
// sequences after it rather than racing the counter snapshot.
func (m *Manager) startTick() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelTick = cancel
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.tick()
			}
		}
	}()
}

func (m *Manager) stopTick() {
	if m.cancelTick != nil {
		m.cancelTick()
		m.cancelTick = nil
	}
}

// tick recomputes elapsed time and copies the monitor's live counters
// into the in-memory session. The copy is a non-authoritative snapshot;
// the authoritative one happens at Stop.
func (m *Manager) tick() {
	m.mu.Lock()
	if m.status != Running || m.current == nil {
		m.mu.Unlock()
		return
	}

	m.elapsed = m.now().Sub(m.startTime) - m.totalPaused
	m.current.KeyboardEvents, m.current.MouseEvents = m.monitor.Counts()
	if m.monitor.IsIdle() {
		m.idleSeconds += int(tickInterval / time.Second)
	}
	m.current.IdleTimeMinutes = m.idleSeconds / 60
	m.mu.Unlock()

	m.notify()
}

// SetIdleThreshold forwards to the activity monitor.
func (m *Manager) SetIdleThreshold(minutes int) {
	m.monitor.SetIdleThreshold(minutes)
}

// OnChange registers a callback invoked after every state transition and
// every tick. Callbacks must not block; they run on the transition's
// goroutine.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

func (m *Manager) notify() {
	m.mu.Lock()
	subs := make([]func(), len(m.onChange))
	copy(subs, m.onChange)
	m.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) IsRunning() bool {
	return m.Status() == Running
}

func (m *Manager) IsPaused() bool {
	return m.Status() == Paused
}

// Elapsed is the live running total: wall clock since start minus paused
// time. Frozen while Paused, zero while Stopped.
func (m *Manager) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// FormattedTime renders the elapsed time as HH:MM:SS.
func (m *Manager) FormattedTime() string {
	return FormatDuration(m.Elapsed())
}

// CurrentSession returns a copy of the in-flight session, or nil.
func (m *Manager) CurrentSession() *session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

// FormatDuration renders a duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
