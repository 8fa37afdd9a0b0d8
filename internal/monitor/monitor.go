package monitor

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultIdleThreshold is how long without input before the user is
	// judged idle.
	DefaultIdleThreshold = 300 * time.Second

	idleCheckInterval = 10 * time.Second

	// moveThreshold filters pointer jitter: a movement event counts only
	// if the delta exceeds this in either axis.
	moveThreshold = 10
)

// Monitor converts a stream of input events into two exposed signals:
// cumulative keyboard/mouse counts and a debounced idle flag.
type Monitor struct {
	source EventSource

	mu            sync.Mutex
	keyboardCount int
	mouseCount    int
	idle          bool
	lastActivity  time.Time
	idleThreshold time.Duration
	onIdleChange  func(idle bool)

	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func New(source EventSource) *Monitor {
	return &Monitor{
		source:        source,
		lastActivity:  time.Now(),
		idleThreshold: DefaultIdleThreshold,
	}
}

// StartMonitoring subscribes to the input-event feed and begins the
// periodic idle check. Calling while already monitoring is a no-op.
// On ErrPermissionDenied no counters are touched and nothing starts.
func (m *Monitor) StartMonitoring() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}

	events := make(chan Event, 64)
	if err := m.source.Subscribe(events); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.running = true
	m.cancel = cancel

	m.wg.Add(2)
	go m.pump(ctx, events)
	go m.idleLoop(ctx)
	return nil
}

// StopMonitoring unsubscribes and cancels the idle check. Calling when
// not started is a no-op. Counters persist until ResetCounters.
func (m *Monitor) StopMonitoring() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	m.source.Unsubscribe()
	cancel()
	m.wg.Wait()
}

func (m *Monitor) pump(ctx context.Context, events <-chan Event) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			m.handleEvent(ev)
		}
	}
}

func (m *Monitor) idleLoop(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(idleCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkIdle()
		}
	}
}

func (m *Monitor) handleEvent(ev Event) {
	m.mu.Lock()

	switch ev.Kind {
	case KeyPress:
		m.keyboardCount++
	case ButtonPress:
		m.mouseCount++
	case PointerMove:
		if abs32(ev.DX) > moveThreshold || abs32(ev.DY) > moveThreshold {
			m.mouseCount++
		}
	}

	m.lastActivity = time.Now()
	wasIdle := m.idle
	m.idle = false
	cb := m.onIdleChange
	m.mu.Unlock()

	if wasIdle && cb != nil {
		cb(false)
	}
}

// checkIdle is the only path that sets the idle flag; handleEvent is the
// only path that clears it.
func (m *Monitor) checkIdle() {
	m.mu.Lock()

	if m.idle || time.Since(m.lastActivity) < m.idleThreshold {
		m.mu.Unlock()
		return
	}
	m.idle = true
	cb := m.onIdleChange
	m.mu.Unlock()

	if cb != nil {
		cb(true)
	}
}

// SetIdleThreshold applies to future checks only; the current idle state
// is not re-evaluated.
func (m *Monitor) SetIdleThreshold(minutes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idleThreshold = time.Duration(minutes) * time.Minute
}

// ResetCounters zeroes both counters, clears the idle flag, and stamps
// activity to now. Intended to run once per completed session.
func (m *Monitor) ResetCounters() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyboardCount = 0
	m.mouseCount = 0
	m.idle = false
	m.lastActivity = time.Now()
}

// OnIdleChange registers a callback fired on every idle transition.
func (m *Monitor) OnIdleChange(fn func(idle bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onIdleChange = fn
}

func (m *Monitor) KeyboardCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboardCount
}

func (m *Monitor) MouseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouseCount
}

func (m *Monitor) IsIdle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idle
}

// Counts returns both counters in one locked read.
func (m *Monitor) Counts() (keyboard, mouse int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboardCount, m.mouseCount
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
