package timer

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timelyhq/timely/internal/monitor"
	"github.com/timelyhq/timely/internal/store"
)

// stubSource feeds synthetic input events into the monitor.
type stubSource struct {
	ch chan<- monitor.Event
}

func (s *stubSource) Subscribe(events chan<- monitor.Event) error {
	s.ch = events
	return nil
}

func (s *stubSource) Unsubscribe() {}

type fixture struct {
	mgr   *Manager
	mon   *monitor.Monitor
	src   *stubSource
	store *store.Store

	mu    sync.Mutex
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	src := &stubSource{}
	mon := monitor.New(src)
	mgr := NewManager(st, mon, "user-1")

	f := &fixture{mgr: mgr, mon: mon, src: src, store: st}
	f.clock = time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	mgr.now = f.now

	t.Cleanup(func() { mgr.Stop() })
	return f
}

func (f *fixture) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clock
}

// pass moves the clock without ticking, as during a pause.
func (f *fixture) pass(d time.Duration) {
	f.mu.Lock()
	f.clock = f.clock.Add(d)
	f.mu.Unlock()
}

func (f *fixture) advance(d time.Duration) {
	f.pass(d)
	f.mgr.tick()
}

func (f *fixture) typeKeys(t *testing.T, n int) {
	t.Helper()
	before := f.mon.KeyboardCount()
	for i := 0; i < n; i++ {
		f.src.ch <- monitor.Event{Kind: monitor.KeyPress}
	}
	require.Eventually(t, func() bool {
		return f.mon.KeyboardCount() == before+n
	}, time.Second, 5*time.Millisecond, "events not delivered")
}

func TestStart_TransitionsToRunning(t *testing.T) {
	f := newFixture(t)

	f.mgr.Start()
	assert.Equal(t, Running, f.mgr.Status())
	require.NotNil(t, f.mgr.CurrentSession())
	assert.Equal(t, "user-1", f.mgr.CurrentSession().UserID)
	assert.Equal(t, time.Duration(0), f.mgr.Elapsed())
}

func TestTransitionGuards_AreNoOps(t *testing.T) {
	f := newFixture(t)

	// pause and resume while stopped
	f.mgr.Pause()
	f.mgr.Resume()
	assert.Equal(t, Stopped, f.mgr.Status())

	f.mgr.Start()
	id := f.mgr.CurrentSession().ID

	// start while running keeps the current session
	f.mgr.Start()
	assert.Equal(t, id, f.mgr.CurrentSession().ID)

	// resume while running changes nothing
	f.advance(10 * time.Second)
	f.mgr.Resume()
	assert.Equal(t, Running, f.mgr.Status())
	assert.Equal(t, 10*time.Second, f.mgr.Elapsed())

	f.mgr.Pause()
	// pause while paused changes nothing
	f.mgr.Pause()
	assert.Equal(t, Paused, f.mgr.Status())
}

func TestStop_WhenStoppedIsNoOp(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.mgr.Stop())
	sessions, err := f.store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestElapsed_ExcludesPausedTime(t *testing.T) {
	f := newFixture(t)

	f.mgr.Start()
	f.typeKeys(t, 5)

	f.advance(30 * time.Second)
	assert.Equal(t, 30*time.Second, f.mgr.Elapsed())

	f.mgr.Pause()
	f.pass(60 * time.Second)
	// frozen while paused
	assert.Equal(t, 30*time.Second, f.mgr.Elapsed())

	f.mgr.Resume()
	f.advance(10 * time.Second)
	assert.Equal(t, 40*time.Second, f.mgr.Elapsed())

	require.NoError(t, f.mgr.Stop())
	assert.Equal(t, Stopped, f.mgr.Status())
	assert.Nil(t, f.mgr.CurrentSession())
	assert.Equal(t, time.Duration(0), f.mgr.Elapsed())

	sessions, err := f.store.LoadAll()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 5, sessions[0].KeyboardEvents)
	// raw wall-clock span includes the pause
	assert.Equal(t, 1, sessions[0].DurationMinutes())
}

func TestStop_PersistsSessionWithNoActivity(t *testing.T) {
	f := newFixture(t)

	f.mgr.Start()
	f.advance(600 * time.Second)
	require.NoError(t, f.mgr.Stop())

	sessions, err := f.store.LoadAll()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 10, sessions[0].DurationMinutes())
	assert.Equal(t, 0, sessions[0].KeyboardEvents)
	assert.Equal(t, 0, sessions[0].MouseEvents)
}

func TestStop_CopiesFinalCountersAndResetsMonitor(t *testing.T) {
	f := newFixture(t)

	f.mgr.Start()
	f.typeKeys(t, 3)
	f.advance(120 * time.Second)
	require.NoError(t, f.mgr.Stop())

	sessions, err := f.store.LoadAll()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 3, sessions[0].KeyboardEvents)

	k, m := f.mon.Counts()
	assert.Zero(t, k, "monitor counters should reset after stop")
	assert.Zero(t, m)
}

func TestStop_AppendFailureStillCompletesTransition(t *testing.T) {
	f := newFixture(t)

	// make the log path unwritable
	require.NoError(t, os.Mkdir(filepath.Join(f.store.Dir(), "sessions.csv"), 0755))

	f.mgr.Start()
	f.advance(60 * time.Second)

	err := f.mgr.Stop()
	assert.Error(t, err)
	assert.Equal(t, Stopped, f.mgr.Status())
	assert.Nil(t, f.mgr.CurrentSession())
}

func TestTick_CopiesLiveCounters(t *testing.T) {
	f := newFixture(t)

	f.mgr.Start()
	f.typeKeys(t, 2)
	f.advance(1 * time.Second)

	snap := f.mgr.Snapshot()
	assert.Equal(t, "running", snap.State)
	assert.Equal(t, 2, snap.KeyboardEvents)
	assert.Equal(t, 1, snap.ElapsedSeconds)
}

func TestOnChange_FiresOnTransitions(t *testing.T) {
	f := newFixture(t)

	var calls atomic.Int32
	f.mgr.OnChange(func() { calls.Add(1) })

	f.mgr.Start()
	f.mgr.Pause()
	f.mgr.Resume()
	require.NoError(t, f.mgr.Stop())

	assert.GreaterOrEqual(t, calls.Load(), int32(4))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "zero",
			duration: 0,
			expected: "00:00:00",
		},
		{
			name:     "seconds only",
			duration: 42 * time.Second,
			expected: "00:00:42",
		},
		{
			name:     "minutes and seconds",
			duration: 5*time.Minute + 3*time.Second,
			expected: "00:05:03",
		},
		{
			name:     "hours",
			duration: 2*time.Hour + 15*time.Minute + 9*time.Second,
			expected: "02:15:09",
		},
		{
			name:     "more than a day keeps counting hours",
			duration: 26 * time.Hour,
			expected: "26:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
