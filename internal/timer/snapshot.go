package timer

import "time"

// Snapshot is the observable state exposed to external collaborators
// (CLI, notifications, settings).
type Snapshot struct {
	State          string    `json:"state"`
	SessionID      string    `json:"session_id,omitempty"`
	UserID         string    `json:"user_id,omitempty"`
	StartedAt      time.Time `json:"started_at,omitempty"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	Formatted      string    `json:"formatted"`
	KeyboardEvents int       `json:"keyboard_events"`
	MouseEvents    int       `json:"mouse_events"`
	Idle           bool      `json:"idle"`
	IdleMinutes    int       `json:"idle_minutes"`
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		State:          m.status.String(),
		ElapsedSeconds: int(m.elapsed / time.Second),
		Formatted:      FormatDuration(m.elapsed),
	}
	if m.current != nil {
		snap.SessionID = m.current.ID.String()
		snap.UserID = m.current.UserID
		snap.StartedAt = m.current.StartTime
		snap.KeyboardEvents = m.current.KeyboardEvents
		snap.MouseEvents = m.current.MouseEvents
		snap.IdleMinutes = m.current.IdleTimeMinutes
	}
	snap.Idle = m.monitor.IsIdle()
	return snap
}
