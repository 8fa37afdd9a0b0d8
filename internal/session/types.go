package session

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks one interval of work, from manual start to manual stop.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"start"`
	EndTime   time.Time `json:"end,omitempty"`

	// Activity tracking
	KeyboardEvents  int `json:"keyboard_events"`
	MouseEvents     int `json:"mouse_events"`
	IdleTimeMinutes int `json:"idle_minutes"`

	// Optional metadata
	Notes string   `json:"notes,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// New creates an active session for the given user. Date is pinned to the
// calendar day the session started on and never recomputed.
func New(userID string, start time.Time) *Session {
	if start.IsZero() {
		start = time.Now()
	}
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      DayOf(start),
		StartTime: start,
	}
}

// DayOf returns midnight of t's calendar day in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
