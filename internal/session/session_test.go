package session

import (
	"testing"
	"time"
)

func TestNew_PinsDateToStartDay(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 30, 45, 0, time.Local)
	s := New("user-1", start)

	if s.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Errorf("expected non-zero session id")
	}
	if !s.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", s.StartTime, start)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	if !s.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", s.Date, want)
	}
	if !s.IsActive() {
		t.Errorf("new session should be active")
	}
}

func TestSession_EndAndDuration(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	s := New("user-1", start)

	s.End(start.Add(95 * time.Minute))
	if s.IsActive() {
		t.Errorf("ended session should not be active")
	}
	if s.DurationMinutes() != 95 {
		t.Errorf("DurationMinutes = %d, want 95", s.DurationMinutes())
	}
}

func TestSession_ActiveMinutesFloorsAtZero(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	s := New("user-1", start)
	s.End(start.Add(10 * time.Minute))
	s.IdleTimeMinutes = 25

	if got := s.ActiveMinutes(); got != 0 {
		t.Errorf("ActiveMinutes = %d, want 0 when idle exceeds duration", got)
	}
	if got := s.ProductivityPercent(); got != 0 {
		t.Errorf("ProductivityPercent = %f, want 0", got)
	}
}

func TestSession_ProductivityPercent(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	s := New("user-1", start)
	s.End(start.Add(100 * time.Minute))
	s.IdleTimeMinutes = 25

	if got := s.ProductivityPercent(); got != 75.0 {
		t.Errorf("ProductivityPercent = %f, want 75.0", got)
	}

	// zero-length session
	z := New("user-1", start)
	z.End(start)
	if got := z.ProductivityPercent(); got != 0 {
		t.Errorf("ProductivityPercent = %f, want 0 for zero duration", got)
	}
}
