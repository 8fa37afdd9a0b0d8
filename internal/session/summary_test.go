package session

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	a := New("user-1", start)
	a.End(start.Add(60 * time.Minute))
	a.IdleTimeMinutes = 15
	a.KeyboardEvents = 500
	a.MouseEvents = 100

	b := New("user-1", start.Add(2*time.Hour))
	b.End(start.Add(2*time.Hour + 40*time.Minute))
	b.IdleTimeMinutes = 5
	b.KeyboardEvents = 300
	b.MouseEvents = 80

	sum := Summarize([]*Session{a, b})
	if sum.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", sum.Sessions)
	}
	if sum.TotalMinutes != 100 {
		t.Errorf("TotalMinutes = %d, want 100", sum.TotalMinutes)
	}
	if sum.ActiveMinutes != 80 {
		t.Errorf("ActiveMinutes = %d, want 80", sum.ActiveMinutes)
	}
	if sum.KeyboardEvents != 800 || sum.MouseEvents != 180 {
		t.Errorf("event totals = %d/%d, want 800/180", sum.KeyboardEvents, sum.MouseEvents)
	}
	if sum.Productivity != 80.0 {
		t.Errorf("Productivity = %f, want 80.0 (weighted by duration)", sum.Productivity)
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Sessions != 0 || sum.Productivity != 0 {
		t.Errorf("empty summary not zero: %+v", sum)
	}
}
