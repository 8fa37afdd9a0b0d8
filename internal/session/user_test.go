package session

import "testing"

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("Alice", "alice@example.com")

	if u.ID == "" {
		t.Errorf("expected generated user id")
	}
	if u.Name != "Alice" || u.Email != "alice@example.com" {
		t.Errorf("unexpected identity fields: %q %q", u.Name, u.Email)
	}
	if u.CreatedAt.IsZero() {
		t.Errorf("CreatedAt not set")
	}

	p := u.Preferences
	if !p.EnableActivityTracking || p.IdleTimeoutMinutes != 5 {
		t.Errorf("unexpected activity defaults: %+v", p)
	}
	if p.BreakReminderIntervalMinutes != 60 {
		t.Errorf("BreakReminderIntervalMinutes = %d, want 60", p.BreakReminderIntervalMinutes)
	}
	if p.DailyHourGoal != 8.0 || p.WeeklyHourGoal != 40.0 {
		t.Errorf("unexpected goal defaults: %+v", p)
	}
}
