package session

// DaySummary aggregates a set of sessions for display.
type DaySummary struct {
	Sessions       int     `json:"sessions"`
	TotalMinutes   int     `json:"total_minutes"`
	ActiveMinutes  int     `json:"active_minutes"`
	IdleMinutes    int     `json:"idle_minutes"`
	KeyboardEvents int     `json:"keyboard_events"`
	MouseEvents    int     `json:"mouse_events"`
	Productivity   float64 `json:"productivity"`
}

// Summarize totals the given sessions. Productivity is weighted by
// duration, not averaged per session.
func Summarize(sessions []*Session) DaySummary {
	var sum DaySummary
	for _, s := range sessions {
		sum.Sessions++
		sum.TotalMinutes += s.DurationMinutes()
		sum.ActiveMinutes += s.ActiveMinutes()
		sum.IdleMinutes += s.IdleTimeMinutes
		sum.KeyboardEvents += s.KeyboardEvents
		sum.MouseEvents += s.MouseEvents
	}
	if sum.TotalMinutes > 0 {
		sum.Productivity = float64(sum.ActiveMinutes) / float64(sum.TotalMinutes) * 100
	}
	return sum
}
