package session

import "time"

func (s *Session) End(end time.Time) {
	if end.IsZero() {
		end = time.Now()
	}
	s.EndTime = end
}

func (s *Session) IsActive() bool {
	return s.EndTime.IsZero()
}

// Duration is the raw wall-clock span of the session. It does not subtract
// paused time; the timer's elapsed value is the view that does.
func (s *Session) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s *Session) DurationMinutes() int {
	return int(s.Duration() / time.Minute)
}

// ActiveMinutes floors at zero: idle minutes are recorded as measured and
// may exceed the session span (see DESIGN.md).
func (s *Session) ActiveMinutes() int {
	active := s.DurationMinutes() - s.IdleTimeMinutes
	if active < 0 {
		return 0
	}
	return active
}

func (s *Session) ProductivityPercent() float64 {
	minutes := s.DurationMinutes()
	if minutes <= 0 {
		return 0
	}
	return float64(s.ActiveMinutes()) / float64(minutes) * 100
}
