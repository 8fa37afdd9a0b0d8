package session

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile stored in user.json. It is consumed by the UI layer
// and resolves the user id sessions are bound to.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Preferences Preferences `json:"preferences"`
}

type Preferences struct {
	EnableActivityTracking bool `json:"enable_activity_tracking"`
	IdleTimeoutMinutes     int  `json:"idle_timeout_minutes"`
	AutoPauseOnIdle        bool `json:"auto_pause_on_idle"`

	EnableBreakReminders         bool `json:"enable_break_reminders"`
	BreakReminderIntervalMinutes int  `json:"break_reminder_interval_minutes"`
	EnableIdleWarnings           bool `json:"enable_idle_warnings"`

	DailyHourGoal  float64 `json:"daily_hour_goal"`
	WeeklyHourGoal float64 `json:"weekly_hour_goal"`

	Use24HourFormat bool `json:"use_24_hour_format"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		EnableActivityTracking:       true,
		IdleTimeoutMinutes:           5,
		AutoPauseOnIdle:              true,
		EnableBreakReminders:         true,
		BreakReminderIntervalMinutes: 60,
		EnableIdleWarnings:           true,
		DailyHourGoal:                8.0,
		WeeklyHourGoal:               40.0,
		Use24HourFormat:              true,
	}
}

func NewUser(name, email string) User {
	return User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		CreatedAt:   time.Now(),
		Preferences: DefaultPreferences(),
	}
}
