package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/timelyhq/timely/internal/session"
	"github.com/timelyhq/timely/internal/timer"
)

// Reminder watches the running timer and nudges the user to take a break
// once each configured interval of tracked time passes.
type Reminder struct {
	timer    *timer.Manager
	notifier *Notifier
	interval time.Duration

	lastReminded time.Duration
}

func NewReminder(t *timer.Manager, n *Notifier, prefs session.Preferences) *Reminder {
	return &Reminder{
		timer:    t,
		notifier: n,
		interval: time.Duration(prefs.BreakReminderIntervalMinutes) * time.Minute,
	}
}

// Run checks once a minute. It exits when the context is cancelled.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.check()
		}
	}
}

func (r *Reminder) check() {
	if !r.timer.IsRunning() {
		r.lastReminded = 0
		return
	}

	elapsed := r.timer.Elapsed()
	if elapsed-r.lastReminded < r.interval {
		return
	}
	r.lastReminded = elapsed

	body := fmt.Sprintf("You have been working for %s. Time for a break?",
		timer.FormatDuration(elapsed))
	if err := r.notifier.Send("Break Reminder", body); err != nil {
		log.Printf("failed to send break reminder: %v", err)
	}
}
