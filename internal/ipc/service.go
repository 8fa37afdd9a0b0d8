package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/timelyhq/timely/internal/store"
	"github.com/timelyhq/timely/internal/timer"
)

// TimerService is the object exported on the bus. Methods map 1:1 onto
// the timer's commands; invalid transitions are no-ops, not errors.
type TimerService struct {
	Timer *timer.Manager
	Store *store.Store
}

func (s *TimerService) Start() *dbus.Error {
	s.Timer.Start()
	return nil
}

func (s *TimerService) Pause() *dbus.Error {
	s.Timer.Pause()
	return nil
}

func (s *TimerService) Resume() *dbus.Error {
	s.Timer.Resume()
	return nil
}

func (s *TimerService) Stop() (string, *dbus.Error) {
	if err := s.Timer.Stop(); err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return "stopped", nil
}

// Status returns the observable timer state as JSON.
func (s *TimerService) Status() (string, *dbus.Error) {
	data, err := json.Marshal(s.Timer.Snapshot())
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return string(data), nil
}

func (s *TimerService) SetIdleThreshold(minutes int32) *dbus.Error {
	if minutes <= 0 {
		return dbus.MakeFailedError(fmt.Errorf("idle threshold must be positive, got %d", minutes))
	}
	s.Timer.SetIdleThreshold(int(minutes))
	return nil
}

// Export writes every stored session to the named destination and
// returns its path.
func (s *TimerService) Export(name string) (string, *dbus.Error) {
	sessions, err := s.Store.LoadAll()
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	path, err := s.Store.ExportCSV(sessions, name)
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return path, nil
}
