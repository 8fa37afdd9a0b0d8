package monitor

import "errors"

// ErrPermissionDenied is returned by Subscribe when the host refuses
// access to the global input-event feed. Counters are left untouched;
// the caller should guide the user to grant access and retry.
var ErrPermissionDenied = errors.New("permission denied observing input events")

type EventKind int

const (
	KeyPress EventKind = iota
	ButtonPress
	PointerMove
)

// Event is one observed input event.
type Event struct {
	Kind EventKind
	// Movement delta, set for PointerMove only.
	DX, DY int32
}

// EventSource is the capability the host grants for observing global
// input. Tests inject a synthetic source; Linux hosts use NewEvdevSource.
type EventSource interface {
	// Subscribe starts delivering events to the channel until
	// Unsubscribe is called. It returns ErrPermissionDenied when the
	// host denies access to input devices.
	Subscribe(events chan<- Event) error
	// Unsubscribe stops delivery. Idempotent.
	Unsubscribe()
}
