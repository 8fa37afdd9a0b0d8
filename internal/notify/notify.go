package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Notifier sends desktop notifications over the session bus via
// org.freedesktop.Notifications.
type Notifier struct {
	conn *dbus.Conn
}

func New() (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Notifier{conn: conn}, nil
}

func (n *Notifier) Close() error {
	return n.conn.Close()
}

func (n *Notifier) Send(summary, body string) error {
	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"Timely",           // app_name
		uint32(0),          // replaces_id
		"appointment-soon", // app_icon
		summary,
		body,
		[]string{}, // actions
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		int32(10000), // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	return nil
}
