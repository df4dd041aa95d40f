//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName       = "org.freedesktop.Notifications"
	busPath       = "/org/freedesktop/Notifications"
	busInterface  = "org.freedesktop.Notifications"
	methodNotify  = busInterface + ".Notify"
	methodClose   = busInterface + ".CloseNotification"
	hintUrgency   = "urgency"
	hintDesktopID = "desktop-entry"
)

// desktop posts notifications to the freedesktop notification server on the
// session bus.
type desktop struct {
	obj dbus.BusObject
}

// New connects to the session bus. It fails when there is no session bus, in
// which case the player runs without notifications.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("session bus: %w", err)
	}
	return &desktop{obj: conn.Object(busName, busPath)}, nil
}

func (d *desktop) Notify(n Notification) (uint32, error) {
	call := d.obj.Call(methodNotify, 0, notifyArgs(n)...)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (d *desktop) Close(id uint32) error {
	return d.obj.Call(methodClose, 0, id).Err
}

// notifyArgs lays n out as the arguments of Notify: app name, replaced id,
// icon, summary, body, actions, hints and timeout.
func notifyArgs(n Notification) []any {
	hints := map[string]dbus.Variant{
		hintUrgency:   dbus.MakeVariant(byte(n.Urgency)),
		hintDesktopID: dbus.MakeVariant(desktopEntry),
	}
	return []any{appName, n.ReplacesID, n.Icon, n.Title, n.Body, []string{}, hints, n.Timeout}
}
