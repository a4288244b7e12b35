//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName = "org.freedesktop.Notifications"
	busPath = "/org/freedesktop/Notifications"

	appName  = "Keepsake"
	appEntry = "keepsake"
)

type dbusNotifier struct {
	obj  dbus.BusObject
	caps Capabilities
}

// New connects to the session notification server. Without a session bus it
// returns a notifier that drops everything.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noop{}, nil //nolint:nilerr // notifications are optional
	}

	n := &dbusNotifier{obj: conn.Object(busName, busPath)}
	n.caps = n.capabilities()
	return n, nil
}

// capabilities asks the server what it renders. A failed query leaves the
// set nil, which is treated as full support.
func (n *dbusNotifier) capabilities() Capabilities {
	var names []string
	if err := n.obj.Call(busName+".GetCapabilities", 0).Store(&names); err != nil {
		return nil
	}
	caps := make(Capabilities, len(names))
	for _, name := range names {
		caps[name] = true
	}
	return caps
}

func (n *dbusNotifier) hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appEntry),
		"category":      dbus.MakeVariant("x-keepsake.track"),
	}
	if notif.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	if notif.Image != "" {
		h["image-path"] = dbus.MakeVariant(notif.Image)
	}
	return h
}

// Send calls Notify(app_name, replaces_id, app_icon, summary, body, actions,
// hints, expire_timeout).
func (n *dbusNotifier) Send(notif Notification) (uint32, error) {
	summary, body := n.caps.Text(notif)

	var id uint32
	err := n.obj.Call(busName+".Notify", 0,
		appName,
		notif.Replaces,
		appEntry,
		summary,
		body,
		[]string{},
		n.hints(notif),
		notif.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Withdraw(id uint32) error {
	return n.obj.Call(busName+".CloseNotification", 0, id).Err
}
