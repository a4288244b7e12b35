// Package notify announces the playing track on the desktop.
package notify

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one desktop bubble.
type Notification struct {
	Summary  string
	Body     string
	Image    string  // path to a picture file, shown when the server supports it
	Timeout  int32   // ms; -1 leaves it to the server, 0 never expires
	Replaces uint32  // id of a bubble to update in place, 0 for a new one
	Urgency  Urgency // track changes are Low
	// Transient keeps the bubble out of the notification history.
	Transient bool
}

// Notifier shows and withdraws notifications.
type Notifier interface {
	// Send shows n and returns its id. A notifier without a server returns
	// 0 and no error.
	Send(n Notification) (uint32, error)
	Withdraw(id uint32) error
}

// Capabilities lists what the notification server can display.
type Capabilities map[string]bool

// Text returns the summary and body to send. Servers without body support
// get the body folded into the summary.
func (c Capabilities) Text(n Notification) (summary, body string) {
	if n.Body == "" || c == nil || c["body"] {
		return n.Summary, n.Body
	}
	return n.Summary + " · " + n.Body, ""
}

// noop is used when no notification server is reachable.
type noop struct{}

func (noop) Send(Notification) (uint32, error) { return 0, nil }

func (noop) Withdraw(uint32) error { return nil }
