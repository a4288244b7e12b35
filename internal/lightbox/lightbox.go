// Package lightbox implements the full-screen photo viewer state machine.
//
//	┌──────────┐     open(i)     ┌──────────┐
//	│  Closed  │ ───────────────▶│ Open(i)  │ ◀─┐ next: (i+1) mod n
//	└──────────┘                 └──────────┘ ──┘ prev: (i-1+n) mod n
//	     ▲                            │
//	     └────────────────────────────┘
//	      close (esc, close key, background click)
//
// The machine is bound to the photo list that was visible when it was
// opened; switching category closes it and the next open uses the new list.
package lightbox

import "errors"

var (
	// ErrEmpty is returned when opening on an empty photo list.
	ErrEmpty = errors.New("no photos to show")
	// ErrOutOfRange is returned when opening past the end of the list.
	ErrOutOfRange = errors.New("photo index out of range")
)

// Phase is the lightbox state tag.
type Phase int

const (
	Closed Phase = iota
	Open
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Machine holds the lightbox state. The zero value is Closed.
type Machine struct {
	phase  Phase
	index  int
	photos []string
}

// Open shows photos[i]. It fails without changing state when the list is
// empty or i is outside [0, len(photos)).
func (m *Machine) Open(photos []string, i int) error {
	if len(photos) == 0 {
		return ErrEmpty
	}
	if i < 0 || i >= len(photos) {
		return ErrOutOfRange
	}
	m.phase = Open
	m.index = i
	m.photos = photos
	return nil
}

// Close returns to Closed. Closing a closed lightbox is a no-op.
func (m *Machine) Close() {
	m.phase = Closed
	m.index = 0
	m.photos = nil
}

// Next advances with wraparound. No-op while closed.
func (m *Machine) Next() {
	if m.phase != Open {
		return
	}
	m.index = (m.index + 1) % len(m.photos)
}

// Prev steps back with wraparound. No-op while closed.
func (m *Machine) Prev() {
	if m.phase != Open {
		return
	}
	n := len(m.photos)
	m.index = (m.index - 1 + n) % n
}

// HandleKey applies the viewer shortcuts (left, right, esc). Keys are only
// active while open; it reports whether the key was consumed.
func (m *Machine) HandleKey(key string) bool {
	if m.phase != Open {
		return false
	}
	switch key {
	case "esc", "q":
		m.Close()
	case "left", "h":
		m.Prev()
	case "right", "l":
		m.Next()
	default:
		return false
	}
	return true
}

// Phase returns the current state tag.
func (m *Machine) Phase() Phase { return m.phase }

// IsOpen reports whether the viewer is shown.
func (m *Machine) IsOpen() bool { return m.phase == Open }

// Index returns the 0-based index of the shown photo, or -1 when closed.
func (m *Machine) Index() int {
	if m.phase != Open {
		return -1
	}
	return m.index
}

// Current returns the shown photo filename, or "" when closed.
func (m *Machine) Current() string {
	if m.phase != Open {
		return ""
	}
	return m.photos[m.index]
}

// Position returns the 1-based counter for display.
func (m *Machine) Position() int {
	if m.phase != Open {
		return 0
	}
	return m.index + 1
}

// Total returns the size of the list the viewer was opened on.
func (m *Machine) Total() int {
	return len(m.photos)
}
