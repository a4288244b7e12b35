// Package idle hides the cabinet controls after a period without input
// while a track is playing.
package idle

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the inactivity time before the controls hide.
const DefaultDelay = 3 * time.Second

// HideMsg fires when the inactivity timer armed by Move expires.
type HideMsg struct {
	Gen uint64
}

// Tracker tracks whether the controls are hidden.
// Each Move supersedes any timer armed before it.
type Tracker struct {
	delay  time.Duration
	gen    uint64
	hidden bool
}

// New creates a tracker with the given delay.
func New(delay time.Duration) *Tracker {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Tracker{delay: delay}
}

// Move records user activity. The controls are revealed and a hide timer is
// armed only when a track is playing.
func (t *Tracker) Move(playing bool) tea.Cmd {
	t.hidden = false
	t.gen++
	if !playing {
		return nil
	}
	gen := t.gen
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return HideMsg{Gen: gen}
	})
}

// Handle hides the controls if msg is the latest timer and playback continues.
func (t *Tracker) Handle(msg HideMsg, playing bool) {
	if msg.Gen != t.gen || !playing {
		return
	}
	t.hidden = true
}

// Reveal shows the controls without arming a timer.
func (t *Tracker) Reveal() {
	t.hidden = false
	t.gen++
}

// Hidden returns whether the controls are hidden.
func (t *Tracker) Hidden() bool { return t.hidden }

// Delay returns the inactivity delay.
func (t *Tracker) Delay() time.Duration { return t.delay }
