package playback

// State is the transport state tag.
//
//	            select(i)                   toggle
//	┌──────┐ ────────────▶ ┌────────────┐ ◀────────▶ ┌───────────┐
//	│ Idle │               │ Playing(i) │            │ Paused(i) │
//	└──────┘ ◀──────────── └────────────┘            └───────────┘
//	            stop (from any state)
//
// Idle always carries index -1 and Playing/Paused always carry a valid
// index; the service never exposes any other combination.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is selected (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Snapshot is a consistent copy of the player state for rendering.
type Snapshot struct {
	State     State
	Index     int // -1 when idle
	Looping   bool
	Shuffling bool
	Volume    float64
}
