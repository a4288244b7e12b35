package playback

import (
	"time"

	"github.com/llehouerou/keepsake/internal/catalog"
)

// StateChange is emitted when the transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a track, including a
// reselection of the current one. The app reacts with the ambient crossfade,
// title/composer display and desktop notification.
//
// Emitted by Select, Next, Previous and HandleFinished (through Next).
// Not emitted by Toggle or Stop.
type TrackChange struct {
	PreviousIndex int
	Index         int
	Track         catalog.Track
}

// ModeChange is emitted when loop or shuffle changes.
type ModeChange struct {
	Looping   bool
	Shuffling bool
}

// PositionChange is emitted when a seek or stop moves the position.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "seek"
	Path      string // track path if applicable
	Err       error
}
