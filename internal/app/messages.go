// Package app contains the root model tying the photo album and the record
// cabinet together.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/playback"
)

// ViewMode is the top-level view on screen.
type ViewMode int

const (
	ViewGallery ViewMode = iota
	ViewCabinet
)

// String returns the tab label.
func (v ViewMode) String() string {
	switch v {
	case ViewGallery:
		return "Album"
	case ViewCabinet:
		return "Cabinet"
	}
	return ""
}

// PlaybackMessage is implemented by messages related to audio playback.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// TickMsg is sent periodically while playing to refresh the progress bar.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// TrackFinishedMsg is sent when the player reaches the end of a track.
// Generation identifies the track that finished.
type TrackFinishedMsg struct {
	Generation uint64
}

func (TrackFinishedMsg) playbackMessage() {}

// ServiceStateChangedMsg is sent when the playback service state changes.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when playback starts on a track.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceModeChangedMsg is sent when loop or shuffle changes.
type ServiceModeChangedMsg playback.ModeChange

func (ServiceModeChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent when a seek or stop moves the position.
type ServicePositionChangedMsg playback.PositionChange

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when an error occurs in the playback service.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service is closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// StatusClearMsg clears the status line message with the given ID.
type StatusClearMsg struct {
	ID int
}

// StatusDuration is how long status messages are displayed.
const StatusDuration = 4 * time.Second
