package playback

import (
	"time"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/player"
)

// Service defines the transport contract of the record cabinet.
type Service interface {
	// Transport
	Select(index int) error
	Toggle() error
	Stop() error
	Next() error
	Previous() error
	// HandleFinished reacts to natural track completion: advance unless
	// looping (the engine repeats the track itself).
	HandleFinished() error

	// Progress
	SeekTo(position time.Duration) error
	SeekFraction(fraction float64) error

	// Modes
	Loop() bool
	SetLoop(enabled bool)
	ToggleLoop() bool
	Shuffle() bool
	SetShuffle(enabled bool)
	ToggleShuffle() bool

	// Volume
	Volume() float64
	SetVolume(level float64)
	AdjustVolume(delta float64) float64

	// State queries
	State() State
	Index() int
	IsPlaying() bool
	IsIdle() bool
	Position() time.Duration
	Duration() time.Duration
	CurrentTrack() *catalog.Track
	Snapshot() Snapshot
	Catalog() *catalog.Catalog
	Player() player.Interface // Direct player access (for finish watching)

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
