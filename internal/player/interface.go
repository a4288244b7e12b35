package player

import "time"

// Interface defines the audio engine contract for dependency injection and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	State() State
	Position() time.Duration
	// Duration returns 0 while the length of the loaded track is unknown.
	Duration() time.Duration
	SeekTo(position time.Duration)
	// SetLoop makes the engine repeat the current track natively; a looping
	// track never signals FinishedChan.
	SetLoop(loop bool)
	Loop() bool
	SetVolume(level float64)
	Volume() float64
	FinishedChan() <-chan uint64
	// Generation changes on every Play; FinishedChan signals carry it.
	Generation() uint64
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
