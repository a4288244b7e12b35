package playback

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/player"
	"github.com/llehouerou/keepsake/internal/progress"
)

var (
	// ErrNoTrack is returned when selecting an index outside the catalog.
	ErrNoTrack = errors.New("no such track")
	// ErrEmptyCatalog is returned by Next/Previous on an empty catalog.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("playback service closed")
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// Option configures the service.
type Option func(*serviceImpl)

// WithRand sets the shuffle source. intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *serviceImpl) { s.intn = intn }
}

// WithVolume sets the initial volume level.
func WithVolume(level float64) Option {
	return func(s *serviceImpl) { s.volume = clampVolume(level) }
}

type serviceImpl struct {
	mu sync.RWMutex

	player  player.Interface
	catalog *catalog.Catalog
	intn    func(n int) int

	state     State
	index     int
	looping   bool
	shuffling bool
	volume    float64

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a new playback service over a catalog.
func New(p player.Interface, c *catalog.Catalog, opts ...Option) Service {
	s := &serviceImpl{
		player:  p,
		catalog: c,
		intn:    rand.IntN,
		state:   StateIdle,
		index:   -1,
		volume:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	p.SetVolume(s.volume)
	p.SetLoop(false)
	return s
}

// Select starts playback of the track at index from any state.
func (s *serviceImpl) Select(index int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	track, ok := s.catalog.Track(index)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNoTrack, index)
	}

	prevState, prevIndex := s.state, s.index

	if err := s.player.Play(track.Audio); err != nil {
		s.state, s.index = StateIdle, -1
		s.mu.Unlock()
		s.emit(ErrorEvent{Operation: "play", Path: track.Audio, Err: err})
		if prevState != StateIdle {
			s.emit(StateChange{Previous: prevState, Current: StateIdle})
		}
		return err
	}
	s.player.SetLoop(s.looping)
	s.player.SetVolume(s.volume)
	s.state, s.index = StatePlaying, index
	s.mu.Unlock()

	if prevState != StatePlaying {
		s.emit(StateChange{Previous: prevState, Current: StatePlaying})
	}
	s.emit(TrackChange{PreviousIndex: prevIndex, Index: index, Track: track})
	return nil
}

// Toggle switches between Playing and Paused. No-op when idle.
func (s *serviceImpl) Toggle() error {
	s.mu.Lock()
	prev := s.state
	switch s.state {
	case StatePlaying:
		s.player.Pause()
		s.state = StatePaused
	case StatePaused:
		s.player.Resume()
		s.state = StatePlaying
	case StateIdle:
		s.mu.Unlock()
		return nil
	}
	cur := s.state
	s.mu.Unlock()

	s.emit(StateChange{Previous: prev, Current: cur})
	return nil
}

// Stop returns to Idle from any state with the position reset to 0.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	prev := s.state
	s.player.Stop()
	s.state, s.index = StateIdle, -1
	s.mu.Unlock()

	if prev != StateIdle {
		s.emit(StateChange{Previous: prev, Current: StateIdle})
	}
	s.emit(PositionChange{Position: 0})
	return nil
}

// Next selects the following track with wraparound, or a uniformly random
// one in shuffle mode. The random pick may repeat the current track.
func (s *serviceImpl) Next() error {
	s.mu.RLock()
	n := s.catalog.Len()
	if n == 0 {
		s.mu.RUnlock()
		return ErrEmptyCatalog
	}
	var next int
	switch {
	case s.shuffling:
		next = s.intn(n)
	case s.index >= n-1:
		next = 0
	default:
		next = s.index + 1
	}
	s.mu.RUnlock()

	return s.Select(next)
}

// Previous selects the preceding track with wraparound. From idle or the
// first track it selects the last one.
func (s *serviceImpl) Previous() error {
	s.mu.RLock()
	n := s.catalog.Len()
	if n == 0 {
		s.mu.RUnlock()
		return ErrEmptyCatalog
	}
	prev := s.index - 1
	if s.index <= 0 {
		prev = n - 1
	}
	s.mu.RUnlock()

	return s.Select(prev)
}

// HandleFinished advances to the next track unless looping or idle.
func (s *serviceImpl) HandleFinished() error {
	s.mu.RLock()
	skip := s.looping || s.state == StateIdle
	s.mu.RUnlock()
	if skip {
		return nil
	}
	return s.Next()
}

// SeekTo moves to an absolute position. No-op when idle.
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	if !s.state.IsActive() {
		s.mu.Unlock()
		return nil
	}
	s.player.SeekTo(position)
	s.mu.Unlock()

	s.emit(PositionChange{Position: position})
	return nil
}

// SeekFraction seeks to fraction*duration. No-op while the duration is unknown.
func (s *serviceImpl) SeekFraction(fraction float64) error {
	target, ok := progress.SeekTarget(fraction, s.Duration())
	if !ok {
		return nil
	}
	return s.SeekTo(target)
}

// Loop returns whether the current track repeats.
func (s *serviceImpl) Loop() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.looping
}

// SetLoop sets the loop flag and mirrors it onto the engine.
func (s *serviceImpl) SetLoop(enabled bool) {
	s.mu.Lock()
	s.looping = enabled
	s.player.SetLoop(enabled)
	e := ModeChange{Looping: s.looping, Shuffling: s.shuffling}
	s.mu.Unlock()
	s.emit(e)
}

// ToggleLoop flips the loop flag and returns the new value.
func (s *serviceImpl) ToggleLoop() bool {
	enabled := !s.Loop()
	s.SetLoop(enabled)
	return enabled
}

// Shuffle returns whether Next picks a random track.
func (s *serviceImpl) Shuffle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuffling
}

// SetShuffle sets the shuffle flag.
func (s *serviceImpl) SetShuffle(enabled bool) {
	s.mu.Lock()
	s.shuffling = enabled
	e := ModeChange{Looping: s.looping, Shuffling: s.shuffling}
	s.mu.Unlock()
	s.emit(e)
}

// ToggleShuffle flips the shuffle flag and returns the new value.
func (s *serviceImpl) ToggleShuffle() bool {
	enabled := !s.Shuffle()
	s.SetShuffle(enabled)
	return enabled
}

// Volume returns the volume level (0.0 to 1.0).
func (s *serviceImpl) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// SetVolume sets the volume level, clamped to [0, 1].
func (s *serviceImpl) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(level)
	s.player.SetVolume(s.volume)
}

// AdjustVolume changes the volume by delta and returns the new level.
func (s *serviceImpl) AdjustVolume(delta float64) float64 {
	s.SetVolume(s.Volume() + delta)
	return s.Volume()
}

func clampVolume(level float64) float64 {
	return min(max(level, 0), 1)
}

// State returns the transport state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Index returns the selected track index (-1 when idle).
func (s *serviceImpl) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// IsPlaying returns true while a track is actively playing.
func (s *serviceImpl) IsPlaying() bool {
	return s.State() == StatePlaying
}

// IsIdle returns true when no track is selected.
func (s *serviceImpl) IsIdle() bool {
	return s.State() == StateIdle
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateIdle {
		return 0
	}
	return s.player.Position()
}

// Duration returns the current track duration, 0 while unknown.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateIdle {
		return 0
	}
	return s.player.Duration()
}

// CurrentTrack returns a copy of the selected track, or nil when idle.
func (s *serviceImpl) CurrentTrack() *catalog.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.catalog.Track(s.index)
	if !ok {
		return nil
	}
	return &t
}

// Snapshot returns a consistent copy of the player state.
func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		State:     s.state,
		Index:     s.index,
		Looping:   s.looping,
		Shuffling: s.shuffling,
		Volume:    s.volume,
	}
}

// Catalog returns the track catalog.
func (s *serviceImpl) Catalog() *catalog.Catalog {
	return s.catalog
}

// Player returns the underlying engine.
func (s *serviceImpl) Player() player.Interface {
	return s.player
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops playback and closes all subscriptions.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.player.Stop()
	s.state, s.index = StateIdle, -1
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

// emit fans an event out to every subscriber.
func (s *serviceImpl) emit(e any) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.deliver(e)
	}
}
