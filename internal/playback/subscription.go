package playback

import "sync/atomic"

// eventBufferSize bounds each event channel. A subscriber that falls this
// far behind loses events instead of blocking the transport.
const eventBufferSize = 16

// Subscription delivers transport events to one consumer. Done closes when
// the service shuts down.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	ModeChanged     <-chan ModeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	state    chan StateChange
	track    chan TrackChange
	position chan PositionChange
	mode     chan ModeChange
	errs     chan ErrorEvent
	done     chan struct{}

	dropped atomic.Uint64
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		mode:     make(chan ModeChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged = s.state, s.track
	s.PositionChanged, s.ModeChanged = s.position, s.mode
	s.Error, s.Done = s.errs, s.done
	return s
}

// Dropped returns how many events were discarded on full buffers.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscription) close() {
	close(s.done)
}

// offer queues e without blocking and counts it as dropped when ch is full.
func offer[E any](s *Subscription, ch chan E, e E) {
	select {
	case ch <- e:
	default:
		s.dropped.Add(1)
	}
}

// deliver routes an event to the matching channel.
func (s *Subscription) deliver(e any) {
	switch e := e.(type) {
	case StateChange:
		offer(s, s.state, e)
	case TrackChange:
		offer(s, s.track, e)
	case PositionChange:
		offer(s, s.position, e)
	case ModeChange:
		offer(s, s.mode, e)
	case ErrorEvent:
		offer(s, s.errs, e)
	}
}
