package player

import "time"

var _ Interface = (*Mock)(nil)

// Mock is an in-memory engine for tests. It follows the same state rules as
// Player and records what it was asked to play and seek.
type Mock struct {
	state    State
	position time.Duration
	duration time.Duration
	loop     bool
	volume   float64
	gen      uint64
	finished chan uint64

	playErr   error
	playCalls []string
	seekCalls []time.Duration
}

// NewMock returns a stopped mock at full volume.
func NewMock() *Mock {
	return &Mock{volume: 1, finished: make(chan uint64, 1)}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	m.Stop()
	m.gen++
	select {
	case <-m.finished:
	default:
	}
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.position = 0
}

func (m *Mock) Pause() {
	if m.state.CanPause() {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state.CanResume() {
		m.state = Playing
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

// SeekTo records the request and moves the position, clamped to the
// duration when one is set.
func (m *Mock) SeekTo(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
	m.position = max(d, 0)
	if m.duration > 0 {
		m.position = min(m.position, m.duration)
	}
}

func (m *Mock) SetLoop(loop bool) { m.loop = loop }

func (m *Mock) Loop() bool { return m.loop }

func (m *Mock) SetVolume(level float64) { m.volume = min(max(level, 0), 1) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) FinishedChan() <-chan uint64 { return m.finished }

func (m *Mock) Generation() uint64 { return m.gen }

// SetPlayError makes every following Play fail with err.
func (m *Mock) SetPlayError(err error) { m.playErr = err }

// PlayCalls returns every path passed to Play, failed calls included.
func (m *Mock) PlayCalls() []string { return m.playCalls }

// SeekCalls returns every position passed to SeekTo.
func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// SetDuration sets the length of the loaded track; 0 means unknown.
func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// SetPosition moves the playhead without recording a seek.
func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// Finish signals natural completion the way Player does: a looping track
// never finishes.
func (m *Mock) Finish() {
	if m.loop || !m.state.IsActive() {
		return
	}
	select {
	case m.finished <- m.gen:
	default:
	}
}
