package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// locked runs fn while the speaker goroutine is held off the streamers.
func locked(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

// Stop halts the track and releases the file. Position reads 0 afterwards.
func (p *Player) Stop() {
	if !p.state.IsActive() {
		return
	}
	speaker.Clear()
	p.release()
	p.state = Stopped
}

func (p *Player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	if p.file != nil {
		_ = p.file.Close()
	}
	p.streamer, p.file = nil, nil
	p.ctrl, p.volume = nil, nil
}

// Pause holds the track at its position.
func (p *Player) Pause() {
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	locked(func() { p.ctrl.Paused = true })
	p.state = Paused
}

// Resume continues a paused track.
func (p *Player) Resume() {
	if !p.state.CanResume() || p.ctrl == nil {
		return
	}
	locked(func() { p.ctrl.Paused = false })
	p.state = Playing
}

// Position returns the elapsed time in the current pass of the track.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	var pos time.Duration
	locked(func() { pos = p.format.SampleRate.D(p.streamer.Position()) })
	return pos
}

// SeekTo jumps to position, clamped to the track bounds.
func (p *Player) SeekTo(position time.Duration) {
	if p.streamer == nil || !p.state.IsActive() {
		return
	}
	locked(func() {
		last := max(p.streamer.Len()-1, 0)
		_ = p.streamer.Seek(min(max(p.format.SampleRate.N(position), 0), last))
	})
}
