package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/errmsg"
	"github.com/llehouerou/keepsake/internal/playback"
)

const (
	volumeStep = 0.05
	seekStep   = 5 * time.Second
)

// handlePlaybackMsg routes playback-related messages.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.service.IsPlaying() {
			return m, TickCmd()
		}
		m.ticking = false
		return m, nil

	case TrackFinishedMsg:
		// A finish from a track the user already replaced must not skip the
		// new selection.
		if msg.Generation != m.service.Player().Generation() {
			return m, m.WatchTrackFinished()
		}
		err := m.service.HandleFinished()
		return m, tea.Batch(m.fail(errmsg.OpPlaybackNext, err), m.WatchTrackFinished())

	case ServiceStateChangedMsg:
		return m.handleServiceStateChanged(msg)

	case ServiceTrackChangedMsg:
		return m.handleServiceTrackChanged(msg)

	case ServiceErrorMsg:
		m.logger.Warn("playback error", "op", msg.Operation, "path", msg.Path, "error", msg.Err)
		return m, m.WatchServiceEvents()

	case ServiceModeChangedMsg, ServicePositionChangedMsg:
		return m, m.WatchServiceEvents()

	case ServiceClosedMsg:
		return m, nil
	}
	return m, nil
}

// handleServiceStateChanged keeps the ticker, idle timer and background in
// step with the transport state. Events arrive on separate channels, so the
// service is asked for the current state rather than trusting msg.Current.
func (m Model) handleServiceStateChanged(msg ServiceStateChangedMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.WatchServiceEvents()}

	if msg.Current != m.service.State() {
		m.logger.Debug("stale state change", "event", msg.Current, "current", m.service.State())
	}
	switch m.service.State() {
	case playback.StatePlaying:
		if !m.ticking {
			m.ticking = true
			cmds = append(cmds, TickCmd())
		}
		// The click or key that started playback counts as activity.
		cmds = append(cmds, m.idle.Move(true))
	case playback.StatePaused:
		m.idle.Reveal()
	case playback.StateIdle:
		cmds = append(cmds, m.clearPlaying())
	}
	m.tracks.SetActive(m.service.Index())
	return m, tea.Batch(cmds...)
}

// clearPlaying drops everything that belongs to the playing track.
func (m *Model) clearPlaying() tea.Cmd {
	m.idle.Reveal()
	m.ambient.Clear()
	m.tracks.SetActive(-1)
	return m.dismissCmd()
}

// handleServiceTrackChanged starts the background crossfade and announces
// the new track.
func (m Model) handleServiceTrackChanged(msg ServiceTrackChangedMsg) (tea.Model, tea.Cmd) {
	m.tracks.SetActive(m.service.Index())
	if msg.Index != m.service.Index() {
		return m, m.WatchServiceEvents()
	}
	return m, tea.Batch(
		m.WatchServiceEvents(),
		m.ambient.Begin(msg.Track.CoverSource()),
		m.notifyCmd(msg.Track),
	)
}

// playPause toggles playback, starting the track under the cursor when idle.
func (m *Model) playPause() tea.Cmd {
	if m.service.IsIdle() {
		return m.selectTrack(m.tracks.Cursor())
	}
	return m.fail(errmsg.OpPlaybackStart, m.service.Toggle())
}

func (m *Model) selectTrack(i int) tea.Cmd {
	if err := m.service.Select(i); err != nil {
		return m.fail(errmsg.OpPlaybackStart, err)
	}
	return nil
}

// stop clears the background itself: stopping from idle emits no state
// change, and a swap still in flight may have brought the picture back.
func (m *Model) stop() tea.Cmd {
	err := m.service.Stop()
	return tea.Batch(m.fail(errmsg.OpPlaybackStart, err), m.clearPlaying())
}

func (m *Model) next() tea.Cmd {
	return m.fail(errmsg.OpPlaybackNext, m.service.Next())
}

func (m *Model) previous() tea.Cmd {
	return m.fail(errmsg.OpPlaybackNext, m.service.Previous())
}

func (m *Model) seekBy(delta time.Duration) tea.Cmd {
	if m.service.IsIdle() {
		return nil
	}
	target := max(m.service.Position()+delta, 0)
	if d := m.service.Duration(); d > 0 {
		target = min(target, d)
	}
	return m.fail(errmsg.OpPlaybackSeek, m.service.SeekTo(target))
}

func (m *Model) seekFraction(f float64) tea.Cmd {
	return m.fail(errmsg.OpPlaybackSeek, m.service.SeekFraction(f))
}
