package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/ui/picture"
)

// tickInterval is the progress refresh period while playing.
const tickInterval = 500 * time.Millisecond

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// StatusClearCmd returns a command that clears a status message after a delay.
func StatusClearCmd(id int) tea.Cmd {
	return tea.Tick(StatusDuration, func(time.Time) tea.Msg {
		return StatusClearMsg{ID: id}
	})
}

// WatchTrackFinished returns a command that waits for the player to finish
// a track naturally. Manual stops do not signal.
func (m Model) WatchTrackFinished() tea.Cmd {
	ch := m.service.Player().FinishedChan()
	return func() tea.Msg {
		gen, ok := <-ch
		if !ok {
			return nil
		}
		return TrackFinishedMsg{Generation: gen}
	}
}

// WatchServiceEvents returns a command that waits for the next playback
// service event. It must be re-armed after every event.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg(e)
		case e := <-sub.PositionChanged:
			return ServicePositionChangedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// loadPhotosCmd loads every photo of the collection once. Thumbnails and
// the lightbox share the decoded images.
func (m Model) loadPhotosCmd() tea.Cmd {
	names := m.index.Collection()
	cmds := make([]tea.Cmd, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, picture.LoadCmd(m.gallery.Path(name), picture.Decode))
	}
	return tea.Batch(cmds...)
}

// loadDescriptionsCmd fetches every description once, independently.
func (m Model) loadDescriptionsCmd() tea.Cmd {
	if m.describe == nil {
		return nil
	}
	return m.describe.Batch(m.index.Collection())
}

// notifyCmd announces a track on the desktop.
func (m Model) notifyCmd(t catalog.Track) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	n, logger := m.notifier, m.logger
	return func() tea.Msg {
		if err := n.Show(t); err != nil {
			logger.Debug("notification failed", "error", err)
		}
		return nil
	}
}

// dismissCmd closes the desktop announcement.
func (m Model) dismissCmd() tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	n := m.notifier
	return func() tea.Msg {
		_ = n.Dismiss()
		return nil
	}
}
