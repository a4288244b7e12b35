package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/ui/lightboxview"
	"github.com/llehouerou/keepsake/internal/ui/playerbar"
)

func isClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func isWheel(msg tea.MouseMsg) (delta int, ok bool) {
	if msg.Action != tea.MouseActionPress {
		return 0, false
	}
	switch msg.Button { //nolint:exhaustive // only wheel buttons matter here
	case tea.MouseButtonWheelUp:
		return -1, true
	case tea.MouseButtonWheelDown:
		return 1, true
	}
	return 0, false
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.context() {
	case contextLightbox:
		return m, m.handleLightboxMouse(msg)
	case contextCabinet:
		moved := m.idle.Move(m.service.IsPlaying())
		return m, tea.Batch(moved, m.handleCabinetMouse(msg))
	default:
		return m, m.handleGalleryMouse(msg)
	}
}

// handleGalleryMouse focuses thumbnails on hover and opens them on click.
func (m *Model) handleGalleryMouse(msg tea.MouseMsg) tea.Cmd {
	if d, ok := isWheel(msg); ok {
		m.gallery.MoveFocus(0, d)
		return nil
	}

	x, y := msg.X, msg.Y-bodyTop
	switch {
	case msg.Action == tea.MouseActionMotion:
		if i, ok := m.gallery.PhotoAt(x, y); ok {
			m.gallery.SetFocus(i)
		}
	case isClick(msg):
		if c, ok := m.gallery.CategoryAt(x, y); ok {
			m.gallery.SetCategory(c)
			return nil
		}
		if i, ok := m.gallery.PhotoAt(x, y); ok {
			m.gallery.SetFocus(i)
			return m.openLightbox(i)
		}
	}
	return nil
}

// handleLightboxMouse closes on background clicks and navigates on arrows.
func (m *Model) handleLightboxMouse(msg tea.MouseMsg) tea.Cmd {
	if d, ok := isWheel(msg); ok {
		if d < 0 {
			m.lightbox.Prev()
		} else {
			m.lightbox.Next()
		}
		m.refreshLightboxSize()
		return nil
	}
	if !isClick(msg) {
		return nil
	}

	path := m.gallery.Path(m.lightbox.Current())
	img, _ := lightboxview.Fitted(m.photos, path, m.width, m.height)
	switch lightboxview.HitTest(msg.X, msg.Y, img, m.width, m.height) {
	case lightboxview.TargetPrev:
		m.lightbox.Prev()
		m.refreshLightboxSize()
	case lightboxview.TargetNext:
		m.lightbox.Next()
		m.refreshLightboxSize()
	case lightboxview.TargetBackground, lightboxview.TargetClose:
		m.closeLightbox()
	case lightboxview.TargetImage:
	}
	return nil
}

// handleCabinetMouse dispatches clicks to the track list and player bar.
func (m *Model) handleCabinetMouse(msg tea.MouseMsg) tea.Cmd {
	if d, ok := isWheel(msg); ok {
		m.tracks.MoveCursor(d)
		return nil
	}
	if !isClick(msg) {
		return nil
	}

	if msg.Y >= m.barTop() {
		return m.handlePlayerBarClick(msg.X, msg.Y-m.barTop())
	}

	x, y := msg.X-m.stageWidth(), msg.Y-bodyTop
	if x < 0 || y < 0 {
		return nil
	}
	if i, ok := m.tracks.RowAt(y); ok {
		return m.selectTrack(i)
	}
	if y == m.tracks.Rows()-1 {
		if p, ok := m.tracks.DotAt(x); ok {
			m.tracks.SetPage(p)
		}
	}
	return nil
}

func (m *Model) handlePlayerBarClick(x, y int) tea.Cmd {
	t := playerbar.HitTest(x, y, m.width)
	if t.OnBar {
		return m.seekFraction(t.Fraction)
	}

	switch t.Button {
	case playerbar.ButtonPrev:
		return m.previous()
	case playerbar.ButtonPlayPause:
		return m.playPause()
	case playerbar.ButtonStop:
		return m.stop()
	case playerbar.ButtonNext:
		return m.next()
	case playerbar.ButtonLoop:
		m.service.ToggleLoop()
	case playerbar.ButtonShuffle:
		m.service.ToggleShuffle()
	case playerbar.ButtonNone:
	}
	return nil
}
