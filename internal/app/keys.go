package app

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/errmsg"
	"github.com/llehouerou/keepsake/internal/keymap"
)

// Key contexts, matching keymap.Binding.Context.
const (
	contextGallery  = "gallery"
	contextLightbox = "lightbox"
	contextCabinet  = "cabinet"
)

// context returns the key context of what is on screen.
func (m Model) context() string {
	switch {
	case m.view == ViewGallery && m.lightbox.IsOpen():
		return contextLightbox
	case m.view == ViewCabinet:
		return contextCabinet
	default:
		return contextGallery
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any key counts as activity for the control surface.
	var moved tea.Cmd
	if m.view == ViewCabinet {
		moved = m.idle.Move(m.service.IsPlaying())
	}

	ctx := m.context()
	action := m.keys[ctx].Resolve(key)

	var cmd tea.Cmd
	switch {
	case action == keymap.ActionQuit:
		return m, tea.Quit
	case action == keymap.ActionSwitchView:
		m.switchView()
	case action == keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case ctx == contextLightbox:
		cmd = m.handleLightboxAction(action)
	case ctx == contextGallery:
		cmd = m.handleGalleryKey(key, action)
	case ctx == contextCabinet:
		cmd = m.handleCabinetAction(action)
	}
	return m, tea.Batch(moved, cmd)
}

func (m *Model) switchView() {
	if m.view == ViewGallery {
		m.view = ViewCabinet
		return
	}
	m.view = ViewGallery
	m.idle.Reveal()
}

func (m *Model) handleGalleryKey(key string, action keymap.Action) tea.Cmd {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		m.gallery.SetCategory(int(key[0] - '1'))
		return nil
	}

	switch action {
	case keymap.ActionMoveLeft:
		m.gallery.MoveFocus(-1, 0)
	case keymap.ActionMoveRight:
		m.gallery.MoveFocus(1, 0)
	case keymap.ActionMoveUp:
		m.gallery.MoveFocus(0, -1)
	case keymap.ActionMoveDown:
		m.gallery.MoveFocus(0, 1)
	case keymap.ActionPrevCategory:
		m.gallery.CycleCategory(-1)
	case keymap.ActionNextCategory:
		m.gallery.CycleCategory(1)
	case keymap.ActionOpen:
		return m.openLightbox(m.gallery.Focus())
	}
	return nil
}

func (m *Model) handleLightboxAction(action keymap.Action) tea.Cmd {
	switch action {
	case keymap.ActionLightboxPrev:
		m.lightbox.Prev()
		m.refreshLightboxSize()
	case keymap.ActionLightboxNext:
		m.lightbox.Next()
		m.refreshLightboxSize()
	case keymap.ActionLightboxClose:
		m.closeLightbox()
	}
	return nil
}

func (m *Model) handleCabinetAction(action keymap.Action) tea.Cmd {
	switch action {
	case keymap.ActionPlayPause:
		return m.playPause()
	case keymap.ActionStop:
		return m.stop()
	case keymap.ActionNextTrack:
		return m.next()
	case keymap.ActionPrevTrack:
		return m.previous()
	case keymap.ActionToggleLoop:
		m.service.ToggleLoop()
	case keymap.ActionToggleShuffle:
		m.service.ToggleShuffle()
	case keymap.ActionVolumeUp:
		m.service.AdjustVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.service.AdjustVolume(-volumeStep)
	case keymap.ActionSeekForward:
		return m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		return m.seekBy(-seekStep)
	case keymap.ActionCursorUp:
		m.tracks.MoveCursor(-1)
	case keymap.ActionCursorDown:
		m.tracks.MoveCursor(1)
	case keymap.ActionSelect:
		return m.selectTrack(m.tracks.Cursor())
	case keymap.ActionPrevPage:
		m.tracks.PrevPage()
	case keymap.ActionNextPage:
		m.tracks.NextPage()
	}
	return nil
}

// openLightbox opens the viewer on photo i of the filtered list.
func (m *Model) openLightbox(i int) tea.Cmd {
	if err := m.lightbox.Open(m.gallery.Photos(), i); err != nil {
		return m.fail(errmsg.OpLightboxOpen, err)
	}
	m.refreshLightboxSize()
	return nil
}

// closeLightbox closes the viewer, leaving the gallery focus on the last
// photo shown.
func (m *Model) closeLightbox() {
	if !m.lightbox.IsOpen() {
		return
	}
	m.gallery.SetFocus(m.lightbox.Index())
	m.lightbox.Close()
	m.lightboxSize = -1
}

func (m *Model) refreshLightboxSize() {
	m.lightboxSize = -1
	if !m.lightbox.IsOpen() {
		return
	}
	if fi, err := os.Stat(m.gallery.Path(m.lightbox.Current())); err == nil {
		m.lightboxSize = fi.Size()
	}
}

// helpKeys returns the help for what is on screen.
func (m Model) helpKeys() keymap.Help {
	return keymap.HelpFor(m.context())
}
