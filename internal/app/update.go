package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/ambient"
	"github.com/llehouerou/keepsake/internal/describe"
	"github.com/llehouerou/keepsake/internal/errmsg"
	"github.com/llehouerou/keepsake/internal/idle"
	"github.com/llehouerou/keepsake/internal/mpris"
	"github.com/llehouerou/keepsake/internal/ui/picture"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if pm, ok := msg.(PlaybackMessage); ok {
		return m.handlePlaybackMsg(pm)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case picture.LoadedMsg:
		m.photos.Store(msg)
		if msg.Err != nil {
			m.logger.Warn(errmsg.FormatWith(errmsg.OpPhotoLoad, msg.Key, msg.Err))
		}
		return m, nil

	case describe.LoadedMsg:
		m.gallery.SetDescription(msg.Filename, msg.Text)
		return m, nil

	case ambient.SwapMsg:
		return m, m.ambient.HandleSwap(msg)

	case ambient.LoadedMsg:
		return m, m.ambient.HandleLoaded(msg)

	case ambient.FadeTickMsg:
		return m, m.ambient.HandleFadeTick(msg)

	case idle.HideMsg:
		m.idle.Handle(msg, m.service.IsPlaying())
		return m, nil

	case mpris.CommandMsg:
		if err := mpris.Apply(m.service, msg); err != nil {
			return m, m.fail(errmsg.OpPlaybackStart, err)
		}
		return m, nil

	case StatusClearMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// fail logs err and shows it in the status line.
func (m *Model) fail(op errmsg.Op, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.logger.Warn("operation failed", "op", string(op), "error", err)
	return m.setStatus(errmsg.Format(op, err))
}
