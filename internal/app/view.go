package app

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/keepsake/internal/icons"
	"github.com/llehouerou/keepsake/internal/playback"
	"github.com/llehouerou/keepsake/internal/ui/lightboxview"
	"github.com/llehouerou/keepsake/internal/ui/picture"
	"github.com/llehouerou/keepsake/internal/ui/playerbar"
	"github.com/llehouerou/keepsake/internal/ui/render"
	"github.com/llehouerou/keepsake/internal/ui/styles"
)

// stage memoizes the background fitted to the stage column.
type stage struct {
	src    string
	img    image.Image
	width  int
	height int
	fitted image.Image
}

func (s *stage) fit(src string, img image.Image, width, height int) image.Image {
	if s.src != src || s.img != img || s.width != width || s.height != height {
		s.src, s.img, s.width, s.height = src, img, width, height
		s.fitted = picture.Fit(img, width, height)
	}
	return s.fitted
}

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.context() == contextLightbox {
		return m.renderLightbox()
	}

	var body string
	switch {
	case m.help.ShowAll:
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			m.help.View(m.helpKeys()))
	case m.view == ViewCabinet:
		body = m.renderCabinet()
	default:
		body = enforceHeight(m.gallery.View(), m.bodyHeight())
	}

	view := m.renderHeader() + "\n" + body + "\n" + m.renderStatus()
	return enforceHeight(view, m.height)
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	var tabs []string
	for _, v := range []ViewMode{ViewGallery, ViewCabinet} {
		label := " " + v.String() + " "
		if v == m.view {
			tabs = append(tabs, s.Title.Reverse(true).Render(label))
			continue
		}
		tabs = append(tabs, s.Muted.Render(label))
	}

	var right string
	if t := m.service.CurrentTrack(); t != nil {
		right = s.Muted.Render(icons.PlayPause(m.service.IsPlaying()) + " " + render.Sanitize(t.Title) + " ")
	}
	return render.Row(strings.Join(tabs, " "), right, m.width)
}

func (m Model) renderStatus() string {
	if m.status != "" {
		return styles.T().S().Error.Render(render.Truncate(m.status, m.width))
	}
	if m.help.ShowAll {
		return ""
	}
	return render.TruncateStyled(m.help.View(m.helpKeys()), m.width)
}

func (m Model) renderLightbox() string {
	name := m.lightbox.Current()
	info := lightboxview.Info{
		Name:     name,
		Path:     m.gallery.Path(name),
		Position: m.lightbox.Position(),
		Total:    m.lightbox.Total(),
		Size:     m.lightboxSize,
	}
	return lightboxview.Render(info, m.photos, m.width, m.height)
}

func (m Model) renderCabinet() string {
	h := m.cabinetHeight()
	list := enforceHeight(m.tracks.View(), h)
	if sw := m.stageWidth(); sw > 0 {
		list = lipgloss.JoinHorizontal(lipgloss.Top, m.renderStage(sw, h), list)
	}
	return list + "\n" + playerbar.Render(m.playerBarState(), m.width)
}

// renderStage draws the ambient background at its current brightness.
func (m Model) renderStage(width, height int) string {
	img := m.ambient.Image()
	if img == nil || m.ambient.Level() <= 0 {
		return blank(width, height)
	}
	fitted := m.stage.fit(m.ambient.Source(), img, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		picture.Render(fitted, m.ambient.Level()))
}

func (m Model) playerBarState() playerbar.State {
	snap := m.service.Snapshot()
	s := playerbar.State{
		Playing:   snap.State == playback.StatePlaying,
		Paused:    snap.State == playback.StatePaused,
		Looping:   snap.Looping,
		Shuffling: snap.Shuffling,
		Volume:    snap.Volume,
		Position:  m.service.Position(),
		Duration:  m.service.Duration(),
		Hidden:    m.idle.Hidden(),
	}
	if t := m.service.CurrentTrack(); t != nil {
		s.Title = t.Title
		s.Composer = t.Composer
	}
	return s
}

func blank(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = render.EmptyLine(width)
	}
	return strings.Join(lines, "\n")
}

// enforceHeight pads or truncates a view to exactly height lines.
func enforceHeight(view string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
