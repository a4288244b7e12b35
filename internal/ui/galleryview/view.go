package galleryview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/keepsake/internal/icons"
	"github.com/llehouerou/keepsake/internal/ui"
	"github.com/llehouerou/keepsake/internal/ui/picture"
	"github.com/llehouerou/keepsake/internal/ui/render"
	"github.com/llehouerou/keepsake/internal/ui/styles"
)

// CountLabel returns the visible-count text, e.g. "1,204 photos".
func CountLabel(n int) string {
	if n == 1 {
		return "1 photo"
	}
	return humanize.Comma(int64(n)) + " photos"
}

// View renders the gallery.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}

	cols := []string{m.renderCategories(), " ", m.renderGrid()}
	if pw := m.previewWidth(); pw > 0 {
		cols = append(cols, m.renderPreview(pw))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderCategories() string {
	s := styles.T().S()
	inner := ui.CategoryWidth - 2

	lines := make([]string, 0, len(m.selectors))
	for i, sel := range m.selectors {
		text := render.TruncateAndPad(icons.FormatCategory(sel), inner)
		if i == m.category {
			lines = append(lines, s.Playing.Render(text))
			continue
		}
		lines = append(lines, s.Base.Render(text))
	}

	return styles.PanelStyle(false).
		Width(inner).
		Height(max(m.Height()-ui.BorderHeight, len(lines))).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderGrid() string {
	s := styles.T().S()
	count := s.Muted.Render(CountLabel(len(m.photos)))

	cells := m.cells()
	cols := m.columns()
	first := m.firstRow()

	rows := []string{count}
	for r := first; r < first+m.gridRows(); r++ {
		start := r * cols
		if start >= len(cells) {
			break
		}
		end := min(start+cols, len(cells))
		thumbs := make([]string, 0, end-start)
		for _, p := range cells[start:end] {
			thumbs = append(thumbs, m.renderThumb(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, thumbs...))
	}
	if len(cells) == 0 {
		rows = append(rows, s.Subtle.Render("No photos"))
	}

	return lipgloss.NewStyle().Width(m.gridWidth()).Render(strings.Join(rows, "\n"))
}

func (m Model) renderThumb(i int) string {
	name := m.photos[i]
	w, h := ui.ThumbWidth-1, ui.ThumbHeight-1

	body := placeholder(w, h-1)
	if img, ok := m.thumbs.Fitted(m.Path(name), w, h-1); ok {
		body = lipgloss.Place(w, h-1, lipgloss.Center, lipgloss.Center, picture.Render(img, 1))
	}

	caption := render.TruncateAndPad(name, w)
	style := styles.T().S().Muted
	if i == m.focus {
		style = styles.T().S().Playing
		caption = render.TruncateAndPad("▸"+name, w)
	}
	return lipgloss.NewStyle().PaddingRight(1).Render(body + "\n" + style.Render(caption))
}

func (m Model) renderPreview(width int) string {
	name := m.Focused()
	if name == "" {
		return ""
	}
	s := styles.T().S()
	inner := width - 2
	imgHeight := max(m.Height()/2, 4)

	body := placeholder(inner, imgHeight)
	if img, ok := m.thumbs.Fitted(m.Path(name), inner, imgHeight); ok {
		body = lipgloss.Place(inner, imgHeight, lipgloss.Center, lipgloss.Center, picture.Render(img, 1))
	}

	text := lipgloss.NewStyle().Width(inner).Render(render.Sanitize(m.Description(name)))
	content := strings.Join([]string{
		body,
		s.Title.Render(render.Truncate(icons.FormatPhoto(name), inner)),
		s.Muted.Render(text),
	}, "\n")

	return styles.PanelStyle(true).Width(inner).Render(content)
}

func placeholder(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, styles.T().S().Subtle.Render("…"))
}
