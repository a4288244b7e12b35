// Package tracklist renders the cabinet's paginated track list.
package tracklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/icons"
	"github.com/llehouerou/keepsake/internal/ui"
	"github.com/llehouerou/keepsake/internal/ui/render"
	"github.com/llehouerou/keepsake/internal/ui/styles"
)

// DefaultPerPage is the number of tracks shown per page.
const DefaultPerPage = 24

const (
	activeDot   = "● "
	inactiveDot = "○ "
	dotWidth    = 2
)

// Model is the track list: a cursor, the playing track and the current page.
type Model struct {
	ui.Base
	catalog *catalog.Catalog
	cursor  int
	active  int
	pager   paginator.Model
}

// New creates a list over c with perPage rows per page.
func New(c *catalog.Catalog, perPage int) Model {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = perPage
	p.ActiveDot = styles.T().S().Playing.Render(activeDot)
	p.InactiveDot = styles.T().S().Subtle.Render(inactiveDot)
	p.SetTotalPages(c.Len())

	return Model{catalog: c, active: -1, pager: p}
}

// Cursor returns the index under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Active returns the highlighted (playing) index, -1 when none.
func (m Model) Active() int { return m.active }

// Page returns the current page, 0-based.
func (m Model) Page() int { return m.pager.Page }

// TotalPages returns the number of pages.
func (m Model) TotalPages() int { return m.pager.TotalPages }

// SetActive highlights the playing track and shows its page.
func (m *Model) SetActive(i int) {
	m.active = i
	if i >= 0 && i < m.catalog.Len() {
		m.cursor = i
		m.pager.Page = i / m.pager.PerPage
	}
}

// MoveCursor moves the cursor by delta, following it across pages.
func (m *Model) MoveCursor(delta int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.pager.Page = m.cursor / m.pager.PerPage
}

// SetPage switches to page p and puts the cursor on its first track.
func (m *Model) SetPage(p int) {
	if p < 0 || p >= m.pager.TotalPages {
		return
	}
	m.pager.Page = p
	m.cursor = p * m.pager.PerPage
}

// NextPage switches to the following page, if any.
func (m *Model) NextPage() {
	if !m.pager.OnLastPage() {
		m.SetPage(m.pager.Page + 1)
	}
}

// PrevPage switches to the preceding page, if any.
func (m *Model) PrevPage() {
	if !m.pager.OnFirstPage() {
		m.SetPage(m.pager.Page - 1)
	}
}

// Rows returns the rows View renders: one per track slot plus the dots.
func (m Model) Rows() int {
	return m.pager.PerPage + 1
}

// RowAt returns the track index rendered at row y, relative to the list top.
func (m Model) RowAt(y int) (int, bool) {
	if y < 0 || y >= m.pager.PerPage {
		return 0, false
	}
	start, end := m.pager.GetSliceBounds(m.catalog.Len())
	i := start + y
	if i >= end {
		return 0, false
	}
	return i, true
}

// DotAt returns the page whose dot is at column x of the dots row.
func (m Model) DotAt(x int) (int, bool) {
	if m.pager.TotalPages <= 1 || x < 0 {
		return 0, false
	}
	p := x / dotWidth
	if p >= m.pager.TotalPages {
		return 0, false
	}
	return p, true
}

// View renders the current page.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}
	width := m.Width()
	start, end := m.pager.GetSliceBounds(m.catalog.Len())

	var b strings.Builder
	for row := range m.pager.PerPage {
		if row > 0 {
			b.WriteByte('\n')
		}
		i := start + row
		if i >= end {
			b.WriteString(render.EmptyLine(width))
			continue
		}
		b.WriteString(m.renderRow(i, width))
	}

	b.WriteByte('\n')
	if m.pager.TotalPages > 1 {
		b.WriteString(m.pager.View())
	}
	return b.String()
}

func (m Model) renderRow(i, width int) string {
	s := styles.T().S()
	text := fmt.Sprintf(" %02d  %s", i+1, icons.FormatAudio(
		render.Sanitize(m.catalog.Title(i))+"  "+s.Muted.Render(render.Sanitize(m.catalog.Composer(i)))))

	style := s.Base
	switch {
	case i == m.active:
		style = s.Playing
	case i == m.cursor:
		style = s.Cursor
	}
	if i == m.cursor && i == m.active {
		style = s.Playing.Background(styles.T().BgCursor)
	}

	line := render.TruncateStyled(text, width)
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return style.Render(line)
}
