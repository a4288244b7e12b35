// Package galleryview renders the photo album: category list, thumbnail
// grid, visible count and the focused-photo preview.
package galleryview

import (
	"path/filepath"

	"github.com/llehouerou/keepsake/internal/describe"
	"github.com/llehouerou/keepsake/internal/gallery"
	"github.com/llehouerou/keepsake/internal/ui"
	"github.com/llehouerou/keepsake/internal/ui/picture"
)

// Model is the gallery view state. Photos are identified by filename; the
// thumbnail cache is keyed by full path.
type Model struct {
	ui.Base
	index     *gallery.Index
	selectors []string
	category  int
	photos    []string
	focus     int
	folder    string
	thumbs    *picture.Cache
	texts     map[string]string
}

// New creates a gallery view showing the whole collection.
func New(idx *gallery.Index, folder string, thumbs *picture.Cache) Model {
	m := Model{
		index:     idx,
		selectors: idx.Selectors(),
		folder:    folder,
		thumbs:    thumbs,
		texts:     make(map[string]string),
	}
	m.SetCategory(0)
	return m
}

// Path returns the full path of a photo.
func (m Model) Path(name string) string {
	return filepath.Join(m.folder, name)
}

// Selectors returns the category selectors, "all" first.
func (m Model) Selectors() []string { return m.selectors }

// Category returns the selected category position.
func (m Model) Category() int { return m.category }

// Selector returns the selected category selector.
func (m Model) Selector() string { return m.selectors[m.category] }

// SetCategory switches the filter. The focus returns to the first photo.
func (m *Model) SetCategory(i int) {
	if i < 0 || i >= len(m.selectors) {
		return
	}
	m.category = i
	m.photos = m.index.Filter(m.selectors[i])
	m.focus = 0
}

// CycleCategory moves the selection by delta with wraparound.
func (m *Model) CycleCategory(delta int) {
	n := len(m.selectors)
	m.SetCategory(((m.category+delta)%n + n) % n)
}

// Photos returns the filtered photo list the lightbox opens against.
func (m Model) Photos() []string { return m.photos }

// Focus returns the focused photo position in Photos, -1 when empty.
func (m Model) Focus() int {
	if len(m.photos) == 0 {
		return -1
	}
	return m.focus
}

// Focused returns the focused filename, empty when no photos are shown.
func (m Model) Focused() string {
	if len(m.photos) == 0 {
		return ""
	}
	return m.photos[m.focus]
}

// SetFocus focuses photo i of the filtered list.
func (m *Model) SetFocus(i int) {
	if i >= 0 && i < len(m.photos) {
		m.focus = i
	}
}

// MoveFocus moves the focus across visible thumbnails, dy rows at a time.
func (m *Model) MoveFocus(dx, dy int) {
	cells := m.cells()
	if len(cells) == 0 {
		return
	}
	pos := 0
	for i, p := range cells {
		if p == m.focus {
			pos = i
			break
		}
	}
	pos = min(max(pos+dx+dy*m.columns(), 0), len(cells)-1)
	m.focus = cells[pos]
}

// SetDescription records the loaded text for a photo.
func (m *Model) SetDescription(name, text string) {
	m.texts[name] = text
}

// Description returns the text for a photo, or the pending marker.
func (m Model) Description(name string) string {
	if text, ok := m.texts[name]; ok {
		return text
	}
	return describe.Pending
}

// cells returns the positions in photos that have a visible thumbnail.
// Photos whose image failed to load are hidden.
func (m Model) cells() []int {
	out := make([]int, 0, len(m.photos))
	for i, name := range m.photos {
		if m.thumbs.Failed(m.Path(name)) != nil {
			continue
		}
		out = append(out, i)
	}
	return out
}
