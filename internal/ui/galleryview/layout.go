package galleryview

import "github.com/llehouerou/keepsake/internal/ui"

// Layout, relative to the view's top-left corner:
//
//	┌ categories ┐ count line
//	│ all        │ ┌thumb┐┌thumb┐┌thumb┐   preview
//	│ Kyoto      │ └─────┘└─────┘└─────┘   description
//	└────────────┘
const (
	gridTop  = 1
	gridLeft = ui.CategoryWidth + 1
)

func (m Model) previewWidth() int {
	if m.Width() < ui.MinPreviewWidth {
		return 0
	}
	return m.Width() / 3
}

func (m Model) gridWidth() int {
	return max(m.Width()-gridLeft-m.previewWidth(), ui.ThumbWidth)
}

func (m Model) columns() int {
	return max(m.gridWidth()/ui.ThumbWidth, 1)
}

func (m Model) gridRows() int {
	return max((m.Height()-gridTop)/ui.ThumbHeight, 1)
}

// firstRow returns the first grid row drawn so that the focus stays visible.
func (m Model) firstRow() int {
	cells := m.cells()
	pos := 0
	for i, p := range cells {
		if p == m.focus {
			pos = i
			break
		}
	}
	row := pos / m.columns()
	return max(row-m.gridRows()+1, 0)
}

// CategoryAt returns the category listed at (x, y).
func (m Model) CategoryAt(x, y int) (int, bool) {
	if x < 0 || x >= ui.CategoryWidth {
		return 0, false
	}
	i := y - 1 // top border
	if i < 0 || i >= len(m.selectors) {
		return 0, false
	}
	return i, true
}

// PhotoAt returns the position in Photos of the thumbnail at (x, y).
func (m Model) PhotoAt(x, y int) (int, bool) {
	gx, gy := x-gridLeft, y-gridTop
	if gx < 0 || gy < 0 || gx >= m.columns()*ui.ThumbWidth {
		return 0, false
	}
	col, row := gx/ui.ThumbWidth, gy/ui.ThumbHeight+m.firstRow()
	if row-m.firstRow() >= m.gridRows() {
		return 0, false
	}
	cells := m.cells()
	i := row*m.columns() + col
	if i >= len(cells) {
		return 0, false
	}
	return cells[i], true
}
