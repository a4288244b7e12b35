package app

import (
	"github.com/llehouerou/keepsake/internal/ui"
	"github.com/llehouerou/keepsake/internal/ui/playerbar"
)

// Screen layout:
//
//	row 0              tab header
//	rows 1..           gallery, or cabinet stage | track list
//	last 4 rows - 1    player bar (cabinet only)
//	last row           status line
//
// The lightbox covers the whole screen.

// bodyTop is the first row below the header.
const bodyTop = ui.HeaderHeight

// bodyHeight returns the rows available to the gallery.
func (m Model) bodyHeight() int {
	return max(m.height-ui.HeaderHeight-ui.StatusHeight, 0)
}

// barTop returns the first row of the player bar.
func (m Model) barTop() int {
	return max(m.height-ui.StatusHeight-playerbar.Height, bodyTop)
}

// cabinetHeight returns the rows between the header and the player bar.
func (m Model) cabinetHeight() int {
	return max(m.barTop()-bodyTop, 0)
}

// stageWidth returns the width of the ambient background column, 0 when the
// terminal is too narrow to show it.
func (m Model) stageWidth() int {
	if m.width < ui.MinPreviewWidth {
		return 0
	}
	return m.width / 2
}

// resize propagates the terminal size to the views.
func (m *Model) resize() {
	m.gallery.SetSize(m.width, m.bodyHeight())
	m.tracks.SetSize(m.width-m.stageWidth(), m.cabinetHeight())
	m.help.Width = m.width
}
