package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/keepsake/internal/icons"
	"github.com/llehouerou/keepsake/internal/progress"
)

// Button identifies a transport control.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrev
	ButtonPlayPause
	ButtonStop
	ButtonNext
	ButtonLoop
	ButtonShuffle
)

var buttonOrder = []Button{ButtonPrev, ButtonPlayPause, ButtonStop, ButtonNext, ButtonLoop, ButtonShuffle}

// gapAfter is the index in buttonOrder preceded by an extra space.
const gapAfter = 4

func glyph(b Button, s State) string {
	switch b {
	case ButtonPrev:
		return icons.Prev()
	case ButtonPlayPause:
		return icons.PlayPause(s.Playing)
	case ButtonStop:
		return icons.Stop()
	case ButtonNext:
		return icons.Next()
	case ButtonLoop:
		return icons.Loop()
	case ButtonShuffle:
		return icons.Shuffle()
	default:
		return ""
	}
}

// lit reports whether a button shows its active colour.
func lit(b Button, s State) bool {
	switch b {
	case ButtonPlayPause:
		return s.Playing
	case ButtonLoop:
		return s.Looping
	case ButtonShuffle:
		return s.Shuffling
	default:
		return false
	}
}

func slotWidth() int {
	w := 0
	for _, g := range []string{
		icons.Prev(), icons.Play(), icons.Pause(), icons.Stop(),
		icons.Next(), icons.Loop(), icons.Shuffle(),
	} {
		w = max(w, lipgloss.Width(g))
	}
	return w + 2
}

// ButtonAt returns the button under column x of the button row.
func ButtonAt(x int) Button {
	slot := slotWidth()
	col := 1
	for i, b := range buttonOrder {
		if i == gapAfter {
			col++
		}
		if x >= col && x < col+slot {
			return b
		}
		col += slot
	}
	return ButtonNone
}

// BarWidth returns the width of the progress track for a bar width.
func BarWidth(width int) int {
	return max(width-leftWidth-rightWidth, 1)
}

// Target is what a click on the bar hit.
type Target struct {
	Button   Button
	OnBar    bool
	Fraction float64
}

// HitTest maps a click at (x, y), relative to the bar's top-left corner,
// to a button or a seek fraction.
func HitTest(x, y, width int) Target {
	switch y {
	case rowButtons:
		return Target{Button: ButtonAt(x)}
	case rowBar:
		if x < leftWidth || x >= leftWidth+BarWidth(width) {
			return Target{}
		}
		return Target{OnBar: true, Fraction: fraction(x, width)}
	default:
		return Target{}
	}
}

func fraction(x, width int) float64 {
	return progress.ClickFraction(x, leftWidth, BarWidth(width))
}
