// Package playerbar renders the cabinet control surface: now-playing line,
// transport buttons and the progress bar.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/icons"
	"github.com/llehouerou/keepsake/internal/progress"
	"github.com/llehouerou/keepsake/internal/ui/render"
	"github.com/llehouerou/keepsake/internal/ui/styles"
)

// Rows of the bar, relative to its top.
const (
	rowInfo    = 1
	rowButtons = 2
	rowBar     = 3

	// Height is the number of rows the bar occupies.
	Height = 4

	timeWidth  = 5 // "12:34"
	leftWidth  = timeWidth + 1
	rightWidth = 1 + timeWidth + 1 + 4 // " 3:20 100%"
)

// State holds everything needed to render the player bar.
type State struct {
	Playing   bool
	Paused    bool
	Looping   bool
	Shuffling bool
	Title     string
	Composer  string
	Position  time.Duration
	Duration  time.Duration
	Volume    float64
	Hidden    bool
}

// Active returns true when a track is selected.
func (s State) Active() bool { return s.Playing || s.Paused }

// Render returns the bar for the given width. Idle bars show placeholders;
// hidden bars keep their height but draw nothing.
func Render(s State, width int) string {
	if s.Hidden {
		lines := make([]string, Height)
		for i := range lines {
			lines[i] = render.EmptyLine(width)
		}
		return strings.Join(lines, "\n")
	}

	return strings.Join([]string{
		styles.T().S().Subtle.Render(render.Separator(width)),
		renderInfo(s, width),
		renderButtons(s),
		renderProgress(s, width),
	}, "\n")
}

func renderInfo(s State, width int) string {
	title, composer := s.Title, s.Composer
	if !s.Active() || title == "" {
		title = catalog.Placeholder
	}
	if !s.Active() || composer == "" {
		composer = catalog.Placeholder
	}

	vol := styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", icons.Volume(), int(s.Volume*100+0.5)))
	avail := max(width-lipgloss.Width(vol)-3, 0)

	left := styles.T().S().Muted.Render(composer) + "  " + styles.T().S().Title.Render(title)
	left = render.TruncateStyled(" "+left, avail)
	return render.Row(left, vol+" ", width)
}

func renderButtons(s State) string {
	var b strings.Builder
	b.WriteString(" ")
	for i, btn := range buttonOrder {
		if i == gapAfter {
			b.WriteString(" ")
		}
		b.WriteString(styles.GlyphStyle(lit(btn, s)).Render(pad(glyph(btn, s), slotWidth())))
	}
	return b.String()
}

func renderProgress(s State, width int) string {
	elapsed, total := time.Duration(0), time.Duration(0)
	var frac float64
	if s.Active() {
		if f, ok := progress.Fraction(s.Position, s.Duration); ok {
			elapsed, total, frac = s.Position, s.Duration, f
		}
	}

	barWidth := BarWidth(width)
	filled := min(int(float64(barWidth)*frac), barWidth)

	muted := styles.T().S().Muted
	return muted.Render(fmt.Sprintf("%*s ", timeWidth, progress.Format(elapsed))) +
		styles.FillBar("━", filled, barWidth) +
		styles.T().S().Subtle.Render(strings.Repeat("─", barWidth-filled)) +
		muted.Render(fmt.Sprintf(" %*s %3d%%", timeWidth, progress.Format(total), int(frac*100)))
}

func pad(g string, w int) string {
	gw := lipgloss.Width(g)
	left := (w - gw) / 2
	return strings.Repeat(" ", max(left, 0)) + g + strings.Repeat(" ", max(w-gw-left, 0))
}
