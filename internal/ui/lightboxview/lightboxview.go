// Package lightboxview renders the full-screen photo viewer.
package lightboxview

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/keepsake/internal/ui/picture"
	"github.com/llehouerou/keepsake/internal/ui/render"
	"github.com/llehouerou/keepsake/internal/ui/styles"
)

const (
	arrowWidth   = 3
	headerHeight = 1
	footerHeight = 2

	closeGlyph = " ✕ "
	prevGlyph  = " ‹ "
	nextGlyph  = " › "
)

// Info describes the photo on display.
type Info struct {
	Name     string
	Path     string
	Position int   // 1-based
	Total    int   // photos in the filtered list
	Size     int64 // bytes, negative when unknown
}

// Target is the lightbox region under a click.
type Target int

const (
	TargetBackground Target = iota
	TargetImage
	TargetPrev
	TargetNext
	TargetClose
)

// Counter returns the "index / total" label.
func Counter(position, total int) string {
	return fmt.Sprintf("%d / %d", position, total)
}

// SizeLabel returns the human-readable file size, empty when unknown.
func SizeLabel(size int64) string {
	if size < 0 {
		return ""
	}
	return humanize.Bytes(uint64(size)) //nolint:gosec // size is non-negative here
}

func imageBox(width, height int) (w, h int) {
	return max(width-2*arrowWidth, 1), max(height-headerHeight-footerHeight, 1)
}

// imageRect returns the cells covered by the fitted image.
func imageRect(img image.Image, width, height int) image.Rectangle {
	bw, bh := imageBox(width, height)
	iw, ih := picture.Size(img)
	left := arrowWidth + (bw-iw)/2
	top := headerHeight + (bh-ih)/2
	return image.Rect(left, top, left+iw, top+ih)
}

// Fitted returns the photo fitted to the lightbox image area.
func Fitted(cache *picture.Cache, path string, width, height int) (image.Image, bool) {
	bw, bh := imageBox(width, height)
	return cache.Fitted(path, bw, bh)
}

// Render draws the lightbox over the whole area.
func Render(info Info, cache *picture.Cache, width, height int) string {
	s := styles.T().S()
	bw, bh := imageBox(width, height)

	header := render.Row(s.Muted.Render(" "+render.Truncate(info.Name, max(width-10, 1))), s.Title.Render(closeGlyph), width)

	var body string
	if img, ok := Fitted(cache, info.Path, width, height); ok {
		body = lipgloss.Place(bw, bh, lipgloss.Center, lipgloss.Center, picture.Render(img, 1))
	} else {
		msg := "Loading..."
		if cache.Failed(info.Path) != nil {
			msg = "Cannot display this photo"
		}
		body = lipgloss.Place(bw, bh, lipgloss.Center, lipgloss.Center, s.Subtle.Render(msg))
	}
	arrowCol := func(g string) string {
		lines := make([]string, bh)
		for i := range lines {
			lines[i] = strings.Repeat(" ", arrowWidth)
		}
		lines[bh/2] = s.Title.Render(g)
		return strings.Join(lines, "\n")
	}
	middle := lipgloss.JoinHorizontal(lipgloss.Top, arrowCol(prevGlyph), body, arrowCol(nextGlyph))

	caption := Counter(info.Position, info.Total)
	if size := SizeLabel(info.Size); size != "" {
		caption += "  ·  " + size
	}
	footer := "\n" + render.Center(s.Base.Render(caption), width)

	return lipgloss.NewStyle().
		Background(styles.T().BgLightbox).
		Width(width).
		Height(height).
		Render(header + "\n" + middle + footer)
}

// HitTest maps a click at (x, y) to a lightbox region.
func HitTest(x, y int, img image.Image, width, height int) Target {
	switch {
	case y < headerHeight && x >= width-arrowWidth:
		return TargetClose
	case y >= headerHeight && y < height-footerHeight && x < arrowWidth:
		return TargetPrev
	case y >= headerHeight && y < height-footerHeight && x >= width-arrowWidth:
		return TargetNext
	}
	if img != nil && image.Pt(x, y).In(imageRect(img, width, height)) {
		return TargetImage
	}
	return TargetBackground
}
