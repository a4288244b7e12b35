package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := Blend(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(cluster))
	}
	return b.String()
}

// FillBar renders n cells of fill blended from the theme's primary to
// secondary color across total cells, so a partial bar shows only the start
// of the gradient.
func FillBar(fill string, n, total int) string {
	if n <= 0 || total <= 0 {
		return ""
	}
	colors := Blend(total, T().Primary, T().Secondary)

	var b strings.Builder
	for i := range min(n, total) {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(fill))
	}
	return b.String()
}

// Blend returns size colors blended between from and to in HCL space.
func Blend(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))

	out := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return out
}

// toColor converts a hex lipgloss.Color to a color.Color.
func toColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	// ANSI palette colors fall back to neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
