// Package styles holds the colour palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Amber - focused photo, active track
	Secondary lipgloss.Color // Teal - progress fill end, active modes

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase     lipgloss.Color
	BgCursor   lipgloss.Color
	BgLightbox lipgloss.Color // dimmed backdrop behind the lightbox

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Transport glyph colors
	GlyphIdle   lipgloss.Color // button without state
	GlyphActive lipgloss.Color // playing, loop on, shuffle on

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // active track row
	Cursor  lipgloss.Style
	Glyph   lipgloss.Style
	Active  lipgloss.Style // lit transport glyph
	Error   lipgloss.Style
	Warning lipgloss.Style
	Panel   lipgloss.Style
	Focused lipgloss.Style // focused panel
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#e0a458"),
	Secondary: lipgloss.Color("#5fb3a1"),

	FgBase:   lipgloss.Color("#d8d4cc"),
	FgMuted:  lipgloss.Color("#8a857c"),
	FgSubtle: lipgloss.Color("#5a564f"),

	BgBase:     lipgloss.Color("#1b1916"),
	BgCursor:   lipgloss.Color("#2f2b26"),
	BgLightbox: lipgloss.Color("#0b0a09"),

	Border:      lipgloss.Color("#4a463f"),
	BorderFocus: lipgloss.Color("#e0a458"),

	GlyphIdle:   lipgloss.Color("#8a857c"),
	GlyphActive: lipgloss.Color("#5fb3a1"),

	Error:   lipgloss.Color("#e06c75"),
	Warning: lipgloss.Color("#e5c07b"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Glyph:   lipgloss.NewStyle().Foreground(t.GlyphIdle),
		Active:  lipgloss.NewStyle().Foreground(t.GlyphActive).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Panel:   panel,
		Focused: panel.BorderForeground(t.BorderFocus),
	}
}

// PanelStyle returns the panel style for the focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return T().S().Focused
	}
	return T().S().Panel
}

// GlyphStyle returns the lit or unlit transport glyph style.
func GlyphStyle(active bool) lipgloss.Style {
	if active {
		return T().S().Active
	}
	return T().S().Glyph
}
