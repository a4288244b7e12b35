package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "gallery", "lightbox", "cabinet"
}

// Gallery category keys 1-9 are handled directly by the gallery view.

// Bindings contains all key bindings. A key may map to different actions in
// different contexts; use ForContext to build a resolver.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchView, []string{"tab"}, "Switch album/cabinet", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Gallery
	{ActionMoveLeft, []string{"left", "h"}, "Move left", "gallery"},
	{ActionMoveRight, []string{"right", "l"}, "Move right", "gallery"},
	{ActionMoveUp, []string{"up", "k"}, "Move up", "gallery"},
	{ActionMoveDown, []string{"down", "j"}, "Move down", "gallery"},
	{ActionOpen, []string{"enter"}, "Open photo", "gallery"},
	{ActionPrevCategory, []string{"["}, "Previous category", "gallery"},
	{ActionNextCategory, []string{"]"}, "Next category", "gallery"},

	// Lightbox
	{ActionLightboxPrev, []string{"left", "h"}, "Previous photo", "lightbox"},
	{ActionLightboxNext, []string{"right", "l"}, "Next photo", "lightbox"},
	{ActionLightboxClose, []string{"esc", "q"}, "Close", "lightbox"},

	// Cabinet
	{ActionPlayPause, []string{" "}, "Play/pause", "cabinet"},
	{ActionStop, []string{"s"}, "Stop", "cabinet"},
	{ActionNextTrack, []string{"n"}, "Next track", "cabinet"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "cabinet"},
	{ActionToggleLoop, []string{"l"}, "Toggle loop", "cabinet"},
	{ActionToggleShuffle, []string{"r"}, "Toggle shuffle", "cabinet"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "cabinet"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "cabinet"},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5s", "cabinet"},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5s", "cabinet"},
	{ActionCursorUp, []string{"up", "k"}, "Cursor up", "cabinet"},
	{ActionCursorDown, []string{"down", "j"}, "Cursor down", "cabinet"},
	{ActionSelect, []string{"enter"}, "Play track", "cabinet"},
	{ActionPrevPage, []string{"["}, "Previous page", "cabinet"},
	{ActionNextPage, []string{"]"}, "Next page", "cabinet"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContext returns a resolver for the global bindings plus one context.
func ForContext(context string) *Resolver {
	return NewResolver(context, Bindings)
}

// HelpKeys converts bindings into bubbles key bindings for the help view.
func HelpKeys(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(displayKey(b.Keys[0]), b.Description),
		))
	}
	return out
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}
