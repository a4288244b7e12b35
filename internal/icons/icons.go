package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Stop     string
	Prev     string
	Next     string
	Loop     string
	Shuffle  string
	Volume   string
	Photo    string
	Category string
	Audio    string
}

var (
	nerdIcons = Icons{
		Play:     "\uf04b",     // nf-fa-play
		Pause:    "\uf04c",     // nf-fa-pause
		Stop:     "\uf04d",     // nf-fa-stop
		Prev:     "\uf048",     // nf-fa-step_backward
		Next:     "\uf051",     // nf-fa-step_forward
		Loop:     "\U000f0456", // nf-md-repeat
		Shuffle:  "\U000f049f", // nf-md-shuffle
		Volume:   "\uf028",     // nf-fa-volume_up
		Photo:    "\uf03e ",    // nf-fa-image
		Category: "\uf07b ",    // nf-fa-folder
		Audio:    "\uf001 ",    // nf-fa-music
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Stop:     "⏹",
		Prev:     "⏮",
		Next:     "⏭",
		Loop:     "🔁",
		Shuffle:  "🔀",
		Volume:   "🔊",
		Photo:    "🖼 ",
		Category: "📁 ",
		Audio:    "🎵 ",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Stop:     "[]",
		Prev:     "|<",
		Next:     ">|",
		Loop:     "[L]",
		Shuffle:  "[S]",
		Volume:   "vol",
		Photo:    "",
		Category: "",
		Audio:    "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the play glyph.
func Play() string { return current.Play }

// Pause returns the pause glyph.
func Pause() string { return current.Pause }

// Stop returns the stop glyph.
func Stop() string { return current.Stop }

// Prev returns the previous-track glyph.
func Prev() string { return current.Prev }

// Next returns the next-track glyph.
func Next() string { return current.Next }

// Loop returns the loop glyph.
func Loop() string { return current.Loop }

// Shuffle returns the shuffle glyph.
func Shuffle() string { return current.Shuffle }

// Volume returns the volume glyph.
func Volume() string { return current.Volume }

// PlayPause returns the glyph for the toggle button: pause while playing,
// play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// FormatPhoto formats a photo name with the appropriate icon.
func FormatPhoto(name string) string {
	return current.Photo + name
}

// FormatCategory formats a category name with the appropriate icon.
func FormatCategory(name string) string {
	return current.Category + name
}

// FormatAudio formats a track name with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}
