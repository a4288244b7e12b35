// Package catalog holds the static track list of the record cabinet.
package catalog

import "errors"

// Placeholder is shown for any missing metadata field.
const Placeholder = "--"

// ErrNoTracks is returned when a catalog source yields no tracks.
var ErrNoTracks = errors.New("no tracks")

// Track is one cabinet entry. Only Audio is required.
type Track struct {
	Title    string
	Composer string
	Audio    string // audio file path
	Cover    string // background image path; empty means use embedded art
}

// CoverSource returns the image source for the ambient background: the
// cover path when set, otherwise the audio file (its embedded picture).
func (t Track) CoverSource() string {
	if t.Cover != "" {
		return t.Cover
	}
	return t.Audio
}

// Catalog is the ordered, immutable track list.
type Catalog struct {
	tracks []Track
}

// New creates a catalog from tracks.
func New(tracks []Track) *Catalog {
	return &Catalog{tracks: tracks}
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tracks)
}

// Tracks returns the track list. Callers must not modify it.
func (c *Catalog) Tracks() []Track {
	if c == nil {
		return nil
	}
	return c.tracks
}

// Track returns the track at index i.
func (c *Catalog) Track(i int) (Track, bool) {
	if i < 0 || i >= c.Len() {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Title returns the display title at index i, or Placeholder.
func (c *Catalog) Title(i int) string {
	t, ok := c.Track(i)
	if !ok || t.Title == "" {
		return Placeholder
	}
	return t.Title
}

// Composer returns the composer at index i, or Placeholder.
func (c *Catalog) Composer(i int) string {
	t, ok := c.Track(i)
	if !ok || t.Composer == "" {
		return Placeholder
	}
	return t.Composer
}
