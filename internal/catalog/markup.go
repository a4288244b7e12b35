package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseMarkup reads tracks from externally rendered track markup: every
// ".track-item" element with a "data-audio" attribute becomes a track, with
// "data-cg" as cover and the text of its ".track-name" child as title.
// Composers are matched by element position, so an entry without audio
// still consumes its composer; missing ones stay empty.
// Relative paths are resolved against baseDir.
func ParseMarkup(r io.Reader, baseDir string, composers []string) ([]Track, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse track markup: %w", err)
	}

	var tracks []Track
	doc.Find(".track-item").Each(func(i int, s *goquery.Selection) {
		audio, ok := s.Attr("data-audio")
		audio = strings.TrimSpace(audio)
		if !ok || audio == "" {
			return
		}
		cover, _ := s.Attr("data-cg")

		t := Track{
			Title: strings.TrimSpace(s.Find(".track-name").First().Text()),
			Audio: resolve(baseDir, audio),
			Cover: resolve(baseDir, strings.TrimSpace(cover)),
		}
		if i < len(composers) {
			t.Composer = strings.TrimSpace(composers[i])
		}
		tracks = append(tracks, t)
	})

	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	return tracks, nil
}

// LoadMarkup parses the markup file at path.
func LoadMarkup(path string, composers []string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMarkup(f, filepath.Dir(path), composers)
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, filepath.FromSlash(p))
}
