package catalog

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg" // JPEG decoder for covers
	_ "image/png"  // PNG decoder for covers
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// ErrNoCover is returned when neither a cover file nor embedded art exists.
var ErrNoCover = errors.New("no cover art")

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

var audioExts = map[string]bool{".mp3": true, ".flac": true, ".ogg": true, ".wav": true}

// Enrich fills missing title and composer from the audio file's tags
// (composer, falling back to artist) and a missing cover from a sibling
// cover file. Tag read failures are logged and leave the track as is.
func Enrich(tracks []Track, logger *slog.Logger) []Track {
	out := make([]Track, len(tracks))
	for i, t := range tracks {
		if t.Title == "" || t.Composer == "" {
			if m, err := readTags(t.Audio); err == nil {
				if t.Title == "" {
					t.Title = strings.TrimSpace(m.Title())
				}
				if t.Composer == "" {
					t.Composer = strings.TrimSpace(m.Composer())
				}
				if t.Composer == "" {
					t.Composer = strings.TrimSpace(m.Artist())
				}
			} else {
				logger.Warn("read track tags", "path", t.Audio, "error", err)
			}
		}
		if t.Title == "" {
			t.Title = strings.TrimSuffix(filepath.Base(t.Audio), filepath.Ext(t.Audio))
		}
		if t.Cover == "" {
			t.Cover = findCoverFile(t.Audio)
		}
		out[i] = t
	}
	return out
}

func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tag.ReadFrom(f)
}

// findCoverFile looks for album art in the same directory as the track.
func findCoverFile(audioPath string) string {
	if audioPath == "" {
		return ""
	}
	dir := filepath.Dir(audioPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadCover decodes the image at src. An audio file source yields its
// embedded picture.
func LoadCover(src string) (image.Image, error) {
	if src == "" {
		return nil, ErrNoCover
	}

	var data []byte
	if audioExts[strings.ToLower(filepath.Ext(src))] {
		m, err := readTags(src)
		if err != nil {
			return nil, err
		}
		pic := m.Picture()
		if pic == nil || len(pic.Data) == 0 {
			return nil, ErrNoCover
		}
		data = pic.Data
	} else {
		var err error
		data, err = os.ReadFile(src)
		if err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
