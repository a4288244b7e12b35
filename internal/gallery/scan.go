package gallery

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var photoExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

// Scan lists the photo files directly inside dir, sorted by name. It is used
// when the configuration names no photos at all.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var photos []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if photoExts[strings.ToLower(filepath.Ext(e.Name()))] {
			photos = append(photos, e.Name())
		}
	}
	slices.Sort(photos)
	return photos, nil
}
