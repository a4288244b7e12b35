// Package picture renders images as truecolor half-block text.
package picture

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for photos
	_ "image/jpeg" // JPEG decoder for photos and covers
	_ "image/png"  // PNG decoder for photos and covers
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const halfBlock = "▀"

// Decode reads and decodes an image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadedMsg reports the outcome of an asynchronous image load.
type LoadedMsg struct {
	Key   string
	Image image.Image
	Err   error
}

// LoadFunc loads an image for a key (usually a path).
type LoadFunc func(key string) (image.Image, error)

// LoadCmd loads one image off the event loop.
func LoadCmd(key string, load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		img, err := load(key)
		return LoadedMsg{Key: key, Image: img, Err: err}
	}
}

// Fit scales img to fit width x height cells. Each cell holds two
// vertically stacked pixels.
func Fit(img image.Image, width, height int) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}
	//nolint:gosec // cell dimensions are small
	return resize.Thumbnail(uint(width), uint(height*2), img, resize.Bilinear)
}

// Render draws an already fitted image. brightness 0 is black and 1 is the
// original colour; intermediate levels blend in Lab space.
func Render(img image.Image, brightness float64) string {
	if img == nil {
		return ""
	}
	brightness = min(max(brightness, 0), 1)
	black := colorful.Color{}

	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := shade(img, x, y, black, brightness)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = shade(img, x, y+1, black, brightness)
			}
			tr, tg, tb := top.RGB255()
			br, bg, bb := bottom.RGB255()
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", tr, tg, tb, br, bg, bb, halfBlock)
		}
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

func shade(img image.Image, x, y int, black colorful.Color, brightness float64) colorful.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return black
	}
	if brightness >= 1 {
		return c
	}
	return black.BlendLab(c, brightness).Clamped()
}

// Size returns the rendered size of a fitted image in cells.
func Size(img image.Image) (width, height int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), (b.Dy() + 1) / 2
}
