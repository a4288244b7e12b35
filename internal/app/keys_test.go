package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/keepsake/internal/gallery"
	"github.com/llehouerou/keepsake/internal/playback"
	"github.com/llehouerou/keepsake/internal/ui/galleryview"
)

func TestGalleryKeys_Categories(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, []string{"1.jpg", "2.jpg", "3.jpg"}, m.gallery.Photos())

	m = press(m, "2")
	assert.Equal(t, "Kyoto", m.gallery.Selector())
	assert.Equal(t, []string{"1.jpg", "2.jpg"}, m.gallery.Photos())

	m = press(m, "]")
	assert.Equal(t, "Lisbon", m.gallery.Selector())

	m = press(m, "]")
	assert.Equal(t, "all", m.gallery.Selector(), "cycling wraps around")

	m = press(m, "9")
	assert.Equal(t, "all", m.gallery.Selector(), "unknown category ignored")
}

func TestGalleryKeys_MoveAndOpen(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "right", "enter")

	require.True(t, m.lightbox.IsOpen())
	assert.Equal(t, 2, m.lightbox.Position())
	assert.Equal(t, 3, m.lightbox.Total())
}

func TestLightboxKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "enter")

	m = press(m, "left")
	assert.Equal(t, "3.jpg", m.lightbox.Current(), "prev wraps to the last photo")

	m = press(m, "l")
	assert.Equal(t, "1.jpg", m.lightbox.Current(), "next wraps to the first photo")

	m = press(m, "right", "q")
	assert.False(t, m.lightbox.IsOpen(), "q closes instead of quitting")
	assert.Equal(t, 1, m.gallery.Focus(), "focus follows the last photo shown")
}

func TestLightbox_FilteredCategory(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "3", "enter")

	assert.Equal(t, 2, m.lightbox.Total())
	m = press(m, "right")
	assert.Equal(t, "2.jpg", m.lightbox.Current())
}

func TestLightbox_EmptyCategoryRejected(t *testing.T) {
	m, _ := newTestModel(t)
	idx := gallery.NewIndex([]gallery.Category{
		{Name: "Kyoto", Photos: []string{"1.jpg"}},
		{Name: "Empty"},
	})
	m.gallery = galleryview.New(idx, t.TempDir(), m.photos)

	m = press(m, "3", "enter")

	assert.False(t, m.lightbox.IsOpen())
	assert.Contains(t, m.Status(), "open photo")
}

func TestCabinetKeys_Transport(t *testing.T) {
	m, p := newTestModel(t)
	m = press(m, "tab")

	m = press(m, " ")
	assert.Equal(t, playback.StatePlaying, m.service.State())
	assert.Equal(t, 0, m.service.Index())

	m = press(m, " ")
	assert.Equal(t, playback.StatePaused, m.service.State())

	m = press(m, "n")
	assert.Equal(t, 1, m.service.Index())
	assert.Equal(t, playback.StatePlaying, m.service.State())

	m = press(m, "p", "p")
	assert.Equal(t, 2, m.service.Index(), "previous wraps to the last track")

	m = press(m, "s")
	assert.True(t, m.service.IsIdle())
	assert.Equal(t, -1, m.service.Index())

	assert.Equal(t, []string{
		"/music/gymnopedie.mp3",
		"/music/clair.mp3",
		"/music/gymnopedie.mp3",
		"/music/moonlight.mp3",
	}, p.PlayCalls())
}

func TestCabinetKeys_Modes(t *testing.T) {
	m, p := newTestModel(t)
	m = press(m, "tab")

	m = press(m, "l", "r")
	assert.True(t, m.service.Loop())
	assert.True(t, p.Loop())
	assert.True(t, m.service.Shuffle())

	before := m.service.Volume()
	m = press(m, "-")
	assert.InDelta(t, before-volumeStep, m.service.Volume(), 1e-9)
	m = press(m, "+")
	assert.InDelta(t, before, m.service.Volume(), 1e-9)
}

func TestCabinetKeys_Seek(t *testing.T) {
	m, p := newTestModel(t)
	m = press(m, "tab", " ")
	p.SetDuration(2 * time.Minute)
	p.SetPosition(3 * time.Second)

	m = press(m, "shift+left")
	assert.Equal(t, time.Duration(0), m.service.Position(), "seek clamps at zero")

	m = press(m, "shift+right")
	assert.Equal(t, seekStep, m.service.Position())
}

func TestCabinetKeys_CursorAndPages(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "tab")

	m = press(m, "down", "down")
	assert.Equal(t, 2, m.tracks.Cursor())
	assert.Equal(t, 1, m.tracks.Page(), "cursor follows onto the next page")

	m = press(m, "[")
	assert.Equal(t, 0, m.tracks.Page())

	m = press(m, "j", "enter")
	assert.Equal(t, 1, m.service.Index())
}

func TestCabinetKeys_IgnoredInGallery(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, " ", "n")

	assert.True(t, m.service.IsIdle())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "Open photo")

	m = press(m, "?")
	assert.False(t, m.help.ShowAll)
}
