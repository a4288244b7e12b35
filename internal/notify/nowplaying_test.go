package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/keepsake/internal/catalog"
)

type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Send(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	if n.Replaces != 0 {
		return n.Replaces, nil
	}
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Withdraw(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestTrackNotification(t *testing.T) {
	n := TrackNotification(catalog.Track{
		Title:    "Clair de Lune",
		Composer: "Debussy",
		Cover:    "/covers/clair.jpg",
	})
	assert.Equal(t, "Clair de Lune", n.Summary)
	assert.Equal(t, "Debussy", n.Body)
	assert.Equal(t, "/covers/clair.jpg", n.Image)
	assert.True(t, n.Transient)

	assert.Equal(t, catalog.Placeholder, TrackNotification(catalog.Track{}).Summary)
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)

	require.NoError(t, np.Show(catalog.Track{Title: "A"}))
	require.NoError(t, np.Show(catalog.Track{Title: "B"}))

	require.Len(t, rec.sent, 2)
	assert.Equal(t, uint32(0), rec.sent[0].Replaces)
	assert.Equal(t, uint32(1), rec.sent[1].Replaces)
	assert.Equal(t, DefaultTimeout, rec.sent[1].Timeout)
}

func TestNowPlaying_Dismiss(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)

	require.NoError(t, np.Dismiss())
	assert.Empty(t, rec.closed, "nothing shown yet")

	require.NoError(t, np.Show(catalog.Track{Title: "A"}))
	require.NoError(t, np.Dismiss())
	assert.Equal(t, []uint32{1}, rec.closed)

	require.NoError(t, np.Show(catalog.Track{Title: "B"}))
	assert.Equal(t, uint32(0), rec.sent[1].Replaces, "dismissed bubble is not replaced")
}

func TestNowPlaying_Error(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("no server")}
	np := NewNowPlaying(rec, DefaultTimeout)

	assert.Error(t, np.Show(catalog.Track{Title: "A"}))
}
