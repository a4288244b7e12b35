package app

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/keepsake/internal/ambient"
	"github.com/llehouerou/keepsake/internal/playback"
	"github.com/llehouerou/keepsake/internal/ui/playerbar"
	"github.com/llehouerou/keepsake/internal/ui/testutil"
)

// pump feeds every pending service event back into the model.
func pump(t *testing.T, m Model) Model {
	t.Helper()
	for range 32 {
		var msg any
		select {
		case e := <-m.sub.StateChanged:
			msg = ServiceStateChangedMsg(e)
		case e := <-m.sub.TrackChanged:
			msg = ServiceTrackChangedMsg(e)
		case e := <-m.sub.ModeChanged:
			msg = ServiceModeChangedMsg(e)
		case e := <-m.sub.PositionChanged:
			msg = ServicePositionChangedMsg(e)
		case e := <-m.sub.Error:
			msg = ServiceErrorMsg(e)
		default:
			return m
		}
		m, _ = send(m, msg)
	}
	t.Fatal("service events did not settle")
	return m
}

func TestTrackChange_HighlightsAndFades(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "tab", "n")
	m = pump(t, m)

	assert.Equal(t, 0, m.tracks.Active())
	assert.True(t, m.ticking)
	assert.False(t, m.ambient.Visible(), "background fades out before the swap")

	m, cmd := send(m, ambient.SwapMsg{Src: "/cg/1.jpg"})
	require.NotNil(t, cmd)
	assert.Equal(t, "/cg/1.jpg", m.ambient.Source())
}

func TestStop_ClearsBackgroundAndHighlight(t *testing.T) {
	m, _ := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))

	m = pump(t, press(m, "s"))

	assert.Equal(t, -1, m.tracks.Active())
	assert.Empty(t, m.ambient.Source())
	assert.False(t, m.ambient.Visible())
	assert.False(t, m.idle.Hidden())
}

func TestStop_FromIdleClearsStaleBackground(t *testing.T) {
	m, _ := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))
	m = pump(t, press(m, "s"))

	// A swap scheduled before the stop still lands.
	m, _ = send(m, ambient.SwapMsg{Src: "/cg/1.jpg"})
	m, _ = send(m, ambient.LoadedMsg{Src: "/cg/1.jpg", Image: image.NewRGBA(image.Rect(0, 0, 4, 4))})
	require.True(t, m.ambient.Visible())

	m = pump(t, press(m, "s"))

	assert.False(t, m.ambient.Visible())
	assert.Equal(t, -1, m.tracks.Active())
	assert.False(t, m.idle.Hidden())
}

func TestServiceEvents_OutOfOrderKeepsHighlight(t *testing.T) {
	m, _ := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))
	m = press(m, "s", "enter")

	// Drain each channel separately so the track change is handled before
	// the stale transition to idle.
	var states []playback.StateChange
	for len(m.sub.StateChanged) > 0 {
		states = append(states, <-m.sub.StateChanged)
	}
	for len(m.sub.TrackChanged) > 0 {
		m, _ = send(m, ServiceTrackChangedMsg(<-m.sub.TrackChanged))
	}
	require.NotEmpty(t, states)
	for _, e := range states {
		m, _ = send(m, ServiceStateChangedMsg(e))
	}
	m = pump(t, m)

	require.True(t, m.service.IsPlaying())
	assert.Equal(t, m.service.Index(), m.tracks.Active())
	assert.GreaterOrEqual(t, m.tracks.Active(), 0)
}

func TestTrackFinished_Advances(t *testing.T) {
	m, p := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))

	m, cmd := send(m, TrackFinishedMsg{Generation: p.Generation()})
	require.NotNil(t, cmd, "finish watcher is re-armed")
	m = pump(t, m)

	assert.Equal(t, 1, m.service.Index())
	assert.Equal(t, 1, m.tracks.Active())
}

func TestWatchTrackFinished(t *testing.T) {
	m, p := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))

	p.Finish()
	msg := m.WatchTrackFinished()()

	assert.Equal(t, TrackFinishedMsg{Generation: p.Generation()}, msg)
}

func TestTrackFinished_IgnoresReplacedTrack(t *testing.T) {
	m, p := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))

	p.Finish()
	finished := m.WatchTrackFinished()()

	// The user picks another track before the finish is handled.
	m = pump(t, press(m, "j", "enter"))
	require.Equal(t, 1, m.service.Index())

	m, cmd := send(m, finished)
	m = pump(t, m)

	assert.NotNil(t, cmd, "finish watcher is re-armed")
	assert.Equal(t, 1, m.service.Index())
	assert.Equal(t, 1, m.tracks.Active())
	assert.True(t, m.service.IsPlaying())
}

func TestTrackFinished_LoopingRepeats(t *testing.T) {
	m, p := newTestModel(t)
	m = pump(t, press(m, "tab", "l", "n"))

	m, _ = send(m, TrackFinishedMsg{Generation: p.Generation()})

	assert.Equal(t, 0, m.service.Index())
	assert.True(t, m.service.IsPlaying())
}

func TestTick_StopsWhenNotPlaying(t *testing.T) {
	m, _ := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))
	require.True(t, m.ticking)

	m, cmd := send(m, TickMsg(time.Now()))
	assert.NotNil(t, cmd)

	m = pump(t, press(m, " "))
	m, cmd = send(m, TickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
}

func TestIdle_HidesControlsWhilePlaying(t *testing.T) {
	m, _ := newTestModel(t)
	m = pump(t, press(m, "tab", "n"))

	m, cmd := send(m, testutil.Motion(70, 5))
	for _, msg := range testutil.Drain(cmd) {
		m, _ = send(m, msg)
	}

	assert.True(t, m.idle.Hidden())
	assert.True(t, m.playerBarState().Hidden)

	m, _ = send(m, testutil.Key("j"))
	assert.False(t, m.idle.Hidden(), "any key reveals the controls")
}

func TestPlayerBarClicks(t *testing.T) {
	m, p := newTestModel(t)
	m = press(m, "tab")

	playX := -1
	for x := range 40 {
		if playerbar.ButtonAt(x) == playerbar.ButtonPlayPause {
			playX = x
			break
		}
	}
	require.GreaterOrEqual(t, playX, 0)

	m, _ = send(m, testutil.Click(playX, m.barTop()+2))
	assert.True(t, m.service.IsPlaying())

	p.SetDuration(2 * time.Minute)
	mid := 6 + playerbar.BarWidth(m.width)/2
	m, _ = send(m, testutil.Click(mid, m.barTop()+3))
	assert.InDelta(t, time.Minute.Seconds(), m.service.Position().Seconds(), 3)
}

func TestTrackRowClick(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "tab")

	m, _ = send(m, testutil.Click(m.stageWidth()+4, bodyTop+1))

	assert.Equal(t, 1, m.service.Index())
	assert.Equal(t, playback.StatePlaying, m.service.State())
}

func TestPageDotClick(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "tab")

	m, _ = send(m, testutil.Click(m.stageWidth()+2, bodyTop+m.tracks.Rows()-1))

	assert.Equal(t, 1, m.tracks.Page())
	assert.True(t, m.service.IsIdle(), "page switch does not play")
}
