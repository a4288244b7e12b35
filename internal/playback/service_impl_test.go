package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/player"
)

func testCatalog(n int) *catalog.Catalog {
	names := []string{"moonlight", "nocturne", "gymnopedie", "clair", "canon"}
	tracks := make([]catalog.Track, n)
	for i := range n {
		tracks[i] = catalog.Track{
			Title:    names[i%len(names)],
			Composer: "composer",
			Audio:    "/music/" + names[i%len(names)] + ".mp3",
		}
	}
	return catalog.New(tracks)
}

func newTestService(n int, opts ...Option) (Service, *player.Mock) {
	p := player.NewMock()
	return New(p, testCatalog(n), opts...), p
}

// fixedRand returns the given values in order, repeating the last one.
func fixedRand(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[min(i, len(values)-1)]
		i++
		return v
	}
}

func TestNew_StartsIdle(t *testing.T) {
	svc, p := newTestService(3, WithVolume(0.4))

	assert.Equal(t, StateIdle, svc.State())
	assert.Equal(t, -1, svc.Index())
	assert.True(t, svc.IsIdle())
	assert.Nil(t, svc.CurrentTrack())
	assert.InDelta(t, 0.4, p.Volume(), 1e-9)
	assert.Equal(t, time.Duration(0), svc.Position())
}

func TestService_Select(t *testing.T) {
	svc, p := newTestService(3)
	sub := svc.Subscribe()

	require.NoError(t, svc.Select(1))

	assert.Equal(t, StatePlaying, svc.State())
	assert.Equal(t, 1, svc.Index())
	assert.Equal(t, []string{"/music/nocturne.mp3"}, p.PlayCalls())

	sc := <-sub.StateChanged
	assert.Equal(t, StateChange{Previous: StateIdle, Current: StatePlaying}, sc)
	tc := <-sub.TrackChanged
	assert.Equal(t, -1, tc.PreviousIndex)
	assert.Equal(t, 1, tc.Index)
	assert.Equal(t, "nocturne", tc.Track.Title)

	cur := svc.CurrentTrack()
	require.NotNil(t, cur)
	assert.Equal(t, "nocturne", cur.Title)
}

func TestService_Select_FromPausedPlaysAgain(t *testing.T) {
	svc, _ := newTestService(3)
	require.NoError(t, svc.Select(0))
	require.NoError(t, svc.Toggle())
	require.Equal(t, StatePaused, svc.State())

	require.NoError(t, svc.Select(2))

	assert.Equal(t, StatePlaying, svc.State())
	assert.Equal(t, 2, svc.Index())
}

func TestService_Select_OutOfRange(t *testing.T) {
	svc, p := newTestService(3)
	require.NoError(t, svc.Select(0))

	for _, i := range []int{-1, 3, 10} {
		err := svc.Select(i)
		assert.ErrorIs(t, err, ErrNoTrack)
	}

	assert.Equal(t, StatePlaying, svc.State())
	assert.Equal(t, 0, svc.Index())
	assert.Len(t, p.PlayCalls(), 1)
}

func TestService_Select_PlayErrorReturnsToIdle(t *testing.T) {
	svc, p := newTestService(3)
	require.NoError(t, svc.Select(0))
	sub := svc.Subscribe()

	boom := errors.New("decode failed")
	p.SetPlayError(boom)

	err := svc.Select(1)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, StateIdle, svc.State())
	assert.Equal(t, -1, svc.Index())

	ev := <-sub.Error
	assert.Equal(t, "play", ev.Operation)
	assert.Equal(t, "/music/nocturne.mp3", ev.Path)
	sc := <-sub.StateChanged
	assert.Equal(t, StateIdle, sc.Current)
}

func TestService_Toggle(t *testing.T) {
	svc, p := newTestService(2)

	// No-op while idle.
	require.NoError(t, svc.Toggle())
	assert.Equal(t, StateIdle, svc.State())
	assert.Empty(t, p.PlayCalls())

	require.NoError(t, svc.Select(1))
	require.NoError(t, svc.Toggle())
	assert.Equal(t, StatePaused, svc.State())
	assert.Equal(t, player.Paused, p.State())
	assert.Equal(t, 1, svc.Index())

	require.NoError(t, svc.Toggle())
	assert.Equal(t, StatePlaying, svc.State())
	assert.Equal(t, player.Playing, p.State())
}

func TestService_Stop_Resets(t *testing.T) {
	svc, p := newTestService(3)
	require.NoError(t, svc.Select(2))
	p.SetDuration(2 * time.Minute)
	p.SetPosition(45 * time.Second)
	sub := svc.Subscribe()

	require.NoError(t, svc.Stop())

	assert.Equal(t, StateIdle, svc.State())
	assert.Equal(t, -1, svc.Index())
	assert.Equal(t, time.Duration(0), svc.Position())
	assert.Equal(t, time.Duration(0), svc.Duration())
	assert.Nil(t, svc.CurrentTrack())
	assert.Equal(t, player.Stopped, p.State())

	sc := <-sub.StateChanged
	assert.Equal(t, StateChange{Previous: StatePlaying, Current: StateIdle}, sc)
	pc := <-sub.PositionChanged
	assert.Equal(t, time.Duration(0), pc.Position)
}

func TestService_NextPrevious_Wraparound(t *testing.T) {
	tests := []struct {
		name  string
		start int // -1 for idle
		next  bool
		want  int
	}{
		{"next from idle", -1, true, 0},
		{"prev from idle", -1, false, 2},
		{"next middle", 1, true, 2},
		{"next wraps at end", 2, true, 0},
		{"prev middle", 1, false, 0},
		{"prev wraps at start", 0, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(3)
			if tt.start >= 0 {
				require.NoError(t, svc.Select(tt.start))
			}

			var err error
			if tt.next {
				err = svc.Next()
			} else {
				err = svc.Previous()
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.Index())
			assert.Equal(t, StatePlaying, svc.State())
		})
	}
}

func TestService_NextPrevious_RoundTrip(t *testing.T) {
	const n = 5
	for start := range n {
		svc, _ := newTestService(n)
		require.NoError(t, svc.Select(start))

		require.NoError(t, svc.Next())
		require.NoError(t, svc.Previous())
		assert.Equal(t, start, svc.Index(), "next then prev from %d", start)

		require.NoError(t, svc.Previous())
		require.NoError(t, svc.Next())
		assert.Equal(t, start, svc.Index(), "prev then next from %d", start)
	}
}

func TestService_NextPrevious_EmptyCatalog(t *testing.T) {
	svc, p := newTestService(0)

	assert.ErrorIs(t, svc.Next(), ErrEmptyCatalog)
	assert.ErrorIs(t, svc.Previous(), ErrEmptyCatalog)
	assert.Equal(t, StateIdle, svc.State())
	assert.Empty(t, p.PlayCalls())
}

func TestService_Next_Shuffle(t *testing.T) {
	svc, _ := newTestService(5, WithRand(fixedRand(3, 3, 0)))
	svc.SetShuffle(true)
	require.NoError(t, svc.Select(1))

	require.NoError(t, svc.Next())
	assert.Equal(t, 3, svc.Index())

	// The random pick may land on the current track.
	require.NoError(t, svc.Next())
	assert.Equal(t, 3, svc.Index())

	require.NoError(t, svc.Next())
	assert.Equal(t, 0, svc.Index())
}

func TestService_Next_ShuffleStaysInRange(t *testing.T) {
	svc, _ := newTestService(4)
	svc.SetShuffle(true)

	for range 200 {
		require.NoError(t, svc.Next())
		i := svc.Index()
		assert.True(t, i >= 0 && i < 4, "index %d out of range", i)
	}
}

func TestService_HandleFinished(t *testing.T) {
	t.Run("advances when not looping", func(t *testing.T) {
		svc, p := newTestService(3)
		require.NoError(t, svc.Select(2))

		require.NoError(t, svc.HandleFinished())

		assert.Equal(t, 0, svc.Index())
		assert.Len(t, p.PlayCalls(), 2)
	})

	t.Run("looping leaves the track to the engine", func(t *testing.T) {
		svc, p := newTestService(3)
		require.NoError(t, svc.Select(1))
		svc.SetLoop(true)

		require.NoError(t, svc.HandleFinished())

		assert.Equal(t, 1, svc.Index())
		assert.Len(t, p.PlayCalls(), 1)
	})

	t.Run("ignored while idle", func(t *testing.T) {
		svc, p := newTestService(3)

		require.NoError(t, svc.HandleFinished())

		assert.True(t, svc.IsIdle())
		assert.Empty(t, p.PlayCalls())
	})
}

func TestService_Loop_MirroredOntoPlayer(t *testing.T) {
	svc, p := newTestService(2)
	sub := svc.Subscribe()

	assert.True(t, svc.ToggleLoop())
	assert.True(t, p.Loop())
	assert.Equal(t, ModeChange{Looping: true}, <-sub.ModeChanged)

	// Selecting a new track keeps the flag on the engine.
	require.NoError(t, svc.Select(0))
	assert.True(t, p.Loop())

	assert.False(t, svc.ToggleLoop())
	assert.False(t, p.Loop())
}

func TestService_ToggleShuffle(t *testing.T) {
	svc, _ := newTestService(2)
	sub := svc.Subscribe()

	assert.True(t, svc.ToggleShuffle())
	assert.True(t, svc.Shuffle())
	assert.Equal(t, ModeChange{Shuffling: true}, <-sub.ModeChanged)

	assert.False(t, svc.ToggleShuffle())
}

func TestService_Volume(t *testing.T) {
	svc, p := newTestService(1)

	svc.SetVolume(0.5)
	assert.InDelta(t, 0.5, svc.Volume(), 1e-9)
	assert.InDelta(t, 0.5, p.Volume(), 1e-9)

	assert.InDelta(t, 0.6, svc.AdjustVolume(0.1), 1e-9)
	assert.InDelta(t, 1.0, svc.AdjustVolume(5), 1e-9)
	assert.InDelta(t, 0.0, svc.AdjustVolume(-5), 1e-9)

	svc.SetVolume(-1)
	assert.InDelta(t, 0.0, p.Volume(), 1e-9)
}

func TestService_SeekFraction(t *testing.T) {
	t.Run("seeks to half of the duration", func(t *testing.T) {
		svc, p := newTestService(1)
		require.NoError(t, svc.Select(0))
		p.SetDuration(120 * time.Second)

		require.NoError(t, svc.SeekFraction(0.5))

		assert.Equal(t, []time.Duration{60 * time.Second}, p.SeekCalls())
		assert.Equal(t, 60*time.Second, svc.Position())
	})

	t.Run("clamps the fraction", func(t *testing.T) {
		svc, p := newTestService(1)
		require.NoError(t, svc.Select(0))
		p.SetDuration(100 * time.Second)

		require.NoError(t, svc.SeekFraction(1.5))

		assert.Equal(t, []time.Duration{100 * time.Second}, p.SeekCalls())
	})

	t.Run("no-op while duration unknown", func(t *testing.T) {
		svc, p := newTestService(1)
		require.NoError(t, svc.Select(0))

		require.NoError(t, svc.SeekFraction(0.5))

		assert.Empty(t, p.SeekCalls())
	})

	t.Run("no-op while idle", func(t *testing.T) {
		svc, p := newTestService(1)
		p.SetDuration(100 * time.Second)

		require.NoError(t, svc.SeekFraction(0.5))
		require.NoError(t, svc.SeekTo(10*time.Second))

		assert.Empty(t, p.SeekCalls())
	})
}

func TestService_Snapshot(t *testing.T) {
	svc, _ := newTestService(3, WithVolume(0.3))
	require.NoError(t, svc.Select(2))
	svc.SetLoop(true)
	svc.SetShuffle(true)
	require.NoError(t, svc.Toggle())

	assert.Equal(t, Snapshot{
		State:     StatePaused,
		Index:     2,
		Looping:   true,
		Shuffling: true,
		Volume:    0.3,
	}, svc.Snapshot())
}

func TestService_Close(t *testing.T) {
	svc, p := newTestService(2)
	sub := svc.Subscribe()
	require.NoError(t, svc.Select(0))

	require.NoError(t, svc.Close())
	require.NoError(t, svc.Close())

	select {
	case <-sub.Done:
	default:
		t.Error("Done should be closed after Close")
	}
	assert.Equal(t, player.Stopped, p.State())
	assert.ErrorIs(t, svc.Select(1), ErrClosed)
}
