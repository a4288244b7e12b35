//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/keepsake/internal/playback"
)

// Adapter connects the playback service to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(reader Reader, send Sender) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("keepsake", &rootAdapter{}, &playerAdapter{reader: reader, send: send}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Keepsake", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the loop
// and shuffle extensions.
type playerAdapter struct {
	reader Reader
	send   Sender
}

func (p *playerAdapter) do(msg CommandMsg) error {
	p.send(msg)
	return nil
}

func (p *playerAdapter) Next() error      { return p.do(CommandMsg{Command: CmdNext}) }
func (p *playerAdapter) Previous() error  { return p.do(CommandMsg{Command: CmdPrevious}) }
func (p *playerAdapter) Pause() error     { return p.do(CommandMsg{Command: CmdPause}) }
func (p *playerAdapter) PlayPause() error { return p.do(CommandMsg{Command: CmdPlayPause}) }
func (p *playerAdapter) Stop() error      { return p.do(CommandMsg{Command: CmdStop}) }
func (p *playerAdapter) Play() error      { return p.do(CommandMsg{Command: CmdPlay}) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.do(CommandMsg{Command: CmdSeek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.do(CommandMsg{Command: CmdSetPosition, Offset: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.reader.Snapshot().State), nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.reader.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.Audio)),
		Length:  types.Microseconds(p.reader.Duration().Microseconds()),
		Title:   track.Title,
	}
	if track.Composer != "" {
		meta.Artist = []string{track.Composer}
		meta.Composer = []string{track.Composer}
	}
	if track.Cover != "" {
		meta.ArtUrl = "file://" + track.Cover
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.reader.Snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.do(CommandMsg{Command: CmdSetVolume, Value: v})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.reader.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// Prev and next wrap around, so both are always available with any track.
func (p *playerAdapter) CanGoNext() (bool, error) { return p.reader.Catalog().Len() > 0, nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.reader.Catalog().Len() > 0, nil }

func (p *playerAdapter) CanPlay() (bool, error) { return p.reader.Catalog().Len() > 0, nil }

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return p.reader.Duration() > 0, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.reader.Snapshot().Looping {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Playlist looping is the default behaviour, so only Track turns loop on.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.do(CommandMsg{Command: CmdSetLoop, Flag: status == types.LoopStatusTrack})
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.reader.Snapshot().Shuffling, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	return p.do(CommandMsg{Command: CmdSetShuffle, Flag: shuffle})
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateIdle:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
