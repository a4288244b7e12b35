// Package player is the audio engine behind the record cabinet. It decodes
// a single file with beep and plays it on the shared speaker.
package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extWAV  = ".wav"
)

// speakerSampleRate is fixed; tracks with another rate are resampled.
const speakerSampleRate = beep.SampleRate(44100)

// ErrUnsupportedFormat is returned for files the engine cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported format")

var speakerInitialized bool

type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	loop        atomic.Bool
	volumeLevel float64
	generation  atomic.Uint64
	finishedCh  chan uint64
}

func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan uint64, 1),
	}
}

// IsAudioFile reports whether path has an extension the engine can decode.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extOGG, extWAV:
		return true
	}
	return false
}

// Play starts playback of the given audio file.
func (p *Player) Play(path string) error {
	p.Stop()
	gen := p.generation.Add(1)

	// Drain any stale finish signal from previous track
	select {
	case <-p.finishedCh:
	default:
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(ext, f)
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format

	var playStreamer beep.Streamer = &loopStreamer{src: streamer, loop: &p.loop}
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, playStreamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	exp, silent := volumeExponent(p.volumeLevel)
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: exp, Silent: silent}

	p.state = Playing

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case p.finishedCh <- gen:
		default:
		}
	})))

	return nil
}

func decode(ext string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extMP3:
		return mp3.Decode(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case extOGG:
		return vorbis.Decode(f)
	case extWAV:
		return wav.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := r.Read(header)
	if err != nil {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

func (p *Player) State() State { return p.state }

// Duration returns the length of the loaded track, or 0 when nothing is loaded.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SetLoop sets native looping. It takes effect on the running track.
func (p *Player) SetLoop(loop bool) {
	p.loop.Store(loop)
}

// Loop returns the native loop flag.
func (p *Player) Loop() bool {
	return p.loop.Load()
}

// FinishedChan signals natural completion of a non-looping track. Each
// signal carries the generation of the track that finished.
func (p *Player) FinishedChan() <-chan uint64 {
	return p.finishedCh
}

// Generation counts Play calls; it identifies the loaded track.
func (p *Player) Generation() uint64 {
	return p.generation.Load()
}
