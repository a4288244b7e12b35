package player

import (
	"sync/atomic"

	"github.com/gopxl/beep/v2"
)

var _ beep.Streamer = (*loopStreamer)(nil)

// loopStreamer wraps a seekable streamer and rewinds it when exhausted
// while the loop flag is set, so the track repeats without going through
// the application.
type loopStreamer struct {
	src  beep.StreamSeeker
	loop *atomic.Bool
}

// Stream implements beep.Streamer.
func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		got, more := l.src.Stream(samples[n:])
		n += got
		if more && got > 0 {
			continue
		}
		if !l.loop.Load() || l.src.Len() == 0 {
			return n, n > 0
		}
		if err := l.src.Seek(0); err != nil {
			return n, n > 0
		}
	}
	return n, true
}

// Err implements beep.Streamer.
func (l *loopStreamer) Err() error {
	return l.src.Err()
}
