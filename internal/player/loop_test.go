package player

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockStreamer produces a fixed number of samples then returns ok=false.
type mockStreamer struct {
	samples  int
	position int
	seeks    int
}

func (m *mockStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := m.samples - m.position
	if remaining <= 0 {
		return 0, false
	}
	toWrite := min(len(samples), remaining)
	for i := range toWrite {
		v := float64(m.position + i)
		samples[i] = [2]float64{v, v}
	}
	m.position += toWrite
	return toWrite, true
}

func (m *mockStreamer) Err() error { return nil }

func (m *mockStreamer) Len() int { return m.samples }

func (m *mockStreamer) Position() int { return m.position }

func (m *mockStreamer) Seek(p int) error {
	m.position = p
	m.seeks++
	return nil
}

func TestLoopStreamer_NoLoopEnds(t *testing.T) {
	src := &mockStreamer{samples: 10}
	l := &loopStreamer{src: src, loop: &atomic.Bool{}}

	buf := make([][2]float64, 25)
	n, ok := l.Stream(buf)

	assert.True(t, ok)
	assert.Equal(t, 10, n)

	n, ok = l.Stream(buf)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, src.seeks)
}

func TestLoopStreamer_LoopRewinds(t *testing.T) {
	src := &mockStreamer{samples: 10}
	loop := &atomic.Bool{}
	loop.Store(true)
	l := &loopStreamer{src: src, loop: loop}

	buf := make([][2]float64, 25)
	n, ok := l.Stream(buf)

	assert.True(t, ok)
	assert.Equal(t, 25, n)
	assert.Equal(t, 2, src.seeks)
	// Sample 10 is the first sample of the second pass
	assert.Equal(t, 0.0, buf[10][0])
	assert.Equal(t, 4.0, buf[24][0])
}

func TestLoopStreamer_LoopTurnedOffMidway(t *testing.T) {
	src := &mockStreamer{samples: 10}
	loop := &atomic.Bool{}
	loop.Store(true)
	l := &loopStreamer{src: src, loop: loop}

	buf := make([][2]float64, 15)
	_, _ = l.Stream(buf)
	loop.Store(false)

	n, ok := l.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = l.Stream(buf)
	assert.False(t, ok)
}

func TestLoopStreamer_EmptySourceDoesNotSpin(t *testing.T) {
	loop := &atomic.Bool{}
	loop.Store(true)
	l := &loopStreamer{src: &mockStreamer{samples: 0}, loop: loop}

	n, ok := l.Stream(make([][2]float64, 4))
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}
