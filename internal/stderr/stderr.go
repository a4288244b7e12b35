//go:build !windows

// Package stderr redirects file descriptor 2 into the diagnostic log. The
// audio backend's C code (ALSA through oto) writes there directly and would
// otherwise draw over the terminal UI.
package stderr

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
)

// Capture is an active redirection of fd 2.
type Capture struct {
	saved  int
	r, w   *os.File
	logger *slog.Logger
	done   chan struct{}
}

// Start redirects fd 2 into a pipe drained line by line into logger. Call it
// before the speaker is initialized. On error fd 2 is left untouched.
func Start(logger *slog.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())
	saved, err := syscall.Dup(fd)
	if err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		_ = syscall.Close(saved)
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}

	c := &Capture{saved: saved, r: r, w: w, logger: logger, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		forward(r, logger)
	}()
	return c, nil
}

// Stop restores fd 2 and waits for the pending lines to be logged.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	_ = syscall.Dup2(c.saved, int(os.Stderr.Fd()))
	_ = syscall.Close(c.saved)
	_ = c.w.Close()
	<-c.done
	_ = c.r.Close()
}

// forward logs every non-empty line of r. Buffer underruns are routine on
// slow terminals and go to debug.
func forward(r io.Reader, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.Contains(line, "underrun"):
			logger.Debug("audio backend", "line", line)
		default:
			logger.Warn("audio backend", "line", line)
		}
	}
}
