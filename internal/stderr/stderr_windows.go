//go:build windows

// Package stderr redirects file descriptor 2 into the diagnostic log. The
// Windows audio backend does not write there, so nothing is captured.
package stderr

import "log/slog"

// Capture is a placeholder on Windows.
type Capture struct{}

// Start does nothing on Windows.
func Start(_ *slog.Logger) (*Capture, error) {
	return &Capture{}, nil
}

// Stop does nothing on Windows.
func (c *Capture) Stop() {}
