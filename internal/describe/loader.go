package describe

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Placeholder is shown when a description cannot be loaded.
const Placeholder = "No description"

// Pending is shown while a description is in flight.
const Pending = "Loading..."

// ErrEmpty is returned for a description file with no text.
var ErrEmpty = errors.New("empty description")

// Result is the outcome of one description load.
type Result struct {
	Text string
	Err  error
}

// LoadedMsg delivers a description to the gallery.
// Messages arrive in completion order, not request order.
type LoadedMsg struct {
	Index    int
	Filename string
	Text     string
	Err      error
}

// Loader turns fetch outcomes into display text. Failures are logged and
// replaced with Placeholder; nothing is retried.
type Loader struct {
	fetcher Fetcher
	timeout time.Duration
	logger  *slog.Logger
}

// NewLoader creates a loader. A zero timeout disables the per-fetch deadline.
func NewLoader(f Fetcher, timeout time.Duration, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{fetcher: f, timeout: timeout, logger: logger}
}

// Load fetches the description for filename.
func (l *Loader) Load(ctx context.Context, filename string) Result {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	text, err := l.fetcher.Fetch(ctx, filename)
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = ErrEmpty
		}
	}
	if err != nil {
		l.logger.Warn("description unavailable", "photo", filename, "err", err)
		return Result{Text: Placeholder, Err: err}
	}
	return Result{Text: text}
}

// Cmd returns an independent command loading one description.
func (l *Loader) Cmd(index int, filename string) tea.Cmd {
	return func() tea.Msg {
		r := l.Load(context.Background(), filename)
		return LoadedMsg{Index: index, Filename: filename, Text: r.Text, Err: r.Err}
	}
}

// Batch returns one command per photo, run concurrently by the runtime.
func (l *Loader) Batch(photos []string) tea.Cmd {
	cmds := make([]tea.Cmd, len(photos))
	for i, name := range photos {
		cmds[i] = l.Cmd(i, name)
	}
	return tea.Batch(cmds...)
}
