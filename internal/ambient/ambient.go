// Package ambient manages the background image that crossfades on track change.
//
// A change runs in three steps: Begin hides the current picture and schedules
// a SwapMsg; the swap sets the new source and loads it; the load completion
// makes the picture visible again. Brightness follows visibility through
// FadeTickMsg frames.
//
// By default a scheduled swap is never cancelled. When two changes happen
// within the delay, the older swap still lands and may overwrite the newer
// source. Set CancelStale to drop swaps superseded by a later Begin or Clear.
package ambient

import (
	"image"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultDelay is the fade-out time before the source is swapped.
	DefaultDelay = 500 * time.Millisecond

	fadeFrame = 40 * time.Millisecond
)

// SwapMsg replaces the background source after the fade-out delay.
type SwapMsg struct {
	Src string
	Gen uint64
}

// LoadedMsg reports the background image load.
type LoadedMsg struct {
	Src   string
	Image image.Image
	Err   error
}

// FadeTickMsg advances the brightness animation.
type FadeTickMsg struct {
	Gen uint64
}

// Loader decodes the image behind a source.
type Loader func(src string) (image.Image, error)

// Options configures a Background.
type Options struct {
	Delay       time.Duration
	CancelStale bool
	Load        Loader
	Logger      *slog.Logger
}

// Background is the ambient background state.
type Background struct {
	src     string
	image   image.Image
	visible bool
	level   float64

	delay       time.Duration
	cancelStale bool
	load        Loader
	logger      *slog.Logger

	swapGen uint64
	fadeGen uint64
	fading  bool
}

// New creates an empty, hidden background.
func New(opts Options) *Background {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Background{
		delay:       opts.Delay,
		cancelStale: opts.CancelStale,
		load:        opts.Load,
		logger:      opts.Logger,
	}
}

// Begin starts a crossfade to src.
func (b *Background) Begin(src string) tea.Cmd {
	b.visible = false
	b.swapGen++
	gen := b.swapGen
	swap := tea.Tick(b.delay, func(time.Time) tea.Msg {
		return SwapMsg{Src: src, Gen: gen}
	})
	return tea.Batch(swap, b.startFade())
}

// Clear hides the background immediately.
func (b *Background) Clear() {
	b.visible = false
	b.level = 0
	b.fading = false
	b.fadeGen++
	if b.cancelStale {
		b.swapGen++
	}
}

// HandleSwap applies a scheduled swap and starts loading the new source.
func (b *Background) HandleSwap(msg SwapMsg) tea.Cmd {
	if b.cancelStale && msg.Gen != b.swapGen {
		return nil
	}
	b.src = msg.Src
	if msg.Src == "" || b.load == nil {
		return nil
	}
	load := b.load
	src := msg.Src
	return func() tea.Msg {
		img, err := load(src)
		return LoadedMsg{Src: src, Image: img, Err: err}
	}
}

// HandleLoaded shows the loaded image if it still matches the source.
func (b *Background) HandleLoaded(msg LoadedMsg) tea.Cmd {
	if msg.Src != b.src {
		return nil
	}
	if msg.Err != nil || msg.Image == nil {
		b.logger.Warn("background unavailable", "src", msg.Src, "err", msg.Err)
		return nil
	}
	b.image = msg.Image
	b.visible = true
	return b.startFade()
}

// HandleFadeTick moves the brightness one frame toward its target.
func (b *Background) HandleFadeTick(msg FadeTickMsg) tea.Cmd {
	if msg.Gen != b.fadeGen || !b.fading {
		return nil
	}

	step := float64(fadeFrame) / float64(b.delay)
	target := b.target()
	switch {
	case b.level < target:
		b.level = min(b.level+step, target)
	case b.level > target:
		b.level = max(b.level-step, target)
	}

	if b.level == target {
		b.fading = false
		return nil
	}
	return b.fadeTick()
}

func (b *Background) startFade() tea.Cmd {
	b.fadeGen++
	if b.level == b.target() {
		b.fading = false
		return nil
	}
	b.fading = true
	return b.fadeTick()
}

func (b *Background) fadeTick() tea.Cmd {
	gen := b.fadeGen
	return tea.Tick(fadeFrame, func(time.Time) tea.Msg {
		return FadeTickMsg{Gen: gen}
	})
}

func (b *Background) target() float64 {
	if b.visible {
		return 1
	}
	return 0
}

// Source returns the current background source.
func (b *Background) Source() string { return b.src }

// Image returns the current background image, nil before the first load.
func (b *Background) Image() image.Image { return b.image }

// Visible returns whether the background is shown (or fading in).
func (b *Background) Visible() bool { return b.visible }

// Level returns the rendered brightness in [0, 1].
func (b *Background) Level() float64 { return b.level }

// Fading returns true while a fade animation is running.
func (b *Background) Fading() bool { return b.fading }
