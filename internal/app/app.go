package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/ambient"
	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/describe"
	"github.com/llehouerou/keepsake/internal/gallery"
	"github.com/llehouerou/keepsake/internal/idle"
	"github.com/llehouerou/keepsake/internal/keymap"
	"github.com/llehouerou/keepsake/internal/lightbox"
	"github.com/llehouerou/keepsake/internal/notify"
	"github.com/llehouerou/keepsake/internal/playback"
	"github.com/llehouerou/keepsake/internal/ui/galleryview"
	"github.com/llehouerou/keepsake/internal/ui/picture"
	"github.com/llehouerou/keepsake/internal/ui/tracklist"
)

// Options carries the collaborators built by main.
type Options struct {
	Index        *gallery.Index
	PhotoFolder  string
	Descriptions *describe.Loader // nil disables descriptions
	Service      playback.Service

	CrossfadeDelay time.Duration
	CancelStale    bool
	IdleDelay      time.Duration
	PageSize       int

	Notifier *notify.NowPlaying // nil disables desktop notifications
	Logger   *slog.Logger
}

// Model is the root application model containing all state.
type Model struct {
	view ViewMode

	// Album
	index        *gallery.Index
	photos       *picture.Cache
	gallery      galleryview.Model
	lightbox     *lightbox.Machine
	lightboxSize int64
	describe     *describe.Loader

	// Cabinet
	service  playback.Service
	sub      *playback.Subscription
	tracks   tracklist.Model
	ambient  *ambient.Background
	stage    *stage
	idle     *idle.Tracker
	notifier *notify.NowPlaying
	ticking  bool

	keys     map[string]*keymap.Resolver
	help     help.Model
	status   string
	statusID int
	logger   *slog.Logger

	width  int
	height int
}

// New creates the root model. Nothing is loaded until Init runs.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	photos := picture.NewCache()

	keys := make(map[string]*keymap.Resolver, 3)
	for _, ctx := range []string{contextGallery, contextLightbox, contextCabinet} {
		keys[ctx] = keymap.ForContext(ctx)
	}

	return Model{
		view:         ViewGallery,
		index:        opts.Index,
		photos:       photos,
		gallery:      galleryview.New(opts.Index, opts.PhotoFolder, photos),
		lightbox:     &lightbox.Machine{},
		lightboxSize: -1,
		describe:     opts.Descriptions,
		service:      opts.Service,
		sub:          opts.Service.Subscribe(),
		tracks:       tracklist.New(opts.Service.Catalog(), opts.PageSize),
		ambient: ambient.New(ambient.Options{
			Delay:       opts.CrossfadeDelay,
			CancelStale: opts.CancelStale,
			Load:        catalog.LoadCover,
			Logger:      logger,
		}),
		stage:    &stage{},
		idle:     idle.New(opts.IdleDelay),
		notifier: opts.Notifier,
		keys:     keys,
		help:     help.New(),
		logger:   logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadPhotosCmd(),
		m.loadDescriptionsCmd(),
		m.WatchServiceEvents(),
		m.WatchTrackFinished(),
	)
}

// ViewMode returns the active top-level view.
func (m Model) ViewMode() ViewMode { return m.view }

// Status returns the status line message, empty when none.
func (m Model) Status() string { return m.status }

// setStatus shows a message in the status line for StatusDuration.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusID++
	m.status = msg
	return StatusClearCmd(m.statusID)
}
