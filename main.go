package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keepsake/internal/app"
	"github.com/llehouerou/keepsake/internal/catalog"
	"github.com/llehouerou/keepsake/internal/config"
	"github.com/llehouerou/keepsake/internal/describe"
	"github.com/llehouerou/keepsake/internal/errmsg"
	"github.com/llehouerou/keepsake/internal/gallery"
	"github.com/llehouerou/keepsake/internal/icons"
	"github.com/llehouerou/keepsake/internal/logging"
	"github.com/llehouerou/keepsake/internal/mpris"
	"github.com/llehouerou/keepsake/internal/notify"
	"github.com/llehouerou/keepsake/internal/playback"
	"github.com/llehouerou/keepsake/internal/player"
	"github.com/llehouerou/keepsake/internal/stderr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "config" {
		data, err := cfg.Encode()
		if err != nil {
			fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
			os.Exit(1)
		}
		_, _ = os.Stdout.Write(data)
		return
	}

	if err := run(cfg); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, closeLog := openLog(cfg)
	defer closeLog.Close()

	capture, err := stderr.Start(logger)
	if err != nil {
		logger.Warn("stderr capture unavailable", "error", err)
	}
	defer capture.Stop()

	icons.Init(cfg.Icons)

	gcfg := cfg.GetGalleryConfig()
	ccfg := cfg.GetCabinetConfig()

	svc := playback.New(player.New(), catalog.New(loadTracks(ccfg, logger)),
		playback.WithVolume(*ccfg.Volume))
	defer svc.Close()

	var notifier *notify.NowPlaying
	if n, err := notify.New(); err == nil {
		notifier = notify.NewNowPlaying(n, notify.DefaultTimeout)
	}

	m := app.New(app.Options{
		Index:          loadIndex(cfg, gcfg, logger),
		PhotoFolder:    gcfg.PhotoFolder,
		Descriptions:   describe.NewLoader(descriptionFetcher(gcfg), gcfg.DescriptionTimeout(), logger),
		Service:        svc,
		CrossfadeDelay: ccfg.CrossfadeDelay(),
		CancelStale:    ccfg.CancelStaleCrossfade,
		IdleDelay:      ccfg.IdleHide(),
		PageSize:       ccfg.PageSize,
		Notifier:       notifier,
		Logger:         logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	adapter, err := mpris.New(svc, p.Send)
	if err != nil {
		logger.Warn("mpris unavailable", "error", err)
	} else {
		defer adapter.Close()
	}

	_, err = p.Run()
	return err
}

// openLog opens the diagnostic log, falling back to discarding on failure.
func openLog(cfg *config.Config) (*slog.Logger, io.Closer) {
	path, err := cfg.LogPath()
	if err != nil {
		return logging.Discard(), io.NopCloser(nil)
	}
	logger, closer, err := logging.Open(path, cfg.Log.Level)
	if err != nil {
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// loadTracks builds the cabinet from config entries, or from the track
// markup file when no entries are configured.
func loadTracks(ccfg config.CabinetConfig, logger *slog.Logger) []catalog.Track {
	var tracks []catalog.Track
	for _, t := range ccfg.Tracks {
		tracks = append(tracks, catalog.Track{
			Title:    t.Title,
			Composer: t.Composer,
			Audio:    t.Audio,
			Cover:    t.Cover,
		})
	}

	if len(tracks) == 0 && ccfg.TracksMarkup != "" {
		parsed, err := catalog.LoadMarkup(ccfg.TracksMarkup, ccfg.Composers)
		if err != nil {
			logger.Warn(errmsg.FormatWith(errmsg.OpCatalogLoad, ccfg.TracksMarkup, err))
		}
		tracks = parsed
	}

	return catalog.Enrich(tracks, logger)
}

// loadIndex builds the album from configured categories, a flat photo list,
// or the contents of the photo folder, in that order.
func loadIndex(cfg *config.Config, gcfg config.GalleryConfig, logger *slog.Logger) *gallery.Index {
	if cfg.HasCategories() {
		categories := make([]gallery.Category, 0, len(gcfg.Categories))
		for _, c := range gcfg.Categories {
			categories = append(categories, gallery.Category{Name: c.Name, All: c.All, Photos: c.Photos})
		}
		return gallery.NewIndex(categories)
	}

	if len(gcfg.Photos) > 0 {
		return gallery.FromList(gcfg.Photos)
	}

	photos, err := gallery.Scan(gcfg.PhotoFolder)
	if err != nil {
		logger.Warn("photo folder unreadable", "path", gcfg.PhotoFolder, "error", err)
	}
	return gallery.FromList(photos)
}

func descriptionFetcher(gcfg config.GalleryConfig) describe.Fetcher {
	if gcfg.DescriptionURL != "" {
		return describe.NewHTTPFetcher(gcfg.DescriptionURL, gcfg.DescriptionTimeout())
	}
	return describe.DirFetcher{Dir: gcfg.DescriptionFolder}
}
