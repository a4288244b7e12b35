package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const appName = "keepsake"

type Config struct {
	Icons string `koanf:"icons" toml:"icons"` // "nerd", "unicode", or "none"

	// Photo album
	Gallery GalleryConfig `koanf:"gallery" toml:"gallery"`

	// Record cabinet
	Cabinet CabinetConfig `koanf:"cabinet" toml:"cabinet"`

	// Diagnostic log (the terminal is owned by the UI)
	Log LogConfig `koanf:"log" toml:"log"`
}

// GalleryConfig holds the photo album settings.
type GalleryConfig struct {
	PhotoFolder          string           `koanf:"photo_folder" toml:"photo_folder"`
	DescriptionFolder    string           `koanf:"description_folder" toml:"description_folder"`
	DescriptionURL       string           `koanf:"description_url" toml:"description_url,omitempty"` // e.g. "http://localhost:8000/descriptions"
	DescriptionTimeoutMs int              `koanf:"description_timeout_ms" toml:"description_timeout_ms"`
	Photos               []string         `koanf:"photos" toml:"photos,omitempty"` // flat list, used when no categories are set
	Categories           []CategoryConfig `koanf:"categories" toml:"categories,omitempty"`
}

// CategoryConfig is one named photo grouping.
// All marks the sentinel category that shows the whole collection.
type CategoryConfig struct {
	Name   string   `koanf:"name" toml:"name"`
	All    bool     `koanf:"all" toml:"all,omitempty"`
	Photos []string `koanf:"photos" toml:"photos,omitempty"`
}

// CabinetConfig holds the record cabinet settings.
type CabinetConfig struct {
	Tracks               []TrackConfig `koanf:"tracks" toml:"tracks,omitempty"`
	TracksMarkup         string        `koanf:"tracks_markup" toml:"tracks_markup,omitempty"` // HTML file with .track-item elements
	Composers            []string      `koanf:"composers" toml:"composers,omitempty"`         // composer per markup track index
	Volume               *float64      `koanf:"volume" toml:"volume,omitempty"`               // 0.0-1.0 (default: 1.0)
	CrossfadeDelayMs     int           `koanf:"crossfade_delay_ms" toml:"crossfade_delay_ms"`
	IdleHideMs           int           `koanf:"idle_hide_ms" toml:"idle_hide_ms"`
	CancelStaleCrossfade bool          `koanf:"cancel_stale_crossfade" toml:"cancel_stale_crossfade"`
	PageSize             int           `koanf:"page_size" toml:"page_size"`
}

// TrackConfig describes one track of the cabinet.
type TrackConfig struct {
	Title    string `koanf:"title" toml:"title"`
	Composer string `koanf:"composer" toml:"composer,omitempty"`
	Audio    string `koanf:"audio" toml:"audio"`
	Cover    string `koanf:"cover" toml:"cover,omitempty"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	File  string `koanf:"file" toml:"file,omitempty"`   // default: $XDG_STATE_HOME/keepsake/keepsake.log
	Level string `koanf:"level" toml:"level,omitempty"` // "debug", "info", "warn", "error" (default: "info")
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given config files in order (last wins).
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Gallery.PhotoFolder = expandPath(cfg.Gallery.PhotoFolder)
	cfg.Gallery.DescriptionFolder = expandPath(cfg.Gallery.DescriptionFolder)
	cfg.Gallery.DescriptionURL = strings.TrimSuffix(cfg.Gallery.DescriptionURL, "/")

	cfg.Cabinet.TracksMarkup = expandPath(cfg.Cabinet.TracksMarkup)
	for i := range cfg.Cabinet.Tracks {
		cfg.Cabinet.Tracks[i].Audio = expandPath(cfg.Cabinet.Tracks[i].Audio)
		cfg.Cabinet.Tracks[i].Cover = expandPath(cfg.Cabinet.Tracks[i].Cover)
	}

	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/keepsake/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetGalleryConfig returns the gallery configuration with defaults applied.
func (c *Config) GetGalleryConfig() GalleryConfig {
	cfg := c.Gallery

	if cfg.PhotoFolder == "" {
		cfg.PhotoFolder = "photos"
	}
	if cfg.DescriptionFolder == "" {
		cfg.DescriptionFolder = "descriptions"
	}
	if cfg.DescriptionTimeoutMs <= 0 {
		cfg.DescriptionTimeoutMs = 5000
	}

	return cfg
}

// DescriptionTimeout returns the per-description fetch timeout.
func (g GalleryConfig) DescriptionTimeout() time.Duration {
	return time.Duration(g.DescriptionTimeoutMs) * time.Millisecond
}

// GetCabinetConfig returns the cabinet configuration with defaults applied.
func (c *Config) GetCabinetConfig() CabinetConfig {
	cfg := c.Cabinet

	if cfg.Volume == nil {
		v := 1.0
		cfg.Volume = &v
	} else {
		v := min(max(*cfg.Volume, 0), 1)
		cfg.Volume = &v
	}
	if cfg.CrossfadeDelayMs <= 0 {
		cfg.CrossfadeDelayMs = 500
	}
	if cfg.IdleHideMs <= 0 {
		cfg.IdleHideMs = 3000
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 24
	}

	return cfg
}

// CrossfadeDelay returns the fade-out delay before the background swaps.
func (c CabinetConfig) CrossfadeDelay() time.Duration {
	return time.Duration(c.CrossfadeDelayMs) * time.Millisecond
}

// IdleHide returns the inactivity delay before the controls hide.
func (c CabinetConfig) IdleHide() time.Duration {
	return time.Duration(c.IdleHideMs) * time.Millisecond
}

// LogPath returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// HasCategories returns true if the gallery defines named categories.
func (c *Config) HasCategories() bool {
	return len(c.Gallery.Categories) > 0
}

// Effective returns a copy of the configuration with every default applied.
func (c *Config) Effective() Config {
	out := *c
	out.Gallery = c.GetGalleryConfig()
	out.Cabinet = c.GetCabinetConfig()
	if out.Icons == "" {
		out.Icons = "none"
	}
	if out.Log.Level == "" {
		out.Log.Level = "info"
	}
	return out
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return gotoml.Marshal(c.Effective())
}
