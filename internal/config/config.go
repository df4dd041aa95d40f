package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/scrubber/internal/surface"
)

type Config struct {
	URL           string `koanf:"url"`           // media to open when none is given on the command line
	AutoPlay      bool   `koanf:"autoplay"`      // start playing as soon as media is prepared
	Loop          bool   `koanf:"loop"`          // wrap to frame 0 at the end instead of pausing
	Resume        *bool  `koanf:"resume"`        // restore the saved position per URL (default: true)
	Notifications bool   `koanf:"notifications"` // desktop notification on playback errors
	MPRIS         *bool  `koanf:"mpris"`         // expose the player on D-Bus (default: true)

	UI  UIConfig  `koanf:"ui"`
	Log LogConfig `koanf:"log"`
}

// UIConfig holds terminal front-end settings.
type UIConfig struct {
	FrameRate    int    `koanf:"frame_rate"`     // ticks per second (1-120, default: 30)
	SeekStep     int64  `koanf:"seek_step"`      // frames per seek key (default: 24)
	SeekStepLong int64  `koanf:"seek_step_long"` // frames per long seek key (default: 240)
	Fit          string `koanf:"fit"`            // "horizontal" or "vertical" (default: "horizontal")
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level name (default: "info")
	JSON  bool   `koanf:"json"`
	File  string `koanf:"file"` // empty means the XDG state dir
}

// Load reads the config files in priority order. The file given in extra,
// when set, is read last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.URL = strings.TrimSpace(cfg.URL)
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/scrubber/config.toml
		filepath.Join(xdg.ConfigHome, "scrubber", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ResumeEnabled reports whether positions are saved and restored.
func (c *Config) ResumeEnabled() bool {
	return c.Resume == nil || *c.Resume
}

// MPRISEnabled reports whether the D-Bus remote control is started.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI

	// Apply defaults
	if cfg.FrameRate <= 0 || cfg.FrameRate > 120 {
		cfg.FrameRate = 30
	}
	if cfg.SeekStep <= 0 {
		cfg.SeekStep = 24
	}
	if cfg.SeekStepLong <= 0 {
		cfg.SeekStepLong = 10 * cfg.SeekStep
	}
	if _, err := surface.ParseFitMode(cfg.Fit); err != nil || cfg.Fit == "" {
		cfg.Fit = "horizontal"
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}
