// Package log configures the process-wide logrus logger. Output goes to a
// file because the terminal belongs to the player.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/config"
)

const defaultFile = "scrubber/scrubber.log"

// Setup points the standard logger at the configured file, formatter and
// level. The returned closer releases the file.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	path, err := resolvePath(cfg.File)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return f, nil
}

// For returns a logger tagged with the component name.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

func resolvePath(file string) (string, error) {
	if file == "" {
		path, err := xdg.StateFile(defaultFile)
		if err != nil {
			return "", fmt.Errorf("resolve log path: %w", err)
		}
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return file, nil
}
