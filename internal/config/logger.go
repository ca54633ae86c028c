// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var ErrUnknownLogLevel = errors.New("unexpected log level")

// levelNone disables logging.
const levelNone = slog.Level(100)

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "none":
		return levelNone, nil
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, ErrUnknownLogLevel
	}
}

// ConfigureLogger builds the logger for a level name.
//
// Valid levels are "none", "error", "warn", "info" and "debug". With an empty
// logFile records go to w as text; otherwise logFile is truncated and
// receives JSON records. The returned file, if any, is for the caller to
// close:
//
//	logger, f, err := config.ConfigureLogger("debug", "sndcat.log", os.Stderr, slog.HandlerOptions{})
//	if err != nil {
//		return err
//	}
//	if f != nil {
//		defer f.Close()
//	}
//	slog.SetDefault(logger)
func ConfigureLogger(level, logFile string, w io.Writer, opts slog.HandlerOptions) (*slog.Logger, *os.File, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", err, level)
	}
	if lvl == levelNone {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	return NewLogger(lvl, logFile, w, opts)
}

// NewLogger builds a logger at level, writing text to stdout when logFile is
// empty.
func NewLogger(level slog.Level, logFile string, stdout io.Writer, opts slog.HandlerOptions) (*slog.Logger, *os.File, error) {
	opts.Level = level

	if logFile == "" {
		return slog.New(slog.NewTextHandler(stdout, &opts)), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, &opts)), f, nil
}
