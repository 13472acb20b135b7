// SPDX-License-Identifier: Unlicense OR MIT

// Package logging provides the shared structured logger.
//
// Loggers are derived from a single slog text handler writing to stderr,
// so terminal front ends drawing on stdout are not disturbed. The level
// is read once from STACKBOX_LOG_LEVEL (debug, info, warn, error) and
// defaults to warn.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "STACKBOX_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component=name. An empty name
// returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: ParseLevel(os.Getenv(EnvLevel)),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level name to a slog.Level. Unknown names map
// to slog.LevelWarn.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
