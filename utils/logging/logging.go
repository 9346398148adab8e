// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	EnvLogLevel  = "ANYTYPE_LOGGER_LOG_LEVEL"
	EnvLogFormat = "ANYTYPE_LOGGER_LOG_FORMAT"
)

var (
	rootOnce sync.Once
	root     *slog.Logger
)

// Logger returns a logger tagged with the given component name.
func Logger(component string) *slog.Logger {
	rootOnce.Do(func() {
		root = New(os.Stderr, os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
	})

	return root.With("component", component)
}

// New creates a root logger writing to w.
// Format is "json" or "text" (default).
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
