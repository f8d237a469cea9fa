// SPDX-License-Identifier: MIT

// Package observability provides structured logging and OpenTelemetry
// tracing for degreeplot runs.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("observability: unknown log level %q", s)
}

// NewLogger builds a logger writing to w in the given format. An unknown
// level or format is reported as an error alongside a usable info-level text
// logger, so callers can warn and continue.
func NewLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), err
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), err
	}
	if err == nil {
		err = fmt.Errorf("observability: unknown log format %q", format)
	}

	return slog.New(slog.NewTextHandler(w, opts)), err
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
