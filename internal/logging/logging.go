// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package logging builds the structured loggers used by the example programs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w.
// format selects the handler ("json" or text); level is one of
// debug, info, warn or error and defaults to info.
func New(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// FromEnv returns a logger configured from LOG_FORMAT and LOG_LEVEL,
// falling back to format and level when a variable is unset.
// Unrecognised values are rejected rather than silently defaulted.
func FromEnv(w io.Writer, format, level string) (*slog.Logger, error) {
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		if !ValidFormat(env) {
			return nil, fmt.Errorf("unknown LOG_FORMAT: %q", env)
		}
		format = env
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if !ValidLevel(env) {
			return nil, fmt.Errorf("unknown LOG_LEVEL: %q", env)
		}
		level = env
	}
	return New(w, format, level), nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
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

// ValidLevel reports whether level is a recognised level name
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ValidFormat reports whether format is a recognised output format
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatText, FormatJSON:
		return true
	}
	return false
}
