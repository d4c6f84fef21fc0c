// Package logging builds the structured slog loggers used by the wordladder
// command and handed to the library packages through their WithLogger
// options.
//
// Output goes to the supplied writer (stderr for the CLI) in text or JSON
// form. Every record carries a "service" attribute when one is configured.
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Service: "wordladder"}, os.Stderr)
//	logger.Info("dictionary loaded", "words", n)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug traces each BFS level and dictionary load details.
	LevelDebug Level = iota
	// LevelInfo reports searches and their outcomes.
	LevelInfo
	// LevelWarn reports recoverable problems such as a random-word fallback.
	LevelWarn
	// LevelError reports failed operations.
	LevelError
)

// String returns the human-readable name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to a Level. The empty string is LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures logger behavior. The zero value logs Info and above as
// text with no service attribute.
type Config struct {
	// Level sets the minimum log level.
	Level Level

	// Service is attached to every record as the "service" attribute.
	Service string

	// JSON selects the JSON handler instead of text.
	JSON bool
}

// New returns a logger writing to w. A nil w discards everything.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
