// Package log provides structured logging (slog) configured for the SDK.
package log

import (
	"io"
	"log/slog"
	"math"
	"os"
)

type config struct {
	level     slog.Level
	addSource bool
	writer    io.Writer
}

// Option configures the logger built by New.
type Option func(*config)

func defaultConfig() config {
	return config{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) Option {
	return func(c *config) {
		c.addSource = enabled
	}
}

// WithWriter redirects log output; the default is stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// New builds a text-format slog.Logger with the given options, tagged with
// the SDK component attribute.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	handler := slog.NewTextHandler(cfg.writer, &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	})
	return slog.New(handler).With("component", "formbind")
}

// Discard returns a logger that drops every record. Model construction uses
// it as the default so the SDK never writes output unasked.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(math.MaxInt),
	}))
}
