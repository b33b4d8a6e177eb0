package logging

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/leg100/tabpage/internal/pubsub"
	"github.com/leg100/tabpage/internal/resource"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, additionally emitting each log record as an event so that
// the TUI can render them.
type Logger struct {
	logger *slog.Logger
	writer *writer
	broker *pubsub.Broker[Message]
}

// NewLogger constructs a Logger. An unknown level falls back to the default
// level.
func NewLogger(opts Options) *Logger {
	logger := &Logger{}
	logger.broker = pubsub.NewBroker[Message](logger)
	logger.writer = &writer{broker: logger.broker}

	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, logger.writer)...),
		&slog.HandlerOptions{Level: level},
	)
	logger.logger = slog.New(handler)
	return logger
}

// Slog returns the underlying slog logger, e.g. for use with
// slog.SetDefault.
func (l *Logger) Slog() *slog.Logger { return l.logger }

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// List lists the log messages received thus far.
func (l *Logger) List() []Message {
	return l.writer.list()
}

// Subscribe to log messages.
func (l *Logger) Subscribe(ctx context.Context) <-chan resource.Event[Message] {
	return l.broker.Subscribe(ctx)
}
