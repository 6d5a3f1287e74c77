package telemetry

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/freekieb7/homepage/config"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "github.com/freekieb7/homepage"

// NewLogger returns a logger writing to w in the configured format and, through
// the otelslog bridge, to the global OpenTelemetry logger provider. Both sides
// share the configured minimum level.
func NewLogger(cfg config.LogConfig, w io.Writer, opts ...otelslog.Option) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var local slog.Handler
	if cfg.Format == "json" {
		local = slog.NewJSONHandler(w, handlerOpts)
	} else {
		local = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(newTeeHandler(level, local, otelslog.NewHandler(instrumentationName, opts...)))
}

// teeHandler hands each record to every wrapped handler that accepts it.
type teeHandler struct {
	level    slog.Leveler
	handlers []slog.Handler
}

func newTeeHandler(level slog.Leveler, handlers ...slog.Handler) *teeHandler {
	return &teeHandler{level: level, handlers: handlers}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.level.Level() {
		return false
	}
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		err = errors.Join(err, handler.Handle(ctx, record.Clone()))
	}
	return err
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &teeHandler{level: h.level, handlers: handlers}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &teeHandler{level: h.level, handlers: handlers}
}
