package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/sifa-tools/gbu/internal/terminal"
)

// multiHandler fans records out to every handler enabled for the level.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}

// Setup installs the default slog logger: an interactive handler for
// humans plus a conditional text handler for pipes and CI. An invalid
// level string falls back to info.
func Setup(level string, caps terminal.Capabilities) error {
	var slogLevel slog.Level
	invalidLevel := false
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo
		invalidLevel = true
	}

	interactive, err := NewInteractiveHandler(InteractiveHandlerOptions{
		Level:        slogLevel,
		Writer:       os.Stderr,
		Capabilities: caps,
	})
	if err != nil {
		return err
	}

	text, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		Capabilities:       caps,
		TextHandlerOptions: &slog.HandlerOptions{Level: slogLevel},
		Writer:             os.Stderr,
	})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(newMultiHandler(interactive, text)))

	if invalidLevel {
		slog.Warn("invalid log level, defaulting to info", "provided", level)
	}
	return nil
}
