// Package logging wires log/slog for the CLI: a compact colored handler
// when a human is watching, a standard text handler otherwise. Handler
// selection is driven by terminal capability probing.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/sifa-tools/gbu/internal/color"
	"github.com/sifa-tools/gbu/internal/terminal"
)

// Static errors for InteractiveHandler validation
var (
	ErrInteractiveHandlerWriterRequired       = errors.New("InteractiveHandler: Writer is required")
	ErrInteractiveHandlerCapabilitiesRequired = errors.New("InteractiveHandler: Capabilities is required")
)

// InteractiveHandler is a slog handler producing compact colored lines for
// interactive terminals. It only operates when the environment is
// interactive; the ConditionalTextHandler covers the opposite case.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	writer       io.Writer
	level        slog.Level
	attrs        []slog.Attr
	mu           *sync.Mutex
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities
}

// NewInteractiveHandler creates a new InteractiveHandler with the given
// options. Returns an error if any required options are missing.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrInteractiveHandlerCapabilitiesRequired
	}
	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		writer:       opts.Writer,
		level:        opts.Level,
		mu:           &sync.Mutex{},
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.capabilities.IsInteractive() && level >= h.level
}

// Handle formats and writes a log record as a single colored line.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.capabilities.IsInteractive() {
		return nil
	}

	useColor := h.capabilities.SupportsColor()
	var b strings.Builder
	b.WriteString(levelTag(r.Level, useColor))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		pair := fmt.Sprintf("%s=%v", a.Key, a.Value)
		if useColor {
			pair = color.Gray(pair)
		}
		b.WriteByte(' ')
		b.WriteString(pair)
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write([]byte(b.String()))
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns the handler unchanged; grouped attributes are not
// meaningful in the compact interactive format.
func (h *InteractiveHandler) WithGroup(string) slog.Handler {
	return h
}

func levelTag(level slog.Level, useColor bool) string {
	switch {
	case level >= slog.LevelError:
		return colorize(color.Red, "ERROR", useColor)
	case level >= slog.LevelWarn:
		return colorize(color.Yellow, "WARN", useColor)
	case level >= slog.LevelInfo:
		return colorize(color.Green, "INFO", useColor)
	default:
		return colorize(color.Gray, "DEBUG", useColor)
	}
}

func colorize(c color.Color, text string, useColor bool) string {
	if !useColor {
		return text
	}
	return c(text)
}
