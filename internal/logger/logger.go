// Package logger provides structured logging for request diagnostics.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// New creates a structured logger writing to stderr at the given level.
// Uses colored text format by default, JSON if LOG_FORMAT=json is set.
// Colors can be disabled with NO_COLOR.
func New(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	} else {
		handler = &textHandler{
			w:        os.Stderr,
			level:    l,
			useColor: os.Getenv("NO_COLOR") == "",
		}
	}

	return slog.New(handler)
}

// textHandler is a compact slog.Handler for terminal diagnostics.
type textHandler struct {
	w        io.Writer
	level    slog.Level
	useColor bool
	attrs    []slog.Attr
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	levelStr := r.Level.String()
	if h.useColor {
		switch r.Level {
		case slog.LevelDebug:
			buf.WriteString(colorCyan)
		case slog.LevelInfo:
			buf.WriteString(colorBlue)
		case slog.LevelWarn:
			buf.WriteString(colorYellow)
		case slog.LevelError:
			buf.WriteString(colorRed + colorBold)
		}
	}
	buf.WriteString(levelStr)
	if h.useColor {
		buf.WriteString(colorReset)
	}
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		buf.WriteString(" ")
		if h.useColor {
			buf.WriteString(colorGray)
		}
		buf.WriteString(a.Key)
		buf.WriteString("=")
		buf.WriteString(a.Value.String())
		if h.useColor {
			buf.WriteString(colorReset)
		}
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})
	for _, a := range h.attrs {
		writeAttr(a)
	}

	buf.WriteString("\n")
	_, err := h.w.Write([]byte(buf.String()))
	return err
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)
	return &textHandler{w: h.w, level: h.level, useColor: h.useColor, attrs: newAttrs}
}

func (h *textHandler) WithGroup(string) slog.Handler {
	return h
}
