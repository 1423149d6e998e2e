// Package conlog implements a slog.Handler that writes CMake-style console
// output: a level-colored line with a `-- ` prefix (`** ` for errors), an
// HH:MM:SS timestamp, the message, and any attributes as key=value pairs.
package conlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan, color.Bold),
	slog.LevelInfo:  color.New(color.FgGreen, color.Bold),
	slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
	slog.LevelError: color.New(color.FgRed, color.Bold),
}

// Handler renders log records for humans watching a terminal. Safe for
// concurrent use.
type Handler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a console handler writing to out, dropping records
// below level.
func NewHandler(out io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	prefix := "-- "
	if r.Level >= slog.LevelError {
		prefix = "** "
	}

	var b strings.Builder
	b.WriteString(prefix)
	if !r.Time.IsZero() {
		b.WriteString("[" + r.Time.Format("15:04:05") + "] ")
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		appendAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.qualify(attr))
		return true
	})

	line := b.String()
	if c, ok := levelColors[normalize(r.Level)]; ok {
		line = c.Sprint(line)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

// WithAttrs implements slog.Handler. Attribute keys are qualified with the
// group path in effect at the time they are added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr{}, h.attrs...)
	for _, attr := range attrs {
		h2.attrs = append(h2.attrs, h.qualify(attr))
	}
	return &h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string{}, h.groups...), name)
	return &h2
}

func (h *Handler) qualify(attr slog.Attr) slog.Attr {
	if len(h.groups) > 0 && attr.Key != "" {
		attr.Key = strings.Join(h.groups, ".") + "." + attr.Key
	}
	return attr
}

func appendAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", attr.Key, attr.Value.Resolve().Any())
}

// normalize maps custom levels onto the nearest standard level so they still
// get a color.
func normalize(level slog.Level) slog.Level {
	switch {
	case level < slog.LevelInfo:
		return slog.LevelDebug
	case level < slog.LevelWarn:
		return slog.LevelInfo
	case level < slog.LevelError:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
