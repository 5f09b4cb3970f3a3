// Package logger wires a compact colored slog handler for service
// logs. Plain text output, one line per record.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	reset   = "\033[0m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
	white   = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: cyan,
	slog.LevelInfo:  green,
	slog.LevelWarn:  yellow,
	slog.LevelError: red,
}

type handler struct {
	inner slog.Handler
	out   io.Writer
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	color, ok := levelColors[r.Level]
	if !ok {
		color = white
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%s%s%s ", magenta, r.Time.Format("15:04:05.000"), reset)
	fmt.Fprintf(&line, "%s%-6s%s ", color, strings.ToUpper(r.Level.String()), reset)
	fmt.Fprintf(&line, "%s%s%s", white, r.Message, reset)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&line, " %s%s%s=%v", yellow, a.Key, reset, a.Value)
		return true
	})

	fmt.Fprintln(h.out, line.String())
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{inner: h.inner.WithAttrs(attrs), out: h.out}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{inner: h.inner.WithGroup(name), out: h.out}
}

// Setup installs the colored handler as the slog default.
func Setup() {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	h := &handler{
		inner: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
		out:   os.Stdout,
	}
	slog.SetDefault(slog.New(h))
}
