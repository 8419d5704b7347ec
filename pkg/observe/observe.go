// Package observe delivers structured events from the conversation core to
// whatever records them.
package observe

import (
	"context"
	"log/slog"
)

// Observer receives one named event with its attributes.
type Observer interface {
	Emit(ctx context.Context, event string, attrs ...slog.Attr)
}

type logger struct {
	log   *slog.Logger
	level slog.Level
}

// Logger emits every event as a log record on l.
func Logger(l *slog.Logger, level slog.Level) Observer {
	if l == nil {
		l = slog.Default()
	}
	return &logger{log: l, level: level}
}

func (o *logger) Emit(ctx context.Context, event string, attrs ...slog.Attr) {
	o.log.LogAttrs(ctx, o.level, event, attrs...)
}

type nop struct{}

// Nop discards all events.
func Nop() Observer {
	return nop{}
}

func (nop) Emit(context.Context, string, ...slog.Attr) {}

// Summary shortens s to at most n runes for event attributes.
func Summary(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
