// Package logzer bridges log/slog to zerolog: library packages log through
// *slog.Logger and the CLI decides where and how the records are written.
package logzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Handler is a slog.Handler writing zerolog events.
type Handler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	prefix string // dotted group path applied to record attributes
}

// NewHandler returns a Handler writing to logger. Records below the level of
// logger are dropped.
func NewHandler(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

// New builds a logger writing to w. level is a zerolog level name such as
// "debug" or "warn"; format is "json" or "console".
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("logzer: %w", err)
	}
	if l == zerolog.NoLevel {
		l = zerolog.InfoLevel
	}

	switch format {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	default:
		return nil, fmt.Errorf("logzer: unknown format %q", format)
	}

	zl := zerolog.New(w).Level(l).With().Timestamp().Logger()
	return slog.New(NewHandler(zl)), nil
}

// Level maps a slog level onto zerolog. Levels between the named slog levels
// round down.
func Level(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	l := Level(level)
	return l >= h.logger.GetLevel() && l >= zerolog.GlobalLevel()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	e := h.logger.WithLevel(Level(r.Level))
	if e == nil {
		return nil
	}
	for _, a := range h.attrs {
		addAttr(e, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(e, h.prefix, a)
		return true
	})

	e.Msg(r.Message)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nested := *h
	nested.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nested.attrs = append(nested.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		nested.attrs = append(nested.attrs, a)
	}
	return &nested
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nested := *h
	nested.prefix = h.prefix + name + "."
	return &nested
}

func addAttr(e *zerolog.Event, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := prefix + a.Key

	switch a.Value.Kind() {
	case slog.KindGroup:
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = key + "."
		}
		for _, ga := range a.Value.Group() {
			addAttr(e, groupPrefix, ga)
		}
	case slog.KindBool:
		e.Bool(key, a.Value.Bool())
	case slog.KindDuration:
		e.Dur(key, a.Value.Duration())
	case slog.KindFloat64:
		e.Float64(key, a.Value.Float64())
	case slog.KindInt64:
		e.Int64(key, a.Value.Int64())
	case slog.KindUint64:
		e.Uint64(key, a.Value.Uint64())
	case slog.KindString:
		e.Str(key, a.Value.String())
	case slog.KindTime:
		e.Time(key, a.Value.Time())
	default:
		switch v := a.Value.Any().(type) {
		case error:
			e.AnErr(key, v)
		case fmt.Stringer:
			e.Stringer(key, v)
		default:
			e.Interface(key, v)
		}
	}
}
