package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type format int

const (
	formatText format = iota
	formatJSON
)

type options struct {
	level  slog.Level
	format format
	output io.Writer
	color  *bool
	attrs  []slog.Attr
}

// Option configures a logger created by New.
type Option func(*options)

// New builds a *slog.Logger. Without options it writes text at info level
// to stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: formatText,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	var h slog.Handler
	switch o.format {
	case formatJSON:
		h = slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level})
	default:
		noColor := !isTerminal(o.output)
		if o.color != nil {
			noColor = !*o.color
		}
		h = tint.NewHandler(o.output, &tint.Options{
			Level:      o.level,
			NoColor:    noColor,
			TimeFormat: time.Kitchen,
		})
	}

	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(h)
}

// WithDevelopment configures a human-readable debug logger for the named
// service. Colour is enabled only when the output is a terminal.
func WithDevelopment(name string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.format = formatText
		o.attrs = append(o.attrs, slog.String("service", name))
	}
}

// WithProduction configures a JSON logger at info level for the named service.
func WithProduction(name string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.format = formatJSON
		o.attrs = append(o.attrs, slog.String("service", name))
	}
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.format = formatJSON
	}
}

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithColor forces colour on or off for text output.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = &enabled
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// ParseLevel converts a level name (debug, info, warn, error) into a
// slog.Level. Matching is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
