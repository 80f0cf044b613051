package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"cobros/internal/app/server/config"
)

type options struct {
	out   io.Writer
	level *slog.Level
}

type Option func(*options)

// WithWriter sends log output to w instead of stdout
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel overrides the level chosen by the environment. Unknown names are ignored.
func WithLevel(name string) Option {
	return func(o *options) {
		if lvl, ok := ParseLevel(name); ok {
			o.level = &lvl
		}
	}
}

// New builds the logger for env: pretty colored output for local, JSON otherwise.
func New(env string, opts ...Option) *slog.Logger {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(o.out, o.levelOr(slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.levelOr(slog.LevelDebug)}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.levelOr(slog.LevelInfo)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.levelOr(slog.LevelInfo)}),
		)
	}

	return log
}

func (o options) levelOr(def slog.Level) slog.Level {
	if o.level != nil {
		return *o.level
	}
	return def
}

func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// Err wraps an error as a log attribute
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(out))
}
