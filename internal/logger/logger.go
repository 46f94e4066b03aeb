// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the sync client and the delta server.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn, Error and the rest of
// the zerolog API are available directly on *Logger. Components receive a
// *Logger at construction and derive child loggers tagged with their own
// "component" field; request-scoped loggers are taken from the context.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the client log file inside its data directory.
const LogFileName = "fin-sync.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Option tweaks a logger built by [NewLogger] or [NewClientLogger].
type Option func(*options)

type options struct {
	level  zerolog.Level
	output io.Writer
}

// WithLevel sets the minimum level emitted. Unknown names fall back to debug.
func WithLevel(level string) Option {
	return func(o *options) {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.DebugLevel
		}
		o.level = lvl
	}
}

// WithOutput redirects log output to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// NewLogger builds a JSON logger writing to stdout. Every entry carries a
// "role" field, a timestamp and a "func" caller field holding the
// fully-qualified function name.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.DebugLevel, output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	return build(role, o)
}

// NewClientLogger builds a logger for the sync client that appends to
// LogFileName inside dir, so that log lines never interleave with CLI
// output. If the file cannot be opened it falls back to stderr.
func NewClientLogger(role, dir string, opts ...Option) *Logger {
	o := options{level: zerolog.DebugLevel, output: os.Stderr}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				o.output = f
			}
		}
	}

	for _, opt := range opts {
		opt(&o)
	}

	return build(role, o)
}

func build(role string, o options) *Logger {
	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(o.output).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with extra fields
// without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Component returns a child logger tagged with component=name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext attaches l to ctx so that [FromContext] returns it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context, or
// zerolog's default logger when none is attached.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when none is attached. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
