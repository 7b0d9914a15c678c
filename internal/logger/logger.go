// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across the customer service.
//
// Request-scoped loggers are attached to a context.Context by the HTTP
// middleware and retrieved with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

type options struct {
	level   zerolog.Level
	out     io.Writer
	console bool
}

// Option customises a Logger built by NewLogger.
type Option func(*options)

// WithLevel sets the minimum level by name ("debug", "info", ...).
// Unknown names leave the default (info) in place.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
			o.level = lvl
		}
	}
}

// WithOutput redirects log output, os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithConsole switches to zerolog's human-readable console writer.
func WithConsole() Option {
	return func(o *options) {
		o.console = true
	}
}

// NewLogger builds a JSON logger labelled with role. Every entry carries a
// timestamp and a "func" field with the caller's function name.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.InfoLevel, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	out := o.out
	if o.console {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).
		Level(o.level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched independently.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog's default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
