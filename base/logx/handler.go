// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default,
// and only takes effect when the output supports it.
var UseColor = true

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored according to its severity.
type Handler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	mu     *sync.Mutex
	prefix string

	// attrs added through WithAttrs, already formatted
	attrs string
}

// NewHandler returns a new [Handler] writing to the given writer.
// If opts is nil, the level is [UserLevel] at the time of each call.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	h.out = termenv.NewOutput(w)
	return h
}

// SetDefaultLogger sets the default logger to be a [Handler]
// writing to [os.Stderr] at the [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}

func (h *Handler) level() slog.Level {
	if h.opts.Level != nil {
		return h.opts.Level.Level()
	}
	return UserLevel
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&sb, h.prefix, a)
	}
	nh := *h
	nh.attrs = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func (h *Handler) levelString(l slog.Level) string {
	s := l.String()
	if !UseColor {
		return s
	}
	st := h.out.String(s)
	switch {
	case l >= slog.LevelError:
		st = st.Foreground(h.out.Color("1")).Bold()
	case l >= slog.LevelWarn:
		st = st.Foreground(h.out.Color("3"))
	case l >= slog.LevelInfo:
		st = st.Foreground(h.out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", prefix, a.Key, a.Value.Resolve())
}
