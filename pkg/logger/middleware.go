package logger

import (
	"context"
	"log/slog"
)

type (
	handleFunc func(context.Context, slog.Record) error

	// middleware decorates the handling of a single record. The first middleware sees the record first.
	middleware func(next handleFunc) handleFunc
)

// middlewareHandler is a slog.Handler whose records pass through a fixed middleware stack
// before reaching base. The stack is composed once per derived handler, not per record.
type middlewareHandler struct {
	base   slog.Handler
	stack  []middleware
	handle handleFunc
}

func newMiddlewareHandler(base slog.Handler, stack ...middleware) *middlewareHandler {
	return &middlewareHandler{
		base:   base,
		stack:  stack,
		handle: compose(base.Handle, stack),
	}
}

func compose(last handleFunc, stack []middleware) handleFunc {
	handle := last
	for i := len(stack) - 1; i >= 0; i-- {
		handle = stack[i](handle)
	}
	return handle
}

func (m *middlewareHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return m.base.Enabled(ctx, level)
}

func (m *middlewareHandler) Handle(ctx context.Context, rec slog.Record) error {
	return m.handle(ctx, rec)
}

func (m *middlewareHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return m
	}
	return newMiddlewareHandler(m.base.WithAttrs(attrs), m.stack...)
}

func (m *middlewareHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}
	return newMiddlewareHandler(m.base.WithGroup(name), m.stack...)
}
