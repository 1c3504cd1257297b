package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
)

// Span identifies one unit of work, such as translating a single file.
type Span string

type spanKey struct{}

var SpanKey spanKey

func spanOf(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}

type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

// NewSpan derives a context with a fresh span. parent defaults to the span
// already in ctx.
func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator, _ := spanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}

// WrapSpan attaches the span of ctx to err so a reported error can be
// matched with the logs.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := spanOf(ctx)
	if !ok || err == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}

// Handler adds the span of the record context as "logs.span".
type Handler struct {
	slog.Handler
}

var _ slog.Handler = new(Handler)

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := spanOf(ctx); ok {
		record.Add("logs.span", span)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}
