package logger

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	AdminIDKey   ContextKey = "admin_id"
	ProjectIDKey ContextKey = "project_id"
	FeedIDKey    ContextKey = "feed_id"
	JobIDKey     ContextKey = "job_id"
)

var contextKeys = []ContextKey{RequestIDKey, AdminIDKey, ProjectIDKey, FeedIDKey, JobIDKey}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func WithAdminID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, AdminIDKey, id)
}

func WithProjectID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ProjectIDKey, id)
}

func WithFeedID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, FeedIDKey, id)
}

func WithJobID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, JobIDKey, id)
}

// RequestIDFromContext returns the request id stored by the request id middleware.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextHandler copies the business keys above, plus trace_id and span_id of
// a recording span, from the context onto every record.
type ContextHandler struct {
	inner slog.Handler
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.inner.Handle(ctx, r)
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(slog.String("trace_id", sc.TraceID().String()), slog.String("span_id", sc.SpanID().String()))
	}
	for _, key := range contextKeys {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			r.AddAttrs(slog.String(string(key), v))
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}

// Timer logs the duration of an operation when Stop is called.
type Timer struct {
	ctx       context.Context
	operation string
	start     time.Time
}

func StartTimer(ctx context.Context, operation string) *Timer {
	return &Timer{ctx: ctx, operation: operation, start: time.Now()}
}

// Stop logs the elapsed time and returns it.
func (t *Timer) Stop(args ...any) time.Duration {
	elapsed := time.Since(t.start)
	fields := append([]any{"operation", t.operation, "duration_ms", elapsed.Milliseconds()}, args...)
	slog.DebugContext(t.ctx, "operation completed", fields...)
	return elapsed
}
