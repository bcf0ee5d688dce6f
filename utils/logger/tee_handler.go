package logger

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
)

// teeHandler writes each record to the local handler and to the OTel log bridge.
type teeHandler struct {
	local  slog.Handler
	export slog.Handler
}

// newExportTee pairs local with an otelslog handler bound to the global
// logger provider, which otel.InitProvider installs before the logger is built.
func newExportTee(local slog.Handler, scope string) slog.Handler {
	return &teeHandler{
		local:  local,
		export: otelslog.NewHandler(scope, otelslog.WithLoggerProvider(global.GetLoggerProvider())),
	}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.local.Enabled(ctx, level) || t.export.Enabled(ctx, level)
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	if t.local.Enabled(ctx, r.Level) {
		errs = append(errs, t.local.Handle(ctx, r.Clone()))
	}
	if t.export.Enabled(ctx, r.Level) {
		errs = append(errs, t.export.Handle(ctx, r))
	}
	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{local: t.local.WithAttrs(attrs), export: t.export.WithAttrs(attrs)}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{local: t.local.WithGroup(name), export: t.export.WithGroup(name)}
}
