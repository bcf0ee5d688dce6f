package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"gameshub/utils/metrics"
)

// Health check requests are neither logged nor counted.
func isHealthCheck(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/healthz" || p == "/readyz" || strings.HasPrefix(p, "/metrics")
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// routeOf returns the matched route template, used as a low-cardinality label.
func routeOf(c echo.Context) string {
	if r := c.Path(); r != "" {
		return r
	}
	return "unmatched"
}

// LoggingMiddleware writes one access log line per request. Handler errors
// are rendered here so the logged status is the one sent to the client.
func LoggingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isHealthCheck(c) {
				return next(c)
			}

			started := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			attrs := []slog.Attr{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("route", routeOf(c)),
				slog.Int("status", res.Status),
				slog.Int64("duration_ms", time.Since(started).Milliseconds()),
				slog.Int64("bytes_out", res.Size),
				slog.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			slog.LogAttrs(c.Request().Context(), levelFor(res.Status), "request completed", attrs...)
			return nil
		}
	}
}

// MetricsMiddleware counts requests and observes latency per route template.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isHealthCheck(c) {
				return next(c)
			}
			started := time.Now()
			err := next(c)
			metrics.RecordHTTPRequest(c.Request().Method, routeOf(c), strconv.Itoa(statusOf(c, err)), time.Since(started).Seconds())
			return err
		}
	}
}

// statusOf predicts the status of a response whose error echo has not rendered yet.
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	if sc, ok := err.(interface{ HTTPStatusCode() int }); ok {
		return sc.HTTPStatusCode()
	}
	return http.StatusInternalServerError
}

