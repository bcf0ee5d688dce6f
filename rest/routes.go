package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"gameshub/config"
	"gameshub/di"
	middleware_custom "gameshub/middleware"
	"gameshub/utils/validator"
)

const readinessTimeout = 3 * time.Second

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorHandler

	// 1. Request ID first so every log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery early
	e.Use(middleware.Recover())

	// 3. Tracing
	if cfg.OTel.Enabled {
		e.Use(otelecho.Middleware(cfg.OTel.ServiceName))
	}

	// 4. Access logs and request metrics
	e.Use(middleware_custom.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		e.Use(middleware_custom.MetricsMiddleware())
	}

	// 5. CORS for browser game clients
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware_custom.APIKeyHeader, "If-None-Match"},
		ExposeHeaders: []string{"ETag", echo.HeaderXRequestID, "Retry-After"},
		MaxAge:        86400,
	}))

	// 6. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 7. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.RequestTimeout,
		Skipper: func(c echo.Context) bool {
			// Manual imports may run up to the fetch timeout.
			return c.Request().Method == http.MethodPost && c.Path() == "/admin/v1/projects/:id/feeds/:feedID/import"
		},
	}))

	registerHealthRoutes(e, container, cfg)

	admin := e.Group("/admin/v1")
	protected := admin.Group("", container.AdminAuth.RequireAdmin())
	registerAuthRoutes(admin, protected, container)
	registerProjectRoutes(protected, container)
	registerFeedRoutes(protected, container)
	registerGameRoutes(protected, container)
	registerConfigRoutes(protected, container)

	dev := e.Group("/dev/v1",
		middleware_custom.APIKeyMiddleware(container.ProjectUsecase),
		middleware_custom.DevRateLimitMiddleware(container.DevLimiter),
	)
	registerDevRoutes(dev, container)
}

func registerHealthRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", RestHandleReady(container))
	if cfg.Metrics.Enabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}
}

// RestHandleReady reports 503 while the database or the default stack is unreachable.
func RestHandleReady(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		status := http.StatusOK
		for name, err := range container.Ready(ctx) {
			if err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		state := "ready"
		if status != http.StatusOK {
			state = "not_ready"
		}
		return c.JSON(status, map[string]any{"status": state, "checks": checks})
	}
}
