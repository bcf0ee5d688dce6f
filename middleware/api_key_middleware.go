package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/logger"
)

const (
	APIKeyHeader = "X-API-Key"
	projectKey   = "devProject"
)

// APIKeyAuthenticator resolves a dev API key to its project.
type APIKeyAuthenticator interface {
	AuthenticateAPIKey(ctx context.Context, key string) (*domain.Project, error)
}

func APIKeyMiddleware(auth APIKeyAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := strings.TrimSpace(c.Request().Header.Get(APIKeyHeader))
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing API key")
			}

			ctx := c.Request().Context()
			project, err := auth.AuthenticateAPIKey(ctx, key)
			if err != nil {
				if errors.Is(err, apperrors.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid API key")
				}
				slog.ErrorContext(ctx, "API key lookup failed", "error", err)
				return echo.NewHTTPError(http.StatusServiceUnavailable, "authentication unavailable")
			}

			c.Set(projectKey, project)
			c.SetRequest(c.Request().WithContext(logger.WithProjectID(ctx, project.ID.String())))
			return next(c)
		}
	}
}

// ProjectFrom returns the project authenticated by APIKeyMiddleware.
func ProjectFrom(c echo.Context) *domain.Project {
	project, _ := c.Get(projectKey).(*domain.Project)
	return project
}
