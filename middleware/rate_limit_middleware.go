package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameshub/utils/rate_limiter"
)

// DevRateLimitMiddleware throttles dev API calls per project, falling back to
// the client IP before authentication.
func DevRateLimitMiddleware(limiter *rate_limiter.KeyedLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if project := ProjectFrom(c); project != nil {
				key = "project:" + project.ID.String()
			}
			if !limiter.Allow(key) {
				c.Response().Header().Set("Retry-After", "1")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
