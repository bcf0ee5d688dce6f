package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gameshub/domain"
	"gameshub/port/admin_port"
	"gameshub/utils/logger"
)

const adminClaimsKey = "adminClaims"

// AdminAuthMiddleware verifies the bearer token on admin routes.
type AdminAuthMiddleware struct {
	tokens admin_port.TokenPort
}

func NewAdminAuthMiddleware(tokens admin_port.TokenPort) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{tokens: tokens}
}

// RequireAdmin rejects requests without a valid admin token and stores the
// claims on the echo context.
func (m *AdminAuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := m.tokens.ParseAdminToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(adminClaimsKey, claims)
			ctx := logger.WithAdminID(c.Request().Context(), claims.AdminID.String())
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireManager allows only roles that may manage projects, credentials and
// configuration. Must run after RequireAdmin.
func RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := AdminClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !claims.Role.CanManage() {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func AdminClaimsFrom(c echo.Context) *domain.AdminClaims {
	claims, _ := c.Get(adminClaimsKey).(*domain.AdminClaims)
	return claims
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
