package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gameshub/di"
	"gameshub/domain"
	"gameshub/middleware"
	apperrors "gameshub/utils/errors"
)

const (
	oauthStateCookie = "gameshub_oauth_state"
	oauthCookiePath  = "/admin/v1/auth/oauth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,role"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
}

func registerAuthRoutes(admin *echo.Group, protected *echo.Group, container *di.ApplicationComponents) {
	admin.POST("/auth/login", RestHandleLogin(container))
	admin.GET("/auth/oauth/:provider/start", RestHandleOAuthStart(container))
	admin.GET("/auth/oauth/:provider/callback", RestHandleOAuthCallback(container))

	protected.GET("/auth/me", RestHandleMe(container))
	protected.POST("/admins", RestHandleCreateAdmin(container), middleware.RequireManager())
}

func RestHandleLogin(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "login")
		}

		token, err := container.AuthUsecase.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handleError(c, err, "login")
		}
		return c.JSON(http.StatusOK, token)
	}
}

func RestHandleOAuthStart(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		redirect, state, err := container.AuthUsecase.OAuthStart(c.Request().Context(), c.Param("provider"))
		if err != nil {
			return handleError(c, err, "oauth_start")
		}

		c.SetCookie(&http.Cookie{
			Name:     oauthStateCookie,
			Value:    state,
			Path:     oauthCookiePath,
			MaxAge:   int(container.Config.OAuth.StateTTL.Seconds()),
			HttpOnly: true,
			Secure:   strings.HasPrefix(container.Config.OAuth.RedirectBaseURL, "https://"),
			SameSite: http.SameSiteLaxMode,
		})
		return c.Redirect(http.StatusFound, redirect)
	}
}

func RestHandleOAuthCallback(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if providerErr := c.QueryParam("error"); providerErr != "" {
			return handleError(c, apperrors.ErrUnauthorized, "oauth_callback")
		}

		var cookieState string
		if cookie, err := c.Cookie(oauthStateCookie); err == nil {
			cookieState = cookie.Value
		}
		// The state is single use.
		c.SetCookie(&http.Cookie{Name: oauthStateCookie, Value: "", Path: oauthCookiePath, MaxAge: -1, HttpOnly: true})

		token, err := container.AuthUsecase.OAuthCallback(
			c.Request().Context(),
			c.Param("provider"),
			c.QueryParam("code"),
			c.QueryParam("state"),
			cookieState,
		)
		if err != nil {
			return handleError(c, err, "oauth_callback")
		}
		return c.JSON(http.StatusOK, token)
	}
}

func RestHandleMe(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.AdminClaimsFrom(c)
		admin, err := container.AuthUsecase.Me(c.Request().Context(), claims.AdminID)
		if err != nil {
			return handleError(c, err, "me")
		}
		return c.JSON(http.StatusOK, admin)
	}
}

func RestHandleCreateAdmin(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createAdminRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "create_admin")
		}

		// Only owners may mint other owners.
		role := domain.AdminRole(req.Role)
		if role == domain.RoleOwner && middleware.AdminClaimsFrom(c).Role != domain.RoleOwner {
			return handleError(c, apperrors.ErrForbidden, "create_admin")
		}

		admin, err := container.AuthUsecase.CreateAdmin(c.Request().Context(), req.Email, req.Name, role, req.Password)
		if err != nil {
			return handleError(c, err, "create_admin")
		}
		return c.JSON(http.StatusCreated, admin)
	}
}
