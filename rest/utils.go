package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

// handleError renders err as an AppContextError response enriched with request context.
func handleError(c echo.Context, err error, operation string) error {
	classified := apperrors.Classify(err, "rest", "RESTHandler", operation)
	enriched := apperrors.EnrichWithContext(classified, "rest", "RESTHandler", operation, map[string]interface{}{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get("X-Request-ID"),
	})

	ctx := c.Request().Context()
	attrs := []any{
		"error", enriched.Error(),
		"error_code", enriched.Code,
		"operation", operation,
		"is_retryable", enriched.IsRetryable(),
	}
	if status := enriched.HTTPStatusCode(); status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "REST handler error", attrs...)
	} else {
		slog.WarnContext(ctx, "REST handler error", attrs...)
	}

	return c.JSON(enriched.HTTPStatusCode(), enriched.ToHTTPResponse())
}

// bindAndValidate decodes the body into dst and runs the registered validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", apperrors.ErrInvalidInput)
	}
	return c.Validate(dst)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", apperrors.ErrInvalidInput, name)
	}
	return id, nil
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}

func uuidQuery(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.QueryParam(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", apperrors.ErrInvalidInput, name)
	}
	return id, nil
}

// pageParams reads page and per_page; out-of-range values are clamped.
func pageParams(c echo.Context) (domain.Page, error) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return domain.Page{}, err
	}
	perPage, err := intQuery(c, "per_page", domain.DefaultPerPage)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.NewPage(page, perPage), nil
}

func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", apperrors.ErrInvalidInput, name)
	}
	return n, nil
}

// errorHandler renders errors that escape handlers, mostly echo.HTTPError
// from middleware, in the same body shape as handleError.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok {
			msg = s
		}
		_ = c.JSON(he.Code, map[string]string{"error": msg})
		return
	}
	_ = handleError(c, err, "unhandled")
}
