package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"gameshub/di"
	"gameshub/middleware"
	apperrors "gameshub/utils/errors"
)

func registerConfigRoutes(protected *echo.Group, container *di.ApplicationComponents) {
	manage := middleware.RequireManager()

	protected.GET("/projects/:id/config", RestHandleGetConfig(container))
	protected.PUT("/projects/:id/config", RestHandlePutConfig(container), manage)
	protected.POST("/projects/:id/cache/purge", RestHandlePurgeCache(container), manage)
}

func RestHandleGetConfig(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "get_config")
		}
		cfg, err := container.ProjectConfigUsecase.GetConfig(c.Request().Context(), projectID)
		if err != nil {
			return handleError(c, err, "get_config")
		}
		return c.JSON(http.StatusOK, cfg)
	}
}

// RestHandlePutConfig replaces the document. The body must be a JSON object.
func RestHandlePutConfig(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "put_config")
		}
		// Decoded directly so path params are not merged into the document.
		var document map[string]any
		if err := json.NewDecoder(c.Request().Body).Decode(&document); err != nil {
			return handleError(c, fmt.Errorf("%w: body must be a JSON object", apperrors.ErrInvalidInput), "put_config")
		}

		cfg, err := container.ProjectConfigUsecase.PutConfig(c.Request().Context(), projectID, document)
		if err != nil {
			return handleError(c, err, "put_config")
		}
		return c.JSON(http.StatusOK, cfg)
	}
}

func RestHandlePurgeCache(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "purge_cache")
		}
		result, err := container.ProjectConfigUsecase.PurgeCache(c.Request().Context(), projectID)
		if err != nil {
			return handleError(c, err, "purge_cache")
		}
		return c.JSON(http.StatusOK, map[string]any{
			"keys_removed":    result.KeysRemoved,
			"invalidation_id": result.InvalidationID,
		})
	}
}
