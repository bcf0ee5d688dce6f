package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gameshub/di"
	"gameshub/domain"
	"gameshub/usecase/feed_usecase"
	"gameshub/utils/logger"
)

type gameSettingsDTO struct {
	Enabled           bool     `json:"enabled"`
	GameTypes         []string `json:"game_types" validate:"omitempty,dive,gametype"`
	MaxArticlesPerRun int      `json:"max_articles_per_run" validate:"min=0,max=100"`
	Language          string   `json:"language" validate:"omitempty,max=16"`
}

func (d *gameSettingsDTO) toDomain() domain.GameSettings {
	types := make([]domain.GameType, 0, len(d.GameTypes))
	for _, t := range d.GameTypes {
		types = append(types, domain.GameType(t))
	}
	return domain.GameSettings{
		Enabled:           d.Enabled,
		GameTypes:         types,
		MaxArticlesPerRun: d.MaxArticlesPerRun,
		Language:          d.Language,
	}
}

type createFeedRequest struct {
	URL             string           `json:"url" validate:"required,url,max=2048"`
	Title           string           `json:"title" validate:"max=300"`
	IntervalMinutes *int             `json:"interval_minutes" validate:"omitempty,min=1"`
	Enabled         *bool            `json:"enabled"`
	GameSettings    *gameSettingsDTO `json:"game_settings"`
}

type updateFeedRequest struct {
	URL             *string          `json:"url" validate:"omitempty,url,max=2048"`
	Title           *string          `json:"title" validate:"omitempty,max=300"`
	IntervalMinutes *int             `json:"interval_minutes" validate:"omitempty,min=1"`
	Enabled         *bool            `json:"enabled"`
	GameSettings    *gameSettingsDTO `json:"game_settings"`
}

func registerFeedRoutes(protected *echo.Group, container *di.ApplicationComponents) {
	feeds := protected.Group("/projects/:id/feeds")
	feeds.GET("", RestHandleListFeeds(container))
	feeds.POST("", RestHandleCreateFeed(container))
	feeds.GET("/:feedID", RestHandleGetFeed(container))
	feeds.PATCH("/:feedID", RestHandleUpdateFeed(container))
	feeds.DELETE("/:feedID", RestHandleDeleteFeed(container))
	feeds.POST("/:feedID/start", RestHandleStartFeed(container))
	feeds.POST("/:feedID/stop", RestHandleStopFeed(container))
	feeds.POST("/:feedID/refresh", RestHandleRefreshFeed(container))
	feeds.POST("/:feedID/import", RestHandleImportFeed(container))
	feeds.GET("/:feedID/articles", RestHandleListFeedArticles(container))

	protected.GET("/scheduler", RestHandleListScheduled(container))
}

// feedParams parses the project and feed path parameters.
func feedParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	projectID, err := uuidParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	feedID, err := uuidParam(c, "feedID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	c.SetRequest(c.Request().WithContext(logger.WithFeedID(c.Request().Context(), feedID.String())))
	return projectID, feedID, nil
}

func RestHandleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "list_feeds")
		}
		page, err := pageParams(c)
		if err != nil {
			return handleError(c, err, "list_feeds")
		}
		result, err := container.FeedUsecase.ListFeeds(c.Request().Context(), projectID, page)
		if err != nil {
			return handleError(c, err, "list_feeds")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleCreateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "create_feed")
		}
		var req createFeedRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "create_feed")
		}

		in := feed_usecase.CreateFeedInput{
			URL:             req.URL,
			Title:           req.Title,
			IntervalMinutes: req.IntervalMinutes,
			Enabled:         req.Enabled == nil || *req.Enabled,
		}
		if req.GameSettings != nil {
			in.GameSettings = req.GameSettings.toDomain()
		}

		feed, err := container.FeedUsecase.CreateFeed(c.Request().Context(), projectID, in)
		if err != nil {
			return handleError(c, err, "create_feed")
		}
		return c.JSON(http.StatusCreated, feed)
	}
}

func RestHandleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "get_feed")
		}
		feed, err := container.FeedUsecase.GetFeed(c.Request().Context(), projectID, feedID)
		if err != nil {
			return handleError(c, err, "get_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func RestHandleUpdateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "update_feed")
		}
		var req updateFeedRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "update_feed")
		}

		upd := domain.FeedUpdate{
			Title:           req.Title,
			URL:             req.URL,
			IntervalMinutes: req.IntervalMinutes,
			Enabled:         req.Enabled,
		}
		if req.GameSettings != nil {
			settings := req.GameSettings.toDomain()
			upd.GameSettings = &settings
		}

		feed, err := container.FeedUsecase.UpdateFeed(c.Request().Context(), projectID, feedID, upd)
		if err != nil {
			return handleError(c, err, "update_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func RestHandleDeleteFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "delete_feed")
		}
		if err := container.FeedUsecase.DeleteFeed(c.Request().Context(), projectID, feedID); err != nil {
			return handleError(c, err, "delete_feed")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func RestHandleStartFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "start_feed")
		}
		feed, err := container.FeedUsecase.StartFeed(c.Request().Context(), projectID, feedID)
		if err != nil {
			return handleError(c, err, "start_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func RestHandleStopFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "stop_feed")
		}
		feed, err := container.FeedUsecase.StopFeed(c.Request().Context(), projectID, feedID)
		if err != nil {
			return handleError(c, err, "stop_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func RestHandleRefreshFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}
		feed, err := container.FeedUsecase.RefreshFeed(c.Request().Context(), projectID, feedID)
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

// RestHandleImportFeed runs one import now, even for a disabled feed.
func RestHandleImportFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "import_feed")
		}
		ctx := c.Request().Context()
		if _, err := container.FeedUsecase.GetFeed(ctx, projectID, feedID); err != nil {
			return handleError(c, err, "import_feed")
		}

		result, err := container.FeedImportUsecase.ImportFeed(ctx, feedID, domain.TriggerManual)
		if err != nil && result == nil {
			return handleError(c, err, "import_feed")
		}
		// A failed fetch still produced a recorded run.
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleListFeedArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, feedID, err := feedParams(c)
		if err != nil {
			return handleError(c, err, "list_feed_articles")
		}
		page, err := pageParams(c)
		if err != nil {
			return handleError(c, err, "list_feed_articles")
		}
		result, err := container.FeedUsecase.ListFeedArticles(c.Request().Context(), projectID, feedID, page)
		if err != nil {
			return handleError(c, err, "list_feed_articles")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleListScheduled(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"entries": container.FeedUsecase.Scheduled()})
	}
}
