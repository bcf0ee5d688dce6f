package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameshub/di"
	"gameshub/domain"
)

type enqueueGamesRequest struct {
	Types    []string `json:"types" validate:"omitempty,dive,gametype"`
	Language string   `json:"language" validate:"omitempty,max=16"`
}

type setGameStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published rejected"`
}

func registerGameRoutes(protected *echo.Group, container *di.ApplicationComponents) {
	protected.GET("/projects/:id/games", RestHandleListGames(container))
	protected.GET("/projects/:id/games/:gameID", RestHandleGetGame(container))
	protected.PATCH("/projects/:id/games/:gameID", RestHandleSetGameStatus(container))
	protected.DELETE("/projects/:id/games/:gameID", RestHandleDeleteGame(container))
	protected.POST("/projects/:id/articles/:articleID/games", RestHandleEnqueueGames(container))
	protected.GET("/projects/:id/game-jobs/stats", RestHandleGameJobStats(container))
}

func RestHandleListGames(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "list_games")
		}
		page, err := pageParams(c)
		if err != nil {
			return handleError(c, err, "list_games")
		}

		filter := domain.GameFilter{
			Type:   domain.GameType(c.QueryParam("type")),
			Status: domain.GameStatus(c.QueryParam("status")),
		}
		if c.QueryParam("article_id") != "" {
			articleID, err := uuidQuery(c, "article_id")
			if err != nil {
				return handleError(c, err, "list_games")
			}
			filter.ArticleID = &articleID
		}

		result, err := container.GameUsecase.ListGames(c.Request().Context(), projectID, filter, page)
		if err != nil {
			return handleError(c, err, "list_games")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleGetGame(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "get_game")
		}
		gameID, err := uuidParam(c, "gameID")
		if err != nil {
			return handleError(c, err, "get_game")
		}
		game, err := container.GameUsecase.GetGame(c.Request().Context(), projectID, gameID)
		if err != nil {
			return handleError(c, err, "get_game")
		}
		return c.JSON(http.StatusOK, game)
	}
}

func RestHandleSetGameStatus(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "set_game_status")
		}
		gameID, err := uuidParam(c, "gameID")
		if err != nil {
			return handleError(c, err, "set_game_status")
		}
		var req setGameStatusRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "set_game_status")
		}

		game, err := container.GameUsecase.SetGameStatus(c.Request().Context(), projectID, gameID, domain.GameStatus(req.Status))
		if err != nil {
			return handleError(c, err, "set_game_status")
		}
		return c.JSON(http.StatusOK, game)
	}
}

func RestHandleDeleteGame(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "delete_game")
		}
		gameID, err := uuidParam(c, "gameID")
		if err != nil {
			return handleError(c, err, "delete_game")
		}
		if err := container.GameUsecase.DeleteGame(c.Request().Context(), projectID, gameID); err != nil {
			return handleError(c, err, "delete_game")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func RestHandleEnqueueGames(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "enqueue_games")
		}
		articleID, err := uuidParam(c, "articleID")
		if err != nil {
			return handleError(c, err, "enqueue_games")
		}
		var req enqueueGamesRequest
		if c.Request().ContentLength != 0 {
			if err := bindAndValidate(c, &req); err != nil {
				return handleError(c, err, "enqueue_games")
			}
		}

		types := make([]domain.GameType, 0, len(req.Types))
		for _, t := range req.Types {
			types = append(types, domain.GameType(t))
		}
		queued, err := container.GameUsecase.EnqueueArticleGames(c.Request().Context(), projectID, articleID, types, req.Language)
		if err != nil {
			return handleError(c, err, "enqueue_games")
		}
		return c.JSON(http.StatusAccepted, map[string]int{"queued": queued})
	}
}

func RestHandleGameJobStats(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "game_job_stats")
		}
		stats, err := container.GameUsecase.JobStats(c.Request().Context(), projectID)
		if err != nil {
			return handleError(c, err, "game_job_stats")
		}
		return c.JSON(http.StatusOK, stats)
	}
}
