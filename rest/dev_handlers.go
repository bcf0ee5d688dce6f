package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gameshub/di"
	"gameshub/domain"
	"gameshub/middleware"
	"gameshub/usecase/leaderboard_usecase"
)

type submitScoreRequest struct {
	PlayerID   string  `json:"player_id" validate:"required,max=128"`
	PlayerName string  `json:"player_name"`
	Score      int64   `json:"score" validate:"min=0"`
	GameID     *string `json:"game_id" validate:"omitempty,uuid"`
}

func registerDevRoutes(dev *echo.Group, container *di.ApplicationComponents) {
	dev.GET("/articles", RestHandleDevArticles(container))
	dev.GET("/articles/:articleID/games", RestHandleDevArticleGames(container))
	dev.GET("/articles/:articleID/games/:type", RestHandleDevArticleGame(container))
	dev.GET("/search", RestHandleDevSearch(container))
	dev.POST("/leaderboards/:board/scores", RestHandleSubmitScore(container))
	dev.GET("/leaderboards/:board", RestHandleLeaderboard(container))
	dev.GET("/config", RestHandleDevConfig(container))
}

func RestHandleDevArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := pageParams(c)
		if err != nil {
			return handleError(c, err, "dev_articles")
		}
		result, err := container.ArticleUsecase.ListLatest(c.Request().Context(), middleware.ProjectFrom(c), page)
		if err != nil {
			return handleError(c, err, "dev_articles")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleDevArticleGames(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := uuidParam(c, "articleID")
		if err != nil {
			return handleError(c, err, "dev_article_games")
		}
		project := middleware.ProjectFrom(c)
		ctx := c.Request().Context()

		if _, err := container.ArticleUsecase.GetArticle(ctx, project, articleID); err != nil {
			return handleError(c, err, "dev_article_games")
		}
		games, err := container.GameUsecase.PublishedGames(ctx, project.ID, articleID)
		if err != nil {
			return handleError(c, err, "dev_article_games")
		}
		return c.JSON(http.StatusOK, map[string]any{"article_id": articleID, "games": games})
	}
}

func RestHandleDevArticleGame(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := uuidParam(c, "articleID")
		if err != nil {
			return handleError(c, err, "dev_article_game")
		}
		game, err := container.GameUsecase.PublishedGame(c.Request().Context(), middleware.ProjectFrom(c).ID, articleID, domain.GameType(c.Param("type")))
		if err != nil {
			return handleError(c, err, "dev_article_game")
		}
		return c.JSON(http.StatusOK, game)
	}
}

func RestHandleDevSearch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := pageParams(c)
		if err != nil {
			return handleError(c, err, "dev_search")
		}
		result, err := container.ArticleUsecase.Search(c.Request().Context(), middleware.ProjectFrom(c), c.QueryParam("q"), page)
		if err != nil {
			return handleError(c, err, "dev_search")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleSubmitScore(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req submitScoreRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "submit_score")
		}

		in := leaderboard_usecase.SubmitScoreInput{
			PlayerID:   req.PlayerID,
			PlayerName: req.PlayerName,
			Score:      req.Score,
		}
		if req.GameID != nil {
			// Already validated as a UUID.
			id := uuid.MustParse(*req.GameID)
			in.GameID = &id
		}

		result, err := container.LeaderboardUsecase.Submit(c.Request().Context(), middleware.ProjectFrom(c), c.Param("board"), in)
		if err != nil {
			return handleError(c, err, "submit_score")
		}
		return c.JSON(http.StatusCreated, result)
	}
}

func RestHandleLeaderboard(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		period, err := domain.ParsePeriod(c.QueryParam("period"))
		if err != nil {
			return handleError(c, invalidInput(err), "leaderboard")
		}
		limit, err := intQuery(c, "limit", leaderboard_usecase.DefaultTopLimit)
		if err != nil {
			return handleError(c, err, "leaderboard")
		}

		board := c.Param("board")
		entries, err := container.LeaderboardUsecase.Top(c.Request().Context(), middleware.ProjectFrom(c), board, period, limit)
		if err != nil {
			return handleError(c, err, "leaderboard")
		}
		return c.JSON(http.StatusOK, map[string]any{
			"board":   board,
			"period":  period,
			"entries": entries,
		})
	}
}

// RestHandleDevConfig serves the project config with the version as a strong ETag.
func RestHandleDevConfig(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg, err := container.ProjectConfigUsecase.DevConfig(c.Request().Context(), middleware.ProjectFrom(c))
		if err != nil {
			return handleError(c, err, "dev_config")
		}

		etag := `"` + strconv.Itoa(cfg.Version) + `"`
		c.Response().Header().Set("ETag", etag)
		c.Response().Header().Set("Cache-Control", "no-cache")
		if etagMatches(c.Request().Header.Get("If-None-Match"), etag) {
			return c.NoContent(http.StatusNotModified)
		}
		return c.JSON(http.StatusOK, cfg)
	}
}

// etagMatches implements If-None-Match with weak comparison.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
