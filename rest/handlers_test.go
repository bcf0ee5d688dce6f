package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gameshub/di"
	"gameshub/domain"
	"gameshub/middleware"
	"gameshub/mocks"
	"gameshub/usecase/article_usecase"
	"gameshub/usecase/game_usecase"
	"gameshub/usecase/leaderboard_usecase"
	"gameshub/usecase/project_config_usecase"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/validator"
)

const (
	testAPIKey  = "gh_test_key"
	adminToken  = "admin-token"
	editorToken = "editor-token"
)

type staticKeyAuth struct {
	project *domain.Project
}

func (a staticKeyAuth) AuthenticateAPIKey(_ context.Context, key string) (*domain.Project, error) {
	if key != testAPIKey {
		return nil, apperrors.ErrUnauthorized
	}
	return a.project, nil
}

type handlerFixture struct {
	projects *mocks.MockProjectPort
	configs  *mocks.MockProjectConfigPort
	cache    *mocks.MockCachePort
	cdn      *mocks.MockCDNPort
	games    *mocks.MockGamePort
	jobs     *mocks.MockGameJobPort
	articles *mocks.MockArticlePort
	search   *mocks.MockSearchPort
	scores   *mocks.MockScoreStorePort
	boards   *mocks.MockLeaderboardCachePort
	tokens   *mocks.MockTokenPort
}

// newTestServer registers the admin handlers behind fixed admin tokens and
// the dev handlers behind a fixed API key for project.
func newTestServer(t *testing.T, project *domain.Project) (*echo.Echo, *handlerFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		projects: mocks.NewMockProjectPort(ctrl),
		configs:  mocks.NewMockProjectConfigPort(ctrl),
		cache:    mocks.NewMockCachePort(ctrl),
		cdn:      mocks.NewMockCDNPort(ctrl),
		games:    mocks.NewMockGamePort(ctrl),
		jobs:     mocks.NewMockGameJobPort(ctrl),
		articles: mocks.NewMockArticlePort(ctrl),
		search:   mocks.NewMockSearchPort(ctrl),
		scores:   mocks.NewMockScoreStorePort(ctrl),
		boards:   mocks.NewMockLeaderboardCachePort(ctrl),
		tokens:   mocks.NewMockTokenPort(ctrl),
	}
	f.tokens.EXPECT().ParseAdminToken(gomock.Any()).DoAndReturn(func(token string) (*domain.AdminClaims, error) {
		switch token {
		case adminToken:
			return &domain.AdminClaims{AdminID: uuid.New(), Role: domain.RoleAdmin}, nil
		case editorToken:
			return &domain.AdminClaims{AdminID: uuid.New(), Role: domain.RoleEditor}, nil
		}
		return nil, apperrors.ErrUnauthorized
	}).AnyTimes()

	container := &di.ApplicationComponents{
		ProjectConfigUsecase: project_config_usecase.NewProjectConfigUsecase(f.projects, f.configs, f.cache, f.cdn, time.Minute, ""),
		GameUsecase:          game_usecase.NewGameUsecase(f.games, f.jobs, f.articles, mocks.NewMockGameGeneratorPort(ctrl), 3),
		ArticleUsecase:       article_usecase.NewArticleUsecase(f.articles, f.search),
		LeaderboardUsecase:   leaderboard_usecase.NewLeaderboardUsecase(f.scores, f.boards),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorHandler

	protected := e.Group("/admin/v1", middleware.NewAdminAuthMiddleware(f.tokens).RequireAdmin())
	registerGameRoutes(protected, container)
	registerConfigRoutes(protected, container)
	registerDevRoutes(e.Group("/dev/v1", middleware.APIKeyMiddleware(staticKeyAuth{project: project})), container)
	return e, f
}

func serve(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func devHeaders(extra map[string]string) map[string]string {
	h := map[string]string{middleware.APIKeyHeader: testAPIKey}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body apperrors.HTTPContextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestDevRoutes_RequireAPIKey(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	e, _ := newTestServer(t, project)

	rec := serve(e, http.MethodGet, "/dev/v1/config", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/dev/v1/config", "", map[string]string{middleware.APIKeyHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDevConfig_ETag(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	cfg := &domain.ProjectConfig{ProjectID: project.ID, Config: map[string]any{"theme": "dark"}, Version: 3}
	cached, err := json.Marshal(cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "no validator", wantStatus: http.StatusOK},
		{name: "matching etag", headers: map[string]string{"If-None-Match": `"3"`}, wantStatus: http.StatusNotModified},
		{name: "weak matching etag", headers: map[string]string{"If-None-Match": `W/"3", "9"`}, wantStatus: http.StatusNotModified},
		{name: "stale etag", headers: map[string]string{"If-None-Match": `"2"`}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, f := newTestServer(t, project)
			f.cache.EXPECT().GetCached(gomock.Any(), project, project_config_usecase.DevConfigCacheKey(project.ID)).Return(cached, true, nil)

			rec := serve(e, http.MethodGet, "/dev/v1/config", "", devHeaders(tt.headers))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, `"3"`, rec.Header().Get("ETag"))
			if tt.wantStatus == http.StatusOK {
				var got domain.ProjectConfig
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, 3, got.Version)
				assert.Equal(t, "dark", got.Config["theme"])
			} else {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestDevConfig_CacheMissLoadsFromDatabase(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	e, f := newTestServer(t, project)

	key := project_config_usecase.DevConfigCacheKey(project.ID)
	f.cache.EXPECT().GetCached(gomock.Any(), project, key).Return(nil, false, nil)
	f.configs.EXPECT().GetProjectConfig(gomock.Any(), project.ID).
		Return(&domain.ProjectConfig{ProjectID: project.ID, Config: map[string]any{}, Version: 0}, nil)
	f.cache.EXPECT().SetCached(gomock.Any(), project, key, gomock.Any(), time.Minute).Return(nil)

	rec := serve(e, http.MethodGet, "/dev/v1/config", "", devHeaders(nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"0"`, rec.Header().Get("ETag"))
}

func TestSubmitScore(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}

	tests := []struct {
		name       string
		board      string
		body       string
		mockSetup  func(f *handlerFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "records the score",
			board: "quiz",
			body:  `{"player_id":"p-1","player_name":"Ana","score":120}`,
			mockSetup: func(f *handlerFixture) {
				f.scores.EXPECT().InsertScore(gomock.Any(), gomock.Any()).Return(nil)
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodAllTime, gomock.Any()).Return(int64(120), int64(1), nil)
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodDaily, gomock.Any()).Return(int64(120), int64(2), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing player id",
			board:      "quiz",
			body:       `{"score":5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "negative score",
			board:      "quiz",
			body:       `{"player_id":"p-1","score":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "malformed game id",
			board:      "quiz",
			body:       `{"player_id":"p-1","score":1,"game_id":"nope"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "invalid board name",
			board:      "bad%20board",
			body:       `{"player_id":"p-1","score":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, f := newTestServer(t, project)
			if tt.mockSetup != nil {
				tt.mockSetup(f)
			}

			rec := serve(e, http.MethodPost, "/dev/v1/leaderboards/"+tt.board+"/scores", tt.body, devHeaders(nil))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
				return
			}

			var got domain.SubmitResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, int64(120), got.BestScore)
			assert.Equal(t, int64(1), got.Rank)
			assert.Equal(t, int64(2), got.DailyRank)
		})
	}
}

func TestLeaderboard_FallsBackToDatabase(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	e, f := newTestServer(t, project)

	entries := []domain.LeaderboardEntry{{Rank: 1, PlayerID: "p-1", Score: 90}}
	f.boards.EXPECT().Top(gomock.Any(), project, "quiz", domain.PeriodAllTime, gomock.Any(), 5).Return(nil, nil)
	f.scores.EXPECT().TopScores(gomock.Any(), project.ID, "quiz", time.Time{}, 5).Return(entries, nil)

	rec := serve(e, http.MethodGet, "/dev/v1/leaderboards/quiz?limit=5", "", devHeaders(nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Board   string                    `json:"board"`
		Period  string                    `json:"period"`
		Entries []domain.LeaderboardEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "quiz", got.Board)
	assert.Equal(t, "all", got.Period)
	assert.Equal(t, entries, got.Entries)
}

func TestLeaderboard_UnknownPeriod(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	e, _ := newTestServer(t, project)

	rec := serve(e, http.MethodGet, "/dev/v1/leaderboards/quiz?period=weekly", "", devHeaders(nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.CodeValidation, errorCode(t, rec))
}

func TestDevArticleGames(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	articleID := uuid.New()

	t.Run("lists published games", func(t *testing.T) {
		e, f := newTestServer(t, project)
		f.articles.EXPECT().GetArticle(gomock.Any(), project.ID, articleID).Return(&domain.FeedArticle{ID: articleID}, nil)
		f.games.EXPECT().ListArticleGames(gomock.Any(), project.ID, articleID, domain.GameStatusPublished).
			Return([]*domain.Game{{ID: uuid.New(), ArticleID: articleID, Type: domain.GameTypeQuiz, Status: domain.GameStatusPublished}}, nil)

		rec := serve(e, http.MethodGet, "/dev/v1/articles/"+articleID.String()+"/games", "", devHeaders(nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"published"`)
	})

	t.Run("unknown article", func(t *testing.T) {
		e, f := newTestServer(t, project)
		f.articles.EXPECT().GetArticle(gomock.Any(), project.ID, articleID).Return(nil, apperrors.ErrNotFound)

		rec := serve(e, http.MethodGet, "/dev/v1/articles/"+articleID.String()+"/games", "", devHeaders(nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apperrors.CodeNotFound, errorCode(t, rec))
	})

	t.Run("malformed article id", func(t *testing.T) {
		e, _ := newTestServer(t, project)
		rec := serve(e, http.MethodGet, "/dev/v1/articles/123/games", "", devHeaders(nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDevSearch_RequiresQuery(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}
	e, _ := newTestServer(t, project)

	rec := serve(e, http.MethodGet, "/dev/v1/search?q=%20%20", "", devHeaders(nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGames_Filters(t *testing.T) {
	projectID := uuid.New()
	articleID := uuid.New()

	t.Run("passes filters through", func(t *testing.T) {
		e, f := newTestServer(t, nil)
		want := domain.GameFilter{ArticleID: &articleID, Type: domain.GameTypeQuiz, Status: domain.GameStatusDraft}
		f.games.EXPECT().ListGames(gomock.Any(), projectID, want, domain.NewPage(2, 10)).
			Return([]*domain.Game{}, int64(11), nil)

		path := "/admin/v1/projects/" + projectID.String() + "/games?article_id=" + articleID.String() + "&type=quiz&status=draft&page=2&per_page=10"
		rec := serve(e, http.MethodGet, path, "", bearer(editorToken))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("rejects malformed article id", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		rec := serve(e, http.MethodGet, "/admin/v1/projects/"+projectID.String()+"/games?article_id=x", "", bearer(editorToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetGameStatus_RejectsUnknownStatus(t *testing.T) {
	e, _ := newTestServer(t, nil)
	path := "/admin/v1/projects/" + uuid.NewString() + "/games/" + uuid.NewString()

	rec := serve(e, http.MethodPatch, path, `{"status":"archived"}`, bearer(editorToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.CodeValidation, errorCode(t, rec))
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	e, _ := newTestServer(t, nil)
	path := "/admin/v1/projects/" + uuid.NewString() + "/games"

	rec := serve(e, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, path, "", bearer("forged"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPutConfig(t *testing.T) {
	projectID := uuid.New()
	path := "/admin/v1/projects/" + projectID.String() + "/config"

	t.Run("editors may not write", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		rec := serve(e, http.MethodPut, path, `{"theme":"dark"}`, bearer(editorToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("body must be an object", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		rec := serve(e, http.MethodPut, path, `[1,2]`, bearer(adminToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperrors.CodeValidation, errorCode(t, rec))
	})

	t.Run("stores the document and purges", func(t *testing.T) {
		e, f := newTestServer(t, nil)
		project := &domain.Project{ID: projectID, ServiceStack: "default"}
		doc := map[string]any{"theme": "dark"}
		f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(project, nil)
		f.configs.EXPECT().PutProjectConfig(gomock.Any(), projectID, doc, gomock.Any()).
			Return(&domain.ProjectConfig{ProjectID: projectID, Config: doc, Version: 2}, nil)
		f.cache.EXPECT().PurgeProject(gomock.Any(), project).Return(int64(1), nil)
		f.cdn.EXPECT().Enabled().Return(false)

		rec := serve(e, http.MethodPut, path, `{"theme":"dark"}`, bearer(adminToken))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got domain.ProjectConfig
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.Version)
	})
}

func TestEtagMatches(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`"4"`, true},
		{`W/"4"`, true},
		{`"1", "4"`, true},
		{`*`, true},
		{`"40"`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, etagMatches(tt.header, `"4"`), tt.header)
	}
}
