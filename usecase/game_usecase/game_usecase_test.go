package game_usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gameshub/domain"
	"gameshub/mocks"
	apperrors "gameshub/utils/errors"
)

type fixture struct {
	games     *mocks.MockGamePort
	jobs      *mocks.MockGameJobPort
	articles  *mocks.MockArticlePort
	generator *mocks.MockGameGeneratorPort
}

func newUsecase(t *testing.T) (*GameUsecase, *fixture) {
	ctrl := gomock.NewController(t)
	f := &fixture{
		games:     mocks.NewMockGamePort(ctrl),
		jobs:      mocks.NewMockGameJobPort(ctrl),
		articles:  mocks.NewMockArticlePort(ctrl),
		generator: mocks.NewMockGameGeneratorPort(ctrl),
	}
	u := NewGameUsecase(f.games, f.jobs, f.articles, f.generator, 3)
	u.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return u, f
}

func TestProcessNextJob(t *testing.T) {
	job := &domain.GameJob{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		ArticleID: uuid.New(),
		GameType:  domain.GameTypeQuiz,
		Language:  "en",
		Attempts:  1,
	}
	article := &domain.FeedArticle{ID: job.ArticleID, Title: "Rates rise", Description: "The bank raised rates."}
	generated := &domain.GeneratedGame{Type: domain.GameTypeQuiz, Payload: json.RawMessage(`{"title":"q"}`), Provider: "gemini", Model: "m"}

	tests := []struct {
		name      string
		mockSetup func(f *fixture)
		processed bool
		wantErr   bool
	}{
		{
			name: "empty queue",
			mockSetup: func(f *fixture) {
				f.jobs.EXPECT().AcquireNextJob(gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "acquire error",
			mockSetup: func(f *fixture) {
				f.jobs.EXPECT().AcquireNextJob(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "generated and stored as draft",
			mockSetup: func(f *fixture) {
				f.jobs.EXPECT().AcquireNextJob(gomock.Any()).Return(job, nil)
				f.articles.EXPECT().GetArticle(gomock.Any(), job.ProjectID, job.ArticleID).Return(article, nil)
				f.generator.EXPECT().Generate(gomock.Any(), domain.GameTypeQuiz, domain.GameArticle{
					ID: article.ID, Title: article.Title, Description: article.Description, Language: "en",
				}).Return(generated, nil)
				f.games.EXPECT().UpsertGame(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, g *domain.Game) (*domain.Game, error) {
						assert.Equal(t, domain.GameStatusDraft, g.Status)
						assert.Equal(t, job.ArticleID, g.ArticleID)
						assert.Equal(t, "gemini", g.Provider)
						assert.JSONEq(t, `{"title":"q"}`, string(g.Payload))
						return g, nil
					})
				f.jobs.EXPECT().CompleteJob(gomock.Any(), job.ID).Return(nil)
			},
			processed: true,
		},
		{
			name: "retryable provider failure keeps the job",
			mockSetup: func(f *fixture) {
				f.jobs.EXPECT().AcquireNextJob(gomock.Any()).Return(job, nil)
				f.articles.EXPECT().GetArticle(gomock.Any(), job.ProjectID, job.ArticleID).Return(article, nil)
				f.generator.EXPECT().Generate(gomock.Any(), domain.GameTypeQuiz, gomock.Any()).Return(nil, apperrors.ErrRateLimitExceeded)
				f.jobs.EXPECT().FailJob(gomock.Any(), job.ID, gomock.Any(), 3).Return(domain.GameJobPending, nil)
			},
			processed: true,
		},
		{
			name: "missing article fails the job at once",
			mockSetup: func(f *fixture) {
				f.jobs.EXPECT().AcquireNextJob(gomock.Any()).Return(job, nil)
				f.articles.EXPECT().GetArticle(gomock.Any(), job.ProjectID, job.ArticleID).Return(nil, apperrors.ErrNotFound)
				f.jobs.EXPECT().FailJob(gomock.Any(), job.ID, gomock.Any(), 1).Return(domain.GameJobFailed, nil)
			},
			processed: true,
		},
		{
			name: "complete error is returned",
			mockSetup: func(f *fixture) {
				f.jobs.EXPECT().AcquireNextJob(gomock.Any()).Return(job, nil)
				f.articles.EXPECT().GetArticle(gomock.Any(), gomock.Any(), gomock.Any()).Return(article, nil)
				f.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(generated, nil)
				f.games.EXPECT().UpsertGame(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, g *domain.Game) (*domain.Game, error) { return g, nil })
				f.jobs.EXPECT().CompleteJob(gomock.Any(), job.ID).Return(errors.New("conn reset"))
			},
			processed: true,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, f := newUsecase(t)
			tt.mockSetup(f)

			processed, err := u.ProcessNextJob(context.Background())
			assert.Equal(t, tt.processed, processed)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnqueueArticleGames(t *testing.T) {
	projectID, articleID := uuid.New(), uuid.New()

	t.Run("defaults to every type", func(t *testing.T) {
		u, f := newUsecase(t)
		f.articles.EXPECT().GetArticle(gomock.Any(), projectID, articleID).Return(&domain.FeedArticle{ID: articleID}, nil)
		f.jobs.EXPECT().EnqueueGameJobs(gomock.Any(), gomock.Len(len(domain.AllGameTypes))).DoAndReturn(
			func(_ context.Context, jobs []domain.NewGameJob) (int, error) {
				for _, j := range jobs {
					assert.Equal(t, "en", j.Language)
					assert.Equal(t, articleID, j.ArticleID)
				}
				return len(jobs), nil
			})

		n, err := u.EnqueueArticleGames(context.Background(), projectID, articleID, nil, "")
		require.NoError(t, err)
		assert.Equal(t, len(domain.AllGameTypes), n)
	})

	t.Run("unknown type", func(t *testing.T) {
		u, f := newUsecase(t)
		f.articles.EXPECT().GetArticle(gomock.Any(), projectID, articleID).Return(&domain.FeedArticle{ID: articleID}, nil)

		_, err := u.EnqueueArticleGames(context.Background(), projectID, articleID, []domain.GameType{"chess"}, "en")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("unknown article", func(t *testing.T) {
		u, f := newUsecase(t)
		f.articles.EXPECT().GetArticle(gomock.Any(), projectID, articleID).Return(nil, apperrors.ErrNotFound)

		_, err := u.EnqueueArticleGames(context.Background(), projectID, articleID, nil, "")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestSetGameStatus(t *testing.T) {
	u, f := newUsecase(t)
	projectID, gameID := uuid.New(), uuid.New()

	_, err := u.SetGameStatus(context.Background(), projectID, gameID, "archived")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	f.games.EXPECT().SetGameStatus(gomock.Any(), projectID, gameID, domain.GameStatusPublished, u.now()).
		Return(&domain.Game{ID: gameID, Status: domain.GameStatusPublished}, nil)
	game, err := u.SetGameStatus(context.Background(), projectID, gameID, domain.GameStatusPublished)
	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusPublished, game.Status)
}

func TestListGames(t *testing.T) {
	u, f := newUsecase(t)
	projectID := uuid.New()
	page := domain.NewPage(2, 1)

	_, err := u.ListGames(context.Background(), projectID, domain.GameFilter{Type: "chess"}, page)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	f.games.EXPECT().ListGames(gomock.Any(), projectID, domain.GameFilter{Status: domain.GameStatusDraft}, page).
		Return([]*domain.Game{{ID: uuid.New()}}, int64(3), nil)
	result, err := u.ListGames(context.Background(), projectID, domain.GameFilter{Status: domain.GameStatusDraft}, page)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(3), result.Total)
}

func TestRequeueStaleJobs(t *testing.T) {
	u, f := newUsecase(t)
	f.jobs.EXPECT().RequeueStaleJobs(gomock.Any(), u.now().Add(-10*time.Minute), 3).Return(int64(2), nil)

	n, err := u.RequeueStaleJobs(context.Background(), 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPublishedGame(t *testing.T) {
	u, f := newUsecase(t)
	projectID, articleID := uuid.New(), uuid.New()

	f.games.EXPECT().GetArticleGame(gomock.Any(), projectID, articleID, domain.GameTypeHangman, domain.GameStatusPublished).
		Return(nil, apperrors.ErrNotFound)
	_, err := u.PublishedGame(context.Background(), projectID, articleID, domain.GameTypeHangman)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = u.PublishedGame(context.Background(), projectID, articleID, "chess")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
