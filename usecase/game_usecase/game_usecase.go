package game_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
	"gameshub/port/article_port"
	"gameshub/port/game_port"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/logger"
	"gameshub/utils/metrics"
)

type GameUsecase struct {
	games       game_port.GamePort
	jobs        game_port.GameJobPort
	articles    article_port.ArticlePort
	generator   game_port.GameGeneratorPort
	maxAttempts int
	now         func() time.Time
}

func NewGameUsecase(
	games game_port.GamePort,
	jobs game_port.GameJobPort,
	articles article_port.ArticlePort,
	generator game_port.GameGeneratorPort,
	maxAttempts int,
) *GameUsecase {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &GameUsecase{
		games:       games,
		jobs:        jobs,
		articles:    articles,
		generator:   generator,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func (u *GameUsecase) ListGames(ctx context.Context, projectID uuid.UUID, filter domain.GameFilter, page domain.Page) (domain.PageResult[*domain.Game], error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return domain.PageResult[*domain.Game]{}, fmt.Errorf("%w: unknown game type %q", apperrors.ErrInvalidInput, filter.Type)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return domain.PageResult[*domain.Game]{}, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, filter.Status)
	}
	items, total, err := u.games.ListGames(ctx, projectID, filter, page)
	if err != nil {
		return domain.PageResult[*domain.Game]{}, err
	}
	return domain.NewPageResult(items, page, total), nil
}

func (u *GameUsecase) GetGame(ctx context.Context, projectID, gameID uuid.UUID) (*domain.Game, error) {
	return u.games.GetGame(ctx, projectID, gameID)
}

// EnqueueArticleGames queues generation for an article on demand. No types
// means every type. Returns how many jobs were queued; types with a job
// already pending are skipped.
func (u *GameUsecase) EnqueueArticleGames(ctx context.Context, projectID, articleID uuid.UUID, types []domain.GameType, language string) (int, error) {
	if _, err := u.articles.GetArticle(ctx, projectID, articleID); err != nil {
		return 0, err
	}

	if len(types) == 0 {
		types = domain.AllGameTypes
	}
	settings := domain.GameSettings{Enabled: true, GameTypes: types, Language: strings.TrimSpace(language)}.Normalize()
	if err := settings.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	jobs := make([]domain.NewGameJob, 0, len(settings.GameTypes))
	for _, t := range settings.GameTypes {
		jobs = append(jobs, domain.NewGameJob{ProjectID: projectID, ArticleID: articleID, GameType: t, Language: settings.Language})
	}
	return u.jobs.EnqueueGameJobs(ctx, jobs)
}

// SetGameStatus moves a game through review.
func (u *GameUsecase) SetGameStatus(ctx context.Context, projectID, gameID uuid.UUID, status domain.GameStatus) (*domain.Game, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, status)
	}
	game, err := u.games.SetGameStatus(ctx, projectID, gameID, status, u.now())
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "game status changed", "game_id", gameID, "status", status)
	return game, nil
}

func (u *GameUsecase) DeleteGame(ctx context.Context, projectID, gameID uuid.UUID) error {
	return u.games.DeleteGame(ctx, projectID, gameID)
}

func (u *GameUsecase) JobStats(ctx context.Context, projectID uuid.UUID) (map[domain.GameJobStatus]int64, error) {
	return u.jobs.CountJobsByStatus(ctx, projectID)
}

// PublishedGames lists the published games of an article.
func (u *GameUsecase) PublishedGames(ctx context.Context, projectID, articleID uuid.UUID) ([]*domain.Game, error) {
	return u.games.ListArticleGames(ctx, projectID, articleID, domain.GameStatusPublished)
}

func (u *GameUsecase) PublishedGame(ctx context.Context, projectID, articleID uuid.UUID, gameType domain.GameType) (*domain.Game, error) {
	if !gameType.Valid() {
		return nil, fmt.Errorf("%w: unknown game type %q", apperrors.ErrInvalidInput, gameType)
	}
	return u.games.GetArticleGame(ctx, projectID, articleID, gameType, domain.GameStatusPublished)
}

// ProcessNextJob claims one pending job and runs it. It reports false when the
// queue was empty. Generation failures are written to the job, not returned.
func (u *GameUsecase) ProcessNextJob(ctx context.Context) (bool, error) {
	job, err := u.jobs.AcquireNextJob(ctx)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	ctx = logger.WithJobID(ctx, job.ID.String())
	ctx = logger.WithProjectID(ctx, job.ProjectID.String())
	timer := logger.StartTimer(ctx, "game_job")

	game, err := u.runJob(ctx, job)
	if err != nil {
		u.failJob(ctx, job, err)
		return true, nil
	}

	if err := u.jobs.CompleteJob(ctx, job.ID); err != nil {
		return true, fmt.Errorf("complete job %s: %w", job.ID, err)
	}
	metrics.RecordGameJob(string(job.GameType), "completed")
	timer.Stop("game_id", game.ID, "game_type", job.GameType, "attempt", job.Attempts)
	return true, nil
}

// RequeueStaleJobs returns jobs stuck in processing for longer than staleAfter
// to the queue, or fails them once their attempts are used up.
func (u *GameUsecase) RequeueStaleJobs(ctx context.Context, staleAfter time.Duration) (int64, error) {
	n, err := u.jobs.RequeueStaleJobs(ctx, u.now().Add(-staleAfter), u.maxAttempts)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.WarnContext(ctx, "requeued stale game jobs", "count", n)
	}
	return n, nil
}

func (u *GameUsecase) runJob(ctx context.Context, job *domain.GameJob) (*domain.Game, error) {
	article, err := u.articles.GetArticle(ctx, job.ProjectID, job.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}

	generated, err := u.generator.Generate(ctx, job.GameType, domain.GameArticle{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		Content:     article.Content,
		Language:    job.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", job.GameType, err)
	}

	now := u.now()
	return u.games.UpsertGame(ctx, &domain.Game{
		ID:        uuid.New(),
		ProjectID: job.ProjectID,
		ArticleID: job.ArticleID,
		Type:      generated.Type,
		Status:    domain.GameStatusDraft,
		Payload:   generated.Payload,
		Provider:  generated.Provider,
		Model:     generated.Model,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// failJob records the failure. Errors that cannot succeed on retry fail the
// job right away.
func (u *GameUsecase) failJob(ctx context.Context, job *domain.GameJob, cause error) {
	maxAttempts := u.maxAttempts
	if !apperrors.IsRetryableError(cause) {
		maxAttempts = job.Attempts
	}

	status, err := u.jobs.FailJob(ctx, job.ID, cause, maxAttempts)
	if err != nil {
		slog.ErrorContext(ctx, "failed to record game job failure", "error", err, "cause", cause)
		return
	}

	outcome := "retry"
	if status == domain.GameJobFailed {
		outcome = "failed"
	}
	metrics.RecordGameJob(string(job.GameType), outcome)
	slog.WarnContext(ctx, "game job failed",
		"game_type", job.GameType,
		"article_id", job.ArticleID,
		"attempt", job.Attempts,
		"status", status,
		"error", cause)
}
