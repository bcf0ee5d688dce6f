package game_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=game_port.go -destination=../../mocks/mock_game_port.go -package=mocks

type GamePort interface {
	UpsertGame(ctx context.Context, game *domain.Game) (*domain.Game, error)
	GetGame(ctx context.Context, projectID, id uuid.UUID) (*domain.Game, error)
	ListGames(ctx context.Context, projectID uuid.UUID, filter domain.GameFilter, page domain.Page) ([]*domain.Game, int64, error)
	ListArticleGames(ctx context.Context, projectID, articleID uuid.UUID, status domain.GameStatus) ([]*domain.Game, error)
	GetArticleGame(ctx context.Context, projectID, articleID uuid.UUID, gameType domain.GameType, status domain.GameStatus) (*domain.Game, error)
	SetGameStatus(ctx context.Context, projectID, id uuid.UUID, status domain.GameStatus, at time.Time) (*domain.Game, error)
	DeleteGame(ctx context.Context, projectID, id uuid.UUID) error
}

// GameJobPort is the durable generation queue.
type GameJobPort interface {
	EnqueueGameJobs(ctx context.Context, jobs []domain.NewGameJob) (int, error)
	AcquireNextJob(ctx context.Context) (*domain.GameJob, error)
	CompleteJob(ctx context.Context, id uuid.UUID) error
	FailJob(ctx context.Context, id uuid.UUID, cause error, maxAttempts int) (domain.GameJobStatus, error)
	RequeueStaleJobs(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error)
	CountJobsByStatus(ctx context.Context, projectID uuid.UUID) (map[domain.GameJobStatus]int64, error)
}

type GameGeneratorPort interface {
	Generate(ctx context.Context, gameType domain.GameType, article domain.GameArticle) (*domain.GeneratedGame, error)
}
