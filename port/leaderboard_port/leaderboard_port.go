package leaderboard_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=leaderboard_port.go -destination=../../mocks/mock_leaderboard_port.go -package=mocks

// ScoreStorePort is the durable score history.
type ScoreStorePort interface {
	InsertScore(ctx context.Context, score domain.ScoreSubmission) error
	TopScores(ctx context.Context, projectID uuid.UUID, board string, since time.Time, limit int) ([]domain.LeaderboardEntry, error)
	BestScore(ctx context.Context, projectID uuid.UUID, board, playerID string) (int64, error)
	// Rank is 1 plus the number of players whose best score beats score.
	Rank(ctx context.Context, projectID uuid.UUID, board string, score int64) (int64, error)
}

// LeaderboardCachePort keeps ranked boards in the project's stack.
type LeaderboardCachePort interface {
	SubmitBest(ctx context.Context, project *domain.Project, period domain.LeaderboardPeriod, score domain.ScoreSubmission) (best int64, rank int64, err error)
	Top(ctx context.Context, project *domain.Project, board string, period domain.LeaderboardPeriod, at time.Time, limit int) ([]domain.LeaderboardEntry, error)
}
