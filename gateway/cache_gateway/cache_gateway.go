// Package cache_gateway stores project-scoped cache entries and leaderboards
// in the Redis of the project's service stack.
package cache_gateway

import (
	"context"
	"time"

	"gameshub/domain"
	"gameshub/driver/redis_driver"
	"gameshub/driver/stack_registry"
	apperrors "gameshub/utils/errors"
)

// DailyBoardTTL keeps a daily bucket readable for a day after it closes.
const DailyBoardTTL = 48 * time.Hour

type CacheGateway struct {
	registry *stack_registry.Registry
}

func NewCacheGateway(registry *stack_registry.Registry) *CacheGateway {
	return &CacheGateway{registry: registry}
}

func (g *CacheGateway) redis(project *domain.Project, op string) (*redis_driver.RedisDriver, error) {
	d, err := g.registry.Redis(project.ServiceStack)
	if err != nil {
		return nil, apperrors.Classify(err, "gateway", "CacheGateway", op)
	}
	return d, nil
}

func (g *CacheGateway) GetCached(ctx context.Context, project *domain.Project, key string) ([]byte, bool, error) {
	d, err := g.redis(project, "GetCached")
	if err != nil {
		return nil, false, err
	}
	value, ok, err := d.Get(ctx, key)
	if err != nil {
		return nil, false, apperrors.NewExternalAPIContextError("cache read failed", "gateway", "CacheGateway", "GetCached", err,
			map[string]interface{}{"key": key})
	}
	return value, ok, nil
}

// SetCached writes the entry and registers the key in the project's bookkeeping set.
func (g *CacheGateway) SetCached(ctx context.Context, project *domain.Project, key string, value []byte, ttl time.Duration) error {
	d, err := g.redis(project, "SetCached")
	if err != nil {
		return err
	}
	if err := d.SetTracked(ctx, project.ID.String(), key, value, ttl); err != nil {
		return apperrors.NewExternalAPIContextError("cache write failed", "gateway", "CacheGateway", "SetCached", err,
			map[string]interface{}{"key": key})
	}
	return nil
}

func (g *CacheGateway) PurgeProject(ctx context.Context, project *domain.Project) (int64, error) {
	d, err := g.redis(project, "PurgeProject")
	if err != nil {
		return 0, err
	}
	removed, err := d.PurgeProject(ctx, project.ID.String())
	if err != nil {
		return 0, apperrors.NewExternalAPIContextError("cache purge failed", "gateway", "CacheGateway", "PurgeProject", err, nil)
	}
	return removed, nil
}

func (g *CacheGateway) SubmitBest(ctx context.Context, project *domain.Project, period domain.LeaderboardPeriod, score domain.ScoreSubmission) (int64, int64, error) {
	d, err := g.redis(project, "SubmitBest")
	if err != nil {
		return 0, 0, err
	}

	var ttl time.Duration
	if period == domain.PeriodDaily {
		ttl = DailyBoardTTL
	}

	projectID := project.ID.String()
	best, rank, err := d.SubmitBest(ctx,
		redis_driver.LeaderboardKey(projectID, score.Board, period.Bucket(score.At)),
		redis_driver.LeaderboardNamesKey(projectID, score.Board),
		score.PlayerID, score.PlayerName, score.Score, ttl)
	if err != nil {
		return 0, 0, apperrors.NewExternalAPIContextError("leaderboard write failed", "gateway", "CacheGateway", "SubmitBest", err,
			map[string]interface{}{"board": score.Board, "period": string(period)})
	}
	return best, rank, nil
}

func (g *CacheGateway) Top(ctx context.Context, project *domain.Project, board string, period domain.LeaderboardPeriod, at time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	d, err := g.redis(project, "Top")
	if err != nil {
		return nil, err
	}

	projectID := project.ID.String()
	ranked, err := d.Top(ctx,
		redis_driver.LeaderboardKey(projectID, board, period.Bucket(at)),
		redis_driver.LeaderboardNamesKey(projectID, board),
		int64(limit))
	if err != nil {
		return nil, apperrors.NewExternalAPIContextError("leaderboard read failed", "gateway", "CacheGateway", "Top", err,
			map[string]interface{}{"board": board})
	}

	entries := make([]domain.LeaderboardEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, domain.LeaderboardEntry{Rank: r.Rank, PlayerID: r.PlayerID, PlayerName: r.Name, Score: r.Score})
	}
	return entries, nil
}
