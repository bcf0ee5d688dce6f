package redis_driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LeaderboardKey is the sorted set of one board bucket.
func LeaderboardKey(projectID, board, bucket string) string {
	return fmt.Sprintf("lb:%s:%s:%s", projectID, board, bucket)
}

// LeaderboardNamesKey is the hash of display names for a board.
func LeaderboardNamesKey(projectID, board string) string {
	return fmt.Sprintf("lbnames:%s:%s", projectID, board)
}

// RankedScore is one sorted-set member with its 1-based rank.
type RankedScore struct {
	Rank     int64
	PlayerID string
	Name     string
	Score    int64
}

// SubmitBest stores score for player only when it beats the current one, and
// returns the player's best score and 1-based rank. ttl > 0 sets an expiry on
// the bucket (daily boards).
func (d *RedisDriver) SubmitBest(ctx context.Context, key, namesKey, playerID, playerName string, score int64, ttl time.Duration) (int64, int64, error) {
	var best *redis.FloatCmd
	var rank *redis.IntCmd
	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddArgs(ctx, key, redis.ZAddArgs{
			GT:      true,
			Members: []redis.Z{{Score: float64(score), Member: playerID}},
		})
		if playerName != "" {
			pipe.HSet(ctx, namesKey, playerID, playerName)
		}
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		best = pipe.ZScore(ctx, key, playerID)
		rank = pipe.ZRevRank(ctx, key, playerID)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("submit score: %w", err)
	}
	return int64(best.Val()), rank.Val() + 1, nil
}

// Top returns the highest n entries of the bucket.
func (d *RedisDriver) Top(ctx context.Context, key, namesKey string, n int64) ([]RankedScore, error) {
	members, err := d.client.ZRevRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if len(members) == 0 {
		return []RankedScore{}, nil
	}

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i], _ = m.Member.(string)
	}

	names, err := d.client.HMGet(ctx, namesKey, ids...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read player names: %w", err)
	}

	out := make([]RankedScore, len(members))
	for i, m := range members {
		out[i] = RankedScore{Rank: int64(i + 1), PlayerID: ids[i], Score: int64(m.Score)}
		if i < len(names) {
			if name, ok := names[i].(string); ok {
				out[i].Name = name
			}
		}
	}
	return out, nil
}
