package cache_gateway

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/config"
	"gameshub/domain"
	"gameshub/driver/stack_registry"
)

func newGateway(t *testing.T) (*miniredis.Miniredis, *CacheGateway) {
	t.Helper()
	mr := miniredis.RunT(t)
	registry := stack_registry.NewRegistry(map[string]config.StackConfig{
		config.DefaultStackName: {Name: "default", RedisURL: "redis://" + mr.Addr(), SearchHost: "http://127.0.0.1:1"},
	}, time.Second)
	t.Cleanup(func() { _ = registry.Close() })
	return mr, NewCacheGateway(registry)
}

func TestCacheRoundTripAndPurge(t *testing.T) {
	mr, g := newGateway(t)
	ctx := context.Background()
	project := &domain.Project{ID: uuid.New()}

	_, ok, err := g.GetCached(ctx, project, "config:"+project.ID.String())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.SetCached(ctx, project, "config:"+project.ID.String(), []byte(`{"v":1}`), time.Minute))
	require.NoError(t, g.SetCached(ctx, project, "articles:"+project.ID.String(), []byte(`[]`), time.Minute))

	value, ok, err := g.GetCached(ctx, project, "config:"+project.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"v":1}`, string(value))

	removed, err := g.PurgeProject(ctx, project)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.False(t, mr.Exists("config:"+project.ID.String()))
}

func TestLeaderboard_AllTimeAndDaily(t *testing.T) {
	mr, g := newGateway(t)
	ctx := context.Background()
	project := &domain.Project{ID: uuid.New()}
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	submit := func(player string, score int64) (int64, int64) {
		best, rank, err := g.SubmitBest(ctx, project, domain.PeriodDaily, domain.ScoreSubmission{
			Board: "quiz", PlayerID: player, PlayerName: "P " + player, Score: score, At: at,
		})
		require.NoError(t, err)
		return best, rank
	}

	submit("a", 10)
	submit("b", 30)
	best, rank := submit("a", 5)
	assert.Equal(t, int64(10), best)
	assert.Equal(t, int64(2), rank)

	dailyKey := "lb:" + project.ID.String() + ":quiz:20261019"
	assert.True(t, mr.TTL(dailyKey) > 0)

	top, err := g.Top(ctx, project, "quiz", domain.PeriodDaily, at, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, domain.LeaderboardEntry{Rank: 1, PlayerID: "b", PlayerName: "P b", Score: 30}, top[0])

	allTime, err := g.Top(ctx, project, "quiz", domain.PeriodAllTime, at, 10)
	require.NoError(t, err)
	assert.Empty(t, allTime)
}
