package redis_driver

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDriver(t *testing.T) (*miniredis.Miniredis, *RedisDriver) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisDriver(client)
}

func TestSetTrackedAndPurge(t *testing.T) {
	mr, d := setupDriver(t)
	ctx := context.Background()

	require.NoError(t, d.SetTracked(ctx, "p1", "cfg:p1", []byte(`{"v":1}`), time.Minute))
	require.NoError(t, d.SetTracked(ctx, "p1", "articles:p1:1", []byte(`[]`), time.Minute))
	require.NoError(t, d.SetTracked(ctx, "p2", "cfg:p2", []byte(`{}`), time.Minute))

	members, err := mr.Members(CacheKeysSet("p1"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cfg:p1", "articles:p1:1"}, members)

	val, ok, err := d.Get(ctx, "cfg:p1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"v":1}`, string(val))

	removed, err := d.PurgeProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.False(t, mr.Exists("cfg:p1"))
	assert.False(t, mr.Exists(CacheKeysSet("p1")))
	assert.True(t, mr.Exists("cfg:p2"), "other projects keep their cache")
}

func TestPurgeProject_CountsOnlyLiveKeys(t *testing.T) {
	mr, d := setupDriver(t)
	ctx := context.Background()

	require.NoError(t, d.SetTracked(ctx, "p1", "short", []byte("x"), time.Second))
	mr.FastForward(2 * time.Second)

	removed, err := d.PurgeProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestGet_Miss(t *testing.T) {
	_, d := setupDriver(t)

	_, ok, err := d.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitBest_KeepsHighestScore(t *testing.T) {
	_, d := setupDriver(t)
	ctx := context.Background()

	key := LeaderboardKey("p1", "quiz", "all")
	names := LeaderboardNamesKey("p1", "quiz")

	best, rank, err := d.SubmitBest(ctx, key, names, "alice", "Alice", 70, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(70), best)
	assert.Equal(t, int64(1), rank)

	_, rank, err = d.SubmitBest(ctx, key, names, "bob", "Bob", 90, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rank)

	best, rank, err = d.SubmitBest(ctx, key, names, "alice", "Alice", 40, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(70), best, "lower score must not replace the best one")
	assert.Equal(t, int64(2), rank)

	top, err := d.Top(ctx, key, names, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, RankedScore{Rank: 1, PlayerID: "bob", Name: "Bob", Score: 90}, top[0])
	assert.Equal(t, RankedScore{Rank: 2, PlayerID: "alice", Name: "Alice", Score: 70}, top[1])
}

func TestSubmitBest_DailyBucketExpires(t *testing.T) {
	mr, d := setupDriver(t)
	ctx := context.Background()

	key := LeaderboardKey("p1", "quiz", "20260301")
	_, _, err := d.SubmitBest(ctx, key, LeaderboardNamesKey("p1", "quiz"), "alice", "", 10, 48*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, mr.TTL(key))
}

func TestTop_EmptyBoard(t *testing.T) {
	_, d := setupDriver(t)

	top, err := d.Top(context.Background(), LeaderboardKey("p1", "none", "all"), LeaderboardNamesKey("p1", "none"), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}
