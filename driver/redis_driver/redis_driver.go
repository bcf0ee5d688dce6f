// Package redis_driver stores cached responses and leaderboards in a stack's Redis.
package redis_driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriver wraps one stack's Redis client.
type RedisDriver struct {
	client redis.UniversalClient
}

func NewRedisDriver(client redis.UniversalClient) *RedisDriver {
	return &RedisDriver{client: client}
}

// NewClientFromURL parses a redis:// URL and returns a client.
func NewClientFromURL(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// CacheKeysSet is the bookkeeping set holding every cache key of a project.
func CacheKeysSet(projectID string) string {
	return "cachekeys:" + projectID
}

// Get returns the cached value, or ok=false on a miss.
func (d *RedisDriver) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := d.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// SetTracked writes key with ttl and records it in the project's bookkeeping set.
func (d *RedisDriver) SetTracked(ctx context.Context, projectID, key string, value []byte, ttl time.Duration) error {
	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, value, ttl)
		pipe.SAdd(ctx, CacheKeysSet(projectID), key)
		return nil
	})
	return err
}

const purgeBatch = 500

// PurgeProject deletes every tracked key, then the set itself, and returns
// how many keys were removed.
func (d *RedisDriver) PurgeProject(ctx context.Context, projectID string) (int64, error) {
	setKey := CacheKeysSet(projectID)
	keys, err := d.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return 0, fmt.Errorf("read cache keys: %w", err)
	}

	var removed int64
	for start := 0; start < len(keys); start += purgeBatch {
		end := min(start+purgeBatch, len(keys))
		n, err := d.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return removed, fmt.Errorf("delete cache keys: %w", err)
		}
		removed += n
	}

	if err := d.client.Del(ctx, setKey).Err(); err != nil {
		return removed, fmt.Errorf("delete cache key set: %w", err)
	}
	return removed, nil
}
