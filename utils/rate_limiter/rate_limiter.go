package rate_limiter

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token bucket per key, created on first use.
type KeyedLimiter struct {
	buckets sync.Map // string -> *rate.Limiter
	limit   rate.Limit
	burst   int
}

func NewKeyedLimiter(limit rate.Limit, burst int) *KeyedLimiter {
	return &KeyedLimiter{limit: limit, burst: burst}
}

// Allow reports whether one event for key may happen now.
func (k *KeyedLimiter) Allow(key string) bool {
	return k.bucket(key).Allow()
}

// Wait blocks until an event for key is permitted or ctx is done.
func (k *KeyedLimiter) Wait(ctx context.Context, key string) error {
	return k.bucket(key).Wait(ctx)
}

func (k *KeyedLimiter) bucket(key string) *rate.Limiter {
	if b, ok := k.buckets.Load(key); ok {
		return b.(*rate.Limiter)
	}
	b, _ := k.buckets.LoadOrStore(key, rate.NewLimiter(k.limit, k.burst))
	return b.(*rate.Limiter)
}

// HostRateLimiter spaces outbound requests to the same host by a fixed interval.
type HostRateLimiter struct {
	hosts *KeyedLimiter
}

func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	return &HostRateLimiter{hosts: NewKeyedLimiter(rate.Every(interval), 1)}
}

// WaitForHost blocks until a request to the host of rawURL may be sent.
func (h *HostRateLimiter) WaitForHost(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return &url.Error{Op: "parse", URL: rawURL, Err: errors.New("missing host in URL")}
	}
	return h.hosts.Wait(ctx, strings.ToLower(u.Host))
}
