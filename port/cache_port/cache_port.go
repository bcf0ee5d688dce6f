package cache_port

import (
	"context"
	"time"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache_port.go -destination=../../mocks/mock_cache_port.go -package=mocks

// CachePort stores project-scoped responses. Every key written is tracked so
// PurgeProject can drop all of them at once.
type CachePort interface {
	GetCached(ctx context.Context, project *domain.Project, key string) ([]byte, bool, error)
	SetCached(ctx context.Context, project *domain.Project, key string, value []byte, ttl time.Duration) error
	PurgeProject(ctx context.Context, project *domain.Project) (int64, error)
}

type CDNPort interface {
	Enabled() bool
	Invalidate(ctx context.Context, paths []string) (string, error)
}
