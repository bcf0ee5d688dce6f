// Package stack_registry resolves a project's service stack name to the
// Redis and Meilisearch clients of that stack.
package stack_registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"gameshub/config"
	"gameshub/driver/redis_driver"
	"gameshub/driver/search_driver"
	apperrors "gameshub/utils/errors"
)

// Stack is the resolved infrastructure of one stack.
type Stack struct {
	Name        string
	IndexPrefix string
	Redis       *redis_driver.RedisDriver
	Search      *search_driver.MeilisearchDriver
}

type Registry struct {
	mu          sync.Mutex
	configs     map[string]config.StackConfig
	stacks      map[string]*Stack
	clients     []*redis.Client
	taskTimeout time.Duration
}

func NewRegistry(configs map[string]config.StackConfig, taskTimeout time.Duration) *Registry {
	return &Registry{
		configs:     configs,
		stacks:      make(map[string]*Stack, len(configs)),
		taskTimeout: taskTimeout,
	}
}

// Has reports whether name is a configured stack. Empty means default.
func (r *Registry) Has(name string) bool {
	if name == "" {
		name = config.DefaultStackName
	}
	_, ok := r.configs[name]
	return ok
}

// Names lists configured stacks in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config returns the configuration of a stack.
func (r *Registry) Config(name string) (config.StackConfig, bool) {
	if name == "" {
		name = config.DefaultStackName
	}
	cfg, ok := r.configs[name]
	return cfg, ok
}

// Get returns the stack, creating its clients on first use.
func (r *Registry) Get(name string) (*Stack, error) {
	if name == "" {
		name = config.DefaultStackName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stacks[name]; ok {
		return s, nil
	}

	cfg, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownStack, name)
	}

	client, err := redis_driver.NewClientFromURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("stack %s: %w", name, err)
	}
	r.clients = append(r.clients, client)

	s := &Stack{
		Name:        name,
		IndexPrefix: cfg.IndexPrefix,
		Redis:       redis_driver.NewRedisDriver(client),
		Search:      search_driver.NewMeilisearchDriver(search_driver.NewClient(cfg.SearchHost, cfg.SearchAPIKey), r.taskTimeout),
	}
	r.stacks[name] = s
	slog.Info("service stack initialized", "stack", name, "search_host", cfg.SearchHost)
	return s, nil
}

// Redis returns the Redis driver of a stack.
func (r *Registry) Redis(name string) (*redis_driver.RedisDriver, error) {
	s, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return s.Redis, nil
}

// Search returns the search driver and index prefix of a stack.
func (r *Registry) Search(name string) (*search_driver.MeilisearchDriver, string, error) {
	s, err := r.Get(name)
	if err != nil {
		return nil, "", err
	}
	return s.Search, s.IndexPrefix, nil
}

// Ping checks Redis and Meilisearch of one stack concurrently.
func (r *Registry) Ping(ctx context.Context, name string) error {
	s, err := r.Get(name)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.Redis.Ping(gctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.Search.Health(gctx); err != nil {
			return fmt.Errorf("search: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Close releases every Redis client created so far.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, c := range r.clients {
		errs = append(errs, c.Close())
	}
	r.clients = nil
	r.stacks = map[string]*Stack{}
	return errors.Join(errs...)
}
