package project_config_usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
	"gameshub/port/cache_port"
	"gameshub/port/project_port"
	apperrors "gameshub/utils/errors"
)

const devConfigPath = "/dev/v1/config*"

// PurgeResult reports what a cache purge removed.
type PurgeResult struct {
	KeysRemoved    int64  `json:"keys_removed"`
	InvalidationID string `json:"invalidation_id,omitempty"`
}

type ProjectConfigUsecase struct {
	projects project_port.ProjectPort
	configs  project_port.ProjectConfigPort
	cache    cache_port.CachePort
	cdn      cache_port.CDNPort
	ttl      time.Duration
	basePath string
	now      func() time.Time
}

func NewProjectConfigUsecase(
	projects project_port.ProjectPort,
	configs project_port.ProjectConfigPort,
	cache cache_port.CachePort,
	cdn cache_port.CDNPort,
	ttl time.Duration,
	publicBasePath string,
) *ProjectConfigUsecase {
	return &ProjectConfigUsecase{
		projects: projects,
		configs:  configs,
		cache:    cache,
		cdn:      cdn,
		ttl:      ttl,
		basePath: strings.TrimRight(publicBasePath, "/"),
		now:      time.Now,
	}
}

func DevConfigCacheKey(projectID uuid.UUID) string {
	return "devconfig:" + projectID.String()
}

func (u *ProjectConfigUsecase) GetConfig(ctx context.Context, projectID uuid.UUID) (*domain.ProjectConfig, error) {
	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return u.configs.GetProjectConfig(ctx, projectID)
}

// PutConfig replaces the document and purges everything cached for the
// project. A purge failure is logged; the write stands.
func (u *ProjectConfigUsecase) PutConfig(ctx context.Context, projectID uuid.UUID, document map[string]any) (*domain.ProjectConfig, error) {
	if document == nil {
		return nil, fmt.Errorf("%w: config must be a JSON object", apperrors.ErrInvalidInput)
	}
	project, err := u.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	cfg, err := u.configs.PutProjectConfig(ctx, projectID, document, u.now().UTC())
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "project config updated", "version", cfg.Version)

	if _, err := u.purge(ctx, project); err != nil {
		slog.ErrorContext(ctx, "failed to purge project cache after config write", "error", err)
	}
	return cfg, nil
}

func (u *ProjectConfigUsecase) PurgeCache(ctx context.Context, projectID uuid.UUID) (*PurgeResult, error) {
	project, err := u.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return u.purge(ctx, project)
}

// DevConfig serves the config to game clients from the stack's cache,
// loading and caching it on a miss. Cache errors degrade to a database read.
func (u *ProjectConfigUsecase) DevConfig(ctx context.Context, project *domain.Project) (*domain.ProjectConfig, error) {
	key := DevConfigCacheKey(project.ID)

	raw, ok, err := u.cache.GetCached(ctx, project, key)
	if err != nil {
		slog.WarnContext(ctx, "config cache read failed", "error", err)
	}
	if ok {
		var cfg domain.ProjectConfig
		if err := json.Unmarshal(raw, &cfg); err == nil {
			return &cfg, nil
		}
		slog.WarnContext(ctx, "discarding undecodable cached config", "key", key)
	}

	cfg, err := u.configs.GetProjectConfig(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(cfg); err == nil {
		if err := u.cache.SetCached(ctx, project, key, encoded, u.ttl); err != nil {
			slog.WarnContext(ctx, "config cache write failed", "error", err)
		}
	}
	return cfg, nil
}

func (u *ProjectConfigUsecase) purge(ctx context.Context, project *domain.Project) (*PurgeResult, error) {
	removed, err := u.cache.PurgeProject(ctx, project)
	if err != nil {
		return nil, err
	}
	result := &PurgeResult{KeysRemoved: removed}

	if u.cdn.Enabled() {
		id, err := u.cdn.Invalidate(ctx, []string{u.basePath + devConfigPath})
		if err != nil {
			return result, err
		}
		result.InvalidationID = id
	}
	slog.InfoContext(ctx, "project cache purged", "keys_removed", removed, "invalidation_id", result.InvalidationID)
	return result, nil
}
