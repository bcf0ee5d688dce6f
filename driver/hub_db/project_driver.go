package hub_db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

const projectColumns = `id, name, slug, service_stack, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.ServiceStack, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *HubDBRepository) CreateProject(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (id, name, slug, service_stack, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.q(ctx).Exec(ctx, query, p.ID, p.Name, p.Slug, p.ServiceStack, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create project", "error", err, "slug", p.Slug)
		return mapError(err, "create project")
	}
	return nil
}

func (r *HubDBRepository) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "get project")
	}
	return p, nil
}

func (r *HubDBRepository) ListProjects(ctx context.Context, page domain.Page) ([]*domain.Project, int64, error) {
	var total int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		return nil, 0, mapError(err, "count projects")
	}

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q(ctx).Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, mapError(err, "list projects")
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, mapError(err, "scan project")
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "iterate projects")
	}
	return projects, total, nil
}

func (r *HubDBRepository) UpdateProject(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects SET name = $2, service_stack = $3, updated_at = $4
		WHERE id = $1
	`
	tag, err := r.q(ctx).Exec(ctx, query, p.ID, p.Name, p.ServiceStack, p.UpdatedAt)
	if err != nil {
		return mapError(err, "update project")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update project: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *HubDBRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete project")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete project: %w", apperrors.ErrNotFound)
	}
	return nil
}

// GetProjectConfig returns the stored config, or an empty version-0 document.
func (r *HubDBRepository) GetProjectConfig(ctx context.Context, projectID uuid.UUID) (*domain.ProjectConfig, error) {
	query := `SELECT config, version, updated_at FROM project_configs WHERE project_id = $1`

	var raw []byte
	cfg := &domain.ProjectConfig{ProjectID: projectID}
	err := r.q(ctx).QueryRow(ctx, query, projectID).Scan(&raw, &cfg.Version, &cfg.UpdatedAt)
	if err == pgx.ErrNoRows {
		cfg.Config = map[string]any{}
		return cfg, nil
	}
	if err != nil {
		return nil, mapError(err, "get project config")
	}

	if err := json.Unmarshal(raw, &cfg.Config); err != nil {
		return nil, fmt.Errorf("decode project config: %w", err)
	}
	return cfg, nil
}

// PutProjectConfig replaces the document and bumps its version.
func (r *HubDBRepository) PutProjectConfig(ctx context.Context, projectID uuid.UUID, document map[string]any, at time.Time) (*domain.ProjectConfig, error) {
	raw, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("encode project config: %w", err)
	}

	query := `
		INSERT INTO project_configs (project_id, config, version, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (project_id) DO UPDATE
		SET config = EXCLUDED.config,
		    version = project_configs.version + 1,
		    updated_at = EXCLUDED.updated_at
		RETURNING version, updated_at
	`
	cfg := &domain.ProjectConfig{ProjectID: projectID, Config: document}
	if err := r.q(ctx).QueryRow(ctx, query, projectID, raw, at).Scan(&cfg.Version, &cfg.UpdatedAt); err != nil {
		return nil, mapError(err, "put project config")
	}
	return cfg, nil
}
