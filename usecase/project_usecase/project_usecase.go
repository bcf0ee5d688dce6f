package project_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"gameshub/config"
	"gameshub/domain"
	"gameshub/port/credential_port"
	"gameshub/port/project_port"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/security"
)

// CreateProjectInput is the payload of a project creation.
type CreateProjectInput struct {
	Name         string
	Slug         string
	ServiceStack string
}

type apiKeyEntry struct {
	credential *domain.APICredential
	project    *domain.Project
}

type ProjectUsecase struct {
	projects    project_port.ProjectPort
	credentials credential_port.CredentialPort
	stacks      project_port.StackCatalogPort
	keyCache    *expirable.LRU[string, apiKeyEntry]
	now         func() time.Time
}

func NewProjectUsecase(
	projects project_port.ProjectPort,
	credentials credential_port.CredentialPort,
	stacks project_port.StackCatalogPort,
	keyCacheSize int,
	keyCacheTTL time.Duration,
) *ProjectUsecase {
	if keyCacheSize <= 0 {
		keyCacheSize = 1024
	}
	return &ProjectUsecase{
		projects:    projects,
		credentials: credentials,
		stacks:      stacks,
		keyCache:    expirable.NewLRU[string, apiKeyEntry](keyCacheSize, nil, keyCacheTTL),
		now:         time.Now,
	}
}

func (u *ProjectUsecase) CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 200 {
		return nil, fmt.Errorf("%w: name must be 1-200 characters", apperrors.ErrInvalidInput)
	}
	if !domain.ValidSlug(in.Slug) {
		return nil, fmt.Errorf("%w: slug must be lower-kebab and at most 64 characters", apperrors.ErrInvalidInput)
	}
	stack, err := u.resolveStack(in.ServiceStack)
	if err != nil {
		return nil, err
	}

	now := u.now()
	p := &domain.Project{
		ID:           uuid.New(),
		Name:         name,
		Slug:         in.Slug,
		ServiceStack: stack,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.projects.CreateProject(ctx, p); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "project created", "project_id", p.ID, "slug", p.Slug, "stack", p.ServiceStack)
	return p, nil
}

func (u *ProjectUsecase) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return u.projects.GetProject(ctx, id)
}

func (u *ProjectUsecase) ListProjects(ctx context.Context, page domain.Page) (domain.PageResult[*domain.Project], error) {
	items, total, err := u.projects.ListProjects(ctx, page)
	if err != nil {
		return domain.PageResult[*domain.Project]{}, err
	}
	return domain.NewPageResult(items, page, total), nil
}

func (u *ProjectUsecase) UpdateProject(ctx context.Context, id uuid.UUID, upd domain.ProjectUpdate) (*domain.Project, error) {
	p, err := u.projects.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" || len(name) > 200 {
			return nil, fmt.Errorf("%w: name must be 1-200 characters", apperrors.ErrInvalidInput)
		}
		p.Name = name
	}
	if upd.ServiceStack != nil {
		stack, err := u.resolveStack(*upd.ServiceStack)
		if err != nil {
			return nil, err
		}
		p.ServiceStack = stack
	}
	p.UpdatedAt = u.now()

	if err := u.projects.UpdateProject(ctx, p); err != nil {
		return nil, err
	}
	u.keyCache.Purge()
	return p, nil
}

func (u *ProjectUsecase) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := u.projects.DeleteProject(ctx, id); err != nil {
		return err
	}
	u.keyCache.Purge()
	slog.InfoContext(ctx, "project deleted", "project_id", id)
	return nil
}

// StackNames lists the service stacks a project can be bound to.
func (u *ProjectUsecase) StackNames() []string {
	return u.stacks.Names()
}

// CreateCredential issues a dev API key. The plaintext is only returned here.
func (u *ProjectUsecase) CreateCredential(ctx context.Context, projectID uuid.UUID, name string, createdBy *uuid.UUID) (*domain.IssuedCredential, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, fmt.Errorf("%w: name must be 1-100 characters", apperrors.ErrInvalidInput)
	}
	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	key, err := security.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	c := &domain.APICredential{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		KeyPrefix: key.Prefix,
		KeyHash:   key.Hash,
		CreatedBy: createdBy,
		CreatedAt: u.now(),
	}
	if err := u.credentials.CreateCredential(ctx, c); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "api credential created", "project_id", projectID, "credential_id", c.ID, "prefix", c.KeyPrefix)
	return &domain.IssuedCredential{Credential: c, APIKey: key.Plaintext}, nil
}

func (u *ProjectUsecase) ListCredentials(ctx context.Context, projectID uuid.UUID) ([]*domain.APICredential, error) {
	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return u.credentials.ListCredentials(ctx, projectID)
}

func (u *ProjectUsecase) RevokeCredential(ctx context.Context, projectID, credentialID uuid.UUID) error {
	prefix, err := u.credentials.RevokeCredential(ctx, projectID, credentialID, u.now())
	if err != nil {
		return err
	}
	u.keyCache.Remove(prefix)
	slog.InfoContext(ctx, "api credential revoked", "project_id", projectID, "credential_id", credentialID)
	return nil
}

// AuthenticateAPIKey resolves a presented dev API key to its project.
func (u *ProjectUsecase) AuthenticateAPIKey(ctx context.Context, key string) (*domain.Project, error) {
	prefix, err := security.ParseAPIKeyPrefix(key)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed api key", apperrors.ErrUnauthorized)
	}

	entry, ok := u.keyCache.Get(prefix)
	if !ok {
		entry, err = u.loadKey(ctx, prefix)
		if err != nil {
			return nil, err
		}
		u.keyCache.Add(prefix, entry)
	}

	if entry.credential.Revoked() || !security.APIKeyMatches(key, entry.credential.KeyHash) {
		return nil, fmt.Errorf("%w: invalid api key", apperrors.ErrUnauthorized)
	}
	return entry.project, nil
}

func (u *ProjectUsecase) loadKey(ctx context.Context, prefix string) (apiKeyEntry, error) {
	c, err := u.credentials.GetCredentialByPrefix(ctx, prefix)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apiKeyEntry{}, fmt.Errorf("%w: invalid api key", apperrors.ErrUnauthorized)
		}
		return apiKeyEntry{}, err
	}

	p, err := u.projects.GetProject(ctx, c.ProjectID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apiKeyEntry{}, fmt.Errorf("%w: invalid api key", apperrors.ErrUnauthorized)
		}
		return apiKeyEntry{}, err
	}

	// last_used_at is refreshed once per cache fill
	if err := u.credentials.TouchCredential(ctx, c.ID, u.now()); err != nil {
		slog.WarnContext(ctx, "failed to touch api credential", "credential_id", c.ID, "error", err)
	}
	return apiKeyEntry{credential: c, project: p}, nil
}

func (u *ProjectUsecase) resolveStack(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = config.DefaultStackName
	}
	if !u.stacks.Has(name) {
		return "", fmt.Errorf("%w: unknown service stack %q", apperrors.ErrInvalidInput, name)
	}
	return name, nil
}
