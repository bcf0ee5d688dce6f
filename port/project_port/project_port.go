package project_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=project_port.go -destination=../../mocks/mock_project_port.go -package=mocks

type ProjectPort interface {
	CreateProject(ctx context.Context, project *domain.Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context, page domain.Page) ([]*domain.Project, int64, error)
	UpdateProject(ctx context.Context, project *domain.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type ProjectConfigPort interface {
	GetProjectConfig(ctx context.Context, projectID uuid.UUID) (*domain.ProjectConfig, error)
	PutProjectConfig(ctx context.Context, projectID uuid.UUID, document map[string]any, at time.Time) (*domain.ProjectConfig, error)
}

// StackCatalogPort answers which service stacks a project may be bound to.
type StackCatalogPort interface {
	Has(name string) bool
	Names() []string
}
