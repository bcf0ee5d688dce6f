package admin_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=admin_port.go -destination=../../mocks/mock_admin_port.go -package=mocks

type AdminPort interface {
	CreateAdmin(ctx context.Context, admin *domain.AdminUser) error
	GetAdminByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
	TouchAdminLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	CountAdmins(ctx context.Context) (int64, error)
}

// TokenPort signs and verifies admin access tokens and OAuth state values.
type TokenPort interface {
	IssueAdminToken(admin *domain.AdminUser) (string, time.Time, error)
	ParseAdminToken(token string) (*domain.AdminClaims, error)
	IssueState(provider string) (string, error)
	VerifyState(provider, state string) error
}
