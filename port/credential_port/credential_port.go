package credential_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=credential_port.go -destination=../../mocks/mock_credential_port.go -package=mocks

type CredentialPort interface {
	CreateCredential(ctx context.Context, credential *domain.APICredential) error
	ListCredentials(ctx context.Context, projectID uuid.UUID) ([]*domain.APICredential, error)
	GetCredentialByPrefix(ctx context.Context, prefix string) (*domain.APICredential, error)
	// RevokeCredential returns the key prefix of the revoked credential.
	RevokeCredential(ctx context.Context, projectID, id uuid.UUID, at time.Time) (string, error)
	TouchCredential(ctx context.Context, id uuid.UUID, at time.Time) error
}
