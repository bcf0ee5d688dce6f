package oauth_port

import (
	"context"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=oauth_port.go -destination=../../mocks/mock_oauth_port.go -package=mocks

type OAuthPort interface {
	Providers() []string
	AuthCodeURL(provider, state string) (string, error)
	Exchange(ctx context.Context, provider, code string) (*domain.OAuthIdentity, error)
}
