package oauth_gateway

import (
	"context"
	"errors"
	"fmt"

	"gameshub/domain"
	"gameshub/driver/oauth_driver"
	apperrors "gameshub/utils/errors"
)

type OAuthGateway struct {
	driver *oauth_driver.OAuthDriver
}

func NewOAuthGateway(driver *oauth_driver.OAuthDriver) *OAuthGateway {
	return &OAuthGateway{driver: driver}
}

func (g *OAuthGateway) Providers() []string {
	return g.driver.Providers()
}

func (g *OAuthGateway) AuthCodeURL(provider, state string) (string, error) {
	u, err := g.driver.AuthCodeURL(provider, state)
	if err != nil {
		return "", mapError(err, "AuthCodeURL", provider)
	}
	return u, nil
}

func (g *OAuthGateway) Exchange(ctx context.Context, provider, code string) (*domain.OAuthIdentity, error) {
	identity, err := g.driver.Exchange(ctx, provider, code)
	if err != nil {
		return nil, mapError(err, "Exchange", provider)
	}
	return identity, nil
}

func mapError(err error, op, provider string) error {
	if errors.Is(err, oauth_driver.ErrUnknownProvider) {
		return apperrors.NewNotFoundContextError(fmt.Sprintf("oauth provider %q is not configured", provider),
			"gateway", "OAuthGateway", op, map[string]interface{}{"provider": provider})
	}
	return apperrors.NewAppContextError(apperrors.CodeUnauthorized, "oauth login failed", "gateway", "OAuthGateway", op,
		fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err), map[string]interface{}{"provider": provider})
}
