// Package token_gateway signs admin access tokens and OAuth state values with HS256.
package token_gateway

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gameshub/config"
	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

const stateAudience = "oauth-state"

type adminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type TokenGateway struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	stateTTL time.Duration
	now      func() time.Time
}

func NewTokenGateway(auth config.AuthConfig, oauth config.OAuthConfig) *TokenGateway {
	return &TokenGateway{
		secret:   []byte(auth.JWTSecret),
		issuer:   auth.Issuer,
		audience: auth.Audience,
		ttl:      auth.TokenTTL,
		stateTTL: oauth.StateTTL,
		now:      time.Now,
	}
}

func (g *TokenGateway) IssueAdminToken(admin *domain.AdminUser) (string, time.Time, error) {
	now := g.now()
	expiresAt := now.Add(g.ttl)
	claims := adminClaims{
		Email: admin.Email,
		Role:  string(admin.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Audience:  jwt.ClaimStrings{g.audience},
			Subject:   admin.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}
	return signed, expiresAt, nil
}

func (g *TokenGateway) ParseAdminToken(token string) (*domain.AdminClaims, error) {
	claims := &adminClaims{}
	if err := g.parse(token, claims, g.audience); err != nil {
		return nil, err
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", apperrors.ErrUnauthorized)
	}
	role := domain.AdminRole(claims.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role", apperrors.ErrUnauthorized)
	}
	return &domain.AdminClaims{AdminID: adminID, Email: claims.Email, Role: role}, nil
}

// IssueState returns a short-lived signed value bound to provider.
func (g *TokenGateway) IssueState(provider string) (string, error) {
	now := g.now()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Audience:  jwt.ClaimStrings{stateAudience},
		Subject:   provider,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.stateTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign oauth state: %w", err)
	}
	return signed, nil
}

func (g *TokenGateway) VerifyState(provider, state string) error {
	claims := &jwt.RegisteredClaims{}
	if err := g.parse(state, claims, stateAudience); err != nil {
		return err
	}
	if claims.Subject != provider {
		return fmt.Errorf("%w: state issued for another provider", apperrors.ErrUnauthorized)
	}
	return nil
}

func (g *TokenGateway) parse(token string, claims jwt.Claims, audience string) error {
	if token == "" {
		return fmt.Errorf("%w: missing token", apperrors.ErrUnauthorized)
	}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}
	return nil
}
