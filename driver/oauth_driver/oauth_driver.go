// Package oauth_driver runs the authorization code flow against Google and Keycloak.
package oauth_driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gameshub/config"
	"gameshub/domain"
)

const (
	ProviderGoogle   = "google"
	ProviderKeycloak = "keycloak"

	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

var ErrUnknownProvider = errors.New("oauth provider not configured")

// ProviderEndpoints describes one OAuth provider.
type ProviderEndpoints struct {
	Config      *oauth2.Config
	UserInfoURL string
}

type OAuthDriver struct {
	providers  map[string]ProviderEndpoints
	httpClient *http.Client
}

func NewOAuthDriver(providers map[string]ProviderEndpoints, httpClient *http.Client) *OAuthDriver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OAuthDriver{providers: providers, httpClient: httpClient}
}

// ProvidersFromConfig builds endpoints for each provider with a client ID.
func ProvidersFromConfig(cfg config.OAuthConfig) map[string]ProviderEndpoints {
	providers := map[string]ProviderEndpoints{}
	callback := func(name string) string {
		return strings.TrimRight(cfg.RedirectBaseURL, "/") + "/admin/v1/auth/oauth/" + name + "/callback"
	}
	scopes := []string{"openid", "email", "profile"}

	if cfg.Google.ClientID != "" {
		providers[ProviderGoogle] = ProviderEndpoints{
			Config: &oauth2.Config{
				ClientID:     cfg.Google.ClientID,
				ClientSecret: cfg.Google.ClientSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  callback(ProviderGoogle),
				Scopes:       scopes,
			},
			UserInfoURL: googleUserInfoURL,
		}
	}

	if kc := cfg.Keycloak; kc.ClientID != "" && kc.BaseURL != "" && kc.Realm != "" {
		base := strings.TrimRight(kc.BaseURL, "/") + "/realms/" + kc.Realm + "/protocol/openid-connect"
		providers[ProviderKeycloak] = ProviderEndpoints{
			Config: &oauth2.Config{
				ClientID:     kc.ClientID,
				ClientSecret: kc.ClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  base + "/auth",
					TokenURL: base + "/token",
				},
				RedirectURL: callback(ProviderKeycloak),
				Scopes:      scopes,
			},
			UserInfoURL: base + "/userinfo",
		}
	}

	return providers
}

// Providers lists configured provider names.
func (d *OAuthDriver) Providers() []string {
	names := make([]string, 0, len(d.providers))
	for name := range d.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AuthCodeURL returns the provider's consent URL carrying state.
func (d *OAuthDriver) AuthCodeURL(provider, state string) (string, error) {
	p, ok := d.providers[provider]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

type userInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified any    `json:"email_verified"`
	Name          string `json:"name"`
}

// Exchange trades the authorization code for a token and reads the user's identity.
func (d *OAuthDriver) Exchange(ctx context.Context, provider, code string) (*domain.OAuthIdentity, error) {
	p, ok := d.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, d.httpClient)
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.Config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, string(body))
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}

	return &domain.OAuthIdentity{
		Provider:      provider,
		Subject:       info.Subject,
		Email:         strings.ToLower(strings.TrimSpace(info.Email)),
		EmailVerified: isTrue(info.EmailVerified),
		Name:          info.Name,
	}, nil
}

// isTrue accepts both boolean and string encodings of email_verified.
func isTrue(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	}
	return false
}
