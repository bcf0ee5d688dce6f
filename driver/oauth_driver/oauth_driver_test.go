package oauth_driver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"gameshub/config"
)

func newProviderServer(t *testing.T, userinfo string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userinfo))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testDriver(srv *httptest.Server) *OAuthDriver {
	return NewOAuthDriver(map[string]ProviderEndpoints{
		ProviderKeycloak: {
			Config: &oauth2.Config{
				ClientID:     "hub",
				ClientSecret: "secret",
				Endpoint:     oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"},
				RedirectURL:  "http://hub/callback",
				Scopes:       []string{"openid", "email"},
			},
			UserInfoURL: srv.URL + "/userinfo",
		},
	}, srv.Client())
}

func TestExchange(t *testing.T) {
	srv := newProviderServer(t, `{"sub":"u-1","email":"Ops@Example.com","email_verified":true,"name":"Ops"}`)

	identity, err := testDriver(srv).Exchange(context.Background(), ProviderKeycloak, "the-code")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.Subject)
	assert.Equal(t, "ops@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, ProviderKeycloak, identity.Provider)
}

func TestExchange_StringVerifiedFlag(t *testing.T) {
	srv := newProviderServer(t, `{"sub":"u-2","email":"a@example.com","email_verified":"false"}`)

	identity, err := testDriver(srv).Exchange(context.Background(), ProviderKeycloak, "the-code")
	require.NoError(t, err)
	assert.False(t, identity.EmailVerified)
}

func TestAuthCodeURL(t *testing.T) {
	srv := newProviderServer(t, `{}`)
	d := testDriver(srv)

	raw, err := d.AuthCodeURL(ProviderKeycloak, "st4te")
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "st4te", u.Query().Get("state"))
	assert.Equal(t, "hub", u.Query().Get("client_id"))

	_, err = d.AuthCodeURL("github", "x")
	assert.True(t, errors.Is(err, ErrUnknownProvider))
}

func TestProvidersFromConfig(t *testing.T) {
	providers := ProvidersFromConfig(config.OAuthConfig{
		RedirectBaseURL: "https://hub.example.com/",
		Google:          config.ProviderConfig{ClientID: "g-id", ClientSecret: "g-secret"},
		Keycloak:        config.KeycloakConfig{BaseURL: "https://sso.example.com", Realm: "staff", ClientID: "kc"},
	})

	require.Contains(t, providers, ProviderGoogle)
	require.Contains(t, providers, ProviderKeycloak)
	assert.Equal(t, "https://hub.example.com/admin/v1/auth/oauth/google/callback", providers[ProviderGoogle].Config.RedirectURL)
	assert.Equal(t, "https://sso.example.com/realms/staff/protocol/openid-connect/token", providers[ProviderKeycloak].Config.Endpoint.TokenURL)
	assert.Equal(t, []string{"google", "keycloak"}, NewOAuthDriver(providers, nil).Providers())
}
