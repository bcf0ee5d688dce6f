package security

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLValidator_ValidateFeedURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "public https feed", url: "https://news.example.com/rss.xml"},
		{name: "public http feed with port", url: "http://news.example.com:8080/feed"},
		{name: "empty", url: "  ", wantErr: ErrEmptyURL},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", 2100), wantErr: ErrURLTooLong},
		{name: "ftp scheme", url: "ftp://example.com/feed", wantErr: ErrUnsupportedScheme},
		{name: "no host", url: "https:///feed", wantErr: ErrMalformedURL},
		{name: "userinfo", url: "https://user:pw@example.com/feed", wantErr: ErrMalformedURL},
		{name: "localhost", url: "http://localhost/feed", wantErr: ErrPrivateNetwork},
		{name: "loopback ip", url: "http://127.0.0.1:9000/feed", wantErr: ErrPrivateNetwork},
		{name: "private ip", url: "http://10.1.2.3/feed", wantErr: ErrPrivateNetwork},
		{name: "ipv6 loopback", url: "http://[::1]/feed", wantErr: ErrPrivateNetwork},
		{name: "metadata", url: "http://169.254.169.254/latest", wantErr: ErrPrivateNetwork},
		{name: "internal domain", url: "http://feeds.svc.cluster.local/rss", wantErr: ErrPrivateNetwork},
	}

	v := NewURLValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFeedURL(tt.url)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestURLValidator_Permissive(t *testing.T) {
	v := NewPermissiveURLValidator()
	assert.NoError(t, v.ValidateFeedURL("http://127.0.0.1:34567/rss"))
	assert.ErrorIs(t, v.ValidateFeedURL("file:///etc/passwd"), ErrUnsupportedScheme)
	assert.NoError(t, v.DialControl("tcp", "127.0.0.1:80", nil))
}

func TestURLValidator_DialControl(t *testing.T) {
	v := NewURLValidator()
	assert.NoError(t, v.DialControl("tcp", "93.184.216.34:443", nil))
	assert.ErrorIs(t, v.DialControl("tcp", "10.0.0.5:443", nil), ErrPrivateNetwork)
	assert.ErrorIs(t, v.DialControl("tcp", "[::1]:443", nil), ErrPrivateNetwork)
	assert.Error(t, v.DialControl("tcp", "no-port", nil))

	dial := v.DialContext(&net.Dialer{})
	assert.NotNil(t, dial)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "correct horse battery"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong password"), ErrPasswordMismatch)

	_, err = HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordLength)
	_, err = HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordLength)
}

func TestAPIKeys(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key.Plaintext, "ghk_"+key.Prefix+"_"))
	assert.Len(t, key.Prefix, 8)
	assert.Equal(t, HashAPIKey(key.Plaintext), key.Hash)

	prefix, err := ParseAPIKeyPrefix(key.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, key.Prefix, prefix)

	assert.True(t, APIKeyMatches(key.Plaintext, key.Hash))
	assert.False(t, APIKeyMatches(key.Plaintext+"x", key.Hash))

	other, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key.Plaintext, other.Plaintext)

	for _, bad := range []string{"", "ghk_short_x", "abc_12345678_" + strings.Repeat("a", 32), "ghk_12345678"} {
		_, err := ParseAPIKeyPrefix(bad)
		assert.ErrorIs(t, err, ErrMalformedAPIKey, bad)
	}
}
