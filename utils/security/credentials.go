package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the work factor for admin passwords.
	BcryptCost = 12

	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordLength = 72

	apiKeyScheme    = "ghk"
	apiKeyPrefixLen = 8
	apiKeySecretLen = 32
)

var (
	ErrPasswordLength   = fmt.Errorf("password must be between %d and %d bytes", MinPasswordLength, MaxPasswordLength)
	ErrMalformedAPIKey  = errors.New("malformed api key")
	ErrPasswordMismatch = errors.New("password mismatch")
)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return "", ErrPasswordLength
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with a bcrypt hash.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// GeneratedAPIKey is returned once to the caller; only Prefix and Hash are stored.
type GeneratedAPIKey struct {
	Plaintext string
	Prefix    string
	Hash      string
}

// GenerateAPIKey creates a key of the form ghk_<prefix>_<secret>.
func GenerateAPIKey() (*GeneratedAPIKey, error) {
	prefix, err := randomHex(apiKeyPrefixLen / 2)
	if err != nil {
		return nil, err
	}
	secret, err := randomHex(apiKeySecretLen / 2)
	if err != nil {
		return nil, err
	}

	plaintext := fmt.Sprintf("%s_%s_%s", apiKeyScheme, prefix, secret)
	return &GeneratedAPIKey{
		Plaintext: plaintext,
		Prefix:    prefix,
		Hash:      HashAPIKey(plaintext),
	}, nil
}

// ParseAPIKeyPrefix extracts the lookup prefix from a presented key.
func ParseAPIKeyPrefix(key string) (string, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 3 || parts[0] != apiKeyScheme ||
		len(parts[1]) != apiKeyPrefixLen || len(parts[2]) != apiKeySecretLen {
		return "", ErrMalformedAPIKey
	}
	return parts[1], nil
}

// HashAPIKey returns the hex sha256 of the key. Keys are high-entropy, so a
// fast hash is sufficient and keeps per-request verification cheap.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// APIKeyMatches compares a presented key with a stored hash in constant time.
func APIKeyMatches(key, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashAPIKey(key)), []byte(storedHash)) == 1
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
