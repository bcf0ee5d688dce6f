package domain

import (
	"time"

	"github.com/google/uuid"
)

// APICredential is a dev API key. Only the prefix and hash are persisted.
type APICredential struct {
	ID         uuid.UUID  `json:"id"`
	ProjectID  uuid.UUID  `json:"project_id"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	KeyHash    string     `json:"-"`
	CreatedBy  *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

func (c *APICredential) Revoked() bool {
	return c.RevokedAt != nil
}

// IssuedCredential is returned once, when the key is created.
type IssuedCredential struct {
	Credential *APICredential `json:"credential"`
	APIKey     string         `json:"api_key"`
}
