package domain

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	RoleOwner  AdminRole = "owner"
	RoleAdmin  AdminRole = "admin"
	RoleEditor AdminRole = "editor"
)

func (r AdminRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// CanManage reports whether the role may create projects and credentials.
// Editors only manage feeds and games.
func (r AdminRole) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

type AdminUser struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         AdminRole  `json:"role"`
	PasswordHash string     `json:"-"`
	Provider     string     `json:"provider"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// AuthToken is the result of a successful login.
type AuthToken struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresAt   time.Time  `json:"expires_at"`
	Admin       *AdminUser `json:"admin"`
}

// AdminClaims are the identity fields carried by an admin token.
type AdminClaims struct {
	AdminID uuid.UUID
	Email   string
	Role    AdminRole
}

// OAuthIdentity is what an OAuth provider tells us about the user.
type OAuthIdentity struct {
	Provider      string
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}
