package auth_usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
	"gameshub/port/admin_port"
	"gameshub/port/oauth_port"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/security"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)

// dummyHash is compared against when the email is unknown so both paths cost one bcrypt run.
var dummyHash = sync.OnceValue(func() string {
	h, err := security.HashPassword("gameshub-unknown-admin")
	if err != nil {
		return ""
	}
	return h
})

type AuthUsecase struct {
	admins         admin_port.AdminPort
	tokens         admin_port.TokenPort
	oauth          oauth_port.OAuthPort
	allowedDomains []string
	now            func() time.Time
}

func NewAuthUsecase(admins admin_port.AdminPort, tokens admin_port.TokenPort, oauth oauth_port.OAuthPort, allowedDomains []string) *AuthUsecase {
	domains := make([]string, 0, len(allowedDomains))
	for _, d := range allowedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			domains = append(domains, strings.TrimPrefix(d, "@"))
		}
	}
	return &AuthUsecase{admins: admins, tokens: tokens, oauth: oauth, allowedDomains: domains, now: time.Now}
}

// Login checks an email and password. The error never reveals whether the email exists.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := u.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
		_ = security.CheckPassword(dummyHash(), password)
		slog.InfoContext(ctx, "admin login rejected", "reason", "unknown_email")
		return nil, errInvalidCredentials
	}

	if admin.PasswordHash == "" {
		_ = security.CheckPassword(dummyHash(), password)
		slog.InfoContext(ctx, "admin login rejected", "reason", "no_password", "admin_id", admin.ID)
		return nil, errInvalidCredentials
	}
	if err := security.CheckPassword(admin.PasswordHash, password); err != nil {
		slog.InfoContext(ctx, "admin login rejected", "reason", "password_mismatch", "admin_id", admin.ID)
		return nil, errInvalidCredentials
	}

	return u.issue(ctx, admin)
}

// OAuthStart returns the provider consent URL and the state the caller must
// keep in a cookie until the callback.
func (u *AuthUsecase) OAuthStart(ctx context.Context, provider string) (string, string, error) {
	state, err := u.tokens.IssueState(provider)
	if err != nil {
		return "", "", err
	}
	redirect, err := u.oauth.AuthCodeURL(provider, state)
	if err != nil {
		return "", "", err
	}
	return redirect, state, nil
}

// OAuthCallback finishes the flow. The identity must carry a verified email
// that belongs to an admin, or to an allowed domain, in which case an editor
// account is provisioned.
func (u *AuthUsecase) OAuthCallback(ctx context.Context, provider, code, state, cookieState string) (*domain.AuthToken, error) {
	if state == "" || subtle.ConstantTimeCompare([]byte(state), []byte(cookieState)) != 1 {
		return nil, fmt.Errorf("%w: oauth state mismatch", apperrors.ErrUnauthorized)
	}
	if err := u.tokens.VerifyState(provider, state); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", apperrors.ErrInvalidInput)
	}

	identity, err := u.oauth.Exchange(ctx, provider, code)
	if err != nil {
		return nil, err
	}
	if identity.Email == "" || !identity.EmailVerified {
		return nil, fmt.Errorf("%w: provider did not return a verified email", apperrors.ErrForbidden)
	}

	admin, err := u.admins.GetAdminByEmail(ctx, identity.Email)
	switch {
	case err == nil:
	case apperrors.IsNotFound(err):
		if !u.domainAllowed(identity.Email) {
			slog.WarnContext(ctx, "oauth login rejected", "provider", provider, "reason", "not_provisioned")
			return nil, fmt.Errorf("%w: no admin account for this email", apperrors.ErrForbidden)
		}
		admin, err = u.provision(ctx, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return u.issue(ctx, admin)
}

func (u *AuthUsecase) Me(ctx context.Context, adminID uuid.UUID) (*domain.AdminUser, error) {
	return u.admins.GetAdmin(ctx, adminID)
}

// CreateAdmin registers an operator. An empty password creates an OAuth-only
// account. The first admin ever created is always an owner.
func (u *AuthUsecase) CreateAdmin(ctx context.Context, email, name string, role domain.AdminRole, password string) (*domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidInput, role)
	}

	count, err := u.admins.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 && role != domain.RoleOwner {
		slog.InfoContext(ctx, "first admin promoted to owner", "email", email)
		role = domain.RoleOwner
	}

	admin := &domain.AdminUser{
		ID:        uuid.New(),
		Email:     email,
		Name:      strings.TrimSpace(name),
		Role:      role,
		Provider:  "password",
		CreatedAt: u.now(),
	}
	if password == "" {
		admin.Provider = "oauth"
	} else {
		hash, err := security.HashPassword(password)
		if err != nil {
			if errors.Is(err, security.ErrPasswordLength) {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
			}
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := u.admins.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (u *AuthUsecase) provision(ctx context.Context, identity *domain.OAuthIdentity) (*domain.AdminUser, error) {
	admin := &domain.AdminUser{
		ID:        uuid.New(),
		Email:     identity.Email,
		Name:      identity.Name,
		Role:      domain.RoleEditor,
		Provider:  identity.Provider,
		CreatedAt: u.now(),
	}
	if err := u.admins.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "admin provisioned from oauth", "admin_id", admin.ID, "provider", identity.Provider)
	return admin, nil
}

func (u *AuthUsecase) issue(ctx context.Context, admin *domain.AdminUser) (*domain.AuthToken, error) {
	token, expiresAt, err := u.tokens.IssueAdminToken(admin)
	if err != nil {
		return nil, err
	}

	now := u.now()
	if err := u.admins.TouchAdminLogin(ctx, admin.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record admin login", "admin_id", admin.ID, "error", err)
	} else {
		admin.LastLoginAt = &now
	}

	return &domain.AuthToken{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt, Admin: admin}, nil
}

func (u *AuthUsecase) domainAllowed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	host := email[at+1:]
	for _, d := range u.allowedDomains {
		if strings.EqualFold(host, d) {
			return true
		}
	}
	return false
}
