package hub_db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

const adminColumns = `id, email, name, role, password_hash, provider, created_at, last_login_at`

func scanAdmin(row pgx.Row) (*domain.AdminUser, error) {
	var a domain.AdminUser
	var role string
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &role, &a.PasswordHash, &a.Provider, &a.CreatedAt, &a.LastLoginAt); err != nil {
		return nil, err
	}
	a.Role = domain.AdminRole(role)
	return &a, nil
}

func (r *HubDBRepository) CreateAdmin(ctx context.Context, a *domain.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, name, role, password_hash, provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q(ctx).Exec(ctx, query,
		a.ID, strings.ToLower(a.Email), a.Name, string(a.Role), a.PasswordHash, a.Provider, a.CreatedAt)
	if err != nil {
		return mapError(err, "create admin")
	}
	return nil
}

func (r *HubDBRepository) GetAdminByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1`
	a, err := scanAdmin(r.q(ctx).QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		return nil, mapError(err, "get admin by email")
	}
	return a, nil
}

func (r *HubDBRepository) GetAdmin(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`
	a, err := scanAdmin(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "get admin")
	}
	return a, nil
}

func (r *HubDBRepository) TouchAdminLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE admin_users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return mapError(err, "touch admin login")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("touch admin login: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *HubDBRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&n); err != nil {
		return 0, mapError(err, "count admins")
	}
	return n, nil
}
