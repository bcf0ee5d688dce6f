package hub_db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

const credentialColumns = `id, project_id, name, key_prefix, key_hash, created_by, created_at, last_used_at, revoked_at`

func scanCredential(row pgx.Row) (*domain.APICredential, error) {
	var c domain.APICredential
	if err := row.Scan(&c.ID, &c.ProjectID, &c.Name, &c.KeyPrefix, &c.KeyHash,
		&c.CreatedBy, &c.CreatedAt, &c.LastUsedAt, &c.RevokedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *HubDBRepository) CreateCredential(ctx context.Context, c *domain.APICredential) error {
	query := `
		INSERT INTO api_credentials (id, project_id, name, key_prefix, key_hash, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q(ctx).Exec(ctx, query, c.ID, c.ProjectID, c.Name, c.KeyPrefix, c.KeyHash, c.CreatedBy, c.CreatedAt)
	if err != nil {
		return mapError(err, "create credential")
	}
	return nil
}

func (r *HubDBRepository) ListCredentials(ctx context.Context, projectID uuid.UUID) ([]*domain.APICredential, error) {
	query := `SELECT ` + credentialColumns + ` FROM api_credentials WHERE project_id = $1 ORDER BY created_at DESC`
	rows, err := r.q(ctx).Query(ctx, query, projectID)
	if err != nil {
		return nil, mapError(err, "list credentials")
	}
	defer rows.Close()

	creds := []*domain.APICredential{}
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, mapError(err, "scan credential")
		}
		creds = append(creds, c)
	}
	return creds, mapError(rows.Err(), "iterate credentials")
}

// GetCredentialByPrefix returns active and revoked keys alike; callers check Revoked.
func (r *HubDBRepository) GetCredentialByPrefix(ctx context.Context, prefix string) (*domain.APICredential, error) {
	query := `SELECT ` + credentialColumns + ` FROM api_credentials WHERE key_prefix = $1`
	c, err := scanCredential(r.q(ctx).QueryRow(ctx, query, prefix))
	if err != nil {
		return nil, mapError(err, "get credential by prefix")
	}
	return c, nil
}

// RevokeCredential marks the key revoked and returns its prefix.
func (r *HubDBRepository) RevokeCredential(ctx context.Context, projectID, id uuid.UUID, at time.Time) (string, error) {
	query := `
		UPDATE api_credentials SET revoked_at = $3
		WHERE id = $1 AND project_id = $2 AND revoked_at IS NULL
		RETURNING key_prefix
	`
	var prefix string
	if err := r.q(ctx).QueryRow(ctx, query, id, projectID, at).Scan(&prefix); err != nil {
		return "", mapError(err, "revoke credential")
	}
	return prefix, nil
}

func (r *HubDBRepository) TouchCredential(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE api_credentials SET last_used_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return mapError(err, "touch credential")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("touch credential: %w", apperrors.ErrNotFound)
	}
	return nil
}
