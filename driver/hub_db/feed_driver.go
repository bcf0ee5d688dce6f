package hub_db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

const maxErrorBytes = 1000

const feedColumns = `id, project_id, title, url, interval_minutes, enabled, game_settings,
	last_fetched_at, last_success_at, consecutive_failures, last_error, created_at, updated_at`

func scanFeed(row pgx.Row) (*domain.Feed, error) {
	var f domain.Feed
	var settings []byte
	if err := row.Scan(&f.ID, &f.ProjectID, &f.Title, &f.URL, &f.IntervalMinutes, &f.Enabled, &settings,
		&f.LastFetchedAt, &f.LastSuccessAt, &f.ConsecutiveFailures, &f.LastError, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &f.GameSettings); err != nil {
			return nil, fmt.Errorf("decode game settings: %w", err)
		}
	}
	return &f, nil
}

func collectFeeds(rows pgx.Rows) ([]*domain.Feed, error) {
	defer rows.Close()

	feeds := []*domain.Feed{}
	for rows.Next() {
		f, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, f)
	}
	return feeds, rows.Err()
}

func (r *HubDBRepository) CreateFeed(ctx context.Context, f *domain.Feed) error {
	settings, err := json.Marshal(f.GameSettings)
	if err != nil {
		return fmt.Errorf("encode game settings: %w", err)
	}

	query := `
		INSERT INTO feeds (id, project_id, title, url, interval_minutes, enabled, game_settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.q(ctx).Exec(ctx, query,
		f.ID, f.ProjectID, f.Title, f.URL, f.IntervalMinutes, f.Enabled, settings, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create feed", "error", err, "url", f.URL)
		return mapError(err, "create feed")
	}
	return nil
}

func (r *HubDBRepository) GetFeed(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE id = $1`
	f, err := scanFeed(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "get feed")
	}
	return f, nil
}

func (r *HubDBRepository) ListFeeds(ctx context.Context, projectID uuid.UUID, page domain.Page) ([]*domain.Feed, int64, error) {
	var total int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM feeds WHERE project_id = $1`, projectID).Scan(&total); err != nil {
		return nil, 0, mapError(err, "count feeds")
	}

	query := `SELECT ` + feedColumns + ` FROM feeds WHERE project_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q(ctx).Query(ctx, query, projectID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, mapError(err, "list feeds")
	}
	feeds, err := collectFeeds(rows)
	if err != nil {
		return nil, 0, mapError(err, "scan feeds")
	}
	return feeds, total, nil
}

// ListEnabledFeeds returns every enabled feed across all projects.
func (r *HubDBRepository) ListEnabledFeeds(ctx context.Context) ([]*domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE enabled ORDER BY created_at`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "list enabled feeds")
	}
	feeds, err := collectFeeds(rows)
	if err != nil {
		return nil, mapError(err, "scan enabled feeds")
	}
	return feeds, nil
}

func (r *HubDBRepository) UpdateFeed(ctx context.Context, f *domain.Feed) error {
	settings, err := json.Marshal(f.GameSettings)
	if err != nil {
		return fmt.Errorf("encode game settings: %w", err)
	}

	query := `
		UPDATE feeds
		SET title = $2, url = $3, interval_minutes = $4, enabled = $5, game_settings = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.q(ctx).Exec(ctx, query,
		f.ID, f.Title, f.URL, f.IntervalMinutes, f.Enabled, settings, f.UpdatedAt)
	if err != nil {
		return mapError(err, "update feed")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update feed: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *HubDBRepository) DeleteFeed(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM feeds WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete feed")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete feed: %w", apperrors.ErrNotFound)
	}
	return nil
}

// RecordFetchOutcome writes the result of an import run and returns the
// resulting consecutive failure count. When disableAfter > 0 and the count
// reaches it, the feed is disabled in the same statement.
func (r *HubDBRepository) RecordFetchOutcome(ctx context.Context, feedID uuid.UUID, outcome domain.FetchOutcome, disableAfter int) (int, bool, error) {
	var query string
	var args []any
	if outcome.Err == nil {
		query = `
			UPDATE feeds
			SET last_fetched_at = $2, last_success_at = $2, consecutive_failures = 0, last_error = ''
			WHERE id = $1
			RETURNING consecutive_failures, enabled
		`
		args = []any{feedID, outcome.FetchedAt}
	} else {
		query = `
			UPDATE feeds
			SET last_fetched_at = $2,
			    consecutive_failures = consecutive_failures + 1,
			    last_error = $3,
			    enabled = CASE WHEN $4::int > 0 AND consecutive_failures + 1 >= $4::int THEN FALSE ELSE enabled END
			WHERE id = $1
			RETURNING consecutive_failures, enabled
		`
		args = []any{feedID, outcome.FetchedAt, truncateError(outcome.Err.Error()), disableAfter}
	}

	var failures int
	var enabled bool
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&failures, &enabled); err != nil {
		return 0, false, mapError(err, "record fetch outcome")
	}
	return failures, enabled, nil
}

// truncateError caps stored error text at maxErrorBytes without splitting a
// UTF-8 sequence, since TEXT columns reject invalid encodings.
func truncateError(msg string) string {
	if len(msg) <= maxErrorBytes {
		return msg
	}
	n := maxErrorBytes
	for n > 0 && !utf8.RuneStart(msg[n]) {
		n--
	}
	return msg[:n]
}
