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

const gameColumns = `id, project_id, article_id, game_type, status, payload, provider, model, created_at, updated_at`

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	var gameType, status string
	var payload []byte
	if err := row.Scan(&g.ID, &g.ProjectID, &g.ArticleID, &gameType, &status, &payload,
		&g.Provider, &g.Model, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Type = domain.GameType(gameType)
	g.Status = domain.GameStatus(status)
	g.Payload = payload
	return &g, nil
}

func collectGames(rows pgx.Rows) ([]*domain.Game, error) {
	defer rows.Close()

	games := []*domain.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// UpsertGame stores a generated game. A regenerated game replaces the
// payload and goes back to draft.
// UpsertGame stores a generated game, replacing the payload of an existing
// game of the same type for the article. A published game stays published.
func (r *HubDBRepository) UpsertGame(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	query := `
		INSERT INTO games (id, project_id, article_id, game_type, status, payload, provider, model, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (article_id, game_type) DO UPDATE
		SET payload = EXCLUDED.payload,
		    provider = EXCLUDED.provider,
		    model = EXCLUDED.model,
		    status = CASE WHEN games.status = 'published' THEN games.status ELSE EXCLUDED.status END,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + gameColumns

	stored, err := scanGame(r.q(ctx).QueryRow(ctx, query,
		g.ID, g.ProjectID, g.ArticleID, string(g.Type), string(g.Status), []byte(g.Payload), g.Provider, g.Model, g.CreatedAt))
	if err != nil {
		return nil, mapError(err, "upsert game")
	}
	return stored, nil
}

func (r *HubDBRepository) GetGame(ctx context.Context, projectID, id uuid.UUID) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1 AND project_id = $2`
	g, err := scanGame(r.q(ctx).QueryRow(ctx, query, id, projectID))
	if err != nil {
		return nil, mapError(err, "get game")
	}
	return g, nil
}

func (r *HubDBRepository) ListGames(ctx context.Context, projectID uuid.UUID, filter domain.GameFilter, page domain.Page) ([]*domain.Game, int64, error) {
	where := `project_id = $1
		AND ($2::uuid IS NULL OR article_id = $2)
		AND ($3::text = '' OR game_type = $3::text)
		AND ($4::text = '' OR status = $4::text)`
	args := []any{projectID, filter.ArticleID, string(filter.Type), string(filter.Status)}

	var total int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM games WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "count games")
	}

	query := `SELECT ` + gameColumns + ` FROM games WHERE ` + where + ` ORDER BY created_at DESC LIMIT $5 OFFSET $6`
	rows, err := r.q(ctx).Query(ctx, query, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		return nil, 0, mapError(err, "list games")
	}
	games, err := collectGames(rows)
	if err != nil {
		return nil, 0, mapError(err, "scan games")
	}
	return games, total, nil
}

// ListArticleGames returns the games of one article with the given status.
func (r *HubDBRepository) ListArticleGames(ctx context.Context, projectID, articleID uuid.UUID, status domain.GameStatus) ([]*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE project_id = $1 AND article_id = $2 AND status = $3 ORDER BY game_type`
	rows, err := r.q(ctx).Query(ctx, query, projectID, articleID, string(status))
	if err != nil {
		return nil, mapError(err, "list article games")
	}
	games, err := collectGames(rows)
	if err != nil {
		return nil, mapError(err, "scan article games")
	}
	return games, nil
}

func (r *HubDBRepository) GetArticleGame(ctx context.Context, projectID, articleID uuid.UUID, gameType domain.GameType, status domain.GameStatus) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE project_id = $1 AND article_id = $2 AND game_type = $3 AND status = $4`
	g, err := scanGame(r.q(ctx).QueryRow(ctx, query, projectID, articleID, string(gameType), string(status)))
	if err != nil {
		return nil, mapError(err, "get article game")
	}
	return g, nil
}

func (r *HubDBRepository) SetGameStatus(ctx context.Context, projectID, id uuid.UUID, status domain.GameStatus, at time.Time) (*domain.Game, error) {
	query := `UPDATE games SET status = $3, updated_at = $4 WHERE id = $1 AND project_id = $2 RETURNING ` + gameColumns
	g, err := scanGame(r.q(ctx).QueryRow(ctx, query, id, projectID, string(status), at))
	if err != nil {
		return nil, mapError(err, "set game status")
	}
	return g, nil
}

func (r *HubDBRepository) DeleteGame(ctx context.Context, projectID, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM games WHERE id = $1 AND project_id = $2`, id, projectID)
	if err != nil {
		return mapError(err, "delete game")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete game: %w", apperrors.ErrNotFound)
	}
	return nil
}
