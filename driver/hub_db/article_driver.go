package hub_db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gameshub/domain"
)

const articleColumns = `id, feed_id, project_id, dedupe_key, guid, link, title, description, content,
	author, image_url, categories, published_at, created_at`

func scanArticle(row pgx.Row) (*domain.FeedArticle, error) {
	var a domain.FeedArticle
	if err := row.Scan(&a.ID, &a.FeedID, &a.ProjectID, &a.DedupeKey, &a.GUID, &a.Link, &a.Title, &a.Description,
		&a.Content, &a.Author, &a.ImageURL, &a.Categories, &a.PublishedAt, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]*domain.FeedArticle, error) {
	defer rows.Close()

	articles := []*domain.FeedArticle{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// InsertArticles stores the batch and returns only rows that did not exist
// before. Existing (feed_id, dedupe_key) pairs are silently skipped.
func (r *HubDBRepository) InsertArticles(ctx context.Context, articles []*domain.FeedArticle) ([]*domain.FeedArticle, error) {
	if len(articles) == 0 {
		return []*domain.FeedArticle{}, nil
	}

	query := `
		INSERT INTO feed_articles (id, feed_id, project_id, dedupe_key, guid, link, title, description, content,
			author, image_url, categories, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (feed_id, dedupe_key) DO NOTHING
		RETURNING id
	`

	created := make([]*domain.FeedArticle, 0, len(articles))
	err := r.RunInTx(ctx, func(ctx context.Context) error {
		for _, a := range articles {
			categories := a.Categories
			if categories == nil {
				categories = []string{}
			}

			var id uuid.UUID
			err := r.q(ctx).QueryRow(ctx, query,
				a.ID, a.FeedID, a.ProjectID, a.DedupeKey, a.GUID, a.Link, a.Title, a.Description, a.Content,
				a.Author, a.ImageURL, categories, a.PublishedAt, a.CreatedAt).Scan(&id)
			if err == pgx.ErrNoRows {
				continue
			}
			if err != nil {
				return mapError(err, fmt.Sprintf("insert article %s", a.DedupeKey))
			}
			created = append(created, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *HubDBRepository) GetArticle(ctx context.Context, projectID, id uuid.UUID) (*domain.FeedArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM feed_articles WHERE id = $1 AND project_id = $2`
	a, err := scanArticle(r.q(ctx).QueryRow(ctx, query, id, projectID))
	if err != nil {
		return nil, mapError(err, "get article")
	}
	return a, nil
}

func (r *HubDBRepository) ListFeedArticles(ctx context.Context, feedID uuid.UUID, page domain.Page) ([]*domain.FeedArticle, int64, error) {
	var total int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM feed_articles WHERE feed_id = $1`, feedID).Scan(&total); err != nil {
		return nil, 0, mapError(err, "count feed articles")
	}

	query := `SELECT ` + articleColumns + ` FROM feed_articles WHERE feed_id = $1
		ORDER BY COALESCE(published_at, created_at) DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q(ctx).Query(ctx, query, feedID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, mapError(err, "list feed articles")
	}
	articles, err := collectArticles(rows)
	if err != nil {
		return nil, 0, mapError(err, "scan feed articles")
	}
	return articles, total, nil
}

func (r *HubDBRepository) ListProjectArticles(ctx context.Context, projectID uuid.UUID, page domain.Page) ([]*domain.FeedArticle, int64, error) {
	var total int64
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM feed_articles WHERE project_id = $1`, projectID).Scan(&total); err != nil {
		return nil, 0, mapError(err, "count project articles")
	}

	query := `SELECT ` + articleColumns + ` FROM feed_articles WHERE project_id = $1
		ORDER BY COALESCE(published_at, created_at) DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q(ctx).Query(ctx, query, projectID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, mapError(err, "list project articles")
	}
	articles, err := collectArticles(rows)
	if err != nil {
		return nil, 0, mapError(err, "scan project articles")
	}
	return articles, total, nil
}
