package article_port

import (
	"context"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=article_port.go -destination=../../mocks/mock_article_port.go -package=mocks

type ArticlePort interface {
	// InsertArticles stores the batch and returns only rows that did not exist yet.
	InsertArticles(ctx context.Context, articles []*domain.FeedArticle) ([]*domain.FeedArticle, error)
	GetArticle(ctx context.Context, projectID, id uuid.UUID) (*domain.FeedArticle, error)
	ListFeedArticles(ctx context.Context, feedID uuid.UUID, page domain.Page) ([]*domain.FeedArticle, int64, error)
	ListProjectArticles(ctx context.Context, projectID uuid.UUID, page domain.Page) ([]*domain.FeedArticle, int64, error)
}
