package search_port

import (
	"context"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=search_port.go -destination=../../mocks/mock_search_port.go -package=mocks

// SearchPort indexes and queries articles in the project's service stack.
type SearchPort interface {
	IndexArticles(ctx context.Context, project *domain.Project, articles []*domain.FeedArticle) error
	SearchArticles(ctx context.Context, project *domain.Project, query string, page domain.Page) ([]domain.SearchHit, int64, error)
}
