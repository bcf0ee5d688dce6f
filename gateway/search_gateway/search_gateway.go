package search_gateway

import (
	"context"
	"log/slog"
	"sync"

	"gameshub/domain"
	"gameshub/driver/search_driver"
	"gameshub/driver/stack_registry"
	apperrors "gameshub/utils/errors"
)

// SearchGateway routes article indexing and search to the Meilisearch of the
// project's service stack.
type SearchGateway struct {
	registry *stack_registry.Registry
	// indexes whose filterable attributes were already declared
	prepared sync.Map
}

func NewSearchGateway(registry *stack_registry.Registry) *SearchGateway {
	return &SearchGateway{registry: registry}
}

func (g *SearchGateway) IndexArticles(ctx context.Context, project *domain.Project, articles []*domain.FeedArticle) error {
	if len(articles) == 0 {
		return nil
	}

	driver, prefix, err := g.registry.Search(project.ServiceStack)
	if err != nil {
		return apperrors.Classify(err, "gateway", "SearchGateway", "IndexArticles")
	}
	indexUID := search_driver.IndexName(prefix, project.ID.String())

	docs := make([]search_driver.ArticleDocument, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, toDocument(a))
	}

	if err := driver.IndexArticles(ctx, indexUID, docs); err != nil {
		return apperrors.NewExternalAPIContextError("failed to index articles", "gateway", "SearchGateway", "IndexArticles", err,
			map[string]interface{}{"index": indexUID, "count": len(docs)})
	}

	if _, done := g.prepared.Load(indexUID); !done {
		if err := driver.EnsureFilterable(ctx, indexUID); err != nil {
			slog.WarnContext(ctx, "failed to set filterable attributes", "index", indexUID, "error", err)
		} else {
			g.prepared.Store(indexUID, struct{}{})
		}
	}
	return nil
}

func (g *SearchGateway) SearchArticles(ctx context.Context, project *domain.Project, query string, page domain.Page) ([]domain.SearchHit, int64, error) {
	driver, prefix, err := g.registry.Search(project.ServiceStack)
	if err != nil {
		return nil, 0, apperrors.Classify(err, "gateway", "SearchGateway", "SearchArticles")
	}

	result, err := driver.Search(ctx, search_driver.IndexName(prefix, project.ID.String()), query, "", page.Offset(), page.Limit())
	if err != nil {
		return nil, 0, apperrors.NewExternalAPIContextError("search failed", "gateway", "SearchGateway", "SearchArticles", err, nil)
	}

	hits := make([]domain.SearchHit, 0, len(result.Hits))
	for _, doc := range result.Hits {
		hits = append(hits, domain.SearchHit{
			ArticleID:   doc.ID,
			FeedID:      doc.FeedID,
			Title:       doc.Title,
			Description: doc.Description,
			Link:        doc.Link,
			PublishedAt: doc.PublishedAt,
		})
	}
	return hits, result.Total, nil
}

func toDocument(a *domain.FeedArticle) search_driver.ArticleDocument {
	doc := search_driver.ArticleDocument{
		ID:          a.ID.String(),
		ProjectID:   a.ProjectID.String(),
		FeedID:      a.FeedID.String(),
		Title:       a.Title,
		Description: a.Description,
		Link:        a.Link,
		Categories:  a.Categories,
	}
	if a.PublishedAt != nil {
		doc.PublishedAt = a.PublishedAt.Unix()
	} else {
		doc.PublishedAt = a.CreatedAt.Unix()
	}
	return doc
}
