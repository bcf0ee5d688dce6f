package article_usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"gameshub/domain"
	"gameshub/port/article_port"
	"gameshub/port/search_port"
	apperrors "gameshub/utils/errors"
)

const maxQueryLength = 200

// ArticleUsecase serves imported articles to game clients.
type ArticleUsecase struct {
	articles article_port.ArticlePort
	search   search_port.SearchPort
}

func NewArticleUsecase(articles article_port.ArticlePort, search search_port.SearchPort) *ArticleUsecase {
	return &ArticleUsecase{articles: articles, search: search}
}

func (u *ArticleUsecase) ListLatest(ctx context.Context, project *domain.Project, page domain.Page) (domain.PageResult[*domain.FeedArticle], error) {
	items, total, err := u.articles.ListProjectArticles(ctx, project.ID, page)
	if err != nil {
		return domain.PageResult[*domain.FeedArticle]{}, err
	}
	return domain.NewPageResult(items, page, total), nil
}

func (u *ArticleUsecase) GetArticle(ctx context.Context, project *domain.Project, articleID uuid.UUID) (*domain.FeedArticle, error) {
	return u.articles.GetArticle(ctx, project.ID, articleID)
}

func (u *ArticleUsecase) Search(ctx context.Context, project *domain.Project, query string, page domain.Page) (domain.PageResult[domain.SearchHit], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.PageResult[domain.SearchHit]{}, fmt.Errorf("%w: q is required", apperrors.ErrInvalidInput)
	}
	if utf8.RuneCountInString(query) > maxQueryLength {
		return domain.PageResult[domain.SearchHit]{}, fmt.Errorf("%w: q must be at most %d characters", apperrors.ErrInvalidInput, maxQueryLength)
	}

	hits, total, err := u.search.SearchArticles(ctx, project, query, page)
	if err != nil {
		return domain.PageResult[domain.SearchHit]{}, err
	}
	return domain.NewPageResult(hits, page, total), nil
}
