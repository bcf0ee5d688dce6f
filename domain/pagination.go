package domain

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Page is a 1-based page request.
type Page struct {
	Page    int
	PerPage int
}

// NewPage clamps page and perPage into the supported range.
func NewPage(page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Page: page, PerPage: perPage}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Page) Limit() int {
	return p.PerPage
}

// PageResult wraps a page of items with the total count.
type PageResult[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

func NewPageResult[T any](items []T, p Page, total int64) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{Items: items, Page: p.Page, PerPage: p.PerPage, Total: total}
}

// SearchHit is one article returned by full-text search.
type SearchHit struct {
	ArticleID   string `json:"article_id"`
	FeedID      string `json:"feed_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
	PublishedAt int64  `json:"published_at,omitempty"`
}
