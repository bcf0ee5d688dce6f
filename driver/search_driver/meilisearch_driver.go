// Package search_driver indexes and searches articles in a stack's Meilisearch.
package search_driver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meilisearch/meilisearch-go"
)

// ArticleDocument is the indexed representation of a feed article.
type ArticleDocument struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	FeedID      string   `json:"feed_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Categories  []string `json:"categories"`
	PublishedAt int64    `json:"published_at"`
}

// SearchPage is one page of hits with the engine's total estimate.
type SearchPage struct {
	Hits  []ArticleDocument
	Total int64
}

type MeilisearchDriver struct {
	client      meilisearch.ServiceManager
	taskTimeout time.Duration
}

func NewMeilisearchDriver(client meilisearch.ServiceManager, taskTimeout time.Duration) *MeilisearchDriver {
	return &MeilisearchDriver{client: client, taskTimeout: taskTimeout}
}

// NewClient creates a Meilisearch client for host.
func NewClient(host, apiKey string) meilisearch.ServiceManager {
	return meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
}

// IndexName returns the article index of a project under prefix.
func IndexName(prefix, projectID string) string {
	return fmt.Sprintf("%s_articles_%s", prefix, strings.ReplaceAll(projectID, "-", ""))
}

func (d *MeilisearchDriver) Health(ctx context.Context) error {
	if _, err := d.client.Health(); err != nil {
		return &DriverError{Op: "Health", Err: err.Error()}
	}
	return nil
}

// IndexArticles adds or replaces documents and waits for the indexing task.
func (d *MeilisearchDriver) IndexArticles(ctx context.Context, indexUID string, docs []ArticleDocument) error {
	if len(docs) == 0 {
		return nil
	}

	index := d.client.Index(indexUID)
	task, err := index.AddDocuments(docs)
	if err != nil {
		return &DriverError{Op: "IndexArticles", Err: err.Error()}
	}

	if _, err := index.WaitForTask(task.TaskUID, d.taskTimeout); err != nil {
		return &DriverError{Op: "IndexArticles", Err: "failed to wait for indexing task: " + err.Error()}
	}
	return nil
}

// EnsureFilterable declares the attributes used in search filters.
func (d *MeilisearchDriver) EnsureFilterable(ctx context.Context, indexUID string) error {
	index := d.client.Index(indexUID)
	task, err := index.UpdateFilterableAttributes(&[]string{"feed_id", "categories"})
	if err != nil {
		return &DriverError{Op: "EnsureFilterable", Err: err.Error()}
	}
	if _, err := index.WaitForTask(task.TaskUID, d.taskTimeout); err != nil {
		return &DriverError{Op: "EnsureFilterable", Err: err.Error()}
	}
	return nil
}

type rawSearchResponse struct {
	Hits               []ArticleDocument `json:"hits"`
	EstimatedTotalHits int64             `json:"estimatedTotalHits"`
}

// Search runs a full-text query. feedID, when set, restricts results to one feed.
func (d *MeilisearchDriver) Search(ctx context.Context, indexUID, query, feedID string, offset, limit int) (*SearchPage, error) {
	req := &meilisearch.SearchRequest{
		Query:  query,
		Offset: int64(offset),
		Limit:  int64(limit),
	}
	if feedID != "" {
		req.Filter = fmt.Sprintf("feed_id = %q", feedID)
	}

	raw, err := d.client.Index(indexUID).SearchRaw(query, req)
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: err.Error()}
	}

	var resp rawSearchResponse
	if err := json.Unmarshal(*raw, &resp); err != nil {
		return nil, &DriverError{Op: "Search", Err: "decode response: " + err.Error()}
	}
	if resp.Hits == nil {
		resp.Hits = []ArticleDocument{}
	}
	return &SearchPage{Hits: resp.Hits, Total: resp.EstimatedTotalHits}, nil
}

type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}
