package search_gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/config"
	"gameshub/domain"
	"gameshub/driver/stack_registry"
	apperrors "gameshub/utils/errors"
)

func newGateway(t *testing.T, searchHost string) *SearchGateway {
	t.Helper()
	mr := miniredis.RunT(t)
	registry := stack_registry.NewRegistry(map[string]config.StackConfig{
		config.DefaultStackName: {Name: "default", RedisURL: "redis://" + mr.Addr(), SearchHost: searchHost, IndexPrefix: "hub"},
	}, time.Second)
	t.Cleanup(func() { _ = registry.Close() })
	return NewSearchGateway(registry)
}

func TestIndexArticles_DeclaresFilterableOnce(t *testing.T) {
	var documents, settings atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/documents"):
			documents.Add(1)
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"taskUid":1,"status":"enqueued"}`))
		case strings.HasSuffix(r.URL.Path, "/settings/filterable-attributes"):
			settings.Add(1)
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"taskUid":2,"status":"enqueued"}`))
		case strings.HasPrefix(r.URL.Path, "/tasks/"):
			_, _ = w.Write([]byte(`{"uid":1,"status":"succeeded"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	g := newGateway(t, srv.URL)
	project := &domain.Project{ID: uuid.New()}
	articles := []*domain.FeedArticle{{ID: uuid.New(), ProjectID: project.ID, FeedID: uuid.New(), Title: "One", CreatedAt: time.Now()}}

	require.NoError(t, g.IndexArticles(context.Background(), project, articles))
	require.NoError(t, g.IndexArticles(context.Background(), project, articles))

	assert.Equal(t, int32(2), documents.Load())
	assert.Equal(t, int32(1), settings.Load())
}

func TestSearchArticles(t *testing.T) {
	project := &domain.Project{ID: uuid.New()}
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":[{"id":"a1","feed_id":"f1","title":"Moon","link":"https://example.com/moon","published_at":1700000000}],"estimatedTotalHits":11}`))
	}))
	defer srv.Close()

	hits, total, err := newGateway(t, srv.URL).SearchArticles(context.Background(), project, "moon", domain.NewPage(2, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, hits, 1)
	assert.Equal(t, "a1", hits[0].ArticleID)
	assert.Equal(t, int64(1700000000), hits[0].PublishedAt)
	assert.EqualValues(t, 5, body["offset"])
	assert.EqualValues(t, 5, body["limit"])
}

func TestSearchArticles_UnknownStack(t *testing.T) {
	g := newGateway(t, "http://127.0.0.1:1")
	_, _, err := g.SearchArticles(context.Background(), &domain.Project{ID: uuid.New(), ServiceStack: "apac"}, "x", domain.NewPage(1, 10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownStack))
}
