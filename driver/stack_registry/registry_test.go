package stack_registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/config"
	apperrors "gameshub/utils/errors"
)

func newTestRegistry(t *testing.T, searchHost string) *Registry {
	t.Helper()
	mr := miniredis.RunT(t)

	r := NewRegistry(map[string]config.StackConfig{
		config.DefaultStackName: {Name: "default", RedisURL: "redis://" + mr.Addr(), SearchHost: searchHost, IndexPrefix: "default"},
		"eu":                    {Name: "eu", RedisURL: "redis://" + mr.Addr() + "/1", SearchHost: searchHost, IndexPrefix: "eu"},
	}, time.Second)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRegistry_ResolvesAndReuses(t *testing.T) {
	r := newTestRegistry(t, "http://127.0.0.1:1")

	first, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "default", first.Name)

	again, err := r.Get(config.DefaultStackName)
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, prefix, err := r.Search("eu")
	require.NoError(t, err)
	assert.Equal(t, "eu", prefix)

	assert.Equal(t, []string{"default", "eu"}, r.Names())
	assert.True(t, r.Has(""))
	assert.False(t, r.Has("apac"))
}

func TestRegistry_UnknownStack(t *testing.T) {
	r := newTestRegistry(t, "http://127.0.0.1:1")

	_, err := r.Redis("apac")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownStack))
}

func TestRegistry_Ping(t *testing.T) {
	meili := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"available"}`))
	}))
	defer meili.Close()

	r := newTestRegistry(t, meili.URL)
	require.NoError(t, r.Ping(context.Background(), "default"))
}

func TestRegistry_PingReportsSearchFailure(t *testing.T) {
	meili := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer meili.Close()

	r := newTestRegistry(t, meili.URL)
	err := r.Ping(context.Background(), "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search")
}
