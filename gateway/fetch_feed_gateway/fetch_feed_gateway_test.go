package fetch_feed_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/driver/rss_driver"
	apperrors "gameshub/utils/errors"
)

const sampleRSS = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Daily</title>
<item><guid>g-1</guid><title>First</title><link>https://example.com/1</link><description>&lt;p&gt;Hello&lt;/p&gt;</description></item>
<item><title>Second</title><link>https://example.com/2</link></item>
</channel></rss>`

func TestFetchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	g := NewFetchFeedGateway(rss_driver.NewRSSDriver(srv.Client(), nil, "test-agent", 5*time.Second))
	feed, err := g.FetchFeed(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Daily", feed.Title)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "g-1", feed.Items[0].GUID)
	assert.Equal(t, "Hello", feed.Items[0].Description)
	assert.Equal(t, "https://example.com/2", feed.Items[1].Link)
}

func TestFetchFeed_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewFetchFeedGateway(rss_driver.NewRSSDriver(srv.Client(), nil, "test-agent", 5*time.Second))
	_, err := g.FetchFeed(context.Background(), srv.URL)
	require.Error(t, err)

	var appErr *apperrors.AppContextError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeExternalAPI, appErr.Code)
	assert.True(t, errors.Is(err, rss_driver.ErrFetchFailed))
}
