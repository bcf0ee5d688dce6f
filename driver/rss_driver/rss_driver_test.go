package rss_driver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/utils/rate_limiter"
	"gameshub/utils/security"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example News</title>
  <link>https://news.example.com</link>
  <item>
    <title>Rover finds water &amp; ice</title>
    <link>https://news.example.com/rover?utm_source=rss</link>
    <guid>rover-1</guid>
    <description><![CDATA[<p>The <b>rover</b> found   traces.</p>]]></description>
    <category>science</category>
    <pubDate>Mon, 02 Mar 2026 10:00:00 GMT</pubDate>
    <enclosure url="https://cdn.example.com/rover.jpg" type="image/jpeg" length="1"/>
  </item>
  <item>
    <title>No guid here</title>
    <link>https://news.example.com/second</link>
  </item>
</channel>
</rss>`

func newTestDriver() *RSSDriver {
	validator := security.NewPermissiveURLValidator()
	return NewRSSDriver(NewSecureHTTPClient(validator, 5*time.Second), rate_limiter.NewHostRateLimiter(time.Millisecond), "gameshub-test/1.0", 5*time.Second)
}

func TestFetch_ParsesItems(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	feed, err := newTestDriver().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "gameshub-test/1.0", gotUA)
	assert.Equal(t, "Example News", feed.Title)
	require.Len(t, feed.Items, 2)

	first := feed.Items[0]
	assert.Equal(t, "rover-1", first.GUID)
	assert.Equal(t, "Rover finds water & ice", first.Title)
	assert.Equal(t, "The rover found traces.", first.Description)
	assert.Equal(t, []string{"science"}, first.Categories)
	assert.Equal(t, "https://cdn.example.com/rover.jpg", first.ImageURL)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), *first.PublishedAt)

	assert.Empty(t, feed.Items[1].GUID)
	assert.Nil(t, feed.Items[1].PublishedAt)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestDriver().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.Contains(t, err.Error(), "503")
}

func TestFetch_NotAFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	_, err := newTestDriver().Fetch(context.Background(), srv.URL)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	d := NewRSSDriver(NewSecureHTTPClient(security.NewPermissiveURLValidator(), time.Second), nil, "ua", 100*time.Millisecond)
	_, err := d.Fetch(context.Background(), srv.URL)
	assert.True(t, errors.Is(err, ErrFetchFailed))
}

func TestSecureClient_RefusesLoopback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	d := NewRSSDriver(NewSecureHTTPClient(security.NewURLValidator(), time.Second), nil, "ua", time.Second)
	_, err := d.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private network")
}
