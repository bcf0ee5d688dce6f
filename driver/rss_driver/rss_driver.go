// Package rss_driver fetches and parses RSS/Atom feeds.
package rss_driver

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"gameshub/utils/rate_limiter"
	"gameshub/utils/security"
)

// FeedItem is one parsed entry, with HTML already stripped from the summary.
type FeedItem struct {
	GUID        string
	Link        string
	Title       string
	Description string
	Content     string
	Author      string
	ImageURL    string
	Categories  []string
	PublishedAt *time.Time
}

// FetchedFeed is the parsed channel.
type FetchedFeed struct {
	Title string
	Items []FeedItem
}

var ErrFetchFailed = errors.New("feed fetch failed")

type RSSDriver struct {
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
	userAgent   string
	timeout     time.Duration
	policy      *bluemonday.Policy
}

func NewRSSDriver(httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter, userAgent string, timeout time.Duration) *RSSDriver {
	return &RSSDriver{
		httpClient:  httpClient,
		rateLimiter: rateLimiter,
		userAgent:   userAgent,
		timeout:     timeout,
		policy:      bluemonday.StrictPolicy(),
	}
}

// NewSecureHTTPClient builds the fetch client: TLS 1.2+, bounded timeouts and
// a dialer that refuses private addresses unless the validator allows them.
func NewSecureHTTPClient(validator *security.URLValidator, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext:           validator.DialContext(dialer),
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return errors.New("stopped after 5 redirects")
			}
			return validator.ValidateFeedURL(req.URL.String())
		},
	}
}

// Fetch downloads and parses the feed at link.
func (d *RSSDriver) Fetch(ctx context.Context, link string) (*FetchedFeed, error) {
	if d.rateLimiter != nil {
		if err := d.rateLimiter.WaitForHost(ctx, link); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait: %v", ErrFetchFailed, err)
		}
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	fp := gofeed.NewParser()
	fp.Client = d.httpClient
	fp.UserAgent = d.userAgent

	start := time.Now()
	feed, err := fp.ParseURLWithContext(link, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, fmt.Errorf("%w: http status %d", ErrFetchFailed, httpErr.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	slog.DebugContext(ctx, "feed fetched", "url", link, "items", len(feed.Items), "duration_ms", time.Since(start).Milliseconds())

	out := &FetchedFeed{Title: strings.TrimSpace(feed.Title), Items: make([]FeedItem, 0, len(feed.Items))}
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, d.mapItem(item))
	}
	return out, nil
}

func (d *RSSDriver) mapItem(item *gofeed.Item) FeedItem {
	fi := FeedItem{
		GUID:        strings.TrimSpace(item.GUID),
		Link:        strings.TrimSpace(item.Link),
		Title:       d.plainText(item.Title),
		Description: d.plainText(item.Description),
		Content:     d.plainText(item.Content),
		Categories:  item.Categories,
	}

	if item.PublishedParsed != nil {
		t := item.PublishedParsed.UTC()
		fi.PublishedAt = &t
	} else if item.UpdatedParsed != nil {
		t := item.UpdatedParsed.UTC()
		fi.PublishedAt = &t
	}

	if item.Author != nil {
		fi.Author = strings.TrimSpace(item.Author.Name)
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		fi.Author = strings.TrimSpace(item.Authors[0].Name)
	}

	if item.Image != nil && item.Image.URL != "" {
		fi.ImageURL = item.Image.URL
	} else {
		for _, enc := range item.Enclosures {
			if enc != nil && strings.HasPrefix(enc.Type, "image/") {
				fi.ImageURL = enc.URL
				break
			}
		}
	}

	return fi
}

// plainText strips markup and collapses whitespace.
func (d *RSSDriver) plainText(s string) string {
	if s == "" {
		return ""
	}
	stripped := html.UnescapeString(d.policy.Sanitize(s))
	return strings.Join(strings.Fields(stripped), " ")
}
