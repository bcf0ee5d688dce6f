package domain

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeedArticle is a single ingested RSS item.
type FeedArticle struct {
	ID          uuid.UUID  `json:"id"`
	FeedID      uuid.UUID  `json:"feed_id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	DedupeKey   string     `json:"-"`
	GUID        string     `json:"guid,omitempty"`
	Link        string     `json:"link"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content,omitempty"`
	Author      string     `json:"author,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Categories  []string   `json:"categories,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ArticleDedupeKey returns the identity of an item within its feed: the trimmed
// GUID when present, otherwise the normalized link. Empty means not importable.
func ArticleDedupeKey(guid, link string) string {
	if g := strings.TrimSpace(guid); g != "" {
		return "guid:" + g
	}
	if l := NormalizeLink(link); l != "" {
		return "link:" + l
	}
	return ""
}

// NormalizeLink lower-cases scheme and host, drops the fragment, default ports,
// utm_* tracking parameters and a trailing slash, and sorts the remaining query.
func NormalizeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && !(u.Scheme == "http" && port == "80") && !(u.Scheme == "https" && port == "443") {
		host = host + ":" + port
	}
	u.Host = host
	u.Fragment = ""
	u.RawFragment = ""

	q := u.Query()
	for key := range q {
		if strings.HasPrefix(strings.ToLower(key), "utm_") {
			q.Del(key)
		}
	}
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		for _, v := range q[key] {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(v))
		}
	}
	u.RawQuery = strings.Join(parts, "&")

	if len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = ""
	}

	return u.String()
}
