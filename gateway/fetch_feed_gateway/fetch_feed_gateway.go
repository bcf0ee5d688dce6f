package fetch_feed_gateway

import (
	"context"
	"errors"
	"log/slog"

	"gameshub/domain"
	"gameshub/driver/rss_driver"
	apperrors "gameshub/utils/errors"
)

type FetchFeedGateway struct {
	driver *rss_driver.RSSDriver
}

func NewFetchFeedGateway(driver *rss_driver.RSSDriver) *FetchFeedGateway {
	return &FetchFeedGateway{driver: driver}
}

func (g *FetchFeedGateway) FetchFeed(ctx context.Context, link string) (*domain.FetchedFeed, error) {
	fetched, err := g.driver.Fetch(ctx, link)
	if err != nil {
		slog.WarnContext(ctx, "feed fetch failed", "url", link, "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewAppContextError(apperrors.CodeTimeout, "feed fetch timed out",
				"gateway", "FetchFeedGateway", "FetchFeed", err, map[string]interface{}{"url": link})
		}
		return nil, apperrors.NewExternalAPIContextError("failed to fetch feed",
			"gateway", "FetchFeedGateway", "FetchFeed", err, map[string]interface{}{"url": link})
	}

	feed := &domain.FetchedFeed{
		Title: fetched.Title,
		Items: make([]domain.FeedArticle, 0, len(fetched.Items)),
	}
	for _, item := range fetched.Items {
		feed.Items = append(feed.Items, domain.FeedArticle{
			GUID:        item.GUID,
			Link:        item.Link,
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			Author:      item.Author,
			ImageURL:    item.ImageURL,
			Categories:  item.Categories,
			PublishedAt: item.PublishedAt,
		})
	}
	return feed, nil
}
