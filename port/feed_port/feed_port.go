package feed_port

import (
	"context"

	"github.com/google/uuid"

	"gameshub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_port.go -destination=../../mocks/mock_feed_port.go -package=mocks

type FeedPort interface {
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	GetFeed(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	ListFeeds(ctx context.Context, projectID uuid.UUID, page domain.Page) ([]*domain.Feed, int64, error)
	ListEnabledFeeds(ctx context.Context) ([]*domain.Feed, error)
	UpdateFeed(ctx context.Context, feed *domain.Feed) error
	DeleteFeed(ctx context.Context, id uuid.UUID) error
	RecordFetchOutcome(ctx context.Context, feedID uuid.UUID, outcome domain.FetchOutcome, disableAfter int) (int, bool, error)
}

// FeedFetchPort downloads and parses a remote RSS or Atom document.
type FeedFetchPort interface {
	FetchFeed(ctx context.Context, link string) (*domain.FetchedFeed, error)
}

// FeedSchedulerPort keeps the cron entries of feeds in sync with admin changes.
type FeedSchedulerPort interface {
	Schedule(feed *domain.Feed) error
	Unschedule(feedID uuid.UUID)
	Refresh(ctx context.Context, feedID uuid.UUID) error
	Scheduled() []domain.ScheduledFeed
}
