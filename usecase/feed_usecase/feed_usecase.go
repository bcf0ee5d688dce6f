package feed_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"gameshub/config"
	"gameshub/domain"
	"gameshub/port/article_port"
	"gameshub/port/feed_port"
	"gameshub/port/project_port"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/security"
)

// CreateFeedInput is the payload of a feed registration. A nil interval uses
// the configured default.
type CreateFeedInput struct {
	URL             string
	Title           string
	IntervalMinutes *int
	Enabled         bool
	GameSettings    domain.GameSettings
}

type FeedUsecase struct {
	feeds     feed_port.FeedPort
	articles  article_port.ArticlePort
	projects  project_port.ProjectPort
	scheduler feed_port.FeedSchedulerPort
	validator *security.URLValidator
	cfg       config.SchedulerConfig
	now       func() time.Time
}

func NewFeedUsecase(
	feeds feed_port.FeedPort,
	articles article_port.ArticlePort,
	projects project_port.ProjectPort,
	scheduler feed_port.FeedSchedulerPort,
	validator *security.URLValidator,
	cfg config.SchedulerConfig,
) *FeedUsecase {
	return &FeedUsecase{
		feeds:     feeds,
		articles:  articles,
		projects:  projects,
		scheduler: scheduler,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (u *FeedUsecase) CreateFeed(ctx context.Context, projectID uuid.UUID, in CreateFeedInput) (*domain.Feed, error) {
	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	link := strings.TrimSpace(in.URL)
	if err := u.validator.ValidateFeedURL(link); err != nil {
		return nil, fmt.Errorf("%w: url: %v", apperrors.ErrInvalidInput, err)
	}

	interval := int(u.cfg.DefaultInterval / time.Minute)
	if in.IntervalMinutes != nil {
		interval = *in.IntervalMinutes
	}
	if err := u.checkInterval(interval); err != nil {
		return nil, err
	}

	settings := in.GameSettings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: game_settings: %v", apperrors.ErrInvalidInput, err)
	}

	now := u.now()
	feed := &domain.Feed{
		ID:              uuid.New(),
		ProjectID:       projectID,
		Title:           strings.TrimSpace(in.Title),
		URL:             link,
		IntervalMinutes: interval,
		Enabled:         in.Enabled,
		GameSettings:    settings,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.feeds.CreateFeed(ctx, feed); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "feed created", "feed_id", feed.ID, "project_id", projectID, "interval_minutes", interval)
	u.sync(ctx, feed)
	return feed, nil
}

// GetFeed returns the feed when it belongs to the project.
func (u *FeedUsecase) GetFeed(ctx context.Context, projectID, feedID uuid.UUID) (*domain.Feed, error) {
	feed, err := u.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}
	if feed.ProjectID != projectID {
		return nil, fmt.Errorf("feed %s: %w", feedID, apperrors.ErrNotFound)
	}
	return feed, nil
}

func (u *FeedUsecase) ListFeeds(ctx context.Context, projectID uuid.UUID, page domain.Page) (domain.PageResult[*domain.Feed], error) {
	items, total, err := u.feeds.ListFeeds(ctx, projectID, page)
	if err != nil {
		return domain.PageResult[*domain.Feed]{}, err
	}
	return domain.NewPageResult(items, page, total), nil
}

func (u *FeedUsecase) UpdateFeed(ctx context.Context, projectID, feedID uuid.UUID, upd domain.FeedUpdate) (*domain.Feed, error) {
	feed, err := u.GetFeed(ctx, projectID, feedID)
	if err != nil {
		return nil, err
	}

	if upd.URL != nil {
		link := strings.TrimSpace(*upd.URL)
		if err := u.validator.ValidateFeedURL(link); err != nil {
			return nil, fmt.Errorf("%w: url: %v", apperrors.ErrInvalidInput, err)
		}
		feed.URL = link
	}
	if upd.Title != nil {
		feed.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.IntervalMinutes != nil {
		if err := u.checkInterval(*upd.IntervalMinutes); err != nil {
			return nil, err
		}
		feed.IntervalMinutes = *upd.IntervalMinutes
	}
	if upd.Enabled != nil {
		feed.Enabled = *upd.Enabled
	}
	if upd.GameSettings != nil {
		settings := upd.GameSettings.Normalize()
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("%w: game_settings: %v", apperrors.ErrInvalidInput, err)
		}
		feed.GameSettings = settings
	}

	if err := u.save(ctx, feed); err != nil {
		return nil, err
	}
	return feed, nil
}

func (u *FeedUsecase) DeleteFeed(ctx context.Context, projectID, feedID uuid.UUID) error {
	if _, err := u.GetFeed(ctx, projectID, feedID); err != nil {
		return err
	}
	if err := u.feeds.DeleteFeed(ctx, feedID); err != nil {
		return err
	}
	u.scheduler.Unschedule(feedID)
	slog.InfoContext(ctx, "feed deleted", "feed_id", feedID, "project_id", projectID)
	return nil
}

// StartFeed enables the feed and schedules it.
func (u *FeedUsecase) StartFeed(ctx context.Context, projectID, feedID uuid.UUID) (*domain.Feed, error) {
	return u.setEnabled(ctx, projectID, feedID, true)
}

// StopFeed disables the feed and removes its schedule.
func (u *FeedUsecase) StopFeed(ctx context.Context, projectID, feedID uuid.UUID) (*domain.Feed, error) {
	return u.setEnabled(ctx, projectID, feedID, false)
}

// RefreshFeed reloads the feed and re-applies its schedule.
func (u *FeedUsecase) RefreshFeed(ctx context.Context, projectID, feedID uuid.UUID) (*domain.Feed, error) {
	feed, err := u.GetFeed(ctx, projectID, feedID)
	if err != nil {
		return nil, err
	}
	if err := u.scheduler.Refresh(ctx, feedID); err != nil {
		return nil, err
	}
	return feed, nil
}

func (u *FeedUsecase) ListFeedArticles(ctx context.Context, projectID, feedID uuid.UUID, page domain.Page) (domain.PageResult[*domain.FeedArticle], error) {
	if _, err := u.GetFeed(ctx, projectID, feedID); err != nil {
		return domain.PageResult[*domain.FeedArticle]{}, err
	}
	items, total, err := u.articles.ListFeedArticles(ctx, feedID, page)
	if err != nil {
		return domain.PageResult[*domain.FeedArticle]{}, err
	}
	return domain.NewPageResult(items, page, total), nil
}

// Scheduled lists live cron entries.
func (u *FeedUsecase) Scheduled() []domain.ScheduledFeed {
	return u.scheduler.Scheduled()
}

func (u *FeedUsecase) setEnabled(ctx context.Context, projectID, feedID uuid.UUID, enabled bool) (*domain.Feed, error) {
	feed, err := u.GetFeed(ctx, projectID, feedID)
	if err != nil {
		return nil, err
	}
	if feed.Enabled != enabled {
		feed.Enabled = enabled
		if err := u.save(ctx, feed); err != nil {
			return nil, err
		}
		return feed, nil
	}
	u.sync(ctx, feed)
	return feed, nil
}

func (u *FeedUsecase) save(ctx context.Context, feed *domain.Feed) error {
	feed.UpdatedAt = u.now()
	if err := u.feeds.UpdateFeed(ctx, feed); err != nil {
		return err
	}
	u.sync(ctx, feed)
	return nil
}

// sync keeps the cron entry in line with the stored feed. A scheduling error
// is logged; the reconcile job retries it.
func (u *FeedUsecase) sync(ctx context.Context, feed *domain.Feed) {
	if !feed.Enabled {
		u.scheduler.Unschedule(feed.ID)
		return
	}
	if err := u.scheduler.Schedule(feed); err != nil {
		slog.ErrorContext(ctx, "failed to schedule feed", "feed_id", feed.ID, "error", err)
	}
}

func (u *FeedUsecase) checkInterval(minutes int) error {
	interval := time.Duration(minutes) * time.Minute
	if interval < u.cfg.MinInterval || interval > u.cfg.MaxInterval {
		return fmt.Errorf("%w: interval_minutes must be between %d and %d", apperrors.ErrInvalidInput,
			int(u.cfg.MinInterval/time.Minute), int(u.cfg.MaxInterval/time.Minute))
	}
	return nil
}
