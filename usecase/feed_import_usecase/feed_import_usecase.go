// Package feed_import_usecase runs one import of a feed: fetch, dedupe,
// persist, index and enqueue game generation.
package feed_import_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
	"gameshub/port/article_port"
	"gameshub/port/feed_port"
	"gameshub/port/game_port"
	"gameshub/port/project_port"
	"gameshub/port/search_port"
	"gameshub/utils/logger"
	"gameshub/utils/metrics"
)

type FeedImportUsecase struct {
	feeds            feed_port.FeedPort
	fetcher          feed_port.FeedFetchPort
	articles         article_port.ArticlePort
	projects         project_port.ProjectPort
	search           search_port.SearchPort
	jobs             game_port.GameJobPort
	scheduler        feed_port.FeedSchedulerPort
	autoDisableAfter int
	now              func() time.Time
}

func NewFeedImportUsecase(
	feeds feed_port.FeedPort,
	fetcher feed_port.FeedFetchPort,
	articles article_port.ArticlePort,
	projects project_port.ProjectPort,
	search search_port.SearchPort,
	jobs game_port.GameJobPort,
	autoDisableAfter int,
) *FeedImportUsecase {
	return &FeedImportUsecase{
		feeds:            feeds,
		fetcher:          fetcher,
		articles:         articles,
		projects:         projects,
		search:           search,
		jobs:             jobs,
		autoDisableAfter: autoDisableAfter,
		now:              time.Now,
	}
}

// SetScheduler wires the scheduler used to drop auto-disabled feeds. The
// scheduler itself runs this usecase, so it is attached after construction.
func (u *FeedImportUsecase) SetScheduler(scheduler feed_port.FeedSchedulerPort) {
	u.scheduler = scheduler
}

// ImportFeed runs one import. Scheduled runs of a disabled feed are skipped;
// manual runs always proceed.
func (u *FeedImportUsecase) ImportFeed(ctx context.Context, feedID uuid.UUID, trigger string) (*domain.ImportResult, error) {
	ctx = logger.WithFeedID(ctx, feedID.String())
	start := u.now()
	result := &domain.ImportResult{FeedID: feedID, Trigger: trigger}

	feed, err := u.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithProjectID(ctx, feed.ProjectID.String())

	if !feed.Enabled && trigger != domain.TriggerManual {
		slog.InfoContext(ctx, "feed disabled, skipping scheduled import")
		return result, nil
	}

	fetched, err := u.fetcher.FetchFeed(ctx, feed.URL)
	if err != nil {
		return u.fail(ctx, feed, result, start, fmt.Errorf("fetch feed: %w", err))
	}
	result.Fetched = len(fetched.Items)

	candidates := buildArticles(feed, fetched, start)
	created, err := u.articles.InsertArticles(ctx, candidates)
	if err != nil {
		return u.fail(ctx, feed, result, start, fmt.Errorf("store articles: %w", err))
	}
	result.New = len(created)
	result.Skipped = result.Fetched - result.New

	if len(created) > 0 {
		u.index(ctx, feed, created)
		result.JobsQueued = u.enqueueGames(ctx, feed, created)
	}

	if _, _, err := u.feeds.RecordFetchOutcome(ctx, feed.ID, domain.FetchOutcome{FetchedAt: start}, u.autoDisableAfter); err != nil {
		slog.ErrorContext(ctx, "failed to record fetch outcome", "error", err)
	}

	result.Duration = u.now().Sub(start)
	metrics.RecordFeedImport(trigger, "success", result.New, result.Duration.Seconds())
	slog.InfoContext(ctx, "feed imported",
		"trigger", trigger,
		"fetched", result.Fetched,
		"new", result.New,
		"skipped", result.Skipped,
		"jobs_queued", result.JobsQueued,
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

// buildArticles maps fetched items to articles. Items without a GUID or a
// usable link, and repeats within the same document, are dropped.
func buildArticles(feed *domain.Feed, fetched *domain.FetchedFeed, now time.Time) []*domain.FeedArticle {
	seen := make(map[string]struct{}, len(fetched.Items))
	articles := make([]*domain.FeedArticle, 0, len(fetched.Items))

	for _, item := range fetched.Items {
		key := domain.ArticleDedupeKey(item.GUID, item.Link)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		a := item
		a.ID = uuid.New()
		a.FeedID = feed.ID
		a.ProjectID = feed.ProjectID
		a.DedupeKey = key
		a.CreatedAt = now
		if a.Title == "" {
			a.Title = a.Link
		}
		articles = append(articles, &a)
	}
	return articles
}

// index pushes new articles to the project's search index. Failures do not
// fail the import.
func (u *FeedImportUsecase) index(ctx context.Context, feed *domain.Feed, articles []*domain.FeedArticle) {
	project, err := u.projects.GetProject(ctx, feed.ProjectID)
	if err != nil {
		slog.WarnContext(ctx, "skipping search indexing, project lookup failed", "error", err)
		return
	}
	if err := u.search.IndexArticles(ctx, project, articles); err != nil {
		slog.WarnContext(ctx, "failed to index articles", "count", len(articles), "error", err)
		metrics.RecordError("index_articles", "search")
	}
}

func (u *FeedImportUsecase) enqueueGames(ctx context.Context, feed *domain.Feed, articles []*domain.FeedArticle) int {
	settings := feed.GameSettings.Normalize()
	if !settings.Enabled || len(settings.GameTypes) == 0 {
		return 0
	}

	if len(articles) > settings.MaxArticlesPerRun {
		articles = articles[:settings.MaxArticlesPerRun]
	}

	jobs := make([]domain.NewGameJob, 0, len(articles)*len(settings.GameTypes))
	for _, a := range articles {
		for _, t := range settings.GameTypes {
			jobs = append(jobs, domain.NewGameJob{
				ProjectID: feed.ProjectID,
				ArticleID: a.ID,
				GameType:  t,
				Language:  settings.Language,
			})
		}
	}

	queued, err := u.jobs.EnqueueGameJobs(ctx, jobs)
	if err != nil {
		slog.ErrorContext(ctx, "failed to enqueue game jobs", "jobs", len(jobs), "error", err)
		metrics.RecordError("enqueue_game_jobs", "database")
		return 0
	}
	return queued
}

func (u *FeedImportUsecase) fail(ctx context.Context, feed *domain.Feed, result *domain.ImportResult, start time.Time, cause error) (*domain.ImportResult, error) {
	failures, enabled, err := u.feeds.RecordFetchOutcome(ctx, feed.ID, domain.FetchOutcome{FetchedAt: start, Err: cause}, u.autoDisableAfter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to record fetch outcome", "error", err)
	} else if feed.Enabled && !enabled {
		result.Disabled = true
		if u.scheduler != nil {
			u.scheduler.Unschedule(feed.ID)
		}
		slog.WarnContext(ctx, "feed disabled after consecutive failures", "failures", failures)
	}

	result.Duration = u.now().Sub(start)
	metrics.RecordFeedImport(result.Trigger, "failure", 0, result.Duration.Seconds())
	slog.WarnContext(ctx, "feed import failed", "trigger", result.Trigger, "failures", failures, "error", cause)
	return result, cause
}
