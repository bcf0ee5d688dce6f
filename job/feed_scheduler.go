package job

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"gameshub/domain"
	"gameshub/port/feed_port"
	"gameshub/utils/logger"
)

// FeedImporter runs one import of a feed.
type FeedImporter interface {
	ImportFeed(ctx context.Context, feedID uuid.UUID, trigger string) (*domain.ImportResult, error)
}

type feedEntry struct {
	id       cron.EntryID
	interval time.Duration
}

// FeedScheduler keeps one cron entry per enabled feed.
type FeedScheduler struct {
	cron     *cron.Cron
	feeds    feed_port.FeedPort
	importer FeedImporter
	timeout  time.Duration

	mu      sync.Mutex
	entries map[uuid.UUID]feedEntry
	baseCtx context.Context
}

// NewFeedScheduler creates a scheduler. runTimeout bounds each import run.
func NewFeedScheduler(feeds feed_port.FeedPort, importer FeedImporter, runTimeout time.Duration) *FeedScheduler {
	cl := cronLogger{}
	return &FeedScheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		feeds:    feeds,
		importer: importer,
		timeout:  runTimeout,
		entries:  make(map[uuid.UUID]feedEntry),
		baseCtx:  context.Background(),
	}
}

// Start schedules every enabled feed and starts the cron. Runs use ctx as
// their parent.
func (s *FeedScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = context.WithoutCancel(ctx)
	s.mu.Unlock()

	if err := s.Reconcile(ctx); err != nil {
		return err
	}
	s.cron.Start()
	slog.InfoContext(ctx, "feed scheduler started", "feeds", len(s.Scheduled()))
	return nil
}

// Stop stops the cron and waits for running imports.
func (s *FeedScheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("feed scheduler stopped")
}

// Schedule adds or replaces the entry for feed.
func (s *FeedScheduler) Schedule(feed *domain.Feed) error {
	interval := feed.Interval()
	if interval < time.Minute {
		return fmt.Errorf("feed %s: interval %s is below one minute", feed.ID, interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[feed.ID]; ok {
		if existing.interval == interval {
			return nil
		}
		s.cron.Remove(existing.id)
	}

	id := s.cron.Schedule(cron.Every(interval), s.runFunc(feed.ID))
	s.entries[feed.ID] = feedEntry{id: id, interval: interval}
	slog.Info("feed scheduled", "feed_id", feed.ID, "interval", interval.String())
	return nil
}

func (s *FeedScheduler) Unschedule(feedID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[feedID]; ok {
		s.cron.Remove(existing.id)
		delete(s.entries, feedID)
		slog.Info("feed unscheduled", "feed_id", feedID)
	}
}

// Refresh reloads the feed and schedules or unschedules it by its enabled flag.
func (s *FeedScheduler) Refresh(ctx context.Context, feedID uuid.UUID) error {
	feed, err := s.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if !feed.Enabled {
		s.Unschedule(feedID)
		return nil
	}
	return s.Schedule(feed)
}

// Scheduled lists the live entries ordered by next run.
func (s *FeedScheduler) Scheduled() []domain.ScheduledFeed {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ScheduledFeed, 0, len(s.entries))
	for feedID, e := range s.entries {
		entry := s.cron.Entry(e.id)
		out = append(out, domain.ScheduledFeed{
			FeedID:   feedID,
			Interval: e.interval.String(),
			NextRun:  entry.Next,
			PrevRun:  entry.Prev,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NextRun.Equal(out[j].NextRun) {
			return out[i].FeedID.String() < out[j].FeedID.String()
		}
		return out[i].NextRun.Before(out[j].NextRun)
	})
	return out
}

// Reconcile brings the cron entries in line with the enabled feeds in the
// store, picking up changes made by other replicas or the CLI.
func (s *FeedScheduler) Reconcile(ctx context.Context) error {
	// Only entries that existed before the listing may be removed. Entries
	// added or replaced while the query ran are newer than the result.
	s.mu.Lock()
	before := make(map[uuid.UUID]cron.EntryID, len(s.entries))
	for feedID, e := range s.entries {
		before[feedID] = e.id
	}
	s.mu.Unlock()

	feeds, err := s.feeds.ListEnabledFeeds(ctx)
	if err != nil {
		return fmt.Errorf("list enabled feeds: %w", err)
	}

	enabled := make(map[uuid.UUID]bool, len(feeds))
	for _, feed := range feeds {
		enabled[feed.ID] = true
		if err := s.Schedule(feed); err != nil {
			slog.WarnContext(ctx, "skipping feed with invalid schedule", "feed_id", feed.ID, "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for feedID, e := range s.entries {
		if enabled[feedID] {
			continue
		}
		if id, ok := before[feedID]; !ok || id != e.id {
			continue
		}
		s.cron.Remove(e.id)
		delete(s.entries, feedID)
		slog.InfoContext(ctx, "feed unscheduled", "feed_id", feedID)
	}
	return nil
}

func (s *FeedScheduler) runFunc(feedID uuid.UUID) cron.FuncJob {
	return func() {
		s.mu.Lock()
		parent := s.baseCtx
		s.mu.Unlock()

		ctx := logger.WithFeedID(parent, feedID.String())
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		if _, err := s.importer.ImportFeed(ctx, feedID, domain.TriggerSchedule); err != nil {
			slog.WarnContext(ctx, "scheduled import failed", "error", err)
		}
	}
}

// cronLogger routes cron's own logging into slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
