package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feed is an RSS source configured by an admin and polled on an interval.
type Feed struct {
	ID                  uuid.UUID    `json:"id"`
	ProjectID           uuid.UUID    `json:"project_id"`
	Title               string       `json:"title"`
	URL                 string       `json:"url"`
	IntervalMinutes     int          `json:"interval_minutes"`
	Enabled             bool         `json:"enabled"`
	GameSettings        GameSettings `json:"game_settings"`
	LastFetchedAt       *time.Time   `json:"last_fetched_at,omitempty"`
	LastSuccessAt       *time.Time   `json:"last_success_at,omitempty"`
	ConsecutiveFailures int          `json:"consecutive_failures"`
	LastError           string       `json:"last_error,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

func (f *Feed) Interval() time.Duration {
	return time.Duration(f.IntervalMinutes) * time.Minute
}

// FeedUpdate carries the optional fields of a PATCH.
type FeedUpdate struct {
	Title           *string
	URL             *string
	IntervalMinutes *int
	Enabled         *bool
	GameSettings    *GameSettings
}

// FetchOutcome is written back to the feed after every import run.
type FetchOutcome struct {
	FetchedAt time.Time
	Err       error
}

// ImportResult summarizes one import run.
type ImportResult struct {
	FeedID     uuid.UUID     `json:"feed_id"`
	Trigger    string        `json:"trigger"`
	Fetched    int           `json:"fetched"`
	New        int           `json:"new"`
	Skipped    int           `json:"skipped"`
	JobsQueued int           `json:"jobs_queued"`
	Disabled   bool          `json:"disabled"`
	Duration   time.Duration `json:"duration_ns"`
}

const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)

// ScheduledFeed describes a live cron entry.
type ScheduledFeed struct {
	FeedID   uuid.UUID `json:"feed_id"`
	Interval string    `json:"interval"`
	NextRun  time.Time `json:"next_run"`
	PrevRun  time.Time `json:"prev_run,omitempty"`
}

// FetchedFeed is a parsed RSS/Atom document. Items carry only the fields read
// from the feed; IDs and ownership are assigned by the importer.
type FetchedFeed struct {
	Title string
	Items []FeedArticle
}
