// Package metrics provides Prometheus metrics for games-hub.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gameshub"

var (
	// FeedImportsTotal counts feed import runs by outcome.
	FeedImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_imports_total",
			Help:      "Total number of feed import runs",
		},
		[]string{"trigger", "status"},
	)

	// FeedImportDuration measures a full fetch-dedupe-insert run.
	FeedImportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_import_duration_seconds",
			Help:      "Duration of feed import runs in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"status"},
	)

	// ArticlesImportedTotal counts newly persisted articles.
	ArticlesImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_imported_total",
			Help:      "Total number of new feed articles persisted",
		},
	)

	// ScheduledFeeds tracks the number of cron entries.
	ScheduledFeeds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduled_feeds",
			Help:      "Number of feeds currently scheduled",
		},
	)

	// GameJobsTotal counts processed game jobs.
	GameJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_jobs_total",
			Help:      "Total number of processed game generation jobs",
		},
		[]string{"game_type", "status"},
	)

	// GenAIRequestDuration measures provider latency.
	GenAIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "genai_request_duration_seconds",
			Help:      "Duration of GenAI provider calls in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"provider", "status"},
	)

	// HTTPRequestsTotal counts HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures HTTP handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CachePurgesTotal counts cache key purges.
	CachePurgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_purges_total",
			Help:      "Total number of project cache purges",
		},
		[]string{"cdn"},
	)

	// ErrorsTotal counts errors by type.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)
)

// RecordFeedImport records one import run.
func RecordFeedImport(trigger, status string, newArticles int, duration float64) {
	FeedImportsTotal.WithLabelValues(trigger, status).Inc()
	FeedImportDuration.WithLabelValues(status).Observe(duration)
	ArticlesImportedTotal.Add(float64(newArticles))
}

// RecordGameJob records a processed generation job.
func RecordGameJob(gameType, status string) {
	GameJobsTotal.WithLabelValues(gameType, status).Inc()
}

// RecordGenAIRequest records a provider call.
func RecordGenAIRequest(provider, status string, duration float64) {
	GenAIRequestDuration.WithLabelValues(provider, status).Observe(duration)
}

// RecordHTTPRequest records a served request.
func RecordHTTPRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordError records an error.
func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
