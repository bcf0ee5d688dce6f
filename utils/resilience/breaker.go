package resilience

import (
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerSettings configures a circuit breaker around an upstream dependency.
type BreakerSettings struct {
	Name string
	// ConsecutiveFailures opens the breaker once reached.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	// IsSuccessful marks errors that must not count as failures, e.g. caller mistakes.
	IsSuccessful func(err error) bool
}

// NewBreaker returns a breaker that logs every state transition.
func NewBreaker[T any](s BreakerSettings) *gobreaker.CircuitBreaker[T] {
	trips := s.ConsecutiveFailures
	if trips == 0 {
		trips = 5
	}

	settings := gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= trips
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
		IsSuccessful: s.IsSuccessful,
	}

	return gobreaker.NewCircuitBreaker[T](settings)
}

// IsOpen reports whether err was returned because the breaker rejected the call.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
