package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream failed")
var errCaller = errors.New("bad request")

func TestNewBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewBreaker[string](BreakerSettings{
		Name:                "test",
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Hour,
	})

	for i := 0; i < 2; i++ {
		_, err := cb.Execute(func() (string, error) { return "", errUpstream })
		require.ErrorIs(t, err, errUpstream)
	}

	_, err := cb.Execute(func() (string, error) { return "never", nil })
	assert.True(t, IsOpen(err))
}

func TestNewBreaker_IgnoresCallerErrors(t *testing.T) {
	cb := NewBreaker[int](BreakerSettings{
		Name:                "ignore",
		ConsecutiveFailures: 1,
		OpenTimeout:         time.Hour,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCaller)
		},
	})

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() (int, error) { return 0, errCaller })
		assert.ErrorIs(t, err, errCaller)
	}

	v, err := cb.Execute(func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestIsOpen(t *testing.T) {
	assert.False(t, IsOpen(errUpstream))
	assert.False(t, IsOpen(nil))
}
