package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFor(m *Maintenance, d time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	time.Sleep(d)
	cancel()
	m.Wait()
}

func TestMaintenance_RunAtStart(t *testing.T) {
	var runs atomic.Int32
	m := NewMaintenance()
	m.Register(Task{
		Name: "requeue-stale-game-jobs", Every: time.Hour, Timeout: time.Second, RunAtStart: true,
		Run: func(ctx context.Context) error { runs.Add(1); return nil },
	})

	runFor(m, 40*time.Millisecond)
	assert.EqualValues(t, 1, runs.Load())
}

func TestMaintenance_WaitsOnePeriodByDefault(t *testing.T) {
	var runs atomic.Int32
	m := NewMaintenance()
	m.Register(Task{
		Name: "reconcile-feeds", Every: time.Hour, Timeout: time.Second,
		Run: func(ctx context.Context) error { runs.Add(1); return nil },
	})

	runFor(m, 30*time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestMaintenance_StopsWithContext(t *testing.T) {
	var runs atomic.Int32
	m := NewMaintenance()
	m.Register(Task{
		Name: "tick", Every: 10 * time.Millisecond, Timeout: time.Second,
		Run: func(ctx context.Context) error { runs.Add(1); return nil },
	})

	runFor(m, 55*time.Millisecond)
	after := runs.Load()
	require.Positive(t, after)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestMaintenance_TimeoutCancelsRun(t *testing.T) {
	var cancelled atomic.Bool
	m := NewMaintenance()
	m.Register(Task{
		Name: "slow", Every: time.Hour, Timeout: 30 * time.Millisecond, RunAtStart: true,
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			cancelled.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
			return ctx.Err()
		},
	})

	runFor(m, 120*time.Millisecond)
	assert.True(t, cancelled.Load())
}

func TestMaintenance_KeepsRunningAfterPanic(t *testing.T) {
	var runs atomic.Int32
	m := NewMaintenance()
	m.Register(Task{
		Name: "flaky", Every: 10 * time.Millisecond, Timeout: time.Second, RunAtStart: true,
		Run: func(ctx context.Context) error {
			if runs.Add(1) == 1 {
				panic("boom")
			}
			return errors.New("still failing")
		},
	})

	runFor(m, 60*time.Millisecond)
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestGuard(t *testing.T) {
	err := guard(context.Background(), func(context.Context) error { panic("bad state") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad state")
	assert.NoError(t, guard(context.Background(), func(context.Context) error { return nil }))
}
