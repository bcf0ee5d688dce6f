package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gameshub/utils/metrics"
)

// Task is a periodic housekeeping function.
type Task struct {
	Name    string
	Every   time.Duration
	Timeout time.Duration
	// RunAtStart runs the task once immediately instead of waiting one period.
	RunAtStart bool
	Run        func(ctx context.Context) error
}

// Maintenance runs registered tasks on fixed periods until its context ends.
// A task never overlaps itself: ticks that arrive during a run are dropped.
type Maintenance struct {
	tasks []Task
	wg    sync.WaitGroup
}

func NewMaintenance() *Maintenance {
	return &Maintenance{}
}

func (m *Maintenance) Register(t Task) {
	m.tasks = append(m.tasks, t)
}

func (m *Maintenance) Start(ctx context.Context) {
	for _, t := range m.tasks {
		m.wg.Go(func() { m.schedule(ctx, t) })
	}
}

// Wait blocks until every task loop has returned.
func (m *Maintenance) Wait() {
	m.wg.Wait()
}

func (m *Maintenance) schedule(ctx context.Context, t Task) {
	if t.RunAtStart {
		runTask(ctx, t)
	}

	ticker := time.NewTicker(t.Every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.DebugContext(ctx, "maintenance task stopped", "task", t.Name)
			return
		case <-ticker.C:
			runTask(ctx, t)
		}
	}
}

func runTask(ctx context.Context, t Task) {
	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	started := time.Now()
	err := guard(runCtx, t.Run)
	if err != nil {
		slog.ErrorContext(ctx, "maintenance task failed", "task", t.Name, "error", err, "took", time.Since(started))
		metrics.RecordError("maintenance_"+t.Name, "failed")
		return
	}
	slog.DebugContext(ctx, "maintenance task finished", "task", t.Name, "took", time.Since(started))
}

// guard turns a panic in fn into an error.
func guard(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx)
}
