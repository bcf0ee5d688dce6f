package job

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	initialBackoff      = time.Second
	defaultMaxBackoff   = time.Minute
	defaultJobTimeout   = 2 * time.Minute
)

// GameJobProcessor claims and runs one pending game job. It reports false
// when there was nothing to do.
type GameJobProcessor interface {
	ProcessNextJob(ctx context.Context) (bool, error)
}

// GameWorker drains the game job queue with a fixed number of pollers. A
// poller that finds the queue empty (or fails to reach it) backs off,
// doubling from one second up to maxBackoff.
type GameWorker struct {
	processor    GameJobProcessor
	concurrency  int
	pollInterval time.Duration
	maxBackoff   time.Duration
	jobTimeout   time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewGameWorker(processor GameJobProcessor, concurrency int, pollInterval, maxBackoff, jobTimeout time.Duration) *GameWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}
	return &GameWorker{
		processor:    processor,
		concurrency:  concurrency,
		pollInterval: pollInterval,
		maxBackoff:   maxBackoff,
		jobTimeout:   jobTimeout,
	}
}

func (w *GameWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	slog.InfoContext(ctx, "starting game worker", "concurrency", w.concurrency)
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.run(ctx, i)
	}
}

// Stop cancels the pollers and waits for in-flight jobs.
func (w *GameWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	slog.Info("game worker stopped")
}

func (w *GameWorker) run(ctx context.Context, poller int) {
	defer w.wg.Done()

	var backoff time.Duration
	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if w.processOne(ctx, poller) {
				backoff = 0
				timer.Reset(w.pollInterval)
				continue
			}
			backoff = w.nextBackoff(backoff)
			timer.Reset(backoff)
		}
	}
}

// processOne reports whether a job was handled.
func (w *GameWorker) processOne(ctx context.Context, poller int) bool {
	jobCtx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	processed, err := w.processor.ProcessNextJob(jobCtx)
	if err != nil {
		if ctx.Err() == nil {
			slog.ErrorContext(ctx, "game worker poll failed", "poller", poller, "error", err)
		}
		return false
	}
	return processed
}

func (w *GameWorker) nextBackoff(current time.Duration) time.Duration {
	if current == 0 {
		return initialBackoff
	}
	next := current * 2
	if next > w.maxBackoff {
		return w.maxBackoff
	}
	return next
}
