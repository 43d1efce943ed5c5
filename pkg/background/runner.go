// Package background runs work that outlives the HTTP response that
// scheduled it: integrity analysis of a teed stream, attestation, webhook
// emission. Tasks get a detached context with a per-task timeout and are
// drained on shutdown.
package background

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTaskTimeout bounds one background task. Analysis plus attestation
// plus webhook fanout fits comfortably; anything longer is stuck.
const DefaultTaskTimeout = 30 * time.Second

// Runner owns post-response background tasks. Safe for concurrent use.
type Runner struct {
	timeout time.Duration
	logger  *slog.Logger

	wg      sync.WaitGroup
	closing atomic.Bool
}

// NewRunner creates a runner with the given per-task timeout.
// A zero timeout selects DefaultTaskTimeout.
func NewRunner(timeout time.Duration, logger *slog.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		timeout: timeout,
		logger:  logger.With("component", "background"),
	}
}

// Go schedules fn on a detached context. The caller's request context is
// deliberately not inherited; the whole point is to keep working after the
// response is written. Tasks scheduled during shutdown are dropped.
func (r *Runner) Go(name string, fn func(ctx context.Context)) {
	if r.closing.Load() {
		r.logger.Warn("background task dropped, runner shutting down", "task", name)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("background task panicked",
					"task", name, "panic", rec)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		started := time.Now()
		fn(ctx)
		r.logger.Debug("background task finished",
			"task", name, "duration", time.Since(started))
	}()
}

// Shutdown stops accepting tasks and waits for in-flight ones, giving up
// when ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.closing.Store(true)

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
