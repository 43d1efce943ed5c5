package background

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_TasksRunDetached(t *testing.T) {
	r := NewRunner(time.Second, slog.New(slog.DiscardHandler))

	var ran atomic.Bool
	r.Go("probe", func(ctx context.Context) {
		assert.NoError(t, ctx.Err())
		ran.Store(true)
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))
	assert.True(t, ran.Load())
}

func TestRunner_PanicDoesNotKillProcess(t *testing.T) {
	r := NewRunner(time.Second, slog.New(slog.DiscardHandler))

	r.Go("boom", func(ctx context.Context) {
		panic("task failure")
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))
}

func TestRunner_TaskContextHasDeadline(t *testing.T) {
	r := NewRunner(50*time.Millisecond, slog.New(slog.DiscardHandler))

	var sawDeadline atomic.Bool
	r.Go("deadline", func(ctx context.Context) {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))
	assert.True(t, sawDeadline.Load())
}

func TestRunner_ShutdownDropsNewTasks(t *testing.T) {
	r := NewRunner(time.Second, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))

	var ran atomic.Bool
	r.Go("late", func(ctx context.Context) { ran.Store(true) })

	time.Sleep(20 * time.Millisecond)
	assert.False(t, ran.Load(), "tasks scheduled after shutdown must be dropped")
}

func TestRunner_ShutdownTimesOutOnStuckTask(t *testing.T) {
	r := NewRunner(5*time.Second, slog.New(slog.DiscardHandler))

	release := make(chan struct{})
	r.Go("stuck", func(ctx context.Context) { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := r.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}
