package integrity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mnemom/smoltbot/pkg/models"
)

func newTestWindow(cfg WindowConfig) (*Window, *time.Time) {
	w := NewWindow(cfg)
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }
	return w, &now
}

func TestWindowPush(t *testing.T) {
	t.Run("position tracks growth", func(t *testing.T) {
		w, _ := newTestWindow(WindowConfig{MaxSize: 3, MaxAgeSeconds: 3600})
		pos := w.Push(models.VerdictClear)
		assert.Equal(t, models.WindowPosition{Index: 0, WindowSize: 1}, pos)
		pos = w.Push(models.VerdictClear)
		assert.Equal(t, models.WindowPosition{Index: 1, WindowSize: 2}, pos)
	})

	t.Run("push at max_size evicts exactly one oldest", func(t *testing.T) {
		w, _ := newTestWindow(WindowConfig{MaxSize: 3, MaxAgeSeconds: 3600})
		w.Push(models.VerdictBoundaryViolation)
		w.Push(models.VerdictClear)
		w.Push(models.VerdictClear)
		assert.Equal(t, 3, w.Summary().Size)

		w.Push(models.VerdictClear)
		s := w.Summary()
		assert.Equal(t, 3, s.Size)
		assert.Zero(t, s.VerdictCounts[models.VerdictBoundaryViolation], "oldest entry evicted")
		assert.Equal(t, 3, s.VerdictCounts[models.VerdictClear])
	})

	t.Run("expired entries dropped", func(t *testing.T) {
		w, now := newTestWindow(WindowConfig{MaxSize: 10, MaxAgeSeconds: 3600})
		w.Push(models.VerdictReviewNeeded)
		*now = now.Add(2 * time.Hour)
		w.Push(models.VerdictClear)

		s := w.Summary()
		assert.Equal(t, 1, s.Size)
		assert.Zero(t, s.VerdictCounts[models.VerdictReviewNeeded])
	})
}

func TestWindowSummary(t *testing.T) {
	w, _ := newTestWindow(DefaultWindowConfig())

	s := w.Summary()
	assert.Equal(t, 0, s.Size)
	assert.Equal(t, 1.0, s.IntegrityRatio, "empty window is not drifted")

	w.Push(models.VerdictClear)
	w.Push(models.VerdictClear)
	w.Push(models.VerdictReviewNeeded)
	w.Push(models.VerdictBoundaryViolation)

	s = w.Summary()
	assert.Equal(t, 4, s.Size)
	assert.Equal(t, 2, s.VerdictCounts[models.VerdictClear])
	assert.Equal(t, 1, s.VerdictCounts[models.VerdictReviewNeeded])
	assert.Equal(t, 1, s.VerdictCounts[models.VerdictBoundaryViolation])
	assert.InDelta(t, 0.5, s.IntegrityRatio, 1e-9)
}

func TestDriftConsecutiveNonClear(t *testing.T) {
	w, _ := newTestWindow(DefaultWindowConfig())

	w.Push(models.VerdictReviewNeeded)
	w.Push(models.VerdictReviewNeeded)
	assert.False(t, w.DriftAlertActive())

	w.Push(models.VerdictBoundaryViolation)
	assert.True(t, w.DriftAlertActive(), "third consecutive non-clear fires the alert")

	// Firing again while active is a no-op.
	w.Push(models.VerdictReviewNeeded)
	assert.True(t, w.DriftAlertActive())
}

func TestDriftLowRatio(t *testing.T) {
	w, _ := newTestWindow(DefaultWindowConfig())

	// Alternate so no run of 3 non-clear forms, but the ratio sinks below 0.5
	// once at least 5 checkpoints exist.
	w.Push(models.VerdictReviewNeeded)
	w.Push(models.VerdictClear)
	w.Push(models.VerdictReviewNeeded)
	w.Push(models.VerdictClear)
	assert.False(t, w.DriftAlertActive())

	w.Push(models.VerdictReviewNeeded)
	assert.True(t, w.DriftAlertActive(), "ratio 2/5 below threshold with 5 checkpoints")
}

func TestDriftClears(t *testing.T) {
	w, _ := newTestWindow(DefaultWindowConfig())

	w.Push(models.VerdictReviewNeeded)
	w.Push(models.VerdictReviewNeeded)
	w.Push(models.VerdictReviewNeeded)
	assert.True(t, w.DriftAlertActive())

	// One clear verdict is not enough while the ratio is still at or below 0.5.
	w.Push(models.VerdictClear)
	assert.True(t, w.DriftAlertActive())

	w.Push(models.VerdictClear)
	w.Push(models.VerdictClear)
	w.Push(models.VerdictClear)
	assert.False(t, w.DriftAlertActive(), "clear verdict with ratio above 0.5 clears the alert")
}
