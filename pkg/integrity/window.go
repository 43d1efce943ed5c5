package integrity

import (
	"sync"
	"time"

	"github.com/mnemom/smoltbot/pkg/models"
)

// WindowConfig bounds a per-session checkpoint window.
type WindowConfig struct {
	MaxSize       int
	MaxAgeSeconds int
}

// DefaultWindowConfig matches the session-window contract: at most 10
// checkpoints, none older than an hour.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{MaxSize: 10, MaxAgeSeconds: 3600}
}

type windowEntry struct {
	verdict  models.Verdict
	pushedAt time.Time
}

// Window is a bounded sliding collection of recent checkpoint verdicts for
// one session. Safe for concurrent use.
type Window struct {
	mu      sync.Mutex
	cfg     WindowConfig
	entries []windowEntry
	drift   driftState
	now     func() time.Time
}

// NewWindow builds an empty window with the given bounds.
func NewWindow(cfg WindowConfig) *Window {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultWindowConfig().MaxSize
	}
	if cfg.MaxAgeSeconds <= 0 {
		cfg.MaxAgeSeconds = DefaultWindowConfig().MaxAgeSeconds
	}
	return &Window{cfg: cfg, now: time.Now}
}

// Push records a verdict, evicts expired and overflow entries, and updates
// the drift state. Returns the position the new checkpoint occupies.
func (w *Window) Push(verdict models.Verdict) models.WindowPosition {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.entries = append(w.entries, windowEntry{verdict: verdict, pushedAt: now})

	cutoff := now.Add(-time.Duration(w.cfg.MaxAgeSeconds) * time.Second)
	kept := w.entries[:0]
	for _, e := range w.entries {
		if !e.pushedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	w.entries = kept
	for len(w.entries) > w.cfg.MaxSize {
		w.entries = w.entries[1:]
	}

	w.drift.observe(verdict, w.ratioLocked(), len(w.entries))

	return models.WindowPosition{
		Index:      len(w.entries) - 1,
		WindowSize: len(w.entries),
	}
}

// Summary snapshots the window for checkpoint metadata and signals.
func (w *Window) Summary() models.WindowSummary {
	w.mu.Lock()
	defer w.mu.Unlock()

	counts := make(map[models.Verdict]int)
	for _, e := range w.entries {
		counts[e.verdict]++
	}
	return models.WindowSummary{
		Size:             len(w.entries),
		VerdictCounts:    counts,
		IntegrityRatio:   w.ratioLocked(),
		DriftAlertActive: w.drift.active,
	}
}

// DriftAlertActive reports whether the drift detector has an active alert.
func (w *Window) DriftAlertActive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.drift.active
}

// ratioLocked computes clear_count / size. Empty windows report 1.0 so a
// fresh session never looks drifted.
func (w *Window) ratioLocked() float64 {
	if len(w.entries) == 0 {
		return 1.0
	}
	clear := 0
	for _, e := range w.entries {
		if e.verdict == models.VerdictClear {
			clear++
		}
	}
	return float64(clear) / float64(len(w.entries))
}
