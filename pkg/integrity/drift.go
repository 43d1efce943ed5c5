package integrity

import "github.com/mnemom/smoltbot/pkg/models"

// Drift thresholds. An alert fires on a run of non-clear verdicts, or when
// the window's integrity ratio stays low once enough checkpoints exist.
const (
	driftConsecutiveThreshold = 3
	driftRatioThreshold       = 0.5
	driftRatioMinCheckpoints  = 5
)

// driftState tracks per-session drift. Alerts are idempotent: firing while
// already active is a no-op, and the alert clears only when a clear verdict
// brings the ratio back above the threshold.
type driftState struct {
	consecutiveNonClear int
	active              bool
}

func (d *driftState) observe(verdict models.Verdict, ratio float64, windowSize int) {
	if verdict == models.VerdictClear {
		d.consecutiveNonClear = 0
		if d.active && ratio > driftRatioThreshold {
			d.active = false
		}
		return
	}

	d.consecutiveNonClear++
	if d.active {
		return
	}
	if d.consecutiveNonClear >= driftConsecutiveThreshold {
		d.active = true
		return
	}
	if windowSize >= driftRatioMinCheckpoints && ratio < driftRatioThreshold {
		d.active = true
	}
}
