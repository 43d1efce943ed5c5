// Package enforce applies the consequences of an integrity verdict: nudge
// creation, auto-containment, and the webhook events that announce both.
// Everything here is fail-open; an enforcement failure never reaches the
// proxied request.
package enforce

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/quota"
	"github.com/mnemom/smoltbot/pkg/services"
	"github.com/mnemom/smoltbot/pkg/webhook"
)

// driftMarkTTL bounds how long a session's "drift already announced" mark is
// kept. Sessions roll hourly, so two hours comfortably outlives any session.
const driftMarkTTL = 2 * time.Hour

// Enforcer reacts to stored checkpoints. It is called after the checkpoint
// row exists, from both the gateway pipeline and the observer.
type Enforcer struct {
	agents      *services.AgentService
	checkpoints *services.CheckpointService
	nudges      *services.NudgeService
	cache       *quota.Cache
	emitter     *webhook.Emitter
	logger      *slog.Logger

	mu             sync.Mutex
	driftAnnounced map[string]time.Time

	now func() time.Time
}

// NewEnforcer wires the enforcement side of the pipeline. cache and emitter
// may be nil in reduced deployments; the corresponding steps are skipped.
func NewEnforcer(
	agents *services.AgentService,
	checkpoints *services.CheckpointService,
	nudges *services.NudgeService,
	cache *quota.Cache,
	emitter *webhook.Emitter,
	logger *slog.Logger,
) *Enforcer {
	if agents == nil {
		panic("NewEnforcer: agents must not be nil")
	}
	if checkpoints == nil {
		panic("NewEnforcer: checkpoints must not be nil")
	}
	if nudges == nil {
		panic("NewEnforcer: nudges must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Enforcer{
		agents:         agents,
		checkpoints:    checkpoints,
		nudges:         nudges,
		cache:          cache,
		emitter:        emitter,
		logger:         logger.With("component", "enforcer"),
		driftAnnounced: make(map[string]time.Time),
		now:            time.Now,
	}
}

// Apply runs every enforcement consequence for one stored checkpoint. All
// failures are logged and swallowed.
func (e *Enforcer) Apply(ctx context.Context, ag *ent.Agent, signal *models.IntegritySignal) {
	if ag == nil || signal == nil || signal.Checkpoint == nil {
		return
	}
	cp := signal.Checkpoint

	if cp.Verdict == models.VerdictBoundaryViolation {
		e.emit(ctx, ag.AccountID, models.EventIntegrityViolation, map[string]any{
			"checkpoint_id": cp.CheckpointID,
			"agent_id":      cp.AgentID,
			"session_id":    cp.SessionID,
			"action":        signal.RecommendedAction,
		})
		e.createNudge(ctx, ag, cp)
		e.autoContain(ctx, ag)
	}

	e.announceDrift(ctx, ag, cp.SessionID, signal.WindowSummary)
}

// createNudge records a pending nudge when the agent's mode calls for one.
// The delivery strategy itself (sampling, threshold) lives in the service.
func (e *Enforcer) createNudge(ctx context.Context, ag *ent.Agent, cp *models.IntegrityCheckpoint) {
	mode := models.EnforcementMode(ag.EnforcementMode)
	if mode != models.EnforcementNudge && mode != models.EnforcementEnforce {
		return
	}

	nudge, err := e.nudges.CreateForViolation(ctx, ag, cp)
	if err != nil {
		e.logger.ErrorContext(ctx, "nudge creation failed",
			"agent_id", ag.ID, "checkpoint_id", cp.CheckpointID, "error", err)
		return
	}
	if nudge != nil {
		e.logger.InfoContext(ctx, "nudge created",
			"agent_id", ag.ID, "nudge_id", nudge.ID, "checkpoint_id", cp.CheckpointID)
	}
}

// autoContain pauses the agent when its threshold of consecutive boundary
// violations is met, writes the audit record, and purges the cached quota
// context so the next admission sees the new status.
func (e *Enforcer) autoContain(ctx context.Context, ag *ent.Agent) {
	if ag.AutoContainmentThreshold == nil {
		return
	}
	threshold := *ag.AutoContainmentThreshold
	if threshold < 1 {
		return
	}
	if models.ContainmentStatus(ag.ContainmentStatus) != models.ContainmentActive {
		return
	}

	verdicts, err := e.checkpoints.RecentVerdicts(ctx, ag.ID, threshold)
	if err != nil {
		e.logger.ErrorContext(ctx, "auto-containment verdict lookup failed",
			"agent_id", ag.ID, "error", err)
		return
	}
	if len(verdicts) < threshold {
		return
	}
	for _, v := range verdicts {
		if v != models.VerdictBoundaryViolation {
			return
		}
	}

	reason := fmt.Sprintf("%d consecutive boundary violations", threshold)
	updated, err := e.agents.TransitionContainment(ctx, ag.ID, models.ContainmentPaused,
		"auto_pause", "system", reason)
	if err != nil {
		e.logger.ErrorContext(ctx, "auto-containment transition failed",
			"agent_id", ag.ID, "error", err)
		return
	}

	e.logger.WarnContext(ctx, "agent auto-contained",
		"agent_id", ag.ID, "threshold", threshold)

	if e.cache != nil {
		if err := e.cache.Purge(ctx, ag.ID); err != nil {
			e.logger.ErrorContext(ctx, "quota cache purge failed after containment",
				"agent_id", ag.ID, "error", err)
		}
	}

	e.emit(ctx, updated.AccountID, models.EventAgentContained, map[string]any{
		"agent_id":        ag.ID,
		"previous_status": string(models.ContainmentActive),
		"new_status":      string(models.ContainmentPaused),
		"threshold":       threshold,
		"reason":          reason,
	})
}

// announceDrift emits drift.detected once per alert. The window's alert flag
// stays up for the alert's whole lifetime, so a per-session mark keeps the
// event from repeating; when the alert clears the mark is dropped and a later
// alert in the same session fires again.
func (e *Enforcer) announceDrift(ctx context.Context, ag *ent.Agent, sessionID string, summary models.WindowSummary) {
	e.mu.Lock()
	now := e.now()
	for id, marked := range e.driftAnnounced {
		if now.Sub(marked) > driftMarkTTL {
			delete(e.driftAnnounced, id)
		}
	}

	if !summary.DriftAlertActive {
		delete(e.driftAnnounced, sessionID)
		e.mu.Unlock()
		return
	}
	if _, seen := e.driftAnnounced[sessionID]; seen {
		e.mu.Unlock()
		return
	}
	e.driftAnnounced[sessionID] = now
	e.mu.Unlock()

	e.logger.WarnContext(ctx, "drift alert",
		"agent_id", ag.ID,
		"session_id", sessionID,
		"integrity_ratio", summary.IntegrityRatio,
		"window_size", summary.Size)

	e.emit(ctx, ag.AccountID, models.EventDriftDetected, map[string]any{
		"agent_id":        ag.ID,
		"session_id":      sessionID,
		"integrity_ratio": summary.IntegrityRatio,
		"window_size":     summary.Size,
	})
}

func (e *Enforcer) emit(ctx context.Context, accountID, eventType string, data map[string]any) {
	if e.emitter == nil {
		return
	}
	e.emitter.Emit(ctx, accountID, eventType, data)
}
