package enforce

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/ent/webhookevent"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/services"
	"github.com/mnemom/smoltbot/pkg/webhook"
	testdb "github.com/mnemom/smoltbot/test/database"
)

type enforcerEnv struct {
	client      *ent.Client
	agents      *services.AgentService
	checkpoints *services.CheckpointService
	nudges      *services.NudgeService
	enforcer    *Enforcer
}

func newEnforcerEnv(t *testing.T) *enforcerEnv {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	logger := slog.New(slog.DiscardHandler)

	agents := services.NewAgentService(client)
	checkpoints := services.NewCheckpointService(client)
	nudges := services.NewNudgeService(client, checkpoints)
	webhooks := services.NewWebhookService(client)
	dispatcher := webhook.NewDispatcher(webhooks, "test", logger)
	emitter := webhook.NewEmitter(webhooks, dispatcher, logger)

	return &enforcerEnv{
		client:      client,
		agents:      agents,
		checkpoints: checkpoints,
		nudges:      nudges,
		enforcer:    NewEnforcer(agents, checkpoints, nudges, nil, emitter, logger),
	}
}

func (env *enforcerEnv) makeAgent(t *testing.T, credential string, mutate func(*ent.AgentCreate)) *ent.Agent {
	t.Helper()
	hash := ids.AgentHash(credential)
	create := env.client.Agent.Create().
		SetID(ids.AgentID(hash)).
		SetAgentHash(hash).
		SetAccountID("acct-enf")
	if mutate != nil {
		mutate(create)
	}
	ag, err := create.Save(context.Background())
	require.NoError(t, err)
	return ag
}

func violationSignal(ag *ent.Agent) *models.IntegritySignal {
	now := time.Now()
	return &models.IntegritySignal{
		Checkpoint: &models.IntegrityCheckpoint{
			CheckpointID:      ids.NewCheckpointID(),
			AgentID:           ag.ID,
			SessionID:         ids.SessionID(ag.AgentHash, now.Unix()),
			Timestamp:         now,
			Provider:          models.ProviderAnthropic,
			Model:             "claude-sonnet-4-5",
			ThinkingBlockHash: "ab12cd34",
			Verdict:           models.VerdictBoundaryViolation,
			Concerns: []models.Concern{{
				Category: models.ConcernAutonomyViolation,
				Severity: models.SeverityCritical,
				Evidence: "ran the delete command anyway",
			}},
			Source: models.SourceGateway,
		},
		WindowSummary:     models.WindowSummary{Size: 1, IntegrityRatio: 0},
		Proceed:           false,
		RecommendedAction: models.ActionDenyAndEscalate,
	}
}

func (env *enforcerEnv) eventCount(t *testing.T, eventType string) int {
	t.Helper()
	n, err := env.client.WebhookEvent.Query().
		Where(webhookevent.EventTypeEQ(eventType)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestEnforcer_Apply_ViolationCreatesNudgeAndEvent(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-nudge", func(c *ent.AgentCreate) {
		c.SetEnforcementMode("nudge")
	})

	env.enforcer.Apply(ctx, ag, violationSignal(ag))

	pending, err := env.client.Nudge.Query().
		Where(nudge.AgentID(ag.ID), nudge.StatusEQ(nudge.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Contains(t, pending[0].Message, "autonomy violation")

	assert.Equal(t, 1, env.eventCount(t, models.EventIntegrityViolation))
}

func TestEnforcer_Apply_ObserveModeSkipsNudge(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-observe", nil)

	env.enforcer.Apply(ctx, ag, violationSignal(ag))

	n, err := env.client.Nudge.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "observe mode must not create nudges")

	// The violation event is emitted regardless of mode.
	assert.Equal(t, 1, env.eventCount(t, models.EventIntegrityViolation))
}

func TestEnforcer_Apply_CleanVerdictIsQuiet(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-clean", func(c *ent.AgentCreate) {
		c.SetEnforcementMode("enforce")
	})

	signal := violationSignal(ag)
	signal.Checkpoint.Verdict = models.VerdictClear
	signal.Checkpoint.Concerns = nil
	signal.Proceed = true
	signal.RecommendedAction = models.ActionContinue

	env.enforcer.Apply(ctx, ag, signal)

	n, err := env.client.Nudge.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, env.eventCount(t, models.EventIntegrityViolation))
}

func TestEnforcer_AutoContainment(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-contain", func(c *ent.AgentCreate) {
		c.SetAutoContainmentThreshold(2)
	})

	// Two stored boundary violations meet the threshold.
	base := time.Now().Add(-2 * time.Minute)
	for i := 0; i < 2; i++ {
		signal := violationSignal(ag)
		signal.Checkpoint.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, env.checkpoints.StoreCheckpoint(ctx, signal.Checkpoint))
	}

	env.enforcer.Apply(ctx, ag, violationSignal(ag))

	row, err := env.client.Agent.Get(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, "paused", string(row.ContainmentStatus))

	audit, err := env.client.AuditLog.Query().
		Where(auditlog.AgentID(ag.ID), auditlog.Action("auto_pause")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "system", audit.Actor)
	assert.Contains(t, audit.Reason, "2 consecutive boundary violations")

	assert.Equal(t, 1, env.eventCount(t, models.EventAgentContained))
}

func TestEnforcer_AutoContainment_BrokenStreakStaysActive(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-streak", func(c *ent.AgentCreate) {
		c.SetAutoContainmentThreshold(3)
	})

	base := time.Now().Add(-3 * time.Minute)
	verdicts := []models.Verdict{
		models.VerdictBoundaryViolation,
		models.VerdictClear,
		models.VerdictBoundaryViolation,
	}
	for i, v := range verdicts {
		signal := violationSignal(ag)
		signal.Checkpoint.Verdict = v
		if v == models.VerdictClear {
			signal.Checkpoint.Concerns = nil
		}
		signal.Checkpoint.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, env.checkpoints.StoreCheckpoint(ctx, signal.Checkpoint))
	}

	env.enforcer.Apply(ctx, ag, violationSignal(ag))

	row, err := env.client.Agent.Get(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", string(row.ContainmentStatus))
	assert.Zero(t, env.eventCount(t, models.EventAgentContained))
}

func TestEnforcer_DriftAnnouncedOncePerAlert(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-drift", nil)

	drifting := violationSignal(ag)
	drifting.Checkpoint.Verdict = models.VerdictReviewNeeded
	drifting.WindowSummary = models.WindowSummary{
		Size:             5,
		IntegrityRatio:   0.2,
		DriftAlertActive: true,
	}

	env.enforcer.Apply(ctx, ag, drifting)
	env.enforcer.Apply(ctx, ag, drifting)
	assert.Equal(t, 1, env.eventCount(t, models.EventDriftDetected),
		"an active alert fires exactly once")

	// Alert clears, then a fresh alert in the same session fires again.
	recovered := violationSignal(ag)
	recovered.Checkpoint.Verdict = models.VerdictClear
	recovered.Checkpoint.Concerns = nil
	recovered.WindowSummary = models.WindowSummary{Size: 6, IntegrityRatio: 0.8}
	env.enforcer.Apply(ctx, ag, recovered)

	env.enforcer.Apply(ctx, ag, drifting)
	assert.Equal(t, 2, env.eventCount(t, models.EventDriftDetected))
}

func TestSweeper_ExpiresStaleNudges(t *testing.T) {
	env := newEnforcerEnv(t)
	ctx := context.Background()

	ag := env.makeAgent(t, "sk-enf-sweep", nil)

	stale, err := env.client.Nudge.Create().
		SetID(ids.NewNudgeID()).
		SetAgentID(ag.ID).
		SetCheckpointID("ic-sweep001").
		SetMessage("stale").
		SetCreatedAt(time.Now().Add(-5 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := env.client.Nudge.Create().
		SetID(ids.NewNudgeID()).
		SetAgentID(ag.ID).
		SetCheckpointID("ic-sweep002").
		SetMessage("fresh").
		Save(ctx)
	require.NoError(t, err)

	sweeper := NewSweeper(env.nudges, slog.New(slog.DiscardHandler))
	sweeper.sweep(ctx)

	staleRow, err := env.client.Nudge.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, nudge.StatusExpired, staleRow.Status)

	freshRow, err := env.client.Nudge.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, nudge.StatusPending, freshRow.Status)
}
