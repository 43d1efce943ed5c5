package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/pkg/models"
)

func newTestNudgeService(t *testing.T) (*NudgeService, *CheckpointService, *ent.Client) {
	t.Helper()
	client := newTestEnt(t)
	checkpoints := NewCheckpointService(client)
	return NewNudgeService(client, checkpoints), checkpoints, client
}

func violation(ag *ent.Agent, at time.Time) *models.IntegrityCheckpoint {
	cp := makeCheckpoint(ag, models.VerdictBoundaryViolation, at)
	cp.Concerns = []models.Concern{
		{Category: models.ConcernAutonomyViolation, Severity: models.SeverityCritical,
			Description: "ran a forbidden action", Evidence: "I'll run the delete command anyway"},
		{Category: models.ConcernDeceptiveReasoning, Severity: models.SeverityHigh,
			Description: "concealed intent from the user"},
	}
	return cp
}

func TestNudgeService_CreateForViolation(t *testing.T) {
	svc, _, client := newTestNudgeService(t)
	ctx := context.Background()

	t.Run("always strategy creates a pending nudge", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-nudge-always")
		cp := violation(ag, time.Now().UTC())

		row, err := svc.CreateForViolation(ctx, ag, cp)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "pending", string(row.Status))
		assert.Equal(t, cp.CheckpointID, row.CheckpointID)

		// Category names only; evidence text must never leak into the message.
		assert.Contains(t, row.Message, "autonomy violation")
		assert.Contains(t, row.Message, "deceptive reasoning")
		assert.NotContains(t, row.Message, "delete command")
	})

	t.Run("off strategy creates nothing", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-nudge-off")
		_, err := client.Agent.UpdateOneID(ag.ID).
			SetNudgeStrategy(agent.NudgeStrategyOff).
			Save(ctx)
		require.NoError(t, err)
		ag, err = client.Agent.Get(ctx, ag.ID)
		require.NoError(t, err)

		row, err := svc.CreateForViolation(ctx, ag, violation(ag, time.Now().UTC()))
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("sampling strategy follows the rate", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-nudge-sampling")
		ag, err := client.Agent.UpdateOneID(ag.ID).
			SetNudgeStrategy(agent.NudgeStrategySampling).
			SetNudgeRate(40).
			Save(ctx)
		require.NoError(t, err)

		svc.intn = func(int) int { return 39 }
		row, err := svc.CreateForViolation(ctx, ag, violation(ag, time.Now().UTC()))
		require.NoError(t, err)
		assert.NotNil(t, row, "draw below rate delivers")

		svc.intn = func(int) int { return 40 }
		row, err = svc.CreateForViolation(ctx, ag, violation(ag, time.Now().UTC()))
		require.NoError(t, err)
		assert.Nil(t, row, "draw at rate skips")
	})

	t.Run("threshold strategy waits for enough session violations", func(t *testing.T) {
		svc, checkpoints, client := newTestNudgeService(t)
		ag := makeAgent(t, client, "sk-nudge-threshold")
		ag, err := client.Agent.UpdateOneID(ag.ID).
			SetNudgeStrategy(agent.NudgeStrategyThreshold).
			SetNudgeThreshold(2).
			Save(ctx)
		require.NoError(t, err)

		now := time.Now().UTC()
		first := violation(ag, now)
		require.NoError(t, checkpoints.StoreCheckpoint(ctx, first))
		row, err := svc.CreateForViolation(ctx, ag, first)
		require.NoError(t, err)
		assert.Nil(t, row, "one violation is below the threshold")

		second := violation(ag, now.Add(time.Second))
		second.SessionID = first.SessionID
		require.NoError(t, checkpoints.StoreCheckpoint(ctx, second))
		row, err = svc.CreateForViolation(ctx, ag, second)
		require.NoError(t, err)
		assert.NotNil(t, row)
	})

	t.Run("rejects a non-violation checkpoint", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-nudge-clear")
		_, err := svc.CreateForViolation(ctx, ag, makeCheckpoint(ag, models.VerdictClear, time.Now().UTC()))
		assert.True(t, IsValidationError(err))
	})
}

func TestNudgeService_PendingLifecycle(t *testing.T) {
	svc, _, client := newTestNudgeService(t)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-nudge-lifecycle")

	// Seven pending nudges, two of them stale.
	base := time.Now().UTC()
	for i := 0; i < 7; i++ {
		createdAt := base.Add(-time.Duration(i) * time.Minute)
		if i >= 5 {
			createdAt = base.Add(-5 * time.Hour)
		}
		_, err := client.Nudge.Create().
			SetID(fmt.Sprintf("nudge-test%04d", i)).
			SetAgentID(ag.ID).
			SetMessage("stay within bounds").
			SetStatus(nudge.StatusPending).
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("pending fetch caps at the per-request limit and skips stale", func(t *testing.T) {
		rows, err := svc.PendingForAgent(ctx, ag.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 5)
		for _, r := range rows {
			assert.True(t, r.CreatedAt.After(base.Add(-models.NudgeTTL)))
		}
	})

	t.Run("mark delivered", func(t *testing.T) {
		rows, err := svc.PendingForAgent(ctx, ag.ID)
		require.NoError(t, err)
		ids := []string{rows[0].ID, rows[1].ID}
		require.NoError(t, svc.MarkDelivered(ctx, ids))

		remaining, err := svc.PendingForAgent(ctx, ag.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 3)

		delivered, err := client.Nudge.Get(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "delivered", string(delivered.Status))
		assert.NotNil(t, delivered.DeliveredAt)
	})

	t.Run("expire sweep catches the stale ones", func(t *testing.T) {
		n, err := svc.ExpireStale(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		expired, err := client.Nudge.Query().
			Where(nudge.StatusEQ(nudge.StatusExpired)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, expired)
	})
}
