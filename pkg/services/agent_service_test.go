package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/pkg/models"
)

func TestAgentService_EnsureAgent(t *testing.T) {
	client := newTestEnt(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	t.Run("creates on first sight", func(t *testing.T) {
		ag, err := svc.EnsureAgent(ctx, "sk-ant-test-credential")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ag.ID, "smolt-"))
		assert.Len(t, ag.AgentHash, 16)
		assert.Equal(t, "observe", string(ag.EnforcementMode))
		assert.Equal(t, "active", string(ag.ContainmentStatus))
	})

	t.Run("is idempotent for the same credential", func(t *testing.T) {
		first, err := svc.EnsureAgent(ctx, "sk-ant-idempotent")
		require.NoError(t, err)
		second, err := svc.EnsureAgent(ctx, "sk-ant-idempotent")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		n, err := client.Agent.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("distinct credentials get distinct agents", func(t *testing.T) {
		a, err := svc.EnsureAgent(ctx, "sk-ant-one")
		require.NoError(t, err)
		b, err := svc.EnsureAgent(ctx, "sk-ant-two")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects empty credential", func(t *testing.T) {
		_, err := svc.EnsureAgent(ctx, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_UpdateSettings(t *testing.T) {
	client := newTestEnt(t)
	svc := NewAgentService(client)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-settings")

	t.Run("applies provided fields", func(t *testing.T) {
		mode := models.EnforcementEnforce
		strategy := models.NudgeSampling
		rate := 40
		threshold := 3
		updated, err := svc.UpdateSettings(ctx, ag.ID, AgentSettings{
			EnforcementMode:          &mode,
			NudgeStrategy:            &strategy,
			NudgeRate:                &rate,
			AutoContainmentThreshold: &threshold,
		})
		require.NoError(t, err)
		assert.Equal(t, "enforce", string(updated.EnforcementMode))
		assert.Equal(t, "sampling", string(updated.NudgeStrategy))
		assert.Equal(t, 40, updated.NudgeRate)
		require.NotNil(t, updated.AutoContainmentThreshold)
		assert.Equal(t, 3, *updated.AutoContainmentThreshold)
	})

	t.Run("rejects out of range nudge rate", func(t *testing.T) {
		rate := 140
		_, err := svc.UpdateSettings(ctx, ag.ID, AgentSettings{NudgeRate: &rate})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid enforcement mode", func(t *testing.T) {
		mode := models.EnforcementMode("panic")
		_, err := svc.UpdateSettings(ctx, ag.ID, AgentSettings{EnforcementMode: &mode})
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_TransitionContainment(t *testing.T) {
	client := newTestEnt(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	t.Run("writes the audit record with the transition", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-contain")

		updated, err := svc.TransitionContainment(ctx, ag.ID, models.ContainmentPaused,
			"auto_pause", "system", "3 consecutive boundary violations")
		require.NoError(t, err)
		assert.Equal(t, "paused", string(updated.ContainmentStatus))

		logs, err := client.AuditLog.Query().
			Where(auditlog.AgentID(ag.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "auto_pause", logs[0].Action)
		assert.Equal(t, "system", logs[0].Actor)
		assert.Equal(t, "active", logs[0].PreviousStatus)
		assert.Equal(t, "paused", logs[0].NewStatus)
	})

	t.Run("no-op transition writes no audit record", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-noop")

		_, err := svc.TransitionContainment(ctx, ag.ID, models.ContainmentActive,
			"resume", "operator", "")
		require.NoError(t, err)

		n, err := client.AuditLog.Query().
			Where(auditlog.AgentID(ag.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := svc.TransitionContainment(ctx, "smolt-missing", models.ContainmentKilled,
			"kill", "operator", "test")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
