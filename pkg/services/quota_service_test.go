package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/pkg/models"
)

func TestQuotaService_ResolveQuotaContext(t *testing.T) {
	client := newTestEnt(t)
	svc := NewQuotaService(client)
	ctx := context.Background()

	t.Run("unknown agent resolves to the free tier", func(t *testing.T) {
		qc, err := svc.ResolveQuotaContext(ctx, "smolt-unknown1")
		require.NoError(t, err)
		assert.Equal(t, "free", qc.PlanID)
		assert.Equal(t, models.ContainmentActive, qc.ContainmentStatus)
	})

	t.Run("known agent carries containment and policy settings", func(t *testing.T) {
		ag := makeAgent(t, client, "sk-quota")
		_, err := client.Agent.UpdateOneID(ag.ID).
			SetContainmentStatus(agent.ContainmentStatusPaused).
			SetEnforcementMode(agent.EnforcementModeEnforce).
			SetAipDisabled(true).
			Save(ctx)
		require.NoError(t, err)

		qc, err := svc.ResolveQuotaContext(ctx, ag.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ContainmentPaused, qc.ContainmentStatus)
		assert.Equal(t, "enforce", qc.AgentSettings["enforcement_mode"])
		assert.Equal(t, true, qc.AgentSettings["aip_disabled"])
	})
}
