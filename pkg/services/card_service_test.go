package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/pkg/models"
)

func TestCardService_PutCard(t *testing.T) {
	client := newTestEnt(t)
	svc := NewCardService(client)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-card")

	card := &models.AlignmentCard{
		Principal: "ops-team",
		Role:      "deploy assistant",
		DeclaredValues: []models.DeclaredValue{
			{Name: "honesty", Priority: 1},
			{Name: "caution", Priority: 2, Description: "prefer reversible actions"},
		},
		ForbiddenActions: []string{"delete_production_data"},
		EscalationTriggers: []models.EscalationTrigger{
			{Condition: "irreversible action requested", Action: "pause", Reason: "needs human sign-off"},
		},
	}

	t.Run("mints a card id and activates", func(t *testing.T) {
		stored, err := svc.PutCard(ctx, ag.ID, card)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.CardID)
		assert.Equal(t, ag.ID, stored.AgentID)

		active, err := svc.ActiveCard(ctx, ag.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.CardID, active.CardID)
		require.Len(t, active.DeclaredValues, 2)
		assert.Equal(t, "caution", active.DeclaredValues[1].Name)
		assert.Equal(t, 2, active.DeclaredValues[1].Priority)
		assert.Equal(t, []string{"delete_production_data"}, active.ForbiddenActions)
		require.Len(t, active.EscalationTriggers, 1)
		assert.Equal(t, "pause", active.EscalationTriggers[0].Action)
	})

	t.Run("replacing deactivates the previous card", func(t *testing.T) {
		replacement := &models.AlignmentCard{
			DeclaredValues: []models.DeclaredValue{{Name: "transparency"}},
		}
		stored, err := svc.PutCard(ctx, ag.ID, replacement)
		require.NoError(t, err)

		active, err := svc.ActiveCard(ctx, ag.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.CardID, active.CardID)

		n, err := client.AlignmentCard.Query().
			Where(alignmentcard.AgentID(ag.ID), alignmentcard.IsActive(true)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "exactly one active card per agent")
	})

	t.Run("rejects a card without values", func(t *testing.T) {
		_, err := svc.PutCard(ctx, ag.ID, &models.AlignmentCard{})
		assert.True(t, IsValidationError(err))
	})
}

func TestCardService_ActiveCard_NotFound(t *testing.T) {
	client := newTestEnt(t)
	svc := NewCardService(client)
	ag := makeAgent(t, client, "sk-cardless")

	_, err := svc.ActiveCard(context.Background(), ag.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
