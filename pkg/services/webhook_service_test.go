package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/pkg/models"
)

func TestWebhookService_CreateEndpoint(t *testing.T) {
	client := newTestEnt(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	t.Run("returns the secret exactly once", func(t *testing.T) {
		ep, secret, err := svc.CreateEndpoint(ctx, "acct-1", "https://hooks.example.com/aip", "primary", nil)
		require.NoError(t, err)
		assert.Len(t, secret, 64, "256-bit hex")
		assert.True(t, ep.IsActive)

		rows, err := svc.ListEndpoints(ctx, "acct-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("rejects non-https URLs", func(t *testing.T) {
		_, _, err := svc.CreateEndpoint(ctx, "acct-1", "http://hooks.example.com", "", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rotate returns a fresh secret", func(t *testing.T) {
		ep, secret, err := svc.CreateEndpoint(ctx, "acct-rotate", "https://hooks.example.com/r", "", nil)
		require.NoError(t, err)
		rotated, err := svc.RotateSecret(ctx, ep.ID)
		require.NoError(t, err)
		assert.NotEqual(t, secret, rotated)
		assert.Len(t, rotated, 64)
	})
}

func TestWebhookService_RecordEvent(t *testing.T) {
	client := newTestEnt(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	_, _, err := svc.CreateEndpoint(ctx, "acct-fan", "https://a.example.com", "all events", nil)
	require.NoError(t, err)
	_, _, err = svc.CreateEndpoint(ctx, "acct-fan", "https://b.example.com", "violations only",
		[]string{models.EventIntegrityViolation})
	require.NoError(t, err)
	epC, _, err := svc.CreateEndpoint(ctx, "acct-fan", "https://c.example.com", "inactive", nil)
	require.NoError(t, err)
	err = client.WebhookEndpoint.UpdateOneID(epC.ID).SetIsActive(false).Exec(ctx)
	require.NoError(t, err)

	t.Run("fans out to matching active endpoints only", func(t *testing.T) {
		event, deliveries, err := svc.RecordEvent(ctx, "acct-fan", models.EventDriftDetected,
			map[string]any{"agent_id": "smolt-abc"})
		require.NoError(t, err)
		assert.NotEmpty(t, event.ID)
		// Endpoint A subscribes to everything; B only to violations; C is disabled.
		require.Len(t, deliveries, 1)
		assert.Equal(t, "https://a.example.com", deliveries[0].Edges.Endpoint.URL)
		assert.Equal(t, event.ID, deliveries[0].Edges.Event.ID)
		assert.Equal(t, "pending", string(deliveries[0].Status))
	})

	t.Run("violation event reaches both subscribers", func(t *testing.T) {
		_, deliveries, err := svc.RecordEvent(ctx, "acct-fan", models.EventIntegrityViolation,
			map[string]any{"checkpoint_id": "ic-x"})
		require.NoError(t, err)
		assert.Len(t, deliveries, 2)
	})
}

func TestWebhookService_DeliveryLifecycle(t *testing.T) {
	client := newTestEnt(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	ep, _, err := svc.CreateEndpoint(ctx, "acct-life", "https://hooks.example.com/life", "", nil)
	require.NoError(t, err)
	_, deliveries, err := svc.RecordEvent(ctx, "acct-life", models.EventQuotaWarning, nil)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	deliveryID := deliveries[0].ID

	t.Run("claim due transitions to delivering", func(t *testing.T) {
		claimed, err := svc.ClaimDue(ctx, 10)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, deliveryID, claimed[0].ID)
		assert.NotNil(t, claimed[0].Edges.Endpoint)

		row, err := client.WebhookDelivery.Get(ctx, deliveryID)
		require.NoError(t, err)
		assert.Equal(t, "delivering", string(row.Status))

		again, err := svc.ClaimDue(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, again, "claimed deliveries are no longer due")
	})

	t.Run("failed attempt with retry schedules the next one", func(t *testing.T) {
		next := time.Now().Add(5 * time.Second)
		rec := AttemptRecord{StatusCode: 503, ResponseBody: "bad gateway", Latency: 40 * time.Millisecond}
		err := svc.MarkFailedAttempt(ctx, deliveryID, rec, "upstream unavailable", &next)
		require.NoError(t, err)

		row, err := client.WebhookDelivery.Get(ctx, deliveryID)
		require.NoError(t, err)
		assert.Equal(t, "retrying", string(row.Status))
		assert.Equal(t, 1, row.AttemptCount)
		require.NotNil(t, row.LastStatusCode)
		assert.Equal(t, 503, *row.LastStatusCode)
		assert.Equal(t, "bad gateway", row.LastResponseBody)
		require.NotNil(t, row.LatencyMs)
		assert.Equal(t, 40, *row.LatencyMs)
		require.NotNil(t, row.LastAttemptAt)
		require.NotNil(t, row.NextAttemptAt)
	})

	t.Run("success resets the endpoint failure counter", func(t *testing.T) {
		rec := AttemptRecord{StatusCode: 200, ResponseBody: `{"received":true}`, Latency: 12 * time.Millisecond}
		err := svc.MarkDelivered(ctx, deliveryID, rec)
		require.NoError(t, err)

		row, err := client.WebhookDelivery.Get(ctx, deliveryID)
		require.NoError(t, err)
		assert.Equal(t, "delivered", string(row.Status))
		assert.NotNil(t, row.DeliveredAt)
		assert.NotNil(t, row.LastAttemptAt)
		assert.Equal(t, `{"received":true}`, row.LastResponseBody)

		epRow, err := client.WebhookEndpoint.Get(ctx, ep.ID)
		require.NoError(t, err)
		assert.Zero(t, epRow.ConsecutiveFailures)
	})

	t.Run("stored response body is truncated", func(t *testing.T) {
		long := strings.Repeat("x", 5000)
		err := svc.MarkDelivered(ctx, deliveryID, AttemptRecord{StatusCode: 200, ResponseBody: long})
		require.NoError(t, err)

		row, err := client.WebhookDelivery.Get(ctx, deliveryID)
		require.NoError(t, err)
		assert.Len(t, row.LastResponseBody, 1024)
	})

	t.Run("re-delivery creates a fresh pending row", func(t *testing.T) {
		err := client.WebhookDelivery.UpdateOneID(deliveryID).SetMaxAttempts(3).Exec(ctx)
		require.NoError(t, err)

		row, err := svc.Redeliver(ctx, deliveryID)
		require.NoError(t, err)
		assert.NotEqual(t, deliveryID, row.ID)
		assert.Contains(t, row.ID, "del-")
		assert.Equal(t, "pending", string(row.Status))
		assert.Equal(t, 3, row.MaxAttempts, "attempt bound carries over")

		n, err := client.WebhookDelivery.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n, "original preserved for audit")
	})
}

func TestWebhookService_ExhaustionDisablesEndpoint(t *testing.T) {
	client := newTestEnt(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	ep, _, err := svc.CreateEndpoint(ctx, "acct-dead", "https://dead.example.com", "", nil)
	require.NoError(t, err)

	exhaustOnce := func(t *testing.T) {
		t.Helper()
		_, deliveries, err := svc.RecordEvent(ctx, "acct-dead", models.EventCheckpointCreated, nil)
		require.NoError(t, err)
		require.Len(t, deliveries, 1)
		require.NoError(t, svc.MarkFailedAttempt(ctx, deliveries[0].ID,
			AttemptRecord{StatusCode: 500}, "connection refused", nil))
	}

	for i := 0; i < DisableThreshold; i++ {
		exhaustOnce(t)
	}

	epRow, err := client.WebhookEndpoint.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.False(t, epRow.IsActive)
	assert.Equal(t, DisableThreshold, epRow.ConsecutiveFailures)
	require.NotNil(t, epRow.DisabledAt)
	assert.Contains(t, epRow.DisabledReason, "consecutive failed deliveries")

	// A disabled endpoint receives no further fanout.
	_, deliveries, err := svc.RecordEvent(ctx, "acct-dead", models.EventCheckpointCreated, nil)
	require.NoError(t, err)
	assert.Empty(t, deliveries)

	// Terminal failures stay terminal.
	failed, err := client.WebhookDelivery.Query().
		Where(webhookdelivery.StatusEQ(webhookdelivery.StatusFailed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, DisableThreshold, failed)
}
