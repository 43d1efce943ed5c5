package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/services"
	testdb "github.com/mnemom/smoltbot/test/database"
)

type dispatcherEnv struct {
	client     *ent.Client
	svc        *services.WebhookService
	dispatcher *Dispatcher
}

func newDispatcherEnv(t *testing.T) *dispatcherEnv {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	svc := services.NewWebhookService(client)
	return &dispatcherEnv{
		client:     client,
		svc:        svc,
		dispatcher: NewDispatcher(svc, "2024-01", slog.New(slog.DiscardHandler)),
	}
}

// seedDelivery creates an endpoint pointing at url (bypassing the service's
// https-only rule, which test servers cannot satisfy), one event, and one
// pending delivery with edges loaded.
func (env *dispatcherEnv) seedDelivery(t *testing.T, url, secret string) *ent.WebhookDelivery {
	t.Helper()
	ctx := context.Background()

	endpoint, err := env.client.WebhookEndpoint.Create().
		SetID(ids.NewEndpointID()).
		SetAccountID("acct-test").
		SetURL(url).
		SetSigningSecret(secret).
		Save(ctx)
	require.NoError(t, err)

	event, err := env.client.WebhookEvent.Create().
		SetID(ids.NewEventID()).
		SetAccountID("acct-test").
		SetEventType("integrity.violation").
		SetData(map[string]any{"checkpoint_id": "ic-test0001"}).
		Save(ctx)
	require.NoError(t, err)

	delivery, err := env.client.WebhookDelivery.Create().
		SetID(ids.NewDeliveryID()).
		SetEventID(event.ID).
		SetEndpointID(endpoint.ID).
		SetNextAttemptAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	loaded, err := env.client.WebhookDelivery.Query().
		Where(webhookdelivery.ID(delivery.ID)).
		WithEvent().
		WithEndpoint().
		Only(ctx)
	require.NoError(t, err)
	return loaded
}

func TestDispatcher_Attempt_Success(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	var gotSignature, gotVersion string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(HeaderSignature)
		gotVersion = r.Header.Get(HeaderVersion)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"received":true}`)
	}))
	defer server.Close()

	delivery := env.seedDelivery(t, server.URL, "topsecret")
	env.dispatcher.Attempt(ctx, delivery)

	row, err := env.client.WebhookDelivery.Get(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, "delivered", string(row.Status))
	assert.Equal(t, 1, row.AttemptCount)
	assert.NotNil(t, row.DeliveredAt)
	assert.NotNil(t, row.LastAttemptAt)
	assert.NotNil(t, row.LatencyMs)
	assert.Equal(t, `{"received":true}`, row.LastResponseBody)

	assert.Equal(t, "2024-01", gotVersion)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "integrity.violation", payload["type"])
	assert.Equal(t, "acct-test", payload["account_id"])
	assert.Equal(t, delivery.Edges.Event.ID, payload["id"])

	// Header carries sha256=v1=<hex>; verify against the raw body. The
	// timestamp is the dispatcher's, so recompute over a small window.
	require.True(t, strings.HasPrefix(gotSignature, "sha256=v1="))
	sig := strings.TrimPrefix(gotSignature, "sha256=")
	verified := false
	now := time.Now().Unix()
	for ts := now - 5; ts <= now; ts++ {
		if VerifySignature("topsecret", ts, gotBody, sig) {
			verified = true
			break
		}
	}
	assert.True(t, verified, "signature must verify with the endpoint secret")
}

func TestDispatcher_Attempt_FailureSchedulesRetry(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	delivery := env.seedDelivery(t, server.URL, "s")
	before := time.Now()
	env.dispatcher.Attempt(ctx, delivery)

	row, err := env.client.WebhookDelivery.Get(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, "retrying", string(row.Status))
	assert.Equal(t, 1, row.AttemptCount)
	require.NotNil(t, row.NextAttemptAt)
	assert.WithinDuration(t, before.Add(RetrySchedule[0]), *row.NextAttemptAt, 2*time.Second)
	require.NotNil(t, row.LastStatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, *row.LastStatusCode)
}

func TestDispatcher_Attempt_ExhaustionIsTerminal(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	delivery := env.seedDelivery(t, server.URL, "s")
	// Simulate a delivery that has already burned the whole schedule.
	_, err := env.client.WebhookDelivery.UpdateOneID(delivery.ID).
		SetAttemptCount(len(RetrySchedule)).
		Save(ctx)
	require.NoError(t, err)
	delivery.AttemptCount = len(RetrySchedule)

	env.dispatcher.Attempt(ctx, delivery)

	row, err := env.client.WebhookDelivery.Get(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(row.Status))
	assert.Nil(t, row.NextAttemptAt)

	// Exhaustion counts against the endpoint.
	ep, err := env.client.WebhookEndpoint.Get(ctx, delivery.EndpointID)
	require.NoError(t, err)
	assert.Equal(t, 1, ep.ConsecutiveFailures)
}

func TestDispatcher_Attempt_PerDeliveryAttemptBound(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	delivery := env.seedDelivery(t, server.URL, "s")
	// A single-attempt delivery fails terminally on its first failure even
	// though the retry schedule has room.
	_, err := env.client.WebhookDelivery.UpdateOneID(delivery.ID).
		SetMaxAttempts(1).
		Save(ctx)
	require.NoError(t, err)
	delivery.MaxAttempts = 1

	env.dispatcher.Attempt(ctx, delivery)

	row, err := env.client.WebhookDelivery.Get(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(row.Status))
	assert.Nil(t, row.NextAttemptAt)
}

func TestDispatcher_Sweep(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	first := env.seedDelivery(t, server.URL, "s")
	second := env.seedDelivery(t, server.URL, "s")

	env.dispatcher.sweep(ctx)

	assert.Equal(t, int32(2), hits.Load())
	for _, id := range []string{first.ID, second.ID} {
		row, err := env.client.WebhookDelivery.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "delivered", string(row.Status))
	}
}

func TestEmitter_EmitNeverFailsCaller(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Endpoint created directly so the test server URL is accepted.
	_, err := env.client.WebhookEndpoint.Create().
		SetID(ids.NewEndpointID()).
		SetAccountID("acct-emit").
		SetURL(server.URL).
		SetSigningSecret("s").
		Save(ctx)
	require.NoError(t, err)

	emitter := NewEmitter(env.svc, env.dispatcher, slog.New(slog.DiscardHandler))

	emitter.Emit(ctx, "acct-emit", "drift.detected", map[string]any{"agent_id": "smolt-abc"})
	emitter.Emit(ctx, "", "drift.detected", nil) // no account, silently dropped
	emitter.Drain()

	assert.Equal(t, int32(1), hits.Load())

	n, err := env.client.WebhookDelivery.Query().
		Where(webhookdelivery.StatusEQ(webhookdelivery.StatusDelivered)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEmitter_DrainWaitsForInlineAttempts(t *testing.T) {
	env := newDispatcherEnv(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := env.client.WebhookEndpoint.Create().
		SetID(ids.NewEndpointID()).
		SetAccountID("acct-drain").
		SetURL(server.URL).
		SetSigningSecret("s").
		Save(ctx)
	require.NoError(t, err)

	emitter := NewEmitter(env.svc, env.dispatcher, slog.New(slog.DiscardHandler))
	emitter.Emit(ctx, "acct-drain", "integrity.violation", map[string]any{"checkpoint_id": "ic-slow0001"})
	emitter.Drain()

	// The slow inline attempt finished before Drain returned.
	n, err := env.client.WebhookDelivery.Query().
		Where(webhookdelivery.StatusEQ(webhookdelivery.StatusDelivered)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
