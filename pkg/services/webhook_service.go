package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/ent/webhookendpoint"
	"github.com/mnemom/smoltbot/pkg/ids"
)

// DisableThreshold is the number of consecutive exhausted deliveries after
// which an endpoint is automatically disabled.
const DisableThreshold = 10

// WebhookService manages webhook endpoints, events, and delivery records.
// The HTTP dispatch itself lives in pkg/webhook; this service owns the
// persistence contract: atomic fanout, attempt bookkeeping, and
// failure-driven endpoint disabling.
type WebhookService struct {
	client *ent.Client
	now    func() time.Time
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	return &WebhookService{client: client, now: time.Now}
}

// CreateEndpoint registers a delivery target and returns it together with the
// plaintext signing secret. The secret is surfaced exactly here and at
// rotation; it is never included in later reads.
func (s *WebhookService) CreateEndpoint(ctx context.Context, accountID, rawURL, description string, eventTypes []string) (*ent.WebhookEndpoint, string, error) {
	if accountID == "" {
		return nil, "", NewValidationError("account_id", "required")
	}
	if err := validateEndpointURL(rawURL); err != nil {
		return nil, "", err
	}

	secret, err := newSigningSecret()
	if err != nil {
		return nil, "", err
	}

	builder := s.client.WebhookEndpoint.Create().
		SetID(ids.NewEndpointID()).
		SetAccountID(accountID).
		SetURL(rawURL).
		SetSigningSecret(secret)
	if description != "" {
		builder.SetDescription(description)
	}
	if len(eventTypes) > 0 {
		builder.SetEventTypes(eventTypes)
	}

	endpoint, err := builder.Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create endpoint: %w", err)
	}
	return endpoint, secret, nil
}

// RotateSecret replaces the endpoint's signing secret and returns the new
// plaintext value.
func (s *WebhookService) RotateSecret(ctx context.Context, endpointID string) (string, error) {
	secret, err := newSigningSecret()
	if err != nil {
		return "", err
	}
	err = s.client.WebhookEndpoint.UpdateOneID(endpointID).
		SetSigningSecret(secret).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("endpoint %s: %w", endpointID, ErrNotFound)
		}
		return "", fmt.Errorf("failed to rotate secret: %w", err)
	}
	return secret, nil
}

// ListEndpoints returns the account's endpoints, newest first.
func (s *WebhookService) ListEndpoints(ctx context.Context, accountID string) ([]*ent.WebhookEndpoint, error) {
	rows, err := s.client.WebhookEndpoint.Query().
		Where(webhookendpoint.AccountID(accountID)).
		Order(ent.Desc(webhookendpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}
	return rows, nil
}

// DeleteEndpoint removes the endpoint and, via cascade, its deliveries.
func (s *WebhookService) DeleteEndpoint(ctx context.Context, endpointID string) error {
	err := s.client.WebhookEndpoint.DeleteOneID(endpointID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("endpoint %s: %w", endpointID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete endpoint: %w", err)
	}
	return nil
}

// ReEnableEndpoint reactivates a disabled endpoint and resets its failure
// counter.
func (s *WebhookService) ReEnableEndpoint(ctx context.Context, endpointID string) error {
	err := s.client.WebhookEndpoint.UpdateOneID(endpointID).
		SetIsActive(true).
		SetConsecutiveFailures(0).
		ClearDisabledAt().
		SetDisabledReason("").
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("endpoint %s: %w", endpointID, ErrNotFound)
		}
		return fmt.Errorf("failed to re-enable endpoint: %w", err)
	}
	return nil
}

// RecordEvent persists the event and fans out one pending delivery per
// matching active endpoint, all in one transaction. Returns the deliveries
// with their event and endpoint edges loaded so the caller can attempt
// inline dispatch without further reads.
func (s *WebhookService) RecordEvent(ctx context.Context, accountID, eventType string, data map[string]any) (*ent.WebhookEvent, []*ent.WebhookDelivery, error) {
	if accountID == "" {
		return nil, nil, NewValidationError("account_id", "required")
	}
	if eventType == "" {
		return nil, nil, NewValidationError("event_type", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := tx.WebhookEvent.Create().
		SetID(ids.NewEventID()).
		SetAccountID(accountID).
		SetEventType(eventType).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create event: %w", err)
	}

	endpoints, err := tx.WebhookEndpoint.Query().
		Where(
			webhookendpoint.AccountID(accountID),
			webhookendpoint.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query endpoints: %w", err)
	}

	now := s.now()
	deliveryIDs := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		if !matchesEventType(ep.EventTypes, eventType) {
			continue
		}
		d, err := tx.WebhookDelivery.Create().
			SetID(ids.NewDeliveryID()).
			SetEventID(event.ID).
			SetEndpointID(ep.ID).
			SetStatus(webhookdelivery.StatusPending).
			SetNextAttemptAt(now).
			Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create delivery: %w", err)
		}
		deliveryIDs = append(deliveryIDs, d.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit event fanout: %w", err)
	}

	if len(deliveryIDs) == 0 {
		return event, nil, nil
	}
	deliveries, err := s.client.WebhookDelivery.Query().
		Where(webhookdelivery.IDIn(deliveryIDs...)).
		WithEvent().
		WithEndpoint().
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load deliveries: %w", err)
	}
	return event, deliveries, nil
}

// ClaimDue atomically claims up to limit deliveries whose next attempt is
// due, transitioning them to delivering. Row locks are skipped rather than
// waited on, so concurrent retry workers never process the same delivery.
func (s *WebhookService) ClaimDue(ctx context.Context, limit int) ([]*ent.WebhookDelivery, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	due, err := tx.WebhookDelivery.Query().
		Where(
			webhookdelivery.StatusIn(webhookdelivery.StatusPending, webhookdelivery.StatusRetrying),
			webhookdelivery.NextAttemptAtLTE(s.now()),
		).
		Order(ent.Asc(webhookdelivery.FieldNextAttemptAt)).
		Limit(limit).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due deliveries: %w", err)
	}
	if len(due) == 0 {
		return nil, tx.Commit()
	}

	claimedIDs := make([]string, 0, len(due))
	for _, d := range due {
		claimedIDs = append(claimedIDs, d.ID)
	}
	_, err = tx.WebhookDelivery.Update().
		Where(webhookdelivery.IDIn(claimedIDs...)).
		SetStatus(webhookdelivery.StatusDelivering).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim deliveries: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	deliveries, err := s.client.WebhookDelivery.Query().
		Where(webhookdelivery.IDIn(claimedIDs...)).
		WithEvent().
		WithEndpoint().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claimed deliveries: %w", err)
	}
	return deliveries, nil
}

// AttemptRecord captures the observable outcome of one delivery attempt.
// ResponseBody is truncated before storage.
type AttemptRecord struct {
	StatusCode   int
	ResponseBody string
	Latency      time.Duration
}

// MarkDelivered records a successful attempt and resets the endpoint's
// consecutive failure counter.
func (s *WebhookService) MarkDelivered(ctx context.Context, deliveryID string, rec AttemptRecord) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.WebhookDelivery.UpdateOneID(deliveryID).
		SetStatus(webhookdelivery.StatusDelivered).
		AddAttemptCount(1).
		SetLastStatusCode(rec.StatusCode).
		SetLastResponseBody(truncateBody(rec.ResponseBody)).
		SetLatencyMs(int(rec.Latency.Milliseconds())).
		SetLastAttemptAt(s.now()).
		SetDeliveredAt(s.now()).
		ClearNextAttemptAt().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("delivery %s: %w", deliveryID, ErrNotFound)
		}
		return fmt.Errorf("failed to mark delivery succeeded: %w", err)
	}

	err = tx.WebhookEndpoint.UpdateOneID(d.EndpointID).
		SetConsecutiveFailures(0).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset endpoint failures: %w", err)
	}
	return tx.Commit()
}

// MarkFailedAttempt records a failed attempt. A non-nil nextAttempt
// schedules a retry; nil marks the delivery exhausted, increments the
// endpoint's consecutive failure counter, and disables the endpoint once the
// counter crosses DisableThreshold.
func (s *WebhookService) MarkFailedAttempt(ctx context.Context, deliveryID string, rec AttemptRecord, errMsg string, nextAttempt *time.Time) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	upd := tx.WebhookDelivery.UpdateOneID(deliveryID).
		AddAttemptCount(1).
		SetLastAttemptAt(s.now()).
		SetLatencyMs(int(rec.Latency.Milliseconds())).
		SetLastError(truncateError(errMsg))
	if rec.StatusCode > 0 {
		upd.SetLastStatusCode(rec.StatusCode)
	}
	if rec.ResponseBody != "" {
		upd.SetLastResponseBody(truncateBody(rec.ResponseBody))
	}
	if nextAttempt != nil {
		upd.SetStatus(webhookdelivery.StatusRetrying).
			SetNextAttemptAt(*nextAttempt)
	} else {
		upd.SetStatus(webhookdelivery.StatusFailed).
			ClearNextAttemptAt()
	}

	d, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("delivery %s: %w", deliveryID, ErrNotFound)
		}
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	if nextAttempt == nil {
		ep, err := tx.WebhookEndpoint.UpdateOneID(d.EndpointID).
			AddConsecutiveFailures(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to count endpoint failure: %w", err)
		}
		if ep.ConsecutiveFailures >= DisableThreshold && ep.IsActive {
			err = tx.WebhookEndpoint.UpdateOneID(ep.ID).
				SetIsActive(false).
				SetDisabledAt(s.now()).
				SetDisabledReason(fmt.Sprintf("%d consecutive failed deliveries", ep.ConsecutiveFailures)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to disable endpoint: %w", err)
			}
		}
	}
	return tx.Commit()
}

// Redeliver creates a fresh pending delivery for the same event and endpoint.
// The original delivery rows are preserved for audit.
func (s *WebhookService) Redeliver(ctx context.Context, deliveryID string) (*ent.WebhookDelivery, error) {
	orig, err := s.client.WebhookDelivery.Get(ctx, deliveryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("delivery %s: %w", deliveryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load delivery: %w", err)
	}

	row, err := s.client.WebhookDelivery.Create().
		SetID(ids.NewRedeliveryID()).
		SetEventID(orig.EventID).
		SetEndpointID(orig.EndpointID).
		SetStatus(webhookdelivery.StatusPending).
		SetMaxAttempts(orig.MaxAttempts).
		SetNextAttemptAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create re-delivery: %w", err)
	}
	return row, nil
}

func matchesEventType(subscribed []string, eventType string) bool {
	if len(subscribed) == 0 {
		return true
	}
	for _, t := range subscribed {
		if t == eventType {
			return true
		}
	}
	return false
}

func validateEndpointURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return NewValidationError("url", "must be a valid URL")
	}
	if u.Scheme != "https" {
		return NewValidationError("url", "must use https")
	}
	return nil
}

// newSigningSecret returns a 256-bit hex secret.
func newSigningSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate signing secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func truncateError(msg string) string {
	const max = 500
	if len(msg) > max {
		return msg[:max]
	}
	return msg
}

// truncateBody bounds the stored endpoint response at 1 KB. Enough to debug
// a misbehaving subscriber without hoarding payloads.
func truncateBody(body string) string {
	const max = 1024
	if len(body) > max {
		return body[:max]
	}
	return body
}
