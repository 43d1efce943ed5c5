package models

import "time"

// Webhook event types emitted by the pipeline.
const (
	EventIntegrityViolation = "integrity.violation"
	EventDriftDetected      = "drift.detected"
	EventQuotaWarning       = "quota.warning"
	EventAgentContained     = "agent.contained"
	EventCheckpointCreated  = "checkpoint.created"
)

// WebhookEndpoint is a subscriber-registered delivery target.
// The signing secret is revealed exactly once at create/rotate time and is
// never included in list/get responses.
type WebhookEndpoint struct {
	EndpointID          string     `json:"endpoint_id"`
	AccountID           string     `json:"account_id"`
	URL                 string     `json:"url"`
	Description         string     `json:"description,omitempty"`
	SigningSecret       string     `json:"-"`
	EventTypes          []string   `json:"event_types"`
	IsActive            bool       `json:"is_active"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	DisabledAt          *time.Time `json:"disabled_at,omitempty"`
	DisabledReason      string     `json:"disabled_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// Matches reports whether the endpoint subscribes to the given event type.
// An empty event_types set means "all".
func (e *WebhookEndpoint) Matches(eventType string) bool {
	if len(e.EventTypes) == 0 {
		return true
	}
	for _, t := range e.EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// WebhookEvent is the persisted event record. The wire envelope is built by
// EventEnvelope.
type WebhookEvent struct {
	EventID   string         `json:"event_id"`
	Type      string         `json:"type"`
	AccountID string         `json:"account_id"`
	CreatedAt time.Time      `json:"created_at"`
	Data      map[string]any `json:"data"`
}

// EventEnvelope is the payload sent on the wire to subscriber endpoints.
type EventEnvelope struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	CreatedAt string         `json:"created_at"`
	AccountID string         `json:"account_id"`
	Data      map[string]any `json:"data"`
}

// Envelope builds the wire representation of the event.
func (e *WebhookEvent) Envelope() EventEnvelope {
	return EventEnvelope{
		ID:        e.EventID,
		Type:      e.Type,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		AccountID: e.AccountID,
		Data:      e.Data,
	}
}

// WebhookDelivery tracks one attempt chain for (event, endpoint).
// One event fans out to N deliveries, one per matching active endpoint.
type WebhookDelivery struct {
	DeliveryID         string         `json:"delivery_id"`
	EventID            string         `json:"event_id"`
	EndpointID         string         `json:"endpoint_id"`
	Status             DeliveryStatus `json:"status"`
	AttemptCount       int            `json:"attempt_count"`
	MaxAttempts        int            `json:"max_attempts"`
	NextAttemptAt      *time.Time     `json:"next_attempt_at,omitempty"`
	LastAttemptAt      *time.Time     `json:"last_attempt_at,omitempty"`
	LastResponseStatus int            `json:"last_response_status,omitempty"`
	LastResponseBody   string         `json:"last_response_body,omitempty"`
	LastError          string         `json:"last_error,omitempty"`
	LatencyMs          int64          `json:"latency_ms,omitempty"`
}
