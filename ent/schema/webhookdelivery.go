package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery holds the schema definition for the WebhookDelivery entity:
// one delivery attempt sequence per (event, endpoint). Operator re-delivery
// creates a new row; originals are preserved for audit.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_id").
			Unique().
			Immutable().
			Comment("whd-<rand8> (del-<rand12> for operator re-deliveries)"),
		field.String("event_id"),
		field.String("endpoint_id"),
		field.Enum("status").
			Values("pending", "delivering", "delivered", "failed", "retrying").
			Default("pending"),
		field.Int("attempt_count").
			Default(0),
		field.Int("max_attempts").
			Default(6).
			Comment("Per-delivery attempt bound; copied to re-deliveries"),
		field.Time("next_attempt_at").
			Optional().
			Nillable(),
		field.Time("last_attempt_at").
			Optional().
			Nillable(),
		field.Int("last_status_code").
			Optional().
			Nillable(),
		field.String("last_response_body").
			Optional().
			Comment("Truncated endpoint response from the latest attempt"),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WebhookDelivery.
func (WebhookDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", WebhookEvent.Type).
			Ref("deliveries").
			Field("event_id").
			Unique().
			Required(),
		edge.From("endpoint", WebhookEndpoint.Type).
			Ref("deliveries").
			Field("endpoint_id").
			Unique().
			Required(),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "next_attempt_at"),
		index.Fields("event_id", "endpoint_id"),
	}
}
