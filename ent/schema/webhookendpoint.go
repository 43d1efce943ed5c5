package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEndpoint holds the schema definition for the WebhookEndpoint entity.
type WebhookEndpoint struct {
	ent.Schema
}

// Fields of the WebhookEndpoint.
func (WebhookEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("endpoint_id").
			Unique().
			Immutable().
			Comment("whe-<rand8>"),
		field.String("account_id"),
		field.String("url").
			Comment("HTTPS only"),
		field.String("description").
			Optional(),
		field.String("signing_secret").
			Sensitive().
			Comment("256-bit hex, revealed exactly once at create/rotate"),
		field.JSON("event_types", []string{}).
			Optional().
			Comment("Empty means all event types"),
		field.Bool("is_active").
			Default(true),
		field.Int("consecutive_failures").
			Default(0),
		field.Time("disabled_at").
			Optional().
			Nillable(),
		field.String("disabled_reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WebhookEndpoint.
func (WebhookEndpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deliveries", WebhookDelivery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WebhookEndpoint.
func (WebhookEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("account_id", "is_active"),
	}
}
