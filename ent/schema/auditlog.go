package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity: operator and
// system actions on agents (containment transitions, card changes).
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable().
			Comment("al-<rand8>"),
		field.String("agent_id"),
		field.String("action").
			Comment("e.g. auto_pause, manual_pause, resume, card_update"),
		field.String("actor").
			Comment("system or an operator identity"),
		field.String("reason").
			Optional(),
		field.String("previous_status").
			Optional(),
		field.String("new_status").
			Optional(),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("audit_logs").
			Field("agent_id").
			Unique().
			Required(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
		index.Fields("created_at"),
	}
}
