package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Nudge holds the schema definition for the Nudge entity: a system-prompt
// injection queued for the agent's next request after a boundary violation.
type Nudge struct {
	ent.Schema
}

// Fields of the Nudge.
func (Nudge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("nudge_id").
			Unique().
			Immutable().
			Comment("nudge-<rand8>"),
		field.String("agent_id"),
		field.String("checkpoint_id").
			Optional().
			Comment("Violation checkpoint that triggered this nudge"),
		field.String("session_id").
			Optional(),
		field.Text("message").
			Comment("Category-level summary only; never verbatim reasoning or PII"),
		field.Enum("status").
			Values("pending", "delivered", "expired").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Nudge.
func (Nudge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("nudges").
			Field("agent_id").
			Unique().
			Required(),
	}
}

// Indexes of the Nudge.
func (Nudge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_id", "status", "created_at"),
	}
}
