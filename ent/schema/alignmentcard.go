package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlignmentCard holds the schema definition for the AlignmentCard entity.
// Exactly one card is active per agent at any instant.
type AlignmentCard struct {
	ent.Schema
}

// Fields of the AlignmentCard.
func (AlignmentCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("card_id").
			Unique().
			Immutable().
			Comment("ac-<suffix>"),
		field.String("agent_id"),
		field.String("principal").
			Optional(),
		field.String("role").
			Optional(),
		field.Text("description").
			Optional(),
		field.JSON("declared_values", []map[string]interface{}{}).
			Comment("Ordered sequence of {name, priority?, description?}"),
		field.JSON("bounded_actions", []string{}).
			Optional(),
		field.JSON("forbidden_actions", []string{}).
			Optional(),
		field.JSON("escalation_triggers", []map[string]interface{}{}).
			Optional().
			Comment("Ordered sequence of {condition, action, reason?}"),
		field.String("audit_commitment").
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AlignmentCard.
func (AlignmentCard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("cards").
			Field("agent_id").
			Unique().
			Required(),
	}
}

// Indexes of the AlignmentCard.
func (AlignmentCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "is_active"),
	}
}
