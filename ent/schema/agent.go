package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// Agents are created lazily on the first request bearing an unseen
// credential and are never deleted, only contained.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable().
			Comment("smolt-<hash8>"),
		field.String("agent_hash").
			Unique().
			Immutable().
			Comment("First 16 hex chars of SHA-256(credential)"),
		field.String("account_id").
			Optional(),
		field.Enum("enforcement_mode").
			Values("observe", "nudge", "enforce").
			Default("observe"),
		field.Enum("containment_status").
			Values("active", "paused", "killed").
			Default("active"),
		field.Int("auto_containment_threshold").
			Optional().
			Nillable().
			Comment("Consecutive boundary violations before auto-pause"),
		field.Enum("nudge_strategy").
			Values("always", "sampling", "threshold", "off").
			Default("always"),
		field.Int("nudge_rate").
			Default(100).
			Comment("Delivery probability percent for the sampling strategy"),
		field.Int("nudge_threshold").
			Default(1).
			Comment("Session violations before delivery for the threshold strategy"),
		field.Bool("aip_disabled").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cards", AlignmentCard.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", IntegrityCheckpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("merkle_tree", MerkleTree.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("nudges", Nudge.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_logs", AuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_hash"),
		index.Fields("account_id"),
		index.Fields("containment_status"),
	}
}
