package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntegrityCheckpoint holds the schema definition for the IntegrityCheckpoint
// entity. Records are immutable once written; writes are upserts keyed by
// checkpoint_id with merge-duplicates semantics.
type IntegrityCheckpoint struct {
	ent.Schema
}

// Fields of the IntegrityCheckpoint.
func (IntegrityCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable().
			Comment("ic-<rand8>"),
		field.String("agent_id"),
		field.String("card_id").
			Optional(),
		field.String("session_id").
			Comment("<agent_hash>-<hour bucket>"),
		field.Time("timestamp"),
		field.Enum("provider").
			Values("anthropic", "openai", "gemini"),
		field.String("model").
			Optional(),
		field.String("thinking_block_hash").
			Optional().
			Comment("SHA-256 hex of the reasoning text; empty for synthetic checkpoints without thinking"),
		field.Enum("verdict").
			Values("clear", "review_needed", "boundary_violation"),
		field.JSON("concerns", []map[string]interface{}{}).
			Optional(),
		field.Text("reasoning_summary").
			Optional(),
		field.JSON("conscience_context", map[string]interface{}{}).
			Optional(),
		field.JSON("window_position", map[string]interface{}{}).
			Optional(),
		field.JSON("analysis_metadata", map[string]interface{}{}).
			Optional(),
		field.String("linked_trace_id").
			Optional().
			Nillable(),
		field.Enum("source").
			Values("gateway", "observer", "hybrid").
			Default("gateway"),
		field.Bool("synthetic").
			Default(false),

		// Attestation binding; all empty when attestation is disabled or failed.
		field.String("input_commitment").
			Optional(),
		field.String("chain_hash").
			Optional(),
		field.String("prev_chain_hash").
			Optional(),
		field.Int("merkle_leaf_index").
			Optional().
			Nillable(),
		field.String("certificate_id").
			Optional(),
		field.Text("signature").
			Optional().
			Comment("Base64 Ed25519 signature over the canonical signed payload"),
		field.String("signing_key_id").
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the IntegrityCheckpoint.
func (IntegrityCheckpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("checkpoints").
			Field("agent_id").
			Unique().
			Required(),
	}
}

// Indexes of the IntegrityCheckpoint.
func (IntegrityCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("verdict"),
		index.Fields("agent_id", "session_id", "timestamp"),
		index.Fields("chain_hash").
			Annotations(entsql.IndexWhere("chain_hash <> ''")),
	}
}
