package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MerkleTree holds the schema definition for the MerkleTree entity: one
// accumulator snapshot per agent, replaced whole on every append.
type MerkleTree struct {
	ent.Schema
}

// Fields of the MerkleTree.
func (MerkleTree) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tree_id").
			Unique().
			Immutable().
			Comment("mt-<rand8>"),
		field.String("agent_id").
			Unique(),
		field.String("root").
			Comment("Hex root; empty string for a zero-leaf tree"),
		field.Int("depth").
			Default(0),
		field.Int("leaf_count").
			Default(0),
		field.JSON("leaves", []string{}).
			Comment("Ordered leaf hashes; the root is recomputable from these"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MerkleTree.
func (MerkleTree) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("merkle_tree").
			Field("agent_id").
			Unique().
			Required(),
	}
}
