// Code generated by ent, DO NOT EDIT.

package merkletree

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldAgentID, v))
}

// Root applies equality check predicate on the "root" field. It's identical to RootEQ.
func Root(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldRoot, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldDepth, v))
}

// LeafCount applies equality check predicate on the "leaf_count" field. It's identical to LeafCountEQ.
func LeafCount(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldLeafCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldContainsFold(FieldAgentID, v))
}

// RootEQ applies the EQ predicate on the "root" field.
func RootEQ(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldRoot, v))
}

// RootNEQ applies the NEQ predicate on the "root" field.
func RootNEQ(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNEQ(FieldRoot, v))
}

// RootIn applies the In predicate on the "root" field.
func RootIn(vs ...string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldIn(FieldRoot, vs...))
}

// RootNotIn applies the NotIn predicate on the "root" field.
func RootNotIn(vs ...string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNotIn(FieldRoot, vs...))
}

// RootGT applies the GT predicate on the "root" field.
func RootGT(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGT(FieldRoot, v))
}

// RootGTE applies the GTE predicate on the "root" field.
func RootGTE(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGTE(FieldRoot, v))
}

// RootLT applies the LT predicate on the "root" field.
func RootLT(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLT(FieldRoot, v))
}

// RootLTE applies the LTE predicate on the "root" field.
func RootLTE(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLTE(FieldRoot, v))
}

// RootContains applies the Contains predicate on the "root" field.
func RootContains(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldContains(FieldRoot, v))
}

// RootHasPrefix applies the HasPrefix predicate on the "root" field.
func RootHasPrefix(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldHasPrefix(FieldRoot, v))
}

// RootHasSuffix applies the HasSuffix predicate on the "root" field.
func RootHasSuffix(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldHasSuffix(FieldRoot, v))
}

// RootEqualFold applies the EqualFold predicate on the "root" field.
func RootEqualFold(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEqualFold(FieldRoot, v))
}

// RootContainsFold applies the ContainsFold predicate on the "root" field.
func RootContainsFold(v string) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldContainsFold(FieldRoot, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLTE(FieldDepth, v))
}

// LeafCountEQ applies the EQ predicate on the "leaf_count" field.
func LeafCountEQ(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldLeafCount, v))
}

// LeafCountNEQ applies the NEQ predicate on the "leaf_count" field.
func LeafCountNEQ(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNEQ(FieldLeafCount, v))
}

// LeafCountIn applies the In predicate on the "leaf_count" field.
func LeafCountIn(vs ...int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldIn(FieldLeafCount, vs...))
}

// LeafCountNotIn applies the NotIn predicate on the "leaf_count" field.
func LeafCountNotIn(vs ...int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNotIn(FieldLeafCount, vs...))
}

// LeafCountGT applies the GT predicate on the "leaf_count" field.
func LeafCountGT(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGT(FieldLeafCount, v))
}

// LeafCountGTE applies the GTE predicate on the "leaf_count" field.
func LeafCountGTE(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGTE(FieldLeafCount, v))
}

// LeafCountLT applies the LT predicate on the "leaf_count" field.
func LeafCountLT(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLT(FieldLeafCount, v))
}

// LeafCountLTE applies the LTE predicate on the "leaf_count" field.
func LeafCountLTE(v int) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLTE(FieldLeafCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MerkleTree {
	return predicate.MerkleTree(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.MerkleTree {
	return predicate.MerkleTree(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.MerkleTree {
	return predicate.MerkleTree(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MerkleTree) predicate.MerkleTree {
	return predicate.MerkleTree(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MerkleTree) predicate.MerkleTree {
	return predicate.MerkleTree(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MerkleTree) predicate.MerkleTree {
	return predicate.MerkleTree(sql.NotPredicates(p))
}
