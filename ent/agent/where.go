// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// AgentHash applies equality check predicate on the "agent_hash" field. It's identical to AgentHashEQ.
func AgentHash(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentHash, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAccountID, v))
}

// AutoContainmentThreshold applies equality check predicate on the "auto_containment_threshold" field. It's identical to AutoContainmentThresholdEQ.
func AutoContainmentThreshold(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAutoContainmentThreshold, v))
}

// NudgeRate applies equality check predicate on the "nudge_rate" field. It's identical to NudgeRateEQ.
func NudgeRate(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldNudgeRate, v))
}

// NudgeThreshold applies equality check predicate on the "nudge_threshold" field. It's identical to NudgeThresholdEQ.
func NudgeThreshold(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldNudgeThreshold, v))
}

// AipDisabled applies equality check predicate on the "aip_disabled" field. It's identical to AipDisabledEQ.
func AipDisabled(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAipDisabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentHashEQ applies the EQ predicate on the "agent_hash" field.
func AgentHashEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentHash, v))
}

// AgentHashNEQ applies the NEQ predicate on the "agent_hash" field.
func AgentHashNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentHash, v))
}

// AgentHashIn applies the In predicate on the "agent_hash" field.
func AgentHashIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentHash, vs...))
}

// AgentHashNotIn applies the NotIn predicate on the "agent_hash" field.
func AgentHashNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentHash, vs...))
}

// AgentHashGT applies the GT predicate on the "agent_hash" field.
func AgentHashGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAgentHash, v))
}

// AgentHashGTE applies the GTE predicate on the "agent_hash" field.
func AgentHashGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAgentHash, v))
}

// AgentHashLT applies the LT predicate on the "agent_hash" field.
func AgentHashLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAgentHash, v))
}

// AgentHashLTE applies the LTE predicate on the "agent_hash" field.
func AgentHashLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAgentHash, v))
}

// AgentHashContains applies the Contains predicate on the "agent_hash" field.
func AgentHashContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAgentHash, v))
}

// AgentHashHasPrefix applies the HasPrefix predicate on the "agent_hash" field.
func AgentHashHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAgentHash, v))
}

// AgentHashHasSuffix applies the HasSuffix predicate on the "agent_hash" field.
func AgentHashHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAgentHash, v))
}

// AgentHashEqualFold applies the EqualFold predicate on the "agent_hash" field.
func AgentHashEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAgentHash, v))
}

// AgentHashContainsFold applies the ContainsFold predicate on the "agent_hash" field.
func AgentHashContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAgentHash, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDIsNil applies the IsNil predicate on the "account_id" field.
func AccountIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldAccountID))
}

// AccountIDNotNil applies the NotNil predicate on the "account_id" field.
func AccountIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldAccountID))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAccountID, v))
}

// EnforcementModeEQ applies the EQ predicate on the "enforcement_mode" field.
func EnforcementModeEQ(v EnforcementMode) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEnforcementMode, v))
}

// EnforcementModeNEQ applies the NEQ predicate on the "enforcement_mode" field.
func EnforcementModeNEQ(v EnforcementMode) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldEnforcementMode, v))
}

// EnforcementModeIn applies the In predicate on the "enforcement_mode" field.
func EnforcementModeIn(vs ...EnforcementMode) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldEnforcementMode, vs...))
}

// EnforcementModeNotIn applies the NotIn predicate on the "enforcement_mode" field.
func EnforcementModeNotIn(vs ...EnforcementMode) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldEnforcementMode, vs...))
}

// ContainmentStatusEQ applies the EQ predicate on the "containment_status" field.
func ContainmentStatusEQ(v ContainmentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContainmentStatus, v))
}

// ContainmentStatusNEQ applies the NEQ predicate on the "containment_status" field.
func ContainmentStatusNEQ(v ContainmentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldContainmentStatus, v))
}

// ContainmentStatusIn applies the In predicate on the "containment_status" field.
func ContainmentStatusIn(vs ...ContainmentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldContainmentStatus, vs...))
}

// ContainmentStatusNotIn applies the NotIn predicate on the "containment_status" field.
func ContainmentStatusNotIn(vs ...ContainmentStatus) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldContainmentStatus, vs...))
}

// AutoContainmentThresholdEQ applies the EQ predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAutoContainmentThreshold, v))
}

// AutoContainmentThresholdNEQ applies the NEQ predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAutoContainmentThreshold, v))
}

// AutoContainmentThresholdIn applies the In predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAutoContainmentThreshold, vs...))
}

// AutoContainmentThresholdNotIn applies the NotIn predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAutoContainmentThreshold, vs...))
}

// AutoContainmentThresholdGT applies the GT predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAutoContainmentThreshold, v))
}

// AutoContainmentThresholdGTE applies the GTE predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAutoContainmentThreshold, v))
}

// AutoContainmentThresholdLT applies the LT predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAutoContainmentThreshold, v))
}

// AutoContainmentThresholdLTE applies the LTE predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAutoContainmentThreshold, v))
}

// AutoContainmentThresholdIsNil applies the IsNil predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldAutoContainmentThreshold))
}

// AutoContainmentThresholdNotNil applies the NotNil predicate on the "auto_containment_threshold" field.
func AutoContainmentThresholdNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldAutoContainmentThreshold))
}

// NudgeStrategyEQ applies the EQ predicate on the "nudge_strategy" field.
func NudgeStrategyEQ(v NudgeStrategy) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldNudgeStrategy, v))
}

// NudgeStrategyNEQ applies the NEQ predicate on the "nudge_strategy" field.
func NudgeStrategyNEQ(v NudgeStrategy) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldNudgeStrategy, v))
}

// NudgeStrategyIn applies the In predicate on the "nudge_strategy" field.
func NudgeStrategyIn(vs ...NudgeStrategy) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldNudgeStrategy, vs...))
}

// NudgeStrategyNotIn applies the NotIn predicate on the "nudge_strategy" field.
func NudgeStrategyNotIn(vs ...NudgeStrategy) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldNudgeStrategy, vs...))
}

// NudgeRateEQ applies the EQ predicate on the "nudge_rate" field.
func NudgeRateEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldNudgeRate, v))
}

// NudgeRateNEQ applies the NEQ predicate on the "nudge_rate" field.
func NudgeRateNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldNudgeRate, v))
}

// NudgeRateIn applies the In predicate on the "nudge_rate" field.
func NudgeRateIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldNudgeRate, vs...))
}

// NudgeRateNotIn applies the NotIn predicate on the "nudge_rate" field.
func NudgeRateNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldNudgeRate, vs...))
}

// NudgeRateGT applies the GT predicate on the "nudge_rate" field.
func NudgeRateGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldNudgeRate, v))
}

// NudgeRateGTE applies the GTE predicate on the "nudge_rate" field.
func NudgeRateGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldNudgeRate, v))
}

// NudgeRateLT applies the LT predicate on the "nudge_rate" field.
func NudgeRateLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldNudgeRate, v))
}

// NudgeRateLTE applies the LTE predicate on the "nudge_rate" field.
func NudgeRateLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldNudgeRate, v))
}

// NudgeThresholdEQ applies the EQ predicate on the "nudge_threshold" field.
func NudgeThresholdEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldNudgeThreshold, v))
}

// NudgeThresholdNEQ applies the NEQ predicate on the "nudge_threshold" field.
func NudgeThresholdNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldNudgeThreshold, v))
}

// NudgeThresholdIn applies the In predicate on the "nudge_threshold" field.
func NudgeThresholdIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldNudgeThreshold, vs...))
}

// NudgeThresholdNotIn applies the NotIn predicate on the "nudge_threshold" field.
func NudgeThresholdNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldNudgeThreshold, vs...))
}

// NudgeThresholdGT applies the GT predicate on the "nudge_threshold" field.
func NudgeThresholdGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldNudgeThreshold, v))
}

// NudgeThresholdGTE applies the GTE predicate on the "nudge_threshold" field.
func NudgeThresholdGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldNudgeThreshold, v))
}

// NudgeThresholdLT applies the LT predicate on the "nudge_threshold" field.
func NudgeThresholdLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldNudgeThreshold, v))
}

// NudgeThresholdLTE applies the LTE predicate on the "nudge_threshold" field.
func NudgeThresholdLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldNudgeThreshold, v))
}

// AipDisabledEQ applies the EQ predicate on the "aip_disabled" field.
func AipDisabledEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAipDisabled, v))
}

// AipDisabledNEQ applies the NEQ predicate on the "aip_disabled" field.
func AipDisabledNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAipDisabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCards applies the HasEdge predicate on the "cards" edge.
func HasCards() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CardsTable, CardsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCardsWith applies the HasEdge predicate on the "cards" edge with a given conditions (other predicates).
func HasCardsWith(preds ...predicate.AlignmentCard) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newCardsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.IntegrityCheckpoint) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMerkleTree applies the HasEdge predicate on the "merkle_tree" edge.
func HasMerkleTree() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MerkleTreeTable, MerkleTreeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMerkleTreeWith applies the HasEdge predicate on the "merkle_tree" edge with a given conditions (other predicates).
func HasMerkleTreeWith(preds ...predicate.MerkleTree) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newMerkleTreeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNudges applies the HasEdge predicate on the "nudges" edge.
func HasNudges() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NudgesTable, NudgesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNudgesWith applies the HasEdge predicate on the "nudges" edge with a given conditions (other predicates).
func HasNudgesWith(preds ...predicate.Nudge) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newNudgesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
