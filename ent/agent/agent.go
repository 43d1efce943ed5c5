// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldAgentHash holds the string denoting the agent_hash field in the database.
	FieldAgentHash = "agent_hash"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldEnforcementMode holds the string denoting the enforcement_mode field in the database.
	FieldEnforcementMode = "enforcement_mode"
	// FieldContainmentStatus holds the string denoting the containment_status field in the database.
	FieldContainmentStatus = "containment_status"
	// FieldAutoContainmentThreshold holds the string denoting the auto_containment_threshold field in the database.
	FieldAutoContainmentThreshold = "auto_containment_threshold"
	// FieldNudgeStrategy holds the string denoting the nudge_strategy field in the database.
	FieldNudgeStrategy = "nudge_strategy"
	// FieldNudgeRate holds the string denoting the nudge_rate field in the database.
	FieldNudgeRate = "nudge_rate"
	// FieldNudgeThreshold holds the string denoting the nudge_threshold field in the database.
	FieldNudgeThreshold = "nudge_threshold"
	// FieldAipDisabled holds the string denoting the aip_disabled field in the database.
	FieldAipDisabled = "aip_disabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCards holds the string denoting the cards edge name in mutations.
	EdgeCards = "cards"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeMerkleTree holds the string denoting the merkle_tree edge name in mutations.
	EdgeMerkleTree = "merkle_tree"
	// EdgeNudges holds the string denoting the nudges edge name in mutations.
	EdgeNudges = "nudges"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// AlignmentCardFieldID holds the string denoting the ID field of the AlignmentCard.
	AlignmentCardFieldID = "card_id"
	// IntegrityCheckpointFieldID holds the string denoting the ID field of the IntegrityCheckpoint.
	IntegrityCheckpointFieldID = "checkpoint_id"
	// MerkleTreeFieldID holds the string denoting the ID field of the MerkleTree.
	MerkleTreeFieldID = "tree_id"
	// NudgeFieldID holds the string denoting the ID field of the Nudge.
	NudgeFieldID = "nudge_id"
	// AuditLogFieldID holds the string denoting the ID field of the AuditLog.
	AuditLogFieldID = "audit_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// CardsTable is the table that holds the cards relation/edge.
	CardsTable = "alignment_cards"
	// CardsInverseTable is the table name for the AlignmentCard entity.
	// It exists in this package in order to avoid circular dependency with the "alignmentcard" package.
	CardsInverseTable = "alignment_cards"
	// CardsColumn is the table column denoting the cards relation/edge.
	CardsColumn = "agent_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "integrity_checkpoints"
	// CheckpointsInverseTable is the table name for the IntegrityCheckpoint entity.
	// It exists in this package in order to avoid circular dependency with the "integritycheckpoint" package.
	CheckpointsInverseTable = "integrity_checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "agent_id"
	// MerkleTreeTable is the table that holds the merkle_tree relation/edge.
	MerkleTreeTable = "merkle_trees"
	// MerkleTreeInverseTable is the table name for the MerkleTree entity.
	// It exists in this package in order to avoid circular dependency with the "merkletree" package.
	MerkleTreeInverseTable = "merkle_trees"
	// MerkleTreeColumn is the table column denoting the merkle_tree relation/edge.
	MerkleTreeColumn = "agent_id"
	// NudgesTable is the table that holds the nudges relation/edge.
	NudgesTable = "nudges"
	// NudgesInverseTable is the table name for the Nudge entity.
	// It exists in this package in order to avoid circular dependency with the "nudge" package.
	NudgesInverseTable = "nudges"
	// NudgesColumn is the table column denoting the nudges relation/edge.
	NudgesColumn = "agent_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldAgentHash,
	FieldAccountID,
	FieldEnforcementMode,
	FieldContainmentStatus,
	FieldAutoContainmentThreshold,
	FieldNudgeStrategy,
	FieldNudgeRate,
	FieldNudgeThreshold,
	FieldAipDisabled,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNudgeRate holds the default value on creation for the "nudge_rate" field.
	DefaultNudgeRate int
	// DefaultNudgeThreshold holds the default value on creation for the "nudge_threshold" field.
	DefaultNudgeThreshold int
	// DefaultAipDisabled holds the default value on creation for the "aip_disabled" field.
	DefaultAipDisabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EnforcementMode defines the type for the "enforcement_mode" enum field.
type EnforcementMode string

// EnforcementModeObserve is the default value of the EnforcementMode enum.
const DefaultEnforcementMode = EnforcementModeObserve

// EnforcementMode values.
const (
	EnforcementModeObserve EnforcementMode = "observe"
	EnforcementModeNudge   EnforcementMode = "nudge"
	EnforcementModeEnforce EnforcementMode = "enforce"
)

func (em EnforcementMode) String() string {
	return string(em)
}

// EnforcementModeValidator is a validator for the "enforcement_mode" field enum values. It is called by the builders before save.
func EnforcementModeValidator(em EnforcementMode) error {
	switch em {
	case EnforcementModeObserve, EnforcementModeNudge, EnforcementModeEnforce:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for enforcement_mode field: %q", em)
	}
}

// ContainmentStatus defines the type for the "containment_status" enum field.
type ContainmentStatus string

// ContainmentStatusActive is the default value of the ContainmentStatus enum.
const DefaultContainmentStatus = ContainmentStatusActive

// ContainmentStatus values.
const (
	ContainmentStatusActive ContainmentStatus = "active"
	ContainmentStatusPaused ContainmentStatus = "paused"
	ContainmentStatusKilled ContainmentStatus = "killed"
)

func (cs ContainmentStatus) String() string {
	return string(cs)
}

// ContainmentStatusValidator is a validator for the "containment_status" field enum values. It is called by the builders before save.
func ContainmentStatusValidator(cs ContainmentStatus) error {
	switch cs {
	case ContainmentStatusActive, ContainmentStatusPaused, ContainmentStatusKilled:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for containment_status field: %q", cs)
	}
}

// NudgeStrategy defines the type for the "nudge_strategy" enum field.
type NudgeStrategy string

// NudgeStrategyAlways is the default value of the NudgeStrategy enum.
const DefaultNudgeStrategy = NudgeStrategyAlways

// NudgeStrategy values.
const (
	NudgeStrategyAlways    NudgeStrategy = "always"
	NudgeStrategySampling  NudgeStrategy = "sampling"
	NudgeStrategyThreshold NudgeStrategy = "threshold"
	NudgeStrategyOff       NudgeStrategy = "off"
)

func (ns NudgeStrategy) String() string {
	return string(ns)
}

// NudgeStrategyValidator is a validator for the "nudge_strategy" field enum values. It is called by the builders before save.
func NudgeStrategyValidator(ns NudgeStrategy) error {
	switch ns {
	case NudgeStrategyAlways, NudgeStrategySampling, NudgeStrategyThreshold, NudgeStrategyOff:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for nudge_strategy field: %q", ns)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentHash orders the results by the agent_hash field.
func ByAgentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentHash, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByEnforcementMode orders the results by the enforcement_mode field.
func ByEnforcementMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnforcementMode, opts...).ToFunc()
}

// ByContainmentStatus orders the results by the containment_status field.
func ByContainmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainmentStatus, opts...).ToFunc()
}

// ByAutoContainmentThreshold orders the results by the auto_containment_threshold field.
func ByAutoContainmentThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoContainmentThreshold, opts...).ToFunc()
}

// ByNudgeStrategy orders the results by the nudge_strategy field.
func ByNudgeStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNudgeStrategy, opts...).ToFunc()
}

// ByNudgeRate orders the results by the nudge_rate field.
func ByNudgeRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNudgeRate, opts...).ToFunc()
}

// ByNudgeThreshold orders the results by the nudge_threshold field.
func ByNudgeThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNudgeThreshold, opts...).ToFunc()
}

// ByAipDisabled orders the results by the aip_disabled field.
func ByAipDisabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAipDisabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCardsCount orders the results by cards count.
func ByCardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCardsStep(), opts...)
	}
}

// ByCards orders the results by cards terms.
func ByCards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMerkleTreeField orders the results by merkle_tree field.
func ByMerkleTreeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMerkleTreeStep(), sql.OrderByField(field, opts...))
	}
}

// ByNudgesCount orders the results by nudges count.
func ByNudgesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNudgesStep(), opts...)
	}
}

// ByNudges orders the results by nudges terms.
func ByNudges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNudgesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CardsInverseTable, AlignmentCardFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CardsTable, CardsColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, IntegrityCheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newMerkleTreeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MerkleTreeInverseTable, MerkleTreeFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MerkleTreeTable, MerkleTreeColumn),
	)
}
func newNudgesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NudgesInverseTable, NudgeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NudgesTable, NudgesColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, AuditLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
