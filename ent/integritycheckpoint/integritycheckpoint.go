// Code generated by ent, DO NOT EDIT.

package integritycheckpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the integritycheckpoint type in the database.
	Label = "integrity_checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldThinkingBlockHash holds the string denoting the thinking_block_hash field in the database.
	FieldThinkingBlockHash = "thinking_block_hash"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldConcerns holds the string denoting the concerns field in the database.
	FieldConcerns = "concerns"
	// FieldReasoningSummary holds the string denoting the reasoning_summary field in the database.
	FieldReasoningSummary = "reasoning_summary"
	// FieldConscienceContext holds the string denoting the conscience_context field in the database.
	FieldConscienceContext = "conscience_context"
	// FieldWindowPosition holds the string denoting the window_position field in the database.
	FieldWindowPosition = "window_position"
	// FieldAnalysisMetadata holds the string denoting the analysis_metadata field in the database.
	FieldAnalysisMetadata = "analysis_metadata"
	// FieldLinkedTraceID holds the string denoting the linked_trace_id field in the database.
	FieldLinkedTraceID = "linked_trace_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSynthetic holds the string denoting the synthetic field in the database.
	FieldSynthetic = "synthetic"
	// FieldInputCommitment holds the string denoting the input_commitment field in the database.
	FieldInputCommitment = "input_commitment"
	// FieldChainHash holds the string denoting the chain_hash field in the database.
	FieldChainHash = "chain_hash"
	// FieldPrevChainHash holds the string denoting the prev_chain_hash field in the database.
	FieldPrevChainHash = "prev_chain_hash"
	// FieldMerkleLeafIndex holds the string denoting the merkle_leaf_index field in the database.
	FieldMerkleLeafIndex = "merkle_leaf_index"
	// FieldCertificateID holds the string denoting the certificate_id field in the database.
	FieldCertificateID = "certificate_id"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// FieldSigningKeyID holds the string denoting the signing_key_id field in the database.
	FieldSigningKeyID = "signing_key_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// Table holds the table name of the integritycheckpoint in the database.
	Table = "integrity_checkpoints"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "integrity_checkpoints"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for integritycheckpoint fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldCardID,
	FieldSessionID,
	FieldTimestamp,
	FieldProvider,
	FieldModel,
	FieldThinkingBlockHash,
	FieldVerdict,
	FieldConcerns,
	FieldReasoningSummary,
	FieldConscienceContext,
	FieldWindowPosition,
	FieldAnalysisMetadata,
	FieldLinkedTraceID,
	FieldSource,
	FieldSynthetic,
	FieldInputCommitment,
	FieldChainHash,
	FieldPrevChainHash,
	FieldMerkleLeafIndex,
	FieldCertificateID,
	FieldSignature,
	FieldSigningKeyID,
	FieldCreatedAt,
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
	// DefaultSynthetic holds the default value on creation for the "synthetic" field.
	DefaultSynthetic bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenai    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderAnthropic, ProviderOpenai, ProviderGemini:
		return nil
	default:
		return fmt.Errorf("integritycheckpoint: invalid enum value for provider field: %q", pr)
	}
}

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictClear             Verdict = "clear"
	VerdictReviewNeeded      Verdict = "review_needed"
	VerdictBoundaryViolation Verdict = "boundary_violation"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictClear, VerdictReviewNeeded, VerdictBoundaryViolation:
		return nil
	default:
		return fmt.Errorf("integritycheckpoint: invalid enum value for verdict field: %q", v)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceGateway is the default value of the Source enum.
const DefaultSource = SourceGateway

// Source values.
const (
	SourceGateway  Source = "gateway"
	SourceObserver Source = "observer"
	SourceHybrid   Source = "hybrid"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceGateway, SourceObserver, SourceHybrid:
		return nil
	default:
		return fmt.Errorf("integritycheckpoint: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the IntegrityCheckpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByThinkingBlockHash orders the results by the thinking_block_hash field.
func ByThinkingBlockHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThinkingBlockHash, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByReasoningSummary orders the results by the reasoning_summary field.
func ByReasoningSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningSummary, opts...).ToFunc()
}

// ByLinkedTraceID orders the results by the linked_trace_id field.
func ByLinkedTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedTraceID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySynthetic orders the results by the synthetic field.
func BySynthetic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthetic, opts...).ToFunc()
}

// ByInputCommitment orders the results by the input_commitment field.
func ByInputCommitment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputCommitment, opts...).ToFunc()
}

// ByChainHash orders the results by the chain_hash field.
func ByChainHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChainHash, opts...).ToFunc()
}

// ByPrevChainHash orders the results by the prev_chain_hash field.
func ByPrevChainHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevChainHash, opts...).ToFunc()
}

// ByMerkleLeafIndex orders the results by the merkle_leaf_index field.
func ByMerkleLeafIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerkleLeafIndex, opts...).ToFunc()
}

// ByCertificateID orders the results by the certificate_id field.
func ByCertificateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificateID, opts...).ToFunc()
}

// BySignature orders the results by the signature field.
func BySignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignature, opts...).ToFunc()
}

// BySigningKeyID orders the results by the signing_key_id field.
func BySigningKeyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSigningKeyID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
