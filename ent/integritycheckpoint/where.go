// Code generated by ent, DO NOT EDIT.

package integritycheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldAgentID, v))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldCardID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldTimestamp, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldModel, v))
}

// ThinkingBlockHash applies equality check predicate on the "thinking_block_hash" field. It's identical to ThinkingBlockHashEQ.
func ThinkingBlockHash(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldThinkingBlockHash, v))
}

// ReasoningSummary applies equality check predicate on the "reasoning_summary" field. It's identical to ReasoningSummaryEQ.
func ReasoningSummary(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldReasoningSummary, v))
}

// LinkedTraceID applies equality check predicate on the "linked_trace_id" field. It's identical to LinkedTraceIDEQ.
func LinkedTraceID(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldLinkedTraceID, v))
}

// Synthetic applies equality check predicate on the "synthetic" field. It's identical to SyntheticEQ.
func Synthetic(v bool) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSynthetic, v))
}

// InputCommitment applies equality check predicate on the "input_commitment" field. It's identical to InputCommitmentEQ.
func InputCommitment(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldInputCommitment, v))
}

// ChainHash applies equality check predicate on the "chain_hash" field. It's identical to ChainHashEQ.
func ChainHash(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldChainHash, v))
}

// PrevChainHash applies equality check predicate on the "prev_chain_hash" field. It's identical to PrevChainHashEQ.
func PrevChainHash(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldPrevChainHash, v))
}

// MerkleLeafIndex applies equality check predicate on the "merkle_leaf_index" field. It's identical to MerkleLeafIndexEQ.
func MerkleLeafIndex(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldMerkleLeafIndex, v))
}

// CertificateID applies equality check predicate on the "certificate_id" field. It's identical to CertificateIDEQ.
func CertificateID(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldCertificateID, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSignature, v))
}

// SigningKeyID applies equality check predicate on the "signing_key_id" field. It's identical to SigningKeyIDEQ.
func SigningKeyID(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSigningKeyID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldAgentID, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDIsNil applies the IsNil predicate on the "card_id" field.
func CardIDIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldCardID))
}

// CardIDNotNil applies the NotNil predicate on the "card_id" field.
func CardIDNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldCardID))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldCardID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldTimestamp, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldProvider, vs...))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldModel, v))
}

// ThinkingBlockHashEQ applies the EQ predicate on the "thinking_block_hash" field.
func ThinkingBlockHashEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashNEQ applies the NEQ predicate on the "thinking_block_hash" field.
func ThinkingBlockHashNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashIn applies the In predicate on the "thinking_block_hash" field.
func ThinkingBlockHashIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldThinkingBlockHash, vs...))
}

// ThinkingBlockHashNotIn applies the NotIn predicate on the "thinking_block_hash" field.
func ThinkingBlockHashNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldThinkingBlockHash, vs...))
}

// ThinkingBlockHashGT applies the GT predicate on the "thinking_block_hash" field.
func ThinkingBlockHashGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashGTE applies the GTE predicate on the "thinking_block_hash" field.
func ThinkingBlockHashGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashLT applies the LT predicate on the "thinking_block_hash" field.
func ThinkingBlockHashLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashLTE applies the LTE predicate on the "thinking_block_hash" field.
func ThinkingBlockHashLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashContains applies the Contains predicate on the "thinking_block_hash" field.
func ThinkingBlockHashContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashHasPrefix applies the HasPrefix predicate on the "thinking_block_hash" field.
func ThinkingBlockHashHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashHasSuffix applies the HasSuffix predicate on the "thinking_block_hash" field.
func ThinkingBlockHashHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashIsNil applies the IsNil predicate on the "thinking_block_hash" field.
func ThinkingBlockHashIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldThinkingBlockHash))
}

// ThinkingBlockHashNotNil applies the NotNil predicate on the "thinking_block_hash" field.
func ThinkingBlockHashNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldThinkingBlockHash))
}

// ThinkingBlockHashEqualFold applies the EqualFold predicate on the "thinking_block_hash" field.
func ThinkingBlockHashEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldThinkingBlockHash, v))
}

// ThinkingBlockHashContainsFold applies the ContainsFold predicate on the "thinking_block_hash" field.
func ThinkingBlockHashContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldThinkingBlockHash, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldVerdict, vs...))
}

// ConcernsIsNil applies the IsNil predicate on the "concerns" field.
func ConcernsIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldConcerns))
}

// ConcernsNotNil applies the NotNil predicate on the "concerns" field.
func ConcernsNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldConcerns))
}

// ReasoningSummaryEQ applies the EQ predicate on the "reasoning_summary" field.
func ReasoningSummaryEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldReasoningSummary, v))
}

// ReasoningSummaryNEQ applies the NEQ predicate on the "reasoning_summary" field.
func ReasoningSummaryNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldReasoningSummary, v))
}

// ReasoningSummaryIn applies the In predicate on the "reasoning_summary" field.
func ReasoningSummaryIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldReasoningSummary, vs...))
}

// ReasoningSummaryNotIn applies the NotIn predicate on the "reasoning_summary" field.
func ReasoningSummaryNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldReasoningSummary, vs...))
}

// ReasoningSummaryGT applies the GT predicate on the "reasoning_summary" field.
func ReasoningSummaryGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldReasoningSummary, v))
}

// ReasoningSummaryGTE applies the GTE predicate on the "reasoning_summary" field.
func ReasoningSummaryGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldReasoningSummary, v))
}

// ReasoningSummaryLT applies the LT predicate on the "reasoning_summary" field.
func ReasoningSummaryLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldReasoningSummary, v))
}

// ReasoningSummaryLTE applies the LTE predicate on the "reasoning_summary" field.
func ReasoningSummaryLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldReasoningSummary, v))
}

// ReasoningSummaryContains applies the Contains predicate on the "reasoning_summary" field.
func ReasoningSummaryContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldReasoningSummary, v))
}

// ReasoningSummaryHasPrefix applies the HasPrefix predicate on the "reasoning_summary" field.
func ReasoningSummaryHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldReasoningSummary, v))
}

// ReasoningSummaryHasSuffix applies the HasSuffix predicate on the "reasoning_summary" field.
func ReasoningSummaryHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldReasoningSummary, v))
}

// ReasoningSummaryIsNil applies the IsNil predicate on the "reasoning_summary" field.
func ReasoningSummaryIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldReasoningSummary))
}

// ReasoningSummaryNotNil applies the NotNil predicate on the "reasoning_summary" field.
func ReasoningSummaryNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldReasoningSummary))
}

// ReasoningSummaryEqualFold applies the EqualFold predicate on the "reasoning_summary" field.
func ReasoningSummaryEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldReasoningSummary, v))
}

// ReasoningSummaryContainsFold applies the ContainsFold predicate on the "reasoning_summary" field.
func ReasoningSummaryContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldReasoningSummary, v))
}

// ConscienceContextIsNil applies the IsNil predicate on the "conscience_context" field.
func ConscienceContextIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldConscienceContext))
}

// ConscienceContextNotNil applies the NotNil predicate on the "conscience_context" field.
func ConscienceContextNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldConscienceContext))
}

// WindowPositionIsNil applies the IsNil predicate on the "window_position" field.
func WindowPositionIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldWindowPosition))
}

// WindowPositionNotNil applies the NotNil predicate on the "window_position" field.
func WindowPositionNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldWindowPosition))
}

// AnalysisMetadataIsNil applies the IsNil predicate on the "analysis_metadata" field.
func AnalysisMetadataIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldAnalysisMetadata))
}

// AnalysisMetadataNotNil applies the NotNil predicate on the "analysis_metadata" field.
func AnalysisMetadataNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldAnalysisMetadata))
}

// LinkedTraceIDEQ applies the EQ predicate on the "linked_trace_id" field.
func LinkedTraceIDEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldLinkedTraceID, v))
}

// LinkedTraceIDNEQ applies the NEQ predicate on the "linked_trace_id" field.
func LinkedTraceIDNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldLinkedTraceID, v))
}

// LinkedTraceIDIn applies the In predicate on the "linked_trace_id" field.
func LinkedTraceIDIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldLinkedTraceID, vs...))
}

// LinkedTraceIDNotIn applies the NotIn predicate on the "linked_trace_id" field.
func LinkedTraceIDNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldLinkedTraceID, vs...))
}

// LinkedTraceIDGT applies the GT predicate on the "linked_trace_id" field.
func LinkedTraceIDGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldLinkedTraceID, v))
}

// LinkedTraceIDGTE applies the GTE predicate on the "linked_trace_id" field.
func LinkedTraceIDGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldLinkedTraceID, v))
}

// LinkedTraceIDLT applies the LT predicate on the "linked_trace_id" field.
func LinkedTraceIDLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldLinkedTraceID, v))
}

// LinkedTraceIDLTE applies the LTE predicate on the "linked_trace_id" field.
func LinkedTraceIDLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldLinkedTraceID, v))
}

// LinkedTraceIDContains applies the Contains predicate on the "linked_trace_id" field.
func LinkedTraceIDContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldLinkedTraceID, v))
}

// LinkedTraceIDHasPrefix applies the HasPrefix predicate on the "linked_trace_id" field.
func LinkedTraceIDHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldLinkedTraceID, v))
}

// LinkedTraceIDHasSuffix applies the HasSuffix predicate on the "linked_trace_id" field.
func LinkedTraceIDHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldLinkedTraceID, v))
}

// LinkedTraceIDIsNil applies the IsNil predicate on the "linked_trace_id" field.
func LinkedTraceIDIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldLinkedTraceID))
}

// LinkedTraceIDNotNil applies the NotNil predicate on the "linked_trace_id" field.
func LinkedTraceIDNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldLinkedTraceID))
}

// LinkedTraceIDEqualFold applies the EqualFold predicate on the "linked_trace_id" field.
func LinkedTraceIDEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldLinkedTraceID, v))
}

// LinkedTraceIDContainsFold applies the ContainsFold predicate on the "linked_trace_id" field.
func LinkedTraceIDContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldLinkedTraceID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldSource, vs...))
}

// SyntheticEQ applies the EQ predicate on the "synthetic" field.
func SyntheticEQ(v bool) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSynthetic, v))
}

// SyntheticNEQ applies the NEQ predicate on the "synthetic" field.
func SyntheticNEQ(v bool) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldSynthetic, v))
}

// InputCommitmentEQ applies the EQ predicate on the "input_commitment" field.
func InputCommitmentEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldInputCommitment, v))
}

// InputCommitmentNEQ applies the NEQ predicate on the "input_commitment" field.
func InputCommitmentNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldInputCommitment, v))
}

// InputCommitmentIn applies the In predicate on the "input_commitment" field.
func InputCommitmentIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldInputCommitment, vs...))
}

// InputCommitmentNotIn applies the NotIn predicate on the "input_commitment" field.
func InputCommitmentNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldInputCommitment, vs...))
}

// InputCommitmentGT applies the GT predicate on the "input_commitment" field.
func InputCommitmentGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldInputCommitment, v))
}

// InputCommitmentGTE applies the GTE predicate on the "input_commitment" field.
func InputCommitmentGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldInputCommitment, v))
}

// InputCommitmentLT applies the LT predicate on the "input_commitment" field.
func InputCommitmentLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldInputCommitment, v))
}

// InputCommitmentLTE applies the LTE predicate on the "input_commitment" field.
func InputCommitmentLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldInputCommitment, v))
}

// InputCommitmentContains applies the Contains predicate on the "input_commitment" field.
func InputCommitmentContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldInputCommitment, v))
}

// InputCommitmentHasPrefix applies the HasPrefix predicate on the "input_commitment" field.
func InputCommitmentHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldInputCommitment, v))
}

// InputCommitmentHasSuffix applies the HasSuffix predicate on the "input_commitment" field.
func InputCommitmentHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldInputCommitment, v))
}

// InputCommitmentIsNil applies the IsNil predicate on the "input_commitment" field.
func InputCommitmentIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldInputCommitment))
}

// InputCommitmentNotNil applies the NotNil predicate on the "input_commitment" field.
func InputCommitmentNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldInputCommitment))
}

// InputCommitmentEqualFold applies the EqualFold predicate on the "input_commitment" field.
func InputCommitmentEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldInputCommitment, v))
}

// InputCommitmentContainsFold applies the ContainsFold predicate on the "input_commitment" field.
func InputCommitmentContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldInputCommitment, v))
}

// ChainHashEQ applies the EQ predicate on the "chain_hash" field.
func ChainHashEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldChainHash, v))
}

// ChainHashNEQ applies the NEQ predicate on the "chain_hash" field.
func ChainHashNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldChainHash, v))
}

// ChainHashIn applies the In predicate on the "chain_hash" field.
func ChainHashIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldChainHash, vs...))
}

// ChainHashNotIn applies the NotIn predicate on the "chain_hash" field.
func ChainHashNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldChainHash, vs...))
}

// ChainHashGT applies the GT predicate on the "chain_hash" field.
func ChainHashGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldChainHash, v))
}

// ChainHashGTE applies the GTE predicate on the "chain_hash" field.
func ChainHashGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldChainHash, v))
}

// ChainHashLT applies the LT predicate on the "chain_hash" field.
func ChainHashLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldChainHash, v))
}

// ChainHashLTE applies the LTE predicate on the "chain_hash" field.
func ChainHashLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldChainHash, v))
}

// ChainHashContains applies the Contains predicate on the "chain_hash" field.
func ChainHashContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldChainHash, v))
}

// ChainHashHasPrefix applies the HasPrefix predicate on the "chain_hash" field.
func ChainHashHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldChainHash, v))
}

// ChainHashHasSuffix applies the HasSuffix predicate on the "chain_hash" field.
func ChainHashHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldChainHash, v))
}

// ChainHashIsNil applies the IsNil predicate on the "chain_hash" field.
func ChainHashIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldChainHash))
}

// ChainHashNotNil applies the NotNil predicate on the "chain_hash" field.
func ChainHashNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldChainHash))
}

// ChainHashEqualFold applies the EqualFold predicate on the "chain_hash" field.
func ChainHashEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldChainHash, v))
}

// ChainHashContainsFold applies the ContainsFold predicate on the "chain_hash" field.
func ChainHashContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldChainHash, v))
}

// PrevChainHashEQ applies the EQ predicate on the "prev_chain_hash" field.
func PrevChainHashEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldPrevChainHash, v))
}

// PrevChainHashNEQ applies the NEQ predicate on the "prev_chain_hash" field.
func PrevChainHashNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldPrevChainHash, v))
}

// PrevChainHashIn applies the In predicate on the "prev_chain_hash" field.
func PrevChainHashIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldPrevChainHash, vs...))
}

// PrevChainHashNotIn applies the NotIn predicate on the "prev_chain_hash" field.
func PrevChainHashNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldPrevChainHash, vs...))
}

// PrevChainHashGT applies the GT predicate on the "prev_chain_hash" field.
func PrevChainHashGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldPrevChainHash, v))
}

// PrevChainHashGTE applies the GTE predicate on the "prev_chain_hash" field.
func PrevChainHashGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldPrevChainHash, v))
}

// PrevChainHashLT applies the LT predicate on the "prev_chain_hash" field.
func PrevChainHashLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldPrevChainHash, v))
}

// PrevChainHashLTE applies the LTE predicate on the "prev_chain_hash" field.
func PrevChainHashLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldPrevChainHash, v))
}

// PrevChainHashContains applies the Contains predicate on the "prev_chain_hash" field.
func PrevChainHashContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldPrevChainHash, v))
}

// PrevChainHashHasPrefix applies the HasPrefix predicate on the "prev_chain_hash" field.
func PrevChainHashHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldPrevChainHash, v))
}

// PrevChainHashHasSuffix applies the HasSuffix predicate on the "prev_chain_hash" field.
func PrevChainHashHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldPrevChainHash, v))
}

// PrevChainHashIsNil applies the IsNil predicate on the "prev_chain_hash" field.
func PrevChainHashIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldPrevChainHash))
}

// PrevChainHashNotNil applies the NotNil predicate on the "prev_chain_hash" field.
func PrevChainHashNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldPrevChainHash))
}

// PrevChainHashEqualFold applies the EqualFold predicate on the "prev_chain_hash" field.
func PrevChainHashEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldPrevChainHash, v))
}

// PrevChainHashContainsFold applies the ContainsFold predicate on the "prev_chain_hash" field.
func PrevChainHashContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldPrevChainHash, v))
}

// MerkleLeafIndexEQ applies the EQ predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexEQ(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldMerkleLeafIndex, v))
}

// MerkleLeafIndexNEQ applies the NEQ predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexNEQ(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldMerkleLeafIndex, v))
}

// MerkleLeafIndexIn applies the In predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexIn(vs ...int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldMerkleLeafIndex, vs...))
}

// MerkleLeafIndexNotIn applies the NotIn predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexNotIn(vs ...int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldMerkleLeafIndex, vs...))
}

// MerkleLeafIndexGT applies the GT predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexGT(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldMerkleLeafIndex, v))
}

// MerkleLeafIndexGTE applies the GTE predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexGTE(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldMerkleLeafIndex, v))
}

// MerkleLeafIndexLT applies the LT predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexLT(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldMerkleLeafIndex, v))
}

// MerkleLeafIndexLTE applies the LTE predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexLTE(v int) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldMerkleLeafIndex, v))
}

// MerkleLeafIndexIsNil applies the IsNil predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldMerkleLeafIndex))
}

// MerkleLeafIndexNotNil applies the NotNil predicate on the "merkle_leaf_index" field.
func MerkleLeafIndexNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldMerkleLeafIndex))
}

// CertificateIDEQ applies the EQ predicate on the "certificate_id" field.
func CertificateIDEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldCertificateID, v))
}

// CertificateIDNEQ applies the NEQ predicate on the "certificate_id" field.
func CertificateIDNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldCertificateID, v))
}

// CertificateIDIn applies the In predicate on the "certificate_id" field.
func CertificateIDIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldCertificateID, vs...))
}

// CertificateIDNotIn applies the NotIn predicate on the "certificate_id" field.
func CertificateIDNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldCertificateID, vs...))
}

// CertificateIDGT applies the GT predicate on the "certificate_id" field.
func CertificateIDGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldCertificateID, v))
}

// CertificateIDGTE applies the GTE predicate on the "certificate_id" field.
func CertificateIDGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldCertificateID, v))
}

// CertificateIDLT applies the LT predicate on the "certificate_id" field.
func CertificateIDLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldCertificateID, v))
}

// CertificateIDLTE applies the LTE predicate on the "certificate_id" field.
func CertificateIDLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldCertificateID, v))
}

// CertificateIDContains applies the Contains predicate on the "certificate_id" field.
func CertificateIDContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldCertificateID, v))
}

// CertificateIDHasPrefix applies the HasPrefix predicate on the "certificate_id" field.
func CertificateIDHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldCertificateID, v))
}

// CertificateIDHasSuffix applies the HasSuffix predicate on the "certificate_id" field.
func CertificateIDHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldCertificateID, v))
}

// CertificateIDIsNil applies the IsNil predicate on the "certificate_id" field.
func CertificateIDIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldCertificateID))
}

// CertificateIDNotNil applies the NotNil predicate on the "certificate_id" field.
func CertificateIDNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldCertificateID))
}

// CertificateIDEqualFold applies the EqualFold predicate on the "certificate_id" field.
func CertificateIDEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldCertificateID, v))
}

// CertificateIDContainsFold applies the ContainsFold predicate on the "certificate_id" field.
func CertificateIDContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldCertificateID, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldSignature))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldSignature, v))
}

// SigningKeyIDEQ applies the EQ predicate on the "signing_key_id" field.
func SigningKeyIDEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldSigningKeyID, v))
}

// SigningKeyIDNEQ applies the NEQ predicate on the "signing_key_id" field.
func SigningKeyIDNEQ(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldSigningKeyID, v))
}

// SigningKeyIDIn applies the In predicate on the "signing_key_id" field.
func SigningKeyIDIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldSigningKeyID, vs...))
}

// SigningKeyIDNotIn applies the NotIn predicate on the "signing_key_id" field.
func SigningKeyIDNotIn(vs ...string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldSigningKeyID, vs...))
}

// SigningKeyIDGT applies the GT predicate on the "signing_key_id" field.
func SigningKeyIDGT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldSigningKeyID, v))
}

// SigningKeyIDGTE applies the GTE predicate on the "signing_key_id" field.
func SigningKeyIDGTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldSigningKeyID, v))
}

// SigningKeyIDLT applies the LT predicate on the "signing_key_id" field.
func SigningKeyIDLT(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldSigningKeyID, v))
}

// SigningKeyIDLTE applies the LTE predicate on the "signing_key_id" field.
func SigningKeyIDLTE(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldSigningKeyID, v))
}

// SigningKeyIDContains applies the Contains predicate on the "signing_key_id" field.
func SigningKeyIDContains(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContains(FieldSigningKeyID, v))
}

// SigningKeyIDHasPrefix applies the HasPrefix predicate on the "signing_key_id" field.
func SigningKeyIDHasPrefix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasPrefix(FieldSigningKeyID, v))
}

// SigningKeyIDHasSuffix applies the HasSuffix predicate on the "signing_key_id" field.
func SigningKeyIDHasSuffix(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldHasSuffix(FieldSigningKeyID, v))
}

// SigningKeyIDIsNil applies the IsNil predicate on the "signing_key_id" field.
func SigningKeyIDIsNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIsNull(FieldSigningKeyID))
}

// SigningKeyIDNotNil applies the NotNil predicate on the "signing_key_id" field.
func SigningKeyIDNotNil() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotNull(FieldSigningKeyID))
}

// SigningKeyIDEqualFold applies the EqualFold predicate on the "signing_key_id" field.
func SigningKeyIDEqualFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEqualFold(FieldSigningKeyID, v))
}

// SigningKeyIDContainsFold applies the ContainsFold predicate on the "signing_key_id" field.
func SigningKeyIDContainsFold(v string) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldContainsFold(FieldSigningKeyID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IntegrityCheckpoint) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IntegrityCheckpoint) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IntegrityCheckpoint) predicate.IntegrityCheckpoint {
	return predicate.IntegrityCheckpoint(sql.NotPredicates(p))
}
