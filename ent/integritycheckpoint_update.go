// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// IntegrityCheckpointUpdate is the builder for updating IntegrityCheckpoint entities.
type IntegrityCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrityCheckpointMutation
}

// Where appends a list predicates to the IntegrityCheckpointUpdate builder.
func (_u *IntegrityCheckpointUpdate) Where(ps ...predicate.IntegrityCheckpoint) *IntegrityCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *IntegrityCheckpointUpdate) SetAgentID(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableAgentID(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *IntegrityCheckpointUpdate) SetCardID(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableCardID(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// ClearCardID clears the value of the "card_id" field.
func (_u *IntegrityCheckpointUpdate) ClearCardID() *IntegrityCheckpointUpdate {
	_u.mutation.ClearCardID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IntegrityCheckpointUpdate) SetSessionID(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableSessionID(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *IntegrityCheckpointUpdate) SetTimestamp(v time.Time) *IntegrityCheckpointUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableTimestamp(v *time.Time) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *IntegrityCheckpointUpdate) SetProvider(v integritycheckpoint.Provider) *IntegrityCheckpointUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableProvider(v *integritycheckpoint.Provider) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *IntegrityCheckpointUpdate) SetModel(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableModel(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *IntegrityCheckpointUpdate) ClearModel() *IntegrityCheckpointUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (_u *IntegrityCheckpointUpdate) SetThinkingBlockHash(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetThinkingBlockHash(v)
	return _u
}

// SetNillableThinkingBlockHash sets the "thinking_block_hash" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableThinkingBlockHash(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetThinkingBlockHash(*v)
	}
	return _u
}

// ClearThinkingBlockHash clears the value of the "thinking_block_hash" field.
func (_u *IntegrityCheckpointUpdate) ClearThinkingBlockHash() *IntegrityCheckpointUpdate {
	_u.mutation.ClearThinkingBlockHash()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *IntegrityCheckpointUpdate) SetVerdict(v integritycheckpoint.Verdict) *IntegrityCheckpointUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableVerdict(v *integritycheckpoint.Verdict) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetConcerns sets the "concerns" field.
func (_u *IntegrityCheckpointUpdate) SetConcerns(v []map[string]interface{}) *IntegrityCheckpointUpdate {
	_u.mutation.SetConcerns(v)
	return _u
}

// AppendConcerns appends value to the "concerns" field.
func (_u *IntegrityCheckpointUpdate) AppendConcerns(v []map[string]interface{}) *IntegrityCheckpointUpdate {
	_u.mutation.AppendConcerns(v)
	return _u
}

// ClearConcerns clears the value of the "concerns" field.
func (_u *IntegrityCheckpointUpdate) ClearConcerns() *IntegrityCheckpointUpdate {
	_u.mutation.ClearConcerns()
	return _u
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (_u *IntegrityCheckpointUpdate) SetReasoningSummary(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetReasoningSummary(v)
	return _u
}

// SetNillableReasoningSummary sets the "reasoning_summary" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableReasoningSummary(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetReasoningSummary(*v)
	}
	return _u
}

// ClearReasoningSummary clears the value of the "reasoning_summary" field.
func (_u *IntegrityCheckpointUpdate) ClearReasoningSummary() *IntegrityCheckpointUpdate {
	_u.mutation.ClearReasoningSummary()
	return _u
}

// SetConscienceContext sets the "conscience_context" field.
func (_u *IntegrityCheckpointUpdate) SetConscienceContext(v map[string]interface{}) *IntegrityCheckpointUpdate {
	_u.mutation.SetConscienceContext(v)
	return _u
}

// ClearConscienceContext clears the value of the "conscience_context" field.
func (_u *IntegrityCheckpointUpdate) ClearConscienceContext() *IntegrityCheckpointUpdate {
	_u.mutation.ClearConscienceContext()
	return _u
}

// SetWindowPosition sets the "window_position" field.
func (_u *IntegrityCheckpointUpdate) SetWindowPosition(v map[string]interface{}) *IntegrityCheckpointUpdate {
	_u.mutation.SetWindowPosition(v)
	return _u
}

// ClearWindowPosition clears the value of the "window_position" field.
func (_u *IntegrityCheckpointUpdate) ClearWindowPosition() *IntegrityCheckpointUpdate {
	_u.mutation.ClearWindowPosition()
	return _u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_u *IntegrityCheckpointUpdate) SetAnalysisMetadata(v map[string]interface{}) *IntegrityCheckpointUpdate {
	_u.mutation.SetAnalysisMetadata(v)
	return _u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (_u *IntegrityCheckpointUpdate) ClearAnalysisMetadata() *IntegrityCheckpointUpdate {
	_u.mutation.ClearAnalysisMetadata()
	return _u
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (_u *IntegrityCheckpointUpdate) SetLinkedTraceID(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetLinkedTraceID(v)
	return _u
}

// SetNillableLinkedTraceID sets the "linked_trace_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableLinkedTraceID(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetLinkedTraceID(*v)
	}
	return _u
}

// ClearLinkedTraceID clears the value of the "linked_trace_id" field.
func (_u *IntegrityCheckpointUpdate) ClearLinkedTraceID() *IntegrityCheckpointUpdate {
	_u.mutation.ClearLinkedTraceID()
	return _u
}

// SetSource sets the "source" field.
func (_u *IntegrityCheckpointUpdate) SetSource(v integritycheckpoint.Source) *IntegrityCheckpointUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableSource(v *integritycheckpoint.Source) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSynthetic sets the "synthetic" field.
func (_u *IntegrityCheckpointUpdate) SetSynthetic(v bool) *IntegrityCheckpointUpdate {
	_u.mutation.SetSynthetic(v)
	return _u
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableSynthetic(v *bool) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetSynthetic(*v)
	}
	return _u
}

// SetInputCommitment sets the "input_commitment" field.
func (_u *IntegrityCheckpointUpdate) SetInputCommitment(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetInputCommitment(v)
	return _u
}

// SetNillableInputCommitment sets the "input_commitment" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableInputCommitment(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetInputCommitment(*v)
	}
	return _u
}

// ClearInputCommitment clears the value of the "input_commitment" field.
func (_u *IntegrityCheckpointUpdate) ClearInputCommitment() *IntegrityCheckpointUpdate {
	_u.mutation.ClearInputCommitment()
	return _u
}

// SetChainHash sets the "chain_hash" field.
func (_u *IntegrityCheckpointUpdate) SetChainHash(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetChainHash(v)
	return _u
}

// SetNillableChainHash sets the "chain_hash" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableChainHash(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetChainHash(*v)
	}
	return _u
}

// ClearChainHash clears the value of the "chain_hash" field.
func (_u *IntegrityCheckpointUpdate) ClearChainHash() *IntegrityCheckpointUpdate {
	_u.mutation.ClearChainHash()
	return _u
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (_u *IntegrityCheckpointUpdate) SetPrevChainHash(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetPrevChainHash(v)
	return _u
}

// SetNillablePrevChainHash sets the "prev_chain_hash" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillablePrevChainHash(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetPrevChainHash(*v)
	}
	return _u
}

// ClearPrevChainHash clears the value of the "prev_chain_hash" field.
func (_u *IntegrityCheckpointUpdate) ClearPrevChainHash() *IntegrityCheckpointUpdate {
	_u.mutation.ClearPrevChainHash()
	return _u
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (_u *IntegrityCheckpointUpdate) SetMerkleLeafIndex(v int) *IntegrityCheckpointUpdate {
	_u.mutation.ResetMerkleLeafIndex()
	_u.mutation.SetMerkleLeafIndex(v)
	return _u
}

// SetNillableMerkleLeafIndex sets the "merkle_leaf_index" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableMerkleLeafIndex(v *int) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetMerkleLeafIndex(*v)
	}
	return _u
}

// AddMerkleLeafIndex adds value to the "merkle_leaf_index" field.
func (_u *IntegrityCheckpointUpdate) AddMerkleLeafIndex(v int) *IntegrityCheckpointUpdate {
	_u.mutation.AddMerkleLeafIndex(v)
	return _u
}

// ClearMerkleLeafIndex clears the value of the "merkle_leaf_index" field.
func (_u *IntegrityCheckpointUpdate) ClearMerkleLeafIndex() *IntegrityCheckpointUpdate {
	_u.mutation.ClearMerkleLeafIndex()
	return _u
}

// SetCertificateID sets the "certificate_id" field.
func (_u *IntegrityCheckpointUpdate) SetCertificateID(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetCertificateID(v)
	return _u
}

// SetNillableCertificateID sets the "certificate_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableCertificateID(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetCertificateID(*v)
	}
	return _u
}

// ClearCertificateID clears the value of the "certificate_id" field.
func (_u *IntegrityCheckpointUpdate) ClearCertificateID() *IntegrityCheckpointUpdate {
	_u.mutation.ClearCertificateID()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *IntegrityCheckpointUpdate) SetSignature(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableSignature(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *IntegrityCheckpointUpdate) ClearSignature() *IntegrityCheckpointUpdate {
	_u.mutation.ClearSignature()
	return _u
}

// SetSigningKeyID sets the "signing_key_id" field.
func (_u *IntegrityCheckpointUpdate) SetSigningKeyID(v string) *IntegrityCheckpointUpdate {
	_u.mutation.SetSigningKeyID(v)
	return _u
}

// SetNillableSigningKeyID sets the "signing_key_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdate) SetNillableSigningKeyID(v *string) *IntegrityCheckpointUpdate {
	if v != nil {
		_u.SetSigningKeyID(*v)
	}
	return _u
}

// ClearSigningKeyID clears the value of the "signing_key_id" field.
func (_u *IntegrityCheckpointUpdate) ClearSigningKeyID() *IntegrityCheckpointUpdate {
	_u.mutation.ClearSigningKeyID()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *IntegrityCheckpointUpdate) SetAgent(v *Agent) *IntegrityCheckpointUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the IntegrityCheckpointMutation object of the builder.
func (_u *IntegrityCheckpointUpdate) Mutation() *IntegrityCheckpointMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *IntegrityCheckpointUpdate) ClearAgent() *IntegrityCheckpointUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrityCheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrityCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrityCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrityCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrityCheckpointUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := integritycheckpoint.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := integritycheckpoint.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := integritycheckpoint.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.source": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntegrityCheckpoint.agent"`)
	}
	return nil
}

func (_u *IntegrityCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integritycheckpoint.Table, integritycheckpoint.Columns, sqlgraph.NewFieldSpec(integritycheckpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(integritycheckpoint.FieldCardID, field.TypeString, value)
	}
	if _u.mutation.CardIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldCardID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(integritycheckpoint.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(integritycheckpoint.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integritycheckpoint.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(integritycheckpoint.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(integritycheckpoint.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ThinkingBlockHash(); ok {
		_spec.SetField(integritycheckpoint.FieldThinkingBlockHash, field.TypeString, value)
	}
	if _u.mutation.ThinkingBlockHashCleared() {
		_spec.ClearField(integritycheckpoint.FieldThinkingBlockHash, field.TypeString)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(integritycheckpoint.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Concerns(); ok {
		_spec.SetField(integritycheckpoint.FieldConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integritycheckpoint.FieldConcerns, value)
		})
	}
	if _u.mutation.ConcernsCleared() {
		_spec.ClearField(integritycheckpoint.FieldConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReasoningSummary(); ok {
		_spec.SetField(integritycheckpoint.FieldReasoningSummary, field.TypeString, value)
	}
	if _u.mutation.ReasoningSummaryCleared() {
		_spec.ClearField(integritycheckpoint.FieldReasoningSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ConscienceContext(); ok {
		_spec.SetField(integritycheckpoint.FieldConscienceContext, field.TypeJSON, value)
	}
	if _u.mutation.ConscienceContextCleared() {
		_spec.ClearField(integritycheckpoint.FieldConscienceContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.WindowPosition(); ok {
		_spec.SetField(integritycheckpoint.FieldWindowPosition, field.TypeJSON, value)
	}
	if _u.mutation.WindowPositionCleared() {
		_spec.ClearField(integritycheckpoint.FieldWindowPosition, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisMetadata(); ok {
		_spec.SetField(integritycheckpoint.FieldAnalysisMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisMetadataCleared() {
		_spec.ClearField(integritycheckpoint.FieldAnalysisMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LinkedTraceID(); ok {
		_spec.SetField(integritycheckpoint.FieldLinkedTraceID, field.TypeString, value)
	}
	if _u.mutation.LinkedTraceIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldLinkedTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(integritycheckpoint.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Synthetic(); ok {
		_spec.SetField(integritycheckpoint.FieldSynthetic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputCommitment(); ok {
		_spec.SetField(integritycheckpoint.FieldInputCommitment, field.TypeString, value)
	}
	if _u.mutation.InputCommitmentCleared() {
		_spec.ClearField(integritycheckpoint.FieldInputCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.ChainHash(); ok {
		_spec.SetField(integritycheckpoint.FieldChainHash, field.TypeString, value)
	}
	if _u.mutation.ChainHashCleared() {
		_spec.ClearField(integritycheckpoint.FieldChainHash, field.TypeString)
	}
	if value, ok := _u.mutation.PrevChainHash(); ok {
		_spec.SetField(integritycheckpoint.FieldPrevChainHash, field.TypeString, value)
	}
	if _u.mutation.PrevChainHashCleared() {
		_spec.ClearField(integritycheckpoint.FieldPrevChainHash, field.TypeString)
	}
	if value, ok := _u.mutation.MerkleLeafIndex(); ok {
		_spec.SetField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMerkleLeafIndex(); ok {
		_spec.AddField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt, value)
	}
	if _u.mutation.MerkleLeafIndexCleared() {
		_spec.ClearField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CertificateID(); ok {
		_spec.SetField(integritycheckpoint.FieldCertificateID, field.TypeString, value)
	}
	if _u.mutation.CertificateIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldCertificateID, field.TypeString)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(integritycheckpoint.FieldSignature, field.TypeString, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(integritycheckpoint.FieldSignature, field.TypeString)
	}
	if value, ok := _u.mutation.SigningKeyID(); ok {
		_spec.SetField(integritycheckpoint.FieldSigningKeyID, field.TypeString, value)
	}
	if _u.mutation.SigningKeyIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldSigningKeyID, field.TypeString)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integritycheckpoint.AgentTable,
			Columns: []string{integritycheckpoint.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integritycheckpoint.AgentTable,
			Columns: []string{integritycheckpoint.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integritycheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrityCheckpointUpdateOne is the builder for updating a single IntegrityCheckpoint entity.
type IntegrityCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrityCheckpointMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *IntegrityCheckpointUpdateOne) SetAgentID(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableAgentID(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *IntegrityCheckpointUpdateOne) SetCardID(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableCardID(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// ClearCardID clears the value of the "card_id" field.
func (_u *IntegrityCheckpointUpdateOne) ClearCardID() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearCardID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IntegrityCheckpointUpdateOne) SetSessionID(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableSessionID(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *IntegrityCheckpointUpdateOne) SetTimestamp(v time.Time) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableTimestamp(v *time.Time) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *IntegrityCheckpointUpdateOne) SetProvider(v integritycheckpoint.Provider) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableProvider(v *integritycheckpoint.Provider) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *IntegrityCheckpointUpdateOne) SetModel(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableModel(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *IntegrityCheckpointUpdateOne) ClearModel() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (_u *IntegrityCheckpointUpdateOne) SetThinkingBlockHash(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetThinkingBlockHash(v)
	return _u
}

// SetNillableThinkingBlockHash sets the "thinking_block_hash" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableThinkingBlockHash(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetThinkingBlockHash(*v)
	}
	return _u
}

// ClearThinkingBlockHash clears the value of the "thinking_block_hash" field.
func (_u *IntegrityCheckpointUpdateOne) ClearThinkingBlockHash() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearThinkingBlockHash()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *IntegrityCheckpointUpdateOne) SetVerdict(v integritycheckpoint.Verdict) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableVerdict(v *integritycheckpoint.Verdict) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetConcerns sets the "concerns" field.
func (_u *IntegrityCheckpointUpdateOne) SetConcerns(v []map[string]interface{}) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetConcerns(v)
	return _u
}

// AppendConcerns appends value to the "concerns" field.
func (_u *IntegrityCheckpointUpdateOne) AppendConcerns(v []map[string]interface{}) *IntegrityCheckpointUpdateOne {
	_u.mutation.AppendConcerns(v)
	return _u
}

// ClearConcerns clears the value of the "concerns" field.
func (_u *IntegrityCheckpointUpdateOne) ClearConcerns() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearConcerns()
	return _u
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (_u *IntegrityCheckpointUpdateOne) SetReasoningSummary(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetReasoningSummary(v)
	return _u
}

// SetNillableReasoningSummary sets the "reasoning_summary" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableReasoningSummary(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetReasoningSummary(*v)
	}
	return _u
}

// ClearReasoningSummary clears the value of the "reasoning_summary" field.
func (_u *IntegrityCheckpointUpdateOne) ClearReasoningSummary() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearReasoningSummary()
	return _u
}

// SetConscienceContext sets the "conscience_context" field.
func (_u *IntegrityCheckpointUpdateOne) SetConscienceContext(v map[string]interface{}) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetConscienceContext(v)
	return _u
}

// ClearConscienceContext clears the value of the "conscience_context" field.
func (_u *IntegrityCheckpointUpdateOne) ClearConscienceContext() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearConscienceContext()
	return _u
}

// SetWindowPosition sets the "window_position" field.
func (_u *IntegrityCheckpointUpdateOne) SetWindowPosition(v map[string]interface{}) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetWindowPosition(v)
	return _u
}

// ClearWindowPosition clears the value of the "window_position" field.
func (_u *IntegrityCheckpointUpdateOne) ClearWindowPosition() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearWindowPosition()
	return _u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_u *IntegrityCheckpointUpdateOne) SetAnalysisMetadata(v map[string]interface{}) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetAnalysisMetadata(v)
	return _u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (_u *IntegrityCheckpointUpdateOne) ClearAnalysisMetadata() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearAnalysisMetadata()
	return _u
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (_u *IntegrityCheckpointUpdateOne) SetLinkedTraceID(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetLinkedTraceID(v)
	return _u
}

// SetNillableLinkedTraceID sets the "linked_trace_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableLinkedTraceID(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetLinkedTraceID(*v)
	}
	return _u
}

// ClearLinkedTraceID clears the value of the "linked_trace_id" field.
func (_u *IntegrityCheckpointUpdateOne) ClearLinkedTraceID() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearLinkedTraceID()
	return _u
}

// SetSource sets the "source" field.
func (_u *IntegrityCheckpointUpdateOne) SetSource(v integritycheckpoint.Source) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableSource(v *integritycheckpoint.Source) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSynthetic sets the "synthetic" field.
func (_u *IntegrityCheckpointUpdateOne) SetSynthetic(v bool) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetSynthetic(v)
	return _u
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableSynthetic(v *bool) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetSynthetic(*v)
	}
	return _u
}

// SetInputCommitment sets the "input_commitment" field.
func (_u *IntegrityCheckpointUpdateOne) SetInputCommitment(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetInputCommitment(v)
	return _u
}

// SetNillableInputCommitment sets the "input_commitment" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableInputCommitment(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetInputCommitment(*v)
	}
	return _u
}

// ClearInputCommitment clears the value of the "input_commitment" field.
func (_u *IntegrityCheckpointUpdateOne) ClearInputCommitment() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearInputCommitment()
	return _u
}

// SetChainHash sets the "chain_hash" field.
func (_u *IntegrityCheckpointUpdateOne) SetChainHash(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetChainHash(v)
	return _u
}

// SetNillableChainHash sets the "chain_hash" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableChainHash(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetChainHash(*v)
	}
	return _u
}

// ClearChainHash clears the value of the "chain_hash" field.
func (_u *IntegrityCheckpointUpdateOne) ClearChainHash() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearChainHash()
	return _u
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (_u *IntegrityCheckpointUpdateOne) SetPrevChainHash(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetPrevChainHash(v)
	return _u
}

// SetNillablePrevChainHash sets the "prev_chain_hash" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillablePrevChainHash(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetPrevChainHash(*v)
	}
	return _u
}

// ClearPrevChainHash clears the value of the "prev_chain_hash" field.
func (_u *IntegrityCheckpointUpdateOne) ClearPrevChainHash() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearPrevChainHash()
	return _u
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (_u *IntegrityCheckpointUpdateOne) SetMerkleLeafIndex(v int) *IntegrityCheckpointUpdateOne {
	_u.mutation.ResetMerkleLeafIndex()
	_u.mutation.SetMerkleLeafIndex(v)
	return _u
}

// SetNillableMerkleLeafIndex sets the "merkle_leaf_index" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableMerkleLeafIndex(v *int) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetMerkleLeafIndex(*v)
	}
	return _u
}

// AddMerkleLeafIndex adds value to the "merkle_leaf_index" field.
func (_u *IntegrityCheckpointUpdateOne) AddMerkleLeafIndex(v int) *IntegrityCheckpointUpdateOne {
	_u.mutation.AddMerkleLeafIndex(v)
	return _u
}

// ClearMerkleLeafIndex clears the value of the "merkle_leaf_index" field.
func (_u *IntegrityCheckpointUpdateOne) ClearMerkleLeafIndex() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearMerkleLeafIndex()
	return _u
}

// SetCertificateID sets the "certificate_id" field.
func (_u *IntegrityCheckpointUpdateOne) SetCertificateID(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetCertificateID(v)
	return _u
}

// SetNillableCertificateID sets the "certificate_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableCertificateID(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetCertificateID(*v)
	}
	return _u
}

// ClearCertificateID clears the value of the "certificate_id" field.
func (_u *IntegrityCheckpointUpdateOne) ClearCertificateID() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearCertificateID()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *IntegrityCheckpointUpdateOne) SetSignature(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableSignature(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *IntegrityCheckpointUpdateOne) ClearSignature() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearSignature()
	return _u
}

// SetSigningKeyID sets the "signing_key_id" field.
func (_u *IntegrityCheckpointUpdateOne) SetSigningKeyID(v string) *IntegrityCheckpointUpdateOne {
	_u.mutation.SetSigningKeyID(v)
	return _u
}

// SetNillableSigningKeyID sets the "signing_key_id" field if the given value is not nil.
func (_u *IntegrityCheckpointUpdateOne) SetNillableSigningKeyID(v *string) *IntegrityCheckpointUpdateOne {
	if v != nil {
		_u.SetSigningKeyID(*v)
	}
	return _u
}

// ClearSigningKeyID clears the value of the "signing_key_id" field.
func (_u *IntegrityCheckpointUpdateOne) ClearSigningKeyID() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearSigningKeyID()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *IntegrityCheckpointUpdateOne) SetAgent(v *Agent) *IntegrityCheckpointUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the IntegrityCheckpointMutation object of the builder.
func (_u *IntegrityCheckpointUpdateOne) Mutation() *IntegrityCheckpointMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *IntegrityCheckpointUpdateOne) ClearAgent() *IntegrityCheckpointUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the IntegrityCheckpointUpdate builder.
func (_u *IntegrityCheckpointUpdateOne) Where(ps ...predicate.IntegrityCheckpoint) *IntegrityCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrityCheckpointUpdateOne) Select(field string, fields ...string) *IntegrityCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntegrityCheckpoint entity.
func (_u *IntegrityCheckpointUpdateOne) Save(ctx context.Context) (*IntegrityCheckpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrityCheckpointUpdateOne) SaveX(ctx context.Context) *IntegrityCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrityCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrityCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrityCheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := integritycheckpoint.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := integritycheckpoint.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := integritycheckpoint.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.source": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntegrityCheckpoint.agent"`)
	}
	return nil
}

func (_u *IntegrityCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *IntegrityCheckpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integritycheckpoint.Table, integritycheckpoint.Columns, sqlgraph.NewFieldSpec(integritycheckpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntegrityCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integritycheckpoint.FieldID)
		for _, f := range fields {
			if !integritycheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integritycheckpoint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(integritycheckpoint.FieldCardID, field.TypeString, value)
	}
	if _u.mutation.CardIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldCardID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(integritycheckpoint.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(integritycheckpoint.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integritycheckpoint.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(integritycheckpoint.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(integritycheckpoint.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ThinkingBlockHash(); ok {
		_spec.SetField(integritycheckpoint.FieldThinkingBlockHash, field.TypeString, value)
	}
	if _u.mutation.ThinkingBlockHashCleared() {
		_spec.ClearField(integritycheckpoint.FieldThinkingBlockHash, field.TypeString)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(integritycheckpoint.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Concerns(); ok {
		_spec.SetField(integritycheckpoint.FieldConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integritycheckpoint.FieldConcerns, value)
		})
	}
	if _u.mutation.ConcernsCleared() {
		_spec.ClearField(integritycheckpoint.FieldConcerns, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReasoningSummary(); ok {
		_spec.SetField(integritycheckpoint.FieldReasoningSummary, field.TypeString, value)
	}
	if _u.mutation.ReasoningSummaryCleared() {
		_spec.ClearField(integritycheckpoint.FieldReasoningSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ConscienceContext(); ok {
		_spec.SetField(integritycheckpoint.FieldConscienceContext, field.TypeJSON, value)
	}
	if _u.mutation.ConscienceContextCleared() {
		_spec.ClearField(integritycheckpoint.FieldConscienceContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.WindowPosition(); ok {
		_spec.SetField(integritycheckpoint.FieldWindowPosition, field.TypeJSON, value)
	}
	if _u.mutation.WindowPositionCleared() {
		_spec.ClearField(integritycheckpoint.FieldWindowPosition, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisMetadata(); ok {
		_spec.SetField(integritycheckpoint.FieldAnalysisMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisMetadataCleared() {
		_spec.ClearField(integritycheckpoint.FieldAnalysisMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LinkedTraceID(); ok {
		_spec.SetField(integritycheckpoint.FieldLinkedTraceID, field.TypeString, value)
	}
	if _u.mutation.LinkedTraceIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldLinkedTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(integritycheckpoint.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Synthetic(); ok {
		_spec.SetField(integritycheckpoint.FieldSynthetic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputCommitment(); ok {
		_spec.SetField(integritycheckpoint.FieldInputCommitment, field.TypeString, value)
	}
	if _u.mutation.InputCommitmentCleared() {
		_spec.ClearField(integritycheckpoint.FieldInputCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.ChainHash(); ok {
		_spec.SetField(integritycheckpoint.FieldChainHash, field.TypeString, value)
	}
	if _u.mutation.ChainHashCleared() {
		_spec.ClearField(integritycheckpoint.FieldChainHash, field.TypeString)
	}
	if value, ok := _u.mutation.PrevChainHash(); ok {
		_spec.SetField(integritycheckpoint.FieldPrevChainHash, field.TypeString, value)
	}
	if _u.mutation.PrevChainHashCleared() {
		_spec.ClearField(integritycheckpoint.FieldPrevChainHash, field.TypeString)
	}
	if value, ok := _u.mutation.MerkleLeafIndex(); ok {
		_spec.SetField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMerkleLeafIndex(); ok {
		_spec.AddField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt, value)
	}
	if _u.mutation.MerkleLeafIndexCleared() {
		_spec.ClearField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CertificateID(); ok {
		_spec.SetField(integritycheckpoint.FieldCertificateID, field.TypeString, value)
	}
	if _u.mutation.CertificateIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldCertificateID, field.TypeString)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(integritycheckpoint.FieldSignature, field.TypeString, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(integritycheckpoint.FieldSignature, field.TypeString)
	}
	if value, ok := _u.mutation.SigningKeyID(); ok {
		_spec.SetField(integritycheckpoint.FieldSigningKeyID, field.TypeString, value)
	}
	if _u.mutation.SigningKeyIDCleared() {
		_spec.ClearField(integritycheckpoint.FieldSigningKeyID, field.TypeString)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integritycheckpoint.AgentTable,
			Columns: []string{integritycheckpoint.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   integritycheckpoint.AgentTable,
			Columns: []string{integritycheckpoint.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IntegrityCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integritycheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
