// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
)

// IntegrityCheckpointCreate is the builder for creating a IntegrityCheckpoint entity.
type IntegrityCheckpointCreate struct {
	config
	mutation *IntegrityCheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *IntegrityCheckpointCreate) SetAgentID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *IntegrityCheckpointCreate) SetCardID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableCardID(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetCardID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *IntegrityCheckpointCreate) SetSessionID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *IntegrityCheckpointCreate) SetTimestamp(v time.Time) *IntegrityCheckpointCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *IntegrityCheckpointCreate) SetProvider(v integritycheckpoint.Provider) *IntegrityCheckpointCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *IntegrityCheckpointCreate) SetModel(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableModel(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (_c *IntegrityCheckpointCreate) SetThinkingBlockHash(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetThinkingBlockHash(v)
	return _c
}

// SetNillableThinkingBlockHash sets the "thinking_block_hash" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableThinkingBlockHash(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetThinkingBlockHash(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *IntegrityCheckpointCreate) SetVerdict(v integritycheckpoint.Verdict) *IntegrityCheckpointCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetConcerns sets the "concerns" field.
func (_c *IntegrityCheckpointCreate) SetConcerns(v []map[string]interface{}) *IntegrityCheckpointCreate {
	_c.mutation.SetConcerns(v)
	return _c
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (_c *IntegrityCheckpointCreate) SetReasoningSummary(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetReasoningSummary(v)
	return _c
}

// SetNillableReasoningSummary sets the "reasoning_summary" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableReasoningSummary(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetReasoningSummary(*v)
	}
	return _c
}

// SetConscienceContext sets the "conscience_context" field.
func (_c *IntegrityCheckpointCreate) SetConscienceContext(v map[string]interface{}) *IntegrityCheckpointCreate {
	_c.mutation.SetConscienceContext(v)
	return _c
}

// SetWindowPosition sets the "window_position" field.
func (_c *IntegrityCheckpointCreate) SetWindowPosition(v map[string]interface{}) *IntegrityCheckpointCreate {
	_c.mutation.SetWindowPosition(v)
	return _c
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_c *IntegrityCheckpointCreate) SetAnalysisMetadata(v map[string]interface{}) *IntegrityCheckpointCreate {
	_c.mutation.SetAnalysisMetadata(v)
	return _c
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (_c *IntegrityCheckpointCreate) SetLinkedTraceID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetLinkedTraceID(v)
	return _c
}

// SetNillableLinkedTraceID sets the "linked_trace_id" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableLinkedTraceID(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetLinkedTraceID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *IntegrityCheckpointCreate) SetSource(v integritycheckpoint.Source) *IntegrityCheckpointCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableSource(v *integritycheckpoint.Source) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetSynthetic sets the "synthetic" field.
func (_c *IntegrityCheckpointCreate) SetSynthetic(v bool) *IntegrityCheckpointCreate {
	_c.mutation.SetSynthetic(v)
	return _c
}

// SetNillableSynthetic sets the "synthetic" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableSynthetic(v *bool) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetSynthetic(*v)
	}
	return _c
}

// SetInputCommitment sets the "input_commitment" field.
func (_c *IntegrityCheckpointCreate) SetInputCommitment(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetInputCommitment(v)
	return _c
}

// SetNillableInputCommitment sets the "input_commitment" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableInputCommitment(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetInputCommitment(*v)
	}
	return _c
}

// SetChainHash sets the "chain_hash" field.
func (_c *IntegrityCheckpointCreate) SetChainHash(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetChainHash(v)
	return _c
}

// SetNillableChainHash sets the "chain_hash" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableChainHash(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetChainHash(*v)
	}
	return _c
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (_c *IntegrityCheckpointCreate) SetPrevChainHash(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetPrevChainHash(v)
	return _c
}

// SetNillablePrevChainHash sets the "prev_chain_hash" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillablePrevChainHash(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetPrevChainHash(*v)
	}
	return _c
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (_c *IntegrityCheckpointCreate) SetMerkleLeafIndex(v int) *IntegrityCheckpointCreate {
	_c.mutation.SetMerkleLeafIndex(v)
	return _c
}

// SetNillableMerkleLeafIndex sets the "merkle_leaf_index" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableMerkleLeafIndex(v *int) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetMerkleLeafIndex(*v)
	}
	return _c
}

// SetCertificateID sets the "certificate_id" field.
func (_c *IntegrityCheckpointCreate) SetCertificateID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetCertificateID(v)
	return _c
}

// SetNillableCertificateID sets the "certificate_id" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableCertificateID(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetCertificateID(*v)
	}
	return _c
}

// SetSignature sets the "signature" field.
func (_c *IntegrityCheckpointCreate) SetSignature(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableSignature(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetSignature(*v)
	}
	return _c
}

// SetSigningKeyID sets the "signing_key_id" field.
func (_c *IntegrityCheckpointCreate) SetSigningKeyID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetSigningKeyID(v)
	return _c
}

// SetNillableSigningKeyID sets the "signing_key_id" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableSigningKeyID(v *string) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetSigningKeyID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrityCheckpointCreate) SetCreatedAt(v time.Time) *IntegrityCheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrityCheckpointCreate) SetNillableCreatedAt(v *time.Time) *IntegrityCheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntegrityCheckpointCreate) SetID(v string) *IntegrityCheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *IntegrityCheckpointCreate) SetAgent(v *Agent) *IntegrityCheckpointCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the IntegrityCheckpointMutation object of the builder.
func (_c *IntegrityCheckpointCreate) Mutation() *IntegrityCheckpointMutation {
	return _c.mutation
}

// Save creates the IntegrityCheckpoint in the database.
func (_c *IntegrityCheckpointCreate) Save(ctx context.Context) (*IntegrityCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrityCheckpointCreate) SaveX(ctx context.Context) *IntegrityCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrityCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrityCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrityCheckpointCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := integritycheckpoint.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Synthetic(); !ok {
		v := integritycheckpoint.DefaultSynthetic
		_c.mutation.SetSynthetic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integritycheckpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrityCheckpointCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "IntegrityCheckpoint.agent_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "IntegrityCheckpoint.session_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "IntegrityCheckpoint.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "IntegrityCheckpoint.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := integritycheckpoint.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "IntegrityCheckpoint.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := integritycheckpoint.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "IntegrityCheckpoint.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := integritycheckpoint.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "IntegrityCheckpoint.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Synthetic(); !ok {
		return &ValidationError{Name: "synthetic", err: errors.New(`ent: missing required field "IntegrityCheckpoint.synthetic"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntegrityCheckpoint.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "IntegrityCheckpoint.agent"`)}
	}
	return nil
}

func (_c *IntegrityCheckpointCreate) sqlSave(ctx context.Context) (*IntegrityCheckpoint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected IntegrityCheckpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrityCheckpointCreate) createSpec() (*IntegrityCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &IntegrityCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integritycheckpoint.Table, sqlgraph.NewFieldSpec(integritycheckpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(integritycheckpoint.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(integritycheckpoint.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(integritycheckpoint.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(integritycheckpoint.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(integritycheckpoint.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.ThinkingBlockHash(); ok {
		_spec.SetField(integritycheckpoint.FieldThinkingBlockHash, field.TypeString, value)
		_node.ThinkingBlockHash = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(integritycheckpoint.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Concerns(); ok {
		_spec.SetField(integritycheckpoint.FieldConcerns, field.TypeJSON, value)
		_node.Concerns = value
	}
	if value, ok := _c.mutation.ReasoningSummary(); ok {
		_spec.SetField(integritycheckpoint.FieldReasoningSummary, field.TypeString, value)
		_node.ReasoningSummary = value
	}
	if value, ok := _c.mutation.ConscienceContext(); ok {
		_spec.SetField(integritycheckpoint.FieldConscienceContext, field.TypeJSON, value)
		_node.ConscienceContext = value
	}
	if value, ok := _c.mutation.WindowPosition(); ok {
		_spec.SetField(integritycheckpoint.FieldWindowPosition, field.TypeJSON, value)
		_node.WindowPosition = value
	}
	if value, ok := _c.mutation.AnalysisMetadata(); ok {
		_spec.SetField(integritycheckpoint.FieldAnalysisMetadata, field.TypeJSON, value)
		_node.AnalysisMetadata = value
	}
	if value, ok := _c.mutation.LinkedTraceID(); ok {
		_spec.SetField(integritycheckpoint.FieldLinkedTraceID, field.TypeString, value)
		_node.LinkedTraceID = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(integritycheckpoint.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Synthetic(); ok {
		_spec.SetField(integritycheckpoint.FieldSynthetic, field.TypeBool, value)
		_node.Synthetic = value
	}
	if value, ok := _c.mutation.InputCommitment(); ok {
		_spec.SetField(integritycheckpoint.FieldInputCommitment, field.TypeString, value)
		_node.InputCommitment = value
	}
	if value, ok := _c.mutation.ChainHash(); ok {
		_spec.SetField(integritycheckpoint.FieldChainHash, field.TypeString, value)
		_node.ChainHash = value
	}
	if value, ok := _c.mutation.PrevChainHash(); ok {
		_spec.SetField(integritycheckpoint.FieldPrevChainHash, field.TypeString, value)
		_node.PrevChainHash = value
	}
	if value, ok := _c.mutation.MerkleLeafIndex(); ok {
		_spec.SetField(integritycheckpoint.FieldMerkleLeafIndex, field.TypeInt, value)
		_node.MerkleLeafIndex = &value
	}
	if value, ok := _c.mutation.CertificateID(); ok {
		_spec.SetField(integritycheckpoint.FieldCertificateID, field.TypeString, value)
		_node.CertificateID = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(integritycheckpoint.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.SigningKeyID(); ok {
		_spec.SetField(integritycheckpoint.FieldSigningKeyID, field.TypeString, value)
		_node.SigningKeyID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integritycheckpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IntegrityCheckpoint.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntegrityCheckpointUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntegrityCheckpointCreate) OnConflict(opts ...sql.ConflictOption) *IntegrityCheckpointUpsertOne {
	_c.conflict = opts
	return &IntegrityCheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IntegrityCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntegrityCheckpointCreate) OnConflictColumns(columns ...string) *IntegrityCheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntegrityCheckpointUpsertOne{
		create: _c,
	}
}

type (
	// IntegrityCheckpointUpsertOne is the builder for "upsert"-ing
	//  one IntegrityCheckpoint node.
	IntegrityCheckpointUpsertOne struct {
		create *IntegrityCheckpointCreate
	}

	// IntegrityCheckpointUpsert is the "OnConflict" setter.
	IntegrityCheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *IntegrityCheckpointUpsert) SetAgentID(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateAgentID() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldAgentID)
	return u
}

// SetCardID sets the "card_id" field.
func (u *IntegrityCheckpointUpsert) SetCardID(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldCardID, v)
	return u
}

// UpdateCardID sets the "card_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateCardID() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldCardID)
	return u
}

// ClearCardID clears the value of the "card_id" field.
func (u *IntegrityCheckpointUpsert) ClearCardID() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldCardID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *IntegrityCheckpointUpsert) SetSessionID(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateSessionID() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldSessionID)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *IntegrityCheckpointUpsert) SetTimestamp(v time.Time) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateTimestamp() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldTimestamp)
	return u
}

// SetProvider sets the "provider" field.
func (u *IntegrityCheckpointUpsert) SetProvider(v integritycheckpoint.Provider) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateProvider() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *IntegrityCheckpointUpsert) SetModel(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateModel() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *IntegrityCheckpointUpsert) ClearModel() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldModel)
	return u
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (u *IntegrityCheckpointUpsert) SetThinkingBlockHash(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldThinkingBlockHash, v)
	return u
}

// UpdateThinkingBlockHash sets the "thinking_block_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateThinkingBlockHash() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldThinkingBlockHash)
	return u
}

// ClearThinkingBlockHash clears the value of the "thinking_block_hash" field.
func (u *IntegrityCheckpointUpsert) ClearThinkingBlockHash() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldThinkingBlockHash)
	return u
}

// SetVerdict sets the "verdict" field.
func (u *IntegrityCheckpointUpsert) SetVerdict(v integritycheckpoint.Verdict) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldVerdict, v)
	return u
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateVerdict() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldVerdict)
	return u
}

// SetConcerns sets the "concerns" field.
func (u *IntegrityCheckpointUpsert) SetConcerns(v []map[string]interface{}) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldConcerns, v)
	return u
}

// UpdateConcerns sets the "concerns" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateConcerns() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldConcerns)
	return u
}

// ClearConcerns clears the value of the "concerns" field.
func (u *IntegrityCheckpointUpsert) ClearConcerns() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldConcerns)
	return u
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (u *IntegrityCheckpointUpsert) SetReasoningSummary(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldReasoningSummary, v)
	return u
}

// UpdateReasoningSummary sets the "reasoning_summary" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateReasoningSummary() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldReasoningSummary)
	return u
}

// ClearReasoningSummary clears the value of the "reasoning_summary" field.
func (u *IntegrityCheckpointUpsert) ClearReasoningSummary() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldReasoningSummary)
	return u
}

// SetConscienceContext sets the "conscience_context" field.
func (u *IntegrityCheckpointUpsert) SetConscienceContext(v map[string]interface{}) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldConscienceContext, v)
	return u
}

// UpdateConscienceContext sets the "conscience_context" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateConscienceContext() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldConscienceContext)
	return u
}

// ClearConscienceContext clears the value of the "conscience_context" field.
func (u *IntegrityCheckpointUpsert) ClearConscienceContext() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldConscienceContext)
	return u
}

// SetWindowPosition sets the "window_position" field.
func (u *IntegrityCheckpointUpsert) SetWindowPosition(v map[string]interface{}) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldWindowPosition, v)
	return u
}

// UpdateWindowPosition sets the "window_position" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateWindowPosition() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldWindowPosition)
	return u
}

// ClearWindowPosition clears the value of the "window_position" field.
func (u *IntegrityCheckpointUpsert) ClearWindowPosition() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldWindowPosition)
	return u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (u *IntegrityCheckpointUpsert) SetAnalysisMetadata(v map[string]interface{}) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldAnalysisMetadata, v)
	return u
}

// UpdateAnalysisMetadata sets the "analysis_metadata" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateAnalysisMetadata() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldAnalysisMetadata)
	return u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (u *IntegrityCheckpointUpsert) ClearAnalysisMetadata() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldAnalysisMetadata)
	return u
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (u *IntegrityCheckpointUpsert) SetLinkedTraceID(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldLinkedTraceID, v)
	return u
}

// UpdateLinkedTraceID sets the "linked_trace_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateLinkedTraceID() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldLinkedTraceID)
	return u
}

// ClearLinkedTraceID clears the value of the "linked_trace_id" field.
func (u *IntegrityCheckpointUpsert) ClearLinkedTraceID() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldLinkedTraceID)
	return u
}

// SetSource sets the "source" field.
func (u *IntegrityCheckpointUpsert) SetSource(v integritycheckpoint.Source) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateSource() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldSource)
	return u
}

// SetSynthetic sets the "synthetic" field.
func (u *IntegrityCheckpointUpsert) SetSynthetic(v bool) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldSynthetic, v)
	return u
}

// UpdateSynthetic sets the "synthetic" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateSynthetic() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldSynthetic)
	return u
}

// SetInputCommitment sets the "input_commitment" field.
func (u *IntegrityCheckpointUpsert) SetInputCommitment(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldInputCommitment, v)
	return u
}

// UpdateInputCommitment sets the "input_commitment" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateInputCommitment() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldInputCommitment)
	return u
}

// ClearInputCommitment clears the value of the "input_commitment" field.
func (u *IntegrityCheckpointUpsert) ClearInputCommitment() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldInputCommitment)
	return u
}

// SetChainHash sets the "chain_hash" field.
func (u *IntegrityCheckpointUpsert) SetChainHash(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldChainHash, v)
	return u
}

// UpdateChainHash sets the "chain_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateChainHash() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldChainHash)
	return u
}

// ClearChainHash clears the value of the "chain_hash" field.
func (u *IntegrityCheckpointUpsert) ClearChainHash() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldChainHash)
	return u
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (u *IntegrityCheckpointUpsert) SetPrevChainHash(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldPrevChainHash, v)
	return u
}

// UpdatePrevChainHash sets the "prev_chain_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdatePrevChainHash() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldPrevChainHash)
	return u
}

// ClearPrevChainHash clears the value of the "prev_chain_hash" field.
func (u *IntegrityCheckpointUpsert) ClearPrevChainHash() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldPrevChainHash)
	return u
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsert) SetMerkleLeafIndex(v int) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldMerkleLeafIndex, v)
	return u
}

// UpdateMerkleLeafIndex sets the "merkle_leaf_index" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateMerkleLeafIndex() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldMerkleLeafIndex)
	return u
}

// AddMerkleLeafIndex adds v to the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsert) AddMerkleLeafIndex(v int) *IntegrityCheckpointUpsert {
	u.Add(integritycheckpoint.FieldMerkleLeafIndex, v)
	return u
}

// ClearMerkleLeafIndex clears the value of the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsert) ClearMerkleLeafIndex() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldMerkleLeafIndex)
	return u
}

// SetCertificateID sets the "certificate_id" field.
func (u *IntegrityCheckpointUpsert) SetCertificateID(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldCertificateID, v)
	return u
}

// UpdateCertificateID sets the "certificate_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateCertificateID() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldCertificateID)
	return u
}

// ClearCertificateID clears the value of the "certificate_id" field.
func (u *IntegrityCheckpointUpsert) ClearCertificateID() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldCertificateID)
	return u
}

// SetSignature sets the "signature" field.
func (u *IntegrityCheckpointUpsert) SetSignature(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldSignature, v)
	return u
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateSignature() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldSignature)
	return u
}

// ClearSignature clears the value of the "signature" field.
func (u *IntegrityCheckpointUpsert) ClearSignature() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldSignature)
	return u
}

// SetSigningKeyID sets the "signing_key_id" field.
func (u *IntegrityCheckpointUpsert) SetSigningKeyID(v string) *IntegrityCheckpointUpsert {
	u.Set(integritycheckpoint.FieldSigningKeyID, v)
	return u
}

// UpdateSigningKeyID sets the "signing_key_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsert) UpdateSigningKeyID() *IntegrityCheckpointUpsert {
	u.SetExcluded(integritycheckpoint.FieldSigningKeyID)
	return u
}

// ClearSigningKeyID clears the value of the "signing_key_id" field.
func (u *IntegrityCheckpointUpsert) ClearSigningKeyID() *IntegrityCheckpointUpsert {
	u.SetNull(integritycheckpoint.FieldSigningKeyID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IntegrityCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(integritycheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntegrityCheckpointUpsertOne) UpdateNewValues() *IntegrityCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(integritycheckpoint.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(integritycheckpoint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IntegrityCheckpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IntegrityCheckpointUpsertOne) Ignore() *IntegrityCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntegrityCheckpointUpsertOne) DoNothing() *IntegrityCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntegrityCheckpointCreate.OnConflict
// documentation for more info.
func (u *IntegrityCheckpointUpsertOne) Update(set func(*IntegrityCheckpointUpsert)) *IntegrityCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntegrityCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *IntegrityCheckpointUpsertOne) SetAgentID(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateAgentID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateAgentID()
	})
}

// SetCardID sets the "card_id" field.
func (u *IntegrityCheckpointUpsertOne) SetCardID(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetCardID(v)
	})
}

// UpdateCardID sets the "card_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateCardID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateCardID()
	})
}

// ClearCardID clears the value of the "card_id" field.
func (u *IntegrityCheckpointUpsertOne) ClearCardID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearCardID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *IntegrityCheckpointUpsertOne) SetSessionID(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateSessionID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSessionID()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *IntegrityCheckpointUpsertOne) SetTimestamp(v time.Time) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateTimestamp() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateTimestamp()
	})
}

// SetProvider sets the "provider" field.
func (u *IntegrityCheckpointUpsertOne) SetProvider(v integritycheckpoint.Provider) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateProvider() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *IntegrityCheckpointUpsertOne) SetModel(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateModel() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *IntegrityCheckpointUpsertOne) ClearModel() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearModel()
	})
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (u *IntegrityCheckpointUpsertOne) SetThinkingBlockHash(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetThinkingBlockHash(v)
	})
}

// UpdateThinkingBlockHash sets the "thinking_block_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateThinkingBlockHash() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateThinkingBlockHash()
	})
}

// ClearThinkingBlockHash clears the value of the "thinking_block_hash" field.
func (u *IntegrityCheckpointUpsertOne) ClearThinkingBlockHash() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearThinkingBlockHash()
	})
}

// SetVerdict sets the "verdict" field.
func (u *IntegrityCheckpointUpsertOne) SetVerdict(v integritycheckpoint.Verdict) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateVerdict() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateVerdict()
	})
}

// SetConcerns sets the "concerns" field.
func (u *IntegrityCheckpointUpsertOne) SetConcerns(v []map[string]interface{}) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetConcerns(v)
	})
}

// UpdateConcerns sets the "concerns" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateConcerns() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateConcerns()
	})
}

// ClearConcerns clears the value of the "concerns" field.
func (u *IntegrityCheckpointUpsertOne) ClearConcerns() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearConcerns()
	})
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (u *IntegrityCheckpointUpsertOne) SetReasoningSummary(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetReasoningSummary(v)
	})
}

// UpdateReasoningSummary sets the "reasoning_summary" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateReasoningSummary() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateReasoningSummary()
	})
}

// ClearReasoningSummary clears the value of the "reasoning_summary" field.
func (u *IntegrityCheckpointUpsertOne) ClearReasoningSummary() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearReasoningSummary()
	})
}

// SetConscienceContext sets the "conscience_context" field.
func (u *IntegrityCheckpointUpsertOne) SetConscienceContext(v map[string]interface{}) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetConscienceContext(v)
	})
}

// UpdateConscienceContext sets the "conscience_context" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateConscienceContext() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateConscienceContext()
	})
}

// ClearConscienceContext clears the value of the "conscience_context" field.
func (u *IntegrityCheckpointUpsertOne) ClearConscienceContext() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearConscienceContext()
	})
}

// SetWindowPosition sets the "window_position" field.
func (u *IntegrityCheckpointUpsertOne) SetWindowPosition(v map[string]interface{}) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetWindowPosition(v)
	})
}

// UpdateWindowPosition sets the "window_position" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateWindowPosition() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateWindowPosition()
	})
}

// ClearWindowPosition clears the value of the "window_position" field.
func (u *IntegrityCheckpointUpsertOne) ClearWindowPosition() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearWindowPosition()
	})
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (u *IntegrityCheckpointUpsertOne) SetAnalysisMetadata(v map[string]interface{}) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetAnalysisMetadata(v)
	})
}

// UpdateAnalysisMetadata sets the "analysis_metadata" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateAnalysisMetadata() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateAnalysisMetadata()
	})
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (u *IntegrityCheckpointUpsertOne) ClearAnalysisMetadata() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearAnalysisMetadata()
	})
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (u *IntegrityCheckpointUpsertOne) SetLinkedTraceID(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetLinkedTraceID(v)
	})
}

// UpdateLinkedTraceID sets the "linked_trace_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateLinkedTraceID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateLinkedTraceID()
	})
}

// ClearLinkedTraceID clears the value of the "linked_trace_id" field.
func (u *IntegrityCheckpointUpsertOne) ClearLinkedTraceID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearLinkedTraceID()
	})
}

// SetSource sets the "source" field.
func (u *IntegrityCheckpointUpsertOne) SetSource(v integritycheckpoint.Source) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateSource() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSource()
	})
}

// SetSynthetic sets the "synthetic" field.
func (u *IntegrityCheckpointUpsertOne) SetSynthetic(v bool) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSynthetic(v)
	})
}

// UpdateSynthetic sets the "synthetic" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateSynthetic() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSynthetic()
	})
}

// SetInputCommitment sets the "input_commitment" field.
func (u *IntegrityCheckpointUpsertOne) SetInputCommitment(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetInputCommitment(v)
	})
}

// UpdateInputCommitment sets the "input_commitment" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateInputCommitment() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateInputCommitment()
	})
}

// ClearInputCommitment clears the value of the "input_commitment" field.
func (u *IntegrityCheckpointUpsertOne) ClearInputCommitment() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearInputCommitment()
	})
}

// SetChainHash sets the "chain_hash" field.
func (u *IntegrityCheckpointUpsertOne) SetChainHash(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetChainHash(v)
	})
}

// UpdateChainHash sets the "chain_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateChainHash() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateChainHash()
	})
}

// ClearChainHash clears the value of the "chain_hash" field.
func (u *IntegrityCheckpointUpsertOne) ClearChainHash() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearChainHash()
	})
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (u *IntegrityCheckpointUpsertOne) SetPrevChainHash(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetPrevChainHash(v)
	})
}

// UpdatePrevChainHash sets the "prev_chain_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdatePrevChainHash() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdatePrevChainHash()
	})
}

// ClearPrevChainHash clears the value of the "prev_chain_hash" field.
func (u *IntegrityCheckpointUpsertOne) ClearPrevChainHash() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearPrevChainHash()
	})
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsertOne) SetMerkleLeafIndex(v int) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetMerkleLeafIndex(v)
	})
}

// AddMerkleLeafIndex adds v to the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsertOne) AddMerkleLeafIndex(v int) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.AddMerkleLeafIndex(v)
	})
}

// UpdateMerkleLeafIndex sets the "merkle_leaf_index" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateMerkleLeafIndex() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateMerkleLeafIndex()
	})
}

// ClearMerkleLeafIndex clears the value of the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsertOne) ClearMerkleLeafIndex() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearMerkleLeafIndex()
	})
}

// SetCertificateID sets the "certificate_id" field.
func (u *IntegrityCheckpointUpsertOne) SetCertificateID(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetCertificateID(v)
	})
}

// UpdateCertificateID sets the "certificate_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateCertificateID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateCertificateID()
	})
}

// ClearCertificateID clears the value of the "certificate_id" field.
func (u *IntegrityCheckpointUpsertOne) ClearCertificateID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearCertificateID()
	})
}

// SetSignature sets the "signature" field.
func (u *IntegrityCheckpointUpsertOne) SetSignature(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateSignature() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSignature()
	})
}

// ClearSignature clears the value of the "signature" field.
func (u *IntegrityCheckpointUpsertOne) ClearSignature() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearSignature()
	})
}

// SetSigningKeyID sets the "signing_key_id" field.
func (u *IntegrityCheckpointUpsertOne) SetSigningKeyID(v string) *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSigningKeyID(v)
	})
}

// UpdateSigningKeyID sets the "signing_key_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertOne) UpdateSigningKeyID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSigningKeyID()
	})
}

// ClearSigningKeyID clears the value of the "signing_key_id" field.
func (u *IntegrityCheckpointUpsertOne) ClearSigningKeyID() *IntegrityCheckpointUpsertOne {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearSigningKeyID()
	})
}

// Exec executes the query.
func (u *IntegrityCheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntegrityCheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntegrityCheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IntegrityCheckpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IntegrityCheckpointUpsertOne.ID is not supported by MySQL driver. Use IntegrityCheckpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IntegrityCheckpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IntegrityCheckpointCreateBulk is the builder for creating many IntegrityCheckpoint entities in bulk.
type IntegrityCheckpointCreateBulk struct {
	config
	err      error
	builders []*IntegrityCheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the IntegrityCheckpoint entities in the database.
func (_c *IntegrityCheckpointCreateBulk) Save(ctx context.Context) ([]*IntegrityCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntegrityCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrityCheckpointMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IntegrityCheckpointCreateBulk) SaveX(ctx context.Context) []*IntegrityCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrityCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrityCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IntegrityCheckpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntegrityCheckpointUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntegrityCheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *IntegrityCheckpointUpsertBulk {
	_c.conflict = opts
	return &IntegrityCheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IntegrityCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntegrityCheckpointCreateBulk) OnConflictColumns(columns ...string) *IntegrityCheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntegrityCheckpointUpsertBulk{
		create: _c,
	}
}

// IntegrityCheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of IntegrityCheckpoint nodes.
type IntegrityCheckpointUpsertBulk struct {
	create *IntegrityCheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IntegrityCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(integritycheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntegrityCheckpointUpsertBulk) UpdateNewValues() *IntegrityCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(integritycheckpoint.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(integritycheckpoint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IntegrityCheckpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IntegrityCheckpointUpsertBulk) Ignore() *IntegrityCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntegrityCheckpointUpsertBulk) DoNothing() *IntegrityCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntegrityCheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *IntegrityCheckpointUpsertBulk) Update(set func(*IntegrityCheckpointUpsert)) *IntegrityCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntegrityCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *IntegrityCheckpointUpsertBulk) SetAgentID(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateAgentID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateAgentID()
	})
}

// SetCardID sets the "card_id" field.
func (u *IntegrityCheckpointUpsertBulk) SetCardID(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetCardID(v)
	})
}

// UpdateCardID sets the "card_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateCardID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateCardID()
	})
}

// ClearCardID clears the value of the "card_id" field.
func (u *IntegrityCheckpointUpsertBulk) ClearCardID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearCardID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *IntegrityCheckpointUpsertBulk) SetSessionID(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateSessionID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSessionID()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *IntegrityCheckpointUpsertBulk) SetTimestamp(v time.Time) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateTimestamp() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateTimestamp()
	})
}

// SetProvider sets the "provider" field.
func (u *IntegrityCheckpointUpsertBulk) SetProvider(v integritycheckpoint.Provider) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateProvider() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *IntegrityCheckpointUpsertBulk) SetModel(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateModel() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *IntegrityCheckpointUpsertBulk) ClearModel() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearModel()
	})
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (u *IntegrityCheckpointUpsertBulk) SetThinkingBlockHash(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetThinkingBlockHash(v)
	})
}

// UpdateThinkingBlockHash sets the "thinking_block_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateThinkingBlockHash() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateThinkingBlockHash()
	})
}

// ClearThinkingBlockHash clears the value of the "thinking_block_hash" field.
func (u *IntegrityCheckpointUpsertBulk) ClearThinkingBlockHash() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearThinkingBlockHash()
	})
}

// SetVerdict sets the "verdict" field.
func (u *IntegrityCheckpointUpsertBulk) SetVerdict(v integritycheckpoint.Verdict) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateVerdict() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateVerdict()
	})
}

// SetConcerns sets the "concerns" field.
func (u *IntegrityCheckpointUpsertBulk) SetConcerns(v []map[string]interface{}) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetConcerns(v)
	})
}

// UpdateConcerns sets the "concerns" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateConcerns() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateConcerns()
	})
}

// ClearConcerns clears the value of the "concerns" field.
func (u *IntegrityCheckpointUpsertBulk) ClearConcerns() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearConcerns()
	})
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (u *IntegrityCheckpointUpsertBulk) SetReasoningSummary(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetReasoningSummary(v)
	})
}

// UpdateReasoningSummary sets the "reasoning_summary" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateReasoningSummary() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateReasoningSummary()
	})
}

// ClearReasoningSummary clears the value of the "reasoning_summary" field.
func (u *IntegrityCheckpointUpsertBulk) ClearReasoningSummary() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearReasoningSummary()
	})
}

// SetConscienceContext sets the "conscience_context" field.
func (u *IntegrityCheckpointUpsertBulk) SetConscienceContext(v map[string]interface{}) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetConscienceContext(v)
	})
}

// UpdateConscienceContext sets the "conscience_context" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateConscienceContext() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateConscienceContext()
	})
}

// ClearConscienceContext clears the value of the "conscience_context" field.
func (u *IntegrityCheckpointUpsertBulk) ClearConscienceContext() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearConscienceContext()
	})
}

// SetWindowPosition sets the "window_position" field.
func (u *IntegrityCheckpointUpsertBulk) SetWindowPosition(v map[string]interface{}) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetWindowPosition(v)
	})
}

// UpdateWindowPosition sets the "window_position" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateWindowPosition() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateWindowPosition()
	})
}

// ClearWindowPosition clears the value of the "window_position" field.
func (u *IntegrityCheckpointUpsertBulk) ClearWindowPosition() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearWindowPosition()
	})
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (u *IntegrityCheckpointUpsertBulk) SetAnalysisMetadata(v map[string]interface{}) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetAnalysisMetadata(v)
	})
}

// UpdateAnalysisMetadata sets the "analysis_metadata" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateAnalysisMetadata() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateAnalysisMetadata()
	})
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (u *IntegrityCheckpointUpsertBulk) ClearAnalysisMetadata() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearAnalysisMetadata()
	})
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (u *IntegrityCheckpointUpsertBulk) SetLinkedTraceID(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetLinkedTraceID(v)
	})
}

// UpdateLinkedTraceID sets the "linked_trace_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateLinkedTraceID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateLinkedTraceID()
	})
}

// ClearLinkedTraceID clears the value of the "linked_trace_id" field.
func (u *IntegrityCheckpointUpsertBulk) ClearLinkedTraceID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearLinkedTraceID()
	})
}

// SetSource sets the "source" field.
func (u *IntegrityCheckpointUpsertBulk) SetSource(v integritycheckpoint.Source) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateSource() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSource()
	})
}

// SetSynthetic sets the "synthetic" field.
func (u *IntegrityCheckpointUpsertBulk) SetSynthetic(v bool) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSynthetic(v)
	})
}

// UpdateSynthetic sets the "synthetic" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateSynthetic() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSynthetic()
	})
}

// SetInputCommitment sets the "input_commitment" field.
func (u *IntegrityCheckpointUpsertBulk) SetInputCommitment(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetInputCommitment(v)
	})
}

// UpdateInputCommitment sets the "input_commitment" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateInputCommitment() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateInputCommitment()
	})
}

// ClearInputCommitment clears the value of the "input_commitment" field.
func (u *IntegrityCheckpointUpsertBulk) ClearInputCommitment() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearInputCommitment()
	})
}

// SetChainHash sets the "chain_hash" field.
func (u *IntegrityCheckpointUpsertBulk) SetChainHash(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetChainHash(v)
	})
}

// UpdateChainHash sets the "chain_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateChainHash() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateChainHash()
	})
}

// ClearChainHash clears the value of the "chain_hash" field.
func (u *IntegrityCheckpointUpsertBulk) ClearChainHash() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearChainHash()
	})
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (u *IntegrityCheckpointUpsertBulk) SetPrevChainHash(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetPrevChainHash(v)
	})
}

// UpdatePrevChainHash sets the "prev_chain_hash" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdatePrevChainHash() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdatePrevChainHash()
	})
}

// ClearPrevChainHash clears the value of the "prev_chain_hash" field.
func (u *IntegrityCheckpointUpsertBulk) ClearPrevChainHash() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearPrevChainHash()
	})
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsertBulk) SetMerkleLeafIndex(v int) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetMerkleLeafIndex(v)
	})
}

// AddMerkleLeafIndex adds v to the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsertBulk) AddMerkleLeafIndex(v int) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.AddMerkleLeafIndex(v)
	})
}

// UpdateMerkleLeafIndex sets the "merkle_leaf_index" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateMerkleLeafIndex() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateMerkleLeafIndex()
	})
}

// ClearMerkleLeafIndex clears the value of the "merkle_leaf_index" field.
func (u *IntegrityCheckpointUpsertBulk) ClearMerkleLeafIndex() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearMerkleLeafIndex()
	})
}

// SetCertificateID sets the "certificate_id" field.
func (u *IntegrityCheckpointUpsertBulk) SetCertificateID(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetCertificateID(v)
	})
}

// UpdateCertificateID sets the "certificate_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateCertificateID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateCertificateID()
	})
}

// ClearCertificateID clears the value of the "certificate_id" field.
func (u *IntegrityCheckpointUpsertBulk) ClearCertificateID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearCertificateID()
	})
}

// SetSignature sets the "signature" field.
func (u *IntegrityCheckpointUpsertBulk) SetSignature(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateSignature() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSignature()
	})
}

// ClearSignature clears the value of the "signature" field.
func (u *IntegrityCheckpointUpsertBulk) ClearSignature() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearSignature()
	})
}

// SetSigningKeyID sets the "signing_key_id" field.
func (u *IntegrityCheckpointUpsertBulk) SetSigningKeyID(v string) *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.SetSigningKeyID(v)
	})
}

// UpdateSigningKeyID sets the "signing_key_id" field to the value that was provided on create.
func (u *IntegrityCheckpointUpsertBulk) UpdateSigningKeyID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.UpdateSigningKeyID()
	})
}

// ClearSigningKeyID clears the value of the "signing_key_id" field.
func (u *IntegrityCheckpointUpsertBulk) ClearSigningKeyID() *IntegrityCheckpointUpsertBulk {
	return u.Update(func(s *IntegrityCheckpointUpsert) {
		s.ClearSigningKeyID()
	})
}

// Exec executes the query.
func (u *IntegrityCheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IntegrityCheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntegrityCheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntegrityCheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
