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
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
	"github.com/mnemom/smoltbot/ent/merkletree"
	"github.com/mnemom/smoltbot/ent/nudge"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentHash sets the "agent_hash" field.
func (_c *AgentCreate) SetAgentHash(v string) *AgentCreate {
	_c.mutation.SetAgentHash(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *AgentCreate) SetAccountID(v string) *AgentCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAccountID(v *string) *AgentCreate {
	if v != nil {
		_c.SetAccountID(*v)
	}
	return _c
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (_c *AgentCreate) SetEnforcementMode(v agent.EnforcementMode) *AgentCreate {
	_c.mutation.SetEnforcementMode(v)
	return _c
}

// SetNillableEnforcementMode sets the "enforcement_mode" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEnforcementMode(v *agent.EnforcementMode) *AgentCreate {
	if v != nil {
		_c.SetEnforcementMode(*v)
	}
	return _c
}

// SetContainmentStatus sets the "containment_status" field.
func (_c *AgentCreate) SetContainmentStatus(v agent.ContainmentStatus) *AgentCreate {
	_c.mutation.SetContainmentStatus(v)
	return _c
}

// SetNillableContainmentStatus sets the "containment_status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableContainmentStatus(v *agent.ContainmentStatus) *AgentCreate {
	if v != nil {
		_c.SetContainmentStatus(*v)
	}
	return _c
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (_c *AgentCreate) SetAutoContainmentThreshold(v int) *AgentCreate {
	_c.mutation.SetAutoContainmentThreshold(v)
	return _c
}

// SetNillableAutoContainmentThreshold sets the "auto_containment_threshold" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAutoContainmentThreshold(v *int) *AgentCreate {
	if v != nil {
		_c.SetAutoContainmentThreshold(*v)
	}
	return _c
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (_c *AgentCreate) SetNudgeStrategy(v agent.NudgeStrategy) *AgentCreate {
	_c.mutation.SetNudgeStrategy(v)
	return _c
}

// SetNillableNudgeStrategy sets the "nudge_strategy" field if the given value is not nil.
func (_c *AgentCreate) SetNillableNudgeStrategy(v *agent.NudgeStrategy) *AgentCreate {
	if v != nil {
		_c.SetNudgeStrategy(*v)
	}
	return _c
}

// SetNudgeRate sets the "nudge_rate" field.
func (_c *AgentCreate) SetNudgeRate(v int) *AgentCreate {
	_c.mutation.SetNudgeRate(v)
	return _c
}

// SetNillableNudgeRate sets the "nudge_rate" field if the given value is not nil.
func (_c *AgentCreate) SetNillableNudgeRate(v *int) *AgentCreate {
	if v != nil {
		_c.SetNudgeRate(*v)
	}
	return _c
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (_c *AgentCreate) SetNudgeThreshold(v int) *AgentCreate {
	_c.mutation.SetNudgeThreshold(v)
	return _c
}

// SetNillableNudgeThreshold sets the "nudge_threshold" field if the given value is not nil.
func (_c *AgentCreate) SetNillableNudgeThreshold(v *int) *AgentCreate {
	if v != nil {
		_c.SetNudgeThreshold(*v)
	}
	return _c
}

// SetAipDisabled sets the "aip_disabled" field.
func (_c *AgentCreate) SetAipDisabled(v bool) *AgentCreate {
	_c.mutation.SetAipDisabled(v)
	return _c
}

// SetNillableAipDisabled sets the "aip_disabled" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAipDisabled(v *bool) *AgentCreate {
	if v != nil {
		_c.SetAipDisabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCardIDs adds the "cards" edge to the AlignmentCard entity by IDs.
func (_c *AgentCreate) AddCardIDs(ids ...string) *AgentCreate {
	_c.mutation.AddCardIDs(ids...)
	return _c
}

// AddCards adds the "cards" edges to the AlignmentCard entity.
func (_c *AgentCreate) AddCards(v ...*AlignmentCard) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCardIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the IntegrityCheckpoint entity by IDs.
func (_c *AgentCreate) AddCheckpointIDs(ids ...string) *AgentCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the IntegrityCheckpoint entity.
func (_c *AgentCreate) AddCheckpoints(v ...*IntegrityCheckpoint) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// SetMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by ID.
func (_c *AgentCreate) SetMerkleTreeID(id string) *AgentCreate {
	_c.mutation.SetMerkleTreeID(id)
	return _c
}

// SetNillableMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by ID if the given value is not nil.
func (_c *AgentCreate) SetNillableMerkleTreeID(id *string) *AgentCreate {
	if id != nil {
		_c = _c.SetMerkleTreeID(*id)
	}
	return _c
}

// SetMerkleTree sets the "merkle_tree" edge to the MerkleTree entity.
func (_c *AgentCreate) SetMerkleTree(v *MerkleTree) *AgentCreate {
	return _c.SetMerkleTreeID(v.ID)
}

// AddNudgeIDs adds the "nudges" edge to the Nudge entity by IDs.
func (_c *AgentCreate) AddNudgeIDs(ids ...string) *AgentCreate {
	_c.mutation.AddNudgeIDs(ids...)
	return _c
}

// AddNudges adds the "nudges" edges to the Nudge entity.
func (_c *AgentCreate) AddNudges(v ...*Nudge) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNudgeIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_c *AgentCreate) AddAuditLogIDs(ids ...string) *AgentCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_c *AgentCreate) AddAuditLogs(v ...*AuditLog) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.EnforcementMode(); !ok {
		v := agent.DefaultEnforcementMode
		_c.mutation.SetEnforcementMode(v)
	}
	if _, ok := _c.mutation.ContainmentStatus(); !ok {
		v := agent.DefaultContainmentStatus
		_c.mutation.SetContainmentStatus(v)
	}
	if _, ok := _c.mutation.NudgeStrategy(); !ok {
		v := agent.DefaultNudgeStrategy
		_c.mutation.SetNudgeStrategy(v)
	}
	if _, ok := _c.mutation.NudgeRate(); !ok {
		v := agent.DefaultNudgeRate
		_c.mutation.SetNudgeRate(v)
	}
	if _, ok := _c.mutation.NudgeThreshold(); !ok {
		v := agent.DefaultNudgeThreshold
		_c.mutation.SetNudgeThreshold(v)
	}
	if _, ok := _c.mutation.AipDisabled(); !ok {
		v := agent.DefaultAipDisabled
		_c.mutation.SetAipDisabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.AgentHash(); !ok {
		return &ValidationError{Name: "agent_hash", err: errors.New(`ent: missing required field "Agent.agent_hash"`)}
	}
	if _, ok := _c.mutation.EnforcementMode(); !ok {
		return &ValidationError{Name: "enforcement_mode", err: errors.New(`ent: missing required field "Agent.enforcement_mode"`)}
	}
	if v, ok := _c.mutation.EnforcementMode(); ok {
		if err := agent.EnforcementModeValidator(v); err != nil {
			return &ValidationError{Name: "enforcement_mode", err: fmt.Errorf(`ent: validator failed for field "Agent.enforcement_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContainmentStatus(); !ok {
		return &ValidationError{Name: "containment_status", err: errors.New(`ent: missing required field "Agent.containment_status"`)}
	}
	if v, ok := _c.mutation.ContainmentStatus(); ok {
		if err := agent.ContainmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "containment_status", err: fmt.Errorf(`ent: validator failed for field "Agent.containment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NudgeStrategy(); !ok {
		return &ValidationError{Name: "nudge_strategy", err: errors.New(`ent: missing required field "Agent.nudge_strategy"`)}
	}
	if v, ok := _c.mutation.NudgeStrategy(); ok {
		if err := agent.NudgeStrategyValidator(v); err != nil {
			return &ValidationError{Name: "nudge_strategy", err: fmt.Errorf(`ent: validator failed for field "Agent.nudge_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NudgeRate(); !ok {
		return &ValidationError{Name: "nudge_rate", err: errors.New(`ent: missing required field "Agent.nudge_rate"`)}
	}
	if _, ok := _c.mutation.NudgeThreshold(); !ok {
		return &ValidationError{Name: "nudge_threshold", err: errors.New(`ent: missing required field "Agent.nudge_threshold"`)}
	}
	if _, ok := _c.mutation.AipDisabled(); !ok {
		return &ValidationError{Name: "aip_disabled", err: errors.New(`ent: missing required field "Agent.aip_disabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentHash(); ok {
		_spec.SetField(agent.FieldAgentHash, field.TypeString, value)
		_node.AgentHash = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(agent.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.EnforcementMode(); ok {
		_spec.SetField(agent.FieldEnforcementMode, field.TypeEnum, value)
		_node.EnforcementMode = value
	}
	if value, ok := _c.mutation.ContainmentStatus(); ok {
		_spec.SetField(agent.FieldContainmentStatus, field.TypeEnum, value)
		_node.ContainmentStatus = value
	}
	if value, ok := _c.mutation.AutoContainmentThreshold(); ok {
		_spec.SetField(agent.FieldAutoContainmentThreshold, field.TypeInt, value)
		_node.AutoContainmentThreshold = &value
	}
	if value, ok := _c.mutation.NudgeStrategy(); ok {
		_spec.SetField(agent.FieldNudgeStrategy, field.TypeEnum, value)
		_node.NudgeStrategy = value
	}
	if value, ok := _c.mutation.NudgeRate(); ok {
		_spec.SetField(agent.FieldNudgeRate, field.TypeInt, value)
		_node.NudgeRate = value
	}
	if value, ok := _c.mutation.NudgeThreshold(); ok {
		_spec.SetField(agent.FieldNudgeThreshold, field.TypeInt, value)
		_node.NudgeThreshold = value
	}
	if value, ok := _c.mutation.AipDisabled(); ok {
		_spec.SetField(agent.FieldAipDisabled, field.TypeBool, value)
		_node.AipDisabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CardsTable,
			Columns: []string{agent.CardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alignmentcard.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CheckpointsTable,
			Columns: []string{agent.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(integritycheckpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MerkleTreeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.MerkleTreeTable,
			Columns: []string{agent.MerkleTreeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merkletree.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NudgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.NudgesTable,
			Columns: []string{agent.NudgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nudge.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AuditLogsTable,
			Columns: []string{agent.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetAgentHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetAgentHash(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *AgentUpsert) SetAccountID(v string) *AgentUpsert {
	u.Set(agent.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAccountID() *AgentUpsert {
	u.SetExcluded(agent.FieldAccountID)
	return u
}

// ClearAccountID clears the value of the "account_id" field.
func (u *AgentUpsert) ClearAccountID() *AgentUpsert {
	u.SetNull(agent.FieldAccountID)
	return u
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (u *AgentUpsert) SetEnforcementMode(v agent.EnforcementMode) *AgentUpsert {
	u.Set(agent.FieldEnforcementMode, v)
	return u
}

// UpdateEnforcementMode sets the "enforcement_mode" field to the value that was provided on create.
func (u *AgentUpsert) UpdateEnforcementMode() *AgentUpsert {
	u.SetExcluded(agent.FieldEnforcementMode)
	return u
}

// SetContainmentStatus sets the "containment_status" field.
func (u *AgentUpsert) SetContainmentStatus(v agent.ContainmentStatus) *AgentUpsert {
	u.Set(agent.FieldContainmentStatus, v)
	return u
}

// UpdateContainmentStatus sets the "containment_status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateContainmentStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldContainmentStatus)
	return u
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (u *AgentUpsert) SetAutoContainmentThreshold(v int) *AgentUpsert {
	u.Set(agent.FieldAutoContainmentThreshold, v)
	return u
}

// UpdateAutoContainmentThreshold sets the "auto_containment_threshold" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAutoContainmentThreshold() *AgentUpsert {
	u.SetExcluded(agent.FieldAutoContainmentThreshold)
	return u
}

// AddAutoContainmentThreshold adds v to the "auto_containment_threshold" field.
func (u *AgentUpsert) AddAutoContainmentThreshold(v int) *AgentUpsert {
	u.Add(agent.FieldAutoContainmentThreshold, v)
	return u
}

// ClearAutoContainmentThreshold clears the value of the "auto_containment_threshold" field.
func (u *AgentUpsert) ClearAutoContainmentThreshold() *AgentUpsert {
	u.SetNull(agent.FieldAutoContainmentThreshold)
	return u
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (u *AgentUpsert) SetNudgeStrategy(v agent.NudgeStrategy) *AgentUpsert {
	u.Set(agent.FieldNudgeStrategy, v)
	return u
}

// UpdateNudgeStrategy sets the "nudge_strategy" field to the value that was provided on create.
func (u *AgentUpsert) UpdateNudgeStrategy() *AgentUpsert {
	u.SetExcluded(agent.FieldNudgeStrategy)
	return u
}

// SetNudgeRate sets the "nudge_rate" field.
func (u *AgentUpsert) SetNudgeRate(v int) *AgentUpsert {
	u.Set(agent.FieldNudgeRate, v)
	return u
}

// UpdateNudgeRate sets the "nudge_rate" field to the value that was provided on create.
func (u *AgentUpsert) UpdateNudgeRate() *AgentUpsert {
	u.SetExcluded(agent.FieldNudgeRate)
	return u
}

// AddNudgeRate adds v to the "nudge_rate" field.
func (u *AgentUpsert) AddNudgeRate(v int) *AgentUpsert {
	u.Add(agent.FieldNudgeRate, v)
	return u
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (u *AgentUpsert) SetNudgeThreshold(v int) *AgentUpsert {
	u.Set(agent.FieldNudgeThreshold, v)
	return u
}

// UpdateNudgeThreshold sets the "nudge_threshold" field to the value that was provided on create.
func (u *AgentUpsert) UpdateNudgeThreshold() *AgentUpsert {
	u.SetExcluded(agent.FieldNudgeThreshold)
	return u
}

// AddNudgeThreshold adds v to the "nudge_threshold" field.
func (u *AgentUpsert) AddNudgeThreshold(v int) *AgentUpsert {
	u.Add(agent.FieldNudgeThreshold, v)
	return u
}

// SetAipDisabled sets the "aip_disabled" field.
func (u *AgentUpsert) SetAipDisabled(v bool) *AgentUpsert {
	u.Set(agent.FieldAipDisabled, v)
	return u
}

// UpdateAipDisabled sets the "aip_disabled" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAipDisabled() *AgentUpsert {
	u.SetExcluded(agent.FieldAipDisabled)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsert) SetUpdatedAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateUpdatedAt() *AgentUpsert {
	u.SetExcluded(agent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.AgentHash(); exists {
			s.SetIgnore(agent.FieldAgentHash)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *AgentUpsertOne) SetAccountID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAccountID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *AgentUpsertOne) ClearAccountID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAccountID()
	})
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (u *AgentUpsertOne) SetEnforcementMode(v agent.EnforcementMode) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetEnforcementMode(v)
	})
}

// UpdateEnforcementMode sets the "enforcement_mode" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateEnforcementMode() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateEnforcementMode()
	})
}

// SetContainmentStatus sets the "containment_status" field.
func (u *AgentUpsertOne) SetContainmentStatus(v agent.ContainmentStatus) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetContainmentStatus(v)
	})
}

// UpdateContainmentStatus sets the "containment_status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateContainmentStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateContainmentStatus()
	})
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (u *AgentUpsertOne) SetAutoContainmentThreshold(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAutoContainmentThreshold(v)
	})
}

// AddAutoContainmentThreshold adds v to the "auto_containment_threshold" field.
func (u *AgentUpsertOne) AddAutoContainmentThreshold(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddAutoContainmentThreshold(v)
	})
}

// UpdateAutoContainmentThreshold sets the "auto_containment_threshold" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAutoContainmentThreshold() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAutoContainmentThreshold()
	})
}

// ClearAutoContainmentThreshold clears the value of the "auto_containment_threshold" field.
func (u *AgentUpsertOne) ClearAutoContainmentThreshold() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAutoContainmentThreshold()
	})
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (u *AgentUpsertOne) SetNudgeStrategy(v agent.NudgeStrategy) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetNudgeStrategy(v)
	})
}

// UpdateNudgeStrategy sets the "nudge_strategy" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateNudgeStrategy() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateNudgeStrategy()
	})
}

// SetNudgeRate sets the "nudge_rate" field.
func (u *AgentUpsertOne) SetNudgeRate(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetNudgeRate(v)
	})
}

// AddNudgeRate adds v to the "nudge_rate" field.
func (u *AgentUpsertOne) AddNudgeRate(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddNudgeRate(v)
	})
}

// UpdateNudgeRate sets the "nudge_rate" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateNudgeRate() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateNudgeRate()
	})
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (u *AgentUpsertOne) SetNudgeThreshold(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetNudgeThreshold(v)
	})
}

// AddNudgeThreshold adds v to the "nudge_threshold" field.
func (u *AgentUpsertOne) AddNudgeThreshold(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddNudgeThreshold(v)
	})
}

// UpdateNudgeThreshold sets the "nudge_threshold" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateNudgeThreshold() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateNudgeThreshold()
	})
}

// SetAipDisabled sets the "aip_disabled" field.
func (u *AgentUpsertOne) SetAipDisabled(v bool) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAipDisabled(v)
	})
}

// UpdateAipDisabled sets the "aip_disabled" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAipDisabled() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAipDisabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsertOne) SetUpdatedAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateUpdatedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetAgentHash(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.AgentHash(); exists {
				s.SetIgnore(agent.FieldAgentHash)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *AgentUpsertBulk) SetAccountID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAccountID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *AgentUpsertBulk) ClearAccountID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAccountID()
	})
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (u *AgentUpsertBulk) SetEnforcementMode(v agent.EnforcementMode) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetEnforcementMode(v)
	})
}

// UpdateEnforcementMode sets the "enforcement_mode" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateEnforcementMode() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateEnforcementMode()
	})
}

// SetContainmentStatus sets the "containment_status" field.
func (u *AgentUpsertBulk) SetContainmentStatus(v agent.ContainmentStatus) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetContainmentStatus(v)
	})
}

// UpdateContainmentStatus sets the "containment_status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateContainmentStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateContainmentStatus()
	})
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (u *AgentUpsertBulk) SetAutoContainmentThreshold(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAutoContainmentThreshold(v)
	})
}

// AddAutoContainmentThreshold adds v to the "auto_containment_threshold" field.
func (u *AgentUpsertBulk) AddAutoContainmentThreshold(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddAutoContainmentThreshold(v)
	})
}

// UpdateAutoContainmentThreshold sets the "auto_containment_threshold" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAutoContainmentThreshold() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAutoContainmentThreshold()
	})
}

// ClearAutoContainmentThreshold clears the value of the "auto_containment_threshold" field.
func (u *AgentUpsertBulk) ClearAutoContainmentThreshold() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAutoContainmentThreshold()
	})
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (u *AgentUpsertBulk) SetNudgeStrategy(v agent.NudgeStrategy) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetNudgeStrategy(v)
	})
}

// UpdateNudgeStrategy sets the "nudge_strategy" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateNudgeStrategy() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateNudgeStrategy()
	})
}

// SetNudgeRate sets the "nudge_rate" field.
func (u *AgentUpsertBulk) SetNudgeRate(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetNudgeRate(v)
	})
}

// AddNudgeRate adds v to the "nudge_rate" field.
func (u *AgentUpsertBulk) AddNudgeRate(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddNudgeRate(v)
	})
}

// UpdateNudgeRate sets the "nudge_rate" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateNudgeRate() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateNudgeRate()
	})
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (u *AgentUpsertBulk) SetNudgeThreshold(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetNudgeThreshold(v)
	})
}

// AddNudgeThreshold adds v to the "nudge_threshold" field.
func (u *AgentUpsertBulk) AddNudgeThreshold(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddNudgeThreshold(v)
	})
}

// UpdateNudgeThreshold sets the "nudge_threshold" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateNudgeThreshold() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateNudgeThreshold()
	})
}

// SetAipDisabled sets the "aip_disabled" field.
func (u *AgentUpsertBulk) SetAipDisabled(v bool) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAipDisabled(v)
	})
}

// UpdateAipDisabled sets the "aip_disabled" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAipDisabled() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAipDisabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsertBulk) SetUpdatedAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateUpdatedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
