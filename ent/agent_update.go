// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
	"github.com/mnemom/smoltbot/ent/merkletree"
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *AgentUpdate) SetAccountID(v string) *AgentUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAccountID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *AgentUpdate) ClearAccountID() *AgentUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (_u *AgentUpdate) SetEnforcementMode(v agent.EnforcementMode) *AgentUpdate {
	_u.mutation.SetEnforcementMode(v)
	return _u
}

// SetNillableEnforcementMode sets the "enforcement_mode" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEnforcementMode(v *agent.EnforcementMode) *AgentUpdate {
	if v != nil {
		_u.SetEnforcementMode(*v)
	}
	return _u
}

// SetContainmentStatus sets the "containment_status" field.
func (_u *AgentUpdate) SetContainmentStatus(v agent.ContainmentStatus) *AgentUpdate {
	_u.mutation.SetContainmentStatus(v)
	return _u
}

// SetNillableContainmentStatus sets the "containment_status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableContainmentStatus(v *agent.ContainmentStatus) *AgentUpdate {
	if v != nil {
		_u.SetContainmentStatus(*v)
	}
	return _u
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (_u *AgentUpdate) SetAutoContainmentThreshold(v int) *AgentUpdate {
	_u.mutation.ResetAutoContainmentThreshold()
	_u.mutation.SetAutoContainmentThreshold(v)
	return _u
}

// SetNillableAutoContainmentThreshold sets the "auto_containment_threshold" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAutoContainmentThreshold(v *int) *AgentUpdate {
	if v != nil {
		_u.SetAutoContainmentThreshold(*v)
	}
	return _u
}

// AddAutoContainmentThreshold adds value to the "auto_containment_threshold" field.
func (_u *AgentUpdate) AddAutoContainmentThreshold(v int) *AgentUpdate {
	_u.mutation.AddAutoContainmentThreshold(v)
	return _u
}

// ClearAutoContainmentThreshold clears the value of the "auto_containment_threshold" field.
func (_u *AgentUpdate) ClearAutoContainmentThreshold() *AgentUpdate {
	_u.mutation.ClearAutoContainmentThreshold()
	return _u
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (_u *AgentUpdate) SetNudgeStrategy(v agent.NudgeStrategy) *AgentUpdate {
	_u.mutation.SetNudgeStrategy(v)
	return _u
}

// SetNillableNudgeStrategy sets the "nudge_strategy" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableNudgeStrategy(v *agent.NudgeStrategy) *AgentUpdate {
	if v != nil {
		_u.SetNudgeStrategy(*v)
	}
	return _u
}

// SetNudgeRate sets the "nudge_rate" field.
func (_u *AgentUpdate) SetNudgeRate(v int) *AgentUpdate {
	_u.mutation.ResetNudgeRate()
	_u.mutation.SetNudgeRate(v)
	return _u
}

// SetNillableNudgeRate sets the "nudge_rate" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableNudgeRate(v *int) *AgentUpdate {
	if v != nil {
		_u.SetNudgeRate(*v)
	}
	return _u
}

// AddNudgeRate adds value to the "nudge_rate" field.
func (_u *AgentUpdate) AddNudgeRate(v int) *AgentUpdate {
	_u.mutation.AddNudgeRate(v)
	return _u
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (_u *AgentUpdate) SetNudgeThreshold(v int) *AgentUpdate {
	_u.mutation.ResetNudgeThreshold()
	_u.mutation.SetNudgeThreshold(v)
	return _u
}

// SetNillableNudgeThreshold sets the "nudge_threshold" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableNudgeThreshold(v *int) *AgentUpdate {
	if v != nil {
		_u.SetNudgeThreshold(*v)
	}
	return _u
}

// AddNudgeThreshold adds value to the "nudge_threshold" field.
func (_u *AgentUpdate) AddNudgeThreshold(v int) *AgentUpdate {
	_u.mutation.AddNudgeThreshold(v)
	return _u
}

// SetAipDisabled sets the "aip_disabled" field.
func (_u *AgentUpdate) SetAipDisabled(v bool) *AgentUpdate {
	_u.mutation.SetAipDisabled(v)
	return _u
}

// SetNillableAipDisabled sets the "aip_disabled" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAipDisabled(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetAipDisabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCardIDs adds the "cards" edge to the AlignmentCard entity by IDs.
func (_u *AgentUpdate) AddCardIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddCardIDs(ids...)
	return _u
}

// AddCards adds the "cards" edges to the AlignmentCard entity.
func (_u *AgentUpdate) AddCards(v ...*AlignmentCard) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCardIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the IntegrityCheckpoint entity by IDs.
func (_u *AgentUpdate) AddCheckpointIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the IntegrityCheckpoint entity.
func (_u *AgentUpdate) AddCheckpoints(v ...*IntegrityCheckpoint) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// SetMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by ID.
func (_u *AgentUpdate) SetMerkleTreeID(id string) *AgentUpdate {
	_u.mutation.SetMerkleTreeID(id)
	return _u
}

// SetNillableMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by ID if the given value is not nil.
func (_u *AgentUpdate) SetNillableMerkleTreeID(id *string) *AgentUpdate {
	if id != nil {
		_u = _u.SetMerkleTreeID(*id)
	}
	return _u
}

// SetMerkleTree sets the "merkle_tree" edge to the MerkleTree entity.
func (_u *AgentUpdate) SetMerkleTree(v *MerkleTree) *AgentUpdate {
	return _u.SetMerkleTreeID(v.ID)
}

// AddNudgeIDs adds the "nudges" edge to the Nudge entity by IDs.
func (_u *AgentUpdate) AddNudgeIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddNudgeIDs(ids...)
	return _u
}

// AddNudges adds the "nudges" edges to the Nudge entity.
func (_u *AgentUpdate) AddNudges(v ...*Nudge) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNudgeIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *AgentUpdate) AddAuditLogIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *AgentUpdate) AddAuditLogs(v ...*AuditLog) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearCards clears all "cards" edges to the AlignmentCard entity.
func (_u *AgentUpdate) ClearCards() *AgentUpdate {
	_u.mutation.ClearCards()
	return _u
}

// RemoveCardIDs removes the "cards" edge to AlignmentCard entities by IDs.
func (_u *AgentUpdate) RemoveCardIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveCardIDs(ids...)
	return _u
}

// RemoveCards removes "cards" edges to AlignmentCard entities.
func (_u *AgentUpdate) RemoveCards(v ...*AlignmentCard) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCardIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the IntegrityCheckpoint entity.
func (_u *AgentUpdate) ClearCheckpoints() *AgentUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to IntegrityCheckpoint entities by IDs.
func (_u *AgentUpdate) RemoveCheckpointIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to IntegrityCheckpoint entities.
func (_u *AgentUpdate) RemoveCheckpoints(v ...*IntegrityCheckpoint) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearMerkleTree clears the "merkle_tree" edge to the MerkleTree entity.
func (_u *AgentUpdate) ClearMerkleTree() *AgentUpdate {
	_u.mutation.ClearMerkleTree()
	return _u
}

// ClearNudges clears all "nudges" edges to the Nudge entity.
func (_u *AgentUpdate) ClearNudges() *AgentUpdate {
	_u.mutation.ClearNudges()
	return _u
}

// RemoveNudgeIDs removes the "nudges" edge to Nudge entities by IDs.
func (_u *AgentUpdate) RemoveNudgeIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveNudgeIDs(ids...)
	return _u
}

// RemoveNudges removes "nudges" edges to Nudge entities.
func (_u *AgentUpdate) RemoveNudges(v ...*Nudge) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNudgeIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *AgentUpdate) ClearAuditLogs() *AgentUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *AgentUpdate) RemoveAuditLogIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *AgentUpdate) RemoveAuditLogs(v ...*AuditLog) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.EnforcementMode(); ok {
		if err := agent.EnforcementModeValidator(v); err != nil {
			return &ValidationError{Name: "enforcement_mode", err: fmt.Errorf(`ent: validator failed for field "Agent.enforcement_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContainmentStatus(); ok {
		if err := agent.ContainmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "containment_status", err: fmt.Errorf(`ent: validator failed for field "Agent.containment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NudgeStrategy(); ok {
		if err := agent.NudgeStrategyValidator(v); err != nil {
			return &ValidationError{Name: "nudge_strategy", err: fmt.Errorf(`ent: validator failed for field "Agent.nudge_strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(agent.FieldAccountID, field.TypeString, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(agent.FieldAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.EnforcementMode(); ok {
		_spec.SetField(agent.FieldEnforcementMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContainmentStatus(); ok {
		_spec.SetField(agent.FieldContainmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoContainmentThreshold(); ok {
		_spec.SetField(agent.FieldAutoContainmentThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoContainmentThreshold(); ok {
		_spec.AddField(agent.FieldAutoContainmentThreshold, field.TypeInt, value)
	}
	if _u.mutation.AutoContainmentThresholdCleared() {
		_spec.ClearField(agent.FieldAutoContainmentThreshold, field.TypeInt)
	}
	if value, ok := _u.mutation.NudgeStrategy(); ok {
		_spec.SetField(agent.FieldNudgeStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NudgeRate(); ok {
		_spec.SetField(agent.FieldNudgeRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNudgeRate(); ok {
		_spec.AddField(agent.FieldNudgeRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NudgeThreshold(); ok {
		_spec.SetField(agent.FieldNudgeThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNudgeThreshold(); ok {
		_spec.AddField(agent.FieldNudgeThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AipDisabled(); ok {
		_spec.SetField(agent.FieldAipDisabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCardsIDs(); len(nodes) > 0 && !_u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MerkleTreeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerkleTreeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NudgesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNudgesIDs(); len(nodes) > 0 && !_u.mutation.NudgesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NudgesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAccountID sets the "account_id" field.
func (_u *AgentUpdateOne) SetAccountID(v string) *AgentUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAccountID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *AgentUpdateOne) ClearAccountID() *AgentUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (_u *AgentUpdateOne) SetEnforcementMode(v agent.EnforcementMode) *AgentUpdateOne {
	_u.mutation.SetEnforcementMode(v)
	return _u
}

// SetNillableEnforcementMode sets the "enforcement_mode" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEnforcementMode(v *agent.EnforcementMode) *AgentUpdateOne {
	if v != nil {
		_u.SetEnforcementMode(*v)
	}
	return _u
}

// SetContainmentStatus sets the "containment_status" field.
func (_u *AgentUpdateOne) SetContainmentStatus(v agent.ContainmentStatus) *AgentUpdateOne {
	_u.mutation.SetContainmentStatus(v)
	return _u
}

// SetNillableContainmentStatus sets the "containment_status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableContainmentStatus(v *agent.ContainmentStatus) *AgentUpdateOne {
	if v != nil {
		_u.SetContainmentStatus(*v)
	}
	return _u
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (_u *AgentUpdateOne) SetAutoContainmentThreshold(v int) *AgentUpdateOne {
	_u.mutation.ResetAutoContainmentThreshold()
	_u.mutation.SetAutoContainmentThreshold(v)
	return _u
}

// SetNillableAutoContainmentThreshold sets the "auto_containment_threshold" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAutoContainmentThreshold(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetAutoContainmentThreshold(*v)
	}
	return _u
}

// AddAutoContainmentThreshold adds value to the "auto_containment_threshold" field.
func (_u *AgentUpdateOne) AddAutoContainmentThreshold(v int) *AgentUpdateOne {
	_u.mutation.AddAutoContainmentThreshold(v)
	return _u
}

// ClearAutoContainmentThreshold clears the value of the "auto_containment_threshold" field.
func (_u *AgentUpdateOne) ClearAutoContainmentThreshold() *AgentUpdateOne {
	_u.mutation.ClearAutoContainmentThreshold()
	return _u
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (_u *AgentUpdateOne) SetNudgeStrategy(v agent.NudgeStrategy) *AgentUpdateOne {
	_u.mutation.SetNudgeStrategy(v)
	return _u
}

// SetNillableNudgeStrategy sets the "nudge_strategy" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableNudgeStrategy(v *agent.NudgeStrategy) *AgentUpdateOne {
	if v != nil {
		_u.SetNudgeStrategy(*v)
	}
	return _u
}

// SetNudgeRate sets the "nudge_rate" field.
func (_u *AgentUpdateOne) SetNudgeRate(v int) *AgentUpdateOne {
	_u.mutation.ResetNudgeRate()
	_u.mutation.SetNudgeRate(v)
	return _u
}

// SetNillableNudgeRate sets the "nudge_rate" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableNudgeRate(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetNudgeRate(*v)
	}
	return _u
}

// AddNudgeRate adds value to the "nudge_rate" field.
func (_u *AgentUpdateOne) AddNudgeRate(v int) *AgentUpdateOne {
	_u.mutation.AddNudgeRate(v)
	return _u
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (_u *AgentUpdateOne) SetNudgeThreshold(v int) *AgentUpdateOne {
	_u.mutation.ResetNudgeThreshold()
	_u.mutation.SetNudgeThreshold(v)
	return _u
}

// SetNillableNudgeThreshold sets the "nudge_threshold" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableNudgeThreshold(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetNudgeThreshold(*v)
	}
	return _u
}

// AddNudgeThreshold adds value to the "nudge_threshold" field.
func (_u *AgentUpdateOne) AddNudgeThreshold(v int) *AgentUpdateOne {
	_u.mutation.AddNudgeThreshold(v)
	return _u
}

// SetAipDisabled sets the "aip_disabled" field.
func (_u *AgentUpdateOne) SetAipDisabled(v bool) *AgentUpdateOne {
	_u.mutation.SetAipDisabled(v)
	return _u
}

// SetNillableAipDisabled sets the "aip_disabled" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAipDisabled(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetAipDisabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCardIDs adds the "cards" edge to the AlignmentCard entity by IDs.
func (_u *AgentUpdateOne) AddCardIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddCardIDs(ids...)
	return _u
}

// AddCards adds the "cards" edges to the AlignmentCard entity.
func (_u *AgentUpdateOne) AddCards(v ...*AlignmentCard) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCardIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the IntegrityCheckpoint entity by IDs.
func (_u *AgentUpdateOne) AddCheckpointIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the IntegrityCheckpoint entity.
func (_u *AgentUpdateOne) AddCheckpoints(v ...*IntegrityCheckpoint) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// SetMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by ID.
func (_u *AgentUpdateOne) SetMerkleTreeID(id string) *AgentUpdateOne {
	_u.mutation.SetMerkleTreeID(id)
	return _u
}

// SetNillableMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by ID if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMerkleTreeID(id *string) *AgentUpdateOne {
	if id != nil {
		_u = _u.SetMerkleTreeID(*id)
	}
	return _u
}

// SetMerkleTree sets the "merkle_tree" edge to the MerkleTree entity.
func (_u *AgentUpdateOne) SetMerkleTree(v *MerkleTree) *AgentUpdateOne {
	return _u.SetMerkleTreeID(v.ID)
}

// AddNudgeIDs adds the "nudges" edge to the Nudge entity by IDs.
func (_u *AgentUpdateOne) AddNudgeIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddNudgeIDs(ids...)
	return _u
}

// AddNudges adds the "nudges" edges to the Nudge entity.
func (_u *AgentUpdateOne) AddNudges(v ...*Nudge) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNudgeIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *AgentUpdateOne) AddAuditLogIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *AgentUpdateOne) AddAuditLogs(v ...*AuditLog) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearCards clears all "cards" edges to the AlignmentCard entity.
func (_u *AgentUpdateOne) ClearCards() *AgentUpdateOne {
	_u.mutation.ClearCards()
	return _u
}

// RemoveCardIDs removes the "cards" edge to AlignmentCard entities by IDs.
func (_u *AgentUpdateOne) RemoveCardIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveCardIDs(ids...)
	return _u
}

// RemoveCards removes "cards" edges to AlignmentCard entities.
func (_u *AgentUpdateOne) RemoveCards(v ...*AlignmentCard) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCardIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the IntegrityCheckpoint entity.
func (_u *AgentUpdateOne) ClearCheckpoints() *AgentUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to IntegrityCheckpoint entities by IDs.
func (_u *AgentUpdateOne) RemoveCheckpointIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to IntegrityCheckpoint entities.
func (_u *AgentUpdateOne) RemoveCheckpoints(v ...*IntegrityCheckpoint) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearMerkleTree clears the "merkle_tree" edge to the MerkleTree entity.
func (_u *AgentUpdateOne) ClearMerkleTree() *AgentUpdateOne {
	_u.mutation.ClearMerkleTree()
	return _u
}

// ClearNudges clears all "nudges" edges to the Nudge entity.
func (_u *AgentUpdateOne) ClearNudges() *AgentUpdateOne {
	_u.mutation.ClearNudges()
	return _u
}

// RemoveNudgeIDs removes the "nudges" edge to Nudge entities by IDs.
func (_u *AgentUpdateOne) RemoveNudgeIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveNudgeIDs(ids...)
	return _u
}

// RemoveNudges removes "nudges" edges to Nudge entities.
func (_u *AgentUpdateOne) RemoveNudges(v ...*Nudge) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNudgeIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *AgentUpdateOne) ClearAuditLogs() *AgentUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *AgentUpdateOne) RemoveAuditLogIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *AgentUpdateOne) RemoveAuditLogs(v ...*AuditLog) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.EnforcementMode(); ok {
		if err := agent.EnforcementModeValidator(v); err != nil {
			return &ValidationError{Name: "enforcement_mode", err: fmt.Errorf(`ent: validator failed for field "Agent.enforcement_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContainmentStatus(); ok {
		if err := agent.ContainmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "containment_status", err: fmt.Errorf(`ent: validator failed for field "Agent.containment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NudgeStrategy(); ok {
		if err := agent.NudgeStrategyValidator(v); err != nil {
			return &ValidationError{Name: "nudge_strategy", err: fmt.Errorf(`ent: validator failed for field "Agent.nudge_strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(agent.FieldAccountID, field.TypeString, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(agent.FieldAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.EnforcementMode(); ok {
		_spec.SetField(agent.FieldEnforcementMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContainmentStatus(); ok {
		_spec.SetField(agent.FieldContainmentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoContainmentThreshold(); ok {
		_spec.SetField(agent.FieldAutoContainmentThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoContainmentThreshold(); ok {
		_spec.AddField(agent.FieldAutoContainmentThreshold, field.TypeInt, value)
	}
	if _u.mutation.AutoContainmentThresholdCleared() {
		_spec.ClearField(agent.FieldAutoContainmentThreshold, field.TypeInt)
	}
	if value, ok := _u.mutation.NudgeStrategy(); ok {
		_spec.SetField(agent.FieldNudgeStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NudgeRate(); ok {
		_spec.SetField(agent.FieldNudgeRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNudgeRate(); ok {
		_spec.AddField(agent.FieldNudgeRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NudgeThreshold(); ok {
		_spec.SetField(agent.FieldNudgeThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNudgeThreshold(); ok {
		_spec.AddField(agent.FieldNudgeThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AipDisabled(); ok {
		_spec.SetField(agent.FieldAipDisabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCardsIDs(); len(nodes) > 0 && !_u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MerkleTreeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerkleTreeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NudgesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNudgesIDs(); len(nodes) > 0 && !_u.mutation.NudgesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NudgesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
