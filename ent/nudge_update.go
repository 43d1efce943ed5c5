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
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// NudgeUpdate is the builder for updating Nudge entities.
type NudgeUpdate struct {
	config
	hooks    []Hook
	mutation *NudgeMutation
}

// Where appends a list predicates to the NudgeUpdate builder.
func (_u *NudgeUpdate) Where(ps ...predicate.Nudge) *NudgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *NudgeUpdate) SetAgentID(v string) *NudgeUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *NudgeUpdate) SetNillableAgentID(v *string) *NudgeUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_u *NudgeUpdate) SetCheckpointID(v string) *NudgeUpdate {
	_u.mutation.SetCheckpointID(v)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint_id" field if the given value is not nil.
func (_u *NudgeUpdate) SetNillableCheckpointID(v *string) *NudgeUpdate {
	if v != nil {
		_u.SetCheckpointID(*v)
	}
	return _u
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (_u *NudgeUpdate) ClearCheckpointID() *NudgeUpdate {
	_u.mutation.ClearCheckpointID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *NudgeUpdate) SetSessionID(v string) *NudgeUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NudgeUpdate) SetNillableSessionID(v *string) *NudgeUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *NudgeUpdate) ClearSessionID() *NudgeUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *NudgeUpdate) SetMessage(v string) *NudgeUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NudgeUpdate) SetNillableMessage(v *string) *NudgeUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NudgeUpdate) SetStatus(v nudge.Status) *NudgeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NudgeUpdate) SetNillableStatus(v *nudge.Status) *NudgeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *NudgeUpdate) SetDeliveredAt(v time.Time) *NudgeUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *NudgeUpdate) SetNillableDeliveredAt(v *time.Time) *NudgeUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *NudgeUpdate) ClearDeliveredAt() *NudgeUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *NudgeUpdate) SetAgent(v *Agent) *NudgeUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the NudgeMutation object of the builder.
func (_u *NudgeUpdate) Mutation() *NudgeMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *NudgeUpdate) ClearAgent() *NudgeUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NudgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NudgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NudgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NudgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NudgeUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := nudge.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Nudge.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Nudge.agent"`)
	}
	return nil
}

func (_u *NudgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nudge.Table, nudge.Columns, sqlgraph.NewFieldSpec(nudge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CheckpointID(); ok {
		_spec.SetField(nudge.FieldCheckpointID, field.TypeString, value)
	}
	if _u.mutation.CheckpointIDCleared() {
		_spec.ClearField(nudge.FieldCheckpointID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(nudge.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(nudge.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(nudge.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(nudge.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(nudge.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(nudge.FieldDeliveredAt, field.TypeTime)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   nudge.AgentTable,
			Columns: []string{nudge.AgentColumn},
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
			Table:   nudge.AgentTable,
			Columns: []string{nudge.AgentColumn},
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
			err = &NotFoundError{nudge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NudgeUpdateOne is the builder for updating a single Nudge entity.
type NudgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NudgeMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *NudgeUpdateOne) SetAgentID(v string) *NudgeUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *NudgeUpdateOne) SetNillableAgentID(v *string) *NudgeUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_u *NudgeUpdateOne) SetCheckpointID(v string) *NudgeUpdateOne {
	_u.mutation.SetCheckpointID(v)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint_id" field if the given value is not nil.
func (_u *NudgeUpdateOne) SetNillableCheckpointID(v *string) *NudgeUpdateOne {
	if v != nil {
		_u.SetCheckpointID(*v)
	}
	return _u
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (_u *NudgeUpdateOne) ClearCheckpointID() *NudgeUpdateOne {
	_u.mutation.ClearCheckpointID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *NudgeUpdateOne) SetSessionID(v string) *NudgeUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NudgeUpdateOne) SetNillableSessionID(v *string) *NudgeUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *NudgeUpdateOne) ClearSessionID() *NudgeUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *NudgeUpdateOne) SetMessage(v string) *NudgeUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NudgeUpdateOne) SetNillableMessage(v *string) *NudgeUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NudgeUpdateOne) SetStatus(v nudge.Status) *NudgeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NudgeUpdateOne) SetNillableStatus(v *nudge.Status) *NudgeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *NudgeUpdateOne) SetDeliveredAt(v time.Time) *NudgeUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *NudgeUpdateOne) SetNillableDeliveredAt(v *time.Time) *NudgeUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *NudgeUpdateOne) ClearDeliveredAt() *NudgeUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *NudgeUpdateOne) SetAgent(v *Agent) *NudgeUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the NudgeMutation object of the builder.
func (_u *NudgeUpdateOne) Mutation() *NudgeMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *NudgeUpdateOne) ClearAgent() *NudgeUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the NudgeUpdate builder.
func (_u *NudgeUpdateOne) Where(ps ...predicate.Nudge) *NudgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NudgeUpdateOne) Select(field string, fields ...string) *NudgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Nudge entity.
func (_u *NudgeUpdateOne) Save(ctx context.Context) (*Nudge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NudgeUpdateOne) SaveX(ctx context.Context) *Nudge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NudgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NudgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NudgeUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := nudge.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Nudge.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Nudge.agent"`)
	}
	return nil
}

func (_u *NudgeUpdateOne) sqlSave(ctx context.Context) (_node *Nudge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nudge.Table, nudge.Columns, sqlgraph.NewFieldSpec(nudge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Nudge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nudge.FieldID)
		for _, f := range fields {
			if !nudge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nudge.FieldID {
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
	if value, ok := _u.mutation.CheckpointID(); ok {
		_spec.SetField(nudge.FieldCheckpointID, field.TypeString, value)
	}
	if _u.mutation.CheckpointIDCleared() {
		_spec.ClearField(nudge.FieldCheckpointID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(nudge.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(nudge.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(nudge.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(nudge.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(nudge.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(nudge.FieldDeliveredAt, field.TypeTime)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   nudge.AgentTable,
			Columns: []string{nudge.AgentColumn},
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
			Table:   nudge.AgentTable,
			Columns: []string{nudge.AgentColumn},
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
	_node = &Nudge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nudge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
