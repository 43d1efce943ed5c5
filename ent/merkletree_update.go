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
	"github.com/mnemom/smoltbot/ent/merkletree"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// MerkleTreeUpdate is the builder for updating MerkleTree entities.
type MerkleTreeUpdate struct {
	config
	hooks    []Hook
	mutation *MerkleTreeMutation
}

// Where appends a list predicates to the MerkleTreeUpdate builder.
func (_u *MerkleTreeUpdate) Where(ps ...predicate.MerkleTree) *MerkleTreeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MerkleTreeUpdate) SetAgentID(v string) *MerkleTreeUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MerkleTreeUpdate) SetNillableAgentID(v *string) *MerkleTreeUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRoot sets the "root" field.
func (_u *MerkleTreeUpdate) SetRoot(v string) *MerkleTreeUpdate {
	_u.mutation.SetRoot(v)
	return _u
}

// SetNillableRoot sets the "root" field if the given value is not nil.
func (_u *MerkleTreeUpdate) SetNillableRoot(v *string) *MerkleTreeUpdate {
	if v != nil {
		_u.SetRoot(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *MerkleTreeUpdate) SetDepth(v int) *MerkleTreeUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *MerkleTreeUpdate) SetNillableDepth(v *int) *MerkleTreeUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *MerkleTreeUpdate) AddDepth(v int) *MerkleTreeUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetLeafCount sets the "leaf_count" field.
func (_u *MerkleTreeUpdate) SetLeafCount(v int) *MerkleTreeUpdate {
	_u.mutation.ResetLeafCount()
	_u.mutation.SetLeafCount(v)
	return _u
}

// SetNillableLeafCount sets the "leaf_count" field if the given value is not nil.
func (_u *MerkleTreeUpdate) SetNillableLeafCount(v *int) *MerkleTreeUpdate {
	if v != nil {
		_u.SetLeafCount(*v)
	}
	return _u
}

// AddLeafCount adds value to the "leaf_count" field.
func (_u *MerkleTreeUpdate) AddLeafCount(v int) *MerkleTreeUpdate {
	_u.mutation.AddLeafCount(v)
	return _u
}

// SetLeaves sets the "leaves" field.
func (_u *MerkleTreeUpdate) SetLeaves(v []string) *MerkleTreeUpdate {
	_u.mutation.SetLeaves(v)
	return _u
}

// AppendLeaves appends value to the "leaves" field.
func (_u *MerkleTreeUpdate) AppendLeaves(v []string) *MerkleTreeUpdate {
	_u.mutation.AppendLeaves(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MerkleTreeUpdate) SetUpdatedAt(v time.Time) *MerkleTreeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *MerkleTreeUpdate) SetAgent(v *Agent) *MerkleTreeUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the MerkleTreeMutation object of the builder.
func (_u *MerkleTreeUpdate) Mutation() *MerkleTreeMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *MerkleTreeUpdate) ClearAgent() *MerkleTreeUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MerkleTreeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerkleTreeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MerkleTreeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerkleTreeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MerkleTreeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := merkletree.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerkleTreeUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MerkleTree.agent"`)
	}
	return nil
}

func (_u *MerkleTreeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merkletree.Table, merkletree.Columns, sqlgraph.NewFieldSpec(merkletree.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Root(); ok {
		_spec.SetField(merkletree.FieldRoot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(merkletree.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(merkletree.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeafCount(); ok {
		_spec.SetField(merkletree.FieldLeafCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeafCount(); ok {
		_spec.AddField(merkletree.FieldLeafCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Leaves(); ok {
		_spec.SetField(merkletree.FieldLeaves, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLeaves(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, merkletree.FieldLeaves, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(merkletree.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   merkletree.AgentTable,
			Columns: []string{merkletree.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   merkletree.AgentTable,
			Columns: []string{merkletree.AgentColumn},
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
			err = &NotFoundError{merkletree.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MerkleTreeUpdateOne is the builder for updating a single MerkleTree entity.
type MerkleTreeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MerkleTreeMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *MerkleTreeUpdateOne) SetAgentID(v string) *MerkleTreeUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MerkleTreeUpdateOne) SetNillableAgentID(v *string) *MerkleTreeUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRoot sets the "root" field.
func (_u *MerkleTreeUpdateOne) SetRoot(v string) *MerkleTreeUpdateOne {
	_u.mutation.SetRoot(v)
	return _u
}

// SetNillableRoot sets the "root" field if the given value is not nil.
func (_u *MerkleTreeUpdateOne) SetNillableRoot(v *string) *MerkleTreeUpdateOne {
	if v != nil {
		_u.SetRoot(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *MerkleTreeUpdateOne) SetDepth(v int) *MerkleTreeUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *MerkleTreeUpdateOne) SetNillableDepth(v *int) *MerkleTreeUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *MerkleTreeUpdateOne) AddDepth(v int) *MerkleTreeUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetLeafCount sets the "leaf_count" field.
func (_u *MerkleTreeUpdateOne) SetLeafCount(v int) *MerkleTreeUpdateOne {
	_u.mutation.ResetLeafCount()
	_u.mutation.SetLeafCount(v)
	return _u
}

// SetNillableLeafCount sets the "leaf_count" field if the given value is not nil.
func (_u *MerkleTreeUpdateOne) SetNillableLeafCount(v *int) *MerkleTreeUpdateOne {
	if v != nil {
		_u.SetLeafCount(*v)
	}
	return _u
}

// AddLeafCount adds value to the "leaf_count" field.
func (_u *MerkleTreeUpdateOne) AddLeafCount(v int) *MerkleTreeUpdateOne {
	_u.mutation.AddLeafCount(v)
	return _u
}

// SetLeaves sets the "leaves" field.
func (_u *MerkleTreeUpdateOne) SetLeaves(v []string) *MerkleTreeUpdateOne {
	_u.mutation.SetLeaves(v)
	return _u
}

// AppendLeaves appends value to the "leaves" field.
func (_u *MerkleTreeUpdateOne) AppendLeaves(v []string) *MerkleTreeUpdateOne {
	_u.mutation.AppendLeaves(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MerkleTreeUpdateOne) SetUpdatedAt(v time.Time) *MerkleTreeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *MerkleTreeUpdateOne) SetAgent(v *Agent) *MerkleTreeUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the MerkleTreeMutation object of the builder.
func (_u *MerkleTreeUpdateOne) Mutation() *MerkleTreeMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *MerkleTreeUpdateOne) ClearAgent() *MerkleTreeUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the MerkleTreeUpdate builder.
func (_u *MerkleTreeUpdateOne) Where(ps ...predicate.MerkleTree) *MerkleTreeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MerkleTreeUpdateOne) Select(field string, fields ...string) *MerkleTreeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MerkleTree entity.
func (_u *MerkleTreeUpdateOne) Save(ctx context.Context) (*MerkleTree, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerkleTreeUpdateOne) SaveX(ctx context.Context) *MerkleTree {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MerkleTreeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerkleTreeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MerkleTreeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := merkletree.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerkleTreeUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MerkleTree.agent"`)
	}
	return nil
}

func (_u *MerkleTreeUpdateOne) sqlSave(ctx context.Context) (_node *MerkleTree, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merkletree.Table, merkletree.Columns, sqlgraph.NewFieldSpec(merkletree.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MerkleTree.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, merkletree.FieldID)
		for _, f := range fields {
			if !merkletree.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != merkletree.FieldID {
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
	if value, ok := _u.mutation.Root(); ok {
		_spec.SetField(merkletree.FieldRoot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(merkletree.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(merkletree.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeafCount(); ok {
		_spec.SetField(merkletree.FieldLeafCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeafCount(); ok {
		_spec.AddField(merkletree.FieldLeafCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Leaves(); ok {
		_spec.SetField(merkletree.FieldLeaves, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLeaves(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, merkletree.FieldLeaves, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(merkletree.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   merkletree.AgentTable,
			Columns: []string{merkletree.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   merkletree.AgentTable,
			Columns: []string{merkletree.AgentColumn},
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
	_node = &MerkleTree{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{merkletree.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
