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
	"github.com/mnemom/smoltbot/ent/merkletree"
)

// MerkleTreeCreate is the builder for creating a MerkleTree entity.
type MerkleTreeCreate struct {
	config
	mutation *MerkleTreeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *MerkleTreeCreate) SetAgentID(v string) *MerkleTreeCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRoot sets the "root" field.
func (_c *MerkleTreeCreate) SetRoot(v string) *MerkleTreeCreate {
	_c.mutation.SetRoot(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *MerkleTreeCreate) SetDepth(v int) *MerkleTreeCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *MerkleTreeCreate) SetNillableDepth(v *int) *MerkleTreeCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetLeafCount sets the "leaf_count" field.
func (_c *MerkleTreeCreate) SetLeafCount(v int) *MerkleTreeCreate {
	_c.mutation.SetLeafCount(v)
	return _c
}

// SetNillableLeafCount sets the "leaf_count" field if the given value is not nil.
func (_c *MerkleTreeCreate) SetNillableLeafCount(v *int) *MerkleTreeCreate {
	if v != nil {
		_c.SetLeafCount(*v)
	}
	return _c
}

// SetLeaves sets the "leaves" field.
func (_c *MerkleTreeCreate) SetLeaves(v []string) *MerkleTreeCreate {
	_c.mutation.SetLeaves(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MerkleTreeCreate) SetUpdatedAt(v time.Time) *MerkleTreeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MerkleTreeCreate) SetNillableUpdatedAt(v *time.Time) *MerkleTreeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MerkleTreeCreate) SetID(v string) *MerkleTreeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *MerkleTreeCreate) SetAgent(v *Agent) *MerkleTreeCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the MerkleTreeMutation object of the builder.
func (_c *MerkleTreeCreate) Mutation() *MerkleTreeMutation {
	return _c.mutation
}

// Save creates the MerkleTree in the database.
func (_c *MerkleTreeCreate) Save(ctx context.Context) (*MerkleTree, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MerkleTreeCreate) SaveX(ctx context.Context) *MerkleTree {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MerkleTreeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MerkleTreeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MerkleTreeCreate) defaults() {
	if _, ok := _c.mutation.Depth(); !ok {
		v := merkletree.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.LeafCount(); !ok {
		v := merkletree.DefaultLeafCount
		_c.mutation.SetLeafCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := merkletree.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MerkleTreeCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "MerkleTree.agent_id"`)}
	}
	if _, ok := _c.mutation.Root(); !ok {
		return &ValidationError{Name: "root", err: errors.New(`ent: missing required field "MerkleTree.root"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "MerkleTree.depth"`)}
	}
	if _, ok := _c.mutation.LeafCount(); !ok {
		return &ValidationError{Name: "leaf_count", err: errors.New(`ent: missing required field "MerkleTree.leaf_count"`)}
	}
	if _, ok := _c.mutation.Leaves(); !ok {
		return &ValidationError{Name: "leaves", err: errors.New(`ent: missing required field "MerkleTree.leaves"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MerkleTree.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "MerkleTree.agent"`)}
	}
	return nil
}

func (_c *MerkleTreeCreate) sqlSave(ctx context.Context) (*MerkleTree, error) {
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
			return nil, fmt.Errorf("unexpected MerkleTree.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MerkleTreeCreate) createSpec() (*MerkleTree, *sqlgraph.CreateSpec) {
	var (
		_node = &MerkleTree{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(merkletree.Table, sqlgraph.NewFieldSpec(merkletree.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Root(); ok {
		_spec.SetField(merkletree.FieldRoot, field.TypeString, value)
		_node.Root = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(merkletree.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.LeafCount(); ok {
		_spec.SetField(merkletree.FieldLeafCount, field.TypeInt, value)
		_node.LeafCount = value
	}
	if value, ok := _c.mutation.Leaves(); ok {
		_spec.SetField(merkletree.FieldLeaves, field.TypeJSON, value)
		_node.Leaves = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(merkletree.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MerkleTree.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MerkleTreeUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *MerkleTreeCreate) OnConflict(opts ...sql.ConflictOption) *MerkleTreeUpsertOne {
	_c.conflict = opts
	return &MerkleTreeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MerkleTree.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MerkleTreeCreate) OnConflictColumns(columns ...string) *MerkleTreeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MerkleTreeUpsertOne{
		create: _c,
	}
}

type (
	// MerkleTreeUpsertOne is the builder for "upsert"-ing
	//  one MerkleTree node.
	MerkleTreeUpsertOne struct {
		create *MerkleTreeCreate
	}

	// MerkleTreeUpsert is the "OnConflict" setter.
	MerkleTreeUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *MerkleTreeUpsert) SetAgentID(v string) *MerkleTreeUpsert {
	u.Set(merkletree.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *MerkleTreeUpsert) UpdateAgentID() *MerkleTreeUpsert {
	u.SetExcluded(merkletree.FieldAgentID)
	return u
}

// SetRoot sets the "root" field.
func (u *MerkleTreeUpsert) SetRoot(v string) *MerkleTreeUpsert {
	u.Set(merkletree.FieldRoot, v)
	return u
}

// UpdateRoot sets the "root" field to the value that was provided on create.
func (u *MerkleTreeUpsert) UpdateRoot() *MerkleTreeUpsert {
	u.SetExcluded(merkletree.FieldRoot)
	return u
}

// SetDepth sets the "depth" field.
func (u *MerkleTreeUpsert) SetDepth(v int) *MerkleTreeUpsert {
	u.Set(merkletree.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *MerkleTreeUpsert) UpdateDepth() *MerkleTreeUpsert {
	u.SetExcluded(merkletree.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *MerkleTreeUpsert) AddDepth(v int) *MerkleTreeUpsert {
	u.Add(merkletree.FieldDepth, v)
	return u
}

// SetLeafCount sets the "leaf_count" field.
func (u *MerkleTreeUpsert) SetLeafCount(v int) *MerkleTreeUpsert {
	u.Set(merkletree.FieldLeafCount, v)
	return u
}

// UpdateLeafCount sets the "leaf_count" field to the value that was provided on create.
func (u *MerkleTreeUpsert) UpdateLeafCount() *MerkleTreeUpsert {
	u.SetExcluded(merkletree.FieldLeafCount)
	return u
}

// AddLeafCount adds v to the "leaf_count" field.
func (u *MerkleTreeUpsert) AddLeafCount(v int) *MerkleTreeUpsert {
	u.Add(merkletree.FieldLeafCount, v)
	return u
}

// SetLeaves sets the "leaves" field.
func (u *MerkleTreeUpsert) SetLeaves(v []string) *MerkleTreeUpsert {
	u.Set(merkletree.FieldLeaves, v)
	return u
}

// UpdateLeaves sets the "leaves" field to the value that was provided on create.
func (u *MerkleTreeUpsert) UpdateLeaves() *MerkleTreeUpsert {
	u.SetExcluded(merkletree.FieldLeaves)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MerkleTreeUpsert) SetUpdatedAt(v time.Time) *MerkleTreeUpsert {
	u.Set(merkletree.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MerkleTreeUpsert) UpdateUpdatedAt() *MerkleTreeUpsert {
	u.SetExcluded(merkletree.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MerkleTree.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(merkletree.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MerkleTreeUpsertOne) UpdateNewValues() *MerkleTreeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(merkletree.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MerkleTree.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MerkleTreeUpsertOne) Ignore() *MerkleTreeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MerkleTreeUpsertOne) DoNothing() *MerkleTreeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MerkleTreeCreate.OnConflict
// documentation for more info.
func (u *MerkleTreeUpsertOne) Update(set func(*MerkleTreeUpsert)) *MerkleTreeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MerkleTreeUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *MerkleTreeUpsertOne) SetAgentID(v string) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *MerkleTreeUpsertOne) UpdateAgentID() *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateAgentID()
	})
}

// SetRoot sets the "root" field.
func (u *MerkleTreeUpsertOne) SetRoot(v string) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetRoot(v)
	})
}

// UpdateRoot sets the "root" field to the value that was provided on create.
func (u *MerkleTreeUpsertOne) UpdateRoot() *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateRoot()
	})
}

// SetDepth sets the "depth" field.
func (u *MerkleTreeUpsertOne) SetDepth(v int) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *MerkleTreeUpsertOne) AddDepth(v int) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *MerkleTreeUpsertOne) UpdateDepth() *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateDepth()
	})
}

// SetLeafCount sets the "leaf_count" field.
func (u *MerkleTreeUpsertOne) SetLeafCount(v int) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetLeafCount(v)
	})
}

// AddLeafCount adds v to the "leaf_count" field.
func (u *MerkleTreeUpsertOne) AddLeafCount(v int) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.AddLeafCount(v)
	})
}

// UpdateLeafCount sets the "leaf_count" field to the value that was provided on create.
func (u *MerkleTreeUpsertOne) UpdateLeafCount() *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateLeafCount()
	})
}

// SetLeaves sets the "leaves" field.
func (u *MerkleTreeUpsertOne) SetLeaves(v []string) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetLeaves(v)
	})
}

// UpdateLeaves sets the "leaves" field to the value that was provided on create.
func (u *MerkleTreeUpsertOne) UpdateLeaves() *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateLeaves()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MerkleTreeUpsertOne) SetUpdatedAt(v time.Time) *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MerkleTreeUpsertOne) UpdateUpdatedAt() *MerkleTreeUpsertOne {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MerkleTreeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MerkleTreeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MerkleTreeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MerkleTreeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MerkleTreeUpsertOne.ID is not supported by MySQL driver. Use MerkleTreeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MerkleTreeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MerkleTreeCreateBulk is the builder for creating many MerkleTree entities in bulk.
type MerkleTreeCreateBulk struct {
	config
	err      error
	builders []*MerkleTreeCreate
	conflict []sql.ConflictOption
}

// Save creates the MerkleTree entities in the database.
func (_c *MerkleTreeCreateBulk) Save(ctx context.Context) ([]*MerkleTree, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MerkleTree, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MerkleTreeMutation)
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
func (_c *MerkleTreeCreateBulk) SaveX(ctx context.Context) []*MerkleTree {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MerkleTreeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MerkleTreeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MerkleTree.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MerkleTreeUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *MerkleTreeCreateBulk) OnConflict(opts ...sql.ConflictOption) *MerkleTreeUpsertBulk {
	_c.conflict = opts
	return &MerkleTreeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MerkleTree.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MerkleTreeCreateBulk) OnConflictColumns(columns ...string) *MerkleTreeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MerkleTreeUpsertBulk{
		create: _c,
	}
}

// MerkleTreeUpsertBulk is the builder for "upsert"-ing
// a bulk of MerkleTree nodes.
type MerkleTreeUpsertBulk struct {
	create *MerkleTreeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MerkleTree.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(merkletree.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MerkleTreeUpsertBulk) UpdateNewValues() *MerkleTreeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(merkletree.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MerkleTree.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MerkleTreeUpsertBulk) Ignore() *MerkleTreeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MerkleTreeUpsertBulk) DoNothing() *MerkleTreeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MerkleTreeCreateBulk.OnConflict
// documentation for more info.
func (u *MerkleTreeUpsertBulk) Update(set func(*MerkleTreeUpsert)) *MerkleTreeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MerkleTreeUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *MerkleTreeUpsertBulk) SetAgentID(v string) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *MerkleTreeUpsertBulk) UpdateAgentID() *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateAgentID()
	})
}

// SetRoot sets the "root" field.
func (u *MerkleTreeUpsertBulk) SetRoot(v string) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetRoot(v)
	})
}

// UpdateRoot sets the "root" field to the value that was provided on create.
func (u *MerkleTreeUpsertBulk) UpdateRoot() *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateRoot()
	})
}

// SetDepth sets the "depth" field.
func (u *MerkleTreeUpsertBulk) SetDepth(v int) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *MerkleTreeUpsertBulk) AddDepth(v int) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *MerkleTreeUpsertBulk) UpdateDepth() *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateDepth()
	})
}

// SetLeafCount sets the "leaf_count" field.
func (u *MerkleTreeUpsertBulk) SetLeafCount(v int) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetLeafCount(v)
	})
}

// AddLeafCount adds v to the "leaf_count" field.
func (u *MerkleTreeUpsertBulk) AddLeafCount(v int) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.AddLeafCount(v)
	})
}

// UpdateLeafCount sets the "leaf_count" field to the value that was provided on create.
func (u *MerkleTreeUpsertBulk) UpdateLeafCount() *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateLeafCount()
	})
}

// SetLeaves sets the "leaves" field.
func (u *MerkleTreeUpsertBulk) SetLeaves(v []string) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetLeaves(v)
	})
}

// UpdateLeaves sets the "leaves" field to the value that was provided on create.
func (u *MerkleTreeUpsertBulk) UpdateLeaves() *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateLeaves()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MerkleTreeUpsertBulk) SetUpdatedAt(v time.Time) *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MerkleTreeUpsertBulk) UpdateUpdatedAt() *MerkleTreeUpsertBulk {
	return u.Update(func(s *MerkleTreeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MerkleTreeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MerkleTreeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MerkleTreeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MerkleTreeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
