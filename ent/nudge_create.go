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
	"github.com/mnemom/smoltbot/ent/nudge"
)

// NudgeCreate is the builder for creating a Nudge entity.
type NudgeCreate struct {
	config
	mutation *NudgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *NudgeCreate) SetAgentID(v string) *NudgeCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_c *NudgeCreate) SetCheckpointID(v string) *NudgeCreate {
	_c.mutation.SetCheckpointID(v)
	return _c
}

// SetNillableCheckpointID sets the "checkpoint_id" field if the given value is not nil.
func (_c *NudgeCreate) SetNillableCheckpointID(v *string) *NudgeCreate {
	if v != nil {
		_c.SetCheckpointID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *NudgeCreate) SetSessionID(v string) *NudgeCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *NudgeCreate) SetNillableSessionID(v *string) *NudgeCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *NudgeCreate) SetMessage(v string) *NudgeCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NudgeCreate) SetStatus(v nudge.Status) *NudgeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NudgeCreate) SetNillableStatus(v *nudge.Status) *NudgeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NudgeCreate) SetCreatedAt(v time.Time) *NudgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NudgeCreate) SetNillableCreatedAt(v *time.Time) *NudgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *NudgeCreate) SetDeliveredAt(v time.Time) *NudgeCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *NudgeCreate) SetNillableDeliveredAt(v *time.Time) *NudgeCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NudgeCreate) SetID(v string) *NudgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *NudgeCreate) SetAgent(v *Agent) *NudgeCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the NudgeMutation object of the builder.
func (_c *NudgeCreate) Mutation() *NudgeMutation {
	return _c.mutation
}

// Save creates the Nudge in the database.
func (_c *NudgeCreate) Save(ctx context.Context) (*Nudge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NudgeCreate) SaveX(ctx context.Context) *Nudge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NudgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NudgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NudgeCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := nudge.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nudge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NudgeCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Nudge.agent_id"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Nudge.message"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Nudge.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := nudge.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Nudge.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Nudge.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Nudge.agent"`)}
	}
	return nil
}

func (_c *NudgeCreate) sqlSave(ctx context.Context) (*Nudge, error) {
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
			return nil, fmt.Errorf("unexpected Nudge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NudgeCreate) createSpec() (*Nudge, *sqlgraph.CreateSpec) {
	var (
		_node = &Nudge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nudge.Table, sqlgraph.NewFieldSpec(nudge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CheckpointID(); ok {
		_spec.SetField(nudge.FieldCheckpointID, field.TypeString, value)
		_node.CheckpointID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(nudge.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(nudge.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(nudge.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nudge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(nudge.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Nudge.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NudgeUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *NudgeCreate) OnConflict(opts ...sql.ConflictOption) *NudgeUpsertOne {
	_c.conflict = opts
	return &NudgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Nudge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NudgeCreate) OnConflictColumns(columns ...string) *NudgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NudgeUpsertOne{
		create: _c,
	}
}

type (
	// NudgeUpsertOne is the builder for "upsert"-ing
	//  one Nudge node.
	NudgeUpsertOne struct {
		create *NudgeCreate
	}

	// NudgeUpsert is the "OnConflict" setter.
	NudgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *NudgeUpsert) SetAgentID(v string) *NudgeUpsert {
	u.Set(nudge.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *NudgeUpsert) UpdateAgentID() *NudgeUpsert {
	u.SetExcluded(nudge.FieldAgentID)
	return u
}

// SetCheckpointID sets the "checkpoint_id" field.
func (u *NudgeUpsert) SetCheckpointID(v string) *NudgeUpsert {
	u.Set(nudge.FieldCheckpointID, v)
	return u
}

// UpdateCheckpointID sets the "checkpoint_id" field to the value that was provided on create.
func (u *NudgeUpsert) UpdateCheckpointID() *NudgeUpsert {
	u.SetExcluded(nudge.FieldCheckpointID)
	return u
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (u *NudgeUpsert) ClearCheckpointID() *NudgeUpsert {
	u.SetNull(nudge.FieldCheckpointID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *NudgeUpsert) SetSessionID(v string) *NudgeUpsert {
	u.Set(nudge.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *NudgeUpsert) UpdateSessionID() *NudgeUpsert {
	u.SetExcluded(nudge.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *NudgeUpsert) ClearSessionID() *NudgeUpsert {
	u.SetNull(nudge.FieldSessionID)
	return u
}

// SetMessage sets the "message" field.
func (u *NudgeUpsert) SetMessage(v string) *NudgeUpsert {
	u.Set(nudge.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *NudgeUpsert) UpdateMessage() *NudgeUpsert {
	u.SetExcluded(nudge.FieldMessage)
	return u
}

// SetStatus sets the "status" field.
func (u *NudgeUpsert) SetStatus(v nudge.Status) *NudgeUpsert {
	u.Set(nudge.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *NudgeUpsert) UpdateStatus() *NudgeUpsert {
	u.SetExcluded(nudge.FieldStatus)
	return u
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *NudgeUpsert) SetDeliveredAt(v time.Time) *NudgeUpsert {
	u.Set(nudge.FieldDeliveredAt, v)
	return u
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *NudgeUpsert) UpdateDeliveredAt() *NudgeUpsert {
	u.SetExcluded(nudge.FieldDeliveredAt)
	return u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *NudgeUpsert) ClearDeliveredAt() *NudgeUpsert {
	u.SetNull(nudge.FieldDeliveredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Nudge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(nudge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NudgeUpsertOne) UpdateNewValues() *NudgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(nudge.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(nudge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Nudge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NudgeUpsertOne) Ignore() *NudgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NudgeUpsertOne) DoNothing() *NudgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NudgeCreate.OnConflict
// documentation for more info.
func (u *NudgeUpsertOne) Update(set func(*NudgeUpsert)) *NudgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NudgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *NudgeUpsertOne) SetAgentID(v string) *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *NudgeUpsertOne) UpdateAgentID() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateAgentID()
	})
}

// SetCheckpointID sets the "checkpoint_id" field.
func (u *NudgeUpsertOne) SetCheckpointID(v string) *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.SetCheckpointID(v)
	})
}

// UpdateCheckpointID sets the "checkpoint_id" field to the value that was provided on create.
func (u *NudgeUpsertOne) UpdateCheckpointID() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateCheckpointID()
	})
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (u *NudgeUpsertOne) ClearCheckpointID() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.ClearCheckpointID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *NudgeUpsertOne) SetSessionID(v string) *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *NudgeUpsertOne) UpdateSessionID() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *NudgeUpsertOne) ClearSessionID() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.ClearSessionID()
	})
}

// SetMessage sets the "message" field.
func (u *NudgeUpsertOne) SetMessage(v string) *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *NudgeUpsertOne) UpdateMessage() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateMessage()
	})
}

// SetStatus sets the "status" field.
func (u *NudgeUpsertOne) SetStatus(v nudge.Status) *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *NudgeUpsertOne) UpdateStatus() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateStatus()
	})
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *NudgeUpsertOne) SetDeliveredAt(v time.Time) *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.SetDeliveredAt(v)
	})
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *NudgeUpsertOne) UpdateDeliveredAt() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateDeliveredAt()
	})
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *NudgeUpsertOne) ClearDeliveredAt() *NudgeUpsertOne {
	return u.Update(func(s *NudgeUpsert) {
		s.ClearDeliveredAt()
	})
}

// Exec executes the query.
func (u *NudgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NudgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NudgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NudgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: NudgeUpsertOne.ID is not supported by MySQL driver. Use NudgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NudgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NudgeCreateBulk is the builder for creating many Nudge entities in bulk.
type NudgeCreateBulk struct {
	config
	err      error
	builders []*NudgeCreate
	conflict []sql.ConflictOption
}

// Save creates the Nudge entities in the database.
func (_c *NudgeCreateBulk) Save(ctx context.Context) ([]*Nudge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Nudge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NudgeMutation)
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
func (_c *NudgeCreateBulk) SaveX(ctx context.Context) []*Nudge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NudgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NudgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Nudge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NudgeUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *NudgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *NudgeUpsertBulk {
	_c.conflict = opts
	return &NudgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Nudge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NudgeCreateBulk) OnConflictColumns(columns ...string) *NudgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NudgeUpsertBulk{
		create: _c,
	}
}

// NudgeUpsertBulk is the builder for "upsert"-ing
// a bulk of Nudge nodes.
type NudgeUpsertBulk struct {
	create *NudgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Nudge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(nudge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NudgeUpsertBulk) UpdateNewValues() *NudgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(nudge.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(nudge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Nudge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NudgeUpsertBulk) Ignore() *NudgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NudgeUpsertBulk) DoNothing() *NudgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NudgeCreateBulk.OnConflict
// documentation for more info.
func (u *NudgeUpsertBulk) Update(set func(*NudgeUpsert)) *NudgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NudgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *NudgeUpsertBulk) SetAgentID(v string) *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *NudgeUpsertBulk) UpdateAgentID() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateAgentID()
	})
}

// SetCheckpointID sets the "checkpoint_id" field.
func (u *NudgeUpsertBulk) SetCheckpointID(v string) *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.SetCheckpointID(v)
	})
}

// UpdateCheckpointID sets the "checkpoint_id" field to the value that was provided on create.
func (u *NudgeUpsertBulk) UpdateCheckpointID() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateCheckpointID()
	})
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (u *NudgeUpsertBulk) ClearCheckpointID() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.ClearCheckpointID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *NudgeUpsertBulk) SetSessionID(v string) *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *NudgeUpsertBulk) UpdateSessionID() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *NudgeUpsertBulk) ClearSessionID() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.ClearSessionID()
	})
}

// SetMessage sets the "message" field.
func (u *NudgeUpsertBulk) SetMessage(v string) *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *NudgeUpsertBulk) UpdateMessage() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateMessage()
	})
}

// SetStatus sets the "status" field.
func (u *NudgeUpsertBulk) SetStatus(v nudge.Status) *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *NudgeUpsertBulk) UpdateStatus() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateStatus()
	})
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *NudgeUpsertBulk) SetDeliveredAt(v time.Time) *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.SetDeliveredAt(v)
	})
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *NudgeUpsertBulk) UpdateDeliveredAt() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.UpdateDeliveredAt()
	})
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *NudgeUpsertBulk) ClearDeliveredAt() *NudgeUpsertBulk {
	return u.Update(func(s *NudgeUpsert) {
		s.ClearDeliveredAt()
	})
}

// Exec executes the query.
func (u *NudgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the NudgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NudgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NudgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
