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
)

// AlignmentCardCreate is the builder for creating a AlignmentCard entity.
type AlignmentCardCreate struct {
	config
	mutation *AlignmentCardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *AlignmentCardCreate) SetAgentID(v string) *AlignmentCardCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetPrincipal sets the "principal" field.
func (_c *AlignmentCardCreate) SetPrincipal(v string) *AlignmentCardCreate {
	_c.mutation.SetPrincipal(v)
	return _c
}

// SetNillablePrincipal sets the "principal" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillablePrincipal(v *string) *AlignmentCardCreate {
	if v != nil {
		_c.SetPrincipal(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *AlignmentCardCreate) SetRole(v string) *AlignmentCardCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillableRole(v *string) *AlignmentCardCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AlignmentCardCreate) SetDescription(v string) *AlignmentCardCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillableDescription(v *string) *AlignmentCardCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDeclaredValues sets the "declared_values" field.
func (_c *AlignmentCardCreate) SetDeclaredValues(v []map[string]interface{}) *AlignmentCardCreate {
	_c.mutation.SetDeclaredValues(v)
	return _c
}

// SetBoundedActions sets the "bounded_actions" field.
func (_c *AlignmentCardCreate) SetBoundedActions(v []string) *AlignmentCardCreate {
	_c.mutation.SetBoundedActions(v)
	return _c
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (_c *AlignmentCardCreate) SetForbiddenActions(v []string) *AlignmentCardCreate {
	_c.mutation.SetForbiddenActions(v)
	return _c
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (_c *AlignmentCardCreate) SetEscalationTriggers(v []map[string]interface{}) *AlignmentCardCreate {
	_c.mutation.SetEscalationTriggers(v)
	return _c
}

// SetAuditCommitment sets the "audit_commitment" field.
func (_c *AlignmentCardCreate) SetAuditCommitment(v string) *AlignmentCardCreate {
	_c.mutation.SetAuditCommitment(v)
	return _c
}

// SetNillableAuditCommitment sets the "audit_commitment" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillableAuditCommitment(v *string) *AlignmentCardCreate {
	if v != nil {
		_c.SetAuditCommitment(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AlignmentCardCreate) SetIsActive(v bool) *AlignmentCardCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillableIsActive(v *bool) *AlignmentCardCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlignmentCardCreate) SetCreatedAt(v time.Time) *AlignmentCardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillableCreatedAt(v *time.Time) *AlignmentCardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AlignmentCardCreate) SetUpdatedAt(v time.Time) *AlignmentCardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AlignmentCardCreate) SetNillableUpdatedAt(v *time.Time) *AlignmentCardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlignmentCardCreate) SetID(v string) *AlignmentCardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AlignmentCardCreate) SetAgent(v *Agent) *AlignmentCardCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the AlignmentCardMutation object of the builder.
func (_c *AlignmentCardCreate) Mutation() *AlignmentCardMutation {
	return _c.mutation
}

// Save creates the AlignmentCard in the database.
func (_c *AlignmentCardCreate) Save(ctx context.Context) (*AlignmentCard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlignmentCardCreate) SaveX(ctx context.Context) *AlignmentCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlignmentCardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlignmentCardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlignmentCardCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := alignmentcard.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alignmentcard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := alignmentcard.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlignmentCardCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AlignmentCard.agent_id"`)}
	}
	if _, ok := _c.mutation.DeclaredValues(); !ok {
		return &ValidationError{Name: "declared_values", err: errors.New(`ent: missing required field "AlignmentCard.declared_values"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AlignmentCard.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlignmentCard.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AlignmentCard.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AlignmentCard.agent"`)}
	}
	return nil
}

func (_c *AlignmentCardCreate) sqlSave(ctx context.Context) (*AlignmentCard, error) {
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
			return nil, fmt.Errorf("unexpected AlignmentCard.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlignmentCardCreate) createSpec() (*AlignmentCard, *sqlgraph.CreateSpec) {
	var (
		_node = &AlignmentCard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alignmentcard.Table, sqlgraph.NewFieldSpec(alignmentcard.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Principal(); ok {
		_spec.SetField(alignmentcard.FieldPrincipal, field.TypeString, value)
		_node.Principal = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(alignmentcard.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(alignmentcard.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DeclaredValues(); ok {
		_spec.SetField(alignmentcard.FieldDeclaredValues, field.TypeJSON, value)
		_node.DeclaredValues = value
	}
	if value, ok := _c.mutation.BoundedActions(); ok {
		_spec.SetField(alignmentcard.FieldBoundedActions, field.TypeJSON, value)
		_node.BoundedActions = value
	}
	if value, ok := _c.mutation.ForbiddenActions(); ok {
		_spec.SetField(alignmentcard.FieldForbiddenActions, field.TypeJSON, value)
		_node.ForbiddenActions = value
	}
	if value, ok := _c.mutation.EscalationTriggers(); ok {
		_spec.SetField(alignmentcard.FieldEscalationTriggers, field.TypeJSON, value)
		_node.EscalationTriggers = value
	}
	if value, ok := _c.mutation.AuditCommitment(); ok {
		_spec.SetField(alignmentcard.FieldAuditCommitment, field.TypeString, value)
		_node.AuditCommitment = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(alignmentcard.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alignmentcard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(alignmentcard.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alignmentcard.AgentTable,
			Columns: []string{alignmentcard.AgentColumn},
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
//	client.AlignmentCard.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlignmentCardUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AlignmentCardCreate) OnConflict(opts ...sql.ConflictOption) *AlignmentCardUpsertOne {
	_c.conflict = opts
	return &AlignmentCardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlignmentCard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlignmentCardCreate) OnConflictColumns(columns ...string) *AlignmentCardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlignmentCardUpsertOne{
		create: _c,
	}
}

type (
	// AlignmentCardUpsertOne is the builder for "upsert"-ing
	//  one AlignmentCard node.
	AlignmentCardUpsertOne struct {
		create *AlignmentCardCreate
	}

	// AlignmentCardUpsert is the "OnConflict" setter.
	AlignmentCardUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *AlignmentCardUpsert) SetAgentID(v string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateAgentID() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldAgentID)
	return u
}

// SetPrincipal sets the "principal" field.
func (u *AlignmentCardUpsert) SetPrincipal(v string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldPrincipal, v)
	return u
}

// UpdatePrincipal sets the "principal" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdatePrincipal() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldPrincipal)
	return u
}

// ClearPrincipal clears the value of the "principal" field.
func (u *AlignmentCardUpsert) ClearPrincipal() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldPrincipal)
	return u
}

// SetRole sets the "role" field.
func (u *AlignmentCardUpsert) SetRole(v string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateRole() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *AlignmentCardUpsert) ClearRole() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldRole)
	return u
}

// SetDescription sets the "description" field.
func (u *AlignmentCardUpsert) SetDescription(v string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateDescription() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *AlignmentCardUpsert) ClearDescription() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldDescription)
	return u
}

// SetDeclaredValues sets the "declared_values" field.
func (u *AlignmentCardUpsert) SetDeclaredValues(v []map[string]interface{}) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldDeclaredValues, v)
	return u
}

// UpdateDeclaredValues sets the "declared_values" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateDeclaredValues() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldDeclaredValues)
	return u
}

// SetBoundedActions sets the "bounded_actions" field.
func (u *AlignmentCardUpsert) SetBoundedActions(v []string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldBoundedActions, v)
	return u
}

// UpdateBoundedActions sets the "bounded_actions" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateBoundedActions() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldBoundedActions)
	return u
}

// ClearBoundedActions clears the value of the "bounded_actions" field.
func (u *AlignmentCardUpsert) ClearBoundedActions() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldBoundedActions)
	return u
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (u *AlignmentCardUpsert) SetForbiddenActions(v []string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldForbiddenActions, v)
	return u
}

// UpdateForbiddenActions sets the "forbidden_actions" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateForbiddenActions() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldForbiddenActions)
	return u
}

// ClearForbiddenActions clears the value of the "forbidden_actions" field.
func (u *AlignmentCardUpsert) ClearForbiddenActions() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldForbiddenActions)
	return u
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (u *AlignmentCardUpsert) SetEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldEscalationTriggers, v)
	return u
}

// UpdateEscalationTriggers sets the "escalation_triggers" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateEscalationTriggers() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldEscalationTriggers)
	return u
}

// ClearEscalationTriggers clears the value of the "escalation_triggers" field.
func (u *AlignmentCardUpsert) ClearEscalationTriggers() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldEscalationTriggers)
	return u
}

// SetAuditCommitment sets the "audit_commitment" field.
func (u *AlignmentCardUpsert) SetAuditCommitment(v string) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldAuditCommitment, v)
	return u
}

// UpdateAuditCommitment sets the "audit_commitment" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateAuditCommitment() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldAuditCommitment)
	return u
}

// ClearAuditCommitment clears the value of the "audit_commitment" field.
func (u *AlignmentCardUpsert) ClearAuditCommitment() *AlignmentCardUpsert {
	u.SetNull(alignmentcard.FieldAuditCommitment)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AlignmentCardUpsert) SetIsActive(v bool) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateIsActive() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldIsActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlignmentCardUpsert) SetUpdatedAt(v time.Time) *AlignmentCardUpsert {
	u.Set(alignmentcard.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlignmentCardUpsert) UpdateUpdatedAt() *AlignmentCardUpsert {
	u.SetExcluded(alignmentcard.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AlignmentCard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alignmentcard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlignmentCardUpsertOne) UpdateNewValues() *AlignmentCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(alignmentcard.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(alignmentcard.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlignmentCard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlignmentCardUpsertOne) Ignore() *AlignmentCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlignmentCardUpsertOne) DoNothing() *AlignmentCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlignmentCardCreate.OnConflict
// documentation for more info.
func (u *AlignmentCardUpsertOne) Update(set func(*AlignmentCardUpsert)) *AlignmentCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlignmentCardUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *AlignmentCardUpsertOne) SetAgentID(v string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateAgentID() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateAgentID()
	})
}

// SetPrincipal sets the "principal" field.
func (u *AlignmentCardUpsertOne) SetPrincipal(v string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetPrincipal(v)
	})
}

// UpdatePrincipal sets the "principal" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdatePrincipal() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdatePrincipal()
	})
}

// ClearPrincipal clears the value of the "principal" field.
func (u *AlignmentCardUpsertOne) ClearPrincipal() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearPrincipal()
	})
}

// SetRole sets the "role" field.
func (u *AlignmentCardUpsertOne) SetRole(v string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateRole() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *AlignmentCardUpsertOne) ClearRole() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearRole()
	})
}

// SetDescription sets the "description" field.
func (u *AlignmentCardUpsertOne) SetDescription(v string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateDescription() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlignmentCardUpsertOne) ClearDescription() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearDescription()
	})
}

// SetDeclaredValues sets the "declared_values" field.
func (u *AlignmentCardUpsertOne) SetDeclaredValues(v []map[string]interface{}) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetDeclaredValues(v)
	})
}

// UpdateDeclaredValues sets the "declared_values" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateDeclaredValues() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateDeclaredValues()
	})
}

// SetBoundedActions sets the "bounded_actions" field.
func (u *AlignmentCardUpsertOne) SetBoundedActions(v []string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetBoundedActions(v)
	})
}

// UpdateBoundedActions sets the "bounded_actions" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateBoundedActions() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateBoundedActions()
	})
}

// ClearBoundedActions clears the value of the "bounded_actions" field.
func (u *AlignmentCardUpsertOne) ClearBoundedActions() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearBoundedActions()
	})
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (u *AlignmentCardUpsertOne) SetForbiddenActions(v []string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetForbiddenActions(v)
	})
}

// UpdateForbiddenActions sets the "forbidden_actions" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateForbiddenActions() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateForbiddenActions()
	})
}

// ClearForbiddenActions clears the value of the "forbidden_actions" field.
func (u *AlignmentCardUpsertOne) ClearForbiddenActions() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearForbiddenActions()
	})
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (u *AlignmentCardUpsertOne) SetEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetEscalationTriggers(v)
	})
}

// UpdateEscalationTriggers sets the "escalation_triggers" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateEscalationTriggers() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateEscalationTriggers()
	})
}

// ClearEscalationTriggers clears the value of the "escalation_triggers" field.
func (u *AlignmentCardUpsertOne) ClearEscalationTriggers() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearEscalationTriggers()
	})
}

// SetAuditCommitment sets the "audit_commitment" field.
func (u *AlignmentCardUpsertOne) SetAuditCommitment(v string) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetAuditCommitment(v)
	})
}

// UpdateAuditCommitment sets the "audit_commitment" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateAuditCommitment() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateAuditCommitment()
	})
}

// ClearAuditCommitment clears the value of the "audit_commitment" field.
func (u *AlignmentCardUpsertOne) ClearAuditCommitment() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearAuditCommitment()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AlignmentCardUpsertOne) SetIsActive(v bool) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateIsActive() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlignmentCardUpsertOne) SetUpdatedAt(v time.Time) *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlignmentCardUpsertOne) UpdateUpdatedAt() *AlignmentCardUpsertOne {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AlignmentCardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlignmentCardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlignmentCardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlignmentCardUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlignmentCardUpsertOne.ID is not supported by MySQL driver. Use AlignmentCardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlignmentCardUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlignmentCardCreateBulk is the builder for creating many AlignmentCard entities in bulk.
type AlignmentCardCreateBulk struct {
	config
	err      error
	builders []*AlignmentCardCreate
	conflict []sql.ConflictOption
}

// Save creates the AlignmentCard entities in the database.
func (_c *AlignmentCardCreateBulk) Save(ctx context.Context) ([]*AlignmentCard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlignmentCard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlignmentCardMutation)
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
func (_c *AlignmentCardCreateBulk) SaveX(ctx context.Context) []*AlignmentCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlignmentCardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlignmentCardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlignmentCard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlignmentCardUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AlignmentCardCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlignmentCardUpsertBulk {
	_c.conflict = opts
	return &AlignmentCardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlignmentCard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlignmentCardCreateBulk) OnConflictColumns(columns ...string) *AlignmentCardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlignmentCardUpsertBulk{
		create: _c,
	}
}

// AlignmentCardUpsertBulk is the builder for "upsert"-ing
// a bulk of AlignmentCard nodes.
type AlignmentCardUpsertBulk struct {
	create *AlignmentCardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AlignmentCard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alignmentcard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlignmentCardUpsertBulk) UpdateNewValues() *AlignmentCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(alignmentcard.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(alignmentcard.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlignmentCard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlignmentCardUpsertBulk) Ignore() *AlignmentCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlignmentCardUpsertBulk) DoNothing() *AlignmentCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlignmentCardCreateBulk.OnConflict
// documentation for more info.
func (u *AlignmentCardUpsertBulk) Update(set func(*AlignmentCardUpsert)) *AlignmentCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlignmentCardUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *AlignmentCardUpsertBulk) SetAgentID(v string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateAgentID() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateAgentID()
	})
}

// SetPrincipal sets the "principal" field.
func (u *AlignmentCardUpsertBulk) SetPrincipal(v string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetPrincipal(v)
	})
}

// UpdatePrincipal sets the "principal" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdatePrincipal() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdatePrincipal()
	})
}

// ClearPrincipal clears the value of the "principal" field.
func (u *AlignmentCardUpsertBulk) ClearPrincipal() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearPrincipal()
	})
}

// SetRole sets the "role" field.
func (u *AlignmentCardUpsertBulk) SetRole(v string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateRole() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *AlignmentCardUpsertBulk) ClearRole() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearRole()
	})
}

// SetDescription sets the "description" field.
func (u *AlignmentCardUpsertBulk) SetDescription(v string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateDescription() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlignmentCardUpsertBulk) ClearDescription() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearDescription()
	})
}

// SetDeclaredValues sets the "declared_values" field.
func (u *AlignmentCardUpsertBulk) SetDeclaredValues(v []map[string]interface{}) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetDeclaredValues(v)
	})
}

// UpdateDeclaredValues sets the "declared_values" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateDeclaredValues() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateDeclaredValues()
	})
}

// SetBoundedActions sets the "bounded_actions" field.
func (u *AlignmentCardUpsertBulk) SetBoundedActions(v []string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetBoundedActions(v)
	})
}

// UpdateBoundedActions sets the "bounded_actions" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateBoundedActions() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateBoundedActions()
	})
}

// ClearBoundedActions clears the value of the "bounded_actions" field.
func (u *AlignmentCardUpsertBulk) ClearBoundedActions() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearBoundedActions()
	})
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (u *AlignmentCardUpsertBulk) SetForbiddenActions(v []string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetForbiddenActions(v)
	})
}

// UpdateForbiddenActions sets the "forbidden_actions" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateForbiddenActions() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateForbiddenActions()
	})
}

// ClearForbiddenActions clears the value of the "forbidden_actions" field.
func (u *AlignmentCardUpsertBulk) ClearForbiddenActions() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearForbiddenActions()
	})
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (u *AlignmentCardUpsertBulk) SetEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetEscalationTriggers(v)
	})
}

// UpdateEscalationTriggers sets the "escalation_triggers" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateEscalationTriggers() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateEscalationTriggers()
	})
}

// ClearEscalationTriggers clears the value of the "escalation_triggers" field.
func (u *AlignmentCardUpsertBulk) ClearEscalationTriggers() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearEscalationTriggers()
	})
}

// SetAuditCommitment sets the "audit_commitment" field.
func (u *AlignmentCardUpsertBulk) SetAuditCommitment(v string) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetAuditCommitment(v)
	})
}

// UpdateAuditCommitment sets the "audit_commitment" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateAuditCommitment() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateAuditCommitment()
	})
}

// ClearAuditCommitment clears the value of the "audit_commitment" field.
func (u *AlignmentCardUpsertBulk) ClearAuditCommitment() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.ClearAuditCommitment()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AlignmentCardUpsertBulk) SetIsActive(v bool) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateIsActive() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlignmentCardUpsertBulk) SetUpdatedAt(v time.Time) *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlignmentCardUpsertBulk) UpdateUpdatedAt() *AlignmentCardUpsertBulk {
	return u.Update(func(s *AlignmentCardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AlignmentCardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlignmentCardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlignmentCardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlignmentCardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
