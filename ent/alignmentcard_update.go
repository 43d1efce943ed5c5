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
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// AlignmentCardUpdate is the builder for updating AlignmentCard entities.
type AlignmentCardUpdate struct {
	config
	hooks    []Hook
	mutation *AlignmentCardMutation
}

// Where appends a list predicates to the AlignmentCardUpdate builder.
func (_u *AlignmentCardUpdate) Where(ps ...predicate.AlignmentCard) *AlignmentCardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AlignmentCardUpdate) SetAgentID(v string) *AlignmentCardUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AlignmentCardUpdate) SetNillableAgentID(v *string) *AlignmentCardUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetPrincipal sets the "principal" field.
func (_u *AlignmentCardUpdate) SetPrincipal(v string) *AlignmentCardUpdate {
	_u.mutation.SetPrincipal(v)
	return _u
}

// SetNillablePrincipal sets the "principal" field if the given value is not nil.
func (_u *AlignmentCardUpdate) SetNillablePrincipal(v *string) *AlignmentCardUpdate {
	if v != nil {
		_u.SetPrincipal(*v)
	}
	return _u
}

// ClearPrincipal clears the value of the "principal" field.
func (_u *AlignmentCardUpdate) ClearPrincipal() *AlignmentCardUpdate {
	_u.mutation.ClearPrincipal()
	return _u
}

// SetRole sets the "role" field.
func (_u *AlignmentCardUpdate) SetRole(v string) *AlignmentCardUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AlignmentCardUpdate) SetNillableRole(v *string) *AlignmentCardUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AlignmentCardUpdate) ClearRole() *AlignmentCardUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlignmentCardUpdate) SetDescription(v string) *AlignmentCardUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlignmentCardUpdate) SetNillableDescription(v *string) *AlignmentCardUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlignmentCardUpdate) ClearDescription() *AlignmentCardUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDeclaredValues sets the "declared_values" field.
func (_u *AlignmentCardUpdate) SetDeclaredValues(v []map[string]interface{}) *AlignmentCardUpdate {
	_u.mutation.SetDeclaredValues(v)
	return _u
}

// AppendDeclaredValues appends value to the "declared_values" field.
func (_u *AlignmentCardUpdate) AppendDeclaredValues(v []map[string]interface{}) *AlignmentCardUpdate {
	_u.mutation.AppendDeclaredValues(v)
	return _u
}

// SetBoundedActions sets the "bounded_actions" field.
func (_u *AlignmentCardUpdate) SetBoundedActions(v []string) *AlignmentCardUpdate {
	_u.mutation.SetBoundedActions(v)
	return _u
}

// AppendBoundedActions appends value to the "bounded_actions" field.
func (_u *AlignmentCardUpdate) AppendBoundedActions(v []string) *AlignmentCardUpdate {
	_u.mutation.AppendBoundedActions(v)
	return _u
}

// ClearBoundedActions clears the value of the "bounded_actions" field.
func (_u *AlignmentCardUpdate) ClearBoundedActions() *AlignmentCardUpdate {
	_u.mutation.ClearBoundedActions()
	return _u
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (_u *AlignmentCardUpdate) SetForbiddenActions(v []string) *AlignmentCardUpdate {
	_u.mutation.SetForbiddenActions(v)
	return _u
}

// AppendForbiddenActions appends value to the "forbidden_actions" field.
func (_u *AlignmentCardUpdate) AppendForbiddenActions(v []string) *AlignmentCardUpdate {
	_u.mutation.AppendForbiddenActions(v)
	return _u
}

// ClearForbiddenActions clears the value of the "forbidden_actions" field.
func (_u *AlignmentCardUpdate) ClearForbiddenActions() *AlignmentCardUpdate {
	_u.mutation.ClearForbiddenActions()
	return _u
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (_u *AlignmentCardUpdate) SetEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpdate {
	_u.mutation.SetEscalationTriggers(v)
	return _u
}

// AppendEscalationTriggers appends value to the "escalation_triggers" field.
func (_u *AlignmentCardUpdate) AppendEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpdate {
	_u.mutation.AppendEscalationTriggers(v)
	return _u
}

// ClearEscalationTriggers clears the value of the "escalation_triggers" field.
func (_u *AlignmentCardUpdate) ClearEscalationTriggers() *AlignmentCardUpdate {
	_u.mutation.ClearEscalationTriggers()
	return _u
}

// SetAuditCommitment sets the "audit_commitment" field.
func (_u *AlignmentCardUpdate) SetAuditCommitment(v string) *AlignmentCardUpdate {
	_u.mutation.SetAuditCommitment(v)
	return _u
}

// SetNillableAuditCommitment sets the "audit_commitment" field if the given value is not nil.
func (_u *AlignmentCardUpdate) SetNillableAuditCommitment(v *string) *AlignmentCardUpdate {
	if v != nil {
		_u.SetAuditCommitment(*v)
	}
	return _u
}

// ClearAuditCommitment clears the value of the "audit_commitment" field.
func (_u *AlignmentCardUpdate) ClearAuditCommitment() *AlignmentCardUpdate {
	_u.mutation.ClearAuditCommitment()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AlignmentCardUpdate) SetIsActive(v bool) *AlignmentCardUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AlignmentCardUpdate) SetNillableIsActive(v *bool) *AlignmentCardUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlignmentCardUpdate) SetUpdatedAt(v time.Time) *AlignmentCardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AlignmentCardUpdate) SetAgent(v *Agent) *AlignmentCardUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the AlignmentCardMutation object of the builder.
func (_u *AlignmentCardUpdate) Mutation() *AlignmentCardMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AlignmentCardUpdate) ClearAgent() *AlignmentCardUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlignmentCardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlignmentCardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlignmentCardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlignmentCardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlignmentCardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alignmentcard.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlignmentCardUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlignmentCard.agent"`)
	}
	return nil
}

func (_u *AlignmentCardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alignmentcard.Table, alignmentcard.Columns, sqlgraph.NewFieldSpec(alignmentcard.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Principal(); ok {
		_spec.SetField(alignmentcard.FieldPrincipal, field.TypeString, value)
	}
	if _u.mutation.PrincipalCleared() {
		_spec.ClearField(alignmentcard.FieldPrincipal, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(alignmentcard.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(alignmentcard.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(alignmentcard.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(alignmentcard.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DeclaredValues(); ok {
		_spec.SetField(alignmentcard.FieldDeclaredValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeclaredValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldDeclaredValues, value)
		})
	}
	if value, ok := _u.mutation.BoundedActions(); ok {
		_spec.SetField(alignmentcard.FieldBoundedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldBoundedActions, value)
		})
	}
	if _u.mutation.BoundedActionsCleared() {
		_spec.ClearField(alignmentcard.FieldBoundedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ForbiddenActions(); ok {
		_spec.SetField(alignmentcard.FieldForbiddenActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedForbiddenActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldForbiddenActions, value)
		})
	}
	if _u.mutation.ForbiddenActionsCleared() {
		_spec.ClearField(alignmentcard.FieldForbiddenActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.EscalationTriggers(); ok {
		_spec.SetField(alignmentcard.FieldEscalationTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEscalationTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldEscalationTriggers, value)
		})
	}
	if _u.mutation.EscalationTriggersCleared() {
		_spec.ClearField(alignmentcard.FieldEscalationTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuditCommitment(); ok {
		_spec.SetField(alignmentcard.FieldAuditCommitment, field.TypeString, value)
	}
	if _u.mutation.AuditCommitmentCleared() {
		_spec.ClearField(alignmentcard.FieldAuditCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(alignmentcard.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alignmentcard.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alignmentcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlignmentCardUpdateOne is the builder for updating a single AlignmentCard entity.
type AlignmentCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlignmentCardMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AlignmentCardUpdateOne) SetAgentID(v string) *AlignmentCardUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AlignmentCardUpdateOne) SetNillableAgentID(v *string) *AlignmentCardUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetPrincipal sets the "principal" field.
func (_u *AlignmentCardUpdateOne) SetPrincipal(v string) *AlignmentCardUpdateOne {
	_u.mutation.SetPrincipal(v)
	return _u
}

// SetNillablePrincipal sets the "principal" field if the given value is not nil.
func (_u *AlignmentCardUpdateOne) SetNillablePrincipal(v *string) *AlignmentCardUpdateOne {
	if v != nil {
		_u.SetPrincipal(*v)
	}
	return _u
}

// ClearPrincipal clears the value of the "principal" field.
func (_u *AlignmentCardUpdateOne) ClearPrincipal() *AlignmentCardUpdateOne {
	_u.mutation.ClearPrincipal()
	return _u
}

// SetRole sets the "role" field.
func (_u *AlignmentCardUpdateOne) SetRole(v string) *AlignmentCardUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AlignmentCardUpdateOne) SetNillableRole(v *string) *AlignmentCardUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AlignmentCardUpdateOne) ClearRole() *AlignmentCardUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlignmentCardUpdateOne) SetDescription(v string) *AlignmentCardUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlignmentCardUpdateOne) SetNillableDescription(v *string) *AlignmentCardUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlignmentCardUpdateOne) ClearDescription() *AlignmentCardUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDeclaredValues sets the "declared_values" field.
func (_u *AlignmentCardUpdateOne) SetDeclaredValues(v []map[string]interface{}) *AlignmentCardUpdateOne {
	_u.mutation.SetDeclaredValues(v)
	return _u
}

// AppendDeclaredValues appends value to the "declared_values" field.
func (_u *AlignmentCardUpdateOne) AppendDeclaredValues(v []map[string]interface{}) *AlignmentCardUpdateOne {
	_u.mutation.AppendDeclaredValues(v)
	return _u
}

// SetBoundedActions sets the "bounded_actions" field.
func (_u *AlignmentCardUpdateOne) SetBoundedActions(v []string) *AlignmentCardUpdateOne {
	_u.mutation.SetBoundedActions(v)
	return _u
}

// AppendBoundedActions appends value to the "bounded_actions" field.
func (_u *AlignmentCardUpdateOne) AppendBoundedActions(v []string) *AlignmentCardUpdateOne {
	_u.mutation.AppendBoundedActions(v)
	return _u
}

// ClearBoundedActions clears the value of the "bounded_actions" field.
func (_u *AlignmentCardUpdateOne) ClearBoundedActions() *AlignmentCardUpdateOne {
	_u.mutation.ClearBoundedActions()
	return _u
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (_u *AlignmentCardUpdateOne) SetForbiddenActions(v []string) *AlignmentCardUpdateOne {
	_u.mutation.SetForbiddenActions(v)
	return _u
}

// AppendForbiddenActions appends value to the "forbidden_actions" field.
func (_u *AlignmentCardUpdateOne) AppendForbiddenActions(v []string) *AlignmentCardUpdateOne {
	_u.mutation.AppendForbiddenActions(v)
	return _u
}

// ClearForbiddenActions clears the value of the "forbidden_actions" field.
func (_u *AlignmentCardUpdateOne) ClearForbiddenActions() *AlignmentCardUpdateOne {
	_u.mutation.ClearForbiddenActions()
	return _u
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (_u *AlignmentCardUpdateOne) SetEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpdateOne {
	_u.mutation.SetEscalationTriggers(v)
	return _u
}

// AppendEscalationTriggers appends value to the "escalation_triggers" field.
func (_u *AlignmentCardUpdateOne) AppendEscalationTriggers(v []map[string]interface{}) *AlignmentCardUpdateOne {
	_u.mutation.AppendEscalationTriggers(v)
	return _u
}

// ClearEscalationTriggers clears the value of the "escalation_triggers" field.
func (_u *AlignmentCardUpdateOne) ClearEscalationTriggers() *AlignmentCardUpdateOne {
	_u.mutation.ClearEscalationTriggers()
	return _u
}

// SetAuditCommitment sets the "audit_commitment" field.
func (_u *AlignmentCardUpdateOne) SetAuditCommitment(v string) *AlignmentCardUpdateOne {
	_u.mutation.SetAuditCommitment(v)
	return _u
}

// SetNillableAuditCommitment sets the "audit_commitment" field if the given value is not nil.
func (_u *AlignmentCardUpdateOne) SetNillableAuditCommitment(v *string) *AlignmentCardUpdateOne {
	if v != nil {
		_u.SetAuditCommitment(*v)
	}
	return _u
}

// ClearAuditCommitment clears the value of the "audit_commitment" field.
func (_u *AlignmentCardUpdateOne) ClearAuditCommitment() *AlignmentCardUpdateOne {
	_u.mutation.ClearAuditCommitment()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AlignmentCardUpdateOne) SetIsActive(v bool) *AlignmentCardUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AlignmentCardUpdateOne) SetNillableIsActive(v *bool) *AlignmentCardUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlignmentCardUpdateOne) SetUpdatedAt(v time.Time) *AlignmentCardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AlignmentCardUpdateOne) SetAgent(v *Agent) *AlignmentCardUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the AlignmentCardMutation object of the builder.
func (_u *AlignmentCardUpdateOne) Mutation() *AlignmentCardMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AlignmentCardUpdateOne) ClearAgent() *AlignmentCardUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the AlignmentCardUpdate builder.
func (_u *AlignmentCardUpdateOne) Where(ps ...predicate.AlignmentCard) *AlignmentCardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlignmentCardUpdateOne) Select(field string, fields ...string) *AlignmentCardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlignmentCard entity.
func (_u *AlignmentCardUpdateOne) Save(ctx context.Context) (*AlignmentCard, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlignmentCardUpdateOne) SaveX(ctx context.Context) *AlignmentCard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlignmentCardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlignmentCardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlignmentCardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alignmentcard.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlignmentCardUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlignmentCard.agent"`)
	}
	return nil
}

func (_u *AlignmentCardUpdateOne) sqlSave(ctx context.Context) (_node *AlignmentCard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alignmentcard.Table, alignmentcard.Columns, sqlgraph.NewFieldSpec(alignmentcard.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlignmentCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alignmentcard.FieldID)
		for _, f := range fields {
			if !alignmentcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alignmentcard.FieldID {
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
	if value, ok := _u.mutation.Principal(); ok {
		_spec.SetField(alignmentcard.FieldPrincipal, field.TypeString, value)
	}
	if _u.mutation.PrincipalCleared() {
		_spec.ClearField(alignmentcard.FieldPrincipal, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(alignmentcard.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(alignmentcard.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(alignmentcard.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(alignmentcard.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DeclaredValues(); ok {
		_spec.SetField(alignmentcard.FieldDeclaredValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeclaredValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldDeclaredValues, value)
		})
	}
	if value, ok := _u.mutation.BoundedActions(); ok {
		_spec.SetField(alignmentcard.FieldBoundedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldBoundedActions, value)
		})
	}
	if _u.mutation.BoundedActionsCleared() {
		_spec.ClearField(alignmentcard.FieldBoundedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ForbiddenActions(); ok {
		_spec.SetField(alignmentcard.FieldForbiddenActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedForbiddenActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldForbiddenActions, value)
		})
	}
	if _u.mutation.ForbiddenActionsCleared() {
		_spec.ClearField(alignmentcard.FieldForbiddenActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.EscalationTriggers(); ok {
		_spec.SetField(alignmentcard.FieldEscalationTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEscalationTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alignmentcard.FieldEscalationTriggers, value)
		})
	}
	if _u.mutation.EscalationTriggersCleared() {
		_spec.ClearField(alignmentcard.FieldEscalationTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuditCommitment(); ok {
		_spec.SetField(alignmentcard.FieldAuditCommitment, field.TypeString, value)
	}
	if _u.mutation.AuditCommitmentCleared() {
		_spec.ClearField(alignmentcard.FieldAuditCommitment, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(alignmentcard.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alignmentcard.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AlignmentCard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alignmentcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
