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
	"github.com/mnemom/smoltbot/ent/predicate"
	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/ent/webhookendpoint"
)

// WebhookEndpointUpdate is the builder for updating WebhookEndpoint entities.
type WebhookEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdate) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *WebhookEndpointUpdate) SetAccountID(v string) *WebhookEndpointUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableAccountID(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdate) SetURL(v string) *WebhookEndpointUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableURL(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WebhookEndpointUpdate) SetDescription(v string) *WebhookEndpointUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableDescription(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WebhookEndpointUpdate) ClearDescription() *WebhookEndpointUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSigningSecret sets the "signing_secret" field.
func (_u *WebhookEndpointUpdate) SetSigningSecret(v string) *WebhookEndpointUpdate {
	_u.mutation.SetSigningSecret(v)
	return _u
}

// SetNillableSigningSecret sets the "signing_secret" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableSigningSecret(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetSigningSecret(*v)
	}
	return _u
}

// SetEventTypes sets the "event_types" field.
func (_u *WebhookEndpointUpdate) SetEventTypes(v []string) *WebhookEndpointUpdate {
	_u.mutation.SetEventTypes(v)
	return _u
}

// AppendEventTypes appends value to the "event_types" field.
func (_u *WebhookEndpointUpdate) AppendEventTypes(v []string) *WebhookEndpointUpdate {
	_u.mutation.AppendEventTypes(v)
	return _u
}

// ClearEventTypes clears the value of the "event_types" field.
func (_u *WebhookEndpointUpdate) ClearEventTypes() *WebhookEndpointUpdate {
	_u.mutation.ClearEventTypes()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookEndpointUpdate) SetIsActive(v bool) *WebhookEndpointUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableIsActive(v *bool) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *WebhookEndpointUpdate) SetConsecutiveFailures(v int) *WebhookEndpointUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableConsecutiveFailures(v *int) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *WebhookEndpointUpdate) AddConsecutiveFailures(v int) *WebhookEndpointUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetDisabledAt sets the "disabled_at" field.
func (_u *WebhookEndpointUpdate) SetDisabledAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetDisabledAt(v)
	return _u
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableDisabledAt(v *time.Time) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetDisabledAt(*v)
	}
	return _u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (_u *WebhookEndpointUpdate) ClearDisabledAt() *WebhookEndpointUpdate {
	_u.mutation.ClearDisabledAt()
	return _u
}

// SetDisabledReason sets the "disabled_reason" field.
func (_u *WebhookEndpointUpdate) SetDisabledReason(v string) *WebhookEndpointUpdate {
	_u.mutation.SetDisabledReason(v)
	return _u
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableDisabledReason(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetDisabledReason(*v)
	}
	return _u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (_u *WebhookEndpointUpdate) ClearDisabledReason() *WebhookEndpointUpdate {
	_u.mutation.ClearDisabledReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookEndpointUpdate) SetUpdatedAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookEndpointUpdate) AddDeliveryIDs(ids ...string) *WebhookEndpointUpdate {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdate) AddDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdate) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdate) ClearDeliveries() *WebhookEndpointUpdate {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookEndpointUpdate) RemoveDeliveryIDs(ids ...string) *WebhookEndpointUpdate {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookEndpointUpdate) RemoveDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEndpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookEndpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WebhookEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(webhookendpoint.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(webhookendpoint.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(webhookendpoint.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SigningSecret(); ok {
		_spec.SetField(webhookendpoint.FieldSigningSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventTypes(); ok {
		_spec.SetField(webhookendpoint.FieldEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookendpoint.FieldEventTypes, value)
		})
	}
	if _u.mutation.EventTypesCleared() {
		_spec.ClearField(webhookendpoint.FieldEventTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(webhookendpoint.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(webhookendpoint.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisabledAt(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledAt, field.TypeTime, value)
	}
	if _u.mutation.DisabledAtCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DisabledReason(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledReason, field.TypeString, value)
	}
	if _u.mutation.DisabledReasonCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEndpointUpdateOne is the builder for updating a single WebhookEndpoint entity.
type WebhookEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// SetAccountID sets the "account_id" field.
func (_u *WebhookEndpointUpdateOne) SetAccountID(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableAccountID(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdateOne) SetURL(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableURL(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WebhookEndpointUpdateOne) SetDescription(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableDescription(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WebhookEndpointUpdateOne) ClearDescription() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSigningSecret sets the "signing_secret" field.
func (_u *WebhookEndpointUpdateOne) SetSigningSecret(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetSigningSecret(v)
	return _u
}

// SetNillableSigningSecret sets the "signing_secret" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableSigningSecret(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetSigningSecret(*v)
	}
	return _u
}

// SetEventTypes sets the "event_types" field.
func (_u *WebhookEndpointUpdateOne) SetEventTypes(v []string) *WebhookEndpointUpdateOne {
	_u.mutation.SetEventTypes(v)
	return _u
}

// AppendEventTypes appends value to the "event_types" field.
func (_u *WebhookEndpointUpdateOne) AppendEventTypes(v []string) *WebhookEndpointUpdateOne {
	_u.mutation.AppendEventTypes(v)
	return _u
}

// ClearEventTypes clears the value of the "event_types" field.
func (_u *WebhookEndpointUpdateOne) ClearEventTypes() *WebhookEndpointUpdateOne {
	_u.mutation.ClearEventTypes()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookEndpointUpdateOne) SetIsActive(v bool) *WebhookEndpointUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableIsActive(v *bool) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *WebhookEndpointUpdateOne) SetConsecutiveFailures(v int) *WebhookEndpointUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableConsecutiveFailures(v *int) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *WebhookEndpointUpdateOne) AddConsecutiveFailures(v int) *WebhookEndpointUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetDisabledAt sets the "disabled_at" field.
func (_u *WebhookEndpointUpdateOne) SetDisabledAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetDisabledAt(v)
	return _u
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableDisabledAt(v *time.Time) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetDisabledAt(*v)
	}
	return _u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (_u *WebhookEndpointUpdateOne) ClearDisabledAt() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDisabledAt()
	return _u
}

// SetDisabledReason sets the "disabled_reason" field.
func (_u *WebhookEndpointUpdateOne) SetDisabledReason(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetDisabledReason(v)
	return _u
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableDisabledReason(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetDisabledReason(*v)
	}
	return _u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (_u *WebhookEndpointUpdateOne) ClearDisabledReason() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDisabledReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookEndpointUpdateOne) SetUpdatedAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookEndpointUpdateOne) AddDeliveryIDs(ids ...string) *WebhookEndpointUpdateOne {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdateOne) AddDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdateOne) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdateOne) ClearDeliveries() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookEndpointUpdateOne) RemoveDeliveryIDs(ids ...string) *WebhookEndpointUpdateOne {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookEndpointUpdateOne) RemoveDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdateOne) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEndpointUpdateOne) Select(field string, fields ...string) *WebhookEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEndpoint entity.
func (_u *WebhookEndpointUpdateOne) Save(ctx context.Context) (*WebhookEndpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) SaveX(ctx context.Context) *WebhookEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookEndpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WebhookEndpointUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEndpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookendpoint.FieldID)
		for _, f := range fields {
			if !webhookendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookendpoint.FieldID {
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
		_spec.SetField(webhookendpoint.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(webhookendpoint.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(webhookendpoint.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SigningSecret(); ok {
		_spec.SetField(webhookendpoint.FieldSigningSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventTypes(); ok {
		_spec.SetField(webhookendpoint.FieldEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookendpoint.FieldEventTypes, value)
		})
	}
	if _u.mutation.EventTypesCleared() {
		_spec.ClearField(webhookendpoint.FieldEventTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(webhookendpoint.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(webhookendpoint.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisabledAt(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledAt, field.TypeTime, value)
	}
	if _u.mutation.DisabledAtCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DisabledReason(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledReason, field.TypeString, value)
	}
	if _u.mutation.DisabledReasonCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WebhookEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
