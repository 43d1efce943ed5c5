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
	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/ent/webhookendpoint"
)

// WebhookEndpointCreate is the builder for creating a WebhookEndpoint entity.
type WebhookEndpointCreate struct {
	config
	mutation *WebhookEndpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *WebhookEndpointCreate) SetAccountID(v string) *WebhookEndpointCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookEndpointCreate) SetURL(v string) *WebhookEndpointCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *WebhookEndpointCreate) SetDescription(v string) *WebhookEndpointCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableDescription(v *string) *WebhookEndpointCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSigningSecret sets the "signing_secret" field.
func (_c *WebhookEndpointCreate) SetSigningSecret(v string) *WebhookEndpointCreate {
	_c.mutation.SetSigningSecret(v)
	return _c
}

// SetEventTypes sets the "event_types" field.
func (_c *WebhookEndpointCreate) SetEventTypes(v []string) *WebhookEndpointCreate {
	_c.mutation.SetEventTypes(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WebhookEndpointCreate) SetIsActive(v bool) *WebhookEndpointCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableIsActive(v *bool) *WebhookEndpointCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *WebhookEndpointCreate) SetConsecutiveFailures(v int) *WebhookEndpointCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableConsecutiveFailures(v *int) *WebhookEndpointCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetDisabledAt sets the "disabled_at" field.
func (_c *WebhookEndpointCreate) SetDisabledAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetDisabledAt(v)
	return _c
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableDisabledAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetDisabledAt(*v)
	}
	return _c
}

// SetDisabledReason sets the "disabled_reason" field.
func (_c *WebhookEndpointCreate) SetDisabledReason(v string) *WebhookEndpointCreate {
	_c.mutation.SetDisabledReason(v)
	return _c
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableDisabledReason(v *string) *WebhookEndpointCreate {
	if v != nil {
		_c.SetDisabledReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookEndpointCreate) SetCreatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableCreatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookEndpointCreate) SetUpdatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableUpdatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEndpointCreate) SetID(v string) *WebhookEndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_c *WebhookEndpointCreate) AddDeliveryIDs(ids ...string) *WebhookEndpointCreate {
	_c.mutation.AddDeliveryIDs(ids...)
	return _c
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_c *WebhookEndpointCreate) AddDeliveries(v ...*WebhookDelivery) *WebhookEndpointCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryIDs(ids...)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_c *WebhookEndpointCreate) Mutation() *WebhookEndpointMutation {
	return _c.mutation
}

// Save creates the WebhookEndpoint in the database.
func (_c *WebhookEndpointCreate) Save(ctx context.Context) (*WebhookEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEndpointCreate) SaveX(ctx context.Context) *WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEndpointCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := webhookendpoint.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := webhookendpoint.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookendpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEndpointCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "WebhookEndpoint.account_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "WebhookEndpoint.url"`)}
	}
	if _, ok := _c.mutation.SigningSecret(); !ok {
		return &ValidationError{Name: "signing_secret", err: errors.New(`ent: missing required field "WebhookEndpoint.signing_secret"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WebhookEndpoint.is_active"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "WebhookEndpoint.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookEndpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WebhookEndpoint.updated_at"`)}
	}
	return nil
}

func (_c *WebhookEndpointCreate) sqlSave(ctx context.Context) (*WebhookEndpoint, error) {
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
			return nil, fmt.Errorf("unexpected WebhookEndpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookEndpointCreate) createSpec() (*WebhookEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookendpoint.Table, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(webhookendpoint.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(webhookendpoint.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SigningSecret(); ok {
		_spec.SetField(webhookendpoint.FieldSigningSecret, field.TypeString, value)
		_node.SigningSecret = value
	}
	if value, ok := _c.mutation.EventTypes(); ok {
		_spec.SetField(webhookendpoint.FieldEventTypes, field.TypeJSON, value)
		_node.EventTypes = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(webhookendpoint.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.DisabledAt(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledAt, field.TypeTime, value)
		_node.DisabledAt = &value
	}
	if value, ok := _c.mutation.DisabledReason(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledReason, field.TypeString, value)
		_node.DisabledReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookEndpoint.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookEndpointUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookEndpointCreate) OnConflict(opts ...sql.ConflictOption) *WebhookEndpointUpsertOne {
	_c.conflict = opts
	return &WebhookEndpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookEndpointCreate) OnConflictColumns(columns ...string) *WebhookEndpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookEndpointUpsertOne{
		create: _c,
	}
}

type (
	// WebhookEndpointUpsertOne is the builder for "upsert"-ing
	//  one WebhookEndpoint node.
	WebhookEndpointUpsertOne struct {
		create *WebhookEndpointCreate
	}

	// WebhookEndpointUpsert is the "OnConflict" setter.
	WebhookEndpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *WebhookEndpointUpsert) SetAccountID(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateAccountID() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldAccountID)
	return u
}

// SetURL sets the "url" field.
func (u *WebhookEndpointUpsert) SetURL(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateURL() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldURL)
	return u
}

// SetDescription sets the "description" field.
func (u *WebhookEndpointUpsert) SetDescription(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateDescription() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *WebhookEndpointUpsert) ClearDescription() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldDescription)
	return u
}

// SetSigningSecret sets the "signing_secret" field.
func (u *WebhookEndpointUpsert) SetSigningSecret(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldSigningSecret, v)
	return u
}

// UpdateSigningSecret sets the "signing_secret" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateSigningSecret() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldSigningSecret)
	return u
}

// SetEventTypes sets the "event_types" field.
func (u *WebhookEndpointUpsert) SetEventTypes(v []string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldEventTypes, v)
	return u
}

// UpdateEventTypes sets the "event_types" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateEventTypes() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldEventTypes)
	return u
}

// ClearEventTypes clears the value of the "event_types" field.
func (u *WebhookEndpointUpsert) ClearEventTypes() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldEventTypes)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *WebhookEndpointUpsert) SetIsActive(v bool) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateIsActive() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldIsActive)
	return u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *WebhookEndpointUpsert) SetConsecutiveFailures(v int) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldConsecutiveFailures, v)
	return u
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateConsecutiveFailures() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldConsecutiveFailures)
	return u
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *WebhookEndpointUpsert) AddConsecutiveFailures(v int) *WebhookEndpointUpsert {
	u.Add(webhookendpoint.FieldConsecutiveFailures, v)
	return u
}

// SetDisabledAt sets the "disabled_at" field.
func (u *WebhookEndpointUpsert) SetDisabledAt(v time.Time) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldDisabledAt, v)
	return u
}

// UpdateDisabledAt sets the "disabled_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateDisabledAt() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldDisabledAt)
	return u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (u *WebhookEndpointUpsert) ClearDisabledAt() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldDisabledAt)
	return u
}

// SetDisabledReason sets the "disabled_reason" field.
func (u *WebhookEndpointUpsert) SetDisabledReason(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldDisabledReason, v)
	return u
}

// UpdateDisabledReason sets the "disabled_reason" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateDisabledReason() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldDisabledReason)
	return u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (u *WebhookEndpointUpsert) ClearDisabledReason() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldDisabledReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookEndpointUpsert) SetUpdatedAt(v time.Time) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateUpdatedAt() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookendpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookEndpointUpsertOne) UpdateNewValues() *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookendpoint.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(webhookendpoint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookEndpointUpsertOne) Ignore() *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookEndpointUpsertOne) DoNothing() *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookEndpointCreate.OnConflict
// documentation for more info.
func (u *WebhookEndpointUpsertOne) Update(set func(*WebhookEndpointUpsert)) *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookEndpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *WebhookEndpointUpsertOne) SetAccountID(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateAccountID() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateAccountID()
	})
}

// SetURL sets the "url" field.
func (u *WebhookEndpointUpsertOne) SetURL(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateURL() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateURL()
	})
}

// SetDescription sets the "description" field.
func (u *WebhookEndpointUpsertOne) SetDescription(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateDescription() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *WebhookEndpointUpsertOne) ClearDescription() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDescription()
	})
}

// SetSigningSecret sets the "signing_secret" field.
func (u *WebhookEndpointUpsertOne) SetSigningSecret(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetSigningSecret(v)
	})
}

// UpdateSigningSecret sets the "signing_secret" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateSigningSecret() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateSigningSecret()
	})
}

// SetEventTypes sets the "event_types" field.
func (u *WebhookEndpointUpsertOne) SetEventTypes(v []string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetEventTypes(v)
	})
}

// UpdateEventTypes sets the "event_types" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateEventTypes() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateEventTypes()
	})
}

// ClearEventTypes clears the value of the "event_types" field.
func (u *WebhookEndpointUpsertOne) ClearEventTypes() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearEventTypes()
	})
}

// SetIsActive sets the "is_active" field.
func (u *WebhookEndpointUpsertOne) SetIsActive(v bool) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateIsActive() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateIsActive()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *WebhookEndpointUpsertOne) SetConsecutiveFailures(v int) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *WebhookEndpointUpsertOne) AddConsecutiveFailures(v int) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateConsecutiveFailures() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetDisabledAt sets the "disabled_at" field.
func (u *WebhookEndpointUpsertOne) SetDisabledAt(v time.Time) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledAt(v)
	})
}

// UpdateDisabledAt sets the "disabled_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateDisabledAt() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledAt()
	})
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (u *WebhookEndpointUpsertOne) ClearDisabledAt() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledAt()
	})
}

// SetDisabledReason sets the "disabled_reason" field.
func (u *WebhookEndpointUpsertOne) SetDisabledReason(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledReason(v)
	})
}

// UpdateDisabledReason sets the "disabled_reason" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateDisabledReason() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledReason()
	})
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (u *WebhookEndpointUpsertOne) ClearDisabledReason() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookEndpointUpsertOne) SetUpdatedAt(v time.Time) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateUpdatedAt() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookEndpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookEndpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookEndpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookEndpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookEndpointUpsertOne.ID is not supported by MySQL driver. Use WebhookEndpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookEndpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookEndpointCreateBulk is the builder for creating many WebhookEndpoint entities in bulk.
type WebhookEndpointCreateBulk struct {
	config
	err      error
	builders []*WebhookEndpointCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookEndpoint entities in the database.
func (_c *WebhookEndpointCreateBulk) Save(ctx context.Context) ([]*WebhookEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEndpointMutation)
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
func (_c *WebhookEndpointCreateBulk) SaveX(ctx context.Context) []*WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookEndpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookEndpointUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookEndpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookEndpointUpsertBulk {
	_c.conflict = opts
	return &WebhookEndpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookEndpointCreateBulk) OnConflictColumns(columns ...string) *WebhookEndpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookEndpointUpsertBulk{
		create: _c,
	}
}

// WebhookEndpointUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookEndpoint nodes.
type WebhookEndpointUpsertBulk struct {
	create *WebhookEndpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookendpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookEndpointUpsertBulk) UpdateNewValues() *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookendpoint.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(webhookendpoint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookEndpointUpsertBulk) Ignore() *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookEndpointUpsertBulk) DoNothing() *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookEndpointCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookEndpointUpsertBulk) Update(set func(*WebhookEndpointUpsert)) *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookEndpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *WebhookEndpointUpsertBulk) SetAccountID(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateAccountID() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateAccountID()
	})
}

// SetURL sets the "url" field.
func (u *WebhookEndpointUpsertBulk) SetURL(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateURL() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateURL()
	})
}

// SetDescription sets the "description" field.
func (u *WebhookEndpointUpsertBulk) SetDescription(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateDescription() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *WebhookEndpointUpsertBulk) ClearDescription() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDescription()
	})
}

// SetSigningSecret sets the "signing_secret" field.
func (u *WebhookEndpointUpsertBulk) SetSigningSecret(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetSigningSecret(v)
	})
}

// UpdateSigningSecret sets the "signing_secret" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateSigningSecret() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateSigningSecret()
	})
}

// SetEventTypes sets the "event_types" field.
func (u *WebhookEndpointUpsertBulk) SetEventTypes(v []string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetEventTypes(v)
	})
}

// UpdateEventTypes sets the "event_types" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateEventTypes() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateEventTypes()
	})
}

// ClearEventTypes clears the value of the "event_types" field.
func (u *WebhookEndpointUpsertBulk) ClearEventTypes() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearEventTypes()
	})
}

// SetIsActive sets the "is_active" field.
func (u *WebhookEndpointUpsertBulk) SetIsActive(v bool) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateIsActive() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateIsActive()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *WebhookEndpointUpsertBulk) SetConsecutiveFailures(v int) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *WebhookEndpointUpsertBulk) AddConsecutiveFailures(v int) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateConsecutiveFailures() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetDisabledAt sets the "disabled_at" field.
func (u *WebhookEndpointUpsertBulk) SetDisabledAt(v time.Time) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledAt(v)
	})
}

// UpdateDisabledAt sets the "disabled_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateDisabledAt() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledAt()
	})
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (u *WebhookEndpointUpsertBulk) ClearDisabledAt() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledAt()
	})
}

// SetDisabledReason sets the "disabled_reason" field.
func (u *WebhookEndpointUpsertBulk) SetDisabledReason(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledReason(v)
	})
}

// UpdateDisabledReason sets the "disabled_reason" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateDisabledReason() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledReason()
	})
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (u *WebhookEndpointUpsertBulk) ClearDisabledReason() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WebhookEndpointUpsertBulk) SetUpdatedAt(v time.Time) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateUpdatedAt() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WebhookEndpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookEndpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookEndpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookEndpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
