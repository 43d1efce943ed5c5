// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// AlignmentCardDelete is the builder for deleting a AlignmentCard entity.
type AlignmentCardDelete struct {
	config
	hooks    []Hook
	mutation *AlignmentCardMutation
}

// Where appends a list predicates to the AlignmentCardDelete builder.
func (_d *AlignmentCardDelete) Where(ps ...predicate.AlignmentCard) *AlignmentCardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AlignmentCardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AlignmentCardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AlignmentCardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(alignmentcard.Table, sqlgraph.NewFieldSpec(alignmentcard.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AlignmentCardDeleteOne is the builder for deleting a single AlignmentCard entity.
type AlignmentCardDeleteOne struct {
	_d *AlignmentCardDelete
}

// Where appends a list predicates to the AlignmentCardDelete builder.
func (_d *AlignmentCardDeleteOne) Where(ps ...predicate.AlignmentCard) *AlignmentCardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AlignmentCardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{alignmentcard.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AlignmentCardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
