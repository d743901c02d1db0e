// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/predicate"
)

// HumanInputInteractionDelete is the builder for deleting a HumanInputInteraction entity.
type HumanInputInteractionDelete struct {
	config
	hooks    []Hook
	mutation *HumanInputInteractionMutation
}

// Where appends a list predicates to the HumanInputInteractionDelete builder.
func (_d *HumanInputInteractionDelete) Where(ps ...predicate.HumanInputInteraction) *HumanInputInteractionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HumanInputInteractionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HumanInputInteractionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HumanInputInteractionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(humaninputinteraction.Table, sqlgraph.NewFieldSpec(humaninputinteraction.FieldID, field.TypeString))
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

// HumanInputInteractionDeleteOne is the builder for deleting a single HumanInputInteraction entity.
type HumanInputInteractionDeleteOne struct {
	_d *HumanInputInteractionDelete
}

// Where appends a list predicates to the HumanInputInteractionDelete builder.
func (_d *HumanInputInteractionDeleteOne) Where(ps ...predicate.HumanInputInteraction) *HumanInputInteractionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HumanInputInteractionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{humaninputinteraction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HumanInputInteractionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
