// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/predicate"
)

// HumanInputInteractionUpdate is the builder for updating HumanInputInteraction entities.
type HumanInputInteractionUpdate struct {
	config
	hooks    []Hook
	mutation *HumanInputInteractionMutation
}

// Where appends a list predicates to the HumanInputInteractionUpdate builder.
func (_u *HumanInputInteractionUpdate) Where(ps ...predicate.HumanInputInteraction) *HumanInputInteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *HumanInputInteractionUpdate) SetAgentID(v string) *HumanInputInteractionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *HumanInputInteractionUpdate) SetNillableAgentID(v *string) *HumanInputInteractionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *HumanInputInteractionUpdate) SetAgentName(v string) *HumanInputInteractionUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *HumanInputInteractionUpdate) SetNillableAgentName(v *string) *HumanInputInteractionUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *HumanInputInteractionUpdate) SetInput(v string) *HumanInputInteractionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *HumanInputInteractionUpdate) SetNillableInput(v *string) *HumanInputInteractionUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *HumanInputInteractionUpdate) SetAction(v humaninputinteraction.Action) *HumanInputInteractionUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *HumanInputInteractionUpdate) SetNillableAction(v *humaninputinteraction.Action) *HumanInputInteractionUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *HumanInputInteractionUpdate) SetIteration(v int) *HumanInputInteractionUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *HumanInputInteractionUpdate) SetNillableIteration(v *int) *HumanInputInteractionUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *HumanInputInteractionUpdate) AddIteration(v int) *HumanInputInteractionUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// ClearIteration clears the value of the "iteration" field.
func (_u *HumanInputInteractionUpdate) ClearIteration() *HumanInputInteractionUpdate {
	_u.mutation.ClearIteration()
	return _u
}

// Mutation returns the HumanInputInteractionMutation object of the builder.
func (_u *HumanInputInteractionUpdate) Mutation() *HumanInputInteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HumanInputInteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanInputInteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HumanInputInteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanInputInteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanInputInteractionUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := humaninputinteraction.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HumanInputInteraction.action": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HumanInputInteraction.execution"`)
	}
	return nil
}

func (_u *HumanInputInteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humaninputinteraction.Table, humaninputinteraction.Columns, sqlgraph.NewFieldSpec(humaninputinteraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(humaninputinteraction.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(humaninputinteraction.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(humaninputinteraction.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(humaninputinteraction.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(humaninputinteraction.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(humaninputinteraction.FieldIteration, field.TypeInt, value)
	}
	if _u.mutation.IterationCleared() {
		_spec.ClearField(humaninputinteraction.FieldIteration, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humaninputinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HumanInputInteractionUpdateOne is the builder for updating a single HumanInputInteraction entity.
type HumanInputInteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HumanInputInteractionMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *HumanInputInteractionUpdateOne) SetAgentID(v string) *HumanInputInteractionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *HumanInputInteractionUpdateOne) SetNillableAgentID(v *string) *HumanInputInteractionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *HumanInputInteractionUpdateOne) SetAgentName(v string) *HumanInputInteractionUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *HumanInputInteractionUpdateOne) SetNillableAgentName(v *string) *HumanInputInteractionUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *HumanInputInteractionUpdateOne) SetInput(v string) *HumanInputInteractionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *HumanInputInteractionUpdateOne) SetNillableInput(v *string) *HumanInputInteractionUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *HumanInputInteractionUpdateOne) SetAction(v humaninputinteraction.Action) *HumanInputInteractionUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *HumanInputInteractionUpdateOne) SetNillableAction(v *humaninputinteraction.Action) *HumanInputInteractionUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *HumanInputInteractionUpdateOne) SetIteration(v int) *HumanInputInteractionUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *HumanInputInteractionUpdateOne) SetNillableIteration(v *int) *HumanInputInteractionUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *HumanInputInteractionUpdateOne) AddIteration(v int) *HumanInputInteractionUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// ClearIteration clears the value of the "iteration" field.
func (_u *HumanInputInteractionUpdateOne) ClearIteration() *HumanInputInteractionUpdateOne {
	_u.mutation.ClearIteration()
	return _u
}

// Mutation returns the HumanInputInteractionMutation object of the builder.
func (_u *HumanInputInteractionUpdateOne) Mutation() *HumanInputInteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the HumanInputInteractionUpdate builder.
func (_u *HumanInputInteractionUpdateOne) Where(ps ...predicate.HumanInputInteraction) *HumanInputInteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HumanInputInteractionUpdateOne) Select(field string, fields ...string) *HumanInputInteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HumanInputInteraction entity.
func (_u *HumanInputInteractionUpdateOne) Save(ctx context.Context) (*HumanInputInteraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanInputInteractionUpdateOne) SaveX(ctx context.Context) *HumanInputInteraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HumanInputInteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanInputInteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanInputInteractionUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := humaninputinteraction.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HumanInputInteraction.action": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HumanInputInteraction.execution"`)
	}
	return nil
}

func (_u *HumanInputInteractionUpdateOne) sqlSave(ctx context.Context) (_node *HumanInputInteraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humaninputinteraction.Table, humaninputinteraction.Columns, sqlgraph.NewFieldSpec(humaninputinteraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HumanInputInteraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, humaninputinteraction.FieldID)
		for _, f := range fields {
			if !humaninputinteraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != humaninputinteraction.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(humaninputinteraction.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(humaninputinteraction.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(humaninputinteraction.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(humaninputinteraction.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(humaninputinteraction.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(humaninputinteraction.FieldIteration, field.TypeInt, value)
	}
	if _u.mutation.IterationCleared() {
		_spec.ClearField(humaninputinteraction.FieldIteration, field.TypeInt)
	}
	_node = &HumanInputInteraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humaninputinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
