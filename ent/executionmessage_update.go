// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/predicate"
)

// ExecutionMessageUpdate is the builder for updating ExecutionMessage entities.
type ExecutionMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMessageMutation
}

// Where appends a list predicates to the ExecutionMessageUpdate builder.
func (_u *ExecutionMessageUpdate) Where(ps ...predicate.ExecutionMessage) *ExecutionMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *ExecutionMessageUpdate) SetAgentName(v string) *ExecutionMessageUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *ExecutionMessageUpdate) SetNillableAgentName(v *string) *ExecutionMessageUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *ExecutionMessageUpdate) SetAgentType(v string) *ExecutionMessageUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *ExecutionMessageUpdate) SetNillableAgentType(v *string) *ExecutionMessageUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExecutionMessageUpdate) SetContent(v string) *ExecutionMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExecutionMessageUpdate) SetNillableContent(v *string) *ExecutionMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ExecutionMessageUpdate) SetMessageType(v string) *ExecutionMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ExecutionMessageUpdate) SetNillableMessageType(v *string) *ExecutionMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ExecutionMessageUpdate) SetSequence(v int) *ExecutionMessageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ExecutionMessageUpdate) SetNillableSequence(v *int) *ExecutionMessageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ExecutionMessageUpdate) AddSequence(v int) *ExecutionMessageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionMessageUpdate) SetMetadata(v map[string]interface{}) *ExecutionMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionMessageUpdate) ClearMetadata() *ExecutionMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ExecutionMessageMutation object of the builder.
func (_u *ExecutionMessageUpdate) Mutation() *ExecutionMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionMessageUpdate) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionMessage.execution"`)
	}
	return nil
}

func (_u *ExecutionMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionmessage.Table, executionmessage.Columns, sqlgraph.NewFieldSpec(executionmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(executionmessage.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(executionmessage.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(executionmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(executionmessage.FieldMessageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(executionmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(executionmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(executionmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(executionmessage.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionMessageUpdateOne is the builder for updating a single ExecutionMessage entity.
type ExecutionMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMessageMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *ExecutionMessageUpdateOne) SetAgentName(v string) *ExecutionMessageUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *ExecutionMessageUpdateOne) SetNillableAgentName(v *string) *ExecutionMessageUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *ExecutionMessageUpdateOne) SetAgentType(v string) *ExecutionMessageUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *ExecutionMessageUpdateOne) SetNillableAgentType(v *string) *ExecutionMessageUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExecutionMessageUpdateOne) SetContent(v string) *ExecutionMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExecutionMessageUpdateOne) SetNillableContent(v *string) *ExecutionMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ExecutionMessageUpdateOne) SetMessageType(v string) *ExecutionMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ExecutionMessageUpdateOne) SetNillableMessageType(v *string) *ExecutionMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ExecutionMessageUpdateOne) SetSequence(v int) *ExecutionMessageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ExecutionMessageUpdateOne) SetNillableSequence(v *int) *ExecutionMessageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ExecutionMessageUpdateOne) AddSequence(v int) *ExecutionMessageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionMessageUpdateOne) SetMetadata(v map[string]interface{}) *ExecutionMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionMessageUpdateOne) ClearMetadata() *ExecutionMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ExecutionMessageMutation object of the builder.
func (_u *ExecutionMessageUpdateOne) Mutation() *ExecutionMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionMessageUpdate builder.
func (_u *ExecutionMessageUpdateOne) Where(ps ...predicate.ExecutionMessage) *ExecutionMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionMessageUpdateOne) Select(field string, fields ...string) *ExecutionMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionMessage entity.
func (_u *ExecutionMessageUpdateOne) Save(ctx context.Context) (*ExecutionMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionMessageUpdateOne) SaveX(ctx context.Context) *ExecutionMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionMessageUpdateOne) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionMessage.execution"`)
	}
	return nil
}

func (_u *ExecutionMessageUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionmessage.Table, executionmessage.Columns, sqlgraph.NewFieldSpec(executionmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionmessage.FieldID)
		for _, f := range fields {
			if !executionmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionmessage.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(executionmessage.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(executionmessage.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(executionmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(executionmessage.FieldMessageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(executionmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(executionmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(executionmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(executionmessage.FieldMetadata, field.TypeJSON)
	}
	_node = &ExecutionMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
