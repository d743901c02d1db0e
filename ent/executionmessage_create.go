// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// ExecutionMessageCreate is the builder for creating a ExecutionMessage entity.
type ExecutionMessageCreate struct {
	config
	mutation *ExecutionMessageMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionMessageCreate) SetExecutionID(v string) *ExecutionMessageCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *ExecutionMessageCreate) SetAgentName(v string) *ExecutionMessageCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *ExecutionMessageCreate) SetAgentType(v string) *ExecutionMessageCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ExecutionMessageCreate) SetContent(v string) *ExecutionMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *ExecutionMessageCreate) SetMessageType(v string) *ExecutionMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ExecutionMessageCreate) SetSequence(v int) *ExecutionMessageCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExecutionMessageCreate) SetMetadata(v map[string]interface{}) *ExecutionMessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionMessageCreate) SetCreatedAt(v time.Time) *ExecutionMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionMessageCreate) SetNillableCreatedAt(v *time.Time) *ExecutionMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionMessageCreate) SetID(v string) *ExecutionMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *ExecutionMessageCreate) SetExecution(v *WorkflowExecution) *ExecutionMessageCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ExecutionMessageMutation object of the builder.
func (_c *ExecutionMessageCreate) Mutation() *ExecutionMessageMutation {
	return _c.mutation
}

// Save creates the ExecutionMessage in the database.
func (_c *ExecutionMessageCreate) Save(ctx context.Context) (*ExecutionMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionMessageCreate) SaveX(ctx context.Context) *ExecutionMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionMessageCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionMessage.execution_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "ExecutionMessage.agent_name"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "ExecutionMessage.agent_type"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExecutionMessage.content"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "ExecutionMessage.message_type"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExecutionMessage.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionMessage.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ExecutionMessage.execution"`)}
	}
	return nil
}

func (_c *ExecutionMessageCreate) sqlSave(ctx context.Context) (*ExecutionMessage, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionMessageCreate) createSpec() (*ExecutionMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionmessage.Table, sqlgraph.NewFieldSpec(executionmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(executionmessage.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(executionmessage.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(executionmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(executionmessage.FieldMessageType, field.TypeString, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(executionmessage.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(executionmessage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionmessage.ExecutionTable,
			Columns: []string{executionmessage.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionMessageCreateBulk is the builder for creating many ExecutionMessage entities in bulk.
type ExecutionMessageCreateBulk struct {
	config
	err      error
	builders []*ExecutionMessageCreate
}

// Save creates the ExecutionMessage entities in the database.
func (_c *ExecutionMessageCreateBulk) Save(ctx context.Context) ([]*ExecutionMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMessageMutation)
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
func (_c *ExecutionMessageCreateBulk) SaveX(ctx context.Context) []*ExecutionMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
