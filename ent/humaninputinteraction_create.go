// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// HumanInputInteractionCreate is the builder for creating a HumanInputInteraction entity.
type HumanInputInteractionCreate struct {
	config
	mutation *HumanInputInteractionMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *HumanInputInteractionCreate) SetExecutionID(v string) *HumanInputInteractionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *HumanInputInteractionCreate) SetAgentID(v string) *HumanInputInteractionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *HumanInputInteractionCreate) SetAgentName(v string) *HumanInputInteractionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *HumanInputInteractionCreate) SetInput(v string) *HumanInputInteractionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *HumanInputInteractionCreate) SetAction(v humaninputinteraction.Action) *HumanInputInteractionCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *HumanInputInteractionCreate) SetIteration(v int) *HumanInputInteractionCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_c *HumanInputInteractionCreate) SetNillableIteration(v *int) *HumanInputInteractionCreate {
	if v != nil {
		_c.SetIteration(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HumanInputInteractionCreate) SetCreatedAt(v time.Time) *HumanInputInteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HumanInputInteractionCreate) SetNillableCreatedAt(v *time.Time) *HumanInputInteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HumanInputInteractionCreate) SetID(v string) *HumanInputInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *HumanInputInteractionCreate) SetExecution(v *WorkflowExecution) *HumanInputInteractionCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the HumanInputInteractionMutation object of the builder.
func (_c *HumanInputInteractionCreate) Mutation() *HumanInputInteractionMutation {
	return _c.mutation
}

// Save creates the HumanInputInteraction in the database.
func (_c *HumanInputInteractionCreate) Save(ctx context.Context) (*HumanInputInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HumanInputInteractionCreate) SaveX(ctx context.Context) *HumanInputInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanInputInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanInputInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HumanInputInteractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := humaninputinteraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HumanInputInteractionCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "HumanInputInteraction.execution_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "HumanInputInteraction.agent_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "HumanInputInteraction.agent_name"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "HumanInputInteraction.input"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "HumanInputInteraction.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := humaninputinteraction.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HumanInputInteraction.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HumanInputInteraction.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "HumanInputInteraction.execution"`)}
	}
	return nil
}

func (_c *HumanInputInteractionCreate) sqlSave(ctx context.Context) (*HumanInputInteraction, error) {
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
			return nil, fmt.Errorf("unexpected HumanInputInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HumanInputInteractionCreate) createSpec() (*HumanInputInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &HumanInputInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(humaninputinteraction.Table, sqlgraph.NewFieldSpec(humaninputinteraction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(humaninputinteraction.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(humaninputinteraction.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(humaninputinteraction.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(humaninputinteraction.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(humaninputinteraction.FieldIteration, field.TypeInt, value)
		_node.Iteration = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(humaninputinteraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   humaninputinteraction.ExecutionTable,
			Columns: []string{humaninputinteraction.ExecutionColumn},
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

// HumanInputInteractionCreateBulk is the builder for creating many HumanInputInteraction entities in bulk.
type HumanInputInteractionCreateBulk struct {
	config
	err      error
	builders []*HumanInputInteractionCreate
}

// Save creates the HumanInputInteraction entities in the database.
func (_c *HumanInputInteractionCreateBulk) Save(ctx context.Context) ([]*HumanInputInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HumanInputInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HumanInputInteractionMutation)
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
func (_c *HumanInputInteractionCreateBulk) SaveX(ctx context.Context) []*HumanInputInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HumanInputInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HumanInputInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
