// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// LLMInteractionCreate is the builder for creating a LLMInteraction entity.
type LLMInteractionCreate struct {
	config
	mutation *LLMInteractionMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *LLMInteractionCreate) SetExecutionID(v string) *LLMInteractionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *LLMInteractionCreate) SetNodeID(v string) *LLMInteractionCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableNodeID(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetNodeID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMInteractionCreate) SetProvider(v string) *LLMInteractionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMInteractionCreate) SetModel(v string) *LLMInteractionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMInteractionCreate) SetPurpose(v string) *LLMInteractionCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *LLMInteractionCreate) SetPrompt(v string) *LLMInteractionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *LLMInteractionCreate) SetResponse(v string) *LLMInteractionCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableResponse(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMInteractionCreate) SetErrorMessage(v string) *LLMInteractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableErrorMessage(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *LLMInteractionCreate) SetTokenCount(v int) *LLMInteractionCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableTokenCount(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *LLMInteractionCreate) SetResponseTimeMs(v int) *LLMInteractionCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableResponseTimeMs(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMInteractionCreate) SetCreatedAt(v time.Time) *LLMInteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableCreatedAt(v *time.Time) *LLMInteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMInteractionCreate) SetID(v string) *LLMInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *LLMInteractionCreate) SetExecution(v *WorkflowExecution) *LLMInteractionCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the LLMInteractionMutation object of the builder.
func (_c *LLMInteractionCreate) Mutation() *LLMInteractionMutation {
	return _c.mutation
}

// Save creates the LLMInteraction in the database.
func (_c *LLMInteractionCreate) Save(ctx context.Context) (*LLMInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMInteractionCreate) SaveX(ctx context.Context) *LLMInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMInteractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llminteraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMInteractionCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "LLMInteraction.execution_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMInteraction.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMInteraction.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMInteraction.purpose"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "LLMInteraction.prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMInteraction.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "LLMInteraction.execution"`)}
	}
	return nil
}

func (_c *LLMInteractionCreate) sqlSave(ctx context.Context) (*LLMInteraction, error) {
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
			return nil, fmt.Errorf("unexpected LLMInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMInteractionCreate) createSpec() (*LLMInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llminteraction.Table, sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(llminteraction.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llminteraction.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llminteraction.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llminteraction.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(llminteraction.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(llminteraction.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llminteraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(llminteraction.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = &value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(llminteraction.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llminteraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llminteraction.ExecutionTable,
			Columns: []string{llminteraction.ExecutionColumn},
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

// LLMInteractionCreateBulk is the builder for creating many LLMInteraction entities in bulk.
type LLMInteractionCreateBulk struct {
	config
	err      error
	builders []*LLMInteractionCreate
}

// Save creates the LLMInteraction entities in the database.
func (_c *LLMInteractionCreateBulk) Save(ctx context.Context) ([]*LLMInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMInteractionMutation)
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
func (_c *LLMInteractionCreateBulk) SaveX(ctx context.Context) []*LLMInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
