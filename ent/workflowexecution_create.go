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
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// WorkflowExecutionCreate is the builder for creating a WorkflowExecution entity.
type WorkflowExecutionCreate struct {
	config
	mutation *WorkflowExecutionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *WorkflowExecutionCreate) SetProjectID(v string) *WorkflowExecutionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetWorkflow sets the "workflow" field.
func (_c *WorkflowExecutionCreate) SetWorkflow(v map[string]interface{}) *WorkflowExecutionCreate {
	_c.mutation.SetWorkflow(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *WorkflowExecutionCreate) SetInput(v string) *WorkflowExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowExecutionCreate) SetStatus(v workflowexecution.Status) *WorkflowExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExecutedNodes sets the "executed_nodes" field.
func (_c *WorkflowExecutionCreate) SetExecutedNodes(v map[string]string) *WorkflowExecutionCreate {
	_c.mutation.SetExecutedNodes(v)
	return _c
}

// SetConversationHistory sets the "conversation_history" field.
func (_c *WorkflowExecutionCreate) SetConversationHistory(v string) *WorkflowExecutionCreate {
	_c.mutation.SetConversationHistory(v)
	return _c
}

// SetNillableConversationHistory sets the "conversation_history" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableConversationHistory(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetConversationHistory(*v)
	}
	return _c
}

// SetHumanInputRequired sets the "human_input_required" field.
func (_c *WorkflowExecutionCreate) SetHumanInputRequired(v bool) *WorkflowExecutionCreate {
	_c.mutation.SetHumanInputRequired(v)
	return _c
}

// SetNillableHumanInputRequired sets the "human_input_required" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableHumanInputRequired(v *bool) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetHumanInputRequired(*v)
	}
	return _c
}

// SetAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field.
func (_c *WorkflowExecutionCreate) SetAwaitingHumanInputAgent(v string) *WorkflowExecutionCreate {
	_c.mutation.SetAwaitingHumanInputAgent(v)
	return _c
}

// SetNillableAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableAwaitingHumanInputAgent(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetAwaitingHumanInputAgent(*v)
	}
	return _c
}

// SetHumanInputAgentID sets the "human_input_agent_id" field.
func (_c *WorkflowExecutionCreate) SetHumanInputAgentID(v string) *WorkflowExecutionCreate {
	_c.mutation.SetHumanInputAgentID(v)
	return _c
}

// SetNillableHumanInputAgentID sets the "human_input_agent_id" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableHumanInputAgentID(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetHumanInputAgentID(*v)
	}
	return _c
}

// SetHumanInputContext sets the "human_input_context" field.
func (_c *WorkflowExecutionCreate) SetHumanInputContext(v map[string]interface{}) *WorkflowExecutionCreate {
	_c.mutation.SetHumanInputContext(v)
	return _c
}

// SetHumanInputRequestedAt sets the "human_input_requested_at" field.
func (_c *WorkflowExecutionCreate) SetHumanInputRequestedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetHumanInputRequestedAt(v)
	return _c
}

// SetNillableHumanInputRequestedAt sets the "human_input_requested_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableHumanInputRequestedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetHumanInputRequestedAt(*v)
	}
	return _c
}

// SetHumanInputReceivedAt sets the "human_input_received_at" field.
func (_c *WorkflowExecutionCreate) SetHumanInputReceivedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetHumanInputReceivedAt(v)
	return _c
}

// SetNillableHumanInputReceivedAt sets the "human_input_received_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableHumanInputReceivedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetHumanInputReceivedAt(*v)
	}
	return _c
}

// SetDelegateConversations sets the "delegate_conversations" field.
func (_c *WorkflowExecutionCreate) SetDelegateConversations(v map[string]interface{}) *WorkflowExecutionCreate {
	_c.mutation.SetDelegateConversations(v)
	return _c
}

// SetFinalOutput sets the "final_output" field.
func (_c *WorkflowExecutionCreate) SetFinalOutput(v string) *WorkflowExecutionCreate {
	_c.mutation.SetFinalOutput(v)
	return _c
}

// SetNillableFinalOutput sets the "final_output" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableFinalOutput(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetFinalOutput(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *WorkflowExecutionCreate) SetResultSummary(v string) *WorkflowExecutionCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableResultSummary(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetTotalAgentsInvolved sets the "total_agents_involved" field.
func (_c *WorkflowExecutionCreate) SetTotalAgentsInvolved(v int) *WorkflowExecutionCreate {
	_c.mutation.SetTotalAgentsInvolved(v)
	return _c
}

// SetNillableTotalAgentsInvolved sets the "total_agents_involved" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableTotalAgentsInvolved(v *int) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetTotalAgentsInvolved(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowExecutionCreate) SetErrorMessage(v string) *WorkflowExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableErrorMessage(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowExecutionCreate) SetCreatedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowExecutionCreate) SetStartedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStartedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowExecutionCreate) SetCompletedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *WorkflowExecutionCreate) SetDurationSeconds(v float64) *WorkflowExecutionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableDurationSeconds(v *float64) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkflowExecutionCreate) SetPodID(v string) *WorkflowExecutionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillablePodID(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowExecutionCreate) SetID(v string) *WorkflowExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the ExecutionMessage entity by IDs.
func (_c *WorkflowExecutionCreate) AddMessageIDs(ids ...string) *WorkflowExecutionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ExecutionMessage entity.
func (_c *WorkflowExecutionCreate) AddMessages(v ...*ExecutionMessage) *WorkflowExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *WorkflowExecutionCreate) AddLlmInteractionIDs(ids ...string) *WorkflowExecutionCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *WorkflowExecutionCreate) AddLlmInteractions(v ...*LLMInteraction) *WorkflowExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddHumanInputIDs adds the "human_inputs" edge to the HumanInputInteraction entity by IDs.
func (_c *WorkflowExecutionCreate) AddHumanInputIDs(ids ...string) *WorkflowExecutionCreate {
	_c.mutation.AddHumanInputIDs(ids...)
	return _c
}

// AddHumanInputs adds the "human_inputs" edges to the HumanInputInteraction entity.
func (_c *WorkflowExecutionCreate) AddHumanInputs(v ...*HumanInputInteraction) *WorkflowExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHumanInputIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_c *WorkflowExecutionCreate) Mutation() *WorkflowExecutionMutation {
	return _c.mutation
}

// Save creates the WorkflowExecution in the database.
func (_c *WorkflowExecutionCreate) Save(ctx context.Context) (*WorkflowExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowExecutionCreate) SaveX(ctx context.Context) *WorkflowExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HumanInputRequired(); !ok {
		v := workflowexecution.DefaultHumanInputRequired
		_c.mutation.SetHumanInputRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowExecutionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "WorkflowExecution.project_id"`)}
	}
	if _, ok := _c.mutation.Workflow(); !ok {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required field "WorkflowExecution.workflow"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "WorkflowExecution.input"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HumanInputRequired(); !ok {
		return &ValidationError{Name: "human_input_required", err: errors.New(`ent: missing required field "WorkflowExecution.human_input_required"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowExecution.created_at"`)}
	}
	return nil
}

func (_c *WorkflowExecutionCreate) sqlSave(ctx context.Context) (*WorkflowExecution, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowExecutionCreate) createSpec() (*WorkflowExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowexecution.Table, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(workflowexecution.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Workflow(); ok {
		_spec.SetField(workflowexecution.FieldWorkflow, field.TypeJSON, value)
		_node.Workflow = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(workflowexecution.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExecutedNodes(); ok {
		_spec.SetField(workflowexecution.FieldExecutedNodes, field.TypeJSON, value)
		_node.ExecutedNodes = value
	}
	if value, ok := _c.mutation.ConversationHistory(); ok {
		_spec.SetField(workflowexecution.FieldConversationHistory, field.TypeString, value)
		_node.ConversationHistory = value
	}
	if value, ok := _c.mutation.HumanInputRequired(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputRequired, field.TypeBool, value)
		_node.HumanInputRequired = value
	}
	if value, ok := _c.mutation.AwaitingHumanInputAgent(); ok {
		_spec.SetField(workflowexecution.FieldAwaitingHumanInputAgent, field.TypeString, value)
		_node.AwaitingHumanInputAgent = &value
	}
	if value, ok := _c.mutation.HumanInputAgentID(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputAgentID, field.TypeString, value)
		_node.HumanInputAgentID = &value
	}
	if value, ok := _c.mutation.HumanInputContext(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputContext, field.TypeJSON, value)
		_node.HumanInputContext = value
	}
	if value, ok := _c.mutation.HumanInputRequestedAt(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputRequestedAt, field.TypeTime, value)
		_node.HumanInputRequestedAt = &value
	}
	if value, ok := _c.mutation.HumanInputReceivedAt(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputReceivedAt, field.TypeTime, value)
		_node.HumanInputReceivedAt = &value
	}
	if value, ok := _c.mutation.DelegateConversations(); ok {
		_spec.SetField(workflowexecution.FieldDelegateConversations, field.TypeJSON, value)
		_node.DelegateConversations = value
	}
	if value, ok := _c.mutation.FinalOutput(); ok {
		_spec.SetField(workflowexecution.FieldFinalOutput, field.TypeString, value)
		_node.FinalOutput = &value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(workflowexecution.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = &value
	}
	if value, ok := _c.mutation.TotalAgentsInvolved(); ok {
		_spec.SetField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt, value)
		_node.TotalAgentsInvolved = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workflowexecution.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.MessagesTable,
			Columns: []string{workflowexecution.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.LlmInteractionsTable,
			Columns: []string{workflowexecution.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HumanInputsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.HumanInputsTable,
			Columns: []string{workflowexecution.HumanInputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(humaninputinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowExecutionCreateBulk is the builder for creating many WorkflowExecution entities in bulk.
type WorkflowExecutionCreateBulk struct {
	config
	err      error
	builders []*WorkflowExecutionCreate
}

// Save creates the WorkflowExecution entities in the database.
func (_c *WorkflowExecutionCreateBulk) Save(ctx context.Context) ([]*WorkflowExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowExecutionMutation)
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
func (_c *WorkflowExecutionCreateBulk) SaveX(ctx context.Context) []*WorkflowExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
