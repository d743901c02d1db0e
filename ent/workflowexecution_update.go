// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// WorkflowExecutionUpdate is the builder for updating WorkflowExecution entities.
type WorkflowExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdate) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *WorkflowExecutionUpdate) SetProjectID(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableProjectID(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetWorkflow sets the "workflow" field.
func (_u *WorkflowExecutionUpdate) SetWorkflow(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetWorkflow(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *WorkflowExecutionUpdate) SetInput(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableInput(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdate) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutedNodes sets the "executed_nodes" field.
func (_u *WorkflowExecutionUpdate) SetExecutedNodes(v map[string]string) *WorkflowExecutionUpdate {
	_u.mutation.SetExecutedNodes(v)
	return _u
}

// ClearExecutedNodes clears the value of the "executed_nodes" field.
func (_u *WorkflowExecutionUpdate) ClearExecutedNodes() *WorkflowExecutionUpdate {
	_u.mutation.ClearExecutedNodes()
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *WorkflowExecutionUpdate) SetConversationHistory(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// SetNillableConversationHistory sets the "conversation_history" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableConversationHistory(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetConversationHistory(*v)
	}
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *WorkflowExecutionUpdate) ClearConversationHistory() *WorkflowExecutionUpdate {
	_u.mutation.ClearConversationHistory()
	return _u
}

// SetHumanInputRequired sets the "human_input_required" field.
func (_u *WorkflowExecutionUpdate) SetHumanInputRequired(v bool) *WorkflowExecutionUpdate {
	_u.mutation.SetHumanInputRequired(v)
	return _u
}

// SetNillableHumanInputRequired sets the "human_input_required" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableHumanInputRequired(v *bool) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetHumanInputRequired(*v)
	}
	return _u
}

// SetAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field.
func (_u *WorkflowExecutionUpdate) SetAwaitingHumanInputAgent(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetAwaitingHumanInputAgent(v)
	return _u
}

// SetNillableAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableAwaitingHumanInputAgent(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetAwaitingHumanInputAgent(*v)
	}
	return _u
}

// ClearAwaitingHumanInputAgent clears the value of the "awaiting_human_input_agent" field.
func (_u *WorkflowExecutionUpdate) ClearAwaitingHumanInputAgent() *WorkflowExecutionUpdate {
	_u.mutation.ClearAwaitingHumanInputAgent()
	return _u
}

// SetHumanInputAgentID sets the "human_input_agent_id" field.
func (_u *WorkflowExecutionUpdate) SetHumanInputAgentID(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetHumanInputAgentID(v)
	return _u
}

// SetNillableHumanInputAgentID sets the "human_input_agent_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableHumanInputAgentID(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetHumanInputAgentID(*v)
	}
	return _u
}

// ClearHumanInputAgentID clears the value of the "human_input_agent_id" field.
func (_u *WorkflowExecutionUpdate) ClearHumanInputAgentID() *WorkflowExecutionUpdate {
	_u.mutation.ClearHumanInputAgentID()
	return _u
}

// SetHumanInputContext sets the "human_input_context" field.
func (_u *WorkflowExecutionUpdate) SetHumanInputContext(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetHumanInputContext(v)
	return _u
}

// ClearHumanInputContext clears the value of the "human_input_context" field.
func (_u *WorkflowExecutionUpdate) ClearHumanInputContext() *WorkflowExecutionUpdate {
	_u.mutation.ClearHumanInputContext()
	return _u
}

// SetHumanInputRequestedAt sets the "human_input_requested_at" field.
func (_u *WorkflowExecutionUpdate) SetHumanInputRequestedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetHumanInputRequestedAt(v)
	return _u
}

// SetNillableHumanInputRequestedAt sets the "human_input_requested_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableHumanInputRequestedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetHumanInputRequestedAt(*v)
	}
	return _u
}

// ClearHumanInputRequestedAt clears the value of the "human_input_requested_at" field.
func (_u *WorkflowExecutionUpdate) ClearHumanInputRequestedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearHumanInputRequestedAt()
	return _u
}

// SetHumanInputReceivedAt sets the "human_input_received_at" field.
func (_u *WorkflowExecutionUpdate) SetHumanInputReceivedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetHumanInputReceivedAt(v)
	return _u
}

// SetNillableHumanInputReceivedAt sets the "human_input_received_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableHumanInputReceivedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetHumanInputReceivedAt(*v)
	}
	return _u
}

// ClearHumanInputReceivedAt clears the value of the "human_input_received_at" field.
func (_u *WorkflowExecutionUpdate) ClearHumanInputReceivedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearHumanInputReceivedAt()
	return _u
}

// SetDelegateConversations sets the "delegate_conversations" field.
func (_u *WorkflowExecutionUpdate) SetDelegateConversations(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetDelegateConversations(v)
	return _u
}

// ClearDelegateConversations clears the value of the "delegate_conversations" field.
func (_u *WorkflowExecutionUpdate) ClearDelegateConversations() *WorkflowExecutionUpdate {
	_u.mutation.ClearDelegateConversations()
	return _u
}

// SetFinalOutput sets the "final_output" field.
func (_u *WorkflowExecutionUpdate) SetFinalOutput(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetFinalOutput(v)
	return _u
}

// SetNillableFinalOutput sets the "final_output" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableFinalOutput(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetFinalOutput(*v)
	}
	return _u
}

// ClearFinalOutput clears the value of the "final_output" field.
func (_u *WorkflowExecutionUpdate) ClearFinalOutput() *WorkflowExecutionUpdate {
	_u.mutation.ClearFinalOutput()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *WorkflowExecutionUpdate) SetResultSummary(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableResultSummary(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *WorkflowExecutionUpdate) ClearResultSummary() *WorkflowExecutionUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetTotalAgentsInvolved sets the "total_agents_involved" field.
func (_u *WorkflowExecutionUpdate) SetTotalAgentsInvolved(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetTotalAgentsInvolved()
	_u.mutation.SetTotalAgentsInvolved(v)
	return _u
}

// SetNillableTotalAgentsInvolved sets the "total_agents_involved" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableTotalAgentsInvolved(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetTotalAgentsInvolved(*v)
	}
	return _u
}

// AddTotalAgentsInvolved adds value to the "total_agents_involved" field.
func (_u *WorkflowExecutionUpdate) AddTotalAgentsInvolved(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddTotalAgentsInvolved(v)
	return _u
}

// ClearTotalAgentsInvolved clears the value of the "total_agents_involved" field.
func (_u *WorkflowExecutionUpdate) ClearTotalAgentsInvolved() *WorkflowExecutionUpdate {
	_u.mutation.ClearTotalAgentsInvolved()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdate) SetErrorMessage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdate) ClearErrorMessage() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowExecutionUpdate) SetCreatedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdate) SetStartedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdate) ClearStartedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdate) SetCompletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdate) ClearCompletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *WorkflowExecutionUpdate) SetDurationSeconds(v float64) *WorkflowExecutionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDurationSeconds(v *float64) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *WorkflowExecutionUpdate) AddDurationSeconds(v float64) *WorkflowExecutionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *WorkflowExecutionUpdate) ClearDurationSeconds() *WorkflowExecutionUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowExecutionUpdate) SetPodID(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillablePodID(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowExecutionUpdate) ClearPodID() *WorkflowExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// AddMessageIDs adds the "messages" edge to the ExecutionMessage entity by IDs.
func (_u *WorkflowExecutionUpdate) AddMessageIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ExecutionMessage entity.
func (_u *WorkflowExecutionUpdate) AddMessages(v ...*ExecutionMessage) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *WorkflowExecutionUpdate) AddLlmInteractionIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *WorkflowExecutionUpdate) AddLlmInteractions(v ...*LLMInteraction) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddHumanInputIDs adds the "human_inputs" edge to the HumanInputInteraction entity by IDs.
func (_u *WorkflowExecutionUpdate) AddHumanInputIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddHumanInputIDs(ids...)
	return _u
}

// AddHumanInputs adds the "human_inputs" edges to the HumanInputInteraction entity.
func (_u *WorkflowExecutionUpdate) AddHumanInputs(v ...*HumanInputInteraction) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHumanInputIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdate) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ExecutionMessage entity.
func (_u *WorkflowExecutionUpdate) ClearMessages() *WorkflowExecutionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ExecutionMessage entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveMessageIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ExecutionMessage entities.
func (_u *WorkflowExecutionUpdate) RemoveMessages(v ...*ExecutionMessage) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *WorkflowExecutionUpdate) ClearLlmInteractions() *WorkflowExecutionUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveLlmInteractionIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *WorkflowExecutionUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearHumanInputs clears all "human_inputs" edges to the HumanInputInteraction entity.
func (_u *WorkflowExecutionUpdate) ClearHumanInputs() *WorkflowExecutionUpdate {
	_u.mutation.ClearHumanInputs()
	return _u
}

// RemoveHumanInputIDs removes the "human_inputs" edge to HumanInputInteraction entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveHumanInputIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveHumanInputIDs(ids...)
	return _u
}

// RemoveHumanInputs removes "human_inputs" edges to HumanInputInteraction entities.
func (_u *WorkflowExecutionUpdate) RemoveHumanInputs(v ...*HumanInputInteraction) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHumanInputIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(workflowexecution.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Workflow(); ok {
		_spec.SetField(workflowexecution.FieldWorkflow, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(workflowexecution.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutedNodes(); ok {
		_spec.SetField(workflowexecution.FieldExecutedNodes, field.TypeJSON, value)
	}
	if _u.mutation.ExecutedNodesCleared() {
		_spec.ClearField(workflowexecution.FieldExecutedNodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(workflowexecution.FieldConversationHistory, field.TypeString, value)
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(workflowexecution.FieldConversationHistory, field.TypeString)
	}
	if value, ok := _u.mutation.HumanInputRequired(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AwaitingHumanInputAgent(); ok {
		_spec.SetField(workflowexecution.FieldAwaitingHumanInputAgent, field.TypeString, value)
	}
	if _u.mutation.AwaitingHumanInputAgentCleared() {
		_spec.ClearField(workflowexecution.FieldAwaitingHumanInputAgent, field.TypeString)
	}
	if value, ok := _u.mutation.HumanInputAgentID(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputAgentID, field.TypeString, value)
	}
	if _u.mutation.HumanInputAgentIDCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.HumanInputContext(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputContext, field.TypeJSON, value)
	}
	if _u.mutation.HumanInputContextCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.HumanInputRequestedAt(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanInputRequestedAtCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HumanInputReceivedAt(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanInputReceivedAtCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DelegateConversations(); ok {
		_spec.SetField(workflowexecution.FieldDelegateConversations, field.TypeJSON, value)
	}
	if _u.mutation.DelegateConversationsCleared() {
		_spec.ClearField(workflowexecution.FieldDelegateConversations, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalOutput(); ok {
		_spec.SetField(workflowexecution.FieldFinalOutput, field.TypeString, value)
	}
	if _u.mutation.FinalOutputCleared() {
		_spec.ClearField(workflowexecution.FieldFinalOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(workflowexecution.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(workflowexecution.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAgentsInvolved(); ok {
		_spec.SetField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAgentsInvolved(); ok {
		_spec.AddField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt, value)
	}
	if _u.mutation.TotalAgentsInvolvedCleared() {
		_spec.ClearField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(workflowexecution.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowexecution.FieldPodID, field.TypeString)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HumanInputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHumanInputsIDs(); len(nodes) > 0 && !_u.mutation.HumanInputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HumanInputsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowExecutionUpdateOne is the builder for updating a single WorkflowExecution entity.
type WorkflowExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *WorkflowExecutionUpdateOne) SetProjectID(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableProjectID(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetWorkflow sets the "workflow" field.
func (_u *WorkflowExecutionUpdateOne) SetWorkflow(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetWorkflow(v)
	return _u
}

// SetInput sets the "input" field.
func (_u *WorkflowExecutionUpdateOne) SetInput(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableInput(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdateOne) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutedNodes sets the "executed_nodes" field.
func (_u *WorkflowExecutionUpdateOne) SetExecutedNodes(v map[string]string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetExecutedNodes(v)
	return _u
}

// ClearExecutedNodes clears the value of the "executed_nodes" field.
func (_u *WorkflowExecutionUpdateOne) ClearExecutedNodes() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearExecutedNodes()
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *WorkflowExecutionUpdateOne) SetConversationHistory(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// SetNillableConversationHistory sets the "conversation_history" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableConversationHistory(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetConversationHistory(*v)
	}
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *WorkflowExecutionUpdateOne) ClearConversationHistory() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearConversationHistory()
	return _u
}

// SetHumanInputRequired sets the "human_input_required" field.
func (_u *WorkflowExecutionUpdateOne) SetHumanInputRequired(v bool) *WorkflowExecutionUpdateOne {
	_u.mutation.SetHumanInputRequired(v)
	return _u
}

// SetNillableHumanInputRequired sets the "human_input_required" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableHumanInputRequired(v *bool) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetHumanInputRequired(*v)
	}
	return _u
}

// SetAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field.
func (_u *WorkflowExecutionUpdateOne) SetAwaitingHumanInputAgent(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetAwaitingHumanInputAgent(v)
	return _u
}

// SetNillableAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableAwaitingHumanInputAgent(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetAwaitingHumanInputAgent(*v)
	}
	return _u
}

// ClearAwaitingHumanInputAgent clears the value of the "awaiting_human_input_agent" field.
func (_u *WorkflowExecutionUpdateOne) ClearAwaitingHumanInputAgent() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearAwaitingHumanInputAgent()
	return _u
}

// SetHumanInputAgentID sets the "human_input_agent_id" field.
func (_u *WorkflowExecutionUpdateOne) SetHumanInputAgentID(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetHumanInputAgentID(v)
	return _u
}

// SetNillableHumanInputAgentID sets the "human_input_agent_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableHumanInputAgentID(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetHumanInputAgentID(*v)
	}
	return _u
}

// ClearHumanInputAgentID clears the value of the "human_input_agent_id" field.
func (_u *WorkflowExecutionUpdateOne) ClearHumanInputAgentID() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearHumanInputAgentID()
	return _u
}

// SetHumanInputContext sets the "human_input_context" field.
func (_u *WorkflowExecutionUpdateOne) SetHumanInputContext(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetHumanInputContext(v)
	return _u
}

// ClearHumanInputContext clears the value of the "human_input_context" field.
func (_u *WorkflowExecutionUpdateOne) ClearHumanInputContext() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearHumanInputContext()
	return _u
}

// SetHumanInputRequestedAt sets the "human_input_requested_at" field.
func (_u *WorkflowExecutionUpdateOne) SetHumanInputRequestedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetHumanInputRequestedAt(v)
	return _u
}

// SetNillableHumanInputRequestedAt sets the "human_input_requested_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableHumanInputRequestedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetHumanInputRequestedAt(*v)
	}
	return _u
}

// ClearHumanInputRequestedAt clears the value of the "human_input_requested_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearHumanInputRequestedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearHumanInputRequestedAt()
	return _u
}

// SetHumanInputReceivedAt sets the "human_input_received_at" field.
func (_u *WorkflowExecutionUpdateOne) SetHumanInputReceivedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetHumanInputReceivedAt(v)
	return _u
}

// SetNillableHumanInputReceivedAt sets the "human_input_received_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableHumanInputReceivedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetHumanInputReceivedAt(*v)
	}
	return _u
}

// ClearHumanInputReceivedAt clears the value of the "human_input_received_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearHumanInputReceivedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearHumanInputReceivedAt()
	return _u
}

// SetDelegateConversations sets the "delegate_conversations" field.
func (_u *WorkflowExecutionUpdateOne) SetDelegateConversations(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetDelegateConversations(v)
	return _u
}

// ClearDelegateConversations clears the value of the "delegate_conversations" field.
func (_u *WorkflowExecutionUpdateOne) ClearDelegateConversations() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDelegateConversations()
	return _u
}

// SetFinalOutput sets the "final_output" field.
func (_u *WorkflowExecutionUpdateOne) SetFinalOutput(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetFinalOutput(v)
	return _u
}

// SetNillableFinalOutput sets the "final_output" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableFinalOutput(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetFinalOutput(*v)
	}
	return _u
}

// ClearFinalOutput clears the value of the "final_output" field.
func (_u *WorkflowExecutionUpdateOne) ClearFinalOutput() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearFinalOutput()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *WorkflowExecutionUpdateOne) SetResultSummary(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableResultSummary(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *WorkflowExecutionUpdateOne) ClearResultSummary() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetTotalAgentsInvolved sets the "total_agents_involved" field.
func (_u *WorkflowExecutionUpdateOne) SetTotalAgentsInvolved(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetTotalAgentsInvolved()
	_u.mutation.SetTotalAgentsInvolved(v)
	return _u
}

// SetNillableTotalAgentsInvolved sets the "total_agents_involved" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableTotalAgentsInvolved(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetTotalAgentsInvolved(*v)
	}
	return _u
}

// AddTotalAgentsInvolved adds value to the "total_agents_involved" field.
func (_u *WorkflowExecutionUpdateOne) AddTotalAgentsInvolved(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddTotalAgentsInvolved(v)
	return _u
}

// ClearTotalAgentsInvolved clears the value of the "total_agents_involved" field.
func (_u *WorkflowExecutionUpdateOne) ClearTotalAgentsInvolved() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearTotalAgentsInvolved()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorMessage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorMessage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCreatedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) SetStartedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearStartedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCompletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearCompletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *WorkflowExecutionUpdateOne) SetDurationSeconds(v float64) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDurationSeconds(v *float64) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *WorkflowExecutionUpdateOne) AddDurationSeconds(v float64) *WorkflowExecutionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *WorkflowExecutionUpdateOne) ClearDurationSeconds() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowExecutionUpdateOne) SetPodID(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillablePodID(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowExecutionUpdateOne) ClearPodID() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// AddMessageIDs adds the "messages" edge to the ExecutionMessage entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddMessageIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ExecutionMessage entity.
func (_u *WorkflowExecutionUpdateOne) AddMessages(v ...*ExecutionMessage) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddLlmInteractionIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *WorkflowExecutionUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddHumanInputIDs adds the "human_inputs" edge to the HumanInputInteraction entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddHumanInputIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddHumanInputIDs(ids...)
	return _u
}

// AddHumanInputs adds the "human_inputs" edges to the HumanInputInteraction entity.
func (_u *WorkflowExecutionUpdateOne) AddHumanInputs(v ...*HumanInputInteraction) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHumanInputIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdateOne) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ExecutionMessage entity.
func (_u *WorkflowExecutionUpdateOne) ClearMessages() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ExecutionMessage entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveMessageIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ExecutionMessage entities.
func (_u *WorkflowExecutionUpdateOne) RemoveMessages(v ...*ExecutionMessage) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *WorkflowExecutionUpdateOne) ClearLlmInteractions() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveLlmInteractionIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *WorkflowExecutionUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearHumanInputs clears all "human_inputs" edges to the HumanInputInteraction entity.
func (_u *WorkflowExecutionUpdateOne) ClearHumanInputs() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearHumanInputs()
	return _u
}

// RemoveHumanInputIDs removes the "human_inputs" edge to HumanInputInteraction entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveHumanInputIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveHumanInputIDs(ids...)
	return _u
}

// RemoveHumanInputs removes "human_inputs" edges to HumanInputInteraction entities.
func (_u *WorkflowExecutionUpdateOne) RemoveHumanInputs(v ...*HumanInputInteraction) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHumanInputIDs(ids...)
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdateOne) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowExecutionUpdateOne) Select(field string, fields ...string) *WorkflowExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) Save(ctx context.Context) (*WorkflowExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for _, f := range fields {
			if !workflowexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowexecution.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(workflowexecution.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Workflow(); ok {
		_spec.SetField(workflowexecution.FieldWorkflow, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(workflowexecution.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutedNodes(); ok {
		_spec.SetField(workflowexecution.FieldExecutedNodes, field.TypeJSON, value)
	}
	if _u.mutation.ExecutedNodesCleared() {
		_spec.ClearField(workflowexecution.FieldExecutedNodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(workflowexecution.FieldConversationHistory, field.TypeString, value)
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(workflowexecution.FieldConversationHistory, field.TypeString)
	}
	if value, ok := _u.mutation.HumanInputRequired(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AwaitingHumanInputAgent(); ok {
		_spec.SetField(workflowexecution.FieldAwaitingHumanInputAgent, field.TypeString, value)
	}
	if _u.mutation.AwaitingHumanInputAgentCleared() {
		_spec.ClearField(workflowexecution.FieldAwaitingHumanInputAgent, field.TypeString)
	}
	if value, ok := _u.mutation.HumanInputAgentID(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputAgentID, field.TypeString, value)
	}
	if _u.mutation.HumanInputAgentIDCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.HumanInputContext(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputContext, field.TypeJSON, value)
	}
	if _u.mutation.HumanInputContextCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.HumanInputRequestedAt(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanInputRequestedAtCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HumanInputReceivedAt(); ok {
		_spec.SetField(workflowexecution.FieldHumanInputReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanInputReceivedAtCleared() {
		_spec.ClearField(workflowexecution.FieldHumanInputReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DelegateConversations(); ok {
		_spec.SetField(workflowexecution.FieldDelegateConversations, field.TypeJSON, value)
	}
	if _u.mutation.DelegateConversationsCleared() {
		_spec.ClearField(workflowexecution.FieldDelegateConversations, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalOutput(); ok {
		_spec.SetField(workflowexecution.FieldFinalOutput, field.TypeString, value)
	}
	if _u.mutation.FinalOutputCleared() {
		_spec.ClearField(workflowexecution.FieldFinalOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(workflowexecution.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(workflowexecution.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAgentsInvolved(); ok {
		_spec.SetField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAgentsInvolved(); ok {
		_spec.AddField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt, value)
	}
	if _u.mutation.TotalAgentsInvolvedCleared() {
		_spec.ClearField(workflowexecution.FieldTotalAgentsInvolved, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(workflowexecution.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowexecution.FieldPodID, field.TypeString)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HumanInputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHumanInputsIDs(); len(nodes) > 0 && !_u.mutation.HumanInputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HumanInputsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
