// Code generated by ent, DO NOT EDIT.

package workflowexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldProjectID, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldInput, v))
}

// ConversationHistory applies equality check predicate on the "conversation_history" field. It's identical to ConversationHistoryEQ.
func ConversationHistory(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldConversationHistory, v))
}

// HumanInputRequired applies equality check predicate on the "human_input_required" field. It's identical to HumanInputRequiredEQ.
func HumanInputRequired(v bool) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputRequired, v))
}

// AwaitingHumanInputAgent applies equality check predicate on the "awaiting_human_input_agent" field. It's identical to AwaitingHumanInputAgentEQ.
func AwaitingHumanInputAgent(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldAwaitingHumanInputAgent, v))
}

// HumanInputAgentID applies equality check predicate on the "human_input_agent_id" field. It's identical to HumanInputAgentIDEQ.
func HumanInputAgentID(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputAgentID, v))
}

// HumanInputRequestedAt applies equality check predicate on the "human_input_requested_at" field. It's identical to HumanInputRequestedAtEQ.
func HumanInputRequestedAt(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputRequestedAt, v))
}

// HumanInputReceivedAt applies equality check predicate on the "human_input_received_at" field. It's identical to HumanInputReceivedAtEQ.
func HumanInputReceivedAt(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputReceivedAt, v))
}

// FinalOutput applies equality check predicate on the "final_output" field. It's identical to FinalOutputEQ.
func FinalOutput(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldFinalOutput, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldResultSummary, v))
}

// TotalAgentsInvolved applies equality check predicate on the "total_agents_involved" field. It's identical to TotalAgentsInvolvedEQ.
func TotalAgentsInvolved(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldTotalAgentsInvolved, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldDurationSeconds, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldPodID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldProjectID, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldInput, v))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldInput, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecutedNodesIsNil applies the IsNil predicate on the "executed_nodes" field.
func ExecutedNodesIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldExecutedNodes))
}

// ExecutedNodesNotNil applies the NotNil predicate on the "executed_nodes" field.
func ExecutedNodesNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldExecutedNodes))
}

// ConversationHistoryEQ applies the EQ predicate on the "conversation_history" field.
func ConversationHistoryEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldConversationHistory, v))
}

// ConversationHistoryNEQ applies the NEQ predicate on the "conversation_history" field.
func ConversationHistoryNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldConversationHistory, v))
}

// ConversationHistoryIn applies the In predicate on the "conversation_history" field.
func ConversationHistoryIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldConversationHistory, vs...))
}

// ConversationHistoryNotIn applies the NotIn predicate on the "conversation_history" field.
func ConversationHistoryNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldConversationHistory, vs...))
}

// ConversationHistoryGT applies the GT predicate on the "conversation_history" field.
func ConversationHistoryGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldConversationHistory, v))
}

// ConversationHistoryGTE applies the GTE predicate on the "conversation_history" field.
func ConversationHistoryGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldConversationHistory, v))
}

// ConversationHistoryLT applies the LT predicate on the "conversation_history" field.
func ConversationHistoryLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldConversationHistory, v))
}

// ConversationHistoryLTE applies the LTE predicate on the "conversation_history" field.
func ConversationHistoryLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldConversationHistory, v))
}

// ConversationHistoryContains applies the Contains predicate on the "conversation_history" field.
func ConversationHistoryContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldConversationHistory, v))
}

// ConversationHistoryHasPrefix applies the HasPrefix predicate on the "conversation_history" field.
func ConversationHistoryHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldConversationHistory, v))
}

// ConversationHistoryHasSuffix applies the HasSuffix predicate on the "conversation_history" field.
func ConversationHistoryHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldConversationHistory, v))
}

// ConversationHistoryIsNil applies the IsNil predicate on the "conversation_history" field.
func ConversationHistoryIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldConversationHistory))
}

// ConversationHistoryNotNil applies the NotNil predicate on the "conversation_history" field.
func ConversationHistoryNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldConversationHistory))
}

// ConversationHistoryEqualFold applies the EqualFold predicate on the "conversation_history" field.
func ConversationHistoryEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldConversationHistory, v))
}

// ConversationHistoryContainsFold applies the ContainsFold predicate on the "conversation_history" field.
func ConversationHistoryContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldConversationHistory, v))
}

// HumanInputRequiredEQ applies the EQ predicate on the "human_input_required" field.
func HumanInputRequiredEQ(v bool) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputRequired, v))
}

// HumanInputRequiredNEQ applies the NEQ predicate on the "human_input_required" field.
func HumanInputRequiredNEQ(v bool) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldHumanInputRequired, v))
}

// AwaitingHumanInputAgentEQ applies the EQ predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentNEQ applies the NEQ predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentIn applies the In predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldAwaitingHumanInputAgent, vs...))
}

// AwaitingHumanInputAgentNotIn applies the NotIn predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldAwaitingHumanInputAgent, vs...))
}

// AwaitingHumanInputAgentGT applies the GT predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentGTE applies the GTE predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentLT applies the LT predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentLTE applies the LTE predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentContains applies the Contains predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentHasPrefix applies the HasPrefix predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentHasSuffix applies the HasSuffix predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentIsNil applies the IsNil predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldAwaitingHumanInputAgent))
}

// AwaitingHumanInputAgentNotNil applies the NotNil predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldAwaitingHumanInputAgent))
}

// AwaitingHumanInputAgentEqualFold applies the EqualFold predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldAwaitingHumanInputAgent, v))
}

// AwaitingHumanInputAgentContainsFold applies the ContainsFold predicate on the "awaiting_human_input_agent" field.
func AwaitingHumanInputAgentContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldAwaitingHumanInputAgent, v))
}

// HumanInputAgentIDEQ applies the EQ predicate on the "human_input_agent_id" field.
func HumanInputAgentIDEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDNEQ applies the NEQ predicate on the "human_input_agent_id" field.
func HumanInputAgentIDNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDIn applies the In predicate on the "human_input_agent_id" field.
func HumanInputAgentIDIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldHumanInputAgentID, vs...))
}

// HumanInputAgentIDNotIn applies the NotIn predicate on the "human_input_agent_id" field.
func HumanInputAgentIDNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldHumanInputAgentID, vs...))
}

// HumanInputAgentIDGT applies the GT predicate on the "human_input_agent_id" field.
func HumanInputAgentIDGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDGTE applies the GTE predicate on the "human_input_agent_id" field.
func HumanInputAgentIDGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDLT applies the LT predicate on the "human_input_agent_id" field.
func HumanInputAgentIDLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDLTE applies the LTE predicate on the "human_input_agent_id" field.
func HumanInputAgentIDLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDContains applies the Contains predicate on the "human_input_agent_id" field.
func HumanInputAgentIDContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDHasPrefix applies the HasPrefix predicate on the "human_input_agent_id" field.
func HumanInputAgentIDHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDHasSuffix applies the HasSuffix predicate on the "human_input_agent_id" field.
func HumanInputAgentIDHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDIsNil applies the IsNil predicate on the "human_input_agent_id" field.
func HumanInputAgentIDIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldHumanInputAgentID))
}

// HumanInputAgentIDNotNil applies the NotNil predicate on the "human_input_agent_id" field.
func HumanInputAgentIDNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldHumanInputAgentID))
}

// HumanInputAgentIDEqualFold applies the EqualFold predicate on the "human_input_agent_id" field.
func HumanInputAgentIDEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldHumanInputAgentID, v))
}

// HumanInputAgentIDContainsFold applies the ContainsFold predicate on the "human_input_agent_id" field.
func HumanInputAgentIDContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldHumanInputAgentID, v))
}

// HumanInputContextIsNil applies the IsNil predicate on the "human_input_context" field.
func HumanInputContextIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldHumanInputContext))
}

// HumanInputContextNotNil applies the NotNil predicate on the "human_input_context" field.
func HumanInputContextNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldHumanInputContext))
}

// HumanInputRequestedAtEQ applies the EQ predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputRequestedAt, v))
}

// HumanInputRequestedAtNEQ applies the NEQ predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtNEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldHumanInputRequestedAt, v))
}

// HumanInputRequestedAtIn applies the In predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldHumanInputRequestedAt, vs...))
}

// HumanInputRequestedAtNotIn applies the NotIn predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtNotIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldHumanInputRequestedAt, vs...))
}

// HumanInputRequestedAtGT applies the GT predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtGT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldHumanInputRequestedAt, v))
}

// HumanInputRequestedAtGTE applies the GTE predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtGTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldHumanInputRequestedAt, v))
}

// HumanInputRequestedAtLT applies the LT predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtLT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldHumanInputRequestedAt, v))
}

// HumanInputRequestedAtLTE applies the LTE predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtLTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldHumanInputRequestedAt, v))
}

// HumanInputRequestedAtIsNil applies the IsNil predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldHumanInputRequestedAt))
}

// HumanInputRequestedAtNotNil applies the NotNil predicate on the "human_input_requested_at" field.
func HumanInputRequestedAtNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldHumanInputRequestedAt))
}

// HumanInputReceivedAtEQ applies the EQ predicate on the "human_input_received_at" field.
func HumanInputReceivedAtEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldHumanInputReceivedAt, v))
}

// HumanInputReceivedAtNEQ applies the NEQ predicate on the "human_input_received_at" field.
func HumanInputReceivedAtNEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldHumanInputReceivedAt, v))
}

// HumanInputReceivedAtIn applies the In predicate on the "human_input_received_at" field.
func HumanInputReceivedAtIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldHumanInputReceivedAt, vs...))
}

// HumanInputReceivedAtNotIn applies the NotIn predicate on the "human_input_received_at" field.
func HumanInputReceivedAtNotIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldHumanInputReceivedAt, vs...))
}

// HumanInputReceivedAtGT applies the GT predicate on the "human_input_received_at" field.
func HumanInputReceivedAtGT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldHumanInputReceivedAt, v))
}

// HumanInputReceivedAtGTE applies the GTE predicate on the "human_input_received_at" field.
func HumanInputReceivedAtGTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldHumanInputReceivedAt, v))
}

// HumanInputReceivedAtLT applies the LT predicate on the "human_input_received_at" field.
func HumanInputReceivedAtLT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldHumanInputReceivedAt, v))
}

// HumanInputReceivedAtLTE applies the LTE predicate on the "human_input_received_at" field.
func HumanInputReceivedAtLTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldHumanInputReceivedAt, v))
}

// HumanInputReceivedAtIsNil applies the IsNil predicate on the "human_input_received_at" field.
func HumanInputReceivedAtIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldHumanInputReceivedAt))
}

// HumanInputReceivedAtNotNil applies the NotNil predicate on the "human_input_received_at" field.
func HumanInputReceivedAtNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldHumanInputReceivedAt))
}

// DelegateConversationsIsNil applies the IsNil predicate on the "delegate_conversations" field.
func DelegateConversationsIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldDelegateConversations))
}

// DelegateConversationsNotNil applies the NotNil predicate on the "delegate_conversations" field.
func DelegateConversationsNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldDelegateConversations))
}

// FinalOutputEQ applies the EQ predicate on the "final_output" field.
func FinalOutputEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldFinalOutput, v))
}

// FinalOutputNEQ applies the NEQ predicate on the "final_output" field.
func FinalOutputNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldFinalOutput, v))
}

// FinalOutputIn applies the In predicate on the "final_output" field.
func FinalOutputIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldFinalOutput, vs...))
}

// FinalOutputNotIn applies the NotIn predicate on the "final_output" field.
func FinalOutputNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldFinalOutput, vs...))
}

// FinalOutputGT applies the GT predicate on the "final_output" field.
func FinalOutputGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldFinalOutput, v))
}

// FinalOutputGTE applies the GTE predicate on the "final_output" field.
func FinalOutputGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldFinalOutput, v))
}

// FinalOutputLT applies the LT predicate on the "final_output" field.
func FinalOutputLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldFinalOutput, v))
}

// FinalOutputLTE applies the LTE predicate on the "final_output" field.
func FinalOutputLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldFinalOutput, v))
}

// FinalOutputContains applies the Contains predicate on the "final_output" field.
func FinalOutputContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldFinalOutput, v))
}

// FinalOutputHasPrefix applies the HasPrefix predicate on the "final_output" field.
func FinalOutputHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldFinalOutput, v))
}

// FinalOutputHasSuffix applies the HasSuffix predicate on the "final_output" field.
func FinalOutputHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldFinalOutput, v))
}

// FinalOutputIsNil applies the IsNil predicate on the "final_output" field.
func FinalOutputIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldFinalOutput))
}

// FinalOutputNotNil applies the NotNil predicate on the "final_output" field.
func FinalOutputNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldFinalOutput))
}

// FinalOutputEqualFold applies the EqualFold predicate on the "final_output" field.
func FinalOutputEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldFinalOutput, v))
}

// FinalOutputContainsFold applies the ContainsFold predicate on the "final_output" field.
func FinalOutputContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldFinalOutput, v))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldResultSummary, v))
}

// TotalAgentsInvolvedEQ applies the EQ predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedEQ(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldTotalAgentsInvolved, v))
}

// TotalAgentsInvolvedNEQ applies the NEQ predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedNEQ(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldTotalAgentsInvolved, v))
}

// TotalAgentsInvolvedIn applies the In predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedIn(vs ...int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldTotalAgentsInvolved, vs...))
}

// TotalAgentsInvolvedNotIn applies the NotIn predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedNotIn(vs ...int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldTotalAgentsInvolved, vs...))
}

// TotalAgentsInvolvedGT applies the GT predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedGT(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldTotalAgentsInvolved, v))
}

// TotalAgentsInvolvedGTE applies the GTE predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedGTE(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldTotalAgentsInvolved, v))
}

// TotalAgentsInvolvedLT applies the LT predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedLT(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldTotalAgentsInvolved, v))
}

// TotalAgentsInvolvedLTE applies the LTE predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedLTE(v int) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldTotalAgentsInvolved, v))
}

// TotalAgentsInvolvedIsNil applies the IsNil predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldTotalAgentsInvolved))
}

// TotalAgentsInvolvedNotNil applies the NotNil predicate on the "total_agents_involved" field.
func TotalAgentsInvolvedNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldTotalAgentsInvolved))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldDurationSeconds))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.FieldContainsFold(FieldPodID, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ExecutionMessage) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHumanInputs applies the HasEdge predicate on the "human_inputs" edge.
func HasHumanInputs() predicate.WorkflowExecution {
	return predicate.WorkflowExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HumanInputsTable, HumanInputsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHumanInputsWith applies the HasEdge predicate on the "human_inputs" edge with a given conditions (other predicates).
func HasHumanInputsWith(preds ...predicate.HumanInputInteraction) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(func(s *sql.Selector) {
		step := newHumanInputsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowExecution) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowExecution) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowExecution) predicate.WorkflowExecution {
	return predicate.WorkflowExecution(sql.NotPredicates(p))
}
