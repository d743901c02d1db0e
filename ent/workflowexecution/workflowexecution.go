// Code generated by ent, DO NOT EDIT.

package workflowexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowexecution type in the database.
	Label = "workflow_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldWorkflow holds the string denoting the workflow field in the database.
	FieldWorkflow = "workflow"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExecutedNodes holds the string denoting the executed_nodes field in the database.
	FieldExecutedNodes = "executed_nodes"
	// FieldConversationHistory holds the string denoting the conversation_history field in the database.
	FieldConversationHistory = "conversation_history"
	// FieldHumanInputRequired holds the string denoting the human_input_required field in the database.
	FieldHumanInputRequired = "human_input_required"
	// FieldAwaitingHumanInputAgent holds the string denoting the awaiting_human_input_agent field in the database.
	FieldAwaitingHumanInputAgent = "awaiting_human_input_agent"
	// FieldHumanInputAgentID holds the string denoting the human_input_agent_id field in the database.
	FieldHumanInputAgentID = "human_input_agent_id"
	// FieldHumanInputContext holds the string denoting the human_input_context field in the database.
	FieldHumanInputContext = "human_input_context"
	// FieldHumanInputRequestedAt holds the string denoting the human_input_requested_at field in the database.
	FieldHumanInputRequestedAt = "human_input_requested_at"
	// FieldHumanInputReceivedAt holds the string denoting the human_input_received_at field in the database.
	FieldHumanInputReceivedAt = "human_input_received_at"
	// FieldDelegateConversations holds the string denoting the delegate_conversations field in the database.
	FieldDelegateConversations = "delegate_conversations"
	// FieldFinalOutput holds the string denoting the final_output field in the database.
	FieldFinalOutput = "final_output"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldTotalAgentsInvolved holds the string denoting the total_agents_involved field in the database.
	FieldTotalAgentsInvolved = "total_agents_involved"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeLlmInteractions holds the string denoting the llm_interactions edge name in mutations.
	EdgeLlmInteractions = "llm_interactions"
	// EdgeHumanInputs holds the string denoting the human_inputs edge name in mutations.
	EdgeHumanInputs = "human_inputs"
	// ExecutionMessageFieldID holds the string denoting the ID field of the ExecutionMessage.
	ExecutionMessageFieldID = "message_id"
	// LLMInteractionFieldID holds the string denoting the ID field of the LLMInteraction.
	LLMInteractionFieldID = "llm_interaction_id"
	// HumanInputInteractionFieldID holds the string denoting the ID field of the HumanInputInteraction.
	HumanInputInteractionFieldID = "interaction_id"
	// Table holds the table name of the workflowexecution in the database.
	Table = "workflow_executions"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "execution_messages"
	// MessagesInverseTable is the table name for the ExecutionMessage entity.
	// It exists in this package in order to avoid circular dependency with the "executionmessage" package.
	MessagesInverseTable = "execution_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "execution_id"
	// LlmInteractionsTable is the table that holds the llm_interactions relation/edge.
	LlmInteractionsTable = "llm_interactions"
	// LlmInteractionsInverseTable is the table name for the LLMInteraction entity.
	// It exists in this package in order to avoid circular dependency with the "llminteraction" package.
	LlmInteractionsInverseTable = "llm_interactions"
	// LlmInteractionsColumn is the table column denoting the llm_interactions relation/edge.
	LlmInteractionsColumn = "execution_id"
	// HumanInputsTable is the table that holds the human_inputs relation/edge.
	HumanInputsTable = "human_input_interactions"
	// HumanInputsInverseTable is the table name for the HumanInputInteraction entity.
	// It exists in this package in order to avoid circular dependency with the "humaninputinteraction" package.
	HumanInputsInverseTable = "human_input_interactions"
	// HumanInputsColumn is the table column denoting the human_inputs relation/edge.
	HumanInputsColumn = "execution_id"
)

// Columns holds all SQL columns for workflowexecution fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldWorkflow,
	FieldInput,
	FieldStatus,
	FieldExecutedNodes,
	FieldConversationHistory,
	FieldHumanInputRequired,
	FieldAwaitingHumanInputAgent,
	FieldHumanInputAgentID,
	FieldHumanInputContext,
	FieldHumanInputRequestedAt,
	FieldHumanInputReceivedAt,
	FieldDelegateConversations,
	FieldFinalOutput,
	FieldResultSummary,
	FieldTotalAgentsInvolved,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationSeconds,
	FieldPodID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultHumanInputRequired holds the default value on creation for the "human_input_required" field.
	DefaultHumanInputRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending            Status = "pending"
	StatusRunning            Status = "running"
	StatusAwaitingHumanInput Status = "awaiting_human_input"
	StatusCompleted          Status = "completed"
	StatusFailed             Status = "failed"
	StatusStopped            Status = "stopped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusAwaitingHumanInput, StatusCompleted, StatusFailed, StatusStopped:
		return nil
	default:
		return fmt.Errorf("workflowexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkflowExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByInput orders the results by the input field.
func ByInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInput, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConversationHistory orders the results by the conversation_history field.
func ByConversationHistory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationHistory, opts...).ToFunc()
}

// ByHumanInputRequired orders the results by the human_input_required field.
func ByHumanInputRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanInputRequired, opts...).ToFunc()
}

// ByAwaitingHumanInputAgent orders the results by the awaiting_human_input_agent field.
func ByAwaitingHumanInputAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwaitingHumanInputAgent, opts...).ToFunc()
}

// ByHumanInputAgentID orders the results by the human_input_agent_id field.
func ByHumanInputAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanInputAgentID, opts...).ToFunc()
}

// ByHumanInputRequestedAt orders the results by the human_input_requested_at field.
func ByHumanInputRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanInputRequestedAt, opts...).ToFunc()
}

// ByHumanInputReceivedAt orders the results by the human_input_received_at field.
func ByHumanInputReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanInputReceivedAt, opts...).ToFunc()
}

// ByFinalOutput orders the results by the final_output field.
func ByFinalOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalOutput, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByTotalAgentsInvolved orders the results by the total_agents_involved field.
func ByTotalAgentsInvolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAgentsInvolved, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLlmInteractionsCount orders the results by llm_interactions count.
func ByLlmInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLlmInteractionsStep(), opts...)
	}
}

// ByLlmInteractions orders the results by llm_interactions terms.
func ByLlmInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHumanInputsCount orders the results by human_inputs count.
func ByHumanInputsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHumanInputsStep(), opts...)
	}
}

// ByHumanInputs orders the results by human_inputs terms.
func ByHumanInputs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHumanInputsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, ExecutionMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newLlmInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmInteractionsInverseTable, LLMInteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
	)
}
func newHumanInputsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HumanInputsInverseTable, HumanInputInteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HumanInputsTable, HumanInputsColumn),
	)
}
