// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// WorkflowExecution is the model entity for the WorkflowExecution schema.
type WorkflowExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning project (credential scope)
	ProjectID string `json:"project_id,omitempty"`
	// Submitted workflow graph (nodes + edges)
	Workflow map[string]interface{} `json:"workflow,omitempty"`
	// Initial prompt submitted with the graph
	Input string `json:"input,omitempty"`
	// Status holds the value of the "status" field.
	Status workflowexecution.Status `json:"status,omitempty"`
	// node_id -> textual output of each completed node
	ExecutedNodes map[string]string `json:"executed_nodes,omitempty"`
	// Concatenated transcript consumed by downstream prompts
	ConversationHistory string `json:"conversation_history,omitempty"`
	// HumanInputRequired holds the value of the "human_input_required" field.
	HumanInputRequired bool `json:"human_input_required,omitempty"`
	// AwaitingHumanInputAgent holds the value of the "awaiting_human_input_agent" field.
	AwaitingHumanInputAgent *string `json:"awaiting_human_input_agent,omitempty"`
	// HumanInputAgentID holds the value of the "human_input_agent_id" field.
	HumanInputAgentID *string `json:"human_input_agent_id,omitempty"`
	// Inputs shown to the human plus reflection routing state
	HumanInputContext map[string]interface{} `json:"human_input_context,omitempty"`
	// HumanInputRequestedAt holds the value of the "human_input_requested_at" field.
	HumanInputRequestedAt *time.Time `json:"human_input_requested_at,omitempty"`
	// HumanInputReceivedAt holds the value of the "human_input_received_at" field.
	HumanInputReceivedAt *time.Time `json:"human_input_received_at,omitempty"`
	// Structured GCM delegate transcripts for replay
	DelegateConversations map[string]interface{} `json:"delegate_conversations,omitempty"`
	// FinalOutput holds the value of the "final_output" field.
	FinalOutput *string `json:"final_output,omitempty"`
	// ResultSummary holds the value of the "result_summary" field.
	ResultSummary *string `json:"result_summary,omitempty"`
	// TotalAgentsInvolved holds the value of the "total_agents_involved" field.
	TotalAgentsInvolved *int `json:"total_agents_involved,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// When the execution was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the execution
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// For multi-replica coordination and orphan detection
	PodID *string `json:"pod_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowExecutionQuery when eager-loading is set.
	Edges        WorkflowExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowExecutionEdges holds the relations/edges for other nodes in the graph.
type WorkflowExecutionEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*ExecutionMessage `json:"messages,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// HumanInputs holds the value of the human_inputs edge.
	HumanInputs []*HumanInputInteraction `json:"human_inputs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) MessagesOrErr() ([]*ExecutionMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[1] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// HumanInputsOrErr returns the HumanInputs value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) HumanInputsOrErr() ([]*HumanInputInteraction, error) {
	if e.loadedTypes[2] {
		return e.HumanInputs, nil
	}
	return nil, &NotLoadedError{edge: "human_inputs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowexecution.FieldWorkflow, workflowexecution.FieldExecutedNodes, workflowexecution.FieldHumanInputContext, workflowexecution.FieldDelegateConversations:
			values[i] = new([]byte)
		case workflowexecution.FieldHumanInputRequired:
			values[i] = new(sql.NullBool)
		case workflowexecution.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case workflowexecution.FieldTotalAgentsInvolved:
			values[i] = new(sql.NullInt64)
		case workflowexecution.FieldID, workflowexecution.FieldProjectID, workflowexecution.FieldInput, workflowexecution.FieldStatus, workflowexecution.FieldConversationHistory, workflowexecution.FieldAwaitingHumanInputAgent, workflowexecution.FieldHumanInputAgentID, workflowexecution.FieldFinalOutput, workflowexecution.FieldResultSummary, workflowexecution.FieldErrorMessage, workflowexecution.FieldPodID:
			values[i] = new(sql.NullString)
		case workflowexecution.FieldHumanInputRequestedAt, workflowexecution.FieldHumanInputReceivedAt, workflowexecution.FieldCreatedAt, workflowexecution.FieldStartedAt, workflowexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowExecution fields.
func (_m *WorkflowExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowexecution.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case workflowexecution.FieldWorkflow:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field workflow", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Workflow); err != nil {
					return fmt.Errorf("unmarshal field workflow: %w", err)
				}
			}
		case workflowexecution.FieldInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value.Valid {
				_m.Input = value.String
			}
		case workflowexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflowexecution.Status(value.String)
			}
		case workflowexecution.FieldExecutedNodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field executed_nodes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutedNodes); err != nil {
					return fmt.Errorf("unmarshal field executed_nodes: %w", err)
				}
			}
		case workflowexecution.FieldConversationHistory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_history", values[i])
			} else if value.Valid {
				_m.ConversationHistory = value.String
			}
		case workflowexecution.FieldHumanInputRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field human_input_required", values[i])
			} else if value.Valid {
				_m.HumanInputRequired = value.Bool
			}
		case workflowexecution.FieldAwaitingHumanInputAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field awaiting_human_input_agent", values[i])
			} else if value.Valid {
				_m.AwaitingHumanInputAgent = new(string)
				*_m.AwaitingHumanInputAgent = value.String
			}
		case workflowexecution.FieldHumanInputAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_input_agent_id", values[i])
			} else if value.Valid {
				_m.HumanInputAgentID = new(string)
				*_m.HumanInputAgentID = value.String
			}
		case workflowexecution.FieldHumanInputContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field human_input_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HumanInputContext); err != nil {
					return fmt.Errorf("unmarshal field human_input_context: %w", err)
				}
			}
		case workflowexecution.FieldHumanInputRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field human_input_requested_at", values[i])
			} else if value.Valid {
				_m.HumanInputRequestedAt = new(time.Time)
				*_m.HumanInputRequestedAt = value.Time
			}
		case workflowexecution.FieldHumanInputReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field human_input_received_at", values[i])
			} else if value.Valid {
				_m.HumanInputReceivedAt = new(time.Time)
				*_m.HumanInputReceivedAt = value.Time
			}
		case workflowexecution.FieldDelegateConversations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field delegate_conversations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DelegateConversations); err != nil {
					return fmt.Errorf("unmarshal field delegate_conversations: %w", err)
				}
			}
		case workflowexecution.FieldFinalOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_output", values[i])
			} else if value.Valid {
				_m.FinalOutput = new(string)
				*_m.FinalOutput = value.String
			}
		case workflowexecution.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = new(string)
				*_m.ResultSummary = value.String
			}
		case workflowexecution.FieldTotalAgentsInvolved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_agents_involved", values[i])
			} else if value.Valid {
				_m.TotalAgentsInvolved = new(int)
				*_m.TotalAgentsInvolved = int(value.Int64)
			}
		case workflowexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workflowexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case workflowexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case workflowexecution.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case workflowexecution.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowExecution.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryMessages() *ExecutionMessageQuery {
	return NewWorkflowExecutionClient(_m.config).QueryMessages(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryLlmInteractions() *LLMInteractionQuery {
	return NewWorkflowExecutionClient(_m.config).QueryLlmInteractions(_m)
}

// QueryHumanInputs queries the "human_inputs" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryHumanInputs() *HumanInputInteractionQuery {
	return NewWorkflowExecutionClient(_m.config).QueryHumanInputs(_m)
}

// Update returns a builder for updating this WorkflowExecution.
// Note that you need to call WorkflowExecution.Unwrap() before calling this method if this WorkflowExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowExecution) Update() *WorkflowExecutionUpdateOne {
	return NewWorkflowExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowExecution) Unwrap() *WorkflowExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowExecution) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("workflow=")
	builder.WriteString(fmt.Sprintf("%v", _m.Workflow))
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(_m.Input)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("executed_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutedNodes))
	builder.WriteString(", ")
	builder.WriteString("conversation_history=")
	builder.WriteString(_m.ConversationHistory)
	builder.WriteString(", ")
	builder.WriteString("human_input_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.HumanInputRequired))
	builder.WriteString(", ")
	if v := _m.AwaitingHumanInputAgent; v != nil {
		builder.WriteString("awaiting_human_input_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HumanInputAgentID; v != nil {
		builder.WriteString("human_input_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("human_input_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.HumanInputContext))
	builder.WriteString(", ")
	if v := _m.HumanInputRequestedAt; v != nil {
		builder.WriteString("human_input_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.HumanInputReceivedAt; v != nil {
		builder.WriteString("human_input_received_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("delegate_conversations=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelegateConversations))
	builder.WriteString(", ")
	if v := _m.FinalOutput; v != nil {
		builder.WriteString("final_output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultSummary; v != nil {
		builder.WriteString("result_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TotalAgentsInvolved; v != nil {
		builder.WriteString("total_agents_involved=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowExecutions is a parsable slice of WorkflowExecution.
type WorkflowExecutions []*WorkflowExecution
