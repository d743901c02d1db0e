// Package models defines the service-layer view of executions and their
// history, shared between the engine, the HTTP API, and storage.
package models

import "time"

// ExecutionStatus is the lifecycle state of a workflow execution.
type ExecutionStatus string

// Execution statuses.
const (
	StatusPending            ExecutionStatus = "pending"
	StatusRunning            ExecutionStatus = "running"
	StatusAwaitingHumanInput ExecutionStatus = "awaiting_human_input"
	StatusCompleted          ExecutionStatus = "completed"
	StatusFailed             ExecutionStatus = "failed"
	StatusStopped            ExecutionStatus = "stopped"
)

// MessageType classifies entries in an execution's message log.
type MessageType string

// Message types.
const (
	MessageAgentResponse   MessageType = "agent_response"
	MessageHumanInput      MessageType = "human_input"
	MessageReflectionFinal MessageType = "reflection_final"
	MessageSystem          MessageType = "system"
	MessageError           MessageType = "error"
)

// HumanInputAction is what a human asked the engine to do with their input.
type HumanInputAction string

// Human input actions.
const (
	ActionSubmit  HumanInputAction = "submit"
	ActionIterate HumanInputAction = "iterate"
)

// HumanInputContext is persisted while an execution waits for a human. For
// reflection pauses it carries the loop state needed to continue.
type HumanInputContext struct {
	InputSources       []string `json:"input_sources,omitempty"`
	Inputs             string   `json:"inputs,omitempty"`
	ReflectionSource   string   `json:"reflection_source,omitempty"`
	ReflectionSourceID string   `json:"reflection_source_id,omitempty"`
	Iteration          int      `json:"iteration,omitempty"`
}

// Execution is the engine's view of one workflow execution.
type Execution struct {
	ID            string
	ProjectID     string
	Workflow      map[string]any
	Input         string
	Status        ExecutionStatus
	ExecutedNodes map[string]string

	HumanInputRequired    bool
	AwaitingHumanInput    string
	HumanInputAgentID     string
	HumanInputContext     *HumanInputContext
	HumanInputRequestedAt *time.Time
	HumanInputReceivedAt  *time.Time

	FinalOutput         string
	ResultSummary       string
	TotalAgentsInvolved int
	ErrorMessage        string

	PodID       string
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Message is one entry in an execution's ordered message log.
type Message struct {
	AgentName string         `json:"agent_name"`
	AgentType string         `json:"agent_type"`
	Content   string         `json:"content"`
	Type      MessageType    `json:"message_type"`
	Sequence  int            `json:"sequence"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// LLMInteraction is an audit record of one provider call.
type LLMInteraction struct {
	NodeID         string
	Provider       string
	Model          string
	Purpose        string
	Prompt         string
	Response       string
	ErrorMessage   string
	TokenCount     int
	ResponseTimeMs int
}

// FinalizeRequest closes out an execution.
type FinalizeRequest struct {
	Status              ExecutionStatus
	FinalOutput         string
	ResultSummary       string
	TotalAgentsInvolved int
	ErrorMessage        string
}

// PauseRequest suspends an execution at a human-input node.
type PauseRequest struct {
	AgentName string
	AgentID   string
	Context   *HumanInputContext
	// ExecutedNodes is the scheduler's local node output map at pause
	// time. It wins over storage on conflicting keys because it reflects
	// the just-finished nodes.
	ExecutedNodes map[string]string
}

// CreateExecutionRequest submits a workflow graph for execution. ID is
// optional; a UUID is assigned when empty.
type CreateExecutionRequest struct {
	ID        string
	ProjectID string
	Workflow  map[string]any
	Input     string
}

// ExecutionFilters narrows execution list queries.
type ExecutionFilters struct {
	ProjectID string
	Status    string
	Limit     int
	Offset    int
}

// ExecutionList is one page of executions.
type ExecutionList struct {
	Executions []*Execution
	TotalCount int
	Limit      int
	Offset     int
}

// HumanInputRecord is the audit trail entry for one human interaction.
type HumanInputRecord struct {
	AgentID   string
	AgentName string
	Input     string
	Action    HumanInputAction
	Iteration int
}

// ResumeRequest carries a human's answer back into a paused execution.
type ResumeRequest struct {
	ExecutionID string
	Input       string
	Action      HumanInputAction
}
