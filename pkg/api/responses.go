package api

import (
	"time"

	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/queue"
)

// ExecutionResponse is the API view of one execution.
type ExecutionResponse struct {
	ExecutionID         string                 `json:"execution_id"`
	ProjectID           string                 `json:"project_id,omitempty"`
	Status              models.ExecutionStatus `json:"status"`
	Input               string                 `json:"input,omitempty"`
	FinalOutput         string                 `json:"final_output,omitempty"`
	ResultSummary       string                 `json:"result_summary,omitempty"`
	TotalAgentsInvolved int                    `json:"total_agents_involved,omitempty"`
	ErrorMessage        string                 `json:"error_message,omitempty"`
	AwaitingHumanInput  string                 `json:"awaiting_human_input,omitempty"`
	HumanInputAgentID   string                 `json:"human_input_agent_id,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	StartedAt           *time.Time             `json:"started_at,omitempty"`
	CompletedAt         *time.Time             `json:"completed_at,omitempty"`
	DurationSeconds     *float64               `json:"duration_seconds,omitempty"`
}

// ExecutionDetailResponse is returned by GET /api/v1/executions/:id.
type ExecutionDetailResponse struct {
	ExecutionResponse
	Messages []models.Message `json:"messages"`
}

// ExecutionListResponse is one page of executions.
type ExecutionListResponse struct {
	Executions []ExecutionResponse `json:"executions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// CreateExecutionResponse is returned by POST /api/v1/executions.
type CreateExecutionResponse struct {
	ExecutionID string                 `json:"execution_id"`
	Status      models.ExecutionStatus `json:"status"`
}

// CancelResponse is returned by POST /api/v1/executions/:id/cancel.
type CancelResponse struct {
	ExecutionID string `json:"execution_id"`
	Message     string `json:"message"`
}

// SubmitHumanInputResponse is returned by POST /api/v1/human-input/submit.
type SubmitHumanInputResponse struct {
	ExecutionID string                 `json:"execution_id"`
	Status      models.ExecutionStatus `json:"status"`
	Message     string                 `json:"message"`
}

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	Checks        map[string]HealthCheck `json:"checks"`
	Database      *database.HealthStatus `json:"database,omitempty"`
	WorkerPool    *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Configuration ConfigurationStats     `json:"configuration"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	LLMProviders int `json:"llm_providers"`
	WorkerCount  int `json:"worker_count"`
}

func executionResponse(e *models.Execution) ExecutionResponse {
	resp := ExecutionResponse{
		ExecutionID:         e.ID,
		ProjectID:           e.ProjectID,
		Status:              e.Status,
		Input:               e.Input,
		FinalOutput:         e.FinalOutput,
		ResultSummary:       e.ResultSummary,
		TotalAgentsInvolved: e.TotalAgentsInvolved,
		ErrorMessage:        e.ErrorMessage,
		CreatedAt:           e.CreatedAt,
		StartedAt:           e.StartedAt,
		CompletedAt:         e.CompletedAt,
	}
	if e.Status == models.StatusAwaitingHumanInput {
		resp.AwaitingHumanInput = e.AwaitingHumanInput
		resp.HumanInputAgentID = e.HumanInputAgentID
	}
	if e.StartedAt != nil && e.CompletedAt != nil {
		d := e.CompletedAt.Sub(*e.StartedAt).Seconds()
		resp.DurationSeconds = &d
	}
	return resp
}
