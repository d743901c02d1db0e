package api

// CreateExecutionRequest is the HTTP request body for POST /api/v1/executions.
type CreateExecutionRequest struct {
	ProjectID string                 `json:"project_id,omitempty"`
	Workflow  map[string]interface{} `json:"workflow" binding:"required"`
	Input     string                 `json:"input" binding:"required"`
}

// SubmitHumanInputRequest is the HTTP request body for POST /api/v1/human-input/submit.
type SubmitHumanInputRequest struct {
	ExecutionID string `json:"execution_id" binding:"required"`
	HumanInput  string `json:"human_input" binding:"required"`
	Action      string `json:"action,omitempty"`
}

// PutCredentialRequest is the HTTP request body for PUT /api/v1/projects/:id/credentials.
type PutCredentialRequest struct {
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}
