package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/workflow"
)

// maxInputBytes caps the submitted query size.
const maxInputBytes = 100_000

// createExecutionHandler handles POST /api/v1/executions.
// The workflow graph is validated up front; a graph that would deadlock
// or reference unknown nodes is rejected before anything is persisted.
func (s *Server) createExecutionHandler(c *gin.Context) {
	var req CreateExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Input) > maxInputBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "input exceeds maximum length of 100,000 characters"})
		return
	}

	if _, err := workflow.FromMap(req.Workflow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow: " + err.Error()})
		return
	}

	execution, err := s.executions.CreateExecution(c.Request.Context(), models.CreateExecutionRequest{
		ProjectID: req.ProjectID,
		Workflow:  req.Workflow,
		Input:     req.Input,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	slog.Info("Execution submitted",
		"execution_id", execution.ID, "author", extractAuthor(c))

	c.JSON(http.StatusAccepted, CreateExecutionResponse{
		ExecutionID: execution.ID,
		Status:      execution.Status,
	})
}

// getExecutionHandler handles GET /api/v1/executions/:id.
func (s *Server) getExecutionHandler(c *gin.Context) {
	executionID := c.Param("id")

	execution, err := s.executions.Get(c.Request.Context(), executionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	messages, err := s.executions.Messages(c.Request.Context(), executionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, ExecutionDetailResponse{
		ExecutionResponse: executionResponse(execution),
		Messages:          messages,
	})
}

// listExecutionsHandler handles GET /api/v1/executions.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	filters := models.ExecutionFilters{Limit: 25}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-100"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = n
	}
	if v := c.Query("status"); v != "" {
		switch models.ExecutionStatus(v) {
		case models.StatusPending, models.StatusRunning, models.StatusAwaitingHumanInput,
			models.StatusCompleted, models.StatusFailed, models.StatusStopped:
			filters.Status = v
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
	}
	filters.ProjectID = c.Query("project_id")

	list, err := s.executions.List(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	executions := make([]ExecutionResponse, 0, len(list.Executions))
	for _, e := range list.Executions {
		executions = append(executions, executionResponse(e))
	}

	c.JSON(http.StatusOK, ExecutionListResponse{
		Executions: executions,
		TotalCount: list.TotalCount,
		Limit:      list.Limit,
		Offset:     list.Offset,
	})
}

// cancelExecutionHandler handles POST /api/v1/executions/:id/cancel.
// The DB status flips first so no other pod picks the execution up, then
// the local worker pool cancels the run if this pod holds the claim.
func (s *Server) cancelExecutionHandler(c *gin.Context) {
	executionID := c.Param("id")

	if err := s.executions.Cancel(c.Request.Context(), executionID); err != nil {
		mapServiceError(c, err)
		return
	}

	if s.workerPool != nil {
		s.workerPool.CancelExecution(executionID)
	}

	slog.Info("Execution cancellation requested",
		"execution_id", executionID, "author", extractAuthor(c))

	c.JSON(http.StatusAccepted, CancelResponse{
		ExecutionID: executionID,
		Message:     "Execution cancellation requested",
	})
}
