package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/models"
)

// pendingHumanInputHandler handles GET /api/v1/human-input/pending.
// Returns every execution currently paused for a human.
func (s *Server) pendingHumanInputHandler(c *gin.Context) {
	list, err := s.executions.List(c.Request.Context(), models.ExecutionFilters{
		Status: string(models.StatusAwaitingHumanInput),
		Limit:  100,
	})
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

// submitHumanInputHandler handles POST /api/v1/human-input/submit.
// Routes the input into the paused execution and reports where the
// execution ended up: requeued for continuation, or paused again by a
// reflection round.
func (s *Server) submitHumanInputHandler(c *gin.Context) {
	if s.resumer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "human input is not available"})
		return
	}

	var req SubmitHumanInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action := models.HumanInputAction(req.Action)
	switch action {
	case "":
		action = models.ActionSubmit
	case models.ActionSubmit, models.ActionIterate:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action: must be submit or iterate"})
		return
	}

	err := s.resumer.Resume(c.Request.Context(), models.ResumeRequest{
		ExecutionID: req.ExecutionID,
		Input:       req.HumanInput,
		Action:      action,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	slog.Info("Human input submitted",
		"execution_id", req.ExecutionID, "action", action, "author", extractAuthor(c))

	execution, err := s.executions.Get(c.Request.Context(), req.ExecutionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	message := "Input accepted; execution continues"
	if execution.Status == models.StatusAwaitingHumanInput {
		message = "Input accepted; execution paused again for further input"
	}

	c.JSON(http.StatusOK, SubmitHumanInputResponse{
		ExecutionID: execution.ID,
		Status:      execution.Status,
		Message:     message,
	})
}
