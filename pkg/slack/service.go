package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/weftworks/weft/pkg/models"
)

const postTimeout = 10 * time.Second

// ExecutionGetter loads an execution for notification enrichment.
// Implemented by services.ExecutionService.
type ExecutionGetter interface {
	Get(ctx context.Context, executionID string) (*models.Execution, error)
}

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service posts terminal execution notifications. Nil-safe: all methods are
// no-ops on a nil Service, so callers never branch on whether Slack is
// configured.
type Service struct {
	client       *Client
	executions   ExecutionGetter
	dashboardURL string
}

// NewService creates a notification service. Returns nil when Token or
// Channel is empty (Slack not configured).
func NewService(cfg ServiceConfig, executions ExecutionGetter) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		executions:   executions,
		dashboardURL: cfg.DashboardURL,
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, executions ExecutionGetter, dashboardURL string) *Service {
	return &Service{
		client:       client,
		executions:   executions,
		dashboardURL: dashboardURL,
	}
}

// ExecutionStatusChanged implements the engine's notifier contract. Only
// terminal transitions post a message; delivery runs in the background so
// the scheduling loop never waits on Slack.
func (s *Service) ExecutionStatusChanged(executionID string, status models.ExecutionStatus, detail string) {
	if s == nil {
		return
	}
	switch status {
	case models.StatusCompleted, models.StatusFailed, models.StatusStopped:
	default:
		return
	}

	go s.postOutcome(executionID, status, detail)
}

func (s *Service) postOutcome(executionID string, status models.ExecutionStatus, detail string) {
	ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
	defer cancel()

	outcome := ExecutionOutcome{
		ExecutionID:  executionID,
		Status:       status,
		ErrorMessage: detail,
	}
	if s.executions != nil {
		if execution, err := s.executions.Get(ctx, executionID); err != nil {
			slog.Warn("Failed to load execution for Slack notification",
				"execution_id", executionID, "error", err)
		} else {
			outcome.ProjectID = execution.ProjectID
			outcome.Summary = execution.ResultSummary
			if execution.ErrorMessage != "" {
				outcome.ErrorMessage = execution.ErrorMessage
			}
		}
	}

	blocks := BuildOutcomeMessage(outcome, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, postTimeout); err != nil {
		slog.Error("Failed to send Slack notification",
			"execution_id", executionID, "status", status, "error", err)
	}
}
