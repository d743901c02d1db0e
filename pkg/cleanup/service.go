// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/weftworks/weft/pkg/config"
)

// ExecutionRetirer deletes executions past the retention window.
// Implemented by services.ExecutionService.
type ExecutionRetirer interface {
	DeleteOldExecutions(ctx context.Context, retentionDays int) (int, error)
}

// Service periodically hard-deletes terminal executions older than the
// retention window; message and interaction rows follow via FK cascade.
// Deletion is idempotent and safe to run from multiple pods.
type Service struct {
	config     *config.RetentionConfig
	executions ExecutionRetirer

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, executions ExecutionRetirer) *Service {
	return &Service{
		config:     cfg,
		executions: executions,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteOldExecutions(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteOldExecutions(ctx)
		}
	}
}

// Deletion runs on a fresh context so an in-flight pass finishes even
// when the loop context is being cancelled.
func (s *Service) deleteOldExecutions(_ context.Context) {
	deleteCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := s.executions.DeleteOldExecutions(deleteCtx, s.config.ExecutionRetentionDays)
	if err != nil {
		slog.Error("Retention: execution cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old executions", "count", count)
	}
}
