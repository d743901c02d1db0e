// Package queue provides execution queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/weftworks/weft/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoExecutionsAvailable indicates no pending executions are in the queue.
	ErrNoExecutionsAvailable = errors.New("no executions available")

	// ErrAtCapacity indicates the global concurrent execution limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// ExecutionRunner drives one claimed execution.
//
// The runner owns the ENTIRE execution lifecycle internally:
//   - Schedules the workflow graph level by level from durable state
//   - Writes node outputs, messages, and interactions progressively
//   - Writes its own terminal status (completed / failed) or pause state
//
// The worker only handles: claiming, the execution timeout, cancel
// registration, and settling claims the runner did not close out.
// Satisfied by engine.Engine.
type ExecutionRunner interface {
	Execute(ctx context.Context, executionID string) error
}

// ExecutionStore is the persistence surface the queue needs.
// Implemented by services.Store.
type ExecutionStore interface {
	ClaimNextPending(ctx context.Context, podID string) (*models.Execution, error)
	Get(ctx context.Context, executionID string) (*models.Execution, error)
	Finalize(ctx context.Context, executionID string, req models.FinalizeRequest) error
	Requeue(ctx context.Context, executionID string) error
	QueueDepth(ctx context.Context) (int, error)
	RunningCount(ctx context.Context) (int, error)
	ActiveCount(ctx context.Context, podID string) (int, error)
	FindOrphaned(ctx context.Context, podID string) ([]*models.Execution, error)
	StaleRunning(ctx context.Context, cutoff time.Time) ([]*models.Execution, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveExecutions int            `json:"active_executions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                  string    `json:"id"`
	Status              string    `json:"status"` // "idle" or "working"
	CurrentExecutionID  string    `json:"current_execution_id,omitempty"`
	ExecutionsProcessed int       `json:"executions_processed"`
	LastActivity        time.Time `json:"last_activity"`
}
