package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and runs executions.
type Worker struct {
	id     string
	podID  string
	store  ExecutionStore
	config *config.QueueConfig
	runner ExecutionRunner
	pool   ExecutionRegistry

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                  sync.RWMutex
	status              WorkerStatus
	currentExecutionID  string
	executionsProcessed int
	lastActivity        time.Time
}

// ExecutionRegistry is the subset of WorkerPool used by Worker for cancel registration.
type ExecutionRegistry interface {
	RegisterExecution(executionID string, cancel context.CancelFunc)
	UnregisterExecution(executionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, store ExecutionStore, cfg *config.QueueConfig, runner ExecutionRunner, pool ExecutionRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
		config:       cfg,
		runner:       runner,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              string(w.status),
		CurrentExecutionID:  w.currentExecutionID,
		ExecutionsProcessed: w.executionsProcessed,
		LastActivity:        w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoExecutionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing execution", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an execution, and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	runningCount, err := w.store.RunningCount(ctx)
	if err != nil {
		return fmt.Errorf("checking running executions: %w", err)
	}
	if runningCount >= w.config.MaxConcurrentExecutions {
		return ErrAtCapacity
	}

	// 2. Claim next execution
	execution, err := w.store.ClaimNextPending(ctx, w.podID)
	if err != nil {
		return err
	}
	if execution == nil {
		return ErrNoExecutionsAvailable
	}

	log := slog.With("execution_id", execution.ID, "worker_id", w.id)
	log.Info("Execution claimed")

	w.setStatus(WorkerStatusWorking, execution.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create execution context with timeout
	execCtx, cancelExecution := context.WithTimeout(ctx, w.config.ExecutionTimeout)
	defer cancelExecution()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterExecution(execution.ID, cancelExecution)
	defer w.pool.UnregisterExecution(execution.ID)

	// 5. Run the execution. The runner writes node outputs, messages, and
	//    its own terminal status progressively.
	runErr := w.runner.Execute(execCtx, execution.ID)

	// 6. Settle the claim (use background context — execution ctx may be cancelled)
	if err := w.settleExecution(context.Background(), execution.ID, execCtx, runErr); err != nil {
		log.Error("Failed to settle execution claim", "error", err)
		return err
	}

	w.mu.Lock()
	w.executionsProcessed++
	w.mu.Unlock()

	log.Info("Execution processing complete")
	return nil
}

// settleExecution closes out a claim the runner did not. The runner writes
// terminal statuses itself; anything still running here either hit the claim
// deadline, was released by shutdown, or failed before finalizing.
func (w *Worker) settleExecution(ctx context.Context, executionID string, execCtx context.Context, runErr error) error {
	execution, err := w.store.Get(ctx, executionID)
	if err != nil {
		return fmt.Errorf("refetching execution after run: %w", err)
	}

	switch execution.Status {
	case models.StatusCompleted, models.StatusFailed, models.StatusStopped:
		// Runner (or an API cancel) already wrote the terminal state.
		return nil
	case models.StatusAwaitingHumanInput:
		// Paused for human input. The claim is released; resume puts the
		// execution back in the queue.
		return nil
	case models.StatusPending:
		// Another pod's orphan scan already requeued this claim.
		return nil
	}

	switch {
	case errors.Is(execCtx.Err(), context.DeadlineExceeded):
		// The claim timed out, not the workflow. Completed nodes replay
		// from durable state on the next claim.
		slog.Warn("Execution hit claim timeout, requeueing",
			"execution_id", executionID,
			"timeout", w.config.ExecutionTimeout)
		return w.store.Requeue(ctx, executionID)
	case errors.Is(execCtx.Err(), context.Canceled):
		// Shutdown released the claim mid-flight.
		slog.Info("Execution released during shutdown, requeueing",
			"execution_id", executionID)
		return w.store.Requeue(ctx, executionID)
	case runErr != nil:
		return w.store.Finalize(ctx, executionID, models.FinalizeRequest{
			Status:       models.StatusFailed,
			ErrorMessage: runErr.Error(),
		})
	default:
		return w.store.Finalize(ctx, executionID, models.FinalizeRequest{
			Status:       models.StatusFailed,
			ErrorMessage: "runner returned without a terminal status",
		})
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, executionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentExecutionID = executionID
	w.lastActivity = time.Now()
}
