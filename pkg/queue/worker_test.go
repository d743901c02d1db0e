package queue

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/models"
)

// memStore is an in-memory ExecutionStore for worker and pool tests.
type memStore struct {
	mu         sync.Mutex
	executions map[string]*models.Execution
}

func newMemStore() *memStore {
	return &memStore{executions: make(map[string]*models.Execution)}
}

func (m *memStore) add(id string, status models.ExecutionStatus, createdAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executions[id] = &models.Execution{
		ID:            id,
		ProjectID:     "proj-1",
		Status:        status,
		ExecutedNodes: map[string]string{},
		CreatedAt:     createdAt,
	}
}

func (m *memStore) setStatus(id string, status models.ExecutionStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executions[id].Status = status
}

func (m *memStore) status(id string) models.ExecutionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.executions[id].Status
}

func (m *memStore) ClaimNextPending(_ context.Context, podID string) (*models.Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var pending []*models.Execution
	for _, e := range m.executions {
		if e.Status == models.StatusPending {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })

	claimed := pending[0]
	claimed.Status = models.StatusRunning
	claimed.PodID = podID
	now := time.Now()
	claimed.StartedAt = &now

	copied := *claimed
	return &copied, nil
}

func (m *memStore) Get(_ context.Context, executionID string) (*models.Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.executions[executionID]
	if !ok {
		return nil, fmt.Errorf("execution %s not found", executionID)
	}
	copied := *e
	return &copied, nil
}

func (m *memStore) Finalize(_ context.Context, executionID string, req models.FinalizeRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.executions[executionID]
	e.Status = req.Status
	e.FinalOutput = req.FinalOutput
	e.ErrorMessage = req.ErrorMessage
	now := time.Now()
	e.CompletedAt = &now
	return nil
}

func (m *memStore) Requeue(_ context.Context, executionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.executions[executionID]
	e.Status = models.StatusPending
	e.PodID = ""
	e.StartedAt = nil
	return nil
}

func (m *memStore) QueueDepth(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	depth := 0
	for _, e := range m.executions {
		if e.Status == models.StatusPending {
			depth++
		}
	}
	return depth, nil
}

func (m *memStore) RunningCount(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, e := range m.executions {
		if e.Status == models.StatusRunning {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ActiveCount(ctx context.Context, podID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, e := range m.executions {
		if e.Status == models.StatusRunning && e.PodID == podID {
			count++
		}
	}
	return count, nil
}

func (m *memStore) FindOrphaned(_ context.Context, podID string) ([]*models.Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orphans []*models.Execution
	for _, e := range m.executions {
		if e.Status == models.StatusRunning && e.PodID == podID {
			copied := *e
			orphans = append(orphans, &copied)
		}
	}
	return orphans, nil
}

func (m *memStore) StaleRunning(_ context.Context, cutoff time.Time) ([]*models.Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stale []*models.Execution
	for _, e := range m.executions {
		if e.Status != models.StatusRunning {
			continue
		}
		if (e.StartedAt != nil && e.StartedAt.Before(cutoff)) ||
			(e.StartedAt == nil && e.CreatedAt.Before(cutoff)) {
			copied := *e
			stale = append(stale, &copied)
		}
	}
	return stale, nil
}

// funcRunner adapts a function to ExecutionRunner.
type funcRunner func(ctx context.Context, executionID string) error

func (f funcRunner) Execute(ctx context.Context, executionID string) error {
	return f(ctx, executionID)
}

// noopRegistry satisfies ExecutionRegistry for direct worker tests.
type noopRegistry struct{}

func (noopRegistry) RegisterExecution(string, context.CancelFunc) {}
func (noopRegistry) UnregisterExecution(string)                   {}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.ExecutionTimeout = time.Second
	return cfg
}

func TestWorkerPollAndProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("claims oldest pending execution first", func(t *testing.T) {
		store := newMemStore()
		base := time.Now()
		store.add("ex-2", models.StatusPending, base.Add(time.Second))
		store.add("ex-1", models.StatusPending, base)

		var ran []string
		runner := funcRunner(func(_ context.Context, id string) error {
			ran = append(ran, id)
			return store.Finalize(ctx, id, models.FinalizeRequest{Status: models.StatusCompleted, FinalOutput: "done"})
		})

		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(ctx))
		require.NoError(t, w.pollAndProcess(ctx))

		assert.Equal(t, []string{"ex-1", "ex-2"}, ran)
		assert.Equal(t, models.StatusCompleted, store.status("ex-1"))
		assert.Equal(t, 2, w.Health().ExecutionsProcessed)
	})

	t.Run("empty queue", func(t *testing.T) {
		store := newMemStore()
		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), nil, noopRegistry{})

		err := w.pollAndProcess(ctx)
		assert.ErrorIs(t, err, ErrNoExecutionsAvailable)
	})

	t.Run("global capacity limit", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-busy", models.StatusRunning, time.Now())
		store.add("ex-waiting", models.StatusPending, time.Now())

		cfg := fastQueueConfig()
		cfg.MaxConcurrentExecutions = 1
		w := NewWorker("w-0", "pod-a", store, cfg, nil, noopRegistry{})

		err := w.pollAndProcess(ctx)
		assert.ErrorIs(t, err, ErrAtCapacity)
		assert.Equal(t, models.StatusPending, store.status("ex-waiting"))
	})

	t.Run("paused execution releases the claim", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-1", models.StatusPending, time.Now())

		runner := funcRunner(func(_ context.Context, id string) error {
			store.setStatus(id, models.StatusAwaitingHumanInput)
			return nil
		})

		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(ctx))

		assert.Equal(t, models.StatusAwaitingHumanInput, store.status("ex-1"))
		assert.Equal(t, WorkerStatusIdle, WorkerStatus(w.Health().Status))
	})

	t.Run("runner error without terminal status fails the execution", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-1", models.StatusPending, time.Now())

		runner := funcRunner(func(_ context.Context, _ string) error {
			return fmt.Errorf("store write lost")
		})

		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(ctx))

		assert.Equal(t, models.StatusFailed, store.status("ex-1"))
		exec, err := store.Get(ctx, "ex-1")
		require.NoError(t, err)
		assert.Contains(t, exec.ErrorMessage, "store write lost")
	})

	t.Run("runner wrote failed status itself", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-1", models.StatusPending, time.Now())

		runner := funcRunner(func(_ context.Context, id string) error {
			_ = store.Finalize(ctx, id, models.FinalizeRequest{Status: models.StatusFailed, ErrorMessage: "node exploded"})
			return fmt.Errorf("node exploded")
		})

		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(ctx))

		exec, err := store.Get(ctx, "ex-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, exec.Status)
		assert.Equal(t, "node exploded", exec.ErrorMessage)
	})

	t.Run("claim timeout requeues instead of failing", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-1", models.StatusPending, time.Now())

		runner := funcRunner(func(runCtx context.Context, _ string) error {
			<-runCtx.Done()
			return runCtx.Err()
		})

		cfg := fastQueueConfig()
		cfg.ExecutionTimeout = 20 * time.Millisecond
		w := NewWorker("w-0", "pod-a", store, cfg, runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(ctx))

		exec, err := store.Get(ctx, "ex-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, exec.Status)
		assert.Empty(t, exec.PodID)
		assert.Nil(t, exec.StartedAt)
	})

	t.Run("shutdown cancellation requeues", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-1", models.StatusPending, time.Now())

		runCtx, cancel := context.WithCancel(context.Background())
		runner := funcRunner(func(execCtx context.Context, _ string) error {
			cancel()
			<-execCtx.Done()
			return execCtx.Err()
		})

		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(runCtx))

		assert.Equal(t, models.StatusPending, store.status("ex-1"))
	})

	t.Run("stopped via cancel keeps terminal status", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-1", models.StatusPending, time.Now())

		runner := funcRunner(func(execCtx context.Context, id string) error {
			// An API cancel writes the stopped status, then cancels the context.
			store.setStatus(id, models.StatusStopped)
			return context.Canceled
		})

		w := NewWorker("w-0", "pod-a", store, fastQueueConfig(), runner, noopRegistry{})
		require.NoError(t, w.pollAndProcess(ctx))

		assert.Equal(t, models.StatusStopped, store.status("ex-1"))
	})
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := fastQueueConfig()
	cfg.PollInterval = 100 * time.Millisecond
	cfg.PollIntervalJitter = 50 * time.Millisecond
	w := NewWorker("w-0", "pod-a", newMemStore(), cfg, nil, noopRegistry{})

	for i := 0; i < 50; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 50*time.Millisecond)
		assert.LessOrEqual(t, d, 150*time.Millisecond)
	}

	cfg.PollIntervalJitter = 0
	assert.Equal(t, 100*time.Millisecond, w.pollInterval())
}
