package queue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
)

func TestWorkerPoolLifecycle(t *testing.T) {
	t.Run("drains the queue and stops gracefully", func(t *testing.T) {
		store := newMemStore()
		base := time.Now()
		for i, id := range []string{"ex-1", "ex-2", "ex-3"} {
			store.add(id, models.StatusPending, base.Add(time.Duration(i)*time.Millisecond))
		}

		var processed atomic.Int32
		runner := funcRunner(func(ctx context.Context, id string) error {
			processed.Add(1)
			return store.Finalize(ctx, id, models.FinalizeRequest{Status: models.StatusCompleted})
		})

		cfg := fastQueueConfig()
		cfg.WorkerCount = 2
		pool := NewWorkerPool("pod-a", store, cfg, runner)
		require.NoError(t, pool.Start(context.Background()))
		defer pool.Stop()

		require.Eventually(t, func() bool {
			depth, _ := store.QueueDepth(context.Background())
			return depth == 0 && processed.Load() == 3
		}, 2*time.Second, 10*time.Millisecond)

		assert.Equal(t, models.StatusCompleted, store.status("ex-1"))
	})

	t.Run("duplicate start is a no-op", func(t *testing.T) {
		pool := NewWorkerPool("pod-a", newMemStore(), fastQueueConfig(), nil)
		require.NoError(t, pool.Start(context.Background()))
		workers := len(pool.workers)
		require.NoError(t, pool.Start(context.Background()))
		assert.Equal(t, workers, len(pool.workers))
		pool.Stop()
	})
}

func TestCancelExecution(t *testing.T) {
	store := newMemStore()
	store.add("ex-1", models.StatusPending, time.Now())

	started := make(chan string, 1)
	runner := funcRunner(func(ctx context.Context, id string) error {
		started <- id
		<-ctx.Done()
		// The API writes the stopped status before cancelling the context.
		store.setStatus(id, models.StatusStopped)
		return ctx.Err()
	})

	pool := NewWorkerPool("pod-a", store, fastQueueConfig(), runner)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	select {
	case id := <-started:
		require.Eventually(t, func() bool { return pool.CancelExecution(id) },
			time.Second, 5*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("execution never started")
	}

	require.Eventually(t, func() bool {
		return store.status("ex-1") == models.StatusStopped
	}, 2*time.Second, 10*time.Millisecond)

	assert.False(t, pool.CancelExecution("ex-unknown"))
}

func TestPoolHealth(t *testing.T) {
	store := newMemStore()
	store.add("ex-pending", models.StatusPending, time.Now())

	cfg := fastQueueConfig()
	cfg.WorkerCount = 2
	pool := NewWorkerPool("pod-a", store, cfg, nil)

	t.Run("before start", func(t *testing.T) {
		health := pool.Health()
		assert.False(t, health.IsHealthy)
		assert.True(t, health.DBReachable)
		assert.Equal(t, 0, health.TotalWorkers)
		assert.Equal(t, 1, health.QueueDepth)
		assert.Equal(t, "pod-a", health.PodID)
	})

	t.Run("after start", func(t *testing.T) {
		// Runner holds the claim so active counts are observable.
		block := make(chan struct{})
		pool.runner = funcRunner(func(ctx context.Context, id string) error {
			<-block
			return store.Finalize(ctx, id, models.FinalizeRequest{Status: models.StatusCompleted})
		})
		require.NoError(t, pool.Start(context.Background()))
		defer pool.Stop()
		defer close(block)

		require.Eventually(t, func() bool {
			return pool.Health().ActiveExecutions == 1
		}, 2*time.Second, 10*time.Millisecond)

		health := pool.Health()
		assert.True(t, health.IsHealthy)
		assert.Equal(t, 2, health.TotalWorkers)
		assert.Equal(t, 1, health.ActiveWorkers)
		assert.Equal(t, 0, health.QueueDepth)
		assert.Len(t, health.WorkerStats, 2)
	})
}

func TestOrphanRecovery(t *testing.T) {
	ctx := context.Background()

	t.Run("startup requeues this pod's stale claims", func(t *testing.T) {
		store := newMemStore()
		store.add("ex-mine", models.StatusRunning, time.Now())
		store.executions["ex-mine"].PodID = "pod-a"
		store.add("ex-other", models.StatusRunning, time.Now())
		store.executions["ex-other"].PodID = "pod-b"
		store.add("ex-done", models.StatusCompleted, time.Now())

		require.NoError(t, RecoverStartupOrphans(ctx, store, "pod-a"))

		assert.Equal(t, models.StatusPending, store.status("ex-mine"))
		assert.Equal(t, models.StatusRunning, store.status("ex-other"))
		assert.Equal(t, models.StatusCompleted, store.status("ex-done"))
	})

	t.Run("periodic scan requeues stale claims from dead pods", func(t *testing.T) {
		store := newMemStore()
		stale := time.Now().Add(-time.Hour)
		store.add("ex-orphan", models.StatusRunning, stale)
		store.executions["ex-orphan"].StartedAt = &stale
		store.executions["ex-orphan"].PodID = "pod-dead"

		fresh := time.Now()
		store.add("ex-live", models.StatusRunning, fresh)
		store.executions["ex-live"].StartedAt = &fresh

		pool := NewWorkerPool("pod-a", store, fastQueueConfig(), nil)
		require.NoError(t, pool.detectAndRequeueOrphans(ctx))

		assert.Equal(t, models.StatusPending, store.status("ex-orphan"))
		assert.Equal(t, models.StatusRunning, store.status("ex-live"))

		health := pool.Health()
		assert.Equal(t, 1, health.OrphansRequeued)
		assert.False(t, health.LastOrphanScan.IsZero())
	})

	t.Run("scan skips claims active on this pod", func(t *testing.T) {
		store := newMemStore()
		stale := time.Now().Add(-time.Hour)
		store.add("ex-slow", models.StatusRunning, stale)
		store.executions["ex-slow"].StartedAt = &stale
		store.executions["ex-slow"].PodID = "pod-a"

		pool := NewWorkerPool("pod-a", store, fastQueueConfig(), nil)
		pool.RegisterExecution("ex-slow", func() {})
		defer pool.UnregisterExecution("ex-slow")

		require.NoError(t, pool.detectAndRequeueOrphans(ctx))
		assert.Equal(t, models.StatusRunning, store.status("ex-slow"))
	})
}
