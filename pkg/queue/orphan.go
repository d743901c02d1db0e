package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned executions.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds running executions whose claim outlived the
// orphan threshold and puts them back in the pending queue. Requeue is safe:
// completed node outputs are durable, so the next claim resumes instead of
// repeating finished work.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.store.StaleRunning(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to query orphaned executions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned executions", "count", len(orphans))

	requeued := 0
	for _, execution := range orphans {
		// A claim on this pod is alive even past the threshold (the worker
		// settles it when the timeout context fires). Skip it.
		if p.isActive(execution.ID) {
			continue
		}

		log := slog.With("execution_id", execution.ID, "old_pod_id", execution.PodID)
		if err := p.store.Requeue(ctx, execution.ID); err != nil {
			log.Error("Failed to requeue orphaned execution", "error", err)
			continue
		}
		log.Warn("Orphaned execution requeued")
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// RecoverStartupOrphans requeues executions this pod claimed before a crash.
// Called once during startup, before the worker pool begins processing.
func RecoverStartupOrphans(ctx context.Context, store ExecutionStore, podID string) error {
	orphans, err := store.FindOrphaned(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, execution := range orphans {
		if err := store.Requeue(ctx, execution.ID); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"execution_id", execution.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan requeued", "execution_id", execution.ID)
	}

	return nil
}
