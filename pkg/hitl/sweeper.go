package hitl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/weftworks/weft/pkg/models"
)

// DefaultInputTTL is how long an execution may wait for human input before
// it is auto-cancelled.
const DefaultInputTTL = time.Hour

// Sweeper auto-cancels executions whose human never answered.
type Sweeper struct {
	store    Store
	ttl      time.Duration
	interval time.Duration
}

// NewSweeper builds a Sweeper. Non-positive ttl or interval fall back to
// the defaults.
func NewSweeper(store Store, ttl, interval time.Duration) *Sweeper {
	if ttl <= 0 {
		ttl = DefaultInputTTL
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{store: store, ttl: ttl, interval: interval}
}

// Run sweeps on the configured interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := s.Sweep(ctx); err != nil {
				slog.Error("Stale input sweep failed", "error", err)
			} else if n > 0 {
				slog.Info("Auto-cancelled stale executions", "count", n)
			}
		}
	}
}

// Sweep finalizes every execution that has been waiting for input longer
// than the TTL. Returns how many were cancelled.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	stale, err := s.store.StaleAwaiting(ctx, time.Now().UTC().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("listing stale executions: %w", err)
	}

	cancelled := 0
	for _, execution := range stale {
		req := models.FinalizeRequest{
			Status: models.StatusCompleted,
			ResultSummary: fmt.Sprintf("Auto-cancelled: no human input received within %s while waiting at %q",
				s.ttl, execution.AwaitingHumanInput),
		}
		if err := s.store.Finalize(ctx, execution.ID, req); err != nil {
			slog.Error("Failed to auto-cancel execution",
				"execution_id", execution.ID, "error", err)
			continue
		}
		cancelled++
	}
	return cancelled, nil
}
