package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/config"
)

// fakeRetirer counts delete passes.
type fakeRetirer struct {
	calls   int
	deleted int
	err     error
}

func (f *fakeRetirer) DeleteOldExecutions(_ context.Context, _ int) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.deleted, nil
}

func retentionConfig(interval time.Duration) *config.RetentionConfig {
	return &config.RetentionConfig{
		ExecutionRetentionDays: 365,
		CleanupInterval:        interval,
		HumanInputTimeout:      time.Hour,
		SweepInterval:          time.Hour,
	}
}

func TestServiceRunsOnStartAndOnTicks(t *testing.T) {
	retirer := &fakeRetirer{deleted: 3}
	svc := NewService(retentionConfig(20*time.Millisecond), retirer)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return retirer.calls >= 2
	}, 2*time.Second, 5*time.Millisecond, "expected the initial pass plus at least one tick")
}

func TestServiceStopIsIdempotent(t *testing.T) {
	retirer := &fakeRetirer{}
	svc := NewService(retentionConfig(time.Hour), retirer)

	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()

	assert.Equal(t, 1, retirer.calls)
}

func TestServiceSurvivesDeleteErrors(t *testing.T) {
	retirer := &fakeRetirer{err: errors.New("database unreachable")}
	svc := NewService(retentionConfig(10*time.Millisecond), retirer)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return retirer.calls >= 3
	}, 2*time.Second, 5*time.Millisecond, "loop should keep running after errors")
}

func TestServiceDoubleStartIsNoop(t *testing.T) {
	retirer := &fakeRetirer{}
	svc := NewService(retentionConfig(time.Hour), retirer)

	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()

	assert.Equal(t, 1, retirer.calls)
}
