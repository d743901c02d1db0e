package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how pending executions are polled, claimed, and run.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and runs executions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentExecutions is the global limit of concurrent executions
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentExecutions int `yaml:"max_concurrent_executions"`

	// PollInterval is the base interval for checking pending executions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ExecutionTimeout is the maximum time a single claim may run before
	// its context is cancelled. A timed-out execution keeps its completed
	// node results and is resumable.
	ExecutionTimeout time.Duration `yaml:"execution_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active executions
	// to complete during shutdown. Should match ExecutionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned executions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an execution may stay in running state
	// before the scan treats its claim as dead and requeues it. Must exceed
	// ExecutionTimeout or the scan steals claims from live workers.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentExecutions: 5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ExecutionTimeout:        15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         20 * time.Minute,
	}
}
