package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// HumanInputTimeout is how long a paused execution may wait for human
	// input before the sweeper auto-cancels it.
	HumanInputTimeout time.Duration `yaml:"human_input_timeout"`

	// SweepInterval is how often the stale-pause sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// ExecutionRetentionDays is how many days to keep finished executions
	// before deleting them (messages and interactions cascade).
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// CleanupInterval is how often the retention cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		HumanInputTimeout:      24 * time.Hour,
		SweepInterval:          10 * time.Minute,
		ExecutionRetentionDays: 365,
		CleanupInterval:        12 * time.Hour,
	}
}
