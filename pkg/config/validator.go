package config

import "fmt"

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateMCPServers(); err != nil {
		return fmt.Errorf("MCP server validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateSystem() error {
	sys := v.cfg.System
	if sys.Port < 1 || sys.Port > 65535 {
		return NewValidationError("system", "system", "port", fmt.Errorf("%w: %d", ErrInvalidValue, sys.Port))
	}
	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}

		// The sidecar picks its own model; every other type needs one.
		if provider.Model == "" && provider.Type != LLMProviderTypeSidecar {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}

		if provider.MaxOutputTokens < 0 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if d.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("%w: %s", ErrLLMProviderNotFound, d.LLMProvider))
	}

	if d.MaxIterations != nil && *d.MaxIterations < 1 {
		return NewValidationError("defaults", "defaults", "max_iterations", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentExecutions < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_executions", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue", "queue", "poll_interval_jitter", fmt.Errorf("must not be negative"))
	}
	if q.ExecutionTimeout <= 0 {
		return NewValidationError("queue", "queue", "execution_timeout", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= q.ExecutionTimeout {
		return NewValidationError("queue", "queue", "orphan_threshold",
			fmt.Errorf("must exceed execution_timeout (%s) or live claims get requeued", q.ExecutionTimeout))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.HumanInputTimeout <= 0 {
		return NewValidationError("retention", "retention", "human_input_timeout", fmt.Errorf("must be positive"))
	}
	if r.SweepInterval <= 0 {
		return NewValidationError("retention", "retention", "sweep_interval", fmt.Errorf("must be positive"))
	}
	if r.ExecutionRetentionDays < 1 {
		return NewValidationError("retention", "retention", "execution_retention_days", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateMCPServers() error {
	for _, id := range v.cfg.MCPServerRegistry.IDs() {
		server, _ := v.cfg.MCPServerRegistry.Get(id)
		t := server.Transport
		switch t.Type {
		case TransportTypeStdio:
			if t.Command == "" {
				return NewValidationError("mcp_server", id, "transport.command", ErrMissingRequiredField)
			}
		case TransportTypeHTTP, TransportTypeSSE:
			if t.URL == "" {
				return NewValidationError("mcp_server", id, "transport.url", ErrMissingRequiredField)
			}
		default:
			return NewValidationError("mcp_server", id, "transport.type", fmt.Errorf("%w: %s", ErrInvalidValue, t.Type))
		}
	}
	return nil
}
