package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide infrastructure settings
	System *SystemConfig

	// Per-node fallbacks
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Retention and sweeper configuration
	Retention *RetentionConfig

	// Named LLM provider entries (built-in + llm-providers.yaml)
	LLMProviderRegistry *LLMProviderRegistry

	// MCP tool server entries (mcp-servers.yaml, optional)
	MCPServerRegistry *MCPServerRegistry
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}
