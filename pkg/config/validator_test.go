package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	maxIter := 5
	return &Config{
		System: &SystemConfig{Host: "0.0.0.0", Port: 8080},
		Defaults: &Defaults{
			LLMProvider:   "openai-test",
			MaxIterations: &maxIter,
		},
		Queue: &QueueConfig{
			WorkerCount:             2,
			MaxConcurrentExecutions: 4,
			PollInterval:            time.Second,
			ExecutionTimeout:        time.Minute,
			OrphanThreshold:         5 * time.Minute,
		},
		Retention: &RetentionConfig{
			HumanInputTimeout:      time.Hour,
			SweepInterval:          time.Minute,
			ExecutionRetentionDays: 30,
		},
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"openai-test": {Type: LLMProviderTypeOpenAI, Model: "gpt-4.1"},
		}),
		MCPServerRegistry: NewMCPServerRegistry(nil),
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, NewValidator(validTestConfig()).ValidateAll())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.System.Port = 0 },
			wantErr: "system validation failed",
		},
		{
			name: "provider without model",
			mutate: func(c *Config) {
				c.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"bad": {Type: LLMProviderTypeOpenAI},
				})
			},
			wantErr: "model",
		},
		{
			name:    "default provider not registered",
			mutate:  func(c *Config) { c.Defaults.LLMProvider = "nope" },
			wantErr: "defaults validation failed",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "orphan threshold not beyond execution timeout",
			mutate:  func(c *Config) { c.Queue.OrphanThreshold = c.Queue.ExecutionTimeout },
			wantErr: "orphan_threshold",
		},
		{
			name:    "non-positive human input timeout",
			mutate:  func(c *Config) { c.Retention.HumanInputTimeout = 0 },
			wantErr: "human_input_timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateMCPServers(t *testing.T) {
	withServers := func(servers map[string]*MCPServerConfig) *Config {
		cfg := validTestConfig()
		cfg.MCPServerRegistry = NewMCPServerRegistry(servers)
		return cfg
	}

	t.Run("stdio requires a command", func(t *testing.T) {
		cfg := withServers(map[string]*MCPServerConfig{
			"tools": {Transport: TransportConfig{Type: TransportTypeStdio}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport.command")
	})

	t.Run("http requires a url", func(t *testing.T) {
		cfg := withServers(map[string]*MCPServerConfig{
			"tools": {Transport: TransportConfig{Type: TransportTypeHTTP}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport.url")
	})

	t.Run("unknown transport type rejected", func(t *testing.T) {
		cfg := withServers(map[string]*MCPServerConfig{
			"tools": {Transport: TransportConfig{Type: "carrier-pigeon"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport.type")
	})

	t.Run("valid stdio and sse servers pass", func(t *testing.T) {
		cfg := withServers(map[string]*MCPServerConfig{
			"local":  {Transport: TransportConfig{Type: TransportTypeStdio, Command: "npx"}},
			"remote": {Transport: TransportConfig{Type: TransportTypeSSE, URL: "https://tools.example.com/sse"}},
		})
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})
}
