package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WeftYAMLConfig represents the complete weft.yaml file structure
type WeftYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Defaults  *Defaults         `yaml:"defaults"`
	Queue     *QueueConfig      `yaml:"queue"`
	Retention *RetentionConfig  `yaml:"retention"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Host             string   `yaml:"host,omitempty"`
	Port             int      `yaml:"port,omitempty"`
	SidecarAddr      string   `yaml:"sidecar_addr,omitempty"`
	DashboardURL     string   `yaml:"dashboard_url,omitempty"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// MCPServersYAMLConfig represents the complete mcp-servers.yaml file structure
type MCPServersYAMLConfig struct {
	MCPServers map[string]*MCPServerConfig `yaml:"mcp_servers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined LLM providers
//  5. Apply default values
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_providers", cfg.LLMProviderRegistry.Len(),
		"mcp_servers", cfg.MCPServerRegistry.Len(),
		"workers", cfg.Queue.WorkerCount,
		"listen", fmt.Sprintf("%s:%d", cfg.System.Host, cfg.System.Port))

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load weft.yaml (system, defaults, queue, retention)
	weftConfig, err := loader.loadWeftYAML()
	if err != nil {
		return nil, NewLoadError("weft.yaml", err)
	}

	// 2. Load llm-providers.yaml. Missing file is fine: the built-in
	// provider entries cover the common case.
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Merge built-in + user-defined providers (user overrides built-in)
	providers := mergeLLMProviders(builtinLLMProviders(), llmProviders)
	llmProviderRegistry := NewLLMProviderRegistry(providers)

	// 3a. Load mcp-servers.yaml. Missing file means no tool servers.
	mcpServers, err := loader.loadMCPServersYAML()
	if err != nil {
		return nil, NewLoadError("mcp-servers.yaml", err)
	}

	// 4. Resolve defaults
	defaults := weftConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = DefaultLLMProvider
	}

	// Resolve queue config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	queueConfig := DefaultQueueConfig()
	if weftConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, weftConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// Resolve retention config the same way
	retentionConfig := DefaultRetentionConfig()
	if weftConfig.Retention != nil {
		if err := mergo.Merge(retentionConfig, weftConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:           configDir,
		System:              resolveSystemConfig(weftConfig.System),
		Defaults:            defaults,
		Queue:               queueConfig,
		Retention:           retentionConfig,
		LLMProviderRegistry: llmProviderRegistry,
		MCPServerRegistry:   NewMCPServerRegistry(mcpServers),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadWeftYAML() (*WeftYAMLConfig, error) {
	var config WeftYAMLConfig

	if err := l.loadYAML("weft.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	err := l.loadYAML("llm-providers.yaml", &config)
	if err != nil {
		if _, statErr := os.Stat(filepath.Join(l.configDir, "llm-providers.yaml")); os.IsNotExist(statErr) {
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

func (l *configLoader) loadMCPServersYAML() (map[string]*MCPServerConfig, error) {
	var config MCPServersYAMLConfig
	config.MCPServers = make(map[string]*MCPServerConfig)

	err := l.loadYAML("mcp-servers.yaml", &config)
	if err != nil {
		if _, statErr := os.Stat(filepath.Join(l.configDir, "mcp-servers.yaml")); os.IsNotExist(statErr) {
			return config.MCPServers, nil
		}
		return nil, err
	}

	return config.MCPServers, nil
}

// resolveSystemConfig resolves system configuration from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		DashboardURL: "http://localhost:5173",
	}

	if sys == nil {
		return cfg
	}

	if sys.Host != "" {
		cfg.Host = sys.Host
	}
	if sys.Port != 0 {
		cfg.Port = sys.Port
	}
	cfg.SidecarAddr = sys.SidecarAddr
	if sys.DashboardURL != "" {
		cfg.DashboardURL = sys.DashboardURL
	}
	cfg.AllowedWSOrigins = sys.AllowedWSOrigins

	return cfg
}
