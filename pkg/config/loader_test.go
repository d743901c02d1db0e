package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, weftYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weft.yaml"), []byte(weftYAML), 0o644))
	if providersYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	}
	return dir
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("minimal config gets defaults", func(t *testing.T) {
		dir := writeConfigFiles(t, "system:\n  port: 9090\n", "")

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.System.Host)
		assert.Equal(t, 9090, cfg.System.Port)
		assert.Equal(t, DefaultLLMProvider, cfg.Defaults.LLMProvider)
		assert.Equal(t, 5, cfg.Queue.WorkerCount)
		assert.Equal(t, 15*time.Minute, cfg.Queue.ExecutionTimeout)
		assert.Equal(t, 24*time.Hour, cfg.Retention.HumanInputTimeout)

		// Built-in providers present when llm-providers.yaml is absent
		assert.True(t, cfg.LLMProviderRegistry.Has("openai"))
		assert.True(t, cfg.LLMProviderRegistry.Has("anthropic"))
		assert.True(t, cfg.LLMProviderRegistry.Has("sidecar"))
	})

	t.Run("partial queue overrides keep remaining defaults", func(t *testing.T) {
		weftYAML := `
queue:
  worker_count: 2
  execution_timeout: 5m
  orphan_threshold: 10m
`
		dir := writeConfigFiles(t, weftYAML, "")

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Queue.WorkerCount)
		assert.Equal(t, 5*time.Minute, cfg.Queue.ExecutionTimeout)
		assert.Equal(t, 10*time.Minute, cfg.Queue.OrphanThreshold)
		// Untouched fields keep defaults
		assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
		assert.Equal(t, 5, cfg.Queue.MaxConcurrentExecutions)
	})

	t.Run("user providers override built-in entries", func(t *testing.T) {
		providersYAML := `
llm_providers:
  openai:
    type: openai
    model: gpt-4o-mini
  local:
    type: sidecar
`
		dir := writeConfigFiles(t, "system: {}\n", providersYAML)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		openai, err := cfg.GetLLMProvider("openai")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", openai.Model)

		local, err := cfg.GetLLMProvider("local")
		require.NoError(t, err)
		assert.Equal(t, LLMProviderTypeSidecar, local.Type)

		// Built-ins the user didn't touch survive the merge
		assert.True(t, cfg.LLMProviderRegistry.Has("google"))
	})

	t.Run("environment variables expand in YAML", func(t *testing.T) {
		t.Setenv("WEFT_SIDECAR_ADDR", "http://sidecar:11434")
		dir := writeConfigFiles(t, "system:\n  sidecar_addr: \"{{.WEFT_SIDECAR_ADDR}}\"\n", "")

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "http://sidecar:11434", cfg.System.SidecarAddr)
	})

	t.Run("missing weft.yaml fails", func(t *testing.T) {
		_, err := Initialize(ctx, t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid YAML fails", func(t *testing.T) {
		dir := writeConfigFiles(t, "system: [not a mapping\n", "")

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})
}

func TestValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects out-of-range port", func(t *testing.T) {
		dir := writeConfigFiles(t, "system:\n  port: 70000\n", "")

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("rejects unknown default provider", func(t *testing.T) {
		dir := writeConfigFiles(t, "defaults:\n  llm_provider: nonexistent\n", "")

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("rejects provider entry without model", func(t *testing.T) {
		providersYAML := `
llm_providers:
  broken:
    type: anthropic
`
		dir := writeConfigFiles(t, "system: {}\n", providersYAML)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("rejects orphan threshold below execution timeout", func(t *testing.T) {
		weftYAML := `
queue:
  execution_timeout: 30m
  orphan_threshold: 10m
`
		dir := writeConfigFiles(t, weftYAML, "")

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "orphan_threshold")
	})
}

func TestLLMProviderRegistry(t *testing.T) {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"openai": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
	})

	t.Run("get known provider", func(t *testing.T) {
		p, err := registry.Get("openai")
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", p.Model)
	})

	t.Run("get unknown provider", func(t *testing.T) {
		_, err := registry.Get("missing")
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("get all returns a copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "openai")
		assert.True(t, registry.Has("openai"))
	})
}
