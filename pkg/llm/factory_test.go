package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/credentials"
)

type stubKeys struct {
	keys map[string]string
}

func (s *stubKeys) ProviderKey(_ context.Context, projectID, provider string) (string, error) {
	key, ok := s.keys[projectID+"/"+provider]
	if !ok {
		return "", credentials.ErrNotFound
	}
	return key, nil
}

func testRegistry() *config.LLMProviderRegistry {
	return config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"openai":    {Type: config.LLMProviderTypeOpenAI, Model: "gpt-4o"},
		"anthropic": {Type: config.LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5"},
		"local":     {Type: config.LLMProviderTypeSidecar},
		"proxied":   {Type: config.LLMProviderTypeOpenAI, Model: "gpt-4o", BaseURL: "http://proxy.internal/v1"},
	})
}

func TestFactoryAcquire(t *testing.T) {
	ctx := context.Background()
	keys := &stubKeys{keys: map[string]string{
		"proj-1/openai":    "sk-test",
		"proj-1/anthropic": "ak-test",
	}}

	t.Run("resolves provider and node model", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "")

		p, err := factory.Acquire(ctx, "proj-1", "openai", "gpt-4o-mini")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
		assert.Equal(t, "gpt-4o-mini", p.Model())
	})

	t.Run("falls back to registry model", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "")

		p, err := factory.Acquire(ctx, "proj-1", "anthropic", "")
		require.NoError(t, err)
		assert.Equal(t, "claude-sonnet-4-5", p.Model())
	})

	t.Run("empty provider name uses configured default", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "").
			WithDefaults(&config.Defaults{LLMProvider: "anthropic"})

		p, err := factory.Acquire(ctx, "proj-1", "", "")
		require.NoError(t, err)
		assert.Equal(t, "anthropic", p.Name())
	})

	t.Run("unknown provider name", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "")

		_, err := factory.Acquire(ctx, "proj-1", "nonexistent", "")
		assert.ErrorIs(t, err, config.ErrLLMProviderNotFound)
	})

	t.Run("missing credential fails fast", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "")

		_, err := factory.Acquire(ctx, "proj-2", "openai", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoCredential)
		assert.False(t, Retryable(err))
	})

	t.Run("sidecar without configured address", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "")

		_, err := factory.Acquire(ctx, "proj-1", "local", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sidecar")
	})

	t.Run("sidecar provider needs no credential", func(t *testing.T) {
		factory := NewFactory(keys, testRegistry(), nil, "passthrough:///sidecar:50051")

		p, err := factory.Acquire(ctx, "proj-without-keys", "local", "llama-3.3-70b")
		require.NoError(t, err)
		assert.Equal(t, "sidecar", p.Name())
		assert.Equal(t, "llama-3.3-70b", p.Model())
	})
}

func TestOpenAIProviderGenerate(t *testing.T) {
	t.Run("successful generation", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "cleared for launch"}, "finish_reason": "stop"},
				},
				"usage": map[string]any{"total_tokens": 42},
			})
		}))
		defer server.Close()

		p := NewOpenAIProvider("sk-test", "gpt-4o", server.Client()).WithHost(server.URL)
		result, err := p.Generate(context.Background(), Request{
			SystemMessage: "You are a launch director.",
			Prompt:        "Go or no-go?",
			Temperature:   0.2,
			MaxTokens:     256,
		})
		require.NoError(t, err)

		assert.Equal(t, "cleared for launch", result.Text)
		assert.Equal(t, 42, result.TokenCount)
		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "gpt-4o", gotBody["model"])

		messages := gotBody["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	})

	t.Run("rate limit is retryable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"message":"slow down"}}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		p := NewOpenAIProvider("sk-test", "gpt-4o", server.Client()).WithHost(server.URL)
		_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
		require.Error(t, err)
		assert.True(t, Retryable(err))
	})

	t.Run("auth failure is permanent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		p := NewOpenAIProvider("sk-bad", "gpt-4o", server.Client()).WithHost(server.URL)
		_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
		require.Error(t, err)
		assert.False(t, Retryable(err))
	})

	t.Run("context deadline propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		p := NewOpenAIProvider("sk-test", "gpt-4o", server.Client()).WithHost(server.URL)
		_, err := p.Generate(ctx, Request{Prompt: "hello"})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, Retryable(err))
	})
}
