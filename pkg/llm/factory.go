package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/credentials"
)

// KeySource looks up a decrypted API key for a project and provider.
// Implemented by credentials.Store.
type KeySource interface {
	ProviderKey(ctx context.Context, projectID, provider string) (string, error)
}

// Factory builds providers from the provider registry and per-project
// credentials.
type Factory struct {
	keys        KeySource
	registry    *config.LLMProviderRegistry
	defaults    *config.Defaults
	httpClient  *http.Client
	sidecarAddr string
}

// NewFactory creates a provider factory. sidecarAddr may be empty (sidecar
// providers disabled).
func NewFactory(keys KeySource, registry *config.LLMProviderRegistry, httpClient *http.Client, sidecarAddr string) *Factory {
	return &Factory{keys: keys, registry: registry, httpClient: httpClient, sidecarAddr: sidecarAddr}
}

// WithDefaults sets the fallbacks applied when a workflow node names no
// provider or model.
func (f *Factory) WithDefaults(d *config.Defaults) *Factory {
	f.defaults = d
	return f
}

// Acquire returns a stateless provider for the node's configuration. The
// registry entry supplies the backend type, base URL, and fallback model.
// A missing credential fails fast with ErrNoCredential and is never retried.
func (f *Factory) Acquire(ctx context.Context, projectID, providerName, model string) (Provider, error) {
	if providerName == "" && f.defaults != nil {
		providerName = f.defaults.LLMProvider
	}
	if providerName == "" {
		return nil, fmt.Errorf("llm provider name is required")
	}
	if model == "" && f.defaults != nil {
		model = f.defaults.LLMModel
	}

	entry, err := f.registry.Get(providerName)
	if err != nil {
		return nil, fmt.Errorf("resolving llm provider %q: %w", providerName, err)
	}

	if model == "" {
		model = entry.Model
	}

	if entry.Type == config.LLMProviderTypeSidecar {
		if f.sidecarAddr == "" {
			return nil, fmt.Errorf("provider %q requires a sidecar but no sidecar address is configured", providerName)
		}
		return NewSidecarProvider(f.sidecarAddr, model)
	}

	if model == "" {
		return nil, fmt.Errorf("no model configured for provider %q", providerName)
	}

	key, err := f.keys.ProviderKey(ctx, projectID, providerName)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s (project %s)", ErrNoCredential, providerName, projectID)
		}
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	switch entry.Type {
	case config.LLMProviderTypeOpenAI:
		p := NewOpenAIProvider(key, model, f.httpClient)
		if entry.BaseURL != "" {
			p = p.WithHost(entry.BaseURL)
		}
		return p, nil
	case config.LLMProviderTypeAnthropic:
		p := NewAnthropicProvider(key, model, f.httpClient)
		if entry.BaseURL != "" {
			p = p.WithHost(entry.BaseURL)
		}
		return p, nil
	case config.LLMProviderTypeGoogle:
		p := NewGeminiProvider(key, model, f.httpClient)
		if entry.BaseURL != "" {
			p = p.WithHost(entry.BaseURL)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown llm provider type %q for %q", entry.Type, providerName)
	}
}
