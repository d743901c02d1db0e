package config

// DefaultLLMProvider is used when neither the workflow node nor the
// defaults section names a provider.
const DefaultLLMProvider = "openai"

// builtinLLMProviders returns the provider entries that ship with the
// binary. User entries in llm-providers.yaml override these by name.
func builtinLLMProviders() map[string]*LLMProviderConfig {
	return map[string]*LLMProviderConfig{
		"openai": {
			Type:  LLMProviderTypeOpenAI,
			Model: "gpt-4o",
		},
		"anthropic": {
			Type:  LLMProviderTypeAnthropic,
			Model: "claude-sonnet-4-5",
		},
		"google": {
			Type:  LLMProviderTypeGoogle,
			Model: "gemini-2.5-pro",
		},
		// Model is chosen by the sidecar itself unless a node overrides it.
		"sidecar": {
			Type: LLMProviderTypeSidecar,
		},
	}
}
