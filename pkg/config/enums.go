package config

// LLMProviderType identifies which backend SDK/API a provider entry uses.
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI uses the OpenAI chat completions API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic uses the Anthropic messages API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeGoogle uses the Gemini generateContent API
	LLMProviderTypeGoogle LLMProviderType = "google"
	// LLMProviderTypeSidecar proxies to a local model-serving sidecar
	LLMProviderTypeSidecar LLMProviderType = "sidecar"
)

// IsValid checks if the provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeAnthropic, LLMProviderTypeGoogle, LLMProviderTypeSidecar:
		return true
	default:
		return false
	}
}
