package config

// mergeLLMProviders combines built-in and user-defined provider entries.
// User entries win on name collisions.
func mergeLLMProviders(builtinProviders map[string]*LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig, len(builtinProviders)+len(userProviders))

	for name, provider := range builtinProviders {
		result[name] = provider
	}

	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}
