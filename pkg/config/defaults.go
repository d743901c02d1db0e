package config

// Defaults contains system-wide default configurations.
// These values apply when workflow nodes don't specify their own.
type Defaults struct {
	// LLM provider default for all agent and manager nodes
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Model default (empty = the provider entry's model)
	LLMModel string `yaml:"llm_model,omitempty"`

	// Reflection iteration cap default for human-input nodes
	MaxIterations *int `yaml:"max_iterations,omitempty"`
}
