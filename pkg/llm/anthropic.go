package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAnthropicHost    = "https://api.anthropic.com/v1"
	anthropicVersion        = "2023-06-01"
	anthropicDefaultTokens  = 4096
)

// AnthropicProvider calls the Anthropic messages API.
type AnthropicProvider struct {
	apiKey string
	model  string
	host   string
	client *http.Client
}

// NewAnthropicProvider creates an Anthropic provider for the given key and model.
func NewAnthropicProvider(apiKey, model string, httpClient *http.Client) *AnthropicProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		host:   defaultAnthropicHost,
		client: httpClient,
	}
}

// WithHost overrides the API base URL.
func (p *AnthropicProvider) WithHost(host string) *AnthropicProvider {
	p.host = host
	return p
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Model implements Provider.
func (p *AnthropicProvider) Model() string { return p.model }

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements Provider.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultTokens
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       p.model,
		MaxTokens:   maxTokens,
		System:      req.SystemMessage,
		Messages:    []anthropicMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.host+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Provider: "anthropic", Kind: "connection", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: "anthropic", Kind: "connection", Message: err.Error(), Retryable: true}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTPStatus("anthropic", resp.StatusCode, string(data))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &Error{Provider: "anthropic", Kind: "api", Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if parsed.Error != nil {
		return nil, &Error{Provider: "anthropic", Kind: parsed.Error.Type, Message: parsed.Error.Message}
	}

	var text string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return &Result{
		Text:           text,
		TokenCount:     parsed.Usage.InputTokens + parsed.Usage.OutputTokens,
		ResponseTimeMs: elapsedMs(start),
	}, nil
}
