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

const defaultOpenAIHost = "https://api.openai.com/v1"

// OpenAIProvider calls the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey string
	model  string
	host   string
	client *http.Client
}

// NewOpenAIProvider creates an OpenAI provider for the given key and model.
func NewOpenAIProvider(apiKey, model string, httpClient *http.Client) *OpenAIProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		host:   defaultOpenAIHost,
		client: httpClient,
	}
}

// WithHost overrides the API base URL (proxies, compatible local servers).
func (p *OpenAIProvider) WithHost(host string) *OpenAIProvider {
	p.host = host
	return p
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Model implements Provider.
func (p *OpenAIProvider) Model() string { return p.model }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_completion_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message      openAIMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate implements Provider.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	messages := make([]openAIMessage, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.SystemMessage})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(openAIRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.host+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Provider: "openai", Kind: "connection", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: "openai", Kind: "connection", Message: err.Error(), Retryable: true}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTPStatus("openai", resp.StatusCode, string(data))
	}

	var parsed openAIResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &Error{Provider: "openai", Kind: "api", Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if parsed.Error != nil {
		return nil, &Error{Provider: "openai", Kind: parsed.Error.Type, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 {
		return nil, &Error{Provider: "openai", Kind: "api", Message: "no response choices returned"}
	}
	choice := parsed.Choices[0]
	if choice.FinishReason == "content_filter" {
		return nil, &Error{Provider: "openai", Kind: "content_filter", Message: "response blocked by content filter"}
	}

	return &Result{
		Text:           choice.Message.Content,
		TokenCount:     parsed.Usage.TotalTokens,
		ResponseTimeMs: elapsedMs(start),
	}, nil
}

// classifyHTTPStatus maps an HTTP error status to a classified provider error.
// 429 and 5xx are retryable; auth and client errors are permanent.
func classifyHTTPStatus(provider string, status int, body string) *Error {
	kind := "api"
	retryable := false
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = "auth"
	case status == http.StatusTooManyRequests:
		kind = "rate_limit"
		retryable = true
	case status >= 500:
		kind = "api"
		retryable = true
	}
	return &Error{
		Provider:  provider,
		Kind:      kind,
		Message:   fmt.Sprintf("HTTP %d: %s", status, truncate(body, 300)),
		Retryable: retryable,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
