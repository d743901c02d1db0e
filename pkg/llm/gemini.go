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

const defaultGeminiHost = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider calls the Google Generative Language API.
type GeminiProvider struct {
	apiKey string
	model  string
	host   string
	client *http.Client
}

// NewGeminiProvider creates a Gemini provider for the given key and model.
func NewGeminiProvider(apiKey, model string, httpClient *http.Client) *GeminiProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
		host:   defaultGeminiHost,
		client: httpClient,
	}
}

// WithHost overrides the API base URL.
func (p *GeminiProvider) WithHost(host string) *GeminiProvider {
	p.host = host
	return p
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "google" }

// Model implements Provider.
func (p *GeminiProvider) Model() string { return p.model }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate implements Provider.
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	var body geminiRequest
	if req.SystemMessage != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemMessage}}}
	}
	body.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}}
	body.GenerationConfig.Temperature = req.Temperature
	body.GenerationConfig.MaxOutputTokens = req.MaxTokens

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.host, p.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Provider: "google", Kind: "connection", Message: err.Error(), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: "google", Kind: "connection", Message: err.Error(), Retryable: true}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTPStatus("google", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &Error{Provider: "google", Kind: "api", Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if parsed.Error != nil {
		return nil, &Error{Provider: "google", Kind: parsed.Error.Status, Message: parsed.Error.Message}
	}
	if len(parsed.Candidates) == 0 {
		return nil, &Error{Provider: "google", Kind: "api", Message: "no candidates returned"}
	}
	cand := parsed.Candidates[0]
	if cand.FinishReason == "SAFETY" {
		return nil, &Error{Provider: "google", Kind: "content_filter", Message: "response blocked by safety filter"}
	}

	var text string
	for _, part := range cand.Content.Parts {
		text += part.Text
	}

	return &Result{
		Text:           text,
		TokenCount:     parsed.UsageMetadata.TotalTokenCount,
		ResponseTimeMs: elapsedMs(start),
	}, nil
}
