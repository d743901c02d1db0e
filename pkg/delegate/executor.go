// Package delegate runs a single delegation against one delegate agent:
// provider acquisition, prompt assembly, the timed LLM call with retries,
// and response parsing.
package delegate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/retrieval"
	"github.com/weftworks/weft/pkg/workflow"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	maxBackoff        = 10 * time.Second
	defaultTopK       = 5
)

// ProviderSource acquires an LLM provider for a project. Satisfied by
// llm.Factory.
type ProviderSource interface {
	Acquire(ctx context.Context, projectID, providerName, model string) (llm.Provider, error)
}

// Task is one delegation to execute. Timeout bounds each individual LLM
// attempt, not the whole task.
type Task struct {
	ProjectID  string
	Node       *workflow.Node
	Delegation *protocol.Delegation
	Timeout    time.Duration
	MaxRetries int
}

// effectiveTimeout is the per-attempt deadline, defaulted to 30s when unset.
func (t Task) effectiveTimeout() time.Duration {
	if t.Timeout > 0 {
		return t.Timeout
	}
	return defaultTimeout
}

// effectiveMaxRetries defaults negative values to 3 retries. Zero is a
// valid explicit "no retries".
func (t Task) effectiveMaxRetries() int {
	if t.MaxRetries >= 0 {
		return t.MaxRetries
	}
	return defaultMaxRetries
}

// Result is the outcome of a delegation, including retry accounting.
type Result struct {
	Response       *protocol.Response
	RetryCount     int
	TimedOut       bool
	TokenCount     int
	ResponseTimeMs int
}

// Executor executes delegation tasks. It holds no per-task state; a failed
// task leaves nothing behind.
type Executor struct {
	providers ProviderSource
	searcher  retrieval.Searcher
	tools     ToolSource
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithTools enables MCP tool calling for delegates that list mcp_servers.
func WithTools(tools ToolSource) ExecutorOption {
	return func(e *Executor) { e.tools = tools }
}

// NewExecutor builds an Executor. searcher may be nil when document
// retrieval is not configured; doc_aware delegates then run without
// document context.
func NewExecutor(providers ProviderSource, searcher retrieval.Searcher, opts ...ExecutorOption) *Executor {
	e := &Executor{providers: providers, searcher: searcher}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one delegation. The provider is acquired once up front; a
// missing credential fails immediately without retries. The LLM call runs
// under a per-attempt deadline and is retried on retryable errors with
// exponential backoff capped at 10s, for at most MaxRetries retries.
func (e *Executor) Execute(ctx context.Context, task Task) (*Result, error) {
	if task.Node == nil || task.Delegation == nil {
		return nil, fmt.Errorf("delegate: task requires a node and a delegation")
	}
	timeout := task.effectiveTimeout()
	maxRetries := task.effectiveMaxRetries()

	provider, err := e.providers.Acquire(ctx, task.ProjectID, task.Node.Data.LLMProvider, task.Node.Data.LLMModel)
	if err != nil {
		return nil, fmt.Errorf("acquiring provider for delegate %q: %w", task.Node.DisplayName(), err)
	}

	req := llm.Request{
		SystemMessage: task.Node.Data.SystemMessage,
		Prompt:        e.buildPrompt(ctx, task),
	}
	if task.Node.Data.Temperature != nil {
		req.Temperature = *task.Node.Data.Temperature
	}
	if task.Node.Data.MaxTokens != nil {
		req.MaxTokens = *task.Node.Data.MaxTokens
	}

	result := &Result{}
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			result.RetryCount++
			if err := sleepBackoff(ctx, attempt-1); err != nil {
				return nil, err
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		generated, err := e.generate(attemptCtx, provider, task, req)
		cancel()

		if err == nil {
			result.TokenCount = generated.TokenCount
			result.ResponseTimeMs = generated.ResponseTimeMs
			result.Response = parseDelegateText(task, generated.Text, result.RetryCount)
			return result, nil
		}

		lastErr = err
		if attemptCtx.Err() == context.DeadlineExceeded {
			result.TimedOut = true
		}
		if !llm.Retryable(err) || ctx.Err() != nil {
			break
		}
		slog.Warn("Delegate call failed, retrying",
			"delegate", task.Node.DisplayName(),
			"subquery_id", task.Delegation.SubqueryID,
			"attempt", attempt+1,
			"error", err)
	}

	return result, fmt.Errorf("delegate %q failed after %d retries: %w",
		task.Node.DisplayName(), result.RetryCount, lastErr)
}

// generate runs one attempt: the plain LLM call, or the tool loop for
// delegates with configured MCP servers.
func (e *Executor) generate(ctx context.Context, provider llm.Provider, task Task, req llm.Request) (*llm.Result, error) {
	if e.tools != nil && len(task.Node.Data.MCPServers) > 0 {
		return e.generateWithTools(ctx, provider, task, req)
	}
	return provider.Generate(ctx, req)
}

// buildPrompt assembles the delegate prompt from the formatted delegation
// plus, for doc_aware delegates, retrieved document context.
func (e *Executor) buildPrompt(ctx context.Context, task Task) string {
	var b strings.Builder
	b.WriteString(protocol.FormatDelegation(task.Delegation))

	if task.Node.Data.DocAware && e.searcher != nil {
		docs, err := e.searcher.Search(ctx, retrieval.SearchRequest{
			Query:               task.Delegation.Subquery,
			Method:              task.Node.Data.SearchMethod,
			Params:              task.Node.Data.SearchParameters,
			ContentFilters:      task.Node.Data.ContentFilters,
			ConversationContext: task.Delegation.Context.OriginalInput,
			TopK:                defaultTopK,
		})
		if err != nil {
			slog.Warn("Document search failed, continuing without documents",
				"delegate", task.Node.DisplayName(), "error", err)
		} else if formatted := retrieval.FormatResults(docs); formatted != "" {
			b.WriteString("\n")
			b.WriteString(formatted)
		}
	}

	b.WriteString("\nProvide a complete, self-contained answer to the task above.")
	return b.String()
}

// parseDelegateText turns raw LLM output into a Response. Empty output and
// an "ERROR:" prefix count as errors even though the call itself succeeded.
func parseDelegateText(task Task, text string, retries int) *protocol.Response {
	name := task.Node.DisplayName()
	trimmed := strings.TrimSpace(text)

	var resp *protocol.Response
	switch {
	case trimmed == "":
		resp = protocol.NewResponse(task.Delegation.SubqueryID, name, "delegate returned an empty response", protocol.StatusError)
	case strings.HasPrefix(trimmed, "ERROR:"):
		resp = protocol.NewResponse(task.Delegation.SubqueryID, name, trimmed, protocol.StatusError)
	default:
		resp = protocol.ParseResponse(task.Delegation.SubqueryID, name, trimmed)
	}

	if resp.Metadata == nil {
		resp.Metadata = map[string]any{}
	}
	resp.Metadata["retry_count"] = retries
	if c, ok := task.Delegation.Metadata["delegation_confidence"].(float64); ok && resp.Confidence == 0 {
		resp.Confidence = c
	}
	return resp
}

// sleepBackoff waits min(2^n, 10) seconds, honoring context cancellation.
func sleepBackoff(ctx context.Context, n int) error {
	d := maxBackoff
	if n < 4 {
		d = time.Duration(1<<uint(n)) * time.Second
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
