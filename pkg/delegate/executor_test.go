package delegate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/retrieval"
	"github.com/weftworks/weft/pkg/workflow"
)

type fakeProvider struct {
	generate func(ctx context.Context, req llm.Request) (*llm.Result, error)
	calls    int
	lastReq  llm.Request
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Result, error) {
	f.calls++
	f.lastReq = req
	return f.generate(ctx, req)
}

type fakeSource struct {
	provider llm.Provider
	err      error
}

func (f *fakeSource) Acquire(context.Context, string, string, string) (llm.Provider, error) {
	return f.provider, f.err
}

type fakeSearcher struct {
	docs    []retrieval.Document
	err     error
	lastReq retrieval.SearchRequest
}

func (f *fakeSearcher) Search(_ context.Context, req retrieval.SearchRequest) ([]retrieval.Document, error) {
	f.lastReq = req
	return f.docs, f.err
}

func delegateNode() *workflow.Node {
	return &workflow.Node{
		ID:   "d1",
		Type: workflow.NodeDelegate,
		Data: workflow.NodeConfig{
			Name:          "Researcher",
			SystemMessage: "You research things.",
			LLMProvider:   "openai",
			LLMModel:      "gpt-4o",
		},
	}
}

func delegation() *protocol.Delegation {
	return protocol.NewDelegation("sq-1", "find the sources", protocol.PriorityHigh,
		protocol.DelegationContext{OriginalInput: "the original request"}, 0.9)
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a completed response", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "here are the sources", TokenCount: 42, ResponseTimeMs: 7}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		result, err := exec.Execute(ctx, Task{ProjectID: "p1", Node: delegateNode(), Delegation: delegation()})
		require.NoError(t, err)

		assert.Equal(t, protocol.StatusCompleted, result.Response.Status)
		assert.Equal(t, "here are the sources", result.Response.Response)
		assert.Equal(t, "Researcher", result.Response.DelegateName)
		assert.Equal(t, 0, result.RetryCount)
		assert.Equal(t, 42, result.TokenCount)
		assert.Equal(t, 0, result.Response.Metadata["retry_count"])
		assert.Equal(t, 0.9, result.Response.Confidence)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("passes system message and delegation prompt", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "ok"}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		_, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, "You research things.", provider.lastReq.SystemMessage)
		assert.Contains(t, provider.lastReq.Prompt, "find the sources")
		assert.Contains(t, provider.lastReq.Prompt, "the original request")
	})

	t.Run("empty output becomes an error response", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "   "}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		result, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, protocol.StatusError, result.Response.Status)
	})

	t.Run("ERROR prefix becomes an error response", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "ERROR: cannot comply"}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		result, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, protocol.StatusError, result.Response.Status)
		assert.Contains(t, result.Response.Response, "cannot comply")
	})

	t.Run("missing credential fails fast without invoking the provider", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "unreachable"}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider, err: llm.ErrNoCredential}, nil)

		_, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation()})
		require.Error(t, err)
		assert.ErrorIs(t, err, llm.ErrNoCredential)
		assert.Equal(t, 0, provider.calls)
	})

	t.Run("retries retryable errors then succeeds", func(t *testing.T) {
		provider := &fakeProvider{}
		provider.generate = func(context.Context, llm.Request) (*llm.Result, error) {
			if provider.calls == 1 {
				return nil, &llm.Error{Provider: "fake", Kind: "rate_limit", Message: "slow down", Retryable: true}
			}
			return &llm.Result{Text: "recovered"}, nil
		}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		result, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation(), MaxRetries: 2})
		require.NoError(t, err)
		assert.Equal(t, "recovered", result.Response.Response)
		assert.Equal(t, 1, result.RetryCount)
		assert.Equal(t, 2, provider.calls)
	})

	t.Run("does not retry non-retryable errors", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return nil, &llm.Error{Provider: "fake", Kind: "auth", Message: "bad key"}
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		_, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation(), MaxRetries: 3})
		require.Error(t, err)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("exhausts retries on repeated timeouts", func(t *testing.T) {
		provider := &fakeProvider{generate: func(ctx context.Context, _ llm.Request) (*llm.Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		result, err := exec.Execute(ctx, Task{
			Node:       delegateNode(),
			Delegation: delegation(),
			Timeout:    20 * time.Millisecond,
			MaxRetries: 1,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.True(t, result.TimedOut)
		assert.Equal(t, 1, result.RetryCount)
		assert.Equal(t, 2, provider.calls)
	})

	t.Run("unset timeout and retries use the documented defaults", func(t *testing.T) {
		var task Task
		assert.Equal(t, 30*time.Second, task.effectiveTimeout())
		task.MaxRetries = -1
		assert.Equal(t, 3, task.effectiveMaxRetries())
		task.MaxRetries = 0
		assert.Equal(t, 0, task.effectiveMaxRetries())
	})

	t.Run("applies the default per-attempt deadline", func(t *testing.T) {
		var deadline time.Time
		provider := &fakeProvider{}
		provider.generate = func(ctx context.Context, _ llm.Request) (*llm.Result, error) {
			deadline, _ = ctx.Deadline()
			return &llm.Result{Text: "ok"}, nil
		}
		exec := NewExecutor(&fakeSource{provider: provider}, nil)

		start := time.Now()
		_, err := exec.Execute(ctx, Task{Node: delegateNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.InDelta(t, float64(30*time.Second), float64(deadline.Sub(start)), float64(2*time.Second))
	})

	t.Run("doc aware delegates get retrieved context", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "answered with docs"}, nil
		}}
		searcher := &fakeSearcher{docs: []retrieval.Document{
			{Content: "doc body", Metadata: map[string]any{"source": "handbook.md", "score": 0.88}},
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, searcher)

		node := delegateNode()
		node.Data.DocAware = true
		node.Data.ContentFilters = []string{"folder_docs/"}

		_, err := exec.Execute(ctx, Task{Node: node, Delegation: delegation()})
		require.NoError(t, err)
		assert.Contains(t, provider.lastReq.Prompt, "doc body")
		assert.Contains(t, provider.lastReq.Prompt, "handbook.md")
		assert.Equal(t, "find the sources", searcher.lastReq.Query)
		assert.Equal(t, []string{"folder_docs/"}, searcher.lastReq.ContentFilters)
	})

	t.Run("search failure does not fail the delegation", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "answered anyway"}, nil
		}}
		searcher := &fakeSearcher{err: errors.New("qdrant down")}
		exec := NewExecutor(&fakeSource{provider: provider}, searcher)

		node := delegateNode()
		node.Data.DocAware = true

		result, err := exec.Execute(ctx, Task{Node: node, Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, protocol.StatusCompleted, result.Response.Status)
	})
}

func TestSleepBackoff(t *testing.T) {
	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, sleepBackoff(ctx, 5))
	})
}
