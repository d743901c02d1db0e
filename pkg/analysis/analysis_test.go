package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
)

// fakeProvider returns canned responses for analysis prompts.
type fakeProvider struct {
	generate func(req llm.Request) (*llm.Result, error)
	calls    int
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) Generate(_ context.Context, req llm.Request) (*llm.Result, error) {
	f.calls++
	return f.generate(req)
}

func testDelegates() []DelegateDescription {
	return []DelegateDescription{
		{Name: "Researcher", Description: "searches sources"},
		{Name: "Analyst", Description: "crunches numbers"},
		{Name: "Writer", Description: "drafts prose"},
	}
}

func TestSplit(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a JSON array with priorities and dependencies", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `[
				{"query": "find the sources", "priority": "high", "dependencies": [], "suggested_delegates": ["Researcher"]},
				{"query": "summarize findings", "priority": "medium", "dependencies": [0], "suggested_delegates": ["Writer"]}
			]`}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "research and summarize", testDelegates(), 0)

		require.Len(t, subqueries, 2)
		assert.Equal(t, protocol.PriorityHigh, subqueries[0].Priority)
		assert.Equal(t, 0, subqueries[0].Index)
		assert.Equal(t, []int{0}, subqueries[1].Dependencies)
		assert.NotEmpty(t, subqueries[0].SubqueryID)
		assert.NotEqual(t, subqueries[0].SubqueryID, subqueries[1].SubqueryID)
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "```json\n[{\"query\": \"task one\", \"priority\": \"low\"}]\n```"}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "input", testDelegates(), 0)
		require.Len(t, subqueries, 1)
		assert.Equal(t, "task one", subqueries[0].Query)
		assert.Equal(t, protocol.PriorityLow, subqueries[0].Priority)
	})

	t.Run("truncates by priority when over the cap", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `[
				{"query": "low task", "priority": "low"},
				{"query": "high task", "priority": "high"},
				{"query": "medium task", "priority": "medium"}
			]`}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "input", testDelegates(), 2)

		require.Len(t, subqueries, 2)
		assert.Equal(t, "high task", subqueries[0].Query)
		assert.Equal(t, "medium task", subqueries[1].Query)
		assert.Equal(t, 0, subqueries[0].Index)
		assert.Equal(t, 1, subqueries[1].Index)
	})

	t.Run("truncation remaps dependencies through the new order", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `[
				{"query": "archive old data", "priority": "low"},
				{"query": "fetch metrics", "priority": "high"},
				{"query": "analyze metrics", "priority": "medium", "dependencies": [1]}
			]`}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "input", testDelegates(), 2)

		require.Len(t, subqueries, 2)
		assert.Equal(t, "fetch metrics", subqueries[0].Query)
		assert.Equal(t, "analyze metrics", subqueries[1].Query)
		// the dependency followed "fetch metrics" to its new position
		assert.Equal(t, []int{0}, subqueries[1].Dependencies)
	})

	t.Run("truncation drops dependencies on dropped subqueries", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `[
				{"query": "cleanup", "priority": "low"},
				{"query": "fetch", "priority": "high", "dependencies": [0]},
				{"query": "report", "priority": "medium", "dependencies": [1]}
			]`}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "input", testDelegates(), 2)

		require.Len(t, subqueries, 2)
		assert.Empty(t, subqueries[0].Dependencies)
		assert.Equal(t, []int{0}, subqueries[1].Dependencies)
	})

	t.Run("invalid priority coerces to medium", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `[{"query": "task", "priority": "urgent"}]`}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "input", testDelegates(), 0)
		require.Len(t, subqueries, 1)
		assert.Equal(t, protocol.PriorityMedium, subqueries[0].Priority)
	})

	t.Run("falls back to a single subquery on parse failure", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "I cannot split this request."}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "the full input", testDelegates(), 0)

		require.Len(t, subqueries, 1)
		assert.Equal(t, "the full input", subqueries[0].Query)
		assert.Equal(t, protocol.PriorityMedium, subqueries[0].Priority)
		assert.Equal(t, []string{"Researcher", "Analyst", "Writer"}, subqueries[0].SuggestedDelegates)
	})

	t.Run("falls back on provider error", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return nil, &llm.Error{Provider: "fake", Kind: "api", Message: "boom"}
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "the input", testDelegates(), 0)
		require.Len(t, subqueries, 1)
		assert.Equal(t, "the input", subqueries[0].Query)
	})

	t.Run("falls back on empty array", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "[]"}, nil
		}}
		subqueries := NewAnalyzer(provider).Split(ctx, "the input", testDelegates(), 0)
		require.Len(t, subqueries, 1)
	})

	t.Run("uses a low temperature", func(t *testing.T) {
		var seen float64
		provider := &fakeProvider{generate: func(req llm.Request) (*llm.Result, error) {
			seen = req.Temperature
			return &llm.Result{Text: `[{"query": "q", "priority": "high"}]`}, nil
		}}
		NewAnalyzer(provider).Split(ctx, "input", testDelegates(), 0)
		assert.LessOrEqual(t, seen, 0.3)
	})
}

func TestMatch(t *testing.T) {
	ctx := context.Background()
	sq := Subquery{SubqueryID: "sq-1", Query: "crunch the numbers", Priority: protocol.PriorityHigh}

	t.Run("assigns matched delegates above threshold", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `{"assigned_delegates": ["Analyst"], "confidence": 0.92, "reasoning": "numeric task"}`}, nil
		}}
		a := NewAnalyzer(provider).Match(ctx, sq, testDelegates(), 0.7)

		assert.Equal(t, []string{"Analyst"}, a.AssignedDelegates)
		assert.Equal(t, 0.92, a.Confidence)
		assert.Equal(t, "numeric task", a.Reasoning)
		assert.Equal(t, "pending", a.Status)
	})

	t.Run("clamps confidence into [0,1]", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `{"assigned_delegates": ["Analyst"], "confidence": 1.7, "reasoning": "r"}`}, nil
		}}
		a := NewAnalyzer(provider).Match(ctx, sq, testDelegates(), 0.7)
		assert.Equal(t, 1.0, a.Confidence)
	})

	t.Run("broadcasts below threshold", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `{"assigned_delegates": ["Analyst"], "confidence": 0.4, "reasoning": "unsure"}`}, nil
		}}
		a := NewAnalyzer(provider).Match(ctx, sq, testDelegates(), 0.7)

		assert.Equal(t, []string{"Researcher", "Analyst", "Writer"}, a.AssignedDelegates)
		assert.Equal(t, 0.5, a.Confidence)
		assert.Contains(t, a.Reasoning, "below threshold")
	})

	t.Run("broadcasts when assigned names are unknown", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: `{"assigned_delegates": ["Ghost"], "confidence": 0.95, "reasoning": "r"}`}, nil
		}}
		a := NewAnalyzer(provider).Match(ctx, sq, testDelegates(), 0.7)

		assert.Equal(t, []string{"Researcher", "Analyst", "Writer"}, a.AssignedDelegates)
		assert.Contains(t, a.Reasoning, "no valid delegates")
	})

	t.Run("broadcasts on provider error", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return nil, &llm.Error{Provider: "fake", Kind: "api", Message: "boom"}
		}}
		a := NewAnalyzer(provider).Match(ctx, sq, testDelegates(), 0.7)

		assert.Equal(t, []string{"Researcher", "Analyst", "Writer"}, a.AssignedDelegates)
		assert.Contains(t, a.Reasoning, "match call failed")
	})

	t.Run("broadcasts on malformed output", func(t *testing.T) {
		provider := &fakeProvider{generate: func(llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "the Analyst should do it"}, nil
		}}
		a := NewAnalyzer(provider).Match(ctx, sq, testDelegates(), 0.7)
		assert.Len(t, a.AssignedDelegates, 3)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, StripCodeFences("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, StripCodeFences(`[{"a":1}]`))
}
