package delegate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/workflow"
)

type fakeToolRunner struct {
	defs     []ToolDefinition
	defsErr  error
	results  map[string]string
	callErr  error
	calls    []string
	lastArgs map[string]any
	closed   bool
}

func (f *fakeToolRunner) Tools(context.Context) ([]ToolDefinition, error) {
	return f.defs, f.defsErr
}

func (f *fakeToolRunner) Call(_ context.Context, name string, args map[string]any) (string, error) {
	f.calls = append(f.calls, name)
	f.lastArgs = args
	if f.callErr != nil {
		return "", f.callErr
	}
	return f.results[name], nil
}

func (f *fakeToolRunner) Close() error {
	f.closed = true
	return nil
}

type fakeToolSource struct {
	runner *fakeToolRunner
	err    error
}

func (f *fakeToolSource) Session(context.Context, []string) (ToolRunner, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runner, nil
}

func toolNode() *workflow.Node {
	n := delegateNode()
	n.Data.MCPServers = []string{"search"}
	return n
}

func searchTools() []ToolDefinition {
	return []ToolDefinition{{
		Name:        "search.lookup",
		Description: "look something up",
		Schema:      `{"type":"object","properties":{"q":{"type":"string"}}}`,
	}}
}

func TestParseToolAction(t *testing.T) {
	t.Run("extracts action and input", func(t *testing.T) {
		action, _, ok := parseToolAction("Thought: need data\nAction: search.lookup\nAction Input: {\"q\": \"go\"}")
		require.True(t, ok)
		assert.Equal(t, "search.lookup", action.Name)
		assert.Equal(t, `{"q": "go"}`, action.Input)
	})

	t.Run("collects multi-line action input", func(t *testing.T) {
		action, _, ok := parseToolAction("Action: search.lookup\nAction Input: {\n  \"q\": \"go\"\n}")
		require.True(t, ok)
		assert.JSONEq(t, `{"q":"go"}`, action.Input)
	})

	t.Run("strips the final answer marker", func(t *testing.T) {
		_, answer, ok := parseToolAction("Thought: done\nFinal Answer: use Go modules")
		require.False(t, ok)
		assert.Equal(t, "use Go modules", answer)
	})

	t.Run("plain text is a final answer", func(t *testing.T) {
		_, answer, ok := parseToolAction("use Go modules")
		require.False(t, ok)
		assert.Equal(t, "use Go modules", answer)
	})
}

func TestGenerateWithTools(t *testing.T) {
	ctx := context.Background()

	t.Run("calls the tool then answers", func(t *testing.T) {
		runner := &fakeToolRunner{
			defs:    searchTools(),
			results: map[string]string{"search.lookup": "three results"},
		}
		turn := 0
		provider := &fakeProvider{generate: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			turn++
			if turn == 1 {
				assert.Contains(t, req.SystemMessage, "search.lookup")
				return &llm.Result{Text: "Action: search.lookup\nAction Input: {\"q\": \"go\"}", TokenCount: 10}, nil
			}
			assert.Contains(t, req.Prompt, "Observation: three results")
			return &llm.Result{Text: "Final Answer: found them", TokenCount: 5}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil, WithTools(&fakeToolSource{runner: runner}))

		result, err := exec.Execute(ctx, Task{ProjectID: "p1", Node: toolNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, "found them", result.Response.Response)
		assert.Equal(t, []string{"search.lookup"}, runner.calls)
		assert.Equal(t, map[string]any{"q": "go"}, runner.lastArgs)
		assert.Equal(t, 15, result.TokenCount)
		assert.True(t, runner.closed)
	})

	t.Run("tool failure becomes an observation", func(t *testing.T) {
		runner := &fakeToolRunner{defs: searchTools(), callErr: errors.New("server down")}
		turn := 0
		provider := &fakeProvider{generate: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			turn++
			if turn == 1 {
				return &llm.Result{Text: "Action: search.lookup\nAction Input: {}"}, nil
			}
			assert.Contains(t, req.Prompt, "ERROR: tool call failed")
			return &llm.Result{Text: "Final Answer: answered without the tool"}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil, WithTools(&fakeToolSource{runner: runner}))

		result, err := exec.Execute(ctx, Task{ProjectID: "p1", Node: toolNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, "answered without the tool", result.Response.Response)
	})

	t.Run("turn budget bounds the loop", func(t *testing.T) {
		runner := &fakeToolRunner{
			defs:    searchTools(),
			results: map[string]string{"search.lookup": "more"},
		}
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "Action: search.lookup\nAction Input: {}"}, nil
		}}
		node := toolNode()
		node.Data.MaxIterations = 3
		exec := NewExecutor(&fakeSource{provider: provider}, nil, WithTools(&fakeToolSource{runner: runner}))

		result, err := exec.Execute(ctx, Task{ProjectID: "p1", Node: node, Delegation: delegation()})
		require.NoError(t, err)
		assert.Len(t, runner.calls, 3)
		// The last turn still requested a tool, so there is no answer text.
		assert.NotNil(t, result.Response)
	})

	t.Run("no tools falls back to a plain call", func(t *testing.T) {
		runner := &fakeToolRunner{}
		provider := &fakeProvider{generate: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			assert.NotContains(t, req.SystemMessage, "Action:")
			return &llm.Result{Text: "plain answer"}, nil
		}}
		exec := NewExecutor(&fakeSource{provider: provider}, nil, WithTools(&fakeToolSource{runner: runner}))

		result, err := exec.Execute(ctx, Task{ProjectID: "p1", Node: toolNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, "plain answer", result.Response.Response)
	})

	t.Run("nodes without servers skip the tool path", func(t *testing.T) {
		provider := &fakeProvider{generate: func(context.Context, llm.Request) (*llm.Result, error) {
			return &llm.Result{Text: "direct"}, nil
		}}
		source := &fakeToolSource{err: errors.New("must not be called")}
		exec := NewExecutor(&fakeSource{provider: provider}, nil, WithTools(source))

		result, err := exec.Execute(ctx, Task{ProjectID: "p1", Node: delegateNode(), Delegation: delegation()})
		require.NoError(t, err)
		assert.Equal(t, "direct", result.Response.Response)
	})
}

func TestToolInstructions(t *testing.T) {
	text := toolInstructions(searchTools())
	assert.Contains(t, text, "search.lookup: look something up")
	assert.Contains(t, text, "Action Input: <JSON object of arguments>")
	assert.True(t, strings.Contains(text, `"q"`))
}
