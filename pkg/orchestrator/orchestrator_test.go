package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/analysis"
	"github.com/weftworks/weft/pkg/delegate"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/workflow"
)

type scriptedReply struct {
	marker string
	reply  string
}

// scriptedProvider routes prompts to canned responses by substring, checked
// in declaration order so overlapping markers stay deterministic.
type scriptedProvider struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   []string
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func (p *scriptedProvider) Generate(_ context.Context, req llm.Request) (*llm.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req.Prompt)
	for _, r := range p.replies {
		if strings.Contains(req.Prompt, r.marker) {
			return &llm.Result{Text: r.reply}, nil
		}
	}
	return nil, fmt.Errorf("no scripted reply for prompt: %.80s", req.Prompt)
}

type staticSource struct {
	provider llm.Provider
	err      error
}

func (s *staticSource) Acquire(context.Context, string, string, string) (llm.Provider, error) {
	return s.provider, s.err
}

// recordingRunner answers delegations with a per-delegate function and
// records every task it sees.
type recordingRunner struct {
	mu      sync.Mutex
	tasks   []delegate.Task
	respond func(task delegate.Task) (*delegate.Result, error)
}

func (r *recordingRunner) Execute(_ context.Context, task delegate.Task) (*delegate.Result, error) {
	r.mu.Lock()
	r.tasks = append(r.tasks, task)
	r.mu.Unlock()
	if r.respond != nil {
		return r.respond(task)
	}
	resp := protocol.NewResponse(task.Delegation.SubqueryID, task.Node.DisplayName(),
		task.Node.DisplayName()+" answer", protocol.StatusCompleted)
	return &delegate.Result{Response: resp}, nil
}

func (r *recordingRunner) taskCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

func groupChatGraph(t *testing.T, gcmData workflow.NodeConfig) *workflow.Graph {
	t.Helper()
	gcmData.Name = "Manager"
	g, err := workflow.Parse(mustJSON(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "gcm", "type": "GroupChatManager", "data": gcmData},
			{"id": "d1", "type": "DelegateAgent", "data": map[string]any{"name": "Researcher", "description": "searches sources"}},
			{"id": "d2", "type": "DelegateAgent", "data": map[string]any{"name": "Analyst", "description": "crunches numbers"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "gcm", "type": "sequential"},
			{"source": "gcm", "target": "d1", "type": "delegate"},
			{"source": "d2", "target": "gcm", "type": "delegate"},
			{"source": "gcm", "target": "end", "type": "sequential"},
		},
	}))
	require.NoError(t, err)
	return g
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestGroupChatRoundRobin(t *testing.T) {
	ctx := context.Background()

	t.Run("runs rounds and synthesizes", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "the combined answer"},
		}}
		runner := &recordingRunner{}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, workflow.NodeConfig{MaxRounds: 2, MaxIterations: 2})
		outcome, err := o.Orchestrate(ctx, Request{
			ProjectID:     "p1",
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "investigate the outage"},
		})
		require.NoError(t, err)

		assert.Equal(t, "the combined answer", outcome.FinalOutput)
		assert.Equal(t, workflow.DelegationRoundRobin, outcome.Mode)
		// 2 delegates x 2 rounds
		assert.Len(t, outcome.Turns, 4)
		assert.Equal(t, 4, runner.taskCount())
		assert.ElementsMatch(t, []string{"Researcher", "Analyst"}, outcome.DelegateNames)
		assert.Equal(t, 1, outcome.Turns[0].Round)
		assert.Equal(t, 2, outcome.Turns[2].Round)
	})

	t.Run("termination condition completes a delegate", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "done"},
		}}
		runner := &recordingRunner{respond: func(task delegate.Task) (*delegate.Result, error) {
			text := task.Node.DisplayName() + " still working"
			if task.Node.DisplayName() == "Researcher" {
				text = "findings attached TERMINATE"
			}
			return &delegate.Result{Response: protocol.NewResponse(
				task.Delegation.SubqueryID, task.Node.DisplayName(), text, protocol.StatusCompleted)}, nil
		}}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, workflow.NodeConfig{MaxRounds: 3, MaxIterations: 3})
		g.Node("d1").Data.TerminationCondition = "TERMINATE"

		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "input"},
		})
		require.NoError(t, err)

		var researcherTurns int
		for _, turn := range outcome.Turns {
			if turn.Delegate == "Researcher" {
				researcherTurns++
			}
		}
		assert.Equal(t, 1, researcherTurns)
	})

	t.Run("any_delegate_complete stops after the first completion", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "done"},
		}}
		runner := &recordingRunner{respond: func(task delegate.Task) (*delegate.Result, error) {
			text := "working"
			if task.Node.DisplayName() == "Analyst" {
				text = "numbers crunched DONE"
			}
			return &delegate.Result{Response: protocol.NewResponse(
				task.Delegation.SubqueryID, task.Node.DisplayName(), text, protocol.StatusCompleted)}, nil
		}}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, workflow.NodeConfig{
			MaxRounds:           5,
			MaxIterations:       5,
			TerminationStrategy: workflow.TerminateAnyComplete,
		})
		g.Node("d2").Data.TerminationCondition = "DONE"

		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "input"},
		})
		require.NoError(t, err)
		assert.Len(t, outcome.Turns, 2)
	})

	t.Run("one delegate failure does not abort the round", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "partial answer"},
		}}
		runner := &recordingRunner{respond: func(task delegate.Task) (*delegate.Result, error) {
			if task.Node.DisplayName() == "Researcher" {
				return nil, errors.New("provider exploded")
			}
			return &delegate.Result{Response: protocol.NewResponse(
				task.Delegation.SubqueryID, task.Node.DisplayName(), "fine", protocol.StatusCompleted)}, nil
		}}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, workflow.NodeConfig{MaxRounds: 1, MaxIterations: 1})
		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "input"},
		})
		require.NoError(t, err)
		require.Len(t, outcome.Turns, 2)

		byName := map[string]Turn{}
		for _, turn := range outcome.Turns {
			byName[turn.Delegate] = turn
		}
		assert.Equal(t, protocol.StatusError, byName["Researcher"].Status)
		assert.Contains(t, byName["Researcher"].Content, "provider exploded")
		assert.Equal(t, protocol.StatusCompleted, byName["Analyst"].Status)
	})

	t.Run("fails without connected delegates", func(t *testing.T) {
		provider := &scriptedProvider{}
		o := New(&staticSource{provider: provider}, &recordingRunner{})

		g, err := workflow.Parse(mustJSON(t, map[string]any{
			"nodes": []map[string]any{
				{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
				{"id": "gcm", "type": "GroupChatManager", "data": map[string]any{"name": "Manager"}},
			},
			"edges": []map[string]any{
				{"source": "start", "target": "gcm", "type": "sequential"},
			},
		}))
		require.NoError(t, err)

		_, err = o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "input"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no connected delegates")
	})

	t.Run("provider acquisition failure is fatal", func(t *testing.T) {
		o := New(&staticSource{err: llm.ErrNoCredential}, &recordingRunner{})
		g := groupChatGraph(t, workflow.NodeConfig{})
		_, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "input"},
		})
		assert.ErrorIs(t, err, llm.ErrNoCredential)
	})
}

func TestGroupChatIntelligent(t *testing.T) {
	ctx := context.Background()

	intelligentConfig := func() workflow.NodeConfig {
		threshold := 0.6
		return workflow.NodeConfig{
			DelegationMode:                workflow.DelegationIntelligent,
			DelegationConfidenceThreshold: &threshold,
		}
	}

	t.Run("splits, matches, dispatches by level and synthesizes", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "final incident report"},
			{"Split the following request", `[
				{"query": "gather incident data", "priority": "high", "dependencies": []},
				{"query": "analyze root cause", "priority": "medium", "dependencies": [0]}
			]`},
			{"gather incident data", `{"assigned_delegates": ["Researcher"], "confidence": 0.9, "reasoning": "data gathering"}`},
			{"analyze root cause", `{"assigned_delegates": ["Analyst"], "confidence": 0.95, "reasoning": "analysis"}`},
		}}
		runner := &recordingRunner{}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, intelligentConfig())
		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "why did the service go down"},
		})
		require.NoError(t, err)

		assert.Equal(t, workflow.DelegationIntelligent, outcome.Mode)
		assert.Equal(t, "final incident report", outcome.FinalOutput)
		require.Len(t, outcome.Turns, 2)
		// dependency ordering: the dependent subquery dispatches second
		assert.Equal(t, "Researcher", outcome.Turns[0].Delegate)
		assert.Equal(t, "Analyst", outcome.Turns[1].Delegate)

		require.NotNil(t, outcome.Metrics)
		assert.Equal(t, 2, outcome.Metrics.TotalDelegations)
		assert.Equal(t, 2, outcome.Metrics.Successful)
		assert.Equal(t, 0, outcome.Metrics.Failed)
	})

	t.Run("low confidence broadcasts to every delegate", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "best effort answer"},
			{"Split the following request", `[{"query": "vague task", "priority": "medium", "dependencies": []}]`},
			{"vague task", `{"assigned_delegates": ["Researcher"], "confidence": 0.2, "reasoning": "unsure"}`},
		}}
		runner := &recordingRunner{}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, intelligentConfig())
		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "do something"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, outcome.Metrics.TotalDelegations)
		delegatesSeen := map[string]bool{}
		for _, turn := range outcome.Turns {
			delegatesSeen[turn.Delegate] = true
		}
		assert.True(t, delegatesSeen["Researcher"])
		assert.True(t, delegatesSeen["Analyst"])
	})

	t.Run("delegate failures are counted, never abort the batch", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "partial report"},
			{"Split the following request", `[
				{"query": "task one", "priority": "high", "dependencies": []},
				{"query": "task two", "priority": "high", "dependencies": []}
			]`},
			{"task one", `{"assigned_delegates": ["Researcher"], "confidence": 0.9, "reasoning": "r"}`},
			{"task two", `{"assigned_delegates": ["Analyst"], "confidence": 0.9, "reasoning": "r"}`},
		}}
		runner := &recordingRunner{respond: func(task delegate.Task) (*delegate.Result, error) {
			if task.Node.DisplayName() == "Analyst" {
				return &delegate.Result{RetryCount: 2, TimedOut: true}, errors.New("timed out")
			}
			return &delegate.Result{Response: protocol.NewResponse(
				task.Delegation.SubqueryID, task.Node.DisplayName(), "ok", protocol.StatusCompleted)}, nil
		}}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, intelligentConfig())
		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{"start": "two tasks"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, outcome.Metrics.TotalDelegations)
		assert.Equal(t, 1, outcome.Metrics.Successful)
		assert.Equal(t, 1, outcome.Metrics.Failed)
		assert.Equal(t, 1, outcome.Metrics.Timeouts)
		assert.Equal(t, 2, outcome.Metrics.Retries)
	})

	t.Run("falls back to round robin without input context", func(t *testing.T) {
		provider := &scriptedProvider{replies: []scriptedReply{
			{"Synthesize a single", "fallback answer"},
		}}
		runner := &recordingRunner{}
		o := New(&staticSource{provider: provider}, runner)

		g := groupChatGraph(t, intelligentConfig())
		outcome, err := o.Orchestrate(ctx, Request{
			Graph:         g,
			Node:          g.Node("gcm"),
			ExecutedNodes: map[string]string{},
		})
		require.NoError(t, err)
		assert.Equal(t, workflow.DelegationRoundRobin, outcome.Mode)
	})
}

func TestDependencyLevels(t *testing.T) {
	mk := func(id string, deps ...int) analysis.Assignment {
		return analysis.Assignment{Subquery: analysis.Subquery{SubqueryID: id, Dependencies: deps}}
	}

	t.Run("independent subqueries share a level", func(t *testing.T) {
		levels := dependencyLevels([]analysis.Assignment{mk("a"), mk("b")})
		require.Len(t, levels, 1)
		assert.Len(t, levels[0], 2)
	})

	t.Run("dependencies create sequential levels", func(t *testing.T) {
		levels := dependencyLevels([]analysis.Assignment{mk("a"), mk("b", 0), mk("c", 1)})
		require.Len(t, levels, 3)
		assert.Equal(t, "a", levels[0][0].Subquery.SubqueryID)
		assert.Equal(t, "b", levels[1][0].Subquery.SubqueryID)
		assert.Equal(t, "c", levels[2][0].Subquery.SubqueryID)
	})

	t.Run("cycles run remaining subqueries in one level", func(t *testing.T) {
		levels := dependencyLevels([]analysis.Assignment{mk("a", 1), mk("b", 0)})
		require.Len(t, levels, 1)
		assert.Len(t, levels[0], 2)
	})
}

func TestMatchesTermination(t *testing.T) {
	assert.True(t, matchesTermination("all done TERMINATE", "TERMINATE"))
	assert.True(t, matchesTermination("all done TERMINATE  \n", "TERMINATE"))
	assert.False(t, matchesTermination("TERMINATE but then more", "TERMINATE"))
	assert.False(t, matchesTermination("anything", ""))
}
