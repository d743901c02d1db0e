package hitl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/workflow"
)

type memStore struct {
	execution    *models.Execution
	conversation []string
	messages     []models.Message
	humanInputs  []models.HumanInputRecord
	interactions []models.LLMInteraction
	finalized    map[string]models.FinalizeRequest
	stale        []*models.Execution
}

func newMemStore(execution *models.Execution) *memStore {
	if execution != nil && execution.ExecutedNodes == nil {
		execution.ExecutedNodes = map[string]string{}
	}
	return &memStore{execution: execution, finalized: map[string]models.FinalizeRequest{}}
}

func (s *memStore) Get(context.Context, string) (*models.Execution, error) {
	copied := *s.execution
	copied.ExecutedNodes = s.copyNodes()
	return &copied, nil
}

func (s *memStore) ExecutedNodes(context.Context, string) (map[string]string, error) {
	return s.copyNodes(), nil
}

func (s *memStore) copyNodes() map[string]string {
	out := make(map[string]string, len(s.execution.ExecutedNodes))
	for k, v := range s.execution.ExecutedNodes {
		out[k] = v
	}
	return out
}

func (s *memStore) SaveExecutedNodes(_ context.Context, _ string, nodes map[string]string) error {
	s.execution.ExecutedNodes = nodes
	return nil
}

func (s *memStore) SetExecutedNode(_ context.Context, _, nodeID, output string) error {
	if _, exists := s.execution.ExecutedNodes[nodeID]; !exists {
		s.execution.ExecutedNodes[nodeID] = output
	}
	return nil
}

func (s *memStore) SavePause(_ context.Context, _ string, req models.PauseRequest, requestedAt time.Time) error {
	s.execution.Status = models.StatusAwaitingHumanInput
	s.execution.HumanInputRequired = true
	s.execution.AwaitingHumanInput = req.AgentName
	s.execution.HumanInputAgentID = req.AgentID
	s.execution.HumanInputContext = req.Context
	s.execution.HumanInputRequestedAt = &requestedAt
	return nil
}

func (s *memStore) ClearHumanInput(_ context.Context, _ string, receivedAt time.Time) error {
	s.execution.HumanInputRequired = false
	s.execution.HumanInputReceivedAt = &receivedAt
	return nil
}

func (s *memStore) AppendConversation(_ context.Context, _ string, entry string) error {
	s.conversation = append(s.conversation, entry)
	return nil
}

func (s *memStore) AppendMessage(_ context.Context, _ string, msg models.Message) error {
	msg.Sequence = len(s.messages) + 1
	s.messages = append(s.messages, msg)
	return nil
}

func (s *memStore) RecordHumanInput(_ context.Context, _ string, rec models.HumanInputRecord) error {
	s.humanInputs = append(s.humanInputs, rec)
	return nil
}

func (s *memStore) RecordInteraction(_ context.Context, _ string, in models.LLMInteraction) error {
	s.interactions = append(s.interactions, in)
	return nil
}

func (s *memStore) Finalize(_ context.Context, executionID string, req models.FinalizeRequest) error {
	s.finalized[executionID] = req
	return nil
}

func (s *memStore) StaleAwaiting(context.Context, time.Time) ([]*models.Execution, error) {
	return s.stale, nil
}

type fakeScheduler struct {
	calls []string
	err   error
}

func (f *fakeScheduler) Execute(_ context.Context, executionID string) error {
	f.calls = append(f.calls, executionID)
	return f.err
}

type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

func (p *stubProvider) Generate(context.Context, llm.Request) (*llm.Result, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Result{Text: p.text}, nil
}

type stubSource struct {
	provider llm.Provider
	err      error
}

func (s *stubSource) Acquire(context.Context, string, string, string) (llm.Provider, error) {
	return s.provider, s.err
}

func reviewWorkflow(t *testing.T) map[string]any {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "writer", "type": "AssistantAgent", "data": map[string]any{"name": "Writer", "max_iterations": 2}},
			{"id": "proxy", "type": "UserProxyAgent", "data": map[string]any{"name": "Reviewer", "require_human_input": true}},
			{"id": "publisher", "type": "AssistantAgent", "data": map[string]any{"name": "Publisher"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "writer", "type": "sequential"},
			{"source": "writer", "target": "proxy", "type": "reflection"},
			{"source": "proxy", "target": "publisher", "type": "sequential"},
			{"source": "publisher", "target": "end", "type": "sequential"},
		},
	})
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	_, err = workflow.FromMap(m)
	require.NoError(t, err)
	return m
}

func pausedExecution(t *testing.T, hctx *models.HumanInputContext) *models.Execution {
	now := time.Now().UTC()
	return &models.Execution{
		ID:                    "ex-1",
		ProjectID:             "p1",
		Input:                 "write a post",
		Status:                models.StatusRunning,
		Workflow:              reviewWorkflow(t),
		ExecutedNodes:         map[string]string{"start": "write a post", "writer": "draft v1"},
		HumanInputRequired:    true,
		AwaitingHumanInput:    "Reviewer",
		HumanInputAgentID:     "proxy",
		HumanInputContext:     hctx,
		HumanInputRequestedAt: &now,
	}
}

func newController(store *memStore, providers *stubSource) (*Controller, *fakeScheduler) {
	c := NewController(store, NewReflector(providers))
	sched := &fakeScheduler{}
	c.SetScheduler(sched)
	return c, sched
}

func TestPause(t *testing.T) {
	ctx := context.Background()

	t.Run("merges executed nodes with local copy winning", func(t *testing.T) {
		store := newMemStore(&models.Execution{
			ID:            "ex-1",
			ExecutedNodes: map[string]string{"start": "stored", "other": "kept"},
		})
		c, _ := newController(store, &stubSource{})

		err := c.Pause(ctx, "ex-1", models.PauseRequest{
			AgentName:     "Reviewer",
			AgentID:       "proxy",
			Context:       &models.HumanInputContext{Inputs: "draft"},
			ExecutedNodes: map[string]string{"start": "local", "writer": "draft v1"},
		})
		require.NoError(t, err)

		assert.Equal(t, "local", store.execution.ExecutedNodes["start"])
		assert.Equal(t, "kept", store.execution.ExecutedNodes["other"])
		assert.Equal(t, "draft v1", store.execution.ExecutedNodes["writer"])
		assert.True(t, store.execution.HumanInputRequired)
		assert.Equal(t, "Reviewer", store.execution.AwaitingHumanInput)
		assert.Equal(t, "proxy", store.execution.HumanInputAgentID)
		assert.NotNil(t, store.execution.HumanInputRequestedAt)
		assert.Equal(t, models.StatusAwaitingHumanInput, store.execution.Status)
	})
}

func TestResume(t *testing.T) {
	ctx := context.Background()

	t.Run("routes input and re-enters the scheduler", func(t *testing.T) {
		store := newMemStore(pausedExecution(t, nil))
		c, sched := newController(store, &stubSource{})

		err := c.Resume(ctx, models.ResumeRequest{ExecutionID: "ex-1", Input: "looks good, publish it"})
		require.NoError(t, err)

		assert.False(t, store.execution.HumanInputRequired)
		assert.NotNil(t, store.execution.HumanInputReceivedAt)
		assert.Equal(t, "looks good, publish it", store.execution.ExecutedNodes["proxy"])
		assert.Equal(t, []string{"ex-1"}, sched.calls)

		require.Len(t, store.humanInputs, 1)
		assert.Equal(t, models.ActionSubmit, store.humanInputs[0].Action)
		assert.Equal(t, "proxy", store.humanInputs[0].AgentID)

		require.Len(t, store.conversation, 1)
		assert.Equal(t, "Reviewer: looks good, publish it", store.conversation[0])

		require.Len(t, store.messages, 1)
		assert.Equal(t, models.MessageHumanInput, store.messages[0].Type)
		assert.Equal(t, "Reviewer", store.messages[0].AgentName)
	})

	t.Run("rejects executions that are not waiting", func(t *testing.T) {
		execution := pausedExecution(t, nil)
		execution.HumanInputRequired = false
		execution.Status = models.StatusCompleted
		store := newMemStore(execution)
		c, sched := newController(store, &stubSource{})

		err := c.Resume(ctx, models.ResumeRequest{ExecutionID: "ex-1", Input: "late input"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotAwaitingInput))
		assert.Empty(t, sched.calls)
		assert.Empty(t, store.humanInputs)
	})

	t.Run("accepts running executions whose flag was lost", func(t *testing.T) {
		execution := pausedExecution(t, nil)
		execution.HumanInputRequired = false
		store := newMemStore(execution)
		c, sched := newController(store, &stubSource{})

		err := c.Resume(ctx, models.ResumeRequest{ExecutionID: "ex-1", Input: "input"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ex-1"}, sched.calls)
	})

	t.Run("marks a terminal proxy executed without publishing its input", func(t *testing.T) {
		execution := pausedExecution(t, nil)
		wf := execution.Workflow
		// drop the proxy's outgoing edges
		edges := wf["edges"].([]any)
		var trimmed []any
		for _, e := range edges {
			if e.(map[string]any)["source"] == "proxy" {
				continue
			}
			trimmed = append(trimmed, e)
		}
		wf["edges"] = trimmed
		// publisher now only feeds end
		store := newMemStore(execution)
		c, sched := newController(store, &stubSource{})

		err := c.Resume(ctx, models.ResumeRequest{ExecutionID: "ex-1", Input: "noted, thanks"})
		require.NoError(t, err)

		// the empty marker records the answer durably; the input itself
		// stays out of executed_nodes
		require.Contains(t, store.execution.ExecutedNodes, "proxy")
		assert.Equal(t, "", store.execution.ExecutedNodes["proxy"])
		assert.Equal(t, []string{"ex-1"}, sched.calls)
		require.Len(t, store.messages, 1)
		assert.Equal(t, models.MessageHumanInput, store.messages[0].Type)
	})
}

func TestReflection(t *testing.T) {
	ctx := context.Background()
	reflectionCtx := func(iteration int) *models.HumanInputContext {
		return &models.HumanInputContext{
			InputSources:       []string{"Writer"},
			Inputs:             "draft v1",
			ReflectionSource:   "Writer",
			ReflectionSourceID: "writer",
			Iteration:          iteration,
		}
	}

	t.Run("submit accepts the input as the final output", func(t *testing.T) {
		store := newMemStore(pausedExecution(t, reflectionCtx(1)))
		c, sched := newController(store, &stubSource{})

		err := c.Resume(ctx, models.ResumeRequest{
			ExecutionID: "ex-1",
			Input:       "draft v1 with my edits",
			Action:      models.ActionSubmit,
		})
		require.NoError(t, err)

		assert.Equal(t, "draft v1 with my edits", store.execution.ExecutedNodes["writer"])
		assert.Equal(t, "draft v1 with my edits", store.execution.ExecutedNodes["proxy"])
		assert.Equal(t, []string{"ex-1"}, sched.calls)

		last := store.messages[len(store.messages)-1]
		assert.Equal(t, models.MessageReflectionFinal, last.Type)
		assert.Equal(t, "Writer", last.AgentName)
	})

	t.Run("submit with empty input keeps the current candidate", func(t *testing.T) {
		store := newMemStore(pausedExecution(t, reflectionCtx(1)))
		c, _ := newController(store, &stubSource{})

		err := c.Resume(ctx, models.ResumeRequest{
			ExecutionID: "ex-1",
			Action:      models.ActionSubmit,
		})
		require.NoError(t, err)
		assert.Equal(t, "draft v1", store.execution.ExecutedNodes["writer"])
		assert.Equal(t, "draft v1", store.execution.ExecutedNodes["proxy"])
	})

	t.Run("iterate re-runs the source and pauses again", func(t *testing.T) {
		store := newMemStore(pausedExecution(t, reflectionCtx(1)))
		provider := &stubProvider{text: "draft v2"}
		c, sched := newController(store, &stubSource{provider: provider})

		err := c.Resume(ctx, models.ResumeRequest{
			ExecutionID: "ex-1",
			Input:       "make it shorter",
			Action:      models.ActionIterate,
		})
		require.NoError(t, err)

		assert.Equal(t, "draft v2", store.execution.ExecutedNodes["writer"])
		assert.NotContains(t, store.execution.ExecutedNodes, "proxy")
		assert.Empty(t, sched.calls)

		// paused again with the incremented iteration
		assert.True(t, store.execution.HumanInputRequired)
		require.NotNil(t, store.execution.HumanInputContext)
		assert.Equal(t, 2, store.execution.HumanInputContext.Iteration)
		assert.Equal(t, "draft v2", store.execution.HumanInputContext.Inputs)

		// revision call is audited
		require.Len(t, store.interactions, 1)
		assert.Equal(t, "writer", store.interactions[0].NodeID)
	})

	t.Run("iterate at the cap forces submit with the last candidate", func(t *testing.T) {
		// Writer's max_iterations is 2
		store := newMemStore(pausedExecution(t, reflectionCtx(2)))
		provider := &stubProvider{text: "should not be called"}
		c, sched := newController(store, &stubSource{provider: provider})

		err := c.Resume(ctx, models.ResumeRequest{
			ExecutionID: "ex-1",
			Input:       "still not right",
			Action:      models.ActionIterate,
		})
		require.NoError(t, err)

		assert.Equal(t, "draft v1", store.execution.ExecutedNodes["writer"])
		assert.Equal(t, "draft v1", store.execution.ExecutedNodes["proxy"])
		assert.Equal(t, []string{"ex-1"}, sched.calls)
		assert.Empty(t, store.interactions)
	})

	t.Run("iterate restores the pause when the provider fails", func(t *testing.T) {
		store := newMemStore(pausedExecution(t, reflectionCtx(1)))
		c, sched := newController(store, &stubSource{provider: &stubProvider{err: errors.New("rate limited")}})

		err := c.Resume(ctx, models.ResumeRequest{
			ExecutionID: "ex-1",
			Input:       "feedback",
			Action:      models.ActionIterate,
		})
		require.Error(t, err)

		assert.True(t, store.execution.HumanInputRequired)
		assert.Equal(t, 1, store.execution.HumanInputContext.Iteration)
		assert.Equal(t, "draft v1", store.execution.ExecutedNodes["writer"])
		assert.Empty(t, sched.calls)
	})
}

func TestSweeper(t *testing.T) {
	ctx := context.Background()

	t.Run("auto-cancels stale executions", func(t *testing.T) {
		store := newMemStore(&models.Execution{ID: "ex-1"})
		store.stale = []*models.Execution{
			{ID: "stale-1", AwaitingHumanInput: "Reviewer"},
			{ID: "stale-2", AwaitingHumanInput: "Approver"},
		}
		sweeper := NewSweeper(store, time.Hour, time.Minute)

		n, err := sweeper.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		req, ok := store.finalized["stale-1"]
		require.True(t, ok)
		assert.Equal(t, models.StatusCompleted, req.Status)
		assert.Contains(t, req.ResultSummary, "Auto-cancelled")
		assert.Contains(t, req.ResultSummary, "Reviewer")
	})

	t.Run("nothing stale is a no-op", func(t *testing.T) {
		store := newMemStore(&models.Execution{ID: "ex-1"})
		sweeper := NewSweeper(store, 0, 0)
		n, err := sweeper.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
