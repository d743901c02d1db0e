package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/orchestrator"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/workflow"
)

// memStore is an in-memory Store for scheduler tests.
type memStore struct {
	mu            sync.Mutex
	execution     *models.Execution
	messages      []models.Message
	interactions  []models.LLMInteraction
	conversations map[string]any
	finalized     *models.FinalizeRequest
}

func newMemStore(execution *models.Execution) *memStore {
	if execution.ExecutedNodes == nil {
		execution.ExecutedNodes = map[string]string{}
	}
	return &memStore{execution: execution}
}

func (s *memStore) Get(_ context.Context, _ string) (*models.Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *s.execution
	copied.ExecutedNodes = s.copyNodes()
	return &copied, nil
}

func (s *memStore) MarkStarted(_ context.Context, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	s.execution.StartedAt = &now
	s.execution.Status = models.StatusRunning
	return nil
}

func (s *memStore) SetExecutedNode(_ context.Context, _, nodeID, output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.execution.ExecutedNodes[nodeID]; !exists {
		s.execution.ExecutedNodes[nodeID] = output
	}
	return nil
}

func (s *memStore) ExecutedNodes(_ context.Context, _ string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyNodes(), nil
}

func (s *memStore) copyNodes() map[string]string {
	out := make(map[string]string, len(s.execution.ExecutedNodes))
	for k, v := range s.execution.ExecutedNodes {
		out[k] = v
	}
	return out
}

func (s *memStore) SaveDelegateConversations(_ context.Context, _ string, conversations map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = conversations
	return nil
}

func (s *memStore) AppendMessage(_ context.Context, _ string, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.Sequence = len(s.messages) + 1
	s.messages = append(s.messages, msg)
	return nil
}

func (s *memStore) Messages(_ context.Context, _ string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...), nil
}

func (s *memStore) RecordInteraction(_ context.Context, _ string, in models.LLMInteraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = append(s.interactions, in)
	return nil
}

func (s *memStore) Finalize(_ context.Context, _ string, req models.FinalizeRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized = &req
	s.execution.Status = req.Status
	s.execution.FinalOutput = req.FinalOutput
	s.execution.ErrorMessage = req.ErrorMessage
	return nil
}

// recordingPauser mimics the pause controller: it flips the human-input
// flags on the stored execution.
type recordingPauser struct {
	store  *memStore
	pauses []models.PauseRequest
}

func (p *recordingPauser) Pause(_ context.Context, _ string, req models.PauseRequest) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	p.pauses = append(p.pauses, req)
	now := time.Now().UTC()
	p.store.execution.HumanInputRequired = true
	p.store.execution.AwaitingHumanInput = req.AgentName
	p.store.execution.HumanInputAgentID = req.AgentID
	p.store.execution.HumanInputContext = req.Context
	p.store.execution.HumanInputRequestedAt = &now
	return nil
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
	return &llm.Result{Text: p.text, TokenCount: 10, ResponseTimeMs: 3}, nil
}

type stubSource struct {
	provider llm.Provider
	err      error
}

func (s *stubSource) Acquire(context.Context, string, string, string) (llm.Provider, error) {
	return s.provider, s.err
}

type stubGroupChat struct {
	outcome *orchestrator.Outcome
	err     error
	lastReq orchestrator.Request
}

func (g *stubGroupChat) Orchestrate(_ context.Context, req orchestrator.Request) (*orchestrator.Outcome, error) {
	g.lastReq = req
	return g.outcome, g.err
}

func parseGraph(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	// validate early so tests fail on bad fixtures, not inside the engine
	_, err = workflow.FromMap(m)
	require.NoError(t, err)
	return m
}

func linearWorkflow(t *testing.T) map[string]any {
	return parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Helper"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "end", "type": "sequential"},
		},
	})
}

func newTestEngine(store *memStore, pauser Pauser, provider llm.Provider, groupChat GroupChat) *Engine {
	assistant := NewAssistantExecutor(&stubSource{provider: provider}, nil)
	return New(store, pauser, assistant, NewGroupChatExecutor(groupChat))
}

func TestExecuteLinearWorkflow(t *testing.T) {
	store := newMemStore(&models.Execution{
		ID:       "ex-1",
		Input:    "say hello",
		Status:   models.StatusPending,
		Workflow: linearWorkflow(t),
	})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "hello there"}, nil)

	require.NoError(t, eng.Execute(context.Background(), "ex-1"))

	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	assert.Equal(t, "hello there", store.execution.FinalOutput)
	assert.Equal(t, "hello there", store.execution.ExecutedNodes["a1"])
	assert.Equal(t, "say hello", store.execution.ExecutedNodes["start"])
	require.NotNil(t, store.finalized)
	assert.Equal(t, 1, store.finalized.TotalAgentsInvolved)

	// start sentinel, assistant response, end sentinel
	require.Len(t, store.messages, 3)
	assert.Equal(t, models.MessageSystem, store.messages[0].Type)
	assert.Equal(t, 1, store.messages[0].Sequence)

	require.Len(t, store.interactions, 1)
	assert.Equal(t, "node_prompt", store.interactions[0].Purpose)
	assert.Equal(t, "a1", store.interactions[0].NodeID)
}

func TestExecuteParallelLevel(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Left"}},
			{"id": "a2", "type": "AssistantAgent", "data": map[string]any{"name": "Right"}},
			{"id": "join", "type": "AssistantAgent", "data": map[string]any{"name": "Join"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "start", "target": "a2", "type": "sequential"},
			{"source": "a1", "target": "join", "type": "sequential"},
			{"source": "a2", "target": "join", "type": "sequential"},
			{"source": "join", "target": "end", "type": "sequential"},
		},
	})
	store := newMemStore(&models.Execution{ID: "ex-2", Input: "fan out", Workflow: wf})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "branch output"}, nil)

	require.NoError(t, eng.Execute(context.Background(), "ex-2"))

	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	for _, id := range []string{"a1", "a2", "join"} {
		assert.Contains(t, store.execution.ExecutedNodes, id)
	}
	// Left, Right, Join
	assert.Equal(t, 3, store.finalized.TotalAgentsInvolved)
}

func TestExecutePausesAtUserProxy(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Drafter"}},
			{"id": "proxy", "type": "UserProxyAgent", "data": map[string]any{"name": "Reviewer", "require_human_input": true}},
			{"id": "a2", "type": "AssistantAgent", "data": map[string]any{"name": "Publisher"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "proxy", "type": "sequential"},
			{"source": "proxy", "target": "a2", "type": "sequential"},
			{"source": "a2", "target": "end", "type": "sequential"},
		},
	})
	store := newMemStore(&models.Execution{ID: "ex-3", Input: "draft a post", Workflow: wf})
	pauser := &recordingPauser{store: store}
	eng := newTestEngine(store, pauser, &stubProvider{text: "node output"}, nil)
	ctx := context.Background()

	require.NoError(t, eng.Execute(ctx, "ex-3"))

	// paused, not completed; downstream never ran
	assert.Nil(t, store.finalized)
	assert.NotContains(t, store.execution.ExecutedNodes, "proxy")
	assert.NotContains(t, store.execution.ExecutedNodes, "a2")
	require.Len(t, pauser.pauses, 1)
	assert.Equal(t, "Reviewer", pauser.pauses[0].AgentName)
	assert.Equal(t, "proxy", pauser.pauses[0].AgentID)
	assert.Equal(t, []string{"Drafter"}, pauser.pauses[0].Context.InputSources)
	assert.True(t, store.execution.HumanInputRequired)

	// simulate the resume controller routing the input, then re-enter
	store.mu.Lock()
	now := time.Now().UTC()
	store.execution.HumanInputRequired = false
	store.execution.HumanInputReceivedAt = &now
	store.execution.ExecutedNodes["proxy"] = "approved by human"
	store.mu.Unlock()

	require.NoError(t, eng.Execute(ctx, "ex-3"))
	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	assert.Contains(t, store.execution.ExecutedNodes, "a2")
}

func TestExecuteCompletesTerminalProxyWithoutRouting(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Drafter"}},
			{"id": "proxy", "type": "UserProxyAgent", "data": map[string]any{"name": "Reviewer", "require_human_input": true}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "proxy", "type": "sequential"},
		},
	})
	store := newMemStore(&models.Execution{ID: "ex-4", Input: "input", Workflow: wf})
	pauser := &recordingPauser{store: store}
	eng := newTestEngine(store, pauser, &stubProvider{text: "draft"}, nil)
	ctx := context.Background()

	require.NoError(t, eng.Execute(ctx, "ex-4"))
	require.Len(t, pauser.pauses, 1)

	// the proxy has no outgoing edges: the resume controller records an
	// empty completion marker instead of routing the input
	store.mu.Lock()
	now := time.Now().UTC()
	store.execution.HumanInputRequired = false
	store.execution.HumanInputReceivedAt = &now
	store.execution.ExecutedNodes["proxy"] = ""
	store.mu.Unlock()

	require.NoError(t, eng.Execute(ctx, "ex-4"))
	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	assert.Equal(t, "draft", store.execution.FinalOutput)
	require.Len(t, pauser.pauses, 1)
}

func TestExecuteAnsweredProxySurvivesLaterPauses(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Drafter"}},
			{"id": "p1", "type": "UserProxyAgent", "data": map[string]any{"name": "Observer", "require_human_input": true}},
			{"id": "p2", "type": "UserProxyAgent", "data": map[string]any{"name": "Approver", "require_human_input": true}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "p1", "type": "sequential"},
			{"source": "a1", "target": "p2", "type": "sequential"},
			{"source": "p2", "target": "end", "type": "sequential"},
		},
	})
	store := newMemStore(&models.Execution{ID: "ex-4b", Input: "input", Workflow: wf})
	pauser := &recordingPauser{store: store}
	eng := newTestEngine(store, pauser, &stubProvider{text: "draft"}, nil)
	ctx := context.Background()

	// both proxies pause in the same level
	require.NoError(t, eng.Execute(ctx, "ex-4b"))
	require.Len(t, pauser.pauses, 2)

	// answer both: the terminal observer gets an empty completion marker,
	// the approver's input is routed downstream
	store.mu.Lock()
	now := time.Now().UTC()
	store.execution.HumanInputRequired = false
	store.execution.HumanInputReceivedAt = &now
	store.execution.ExecutedNodes["p1"] = ""
	store.execution.ExecutedNodes["p2"] = "approved"
	store.mu.Unlock()

	// neither proxy pauses again regardless of which one the waiting
	// fields last pointed at
	require.NoError(t, eng.Execute(ctx, "ex-4b"))
	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	require.Len(t, pauser.pauses, 2)
}

func TestExecuteDeadlockFails(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "proxy", "type": "UserProxyAgent", "data": map[string]any{"name": "Reviewer", "require_human_input": true}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Writer"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "proxy", "type": "sequential"},
			{"source": "proxy", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "proxy", "type": "reflection"},
		},
	})
	store := newMemStore(&models.Execution{ID: "ex-5", Input: "input", Workflow: wf})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "out"}, nil)

	err := eng.Execute(context.Background(), "ex-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlocked")
	assert.Equal(t, models.StatusFailed, store.execution.Status)
}

func TestExecuteProviderErrorBecomesNodeOutput(t *testing.T) {
	store := newMemStore(&models.Execution{ID: "ex-6", Input: "input", Workflow: linearWorkflow(t)})
	eng := newTestEngine(store, &recordingPauser{store: store},
		&stubProvider{err: errors.New("provider down")}, nil)

	require.NoError(t, eng.Execute(context.Background(), "ex-6"))
	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	assert.Equal(t, "ERROR: provider down", store.execution.ExecutedNodes["a1"])
	assert.Contains(t, store.execution.FinalOutput, "ERROR: provider down")

	// the failed call is still audited
	require.Len(t, store.interactions, 1)
	assert.Contains(t, store.interactions[0].ErrorMessage, "provider down")
}

func TestExecuteProviderAcquisitionFailureFailsExecution(t *testing.T) {
	store := newMemStore(&models.Execution{ID: "ex-6b", Input: "input", Workflow: linearWorkflow(t)})
	assistant := NewAssistantExecutor(&stubSource{err: errors.New("unknown provider \"nope\"")}, nil)
	eng := New(store, &recordingPauser{store: store}, assistant, NewGroupChatExecutor(nil))

	err := eng.Execute(context.Background(), "ex-6b")
	require.Error(t, err)
	assert.Equal(t, models.StatusFailed, store.execution.Status)
	assert.Contains(t, store.execution.ErrorMessage, "unknown provider")
}

// scriptedProvider replays canned responses in call order and records the
// prompts it saw.
type scriptedProvider struct {
	mu      sync.Mutex
	texts   []string
	prompts []string
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func (p *scriptedProvider) Generate(_ context.Context, req llm.Request) (*llm.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, req.Prompt)
	text := p.texts[0]
	if len(p.texts) > 1 {
		p.texts = p.texts[1:]
	}
	return &llm.Result{Text: text}, nil
}

func TestExecuteErrorOutputFlowsDownstream(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Upstream"}},
			{"id": "a2", "type": "AssistantAgent", "data": map[string]any{"name": "Downstream"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "a2", "type": "sequential"},
			{"source": "a2", "target": "end", "type": "sequential"},
		},
	})
	provider := &scriptedProvider{texts: []string{"ERROR: upstream failed", "handled the failure"}}
	store := newMemStore(&models.Execution{ID: "ex-7", Input: "input", Workflow: wf})
	eng := newTestEngine(store, &recordingPauser{store: store}, provider, nil)

	require.NoError(t, eng.Execute(context.Background(), "ex-7"))

	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	assert.Equal(t, "ERROR: upstream failed", store.execution.ExecutedNodes["a1"])
	assert.Equal(t, "handled the failure", store.execution.ExecutedNodes["a2"])

	// the downstream prompt received the error text as ordinary input
	require.Len(t, provider.prompts, 2)
	assert.Contains(t, provider.prompts[1], "ERROR: upstream failed")
}

// perNodeExecutor scripts per-node outcomes for level scheduling tests.
type perNodeExecutor struct {
	outputs map[string]string
	errs    map[string]error
	delays  map[string]time.Duration
}

func (p perNodeExecutor) Execute(ctx context.Context, _ *Run, node *workflow.Node) (*NodeResult, error) {
	if d := p.delays[node.ID]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := p.errs[node.ID]; err != nil {
		return nil, err
	}
	return &NodeResult{Output: p.outputs[node.ID], Persist: true}, nil
}

func TestFailedNodeDoesNotCancelSiblings(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Left"}},
			{"id": "a2", "type": "AssistantAgent", "data": map[string]any{"name": "Right"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "a1", "type": "sequential"},
			{"source": "start", "target": "a2", "type": "sequential"},
			{"source": "a1", "target": "end", "type": "sequential"},
			{"source": "a2", "target": "end", "type": "sequential"},
		},
	})
	executor := perNodeExecutor{
		outputs: map[string]string{"a2": "right branch done"},
		errs:    map[string]error{"a1": errors.New("left branch exploded")},
		delays:  map[string]time.Duration{"a2": 50 * time.Millisecond},
	}
	store := newMemStore(&models.Execution{ID: "ex-10", Input: "input", Workflow: wf})
	eng := New(store, &recordingPauser{store: store}, executor, NewGroupChatExecutor(nil))

	err := eng.Execute(context.Background(), "ex-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left branch exploded")
	assert.Equal(t, models.StatusFailed, store.execution.Status)

	// the slower sibling finished independently and its output survived
	assert.Equal(t, "right branch done", store.execution.ExecutedNodes["a2"])
}

func TestExecuteTopLevelDelegateActsAsAssistant(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "d1", "type": "DelegateAgent", "data": map[string]any{"name": "Lone Delegate"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "d1", "type": "sequential"},
			{"source": "d1", "target": "end", "type": "sequential"},
		},
	})
	store := newMemStore(&models.Execution{ID: "ex-8", Input: "input", Workflow: wf})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "delegate answer"}, nil)

	require.NoError(t, eng.Execute(context.Background(), "ex-8"))
	assert.Equal(t, "delegate answer", store.execution.ExecutedNodes["d1"])
	assert.Equal(t, models.StatusCompleted, store.execution.Status)
}

func TestExecuteGroupChatNode(t *testing.T) {
	wf := parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "gcm", "type": "GroupChatManager", "data": map[string]any{"name": "Manager"}},
			{"id": "d1", "type": "DelegateAgent", "data": map[string]any{"name": "Researcher"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "gcm", "type": "sequential"},
			{"source": "gcm", "target": "d1", "type": "delegate"},
			{"source": "gcm", "target": "end", "type": "sequential"},
		},
	})
	groupChat := &stubGroupChat{outcome: &orchestrator.Outcome{
		FinalOutput: "group verdict",
		Mode:        workflow.DelegationRoundRobin,
		Turns: []orchestrator.Turn{
			{Round: 1, Delegate: "Researcher", Content: "my findings", Status: protocol.StatusCompleted},
		},
	}}
	store := newMemStore(&models.Execution{ID: "ex-9", ProjectID: "p1", Input: "investigate", Workflow: wf})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "unused"}, groupChat)

	require.NoError(t, eng.Execute(context.Background(), "ex-9"))

	assert.Equal(t, "group verdict", store.execution.ExecutedNodes["gcm"])
	assert.Equal(t, "group verdict", store.execution.FinalOutput)
	assert.Equal(t, "p1", groupChat.lastReq.ProjectID)
	assert.Equal(t, "gcm", groupChat.lastReq.Node.ID)

	require.NotNil(t, store.conversations)
	assert.Equal(t, "round_robin", store.conversations["mode"])

	// Researcher turn and Manager synthesis both land in the log, so both
	// count as involved agents
	assert.Equal(t, 2, store.finalized.TotalAgentsInvolved)

	// the delegate agent itself was never scheduled directly
	assert.NotContains(t, store.execution.ExecutedNodes, "d1")
}

func groupChatWorkflow(t *testing.T) map[string]any {
	return parseGraph(t, map[string]any{
		"nodes": []map[string]any{
			{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			{"id": "gcm", "type": "GroupChatManager", "data": map[string]any{"name": "Manager"}},
			{"id": "d1", "type": "DelegateAgent", "data": map[string]any{"name": "Researcher"}},
			{"id": "a1", "type": "AssistantAgent", "data": map[string]any{"name": "Reporter"}},
			{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []map[string]any{
			{"source": "start", "target": "gcm", "type": "sequential"},
			{"source": "gcm", "target": "d1", "type": "delegate"},
			{"source": "gcm", "target": "a1", "type": "sequential"},
			{"source": "a1", "target": "end", "type": "sequential"},
		},
	})
}

func TestExecuteGroupChatErrorBecomesNodeOutput(t *testing.T) {
	groupChat := &stubGroupChat{err: errors.New("synthesis blew up")}
	store := newMemStore(&models.Execution{ID: "ex-11", Input: "investigate", Workflow: groupChatWorkflow(t)})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "reported"}, groupChat)

	require.NoError(t, eng.Execute(context.Background(), "ex-11"))

	assert.Equal(t, models.StatusCompleted, store.execution.Status)
	assert.Equal(t, "ERROR: synthesis blew up", store.execution.ExecutedNodes["gcm"])
	// the downstream assistant still ran on the error text
	assert.Equal(t, "reported", store.execution.ExecutedNodes["a1"])
}

func TestExecuteGroupChatConfigurationErrorFailsExecution(t *testing.T) {
	groupChat := &stubGroupChat{err: fmt.Errorf("group chat %q: %w", "Manager", orchestrator.ErrNoDelegates)}
	store := newMemStore(&models.Execution{ID: "ex-12", Input: "investigate", Workflow: groupChatWorkflow(t)})
	eng := newTestEngine(store, &recordingPauser{store: store}, &stubProvider{text: "unused"}, groupChat)

	err := eng.Execute(context.Background(), "ex-12")
	require.Error(t, err)
	assert.True(t, errors.Is(err, orchestrator.ErrNoDelegates))
	assert.Equal(t, models.StatusFailed, store.execution.Status)
	assert.NotContains(t, store.execution.ExecutedNodes, "gcm")
}
