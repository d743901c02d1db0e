package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
	testdb "github.com/weftworks/weft/test/database"
)

func testWorkflow() map[string]any {
	return map[string]any{
		"nodes": []any{
			map[string]any{"id": "start", "type": "StartNode", "data": map[string]any{"name": "Start"}},
			map[string]any{"id": "end", "type": "EndNode", "data": map[string]any{"name": "End"}},
		},
		"edges": []any{
			map[string]any{"source": "start", "target": "end", "type": "sequential"},
		},
	}
}

func createTestExecution(t *testing.T, svc *ExecutionService, id string) *models.Execution {
	t.Helper()
	execution, err := svc.CreateExecution(context.Background(), models.CreateExecutionRequest{
		ID:        id,
		ProjectID: "p1",
		Workflow:  testWorkflow(),
		Input:     "analyze the incident",
	})
	require.NoError(t, err)
	return execution
}

func TestExecutionService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("creates pending execution", func(t *testing.T) {
		execution := createTestExecution(t, svc, "ex-create-1")

		assert.Equal(t, "ex-create-1", execution.ID)
		assert.Equal(t, models.StatusPending, execution.Status)
		assert.Equal(t, "analyze the incident", execution.Input)
		assert.NotNil(t, execution.Workflow["nodes"])
		assert.Empty(t, execution.ExecutedNodes)
	})

	t.Run("generates an ID when absent", func(t *testing.T) {
		execution, err := svc.CreateExecution(ctx, models.CreateExecutionRequest{
			ProjectID: "p1",
			Workflow:  testWorkflow(),
			Input:     "some input",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, execution.ID)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		createTestExecution(t, svc, "ex-create-dup")
		_, err := svc.CreateExecution(ctx, models.CreateExecutionRequest{
			ID:        "ex-create-dup",
			ProjectID: "p1",
			Workflow:  testWorkflow(),
			Input:     "again",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.CreateExecution(ctx, models.CreateExecutionRequest{
			Workflow: testWorkflow(),
			Input:    "x",
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateExecution(ctx, models.CreateExecutionRequest{
			ProjectID: "p1",
			Input:     "x",
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateExecution(ctx, models.CreateExecutionRequest{
			ProjectID: "p1",
			Workflow:  testWorkflow(),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("get missing execution", func(t *testing.T) {
		_, err := svc.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExecutionService_ExecutedNodes(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("append keeps existing keys", func(t *testing.T) {
		createTestExecution(t, svc, "ex-nodes-1")

		require.NoError(t, svc.SetExecutedNode(ctx, "ex-nodes-1", "start", "first output"))
		require.NoError(t, svc.SetExecutedNode(ctx, "ex-nodes-1", "a1", "agent output"))
		// Existing keys never regress
		require.NoError(t, svc.SetExecutedNode(ctx, "ex-nodes-1", "start", "should be ignored"))

		nodes, err := svc.ExecutedNodes(ctx, "ex-nodes-1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"start": "first output",
			"a1":    "agent output",
		}, nodes)
	})

	t.Run("save replaces the map", func(t *testing.T) {
		createTestExecution(t, svc, "ex-nodes-2")
		require.NoError(t, svc.SetExecutedNode(ctx, "ex-nodes-2", "start", "old"))

		require.NoError(t, svc.SaveExecutedNodes(ctx, "ex-nodes-2", map[string]string{
			"start":  "revised",
			"writer": "draft v2",
		}))

		nodes, err := svc.ExecutedNodes(ctx, "ex-nodes-2")
		require.NoError(t, err)
		assert.Equal(t, "revised", nodes["start"])
		assert.Equal(t, "draft v2", nodes["writer"])
	})

	t.Run("delegate conversations merge", func(t *testing.T) {
		createTestExecution(t, svc, "ex-nodes-3")

		require.NoError(t, svc.SaveDelegateConversations(ctx, "ex-nodes-3", map[string]any{
			"mode": "round_robin",
		}))
		require.NoError(t, svc.SaveDelegateConversations(ctx, "ex-nodes-3", map[string]any{
			"turns": []any{"a", "b"},
		}))

		row, err := client.WorkflowExecution.Get(ctx, "ex-nodes-3")
		require.NoError(t, err)
		assert.Equal(t, "round_robin", row.DelegateConversations["mode"])
		assert.Len(t, row.DelegateConversations["turns"], 2)
	})

	t.Run("conversation history appends", func(t *testing.T) {
		createTestExecution(t, svc, "ex-nodes-4")

		require.NoError(t, svc.AppendConversation(ctx, "ex-nodes-4", "Writer: draft"))
		require.NoError(t, svc.AppendConversation(ctx, "ex-nodes-4", "Reviewer: looks good"))

		row, err := client.WorkflowExecution.Get(ctx, "ex-nodes-4")
		require.NoError(t, err)
		assert.Equal(t, "Writer: draft\nReviewer: looks good", row.ConversationHistory)
	})
}

func TestExecutionService_PauseState(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("pause and clear round trip", func(t *testing.T) {
		createTestExecution(t, svc, "ex-pause-1")

		requestedAt := time.Now()
		err := svc.SavePause(ctx, "ex-pause-1", models.PauseRequest{
			AgentName: "Reviewer",
			AgentID:   "proxy",
			Context: &models.HumanInputContext{
				InputSources:       []string{"Writer"},
				Inputs:             "draft v1",
				ReflectionSource:   "Writer",
				ReflectionSourceID: "writer",
				Iteration:          1,
			},
		}, requestedAt)
		require.NoError(t, err)

		execution, err := svc.Get(ctx, "ex-pause-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusAwaitingHumanInput, execution.Status)
		assert.True(t, execution.HumanInputRequired)
		assert.Equal(t, "Reviewer", execution.AwaitingHumanInput)
		assert.Equal(t, "proxy", execution.HumanInputAgentID)
		require.NotNil(t, execution.HumanInputContext)
		assert.Equal(t, "writer", execution.HumanInputContext.ReflectionSourceID)
		assert.Equal(t, 1, execution.HumanInputContext.Iteration)
		require.NotNil(t, execution.HumanInputRequestedAt)

		receivedAt := time.Now()
		require.NoError(t, svc.ClearHumanInput(ctx, "ex-pause-1", receivedAt))

		execution, err = svc.Get(ctx, "ex-pause-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRunning, execution.Status)
		assert.False(t, execution.HumanInputRequired)
		require.NotNil(t, execution.HumanInputReceivedAt)
	})

	t.Run("stale awaiting respects the cutoff", func(t *testing.T) {
		createTestExecution(t, svc, "ex-pause-stale")
		createTestExecution(t, svc, "ex-pause-fresh")

		old := time.Now().Add(-2 * time.Hour)
		require.NoError(t, svc.SavePause(ctx, "ex-pause-stale", models.PauseRequest{
			AgentName: "Reviewer", AgentID: "proxy",
		}, old))
		require.NoError(t, svc.SavePause(ctx, "ex-pause-fresh", models.PauseRequest{
			AgentName: "Reviewer", AgentID: "proxy",
		}, time.Now()))

		stale, err := svc.StaleAwaiting(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, "ex-pause-stale", stale[0].ID)
	})
}

func TestExecutionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("mark started and finalize", func(t *testing.T) {
		createTestExecution(t, svc, "ex-life-1")

		require.NoError(t, svc.MarkStarted(ctx, "ex-life-1"))
		execution, err := svc.Get(ctx, "ex-life-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRunning, execution.Status)
		require.NotNil(t, execution.StartedAt)

		err = svc.Finalize(ctx, "ex-life-1", models.FinalizeRequest{
			Status:              models.StatusCompleted,
			FinalOutput:         "the answer",
			ResultSummary:       "Workflow completed with 2 agent(s)",
			TotalAgentsInvolved: 2,
		})
		require.NoError(t, err)

		execution, err = svc.Get(ctx, "ex-life-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, execution.Status)
		assert.Equal(t, "the answer", execution.FinalOutput)
		assert.Equal(t, 2, execution.TotalAgentsInvolved)
		require.NotNil(t, execution.CompletedAt)
	})

	t.Run("finalize failure records the error", func(t *testing.T) {
		createTestExecution(t, svc, "ex-life-2")

		err := svc.Finalize(ctx, "ex-life-2", models.FinalizeRequest{
			Status:       models.StatusFailed,
			ErrorMessage: "node a1 failed",
		})
		require.NoError(t, err)

		execution, err := svc.Get(ctx, "ex-life-2")
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, execution.Status)
		assert.Equal(t, "node a1 failed", execution.ErrorMessage)
	})

	t.Run("cancel active execution", func(t *testing.T) {
		createTestExecution(t, svc, "ex-life-3")

		require.NoError(t, svc.Cancel(ctx, "ex-life-3"))
		execution, err := svc.Get(ctx, "ex-life-3")
		require.NoError(t, err)
		assert.Equal(t, models.StatusStopped, execution.Status)

		// Already terminal
		assert.ErrorIs(t, svc.Cancel(ctx, "ex-life-3"), ErrNotCancellable)

		assert.ErrorIs(t, svc.Cancel(ctx, "nonexistent"), ErrNotFound)
	})
}

func TestExecutionService_Claim(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	t.Run("claims the oldest pending execution", func(t *testing.T) {
		createTestExecution(t, svc, "ex-claim-1")
		createTestExecution(t, svc, "ex-claim-2")

		claimed, err := svc.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "ex-claim-1", claimed.ID)
		assert.Equal(t, models.StatusRunning, claimed.Status)

		claimed, err = svc.ClaimNextPending(ctx, "pod-b")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "ex-claim-2", claimed.ID)

		// Queue drained
		claimed, err = svc.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("orphan recovery requeues claimed work", func(t *testing.T) {
		createTestExecution(t, svc, "ex-claim-orphan")
		claimed, err := svc.ClaimNextPending(ctx, "pod-dead")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		orphans, err := svc.FindOrphaned(ctx, "pod-dead")
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, "ex-claim-orphan", orphans[0].ID)

		require.NoError(t, svc.Requeue(ctx, "ex-claim-orphan"))

		execution, err := svc.Get(ctx, "ex-claim-orphan")
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, execution.Status)
		assert.Nil(t, execution.StartedAt)

		depth, err := svc.QueueDepth(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, depth)
	})

	t.Run("running counts and stale scan", func(t *testing.T) {
		// ex-claim-1 and ex-claim-2 are still claimed from the first subtest.
		count, err := svc.RunningCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		active, err := svc.ActiveCount(ctx, "pod-a")
		require.NoError(t, err)
		assert.Equal(t, 1, active)

		// Claimed but never started counts as stale once past the cutoff.
		stale, err := svc.StaleRunning(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Len(t, stale, 2)

		stale, err = svc.StaleRunning(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Empty(t, stale)
	})
}

func TestExecutionService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExecutionService(client.Client)
	ctx := context.Background()

	for _, id := range []string{"ex-list-1", "ex-list-2", "ex-list-3"} {
		createTestExecution(t, svc, id)
	}
	_, err := svc.CreateExecution(ctx, models.CreateExecutionRequest{
		ID:        "ex-list-other",
		ProjectID: "p2",
		Workflow:  testWorkflow(),
		Input:     "other project",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, "ex-list-3"))

	t.Run("filters by project", func(t *testing.T) {
		list, err := svc.List(ctx, models.ExecutionFilters{ProjectID: "p2"})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
		require.Len(t, list.Executions, 1)
		assert.Equal(t, "ex-list-other", list.Executions[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		list, err := svc.List(ctx, models.ExecutionFilters{Status: "stopped"})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		list, err := svc.List(ctx, models.ExecutionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, list.TotalCount)
		assert.Len(t, list.Executions, 2)

		list, err = svc.List(ctx, models.ExecutionFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, list.Executions, 2)
	})
}

func TestStore_InterfaceSurface(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	// The composite store serves both the engine and the controller; this
	// exercises the embedded services end to end on one execution.
	_, err := store.CreateExecution(ctx, models.CreateExecutionRequest{
		ID:        "ex-store-1",
		ProjectID: "p1",
		Workflow:  testWorkflow(),
		Input:     "input",
	})
	require.NoError(t, err)

	require.NoError(t, store.AppendMessage(ctx, "ex-store-1", models.Message{
		AgentName: "Start",
		AgentType: "StartNode",
		Content:   "Workflow execution started",
		Type:      models.MessageSystem,
	}))
	require.NoError(t, store.RecordInteraction(ctx, "ex-store-1", models.LLMInteraction{
		NodeID:   "a1",
		Provider: "openai",
		Model:    "gpt-4o",
		Purpose:  "node_prompt",
		Prompt:   "say hello",
		Response: "hello",
	}))

	messages, err := store.Messages(ctx, "ex-store-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, 1, messages[0].Sequence)

	interactions, err := store.Interactions(ctx, "ex-store-1")
	require.NoError(t, err)
	require.Len(t, interactions, 1)

	_, err = store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
