package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
	testdb "github.com/weftworks/weft/test/database"
)

func TestMessageService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	createTestExecution(t, executions, "ex-msg-1")

	t.Run("assigns monotonic sequence numbers", func(t *testing.T) {
		for _, content := range []string{"first", "second", "third"} {
			require.NoError(t, svc.AppendMessage(ctx, "ex-msg-1", models.Message{
				AgentName: "Helper",
				AgentType: "AssistantAgent",
				Content:   content,
				Type:      models.MessageAgentResponse,
			}))
		}

		messages, err := svc.Messages(ctx, "ex-msg-1")
		require.NoError(t, err)
		require.Len(t, messages, 3)
		for i, msg := range messages {
			assert.Equal(t, i+1, msg.Sequence)
		}
		assert.Equal(t, "first", messages[0].Content)
		assert.Equal(t, "third", messages[2].Content)
	})

	t.Run("preserves metadata", func(t *testing.T) {
		require.NoError(t, svc.AppendMessage(ctx, "ex-msg-1", models.Message{
			AgentName: "Researcher",
			AgentType: "DelegateAgent",
			Content:   "partial answer",
			Type:      models.MessageAgentResponse,
			Metadata:  map[string]any{"status": "error"},
		}))

		messages, err := svc.Messages(ctx, "ex-msg-1")
		require.NoError(t, err)
		last := messages[len(messages)-1]
		assert.Equal(t, "error", last.Metadata["status"])
	})

	t.Run("validates input", func(t *testing.T) {
		err := svc.AppendMessage(ctx, "", models.Message{Type: models.MessageSystem})
		assert.True(t, IsValidationError(err))

		err = svc.AppendMessage(ctx, "ex-msg-1", models.Message{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty log", func(t *testing.T) {
		createTestExecution(t, executions, "ex-msg-empty")
		messages, err := svc.Messages(ctx, "ex-msg-empty")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}

func TestInteractionService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	svc := NewInteractionService(client.Client)
	ctx := context.Background()

	createTestExecution(t, executions, "ex-int-1")

	t.Run("records successful and failed calls", func(t *testing.T) {
		require.NoError(t, svc.RecordInteraction(ctx, "ex-int-1", models.LLMInteraction{
			NodeID:         "a1",
			Provider:       "anthropic",
			Model:          "claude-sonnet-4-5",
			Purpose:        "node_prompt",
			Prompt:         "summarize",
			Response:       "summary text",
			TokenCount:     120,
			ResponseTimeMs: 900,
		}))
		require.NoError(t, svc.RecordInteraction(ctx, "ex-int-1", models.LLMInteraction{
			NodeID:       "a2",
			Provider:     "openai",
			Model:        "gpt-4o",
			Purpose:      "synthesis",
			Prompt:       "combine",
			ErrorMessage: "rate limited",
		}))

		rows, err := svc.Interactions(ctx, "ex-int-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "summary text", rows[0].Response)
		require.NotNil(t, rows[1].ErrorMessage)
		assert.Equal(t, "rate limited", *rows[1].ErrorMessage)
	})

	t.Run("records human inputs", func(t *testing.T) {
		require.NoError(t, svc.RecordHumanInput(ctx, "ex-int-1", models.HumanInputRecord{
			AgentID:   "proxy",
			AgentName: "Reviewer",
			Input:     "make it shorter",
			Action:    models.ActionIterate,
			Iteration: 1,
		}))
		require.NoError(t, svc.RecordHumanInput(ctx, "ex-int-1", models.HumanInputRecord{
			AgentID:   "proxy",
			AgentName: "Reviewer",
			Input:     "approved",
			Action:    models.ActionSubmit,
			Iteration: 2,
		}))

		rows, err := svc.HumanInputs(ctx, "ex-int-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "make it shorter", rows[0].Input)
		assert.EqualValues(t, "iterate", rows[0].Action)
		assert.EqualValues(t, "submit", rows[1].Action)
	})
}
