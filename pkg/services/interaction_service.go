package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/pkg/models"
)

// InteractionService manages LLM call audit records and human input history.
type InteractionService struct {
	client *ent.Client
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// RecordInteraction persists one LLM call audit record. Failed calls are
// recorded too, with the error message instead of a response.
func (s *InteractionService) RecordInteraction(httpCtx context.Context, executionID string, in models.LLMInteraction) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.LLMInteraction.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetProvider(in.Provider).
		SetModel(in.Model).
		SetPurpose(in.Purpose).
		SetPrompt(in.Prompt)

	if in.NodeID != "" {
		builder = builder.SetNodeID(in.NodeID)
	}
	if in.Response != "" {
		builder = builder.SetResponse(in.Response)
	}
	if in.ErrorMessage != "" {
		builder = builder.SetErrorMessage(in.ErrorMessage)
	}
	if in.TokenCount > 0 {
		builder = builder.SetTokenCount(in.TokenCount)
	}
	if in.ResponseTimeMs > 0 {
		builder = builder.SetResponseTimeMs(in.ResponseTimeMs)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record LLM interaction: %w", err)
	}
	return nil
}

// Interactions returns the LLM call audit trail in call order.
func (s *InteractionService) Interactions(ctx context.Context, executionID string) ([]*ent.LLMInteraction, error) {
	rows, err := s.client.LLMInteraction.Query().
		Where(llminteraction.ExecutionIDEQ(executionID)).
		Order(ent.Asc(llminteraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get LLM interactions: %w", err)
	}
	return rows, nil
}

// RecordHumanInput persists one human input audit record.
func (s *InteractionService) RecordHumanInput(httpCtx context.Context, executionID string, rec models.HumanInputRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.HumanInputInteraction.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetAgentID(rec.AgentID).
		SetAgentName(rec.AgentName).
		SetInput(rec.Input).
		SetAction(humaninputinteraction.Action(rec.Action))

	if rec.Iteration > 0 {
		builder = builder.SetIteration(rec.Iteration)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record human input: %w", err)
	}
	return nil
}

// HumanInputs returns the human input history in delivery order.
func (s *InteractionService) HumanInputs(ctx context.Context, executionID string) ([]*ent.HumanInputInteraction, error) {
	rows, err := s.client.HumanInputInteraction.Query().
		Where(humaninputinteraction.ExecutionIDEQ(executionID)).
		Order(ent.Asc(humaninputinteraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get human inputs: %w", err)
	}
	return rows, nil
}
