package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/pkg/models"
)

// maxSequenceRetries bounds retries when a concurrent append takes the same
// sequence number. The unique (execution_id, sequence) index detects the race.
const maxSequenceRetries = 3

// MessageService manages the ordered message log of an execution.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// AppendMessage appends one message with the next free sequence number.
func (s *MessageService) AppendMessage(httpCtx context.Context, executionID string, msg models.Message) error {
	if executionID == "" {
		return NewValidationError("execution_id", "required")
	}
	if msg.Type == "" {
		return NewValidationError("message_type", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < maxSequenceRetries; attempt++ {
		seq, err := s.nextSequence(ctx, executionID)
		if err != nil {
			return err
		}

		create := s.client.ExecutionMessage.Create().
			SetID(uuid.New().String()).
			SetExecutionID(executionID).
			SetAgentName(msg.AgentName).
			SetAgentType(msg.AgentType).
			SetContent(msg.Content).
			SetMessageType(string(msg.Type)).
			SetSequence(seq)
		if msg.Metadata != nil {
			create = create.SetMetadata(msg.Metadata)
		}

		err = create.Exec(ctx)
		if err == nil {
			return nil
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to append message: %w", err)
		}
		// Sequence taken by a concurrent append; recompute and retry
		lastErr = err
	}

	return fmt.Errorf("failed to append message after %d attempts: %w", maxSequenceRetries, lastErr)
}

// Messages returns the full message log in sequence order.
func (s *MessageService) Messages(ctx context.Context, executionID string) ([]models.Message, error) {
	rows, err := s.client.ExecutionMessage.Query().
		Where(executionmessage.ExecutionIDEQ(executionID)).
		Order(ent.Asc(executionmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	messages := make([]models.Message, len(rows))
	for i, row := range rows {
		messages[i] = models.Message{
			AgentName: row.AgentName,
			AgentType: row.AgentType,
			Content:   row.Content,
			Type:      models.MessageType(row.MessageType),
			Sequence:  row.Sequence,
			Metadata:  row.Metadata,
			CreatedAt: row.CreatedAt,
		}
	}
	return messages, nil
}

func (s *MessageService) nextSequence(ctx context.Context, executionID string) (int, error) {
	last, err := s.client.ExecutionMessage.Query().
		Where(executionmessage.ExecutionIDEQ(executionID)).
		Order(ent.Desc(executionmessage.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query last message sequence: %w", err)
	}
	return last.Sequence + 1, nil
}
