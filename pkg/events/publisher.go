package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// EventPublisher broadcasts events via PostgreSQL NOTIFY for WebSocket
// delivery. Every pod's NotifyListener receives the notification and
// fans it out to its local subscribers, so a status change published on
// one pod reaches clients connected to any pod.
//
// Events are not persisted. A payload that would exceed PostgreSQL's
// NOTIFY size limit is replaced with a truncation envelope carrying only
// routing fields; the client re-fetches the execution over REST.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishExecutionStatus broadcasts an execution.status event to the
// execution's own channel and to the global executions channel.
// Both publishes are best-effort: if the first fails, the second is
// still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishExecutionStatus(ctx context.Context, payload ExecutionStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.notify(ctx, ExecutionChannel(payload.ExecutionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish execution status to execution channel",
			"execution_id", payload.ExecutionID, "status", payload.Status, "error", err)
		firstErr = err
	}

	if err := p.notify(ctx, GlobalExecutionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish execution status to global channel",
			"execution_id", payload.ExecutionID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// notify broadcasts a pre-marshaled event via NOTIFY.
func (p *EventPublisher) notify(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, keeping only the fields the client needs to
// re-fetch current state over REST.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type        string `json:"type"`
		ExecutionID string `json:"execution_id"`
		Status      string `json:"status"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":         routing.Type,
		"execution_id": routing.ExecutionID,
		"status":       routing.Status,
		"truncated":    true,
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
