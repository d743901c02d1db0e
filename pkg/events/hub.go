package events

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/coder/websocket"

	"github.com/weftworks/weft/pkg/models"
)

// publishTimeout bounds a single pg_notify round trip. Status publishing
// is fire-and-forget from the engine's perspective; a slow database must
// not stall node scheduling.
const publishTimeout = 5 * time.Second

// Hub wires the event pipeline together: the engine reports status
// transitions, the publisher broadcasts them via pg_notify, the listener
// on every pod receives them, and the connection manager fans them out
// to local WebSocket clients.
//
// Hub implements the engine's Notifier interface.
type Hub struct {
	publisher *EventPublisher
	manager   *ConnectionManager
	listener  *NotifyListener
}

// NewHub creates the publisher, connection manager, and NOTIFY listener.
// The db parameter should be the *sql.DB from database.Client.DB();
// connString is a separate connection string for the dedicated LISTEN
// connection.
func NewHub(db *sql.DB, connString string, writeTimeout time.Duration) *Hub {
	manager := NewConnectionManager(writeTimeout)
	listener := NewNotifyListener(connString, manager)
	manager.SetListener(listener)
	return &Hub{
		publisher: NewEventPublisher(db),
		manager:   manager,
		listener:  listener,
	}
}

// Start establishes the LISTEN connection and begins receiving notifications.
func (h *Hub) Start(ctx context.Context) error {
	return h.listener.Start(ctx)
}

// Stop shuts down the NOTIFY listener. Open WebSocket connections are
// closed by their handlers when the server shuts down.
func (h *Hub) Stop(ctx context.Context) {
	h.listener.Stop(ctx)
}

// HandleConnection hands an upgraded WebSocket connection to the
// connection manager. Blocks until the connection closes.
func (h *Hub) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	h.manager.HandleConnection(ctx, conn)
}

// ActiveConnections returns the count of active WebSocket connections.
func (h *Hub) ActiveConnections() int {
	return h.manager.ActiveConnections()
}

// ExecutionStatusChanged publishes an execution.status event. Best-effort:
// a publish failure is logged, never surfaced to the engine, because event
// delivery must not affect workflow execution.
func (h *Hub) ExecutionStatusChanged(executionID string, status models.ExecutionStatus, detail string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload := ExecutionStatusPayload{
		Type:        EventTypeExecutionStatus,
		ExecutionID: executionID,
		Status:      status,
		Detail:      detail,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := h.publisher.PublishExecutionStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish execution status event",
			"execution_id", executionID, "status", status, "error", err)
	}
}
