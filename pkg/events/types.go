// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events are transient: a status change is broadcast via pg_notify to
// every pod, each pod fans it out to its local WebSocket subscribers,
// and nothing is stored. Clients that reconnect re-fetch current state
// over REST; the event stream only tells them WHEN to do so.
//
// Channel layout:
//
//	executions          — every execution status change (dashboard list page)
//	execution:{id}      — status changes for one execution (detail page)
package events

// Event types published over NOTIFY.
const (
	// Execution lifecycle — pending, running, awaiting_human_input,
	// completed, failed, stopped.
	EventTypeExecutionStatus = "execution.status"
)

// GlobalExecutionsChannel carries status events for all executions.
// The execution list page subscribes to this for real-time updates.
const GlobalExecutionsChannel = "executions"

// ExecutionChannel returns the channel name for a specific execution's events.
// Format: "execution:{execution_id}"
func ExecutionChannel(executionID string) string {
	return "execution:" + executionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // Channel name (e.g., "execution:abc-123")
}
