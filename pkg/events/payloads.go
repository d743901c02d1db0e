package events

import (
	"github.com/weftworks/weft/pkg/models"
)

// ExecutionStatusPayload is the payload for execution.status events.
// Published on every execution lifecycle transition, to both the
// execution's own channel and the global executions channel.
type ExecutionStatusPayload struct {
	Type        string                 `json:"type"`             // always EventTypeExecutionStatus
	ExecutionID string                 `json:"execution_id"`     // execution UUID
	Status      models.ExecutionStatus `json:"status"`           // pending, running, awaiting_human_input, completed, failed, stopped
	Detail      string                 `json:"detail,omitempty"` // failure reason, pause prompt, or empty
	Timestamp   string                 `json:"timestamp"`        // RFC3339Nano
}
