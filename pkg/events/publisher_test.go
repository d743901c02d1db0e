package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
)

func TestExecutionChannel(t *testing.T) {
	assert.Equal(t, "execution:abc-123", ExecutionChannel("abc-123"))
}

func TestExecutionStatusPayloadMarshal(t *testing.T) {
	payload := ExecutionStatusPayload{
		Type:        EventTypeExecutionStatus,
		ExecutionID: "exec-1",
		Status:      models.StatusAwaitingHumanInput,
		Detail:      "approve deployment?",
		Timestamp:   "2026-08-26T10:00:00.000000Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "execution.status", m["type"])
	assert.Equal(t, "exec-1", m["execution_id"])
	assert.Equal(t, "awaiting_human_input", m["status"])
	assert.Equal(t, "approve deployment?", m["detail"])

	// Empty detail is omitted entirely
	payload.Detail = ""
	data, err = json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "detail")
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through unchanged", func(t *testing.T) {
		payload := `{"type":"execution.status","execution_id":"exec-1","status":"running"}`
		result, err := truncateIfNeeded(payload)
		require.NoError(t, err)
		assert.Equal(t, payload, result)
	})

	t.Run("oversized payload becomes truncation envelope", func(t *testing.T) {
		big := ExecutionStatusPayload{
			Type:        EventTypeExecutionStatus,
			ExecutionID: "exec-big",
			Status:      models.StatusFailed,
			Detail:      strings.Repeat("x", 10000),
		}
		data, err := json.Marshal(big)
		require.NoError(t, err)

		result, err := truncateIfNeeded(string(data))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result), 7900)

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, "execution.status", m["type"])
		assert.Equal(t, "exec-big", m["execution_id"])
		assert.Equal(t, "failed", m["status"])
		assert.Equal(t, true, m["truncated"])
		assert.NotContains(t, m, "detail")
	})

	t.Run("invalid JSON in oversized payload errors", func(t *testing.T) {
		_, err := truncateIfNeeded(strings.Repeat("not json", 2000))
		assert.Error(t, err)
	})
}
