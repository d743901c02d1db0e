package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegationValidate(t *testing.T) {
	t.Run("valid delegation", func(t *testing.T) {
		d := NewDelegation("sq-1", "summarize the report", PriorityHigh,
			DelegationContext{OriginalInput: "full request"}, 0.9)
		require.NoError(t, d.Validate())
		assert.NotEmpty(t, d.MessageID)
		assert.Equal(t, 0.9, d.Metadata["delegation_confidence"])
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		d := NewDelegation("sq-1", "task", Priority("urgent"), DelegationContext{}, 0.5)
		err := d.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority")
	})

	t.Run("rejects missing subquery", func(t *testing.T) {
		d := NewDelegation("sq-1", "", PriorityLow, DelegationContext{}, 0.5)
		require.Error(t, d.Validate())
	})
}

func TestResponseValidate(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		r := NewResponse("sq-1", "Researcher", "answer text", StatusCompleted)
		require.NoError(t, r.Validate())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		r := NewResponse("sq-1", "Researcher", "answer", ResponseStatus("done"))
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("rejects missing delegate name", func(t *testing.T) {
		r := NewResponse("sq-1", "", "answer", StatusCompleted)
		require.Error(t, r.Validate())
	})
}

func TestAcknowledgmentValidate(t *testing.T) {
	a := &Acknowledgment{
		Header:       newHeader(TypeAcknowledgment),
		SubqueryID:   "sq-1",
		DelegateName: "Analyst",
		Status:       AckAccepted,
	}
	require.NoError(t, a.Validate())

	a.Status = "maybe"
	require.Error(t, a.Validate())
}

func TestErrorMessageValidate(t *testing.T) {
	e := NewErrorMessage("sq-1", "Analyst", "timeout", "deadline exceeded", true)
	require.NoError(t, e.Validate())

	e.ErrorType = ""
	require.Error(t, e.Validate())
}

func TestFormatDelegation(t *testing.T) {
	d := NewDelegation("sq-42", "compare Q3 revenue", PriorityMedium, DelegationContext{
		OriginalInput:     "analyze the quarterly filings",
		RelatedSubqueries: []string{"a", "b"},
		Iteration:         2,
	}, 0.8)

	text := FormatDelegation(d)
	assert.Contains(t, text, "Subquery ID: sq-42")
	assert.Contains(t, text, "Priority: MEDIUM")
	assert.Contains(t, text, "Task: compare Q3 revenue")
	assert.Contains(t, text, "Original request: analyze the quarterly filings")
	assert.Contains(t, text, "Related subqueries: 2")
	assert.Contains(t, text, "Iteration: 2")
}

func TestParseResponse(t *testing.T) {
	t.Run("plain text wraps as completed response", func(t *testing.T) {
		r := ParseResponse("sq-1", "Researcher", "  The answer is 42.  ")
		assert.Equal(t, StatusCompleted, r.Status)
		assert.Equal(t, "The answer is 42.", r.Response)
		assert.Equal(t, true, r.Metadata["parsed_from_text"])
		assert.Equal(t, "Researcher", r.DelegateName)
	})

	t.Run("embedded structured response is decoded", func(t *testing.T) {
		text := `Here is my result:
{"type":"response","subquery_id":"sq-9","delegate_name":"Analyst","response":"structured answer","status":"in_progress","confidence":0.7}`
		r := ParseResponse("sq-1", "Researcher", text)
		assert.Equal(t, "sq-9", r.SubqueryID)
		assert.Equal(t, "Analyst", r.DelegateName)
		assert.Equal(t, StatusInProgress, r.Status)
		assert.Equal(t, 0.7, r.Confidence)
		assert.Nil(t, r.Metadata["parsed_from_text"])
	})

	t.Run("structured error becomes error-status response", func(t *testing.T) {
		text := `{"type":"error","subquery_id":"sq-2","error_type":"rate_limit","error_message":"slow down","retryable":true}`
		r := ParseResponse("sq-2", "Analyst", text)
		assert.Equal(t, StatusError, r.Status)
		assert.Equal(t, "slow down", r.Response)
		assert.Equal(t, "rate_limit", r.Metadata["error_type"])
	})

	t.Run("json without type field falls back to text", func(t *testing.T) {
		r := ParseResponse("sq-1", "Researcher", `{"answer": "yes"}`)
		assert.Equal(t, true, r.Metadata["parsed_from_text"])
		assert.Equal(t, StatusCompleted, r.Status)
	})

	t.Run("malformed json falls back to text", func(t *testing.T) {
		r := ParseResponse("sq-1", "Researcher", `{"type": "response", "respo`)
		assert.Equal(t, true, r.Metadata["parsed_from_text"])
	})

	t.Run("braces inside strings do not unbalance the scan", func(t *testing.T) {
		text := `{"type":"response","response":"use {curly} braces","delegate_name":"D","subquery_id":"s","status":"completed"}`
		r := ParseResponse("s", "D", text)
		assert.Equal(t, "use {curly} braces", r.Response)
		assert.Equal(t, StatusCompleted, r.Status)
	})
}
