package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/hitl"
	"github.com/weftworks/weft/pkg/models"
)

// fakeResumer records resume requests and can reshape the execution.
type fakeResumer struct {
	svc      *fakeExecutionService
	requests []models.ResumeRequest
	err      error
	// pauseAgain leaves the execution in awaiting_human_input, as a
	// reflection round asking for another iteration would.
	pauseAgain bool
}

func (f *fakeResumer) Resume(_ context.Context, req models.ResumeRequest) error {
	if f.err != nil {
		return f.err
	}
	f.requests = append(f.requests, req)
	if e, ok := f.svc.executions[req.ExecutionID]; ok {
		if f.pauseAgain {
			e.Status = models.StatusAwaitingHumanInput
		} else {
			e.Status = models.StatusPending
		}
	}
	return nil
}

func TestPendingHumanInput(t *testing.T) {
	svc := newFakeExecutionService()
	svc.executions["e1"] = &models.Execution{
		ID:                 "e1",
		Status:             models.StatusAwaitingHumanInput,
		AwaitingHumanInput: "Which environment should I target?",
		HumanInputAgentID:  "proxy-1",
	}
	svc.executions["e2"] = &models.Execution{ID: "e2", Status: models.StatusRunning}
	router := testRouter(svc, nil, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/human-input/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ExecutionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Executions, 1)
	assert.Equal(t, "e1", resp.Executions[0].ExecutionID)
	assert.Equal(t, "Which environment should I target?", resp.Executions[0].AwaitingHumanInput)
	assert.Equal(t, "proxy-1", resp.Executions[0].HumanInputAgentID)
}

func TestSubmitHumanInput(t *testing.T) {
	t.Run("resumes a paused execution", func(t *testing.T) {
		svc := newFakeExecutionService()
		svc.executions["e1"] = &models.Execution{ID: "e1", Status: models.StatusAwaitingHumanInput}
		resumer := &fakeResumer{svc: svc}
		router := testRouter(svc, resumer, nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/human-input/submit", SubmitHumanInputRequest{
			ExecutionID: "e1",
			HumanInput:  "use staging",
			Action:      "submit",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp SubmitHumanInputResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.StatusPending, resp.Status)
		assert.Contains(t, resp.Message, "continues")

		require.Len(t, resumer.requests, 1)
		assert.Equal(t, models.ActionSubmit, resumer.requests[0].Action)
		assert.Equal(t, "use staging", resumer.requests[0].Input)
	})

	t.Run("empty action defaults to submit", func(t *testing.T) {
		svc := newFakeExecutionService()
		svc.executions["e1"] = &models.Execution{ID: "e1", Status: models.StatusAwaitingHumanInput}
		resumer := &fakeResumer{svc: svc}
		router := testRouter(svc, resumer, nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/human-input/submit", SubmitHumanInputRequest{
			ExecutionID: "e1",
			HumanInput:  "ok",
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resumer.requests, 1)
		assert.Equal(t, models.ActionSubmit, resumer.requests[0].Action)
	})

	t.Run("reflection pause reports paused again", func(t *testing.T) {
		svc := newFakeExecutionService()
		svc.executions["e1"] = &models.Execution{ID: "e1", Status: models.StatusAwaitingHumanInput}
		resumer := &fakeResumer{svc: svc, pauseAgain: true}
		router := testRouter(svc, resumer, nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/human-input/submit", SubmitHumanInputRequest{
			ExecutionID: "e1",
			HumanInput:  "make it shorter",
			Action:      "iterate",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp SubmitHumanInputResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.StatusAwaitingHumanInput, resp.Status)
		assert.Contains(t, resp.Message, "paused again")
	})

	t.Run("unknown action is 400", func(t *testing.T) {
		svc := newFakeExecutionService()
		router := testRouter(svc, &fakeResumer{svc: svc}, nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/human-input/submit", SubmitHumanInputRequest{
			ExecutionID: "e1",
			HumanInput:  "x",
			Action:      "redo",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not awaiting input is 409", func(t *testing.T) {
		svc := newFakeExecutionService()
		router := testRouter(svc, &fakeResumer{svc: svc, err: hitl.ErrNotAwaitingInput}, nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/human-input/submit", SubmitHumanInputRequest{
			ExecutionID: "e1",
			HumanInput:  "x",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no resumer wired is 503", func(t *testing.T) {
		router := testRouter(newFakeExecutionService(), nil, nil)
		w := doJSON(t, router, http.MethodPost, "/api/v1/human-input/submit", SubmitHumanInputRequest{
			ExecutionID: "e1",
			HumanInput:  "x",
		})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
