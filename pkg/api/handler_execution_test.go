package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeExecutionService implements ExecutionService over a map.
type fakeExecutionService struct {
	executions map[string]*models.Execution
	messages   map[string][]models.Message
	cancelled  []string
	createErr  error
}

func newFakeExecutionService() *fakeExecutionService {
	return &fakeExecutionService{
		executions: make(map[string]*models.Execution),
		messages:   make(map[string][]models.Message),
	}
}

func (f *fakeExecutionService) CreateExecution(_ context.Context, req models.CreateExecutionRequest) (*models.Execution, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := &models.Execution{
		ID:        "exec-created",
		ProjectID: req.ProjectID,
		Workflow:  req.Workflow,
		Input:     req.Input,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	f.executions[e.ID] = e
	return e, nil
}

func (f *fakeExecutionService) Get(_ context.Context, executionID string) (*models.Execution, error) {
	e, ok := f.executions[executionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return e, nil
}

func (f *fakeExecutionService) List(_ context.Context, filters models.ExecutionFilters) (*models.ExecutionList, error) {
	list := &models.ExecutionList{Limit: filters.Limit, Offset: filters.Offset}
	for _, e := range f.executions {
		if filters.Status != "" && string(e.Status) != filters.Status {
			continue
		}
		list.Executions = append(list.Executions, e)
	}
	list.TotalCount = len(list.Executions)
	return list, nil
}

func (f *fakeExecutionService) Cancel(_ context.Context, executionID string) error {
	e, ok := f.executions[executionID]
	if !ok {
		return services.ErrNotFound
	}
	switch e.Status {
	case models.StatusCompleted, models.StatusFailed, models.StatusStopped:
		return services.ErrNotCancellable
	}
	e.Status = models.StatusStopped
	f.cancelled = append(f.cancelled, executionID)
	return nil
}

func (f *fakeExecutionService) Messages(_ context.Context, executionID string) ([]models.Message, error) {
	return f.messages[executionID], nil
}

func testConfig() *config.Config {
	return &config.Config{
		System:   &config.SystemConfig{Host: "127.0.0.1", Port: 8080},
		Queue:    config.DefaultQueueConfig(),
		Defaults: &config.Defaults{LLMProvider: "openai"},
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"openai": {Type: config.LLMProviderTypeOpenAI, Model: "gpt-4o"},
		}),
	}
}

func testRouter(svc *fakeExecutionService, resumer Resumer, creds CredentialWriter) *gin.Engine {
	server := NewServer(testConfig(), nil, svc, resumer, creds, nil, nil)
	return server.Router()
}

func validWorkflow() map[string]interface{} {
	return map[string]interface{}{
		"nodes": []interface{}{
			map[string]interface{}{"id": "start", "type": "StartNode", "data": map[string]interface{}{}},
			map[string]interface{}{
				"id":   "a1",
				"type": "AssistantAgent",
				"data": map[string]interface{}{"name": "analyst"},
			},
		},
		"edges": []interface{}{
			map[string]interface{}{"source": "start", "target": "a1", "type": "sequential"},
		},
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateExecution(t *testing.T) {
	t.Run("accepts valid workflow", func(t *testing.T) {
		svc := newFakeExecutionService()
		router := testRouter(svc, nil, nil)

		w := doJSON(t, router, http.MethodPost, "/api/v1/executions", CreateExecutionRequest{
			ProjectID: "proj-1",
			Workflow:  validWorkflow(),
			Input:     "analyze the logs",
		})

		require.Equal(t, http.StatusAccepted, w.Code)
		var resp CreateExecutionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "exec-created", resp.ExecutionID)
		assert.Equal(t, models.StatusPending, resp.Status)
	})

	t.Run("rejects missing input", func(t *testing.T) {
		router := testRouter(newFakeExecutionService(), nil, nil)
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions", map[string]interface{}{
			"workflow": validWorkflow(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects invalid workflow graph", func(t *testing.T) {
		router := testRouter(newFakeExecutionService(), nil, nil)
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions", CreateExecutionRequest{
			Workflow: map[string]interface{}{
				"nodes": []interface{}{
					map[string]interface{}{"id": "start", "type": "StartNode", "data": map[string]interface{}{}},
				},
				"edges": []interface{}{
					map[string]interface{}{"source": "start", "target": "missing", "type": "sequential"},
				},
			},
			Input: "hello",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid workflow")
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		router := testRouter(newFakeExecutionService(), nil, nil)
		big := make([]byte, maxInputBytes+1)
		for i := range big {
			big[i] = 'x'
		}
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions", CreateExecutionRequest{
			Workflow: validWorkflow(),
			Input:    string(big),
		})
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestGetExecution(t *testing.T) {
	svc := newFakeExecutionService()
	started := time.Now().Add(-30 * time.Second)
	completed := time.Now()
	svc.executions["exec-1"] = &models.Execution{
		ID:          "exec-1",
		Status:      models.StatusCompleted,
		Input:       "question",
		FinalOutput: "answer",
		StartedAt:   &started,
		CompletedAt: &completed,
	}
	svc.messages["exec-1"] = []models.Message{
		{AgentName: "analyst", Content: "answer", Type: models.MessageAgentResponse, Sequence: 1},
	}
	router := testRouter(svc, nil, nil)

	t.Run("returns snapshot with messages and duration", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions/exec-1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ExecutionDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "exec-1", resp.ExecutionID)
		assert.Equal(t, models.StatusCompleted, resp.Status)
		assert.Equal(t, "answer", resp.FinalOutput)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "analyst", resp.Messages[0].AgentName)
		require.NotNil(t, resp.DurationSeconds)
		assert.InDelta(t, 30.0, *resp.DurationSeconds, 1.0)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListExecutions(t *testing.T) {
	svc := newFakeExecutionService()
	svc.executions["e1"] = &models.Execution{ID: "e1", Status: models.StatusRunning}
	svc.executions["e2"] = &models.Execution{ID: "e2", Status: models.StatusCompleted}
	router := testRouter(svc, nil, nil)

	t.Run("filters by status", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions?status=running", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ExecutionListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Executions, 1)
		assert.Equal(t, "e1", resp.Executions[0].ExecutionID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects out-of-range limit", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions?limit=500", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelExecution(t *testing.T) {
	svc := newFakeExecutionService()
	svc.executions["e1"] = &models.Execution{ID: "e1", Status: models.StatusRunning}
	svc.executions["e2"] = &models.Execution{ID: "e2", Status: models.StatusCompleted}
	router := testRouter(svc, nil, nil)

	t.Run("cancels a running execution", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/e1/cancel", nil)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, []string{"e1"}, svc.cancelled)
	})

	t.Run("terminal execution is 409", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/e2/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown execution is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/nope/cancel", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	router := testRouter(newFakeExecutionService(), nil, nil)
	w := doJSON(t, router, http.MethodGet, "/api/v1/executions", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMapServiceError(t *testing.T) {
	svc := newFakeExecutionService()
	svc.createErr = fmt.Errorf("wrapped: %w", services.NewValidationError("input", "too vague"))
	router := testRouter(svc, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/executions", CreateExecutionRequest{
		Workflow: validWorkflow(),
		Input:    "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too vague")
}
