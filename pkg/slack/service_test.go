package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
)

type fakeGetter struct {
	execution *models.Execution
}

func (f *fakeGetter) Get(context.Context, string) (*models.Execution, error) {
	return f.execution, nil
}

func mockSlackAPI(t *testing.T, posted *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat.postMessage" {
			posted.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1.0"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestServiceExecutionStatusChanged(t *testing.T) {
	t.Run("posts on terminal status", func(t *testing.T) {
		var posted atomic.Int32
		server := mockSlackAPI(t, &posted)
		client := NewClientWithAPIURL("token", "C1", server.URL+"/")
		getter := &fakeGetter{execution: &models.Execution{
			ID: "ex-1", ProjectID: "p1", Status: models.StatusCompleted, ResultSummary: "done",
		}}
		svc := NewServiceWithClient(client, getter, "http://dash")

		svc.ExecutionStatusChanged("ex-1", models.StatusCompleted, "")
		require.Eventually(t, func() bool { return posted.Load() == 1 },
			2*time.Second, 10*time.Millisecond)
	})

	t.Run("ignores non-terminal status", func(t *testing.T) {
		var posted atomic.Int32
		server := mockSlackAPI(t, &posted)
		client := NewClientWithAPIURL("token", "C1", server.URL+"/")
		svc := NewServiceWithClient(client, nil, "http://dash")

		svc.ExecutionStatusChanged("ex-1", models.StatusRunning, "")
		svc.ExecutionStatusChanged("ex-1", models.StatusAwaitingHumanInput, "")
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(0), posted.Load())
	})

	t.Run("nil service is a no-op", func(t *testing.T) {
		var svc *Service
		assert.NotPanics(t, func() {
			svc.ExecutionStatusChanged("ex-1", models.StatusCompleted, "")
		})
	})
}

func TestNewServiceRequiresTokenAndChannel(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "C1"}, nil))
	assert.Nil(t, NewService(ServiceConfig{Token: "tok", Channel: ""}, nil))
	assert.NotNil(t, NewService(ServiceConfig{Token: "tok", Channel: "C1"}, nil))
}
