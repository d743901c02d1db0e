package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCredentialWriter records stored keys.
type fakeCredentialWriter struct {
	stored map[string]string // "project/provider" → key
	err    error
}

func (f *fakeCredentialWriter) Put(_ context.Context, projectID, provider, apiKey string) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		f.stored = make(map[string]string)
	}
	f.stored[projectID+"/"+provider] = apiKey
	return nil
}

func TestPutCredential(t *testing.T) {
	t.Run("stores key for known provider", func(t *testing.T) {
		creds := &fakeCredentialWriter{}
		router := testRouter(newFakeExecutionService(), nil, creds)

		w := doJSON(t, router, http.MethodPut, "/api/v1/projects/proj-1/credentials", PutCredentialRequest{
			Provider: "openai",
			APIKey:   "sk-test",
		})
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "sk-test", creds.stored["proj-1/openai"])
	})

	t.Run("unknown provider is 400", func(t *testing.T) {
		creds := &fakeCredentialWriter{}
		router := testRouter(newFakeExecutionService(), nil, creds)

		w := doJSON(t, router, http.MethodPut, "/api/v1/projects/proj-1/credentials", PutCredentialRequest{
			Provider: "mystery",
			APIKey:   "sk-test",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown provider")
		assert.Empty(t, creds.stored)
	})

	t.Run("missing api_key is 400", func(t *testing.T) {
		router := testRouter(newFakeExecutionService(), nil, &fakeCredentialWriter{})
		w := doJSON(t, router, http.MethodPut, "/api/v1/projects/proj-1/credentials", map[string]string{
			"provider": "openai",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no store wired is 503", func(t *testing.T) {
		router := testRouter(newFakeExecutionService(), nil, nil)
		w := doJSON(t, router, http.MethodPut, "/api/v1/projects/proj-1/credentials", PutCredentialRequest{
			Provider: "openai",
			APIKey:   "sk-test",
		})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
