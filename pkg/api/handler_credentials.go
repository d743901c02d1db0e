package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// putCredentialHandler handles PUT /api/v1/projects/:id/credentials.
// Upserts the encrypted API key for one provider. The key is never
// echoed back.
func (s *Server) putCredentialHandler(c *gin.Context) {
	if s.creds == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "credential store is not available"})
		return
	}

	projectID := c.Param("id")

	var req PutCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.cfg != nil && !s.cfg.LLMProviderRegistry.Has(req.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider: " + req.Provider})
		return
	}

	if err := s.creds.Put(c.Request.Context(), projectID, req.Provider, req.APIKey); err != nil {
		mapServiceError(c, err)
		return
	}

	slog.Info("Credential stored",
		"project_id", projectID, "provider", req.Provider, "author", extractAuthor(c))

	c.Status(http.StatusNoContent)
}
