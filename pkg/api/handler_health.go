package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/queue"
	"github.com/weftworks/weft/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only weft's own components (database, worker pool) are checked.
// External dependencies (LLM providers, sidecar) are excluded so an
// orchestrator does not restart weft when an external service is down.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	var poolHealth *queue.PoolHealth
	if s.workerPool != nil {
		h := s.workerPool.Health()
		poolHealth = h
		if h != nil && !h.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if h.DBError != "" {
				msg = h.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	resp := &HealthResponse{
		Status:     status,
		Version:    version.GitCommit,
		Checks:     checks,
		Database:   dbHealth,
		WorkerPool: poolHealth,
	}
	if s.cfg != nil {
		resp.Configuration = ConfigurationStats{
			LLMProviders: s.cfg.LLMProviderRegistry.Len(),
			WorkerCount:  s.cfg.Queue.WorkerCount,
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, resp)
}
