// Package api exposes the HTTP surface: execution submission and
// inspection, human input, credentials, health, and the WebSocket
// event stream.
package api

import (
	"context"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/queue"
)

// ExecutionService is the slice of the service layer the handlers use.
// Implemented by services.Store.
type ExecutionService interface {
	CreateExecution(ctx context.Context, req models.CreateExecutionRequest) (*models.Execution, error)
	Get(ctx context.Context, executionID string) (*models.Execution, error)
	List(ctx context.Context, filters models.ExecutionFilters) (*models.ExecutionList, error)
	Cancel(ctx context.Context, executionID string) error
	Messages(ctx context.Context, executionID string) ([]models.Message, error)
}

// Resumer feeds human input back into a paused execution.
// Implemented by hitl.Controller.
type Resumer interface {
	Resume(ctx context.Context, req models.ResumeRequest) error
}

// CredentialWriter stores per-project provider API keys.
// Implemented by credentials.Store.
type CredentialWriter interface {
	Put(ctx context.Context, projectID, provider, apiKey string) error
}

// EventStream handles upgraded WebSocket connections.
// Implemented by events.Hub.
type EventStream interface {
	HandleConnection(ctx context.Context, conn *websocket.Conn)
}

// Server holds the handler dependencies and builds the gin router.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	executions ExecutionService
	resumer    Resumer
	creds      CredentialWriter
	workerPool *queue.WorkerPool
	hub        EventStream
}

// NewServer creates a new API server. resumer, creds, workerPool, and hub
// may be nil; the corresponding endpoints return 503.
func NewServer(cfg *config.Config, dbClient *database.Client, executions ExecutionService, resumer Resumer, creds CredentialWriter, workerPool *queue.WorkerPool, hub EventStream) *Server {
	return &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		executions: executions,
		resumer:    resumer,
		creds:      creds,
		workerPool: workerPool,
		hub:        hub,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/executions", s.createExecutionHandler)
		v1.GET("/executions", s.listExecutionsHandler)
		v1.GET("/executions/:id", s.getExecutionHandler)
		v1.POST("/executions/:id/cancel", s.cancelExecutionHandler)

		v1.GET("/human-input/pending", s.pendingHumanInputHandler)
		v1.POST("/human-input/submit", s.submitHumanInputHandler)

		v1.PUT("/projects/:id/credentials", s.putCredentialHandler)
	}

	return r
}
