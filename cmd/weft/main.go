// Weft workflow server. Provides the HTTP API, manages queue workers, and
// drives agent workflow executions.
package main

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/weftworks/weft/pkg/api"
	"github.com/weftworks/weft/pkg/cleanup"
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/delegate"
	"github.com/weftworks/weft/pkg/engine"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/hitl"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/mcp"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/orchestrator"
	"github.com/weftworks/weft/pkg/queue"
	"github.com/weftworks/weft/pkg/retrieval"
	"github.com/weftworks/weft/pkg/services"
	"github.com/weftworks/weft/pkg/slack"
)

const wsWriteTimeout = 10 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// loadCredentialKey reads the 32-byte AES master key from
// WEFT_CREDENTIAL_KEY. Accepts raw, hex, or base64 encodings. Returns nil
// when unset, which disables per-project credentials.
func loadCredentialKey() ([]byte, error) {
	raw := os.Getenv("WEFT_CREDENTIAL_KEY")
	if raw == "" {
		return nil, nil
	}
	if len(raw) == 32 {
		return []byte(raw), nil
	}
	if decoded, err := hex.DecodeString(raw); err == nil && len(decoded) == 32 {
		return decoded, nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil && len(decoded) == 32 {
		return decoded, nil
	}
	return nil, fmt.Errorf("WEFT_CREDENTIAL_KEY must decode to 32 bytes")
}

// buildSearcher wires Qdrant document retrieval when QDRANT_HOST is set.
// Returns nil when retrieval is not configured; document-aware nodes then
// run without retrieved context.
func buildSearcher() (retrieval.Searcher, error) {
	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		return nil, nil
	}
	port, err := strconv.Atoi(getEnv("QDRANT_PORT", "6334"))
	if err != nil {
		return nil, fmt.Errorf("invalid QDRANT_PORT: %w", err)
	}
	embeddingKey := os.Getenv("EMBEDDING_API_KEY")
	if embeddingKey == "" {
		return nil, fmt.Errorf("QDRANT_HOST is set but EMBEDDING_API_KEY is not")
	}
	embedder := retrieval.NewOpenAIEmbedder(
		embeddingKey,
		getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		nil,
	)
	return retrieval.NewQdrantSearcher(retrieval.QdrantConfig{
		Host:       host,
		Port:       port,
		APIKey:     os.Getenv("QDRANT_API_KEY"),
		UseTLS:     os.Getenv("QDRANT_USE_TLS") == "true",
		Collection: getEnv("QDRANT_COLLECTION", "documents"),
	}, embedder)
}

// requeueScheduler re-enters resumed executions through the worker pool
// instead of running them on the API request goroutine. Requeue flips the
// execution back to pending; the next free worker claims it.
type requeueScheduler struct {
	store *services.Store
}

func (r requeueScheduler) Execute(ctx context.Context, executionID string) error {
	return r.store.Requeue(ctx, executionID)
}

// multiNotifier fans one status transition out to several notifiers.
type multiNotifier []engine.Notifier

func (m multiNotifier) ExecutionStatusChanged(executionID string, status models.ExecutionStatus, detail string) {
	for _, n := range m {
		n.ExecutionStatusChanged(executionID, status, detail)
	}
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting weft", "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	store := services.NewStore(dbClient.Client)

	// 3. One-time startup orphan recovery
	if err := queue.RecoverStartupOrphans(ctx, store, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal, the periodic recovery loop retries
	}

	// 4. Credential store and LLM provider factory
	var credStore *credentials.Store
	masterKey, err := loadCredentialKey()
	if err != nil {
		slog.Error("Failed to load credential key", "error", err)
		os.Exit(1)
	}
	if masterKey != nil {
		credStore, err = credentials.NewStore(dbClient.Client, masterKey)
		if err != nil {
			slog.Error("Failed to initialize credential store", "error", err)
			os.Exit(1)
		}
		slog.Info("Credential store initialized")
	} else {
		slog.Warn("WEFT_CREDENTIAL_KEY not set, per-project credentials disabled")
	}

	var keys llm.KeySource
	if credStore != nil {
		keys = credStore
	}
	factory := llm.NewFactory(keys, cfg.LLMProviderRegistry, nil, cfg.System.SidecarAddr).
		WithDefaults(cfg.Defaults)

	// 5. Optional document retrieval
	searcher, err := buildSearcher()
	if err != nil {
		slog.Error("Failed to initialize document retrieval", "error", err)
		os.Exit(1)
	}
	if searcher != nil {
		slog.Info("Document retrieval initialized")
	}

	// 6. Event streaming (Postgres NOTIFY fan-out to WebSocket clients)
	hub := events.NewHub(dbClient.DB(), dbConfig.DSN(), wsWriteTimeout)
	if err := hub.Start(ctx); err != nil {
		slog.Error("Failed to start event hub", "error", err)
		os.Exit(1)
	}
	defer hub.Stop(ctx)
	slog.Info("Event streaming initialized")

	// 6a. MCP tool servers. Eager validation: a broken server config fails
	// startup instead of the first delegation that needs it.
	var delegateOpts []delegate.ExecutorOption
	if cfg.MCPServerRegistry.Len() > 0 {
		mcpFactory := mcp.NewClientFactory(cfg.MCPServerRegistry)
		if err := mcpFactory.Validate(ctx); err != nil {
			slog.Error("MCP startup validation failed", "error", err)
			os.Exit(1)
		}
		delegateOpts = append(delegateOpts, delegate.WithTools(mcpFactory))
		slog.Info("MCP servers validated", "count", cfg.MCPServerRegistry.Len())
	}

	// 6b. Slack outcome notifications (optional)
	notifier := multiNotifier{hub}
	slackService := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv("SLACK_BOT_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL_ID"),
		DashboardURL: cfg.System.DashboardURL,
	}, store)
	if slackService != nil {
		notifier = append(notifier, slackService)
		slog.Info("Slack notifications enabled")
	}

	// 7. Execution pipeline: delegates, group chat, human input, engine
	delegateExec := delegate.NewExecutor(factory, searcher, delegateOpts...)
	groupChat := orchestrator.New(factory, delegateExec)
	controller := hitl.NewController(store, hitl.NewReflector(factory))

	eng := engine.New(
		store,
		controller,
		engine.NewAssistantExecutor(factory, searcher),
		engine.NewGroupChatExecutor(groupChat),
		engine.WithNotifier(notifier),
	)
	controller.SetScheduler(requeueScheduler{store: store})

	// 8. Background loops: stale-pause sweeper, retention cleanup
	bgCtx, bgCancel := context.WithCancel(ctx)
	defer bgCancel()
	sweeper := hitl.NewSweeper(store, cfg.Retention.HumanInputTimeout, cfg.Retention.SweepInterval)
	go sweeper.Run(bgCtx)

	cleanupService := cleanup.NewService(cfg.Retention, store.ExecutionService)
	cleanupService.Start(bgCtx)
	defer cleanupService.Stop()

	// 9. Worker pool (before the HTTP server, so workers are claiming
	// before the API starts accepting new executions)
	workerPool := queue.NewWorkerPool(podID, store, cfg.Queue, eng)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. HTTP server
	var credWriter api.CredentialWriter
	if credStore != nil {
		credWriter = credStore
	}
	apiServer := api.NewServer(cfg, dbClient, store, controller, credWriter, workerPool, hub)
	addr := fmt.Sprintf("%s:%d", cfg.System.Host, cfg.System.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Weft started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop claiming first, wait for active
	// executions, then close the HTTP listener.
	bgCancel()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete executions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
