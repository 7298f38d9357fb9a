// Merx server — hosts the merchant API, the public chat surface, and the
// knowledge ingestion workers.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/merxlab/merx/pkg/analytics"
	"github.com/merxlab/merx/pkg/api"
	"github.com/merxlab/merx/pkg/auth"
	"github.com/merxlab/merx/pkg/builder"
	"github.com/merxlab/merx/pkg/cleanup"
	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/database"
	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/llm"
	"github.com/merxlab/merx/pkg/orchestrator"
	"github.com/merxlab/merx/pkg/services"
	"github.com/merxlab/merx/pkg/vector"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Relational store (runs pending migrations)
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

	// 3. Vector index. The index shares the relational database unless
	// VECTOR_URL points elsewhere.
	if cfg.Vector.URL == "" {
		cfg.Vector.URL = dbConfig.DSN()
	}
	vectorStore, err := vector.NewStore(ctx, cfg.Vector)
	if err != nil {
		slog.Error("Failed to connect to vector index", "error", err)
		os.Exit(1)
	}
	defer vectorStore.Close()
	if err := vectorStore.EnsureSchema(ctx); err != nil {
		slog.Error("Failed to prepare vector schema", "error", err)
		os.Exit(1)
	}
	slog.Info("Vector index ready", "collection", cfg.Vector.Collection)

	// 4. LLM client
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	// 5. Domain services
	agentService := services.NewAgentService(dbClient.Client, vectorStore)
	productService := services.NewProductService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	trainingService := services.NewTrainingService(dbClient.Client, vectorStore)
	orderService := services.NewOrderService(dbClient.Client)
	analyticsService := analytics.NewService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Rows stuck in processing from a previous run failed with the
	// process; their jobs lived only in memory.
	if n, err := ingest.CleanupInterruptedRows(ctx, dbClient.Client); err != nil {
		slog.Error("Failed to clean up interrupted training rows", "error", err)
	} else if n > 0 {
		slog.Info("Failed interrupted training rows", "count", n)
	}

	// 7. Ingestion workers
	processor := ingest.NewProcessor(cfg.Ingest)
	pipeline := ingest.NewPipeline(processor, llmClient, vectorStore, trainingService, cfg.Ingest)
	queue := ingest.NewQueue(pipeline, cfg.Ingest)
	queue.Start(ctx)

	// 8. Conversation orchestrator and builder
	turnOrchestrator := orchestrator.New(llmClient, vectorStore, cfg.Orchestrator)
	builderSessions := builder.NewManager()
	builderEngine := builder.NewEngine(
		builderSessions,
		builder.NewServiceMaterializer(agentService, productService, trainingService, queue),
	)

	// Abandoned builder dialogues are dropped after an hour idle.
	retention := cleanup.NewService(builderSessions, 10*time.Minute, time.Hour)
	retention.Start(ctx)
	defer retention.Stop()

	// 9. Token verification
	verifier, err := auth.NewFromConfig(cfg.Auth)
	if err != nil {
		slog.Error("Failed to initialize auth", "error", err)
		os.Exit(1)
	}

	// 10. HTTP server
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "dir", cfg.Uploads.Dir, "error", err)
		os.Exit(1)
	}

	server := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient,
		Verifier:      verifier,
		Vectors:       vectorStore,
		Agents:        agentService,
		Products:      productService,
		Conversations: conversationService,
		Training:      trainingService,
		Orders:        orderService,
		Analytics:     analyticsService,
		Orchestrator:  turnOrchestrator,
		Builder:       builderEngine,
		Processor:     processor,
		Queue:         queue,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Merx started", "port", cfg.Server.Port, "ingest_workers", cfg.Ingest.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop accepting jobs and drain the queue, then
	// stop the HTTP server.
	done := make(chan struct{})
	go func() {
		queue.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Ingestion queue drained")
	case <-time.After(30 * time.Second):
		slog.Warn("Ingestion drain timeout exceeded, interrupted rows recover on next start")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
