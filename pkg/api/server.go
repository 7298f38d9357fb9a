// Package api exposes the HTTP surface: agent and catalog management,
// knowledge intake, the public chat endpoint, the conversational builder,
// analytics and orders.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/analytics"
	"github.com/merxlab/merx/pkg/auth"
	"github.com/merxlab/merx/pkg/builder"
	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/database"
	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/orchestrator"
	"github.com/merxlab/merx/pkg/services"
)

// VectorCounter reports how many knowledge chunks an agent has indexed.
// Implemented by vector.Store.
type VectorCounter interface {
	CountByAgent(ctx context.Context, agentID string) (int, error)
}

// Deps collects everything the server needs. All fields are required.
type Deps struct {
	Config   *config.Config
	DB       *database.Client
	Verifier auth.Verifier
	Vectors  VectorCounter

	Agents        *services.AgentService
	Products      *services.ProductService
	Conversations *services.ConversationService
	Training      *services.TrainingService
	Orders        *services.OrderService
	Analytics     *analytics.Service

	Orchestrator *orchestrator.Orchestrator
	Builder      *builder.Engine
	Processor    *ingest.Processor
	Queue        *ingest.Queue
}

// Server is the HTTP server.
type Server struct {
	deps    Deps
	locks   *sessionLocks
	httpSrv *http.Server
}

// NewServer creates the server and builds its router.
func NewServer(deps Deps) *Server {
	s := &Server{
		deps:  deps,
		locks: newSessionLocks(),
	}
	s.httpSrv = &http.Server{
		Addr:        fmt.Sprintf(":%d", deps.Config.Server.Port),
		Handler:     s.buildRouter(),
		ReadTimeout: deps.Config.Server.RequestTimeout,
	}
	return s
}

// buildRouter wires middleware and routes. Public chat and order tracking
// run under permissive CORS; everything else under the configured origins
// plus bearer auth.
func (s *Server) buildRouter() *gin.Engine {
	if s.deps.Config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.handleHealth)
	router.Static("/uploads", s.deps.Config.Uploads.Dir)

	// Public surface: embedded widgets call from any origin.
	public := router.Group("/api")
	public.Use(cors.New(permissiveCORS()))
	{
		public.POST("/chat/:agent_id/message", s.handleChatMessage)
		public.GET("/orders/track/:order_number", s.handleTrackOrder)
		public.GET("/agents/:id", s.handleGetAgent)
	}

	// Owner surface: configured origins, bearer tokens.
	private := router.Group("/api")
	private.Use(cors.New(configuredCORS(s.deps.Config.Server.AllowedOrigins)))
	private.Use(authMiddleware(s.deps.Verifier))
	{
		private.POST("/agents", s.handleCreateAgent)
		private.GET("/agents", s.handleListAgents)
		private.PUT("/agents/:id", s.handleUpdateAgent)
		private.DELETE("/agents/:id", s.handleDeleteAgent)

		private.POST("/products", s.handleCreateProduct)
		private.GET("/products/agent/:agent_id", s.handleListProducts)
		private.PUT("/products/:id", s.handleUpdateProduct)
		private.DELETE("/products/:id", s.handleDeleteProduct)
		private.POST("/products/upload-image", s.handleUploadProductImage)

		private.POST("/training/pdf", s.handleTrainPDF)
		private.POST("/training/url", s.handleTrainURL)
		private.POST("/training/faq", s.handleTrainFAQ)
		private.GET("/training/:agent_id/data", s.handleListTraining)
		private.DELETE("/training/:agent_id/data", s.handleDeleteTraining)

		private.POST("/conversational-builder/start", s.handleBuilderStart)
		private.POST("/conversational-builder/converse", s.handleBuilderConverse)
		private.POST("/conversational-builder/upload-document", s.handleBuilderUpload)

		private.GET("/analytics/dashboard", s.handleAnalyticsDashboard)

		private.POST("/orders", s.handleCreateOrder)
		private.GET("/orders", s.handleListOrders)
		private.GET("/orders/:id", s.handleGetOrder)
		private.PATCH("/orders/:id/status", s.handleUpdateOrderStatus)

		private.GET("/conversations/agent/:agent_id", s.handleListConversations)
		private.GET("/conversations/:id", s.handleGetConversation)
	}

	return router
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func permissiveCORS() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cfg
}

func configuredCORS(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cfg
}
