package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	apisetup "shop-admin/internal/api"
	"shop-admin/internal/bootstrap"
	"shop-admin/internal/config"
	"shop-admin/internal/observability"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()
	s.router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "Cache-Control", "X-Api-Key"}
	corsConfig.ExposeHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
	corsConfig.AllowOrigins = []string{s.config.Server.WebAppURI}

	// Allow localhost in non-production
	if os.Getenv("GO_ENV") != "production" && s.config.Server.WebAppURI != "http://localhost:3000" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, "http://localhost:3000")
	}

	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	api := apisetup.New(
		s.router.Group("/"),
		apisetup.Handlers{
			Auth:        s.deps.AuthHandler,
			Products:    s.deps.ProductHandler,
			Billing:     s.deps.BillingHandler,
			Posts:       s.deps.PostHandler,
			Subscribers: s.deps.SubscriberHandler,
			Dashboard:   s.deps.DashboardHandler,
			Settings:    s.deps.SettingsHandler,
			Chat:        s.deps.ChatHandler,
			Public:      s.deps.PublicHandler,
			Health:      s.deps.HealthHandler,
		},
		s.deps.Tenants,
		s.deps.RateLimiter,
		s.config.RateLimit,
	)
	api.RegisterRoutes()
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests in the background. A listener
// failure is logged and terminates the process.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info(observability.WithFields(ctx, observability.Field{Key: "addr", Value: addr}), "shop-admin listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal(ctx, "http listener stopped", err)
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT or SIGTERM (or ctx is done), drains
// in-flight requests for up to shutdownTimeout and releases dependencies.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	s.logger.Info(ctx, "draining http server")

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup()
	s.logger.Info(ctx, "shutdown complete")
	return nil
}
