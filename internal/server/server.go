// Package server wires the namespace, provider registry, middleware and
// HTTP routes into a runnable service.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/memfsd/memfsd/internal/api/middleware"
	apihttp "github.com/memfsd/memfsd/internal/http"
	"github.com/memfsd/memfsd/internal/infrastructure/config"
	"github.com/memfsd/memfsd/internal/infrastructure/monitoring"
	"github.com/memfsd/memfsd/internal/logging"
	"github.com/memfsd/memfsd/internal/providers/memfs"
	"github.com/memfsd/memfsd/internal/service"
	"github.com/memfsd/memfsd/internal/vfs"
)

// Server hosts the namespace service.
type Server struct {
	cfg    *config.Config
	log    *logging.Logger
	engine *gin.Engine
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config) (*Server, error) {
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	metrics := monitoring.New()
	namespace := vfs.New(log)
	provider := memfs.NewProvider(namespace, log, metrics, cfg.Snapshot.Dir)

	registry := service.NewRegistry()
	if err := registry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	engine.Use(monitoring.Middleware(metrics))

	handlers := apihttp.NewHandlers(registry)
	engine.GET("/", handlers.Root)
	engine.GET("/services", handlers.ListServices)
	engine.GET("/stats", handlers.Stats)
	engine.POST("/services/execute", handlers.Execute)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{cfg: cfg, log: log, engine: engine}, nil
}

// Run serves HTTP until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.log.Info("starting server", zap.String("addr", addr))
	if err := s.engine.Run(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Close flushes buffered log entries.
func (s *Server) Close() error {
	return s.log.Sync()
}
