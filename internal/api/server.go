package api

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/service"
)

// Server owns the listening socket and the HTTP serving lifecycle.
type Server struct {
	server *http.Server
	logger *zap.Logger
}

// NewServer assembles the router and binds it to the configured address.
func NewServer(cfg *config.Config, logger *zap.Logger, chatService *service.ChatService) *Server {
	return &Server{
		server: &http.Server{
			Addr:    cfg.Addr(),
			Handler: Router(cfg, logger, chatService),
		},
		logger: logger,
	}
}

// Start starts the HTTP server and blocks until it stops serving.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server, letting in-flight requests
// complete within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
