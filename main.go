// @title 168cap LLM App
// @version 1.0.0
// @description LLM application running on 168cap infrastructure
// @basePath /

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/168cap/llm-app/docs"
	"github.com/168cap/llm-app/internal/api"
	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/service"
	"github.com/168cap/llm-app/internal/util"
)

func main() {
	// Load .env if present; deployed environments set variables directly.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting llm-app",
		zap.String("app_name", cfg.Title),
		zap.String("version", config.Version),
		zap.String("environment", cfg.Environment),
		zap.Bool("debug", bool(cfg.Debug)))

	// The served OpenAPI document follows the runtime configuration.
	docs.SwaggerInfo.Title = cfg.Title
	docs.SwaggerInfo.Description = util.AppDescription
	docs.SwaggerInfo.Version = config.Version

	// Initialize services
	chatService := service.NewChatService(cfg, service.NewEchoResponder())

	// Setup server
	srv := api.NewServer(cfg, logger, chatService)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("llm-app running", zap.String("addr", cfg.Addr()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("llm-app shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
