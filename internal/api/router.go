package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/168cap/llm-app/internal/api/handler"
	"github.com/168cap/llm-app/internal/api/middleware"
	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/service"
)

// Router sets up all API routes
func Router(cfg *config.Config, logger *zap.Logger, chatService *service.ChatService) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Create handlers
	rootHandler := handler.NewRootHandler(cfg)
	healthHandler := handler.NewHealthHandler(cfg)
	infoHandler := handler.NewInfoHandler(cfg)
	chatHandler := handler.NewChatHandler(cfg, chatService, logger)
	errorHandler := handler.NewErrorHandler(cfg, logger)

	// Apply middlewares
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(errorHandler.Recovered))
	router.Use(middleware.CORSMiddleware())

	// Meta endpoints
	router.GET("/", rootHandler.Welcome)
	router.GET("/health", healthHandler.Check)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/info", infoHandler.Info)
		api.POST("/chat", chatHandler.Handle)
	}

	// API docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Everything else
	router.NoRoute(errorHandler.NotFound)

	return router
}
