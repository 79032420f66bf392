package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/168cap/llm-app/internal/api/middleware"
	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/util"
)

// ErrorHandler renders the JSON envelopes for requests that never reach
// a route handler: unknown endpoints and recovered panics.
type ErrorHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(cfg *config.Config, logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// NotFound answers any request whose path and method match no route.
// Wired to the router's NoRoute hook.
func (h *ErrorHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:     util.ErrMsgNotFound,
		Timestamp: util.Timestamp(),
		AppName:   h.cfg.AppName,
	})
}

// Recovered converts a recovered panic into the 500 envelope. Wired to
// gin.CustomRecovery.
func (h *ErrorHandler) Recovered(c *gin.Context, recovered interface{}) {
	h.logger.Error("panic recovered",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)))

	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     util.ErrMsgInternal,
		Timestamp: util.Timestamp(),
		AppName:   h.cfg.AppName,
	})
}
