package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/168cap/llm-app/internal/api/middleware"
	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/service"
	"github.com/168cap/llm-app/internal/util"
)

// ChatHandler handles chat API requests
type ChatHandler struct {
	cfg         *config.Config
	chatService *service.ChatService
	logger      *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(cfg *config.Config, chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		cfg:         cfg,
		chatService: chatService,
		logger:      logger,
	}
}

// Handle handles chat requests
// @Summary Process chat message
// @Description Send a message and receive the placeholder echo reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat request"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Handle(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request: message is required")
		return
	}

	resp, err := h.chatService.ProcessChat(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("chat processing failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)))

		// TODO: the failure text below can carry content derived from the
		// request; decide whether to redact it before exposure.
		h.respondError(c, http.StatusInternalServerError,
			fmt.Sprintf("%s: %v", util.ErrMsgChatFailed, err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Helper methods

func (h *ChatHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.ErrorResponse{
		Error:     message,
		Timestamp: util.Timestamp(),
		AppName:   h.cfg.AppName,
	})
}
