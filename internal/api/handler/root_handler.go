package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/util"
)

// RootHandler handles requests to the root endpoint
type RootHandler struct {
	cfg *config.Config
}

// NewRootHandler creates a new root handler
func NewRootHandler(cfg *config.Config) *RootHandler {
	return &RootHandler{cfg: cfg}
}

// Welcome handles the welcome request
// @Summary Welcome
// @Description Welcome message confirming the app is up
// @Tags Meta
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *RootHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Message:   util.WelcomeMessage,
		AppName:   h.cfg.AppName,
		Timestamp: util.Timestamp(),
		Status:    util.StatusRunning,
	})
}
