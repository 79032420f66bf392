package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/util"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check handles health check requests
// @Summary Health check
// @Description Check if the app is running and healthy, for Docker and load balancers
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:      util.StatusHealthy,
		Timestamp:   util.Timestamp(),
		AppName:     h.cfg.AppName,
		Environment: h.cfg.Environment,
	})
}
