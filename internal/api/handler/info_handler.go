package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/168cap/llm-app/internal/config"
	"github.com/168cap/llm-app/internal/models"
	"github.com/168cap/llm-app/internal/util"
)

// InfoHandler handles application information requests
type InfoHandler struct {
	cfg *config.Config
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{cfg: cfg}
}

// Info handles application information requests
// @Summary Application information
// @Description Report the app name, version, environment, and debug state
// @Tags Meta
// @Produce json
// @Success 200 {object} models.InfoResponse
// @Router /api/info [get]
func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, models.InfoResponse{
		AppName:     h.cfg.AppName,
		Version:     config.Version,
		Environment: h.cfg.Environment,
		Debug:       bool(h.cfg.Debug),
		Timestamp:   util.Timestamp(),
	})
}
