package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandlePing godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "pong"
// @Router       /ping [get]
func (h *HealthHandler) HandlePing(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}

// HandleHealth godoc
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) HandleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
