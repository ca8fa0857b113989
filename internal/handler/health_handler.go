package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safari-for-safety/roadkill-api/internal/service"
	"github.com/safari-for-safety/roadkill-api/pkg/response"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	service *service.HealthService
}

// NewHealthHandler creates a new handler.
func NewHealthHandler(svc *service.HealthService) *HealthHandler {
	return &HealthHandler{service: svc}
}

// Check godoc
// @Summary Health check
// @Description Database connectivity plus per-table row counts
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	counts, err := h.service.Check(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":    "ok",
		"database":  "connected",
		"counts":    counts,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil)
}
