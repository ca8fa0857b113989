package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	"github.com/safari-for-safety/roadkill-api/internal/service"
	"github.com/safari-for-safety/roadkill-api/pkg/response"
)

// StatsHandler serves the pre-aggregated regional statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new handler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// Animals godoc
// @Summary National animal statistics
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /statistics/animals [get]
func (h *StatsHandler) Animals(c *gin.Context) {
	stats, err := h.service.National(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, stats, map[string]interface{}{"count": len(stats)})
}

// AnimalsByProvince godoc
// @Summary Regional animal statistics
// @Description Province-level rows, or city-level when ?city= is given
// @Tags Statistics
// @Produce json
// @Param province path string true "Province name"
// @Param city query string false "City name"
// @Success 200 {object} response.Envelope
// @Router /statistics/animals/{province} [get]
func (h *StatsHandler) AnimalsByProvince(c *gin.Context) {
	province := c.Param("province")
	city := c.Query("city")

	var (
		stats []models.AnimalStat
		err   error
	)
	if city != "" {
		stats, err = h.service.ByCity(c.Request.Context(), province, city)
	} else {
		stats, err = h.service.ByProvince(c.Request.Context(), province)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := map[string]interface{}{"count": len(stats), "province": province}
	if city != "" {
		meta["city"] = city
	}
	response.JSON(c, http.StatusOK, stats, meta)
}

// Summary godoc
// @Summary National summary
// @Description National incident total and most affected species
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /statistics/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), 5)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, summary)
}
