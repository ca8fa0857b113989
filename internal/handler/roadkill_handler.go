package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safari-for-safety/roadkill-api/internal/service"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
	"github.com/safari-for-safety/roadkill-api/pkg/response"
)

// RoadkillHandler serves the combined incident views and their aggregations.
type RoadkillHandler struct {
	service *service.IncidentService
}

// NewRoadkillHandler creates a new handler.
func NewRoadkillHandler(svc *service.IncidentService) *RoadkillHandler {
	return &RoadkillHandler{service: svc}
}

// Combined godoc
// @Summary Combined roadkill data
// @Description Official incidents merged with visible user reports, newest first
// @Tags Roadkill
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roadkill [get]
func (h *RoadkillHandler) Combined(c *gin.Context) {
	incidents, err := h.service.Combined(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, incidents, map[string]interface{}{"count": len(incidents)})
}

// ByRegion godoc
// @Summary Roadkill by region
// @Description Official incidents whose jurisdiction matches the region substring
// @Tags Roadkill
// @Produce json
// @Param region path string true "Region name fragment"
// @Success 200 {object} response.Envelope
// @Router /roadkill/region/{region} [get]
func (h *RoadkillHandler) ByRegion(c *gin.Context) {
	region := c.Param("region")

	incidents, err := h.service.ByRegion(c.Request.Context(), region)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, incidents, map[string]interface{}{
		"count":  len(incidents),
		"region": region,
	})
}

// StatisticsByRegion godoc
// @Summary Incident counts per region
// @Description Counts grouped by the leading jurisdiction token, both sources combined
// @Tags Roadkill
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roadkill/statistics/by-region [get]
func (h *RoadkillHandler) StatisticsByRegion(c *gin.Context) {
	counts, err := h.service.StatisticsByRegion(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, counts, map[string]interface{}{"count": len(counts)})
}

// StatisticsByDate godoc
// @Summary Incident counts per month
// @Description Counts grouped by YYYY-MM, optionally bounded by startDate/endDate
// @Tags Roadkill
// @Produce json
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /roadkill/statistics/by-date [get]
func (h *RoadkillHandler) StatisticsByDate(c *gin.Context) {
	rng, err := service.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Error(c, err)
		return
	}

	counts, total, err := h.service.StatisticsByDate(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, counts, map[string]interface{}{"total": total})
}

// AnimalStatistics godoc
// @Summary Incident counts per species
// @Description Imported species totals merged with live report counts, with percentages
// @Tags Roadkill
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roadkill/statistics/animals [get]
func (h *RoadkillHandler) AnimalStatistics(c *gin.Context) {
	counts, err := h.service.AnimalStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, counts, map[string]interface{}{"count": len(counts)})
}

// Weather godoc
// @Summary Weather observations
// @Description Paged daily weather observations
// @Tags Roadkill
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Row offset"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /roadkill/weather [get]
func (h *RoadkillHandler) Weather(c *gin.Context) {
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		response.Error(c, err)
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	observations, total, err := h.service.Weather(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, observations, map[string]interface{}{
		"count": len(observations),
		"total": total,
	})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a non-negative integer")
	}
	return value, nil
}
