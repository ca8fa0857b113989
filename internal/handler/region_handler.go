package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	"github.com/safari-for-safety/roadkill-api/internal/service"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
	"github.com/safari-for-safety/roadkill-api/pkg/response"
)

// RegionHandler wires HTTP endpoints to the region service.
type RegionHandler struct {
	service *service.RegionService
}

// NewRegionHandler creates a new handler.
func NewRegionHandler(svc *service.RegionService) *RegionHandler {
	return &RegionHandler{service: svc}
}

// Provinces godoc
// @Summary List provinces
// @Tags Regions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /regions/provinces [get]
func (h *RegionHandler) Provinces(c *gin.Context) {
	provinces, err := h.service.Provinces(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, provinces, map[string]interface{}{"count": len(provinces)})
}

// Cities godoc
// @Summary List cities of a province
// @Tags Regions
// @Produce json
// @Param province path string true "Province name"
// @Success 200 {object} response.Envelope
// @Router /regions/cities/{province} [get]
func (h *RegionHandler) Cities(c *gin.Context) {
	regions, err := h.service.Cities(c.Request.Context(), c.Param("province"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, regions, map[string]interface{}{"count": len(regions)})
}

// Hierarchy godoc
// @Summary Region hierarchy
// @Description Every region grouped by province
// @Tags Regions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /regions [get]
func (h *RegionHandler) Hierarchy(c *gin.Context) {
	groups, err := h.service.Hierarchy(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, groups, map[string]interface{}{"count": len(groups)})
}

// ReverseGeocode godoc
// @Summary Nearest region lookup
// @Description Find the administrative region closest to a coordinate
// @Tags Regions
// @Accept json
// @Produce json
// @Param payload body models.ReverseGeocodeRequest true "Coordinate payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /regions/reverse-geocode [post]
func (h *RegionHandler) ReverseGeocode(c *gin.Context) {
	var req models.ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "latitude and longitude are required"))
		return
	}

	result, err := h.service.ReverseGeocode(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
