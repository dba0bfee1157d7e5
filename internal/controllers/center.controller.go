package controllers

import (
	"context"
	"net/http"
	"strconv"

	"biomonitor/internal/geo"
	"biomonitor/internal/models"

	"github.com/gin-gonic/gin"
)

// CenterSearcher is the facility-lookup collaborator. Failures here never
// touch stored data.
type CenterSearcher interface {
	SearchMedicalCenters(ctx context.Context, query string, opts *geo.SearchOptions) ([]models.MedicalCenter, error)
}

type CenterController struct {
	searcher CenterSearcher
}

func NewCenterController(searcher CenterSearcher) *CenterController {
	return &CenterController{searcher: searcher}
}

// SearchCenters godoc
// @Summary Search nearby medical centers
// @Description Look up hospitals and clinics by free-text query, optionally biased around a location
// @Tags centers
// @Produce json
// @Param q query string true "Free-text query"
// @Param lat query number false "Bias latitude"
// @Param lng query number false "Bias longitude"
// @Param radius query number false "Bias radius in km"
// @Success 200 {object} map[string]interface{} "Centers retrieved"
// @Failure 400 {object} map[string]interface{} "Missing query"
// @Failure 502 {object} map[string]interface{} "Lookup failed"
// @Router /centers/search [get]
func (cc *CenterController) SearchCenters(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing query",
			"error":   "Parameter 'q' is required",
		})
		return
	}

	var opts *geo.SearchOptions
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid coordinates",
				"error":   "Parameters 'lat' and 'lng' must be numbers",
			})
			return
		}

		radius := 10.0
		if radiusStr := c.Query("radius"); radiusStr != "" {
			if parsed, err := strconv.ParseFloat(radiusStr, 64); err == nil && parsed > 0 {
				radius = parsed
			}
		}
		opts = &geo.SearchOptions{Latitude: lat, Longitude: lng, RadiusKm: radius}
	}

	centers, err := cc.searcher.SearchMedicalCenters(c.Request.Context(), query, opts)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Medical center lookup failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Centers retrieved",
		"data":    centers,
	})
}
