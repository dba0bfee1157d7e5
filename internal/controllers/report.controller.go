package controllers

import (
	"errors"
	"net/http"

	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// GetLatestReport godoc
// @Summary Get the latest medical report
// @Description Assemble the report for the active profile's newest record
// @Tags report
// @Produce json
// @Success 200 {object} map[string]interface{} "Report assembled"
// @Failure 404 {object} map[string]interface{} "No record to report on"
// @Router /report [get]
func (rc *ReportController) GetLatestReport(c *gin.Context) {
	rc.buildReport(c, "")
}

// GetReport godoc
// @Summary Get a medical report
// @Description Assemble the report for one saved record of the active profile
// @Tags report
// @Produce json
// @Param recordId path string true "Record ID"
// @Success 200 {object} map[string]interface{} "Report assembled"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Router /report/{recordId} [get]
func (rc *ReportController) GetReport(c *gin.Context) {
	rc.buildReport(c, c.Param("recordId"))
}

func (rc *ReportController) buildReport(c *gin.Context, recordID string) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	report, err := rc.reports.BuildReport(userID, recordID)
	if err != nil {
		var notFoundErr *services.NotFoundError
		if errors.As(err, &notFoundErr) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Record not found",
				"error":   notFoundErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to assemble report",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report assembled",
		"data":    report,
	})
}
