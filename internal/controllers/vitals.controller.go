package controllers

import (
	"net/http"

	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
)

type VitalsController struct {
	vitals *services.VitalsService
}

func NewVitalsController(vitals *services.VitalsService) *VitalsController {
	return &VitalsController{vitals: vitals}
}

func activeUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No active profile",
			"error":   "Select or register a profile first",
		})
		return "", false
	}
	return userID.(string), true
}

// MeasureTemperature godoc
// @Summary Measure body temperature
// @Description Simulate a temperature reading and store it in the transient snapshot
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "Temperature measured"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/measure/temperature [post]
func (vc *VitalsController) MeasureTemperature(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	temp, err := vc.vitals.MeasureTemperature(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to measure temperature",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Temperature measured",
		"data":    gin.H{"temperature": temp},
	})
}

// MeasureHeartRate godoc
// @Summary Measure heart rate
// @Description Simulate a heart-rate reading and store it in the transient snapshot
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "Heart rate measured"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/measure/heart-rate [post]
func (vc *VitalsController) MeasureHeartRate(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	hr, err := vc.vitals.MeasureHeartRate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to measure heart rate",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Heart rate measured",
		"data":    gin.H{"heart_rate": hr},
	})
}

// MeasureECG godoc
// @Summary Record an ECG waveform
// @Description Store the stylized ECG waveform in the transient snapshot
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "ECG recorded"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/measure/ecg [post]
func (vc *VitalsController) MeasureECG(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	ecg, err := vc.vitals.MeasureECG(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record ECG",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "ECG recorded",
		"data":    gin.H{"ecg_data": ecg},
	})
}

// GetCurrentVitals godoc
// @Summary Get the transient snapshot
// @Description Retrieve the in-progress, unsaved measurement state
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "Current vitals retrieved"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/current [get]
func (vc *VitalsController) GetCurrentVitals(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	vitals, err := vc.vitals.CurrentSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve current vitals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Current vitals retrieved",
		"data":    vitals,
	})
}

// ResetCurrentVitals godoc
// @Summary Reset the transient snapshot
// @Description Clear unsaved measurements; persisted history is untouched
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "Current vitals cleared"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/current [delete]
func (vc *VitalsController) ResetCurrentVitals(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	if err := vc.vitals.ResetSnapshot(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear current vitals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Current vitals cleared",
		"data":    nil,
	})
}

// SaveRecord godoc
// @Summary Save the current vitals as a record
// @Description Snapshot the measured vitals into a new immutable record. With nothing measured this is a no-op.
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "Nothing to save"
// @Success 201 {object} map[string]interface{} "Record saved"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/records [post]
func (vc *VitalsController) SaveRecord(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	record, err := vc.vitals.SaveRecord(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save record",
			"error":   err.Error(),
		})
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Nothing to save",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Record saved",
		"data":    record,
	})
}

// ListRecords godoc
// @Summary List saved records
// @Description Retrieve the active profile's record history, newest first
// @Tags vitals
// @Produce json
// @Success 200 {object} map[string]interface{} "Records retrieved"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /vitals/records [get]
func (vc *VitalsController) ListRecords(c *gin.Context) {
	userID, ok := activeUserID(c)
	if !ok {
		return
	}

	records, err := vc.vitals.ListRecords(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Records retrieved",
		"data":    records,
	})
}
