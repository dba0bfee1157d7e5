package routes

import (
	"biomonitor/internal/controllers"
	"biomonitor/internal/middleware"
	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterVitalsRoutes(router *gin.Engine, vitalsController *controllers.VitalsController, profiles *services.ProfileService) {
	vitalsRoutes := router.Group("/vitals")
	vitalsRoutes.Use(middleware.ActiveProfileMiddleware(profiles))
	{
		vitalsRoutes.POST("/measure/temperature", vitalsController.MeasureTemperature)
		vitalsRoutes.POST("/measure/heart-rate", vitalsController.MeasureHeartRate)
		vitalsRoutes.POST("/measure/ecg", vitalsController.MeasureECG)
		vitalsRoutes.GET("/current", vitalsController.GetCurrentVitals)
		vitalsRoutes.DELETE("/current", vitalsController.ResetCurrentVitals)
		vitalsRoutes.POST("/records", vitalsController.SaveRecord)
		vitalsRoutes.GET("/records", vitalsController.ListRecords)
	}
}
