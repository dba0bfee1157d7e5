package routes

import (
	"biomonitor/internal/controllers"
	"biomonitor/internal/middleware"
	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(router *gin.Engine, reportController *controllers.ReportController, profiles *services.ProfileService) {
	reportRoutes := router.Group("/report")
	reportRoutes.Use(middleware.ActiveProfileMiddleware(profiles))
	{
		reportRoutes.GET("/", reportController.GetLatestReport)
		reportRoutes.GET("/:recordId", reportController.GetReport)
	}
}
