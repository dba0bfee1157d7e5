package routes

import (
	"biomonitor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCenterRoutes(router *gin.Engine, centerController *controllers.CenterController) {
	centerRoutes := router.Group("/centers")
	{
		centerRoutes.GET("/search", centerController.SearchCenters)
	}
}
