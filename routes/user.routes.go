package routes

import (
	"biomonitor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("/", userController.ListUsers)
		userRoutes.POST("/", userController.RegisterUser)
		userRoutes.PUT("/:id", userController.UpdateUser)
		userRoutes.DELETE("/:id", userController.DeleteUser)
	}

	sessionRoutes := router.Group("/session")
	{
		sessionRoutes.GET("/", userController.GetActiveUser)
		sessionRoutes.DELETE("/", userController.ClearActiveUser)
		sessionRoutes.POST("/select/:id", userController.SelectUser)
	}
}
