package middleware

import (
	"net/http"

	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
)

// ActiveProfileMiddleware resolves the active profile and exposes its ID to
// handlers. Requests are rejected when no profile is selected, mirroring the
// app's redirect-to-home guard on measurement and history pages.
func ActiveProfileMiddleware(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := profiles.GetActive()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to resolve active profile",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "No active profile",
				"error":   "Select or register a profile first",
			})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}
