package controllers

import (
	"errors"
	"net/http"

	"biomonitor/internal/models"
	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	profiles *services.ProfileService
}

func NewUserController(profiles *services.ProfileService) *UserController {
	return &UserController{profiles: profiles}
}

// ListUsers godoc
// @Summary List registered profiles
// @Description Retrieve all registered profiles in insertion order
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Profiles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to list profiles"
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.profiles.ListProfiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list profiles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profiles retrieved successfully",
		"data":    users,
	})
}

// RegisterUser godoc
// @Summary Register a new profile
// @Description Register a profile and make it the active one
// @Tags users
// @Accept json
// @Produce json
// @Param profile body services.RegisterProfileInput true "Profile data"
// @Success 201 {object} map[string]interface{} "Profile registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile data"
// @Failure 500 {object} map[string]interface{} "Failed to register profile"
// @Router /users [post]
func (uc *UserController) RegisterUser(c *gin.Context) {
	var input services.RegisterProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.profiles.RegisterProfile(input)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid profile data",
				"error":   validationErr.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Profile registered successfully",
		"data":    user,
	})
}

// UpdateUser godoc
// @Summary Update a profile
// @Description Replace the stored profile with the given identifier
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body models.User true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /users/{id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user.ID = c.Param("id")

	if err := uc.profiles.UpdateProfile(&user); err != nil {
		var validationErr *services.ValidationError
		var notFoundErr *services.NotFoundError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid profile data",
				"error":   validationErr.Fields,
			})
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Profile not found",
				"error":   "No profile exists with the provided ID",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update profile",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// DeleteUser godoc
// @Summary Delete a profile
// @Description Delete the profile; clears the active pointer when it was active. Saved records are not removed.
// @Tags users
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.profiles.DeleteProfile(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
		"data":    nil,
	})
}

// SelectUser godoc
// @Summary Select the active profile
// @Description Set the active-profile pointer to the given identifier
// @Tags session
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]interface{} "Profile selected successfully"
// @Failure 500 {object} map[string]interface{} "Failed to select profile"
// @Router /session/select/{id} [post]
func (uc *UserController) SelectUser(c *gin.Context) {
	if err := uc.profiles.SelectProfile(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to select profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile selected successfully",
		"data":    nil,
	})
}

// GetActiveUser godoc
// @Summary Get the active profile
// @Description Retrieve the currently active profile
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "Active profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No active profile"
// @Router /session [get]
func (uc *UserController) GetActiveUser(c *gin.Context) {
	user, err := uc.profiles.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to resolve active profile",
			"error":   err.Error(),
		})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No active profile",
			"error":   "No profile is currently selected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Active profile retrieved successfully",
		"data":    user,
	})
}

// ClearActiveUser godoc
// @Summary Sign out
// @Description Clear the active-profile pointer
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "Signed out successfully"
// @Failure 500 {object} map[string]interface{} "Failed to sign out"
// @Router /session [delete]
func (uc *UserController) ClearActiveUser(c *gin.Context) {
	if err := uc.profiles.ClearActive(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to sign out",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Signed out successfully",
		"data":    nil,
	})
}
