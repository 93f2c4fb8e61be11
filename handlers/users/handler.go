package users

import (
	"net/http"

	"fitplanhub-backend/db"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get the current user profile
// @Description Retrieve the profile of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update the current user profile
// @Description Update full name, bio and profile picture of the authenticated user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string false "Full name"
// @Param bio formData string false "Bio"
// @Param picture formData file false "Profile picture"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/me [put]
func UpdateMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if fullName := c.Request.FormValue("fullName"); fullName != "" {
		user.FullName = fullName
	}

	if bio := c.Request.FormValue("bio"); bio != "" {
		user.Bio = bio
	}

	file, err := c.FormFile("picture")
	if err == nil && file != nil {
		if user.ProfilePicture != "" {
			_ = utils.DeleteImage(user.ProfilePicture)
		}

		imageURL, err := utils.UploadImage(file, "profile_pictures", "profile")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
			return
		}
		user.ProfilePicture = imageURL
	}

	if err := db.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Profile updated")
	c.JSON(http.StatusOK, user)
}
