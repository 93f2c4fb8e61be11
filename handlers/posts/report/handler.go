package report

import (
	"net/http"
	"slices"

	"fitplanhub-backend/db"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Report a post
// @Description Report a post for inappropriate content
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param report body models.ReportCreate true "Report reason"
// @Security BearerAuth
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/report [post]
func ReportPost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var reportCreate models.ReportCreate
	if err := c.ShouldBindJSON(&reportCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	validReasons := []models.ReportReason{
		models.DISLIKE, models.HARASSMENT, models.VIOLENCE,
		models.NUDITY, models.SCAM, models.MISINFORMATION,
		models.ILLEGAL_CONTENT,
	}

	if !slices.Contains(validReasons, reportCreate.Reason) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report reason"})
		return
	}

	// Un seul signalement par utilisateur et par post
	var existingReport models.Report
	if err := db.DB.Where("post_id = ? AND reported_by = ?", postID, userID).First(&existingReport).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reported this post"})
		return
	}

	report := models.Report{
		PostID:     postID,
		ReportedBy: userID.(string),
		Reason:     reportCreate.Reason,
	}

	if err := db.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Report created")
	c.JSON(http.StatusCreated, report)
}
