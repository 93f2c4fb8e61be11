package trainers

import (
	"errors"
	"net/http"
	"time"

	"fitplanhub-backend/cache"
	"fitplanhub-backend/db"
	"fitplanhub-backend/feed"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const trainersCacheKey = "trainers:all"

// @Summary Get all trainers
// @Description Retrieve all trainer profiles, newest first
// @Tags trainers
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /trainers [get]
func GetAllTrainers(c *gin.Context) {
	var trainers []models.User

	// Liste servie depuis Redis quand c'est possible, la base sinon
	err := cache.CacheAside(c.Request.Context(), trainersCacheKey, &trainers, 5*time.Minute, func() error {
		return db.DB.Where("role = ?", models.TrainerRole).Order("created_at DESC").Find(&trainers).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving trainers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// @Summary Get a trainer profile
// @Description Retrieve a trainer with their plans and the follow state of the caller
// @Tags trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} map[string]interface{} "trainer, plans, isFollowing"
// @Failure 404 {object} map[string]string "error: Trainer not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /trainers/{id} [get]
func GetTrainerByID(c *gin.Context) {
	trainerID := c.Param("id")

	var trainer models.User
	if err := db.DB.First(&trainer, "id = ? AND role = ?", trainerID, models.TrainerRole).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}

	var plans []models.Plan
	if err := db.DB.Where("trainer_id = ?", trainerID).Order("created_at DESC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving plans: " + err.Error()})
		return
	}

	isFollowing := false
	if userID, exists := c.Get("user_id"); exists {
		followedSet, err := feed.FollowedTrainerSet(userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving follow state: " + err.Error()})
			return
		}
		_, isFollowing = followedSet[trainerID]
	}

	c.JSON(http.StatusOK, gin.H{
		"trainer":     trainer,
		"plans":       plans,
		"isFollowing": isFollowing,
	})
}

// @Summary Toggle follow on a trainer
// @Description Follow or unfollow a trainer. Only consumers may follow, and never themselves.
// @Tags trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "following: new follow state"
// @Failure 400 {object} map[string]string "error: Cannot follow yourself"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Only users can follow trainers"
// @Failure 404 {object} map[string]string "error: Trainer not found"
// @Failure 409 {object} map[string]string "error: Follow already in progress"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /trainers/{id}/follow [post]
func ToggleFollow(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	// Seul un USER suit un trainer, jamais lui-même: aucune écriture sinon
	role, _ := c.Get("role")
	if role != string(models.UserRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only users can follow trainers"})
		return
	}

	trainerID := c.Param("id")
	if trainerID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	if !feed.AcquireInflight(feed.InteractionFollow, trainerID, userID.(string)) {
		c.JSON(http.StatusConflict, gin.H{"error": "Follow already in progress for this trainer"})
		return
	}
	defer feed.ReleaseInflight(feed.InteractionFollow, trainerID, userID.(string))

	var trainer models.User
	if err := db.DB.First(&trainer, "id = ? AND role = ?", trainerID, models.TrainerRole).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}

	var follow models.Follow
	result := db.DB.Where("follower_id = ? AND trainer_id = ?", userID, trainerID).First(&follow)

	if result.Error == nil {
		// Le follow existe déjà, on le supprime
		if err := db.DB.Delete(&follow).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing follow: " + err.Error()})
			return
		}
		utils.LogSuccessWithUser(userID, "Trainer unfollowed")
		c.JSON(http.StatusOK, gin.H{"following": false})
		return
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking follow: " + result.Error.Error()})
		return
	}

	follow = models.Follow{
		FollowerID: userID.(string),
		TrainerID:  trainerID,
	}

	if err := db.DB.Create(&follow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding follow: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Trainer followed")
	c.JSON(http.StatusOK, gin.H{"following": true})
}
