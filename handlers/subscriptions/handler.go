package subscriptions

import (
	"errors"
	"net/http"

	"fitplanhub-backend/db"
	"fitplanhub-backend/feed"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Subscribe to a plan
// @Description Subscribe the authenticated user to a fitness plan. No payment step.
// @Tags subscriptions
// @Produce json
// @Param id path string true "Plan ID"
// @Security BearerAuth
// @Success 201 {object} utils.Response
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Only users can subscribe"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 409 {object} map[string]string "error: Already subscribed"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans/{id}/subscribe [post]
func Subscribe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	role, _ := c.Get("role")
	if role != string(models.UserRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only users can subscribe to plans"})
		return
	}

	planID := c.Param("id")

	if !feed.AcquireInflight(feed.InteractionSubscribe, planID, userID.(string)) {
		c.JSON(http.StatusConflict, gin.H{"error": "Subscription already in progress for this plan"})
		return
	}
	defer feed.ReleaseInflight(feed.InteractionSubscribe, planID, userID.(string))

	var plan models.Plan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	// Un seul abonnement par couple (user, plan)
	var existing models.Subscription
	result := db.DB.Where("user_id = ? AND plan_id = ?", userID, planID).First(&existing)
	if result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already subscribed to this plan"})
		return
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking subscription: " + result.Error.Error()})
		return
	}

	subscription := models.Subscription{
		UserID: userID.(string),
		PlanID: planID,
	}

	if err := db.DB.Create(&subscription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating subscription: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscribed to plan")
	utils.SendSuccess(c, http.StatusCreated, "Subscribed successfully", subscription)
}

// @Summary Get my subscriptions
// @Description Retrieve the authenticated user's subscriptions with plans and trainers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /subscriptions [get]
func GetMySubscriptions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var subscriptions []models.Subscription
	if err := db.DB.Preload("Plan.Trainer").Where("user_id = ?", userID).Order("created_at DESC").Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving subscriptions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}
