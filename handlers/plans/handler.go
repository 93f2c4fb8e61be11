package plans

import (
	"net/http"
	"strconv"

	"fitplanhub-backend/db"
	"fitplanhub-backend/feed"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// Longueur de l'aperçu montré aux non-abonnés
const previewLength = 150

// @Summary Create a new fitness plan
// @Description Create a new plan owned by the authenticated trainer
// @Tags plans
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Plan title"
// @Param description formData string true "Plan description"
// @Param price formData number true "Plan price"
// @Param durationDays formData integer true "Duration in days"
// @Param picture formData file false "Plan picture"
// @Security BearerAuth
// @Success 201 {object} models.Plan
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans [post]
func CreatePlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	title := c.Request.FormValue("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	description := c.Request.FormValue("description")
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}

	price, err := strconv.ParseFloat(c.Request.FormValue("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}

	durationDays, err := strconv.Atoi(c.Request.FormValue("durationDays"))
	if err != nil || durationDays <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "DurationDays must be a positive integer"})
		return
	}

	plan := models.Plan{
		TrainerID:    userID.(string),
		Title:        title,
		Description:  description,
		Price:        price,
		DurationDays: durationDays,
	}

	file, err := c.FormFile("picture")
	if err == nil && file != nil {
		imageURL, err := utils.UploadImage(file, "plan_pictures", "plan")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
			return
		}
		plan.PictureURL = imageURL
	}

	if err := db.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating plan: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Plan created")
	c.JSON(http.StatusCreated, plan)
}

// @Summary Get all plans
// @Description Retrieve the plan catalogue with trainers, newest first
// @Tags plans
// @Produce json
// @Success 200 {array} models.Plan
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans [get]
func GetAllPlans(c *gin.Context) {
	var plans []models.Plan
	if err := db.DB.Preload("Trainer").Order("created_at DESC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving plans: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// @Summary Get a plan by ID
// @Description Full description for subscribers and the owning trainer, a truncated preview otherwise
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} map[string]interface{} "plan, subscribed"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans/{id} [get]
func GetPlanByID(c *gin.Context) {
	planID := c.Param("id")

	var plan models.Plan
	if err := db.DB.Preload("Trainer").First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	subscribed := false
	if userID, exists := c.Get("user_id"); exists {
		if userID.(string) == plan.TrainerID {
			subscribed = true
		} else {
			subscribedSet, err := feed.SubscribedPlanSet(userID.(string))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving subscription state: " + err.Error()})
				return
			}
			_, subscribed = subscribedSet[planID]
		}
	}

	if !subscribed {
		plan.Description = previewDescription(plan.Description)
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":       plan,
		"subscribed": subscribed,
	})
}

// @Summary Update a plan
// @Description Update a plan owned by the authenticated trainer
// @Tags plans
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Plan ID"
// @Param title formData string false "Plan title"
// @Param description formData string false "Plan description"
// @Param price formData number false "Plan price"
// @Param durationDays formData integer false "Duration in days"
// @Param picture formData file false "Plan picture"
// @Security BearerAuth
// @Success 200 {object} models.Plan
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not authorized to update this plan"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans/{id} [put]
func UpdatePlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var plan models.Plan
	planID := c.Param("id")

	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if plan.TrainerID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this plan"})
		return
	}

	if title := c.Request.FormValue("title"); title != "" {
		plan.Title = title
	}

	if description := c.Request.FormValue("description"); description != "" {
		plan.Description = description
	}

	if priceStr := c.Request.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
			return
		}
		plan.Price = price
	}

	if durationStr := c.Request.FormValue("durationDays"); durationStr != "" {
		durationDays, err := strconv.Atoi(durationStr)
		if err != nil || durationDays <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "DurationDays must be a positive integer"})
			return
		}
		plan.DurationDays = durationDays
	}

	file, err := c.FormFile("picture")
	if err == nil && file != nil {
		if plan.PictureURL != "" {
			_ = utils.DeleteImage(plan.PictureURL)
		}

		imageURL, err := utils.UploadImage(file, "plan_pictures", "plan")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
			return
		}
		plan.PictureURL = imageURL
	}

	if err := db.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// @Summary Delete a plan
// @Description Delete a plan owned by the authenticated trainer
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Plan deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not authorized to delete this plan"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /plans/{id} [delete]
func DeletePlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var plan models.Plan
	planID := c.Param("id")

	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if plan.TrainerID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this plan"})
		return
	}

	if plan.PictureURL != "" {
		_ = utils.DeleteImage(plan.PictureURL)
	}

	if err := db.DB.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

// @Summary Get plans from followed trainers
// @Description Retrieve the plans published by trainers the caller follows, newest first
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Plan
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /feed/plans [get]
func GetFollowedPlans(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	followedSet, err := feed.FollowedTrainerSet(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving followed trainers: " + err.Error()})
		return
	}

	// Aucun follow: liste vide sans requête IN invalide
	if len(followedSet) == 0 {
		c.JSON(http.StatusOK, gin.H{"plans": []models.Plan{}})
		return
	}

	var plans []models.Plan
	if err := db.DB.Preload("Trainer").Where("trainer_id IN ?", feed.SetKeys(followedSet)).Order("created_at DESC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving plans: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func previewDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= previewLength {
		return description
	}
	return string(runes[:previewLength]) + "..."
}
