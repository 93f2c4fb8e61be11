package routes

import (
	"fitplanhub-backend/handlers/plans"
	"fitplanhub-backend/handlers/subscriptions"
	"fitplanhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PlansRoutes(r *gin.Engine) {
	// Routes publiques
	r.GET("/plans", plans.GetAllPlans)
	r.GET("/plans/:id", middleware.OptionalJWTAuth(), plans.GetPlanByID)

	// Routes protégées
	plansRoutes := r.Group("/plans")
	plansRoutes.Use(middleware.JWTAuth())
	{
		plansRoutes.POST("/:id/subscribe", subscriptions.Subscribe)
	}

	// Seuls les trainers publient des plans
	trainerPlansRoutes := r.Group("/plans")
	trainerPlansRoutes.Use(middleware.TrainerAuth())
	{
		trainerPlansRoutes.POST("", plans.CreatePlan)
		trainerPlansRoutes.PUT("/:id", plans.UpdatePlan)
		trainerPlansRoutes.DELETE("/:id", plans.DeletePlan)
	}

	feedRoutes := r.Group("/feed")
	feedRoutes.Use(middleware.JWTAuth())
	{
		feedRoutes.GET("/plans", plans.GetFollowedPlans)
	}
}
