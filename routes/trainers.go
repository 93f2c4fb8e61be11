package routes

import (
	"fitplanhub-backend/handlers/trainers"
	"fitplanhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func TrainersRoutes(r *gin.Engine) {
	// Routes publiques, le follow de l'appelant est résolu si un token est présent
	r.GET("/trainers", trainers.GetAllTrainers)
	r.GET("/trainers/:id", middleware.OptionalJWTAuth(), trainers.GetTrainerByID)

	trainersRoutes := r.Group("/trainers")
	trainersRoutes.Use(middleware.JWTAuth())
	{
		trainersRoutes.POST("/:id/follow", trainers.ToggleFollow)
	}
}
