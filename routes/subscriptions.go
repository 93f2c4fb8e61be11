package routes

import (
	"fitplanhub-backend/handlers/subscriptions"
	"fitplanhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine) {
	subscriptionsRoutes := r.Group("/subscriptions")
	subscriptionsRoutes.Use(middleware.JWTAuth())
	{
		subscriptionsRoutes.GET("", subscriptions.GetMySubscriptions)
	}
}
