package routes

import (
	"fitplanhub-backend/handlers/posts"
	"fitplanhub-backend/handlers/posts/comment"
	"fitplanhub-backend/handlers/posts/likes"
	"fitplanhub-backend/handlers/posts/report"
	"fitplanhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	// Routes publiques, les flags dérivés suivent le token s'il est présent
	r.GET("/posts", middleware.OptionalJWTAuth(), posts.GetFeed)
	r.GET("/posts/:id", middleware.OptionalJWTAuth(), posts.GetPostByID)
	r.GET("/posts/:id/comments", comment.GetCommentsByPostID)
	r.GET("/posts/:id/comments/sse", comment.HandleSSE)

	// Routes protégées
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.DELETE("/:id", posts.DeletePost)

		// Routes des interactions
		postsRoutes.POST("/:id/like", likes.ToggleLike)
		postsRoutes.POST("/:id/comments", comment.CreateComment)
		postsRoutes.POST("/:id/report", report.ReportPost)
	}

	// Seuls les trainers publient des posts
	trainerPostsRoutes := r.Group("/posts")
	trainerPostsRoutes.Use(middleware.TrainerAuth())
	{
		trainerPostsRoutes.POST("", posts.CreatePost)
	}
}
