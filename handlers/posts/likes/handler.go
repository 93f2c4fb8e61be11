package likes

import (
	"errors"
	"net/http"

	"fitplanhub-backend/db"
	"fitplanhub-backend/feed"
	"fitplanhub-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Toggle like on a post
// @Description Add or remove a like on a post and return the authoritative state
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "liked, likeCount"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 409 {object} map[string]string "error: Like already in progress"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/like [post]
func ToggleLike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	// Au plus un toggle en vol par (post, user): un double clic ne doit pas
	// produire deux écritures croisées
	if !feed.AcquireInflight(feed.InteractionLike, postID, userID.(string)) {
		c.JSON(http.StatusConflict, gin.H{"error": "Like already in progress for this post"})
		return
	}
	defer feed.ReleaseInflight(feed.InteractionLike, postID, userID.(string))

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var like models.Like
	result := db.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&like)

	liked := false
	if result.Error == nil {
		// Le like existe déjà, on le supprime
		if err := db.DB.Delete(&like).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing like: " + err.Error()})
			return
		}
	} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		like = models.Like{
			PostID: postID,
			UserID: userID.(string),
		}

		if err := db.DB.Create(&like).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding like: " + err.Error()})
			return
		}
		liked = true
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking like: " + result.Error.Error()})
		return
	}

	// Compteur relu depuis la base: c'est la valeur de réconciliation du
	// client après son flip optimiste
	var likeCount int64
	if err := db.DB.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting likes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":     liked,
		"likeCount": likeCount,
	})
}
