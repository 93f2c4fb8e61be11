package posts

import (
	"net/http"
	"strings"

	"fitplanhub-backend/db"
	"fitplanhub-backend/feed"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new post
// @Description Create a new post with a picture and a caption
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param caption formData string true "Post caption"
// @Param picture formData file true "Post picture"
// @Security BearerAuth
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	caption := strings.TrimSpace(c.Request.FormValue("caption"))
	if caption == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Caption is required"})
		return
	}

	post := models.Post{
		TrainerID: userID.(string),
		Caption:   caption,
	}

	file, err := c.FormFile("picture")
	if err == nil && file != nil {
		imageURL, err := utils.UploadImage(file, "post_pictures", "post")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
			return
		}
		post.PictureURL = imageURL
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture is required"})
		return
	}

	if err := db.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Post created")
	c.JSON(http.StatusCreated, post)
}

// @Summary Get the feed
// @Description Retrieve posts with trainer, likes and comments, folded into display form for the caller. Scope: all (default), following, or trainer=<id>.
// @Tags posts
// @Produce json
// @Param scope query string false "Feed scope: all or following"
// @Param trainer query string false "Only posts from this trainer"
// @Success 200 {array} feed.DisplayPost
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [get]
func GetFeed(c *gin.Context) {
	userID := ""
	if id, exists := c.Get("user_id"); exists {
		userID = id.(string)
	}

	scope := c.DefaultQuery("scope", "all")
	trainerID := c.Query("trainer")

	// Lecture dénormalisée: posts + auteur + likes + commentaires en un
	// aller, du plus récent au plus ancien
	query := db.DB.Preload("Trainer").Preload("Likes").Preload("Comments").Order("created_at DESC")

	switch {
	case trainerID != "":
		query = query.Where("trainer_id = ?", trainerID)
	case scope == "following":
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
			return
		}

		followedSet, err := feed.FollowedTrainerSet(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving followed trainers: " + err.Error()})
			return
		}

		// Aucun follow: feed vide, sans émettre la requête posts
		if len(followedSet) == 0 {
			c.JSON(http.StatusOK, gin.H{"posts": []feed.DisplayPost{}})
			return
		}

		query = query.Where("trainer_id IN ?", feed.SetKeys(followedSet))
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving posts: " + err.Error()})
		return
	}

	if trainerID == "" && scope == "all" {
		posts = feed.FilterTrainerPosts(posts)
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	likedSet, err := feed.LikedPostSet(userID, postIDs)
	if err != nil {
		// Un échec du resolver invalide tout le lot, pas de flags par défaut
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving likes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": feed.BuildDisplayPosts(posts, likedSet)})
}

// @Summary Get a post by ID
// @Description Retrieve a single post in display form for the caller
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} feed.DisplayPost
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	userID := ""
	if id, exists := c.Get("user_id"); exists {
		userID = id.(string)
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.Preload("Trainer").Preload("Likes").Preload("Comments").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	likedSet, err := feed.LikedPostSet(userID, []string{post.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving likes: " + err.Error()})
		return
	}

	displayPosts := feed.BuildDisplayPosts([]models.Post{post}, likedSet)
	c.JSON(http.StatusOK, displayPosts[0])
}

// @Summary Delete a post
// @Description Delete a post owned by the authenticated trainer
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not authorized to delete this post"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.TrainerID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		return
	}

	if post.PictureURL != "" {
		_ = utils.DeleteImage(post.PictureURL)
	}

	// Les likes et commentaires suivent le post
	if err := db.DB.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing post likes: " + err.Error()})
		return
	}

	if err := db.DB.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing post comments: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
