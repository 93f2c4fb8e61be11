package comment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"fitplanhub-backend/db"
	"fitplanhub-backend/models"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
)

var (
	// Clients connectés au SSE, mappés par postID
	clients = make(map[string]map[chan string]bool)

	clientsMutex sync.RWMutex
)

type SSEMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// CommentResponse est la forme renvoyée au client et diffusée via SSE
type CommentResponse struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	UserID    string `json:"userId"`
	Content   string `json:"content"`
	UserName  string `json:"userName"`
	CreatedAt string `json:"createdAt"`
}

// @Summary Get comments of a post
// @Description Retrieve the comments of a post ordered by creation time
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} comment.CommentResponse
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/comments [get]
func GetCommentsByPostID(c *gin.Context) {
	postID := c.Param("id")

	var comments []models.Comment
	if err := db.DB.Preload("User").Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	commentsResponse := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentsResponse = append(commentsResponse, toResponse(comment))
	}

	c.JSON(http.StatusOK, gin.H{"comments": commentsResponse})
}

// @Summary Create a new comment for a post
// @Description Create a new comment and broadcast it via SSE. The response carries the persisted row with its generated id and timestamp.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body map[string]string true "Comment content"
// @Security BearerAuth
// @Success 201 {object} comment.CommentResponse
// @Failure 400 {object} map[string]string "error: Invalid request"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Server error"
// @Router /posts/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID := c.Param("id")

	var commentData struct {
		Content string `json:"content"`
	}

	if err := c.BindJSON(&commentData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment data"})
		return
	}

	// Contenu vide rejeté avant toute requête
	content := strings.TrimSpace(commentData.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content cannot be empty"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  userID.(string),
		Content: content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	var user models.User
	db.DB.Select("full_name").Where("id = ?", userID).First(&user)
	comment.User = &user

	response := toResponse(comment)

	broadcastComment(postID, response)

	c.JSON(http.StatusCreated, gin.H{"comment": response})
}

// @Summary Handle SSE connection for comments
// @Description Connect to SSE to receive comments in real-time for a specific post
// @Tags comments
// @Param id path string true "Post ID"
// @Param token query string false "JWT Token for web clients (optional)"
// @Security BearerAuth
// @Success 200 {object} map[string]string "Connected to SSE"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error setting up SSE"
// @Router /posts/{id}/comments/sse [get]
func HandleSSE(c *gin.Context) {
	postID := c.Param("id")

	// Les clients EventSource ne peuvent pas poser de header, le token
	// passe alors en paramètre d'URL
	tokenFromQuery := c.Query("token")
	_, exists := c.Get("user_id")

	if !exists && tokenFromQuery != "" {
		_, err := utils.DecodeJWT(tokenFromQuery)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token in URL"})
			return
		}
		exists = true
	}

	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Transfer-Encoding", "chunked")

	messageChan := make(chan string)

	clientsMutex.Lock()
	if clients[postID] == nil {
		clients[postID] = make(map[chan string]bool)
	}
	clients[postID][messageChan] = true
	clientsMutex.Unlock()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	c.Writer.Write([]byte("event: connected\ndata: {\"status\":\"connected\"}\n\n"))
	flusher.Flush()

	// Le contexte de la requête est annulé quand le client se déconnecte
	ctx := c.Request.Context()

	defer func() {
		clientsMutex.Lock()
		delete(clients[postID], messageChan)
		if len(clients[postID]) == 0 {
			delete(clients, postID)
		}
		clientsMutex.Unlock()
		close(messageChan)
	}()

	for {
		select {
		case message, ok := <-messageChan:
			if !ok {
				return
			}
			c.Writer.Write([]byte(message))
			flusher.Flush()
		case <-ctx.Done():
			return
		case <-time.After(30 * time.Second):
			c.Writer.Write([]byte("event: ping\ndata: {}\n\n"))
			flusher.Flush()
		}
	}
}

func toResponse(comment models.Comment) CommentResponse {
	userName := ""
	if comment.User != nil {
		userName = comment.User.FullName
	}
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		UserName:  userName,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}

// Diffuse un commentaire à tous les clients connectés pour un post
func broadcastComment(postID string, comment CommentResponse) {
	msg := SSEMessage{
		Type:    "new_comment",
		Payload: comment,
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		utils.LogError(err, "Error marshaling SSE message")
		return
	}

	sseData := fmt.Sprintf("event: comment\ndata: %s\n\n", jsonData)

	clientsMutex.RLock()
	defer clientsMutex.RUnlock()

	if _, exists := clients[postID]; !exists {
		return
	}

	for clientChan := range clients[postID] {
		select {
		case clientChan <- sseData:
		default:
			utils.LogError(nil, "Error broadcasting comment: channel full or closed")
		}
	}
}
