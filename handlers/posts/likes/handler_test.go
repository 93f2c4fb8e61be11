package likes

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fitplanhub-backend/feed"
	"fitplanhub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

// Test pour ajouter un like (cas de succès)
func TestToggleLike_Add(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	// Mock pour vérifier si le post existe
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "caption"}).
			AddRow(postID, "Test Post"))

	// Mock pour vérifier si le like existe déjà
	mock.ExpectQuery(`SELECT (.+) FROM "likes" WHERE post_id = \$1 AND user_id = \$2`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Mock pour créer un nouveau like
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "likes" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("like123"))
	mock.ExpectCommit()

	// Mock pour relire le compteur
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE post_id = \$1`).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", func(c *gin.Context) {
		// Simuler l'authentification
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["liked"])
	assert.Equal(t, float64(5), respBody["likeCount"])
}

// Test pour supprimer un like (cas de succès)
func TestToggleLike_Remove(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"
	likeID := "like123"

	// Mock pour vérifier si le post existe
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "caption"}).
			AddRow(postID, "Test Post"))

	// Mock pour vérifier si le like existe déjà
	mock.ExpectQuery(`SELECT (.+) FROM "likes" WHERE post_id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
			AddRow(likeID, postID, userID))

	// Mock pour supprimer le like
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes" WHERE "likes"."id" = \$1`).
		WithArgs(likeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Mock pour relire le compteur
	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE post_id = \$1`).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", func(c *gin.Context) {
		// Simuler l'authentification
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["liked"])
	assert.Equal(t, float64(0), respBody["likeCount"])
}

// Test pour un post inexistant (cas d'échec)
func TestToggleLike_PostNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "non-existent-id"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	// Mock pour vérifier si le post existe - retourne qu'il n'existe pas
	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", func(c *gin.Context) {
		// Simuler l'authentification
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Post not found")
}

// Test pour un utilisateur non authentifié (cas d'échec)
func TestToggleLike_Unauthorized(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", ToggleLike)

	postID := "123e4567-e89b-12d3-a456-426614174000"

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "User not found in token")
}

// Test pour un toggle déjà en vol sur le même couple (post, user)
func TestToggleLike_AlreadyInFlight(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	// On occupe la clé avant d'appeler le handler
	assert.True(t, feed.AcquireInflight(feed.InteractionLike, postID, userID))
	defer feed.ReleaseInflight(feed.InteractionLike, postID, userID)

	r := testutils.SetupTestRouter()
	r.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Like already in progress")

	// Aucune requête SQL ne doit être partie
	assert.NoError(t, mock.ExpectationsWereMet())
}
