package users

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

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

// Test du profil courant (cas de succès)
func TestGetMe_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "role", "bio"}).
			AddRow(userID, "sarah.coach@exemple.com", "Sarah Coach", "TRAINER", "Coach certifiée"))

	r := testutils.SetupTestRouter()
	r.GET("/users/me", func(c *gin.Context) {
		// Simuler l'authentification
		c.Set("user_id", userID)
		GetMe(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Sarah Coach", respBody["fullName"])
	assert.Equal(t, "Coach certifiée", respBody["bio"])

	// Le hash du mot de passe ne sort jamais dans la réponse
	_, exposed := respBody["password"]
	assert.False(t, exposed)
}

// Test du profil courant pour un utilisateur supprimé
func TestGetMe_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/users/me", func(c *gin.Context) {
		c.Set("user_id", "ghost-id")
		GetMe(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// Test de mise à jour du nom et de la bio
func TestUpdateMe_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "role"}).
			AddRow(userID, "sarah.coach@exemple.com", "Sarah Coach", "TRAINER"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/users/me", func(c *gin.Context) {
		c.Set("user_id", userID)
		UpdateMe(c)
	})

	form := url.Values{}
	form.Set("fullName", "Sarah C.")
	form.Set("bio", "Coach et nutritionniste")
	req, _ := http.NewRequest(http.MethodPut, "/users/me", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Sarah C.", respBody["fullName"])
	assert.Equal(t, "Coach et nutritionniste", respBody["bio"])
}
