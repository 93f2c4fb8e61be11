package plans

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

// Test de l'aperçu: un anonyme ne voit que les 150 premiers caractères
func TestGetPlanByID_AnonymousSeesPreview(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	planID := "plan1234-e89b-12d3-a456-426614174000"
	trainerID := "trainer1-e89b-12d3-a456-426614174000"
	fullDescription := strings.Repeat("a", 200)

	mock.ExpectQuery(`SELECT (.+) FROM "fitness_plans" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "title", "description"}).
			AddRow(planID, trainerID, "Programme 12 semaines", fullDescription))

	// Preload du trainer
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role"}).
			AddRow(trainerID, "Sarah Coach", "TRAINER"))

	r := testutils.SetupTestRouter()
	r.GET("/plans/:id", GetPlanByID)

	req, _ := http.NewRequest(http.MethodGet, "/plans/"+planID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Plan struct {
			Description string `json:"description"`
		} `json:"plan"`
		Subscribed bool `json:"subscribed"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	assert.False(t, respBody.Subscribed)
	assert.Equal(t, strings.Repeat("a", 150)+"...", respBody.Plan.Description)
}

// Test de l'accès complet pour un abonné
func TestGetPlanByID_SubscriberSeesFullDescription(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	planID := "plan1234-e89b-12d3-a456-426614174000"
	trainerID := "trainer1-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"
	fullDescription := strings.Repeat("a", 200)

	mock.ExpectQuery(`SELECT (.+) FROM "fitness_plans" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "title", "description"}).
			AddRow(planID, trainerID, "Programme 12 semaines", fullDescription))

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role"}).
			AddRow(trainerID, "Sarah Coach", "TRAINER"))

	// Résolution des abonnements de l'appelant
	mock.ExpectQuery(`SELECT "plan_id" FROM "subscriptions" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"plan_id"}).AddRow(planID))

	r := testutils.SetupTestRouter()
	r.GET("/plans/:id", func(c *gin.Context) {
		c.Set("user_id", userID)
		GetPlanByID(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/plans/"+planID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Plan struct {
			Description string `json:"description"`
		} `json:"plan"`
		Subscribed bool `json:"subscribed"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	assert.True(t, respBody.Subscribed)
	assert.Equal(t, fullDescription, respBody.Plan.Description)
}

// Test de l'accès complet pour le trainer propriétaire, sans requête
// d'abonnement
func TestGetPlanByID_OwnerSeesFullDescription(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	planID := "plan1234-e89b-12d3-a456-426614174000"
	trainerID := "trainer1-e89b-12d3-a456-426614174000"
	fullDescription := strings.Repeat("a", 200)

	mock.ExpectQuery(`SELECT (.+) FROM "fitness_plans" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "title", "description"}).
			AddRow(planID, trainerID, "Programme 12 semaines", fullDescription))

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role"}).
			AddRow(trainerID, "Sarah Coach", "TRAINER"))

	r := testutils.SetupTestRouter()
	r.GET("/plans/:id", func(c *gin.Context) {
		c.Set("user_id", trainerID)
		GetPlanByID(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/plans/"+planID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Plan struct {
			Description string `json:"description"`
		} `json:"plan"`
		Subscribed bool `json:"subscribed"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	assert.True(t, respBody.Subscribed)
	assert.Equal(t, fullDescription, respBody.Plan.Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test pour un plan inexistant
func TestGetPlanByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "fitness_plans" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/plans/:id", GetPlanByID)

	req, _ := http.NewRequest(http.MethodGet, "/plans/unknown-id", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Plan not found")
}

// Test de création avec un prix invalide (cas d'échec, aucune requête)
func TestCreatePlan_InvalidPrice(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/plans", func(c *gin.Context) {
		c.Set("user_id", "trainer1-id")
		c.Set("role", "TRAINER")
		CreatePlan(c)
	})

	form := url.Values{}
	form.Set("title", "Programme 12 semaines")
	form.Set("description", "Un programme complet")
	form.Set("price", "-5")
	form.Set("durationDays", "84")
	req, _ := http.NewRequest(http.MethodPost, "/plans", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Price must be a positive number")

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test du feed de plans sans aucun follow: liste vide immédiate
func TestGetFollowedPlans_NoFollows(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT "trainer_id" FROM "follows" WHERE follower_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"trainer_id"}))

	r := testutils.SetupTestRouter()
	r.GET("/feed/plans", func(c *gin.Context) {
		c.Set("user_id", userID)
		GetFollowedPlans(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/feed/plans", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string][]map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody["plans"], 0)

	// Seule la requête follows est partie
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test de la troncature de description
func TestPreviewDescription(t *testing.T) {
	short := "Un programme court"
	assert.Equal(t, short, previewDescription(short))

	exact := strings.Repeat("x", 150)
	assert.Equal(t, exact, previewDescription(exact))

	long := strings.Repeat("x", 151)
	assert.Equal(t, strings.Repeat("x", 150)+"...", previewDescription(long))

	// La coupe se fait en runes, jamais au milieu d'un caractère accentué
	accented := strings.Repeat("é", 160)
	assert.Equal(t, strings.Repeat("é", 150)+"...", previewDescription(accented))
}
