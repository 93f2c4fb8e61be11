package ping

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fitplanhub-backend/testutils"
	"fitplanhub-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func TestHandlePing(t *testing.T) {
	r := testutils.SetupTestRouter()
	handler := New()
	r.GET("/ping", handler.HandlePing)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody.Success)
	assert.Equal(t, "Ping successful", respBody.Message)
}
