package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/database"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
)

// testEnv is a fully wired router over a throwaway SQLite database.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on&_txlock=immediate",
		filepath.Join(t.TempDir(), "api_test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:      "api-test-secret",
		UploadDir:      t.TempDir(),
		LookupCacheTTL: time.Hour,
	}

	router := gin.New()
	RegisterRoutes(router, db, cfg, service.NewImageService(cfg.UploadDir, nil))

	return &testEnv{router: router, db: db, cfg: cfg}
}

// request performs a JSON request against the test router.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

// registerUser creates an account through the API and returns its token.
func (e *testEnv) registerUser(t *testing.T, email string) (string, uint) {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "supersecret",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

// createFood adds a catalog food through the API.
func (e *testEnv) createFood(t *testing.T, token, name string, calories int) models.FoodItem {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/v1/foods", token, gin.H{
		"name":     name,
		"calories": calories,
		"protein":  1.0,
		"carbs":    2.0,
		"fat":      0.5,
		"fiber":    0.3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.FoodItem
	decodeBody(t, w, &item)
	return item
}

// uploadImage posts a multipart image to the profile picture endpoint.
func (e *testEnv) uploadImage(t *testing.T, token string, data []byte, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="image"; filename="photo.png"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
