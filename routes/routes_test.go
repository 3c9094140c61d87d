package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/configs"
	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Issue{},
		&entity.IssueComment{},
		&entity.Announcement{},
		&entity.LostFoundItem{},
	))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	hub := ws.NewHub()
	go hub.Run()

	r := gin.New()
	RegisterRoutes(r, db, cfg, hub)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates an account through the API and returns its
// bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret1",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	return data["token"].(string)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["timestamp"])
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "rahul@hostel.edu", "student")

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["data"].(map[string]any)
	require.Equal(t, "rahul@hostel.edu", user["email"])
	require.NotContains(t, user, "password")
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/issues", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/issues", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyRoutes(t *testing.T) {
	r := newTestRouter(t)
	student := registerAndLogin(t, r, "student@hostel.edu", "student")
	admin := registerAndLogin(t, r, "warden@hostel.edu", "admin")

	w := doJSON(t, r, http.MethodGet, "/api/users", student, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/analytics/dashboard", student, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestIssueLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	student := registerAndLogin(t, r, "student@hostel.edu", "student")
	admin := registerAndLogin(t, r, "warden@hostel.edu", "admin")

	w := doJSON(t, r, http.MethodPost, "/api/issues", student, gin.H{
		"title":       "Leaking tap",
		"description": "Bathroom tap leaking",
		"category":    "plumbing",
		"priority":    "high",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	issue := decode(t, w)["data"].(map[string]any)
	issueID := issue["id"].(string)
	require.Equal(t, "reported", issue["status"])

	// list carries the pagination envelope
	w = doJSON(t, r, http.MethodGet, "/api/issues?status=reported", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Len(t, body["data"], 1)
	pagination := body["pagination"].(map[string]any)
	require.Equal(t, float64(1), pagination["total"])

	// status change is admin-only
	w = doJSON(t, r, http.MethodPut, "/api/issues/"+issueID+"/status", student, gin.H{"status": "resolved"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/issues/"+issueID+"/status", admin, gin.H{"status": "resolved", "comment": "fixed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)["data"].(map[string]any)
	require.Equal(t, "resolved", updated["status"])

	w = doJSON(t, r, http.MethodGet, "/api/issues?page=0", student, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
