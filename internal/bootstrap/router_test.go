package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bubom6755/portfolio-backend/config"
	chatservice "github.com/bubom6755/portfolio-backend/internal/chat/service"
	"github.com/bubom6755/portfolio-backend/internal/projects/store"
	"github.com/bubom6755/portfolio-backend/internal/uploads"
)

func newTestDeps(t *testing.T) RouterDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploader, err := uploads.New(t.TempDir())
	require.NoError(t, err)

	return RouterDeps{
		Config: &config.Config{
			Admin: config.AdminConfig{APIKey: "router-test-key"},
			CORS:  config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Store:    store.New(filepath.Join(t.TempDir(), "projects.json")),
		Uploader: uploader,
		Chat:     chatservice.New(nil),
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := BuildRouter(newTestDeps(t))

	for _, path := range []string{"/api/projects", "/health", "/cron/ping"} {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "GET %s", path)
	}
}

func TestRouter_AdminRoutesAreGuarded(t *testing.T) {
	r := BuildRouter(newTestDeps(t))

	cases := []struct {
		method, path string
	}{
		{"POST", "/api/admin/projects"},
		{"PUT", "/api/admin/projects/1"},
		{"DELETE", "/api/admin/projects/1"},
		{"POST", "/api/admin/upload"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_ChatUnavailableWithoutProvider(t *testing.T) {
	r := BuildRouter(newTestDeps(t))

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := BuildRouter(newTestDeps(t))

	req := httptest.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	r := BuildRouter(newTestDeps(t))

	req := httptest.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_AdminRequestsCarryRequestID(t *testing.T) {
	r := BuildRouter(newTestDeps(t))

	req := httptest.NewRequest("DELETE", "/api/admin/projects/1", nil)
	req.Header.Set("Authorization", "Bearer router-test-key")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	// 404: project does not exist, but the request made it past the
	// guard and through the request-id middleware.
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}
