package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(APIKey(key))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAPIKey_MissingHeader(t *testing.T) {
	r := guardedRouter("secret")

	req, err := http.NewRequest("GET", "/admin/ping", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPIKey_BadFormat(t *testing.T) {
	r := guardedRouter("secret")

	req, err := http.NewRequest("GET", "/admin/ping", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "secret")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPIKey_WrongKey(t *testing.T) {
	r := guardedRouter("secret")

	req, err := http.NewRequest("GET", "/admin/ping", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer wrong")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid API key")
}

func TestAPIKey_MatchPasses(t *testing.T) {
	r := guardedRouter("secret")

	req, err := http.NewRequest("GET", "/admin/ping", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
