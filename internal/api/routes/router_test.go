package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "router-test-secret"
	middleware.Init()

	r := gin.New()
	RegisterRoutes(r, nil)
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/admin/posts"},
		{http.MethodPut, "/admin/programs/1/form"},
		{http.MethodPost, "/admin/applications/1/review"},
	} {
		w := doRequest(r, route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestMutationRoutesRejectNonAdmin(t *testing.T) {
	r := setupRouter(t)

	token, err := middleware.GenerateToken(7, "staffer", false, time.Hour)
	require.NoError(t, err)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/admin/users"},
		{http.MethodPost, "/admin/categories"},
		{http.MethodPost, "/admin/posts"},
		{http.MethodPut, "/admin/posts/1"},
		{http.MethodDelete, "/admin/posts/1"},
		{http.MethodPost, "/admin/programs"},
		{http.MethodPut, "/admin/programs/1"},
		{http.MethodDelete, "/admin/programs/1"},
		{http.MethodPut, "/admin/programs/1/form"},
		{http.MethodPost, "/admin/applications/1/review"},
	} {
		w := doRequest(r, route.method, route.path, token)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", route.method, route.path)
	}
}
