package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mstanic/runboard/internal/auth"
	"github.com/mstanic/runboard/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("through"))
	})
}

func TestAuthCheck_AllowedPath(t *testing.T) {
	checker := auth.NewTestLoginChecker(map[string]bool{})
	authMiddleware := middleware.NewAuthMiddlewareHandler(checker)
	handler := authMiddleware.AuthCheck()(authTestHandler())

	for _, path := range []string{
		"/", "/version", "/quote/random", "/dashboard",
		"/runs/summary", "/runs/records", "/runs/timeline",
		"/runs/list/page/1/size/10",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path: %s", path)
	}
}

func TestAuthCheck_ProtectedPath(t *testing.T) {
	checker := auth.NewTestLoginChecker(map[string]bool{
		"valid-token": true,
	})
	authMiddleware := middleware.NewAuthMiddlewareHandler(checker)
	handler := authMiddleware.AuthCheck()(authTestHandler())

	// no token
	req := httptest.NewRequest(http.MethodPost, "/runs/sync", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// invalid token
	req = httptest.NewRequest(http.MethodPost, "/runs/sync", nil)
	req.Header.Set("X-RUNBOARD-TOKEN", "invalid-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token
	req = httptest.NewRequest(http.MethodPost, "/runs/sync", nil)
	req.Header.Set("X-RUNBOARD-TOKEN", "valid-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "through", rec.Body.String())
}

func TestAuthCheck_Options(t *testing.T) {
	checker := auth.NewTestLoginChecker(map[string]bool{})
	authMiddleware := middleware.NewAuthMiddlewareHandler(checker)
	handler := authMiddleware.AuthCheck()(authTestHandler())

	req := httptest.NewRequest(http.MethodOptions, "/runs/sync", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Allow"))
}
