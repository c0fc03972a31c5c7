package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseline/caseline/internal/ctxkeys"
	"github.com/caseline/caseline/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protected() (http.Handler, *model.User) {
	captured := &model.User{}
	handler := AuthMiddleware(testSecret)(http.HandlerFunc(RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		*captured = *ctxkeys.User(r.Context())
		w.WriteHeader(http.StatusOK)
	})))
	return handler, captured
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	handler, captured := protected()

	token := signToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"email": "jo@example.com",
		"name":  "Jo",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/submission", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", captured.ID)
	assert.Equal(t, "jo@example.com", captured.Email)
	assert.Equal(t, "Jo", captured.Name)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	handler, _ := protected()

	req := httptest.NewRequest(http.MethodGet, "/api/submission", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	handler, _ := protected()

	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	req := httptest.NewRequest(http.MethodGet, "/api/submission", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	handler, _ := protected()

	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/submission", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMissingSubject(t *testing.T) {
	handler, _ := protected()

	token := signToken(t, jwt.MapClaims{
		"email": "jo@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/submission", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
