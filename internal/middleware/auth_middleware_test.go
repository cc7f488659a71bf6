package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/pkg/util"
)

const testJWTSecret = "test-jwt-secret-for-middleware"

type fakeRevocations struct {
	tokens map[string]bool
	err    error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, token string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.tokens[token], nil
}

func setupMiddlewareTest(revoked TokenRevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggingMiddleware())

	authMiddleware := NewAuthMiddleware(testJWTSecret, revoked)
	router.GET("/test", authMiddleware.Authenticate(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		token, claims, ok := GetToken(c)

		c.JSON(http.StatusOK, gin.H{
			"user_id":   userID,
			"email":     email,
			"has_token": ok && token != "" && claims.UserID == userID,
		})
	})
	return router
}

func generateTestToken(t *testing.T, userID uint, email string) string {
	token, err := util.GenerateToken(userID, email, "tester", testJWTSecret, 15*time.Minute)
	require.NoError(t, err)
	return token
}

func expiredTestToken(t *testing.T) string {
	claims := util.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	valid := generateTestToken(t, 7, "ana@x.com")
	revokedToken := generateTestToken(t, 8, "bruno@x.com")
	otherSecret, err := util.GenerateToken(7, "ana@x.com", "ana", "another-secret", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		revoked    TokenRevocationChecker
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Valid token",
			header:     "Bearer " + valid,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Lowercase scheme",
			header:     "bearer " + valid,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.AuthUnauthorized,
		},
		{
			name:       "Wrong scheme",
			header:     "Basic " + valid,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.AuthTokenInvalid,
		},
		{
			name:       "Missing token part",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.AuthTokenInvalid,
		},
		{
			name:       "Forged signature",
			header:     "Bearer " + otherSecret,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.AuthTokenInvalid,
		},
		{
			name:       "Expired token",
			header:     "Bearer " + expiredTestToken(t),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.AuthTokenExpired,
		},
		{
			name:       "Revoked token",
			header:     "Bearer " + revokedToken,
			revoked:    &fakeRevocations{tokens: map[string]bool{revokedToken: true}},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.AuthTokenRevoked,
		},
		{
			name:       "Not revoked",
			header:     "Bearer " + valid,
			revoked:    &fakeRevocations{tokens: map[string]bool{revokedToken: true}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Blacklist unavailable",
			header:     "Bearer " + valid,
			revoked:    &fakeRevocations{err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.InternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMiddlewareTest(tt.revoked)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error"])
				return
			}
			assert.Equal(t, float64(7), body["user_id"])
			assert.Equal(t, "ana@x.com", body["email"])
			assert.Equal(t, true, body["has_token"])
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", w.Body.String())
	})
}
