package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/ratelimit"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/testutil"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetUint(constants.ContextKeyUserID),
			"tenant_id": c.GetUint(constants.ContextKeyTenantID),
			"role":      c.GetString(constants.ContextKeyUserRole),
		})
	})
	return r
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("middleware-secret", 5, 1)
	pair, err := jwtSvc.Generate(7, 2, "manager")
	require.NoError(t, err)

	mw := NewAuthMiddleware(jwtSvc, testutil.NewMockLogger())
	r := newEngine(mw.RequireAuth())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + pair.RefreshToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid access token", "Bearer " + pair.AccessToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":7,"tenant_id":2,"role":"manager"}`, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_QueryTokenOnlyForWebSocket(t *testing.T) {
	jwtSvc := auth.NewJWTService("middleware-secret", 5, 1)
	pair, err := jwtSvc.Generate(7, 1, "user")
	require.NoError(t, err)

	r := newEngine(NewAuthMiddleware(jwtSvc, testutil.NewMockLogger()).RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/ping?token="+pair.AccessToken, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/ping?token="+pair.AccessToken, nil)
	req.Header.Set("Upgrade", "websocket")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

type fakeEnforcer struct {
	allowed bool
	err     error
	gotRole string
}

func (f *fakeEnforcer) Enforce(role, _, _ string) (bool, error) {
	f.gotRole = role
	return f.allowed, f.err
}

func withIdentity(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(1))
		c.Set(constants.ContextKeyUserRole, role)
		c.Next()
	}
}

func TestPermissionMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		enforcer *fakeEnforcer
		identity bool
		status   int
	}{
		{"allowed", &fakeEnforcer{allowed: true}, true, http.StatusOK},
		{"denied", &fakeEnforcer{allowed: false}, true, http.StatusForbidden},
		{"enforcer error", &fakeEnforcer{err: errors.New("db down")}, true, http.StatusInternalServerError},
		{"unauthenticated", &fakeEnforcer{allowed: true}, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewPermissionMiddleware(tt.enforcer, testutil.NewMockLogger())
			var chain []gin.HandlerFunc
			if tt.identity {
				chain = append(chain, withIdentity("staff"))
			}
			chain = append(chain, mw.RequirePermission("report", "lock"))
			r := newEngine(chain...)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tt.status, w.Code)
			if tt.identity {
				assert.Equal(t, "staff", tt.enforcer.gotRole)
			}
		})
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(ratelimit.NewMemoryRateLimiter(), "login", 2, testutil.NewMockLogger())
	r := newEngine(rl.Limit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"http://app.local"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://app.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(testutil.NewMockLogger()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}
