package login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/internal/testutils"
)

func TestIPLimiter(t *testing.T) {
	limiter := NewDefaultLimiter()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < defaultBurst; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "attempt %d", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))

	// 其它 IP 不受影响
	assert.True(t, limiter.Allow("10.0.0.2"))

	// 12 秒后恢复一次
	now = now.Add(defaultRefill)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestIPLimiterSweep(t *testing.T) {
	limiter := NewDefaultLimiter()
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Second)
	limiter.sweep(now)

	assert.Empty(t, limiter.visitors)
}

func TestLoginHandlerRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)

	router := gin.New()
	h := NewLoginHandler(NewLoginService(db), NewIPLimiter(0, 1), session.NewManager(nil))
	router.POST("/api/users/login", h.Handle)

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"Secret#123"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many login attempts")
}

func TestLoginHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)
	testutils.CreateTestUser(db, testutils.WithEmail("jane@example.com"))

	router := gin.New()
	h := NewLoginHandler(NewLoginService(db), NewDefaultLimiter(), session.NewManager(nil))
	router.POST("/api/users/login", h.Handle)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/login",
		strings.NewReader(`{"email":"jane@example.com","password":"`+testutils.DefaultPassword+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth_token=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "SameSite=Strict")
}
