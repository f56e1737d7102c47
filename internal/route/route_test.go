package route

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/login"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/internal/testutils"
	pkgdb "terminal-terrace/conduit/packages/database"
)

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := pkgdb.InitSQLite("file:healthz?mode=memory&cache=shared", "silent", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	serve := func(h gin.HandlerFunc) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/healthz", h)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		return w
	}

	t.Run("数据库可达且未启用 Redis", func(t *testing.T) {
		w := serve(healthz(db, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok"`)
	})

	t.Run("Redis 可达", func(t *testing.T) {
		client, _ := testutils.SetupTestRedis(t)
		w := serve(healthz(db, client))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Redis 宕机", func(t *testing.T) {
		client, mr := testutils.SetupTestRedis(t)
		mr.Close()
		w := serve(healthz(db, client))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unavailable")
	})
}

func TestLoginLimiterIgnoresForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupTestDB(t)

	r, err := newEngine(config.ServerConfig{APIURL: "http://localhost:3000"})
	require.NoError(t, err)
	login.RegisterRoutes(r.Group("/api"), login.NewDefaultLimiter(), session.NewManager(nil))

	attempt := func(i int) int {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"Secret#123"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.RemoteAddr = "203.0.113.7:40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 1; i <= 5; i++ {
		assert.Equal(t, http.StatusUnauthorized, attempt(i), "attempt %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, attempt(6))
}

func TestNewEngineRejectsInvalidProxy(t *testing.T) {
	_, err := newEngine(config.ServerConfig{
		APIURL:         "http://localhost:3000",
		TrustedProxies: []string{"not-an-ip"},
	})
	assert.Error(t, err)
}
