package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/refresh"
	"terminal-terrace/conduit/internal/testutils"
)

func cookiesOf(w *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestStartWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupTestConfig(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	require.NoError(t, NewManager(nil).Start(c, &user.User{ID: "u1"}))

	cookies := cookiesOf(w)
	require.Contains(t, cookies, pkg.AuthCookie)
	assert.NotContains(t, cookies, pkg.RefreshCookie)
	assert.Equal(t, 3600, cookies[pkg.AuthCookie].MaxAge)
	assert.True(t, cookies[pkg.AuthCookie].HttpOnly)
}

func TestStartAndEndWithRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutils.SetupTestConfig(t)
	client, _ := testutils.SetupTestRedis(t)
	service := refresh.NewService(refresh.NewRepository(client))
	manager := NewManager(service)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, manager.Start(c, &user.User{ID: "u2", Username: "jane"}))

	cookies := cookiesOf(w)
	require.Contains(t, cookies, pkg.RefreshCookie)
	count, ok := manager.ActiveSessions(context.Background(), "u2")
	require.True(t, ok)
	assert.Equal(t, 1, count)

	// 登出时吊销刷新令牌
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	c.Request.AddCookie(cookies[pkg.RefreshCookie])
	manager.End(c)

	count, err := service.Sessions(context.Background(), "u2")
	require.NoError(t, err)
	assert.Zero(t, count)

	cleared := cookiesOf(w)
	assert.Equal(t, "", cleared[pkg.AuthCookie].Value)
	assert.Equal(t, -1, cleared[pkg.AuthCookie].MaxAge)
}

func TestActiveSessionsWithoutRedis(t *testing.T) {
	count, ok := NewManager(nil).ActiveSessions(context.Background(), "u1")
	assert.False(t, ok)
	assert.Zero(t, count)
}
