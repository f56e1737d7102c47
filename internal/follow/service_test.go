package follow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/conduit/internal/model/follow"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/testutils"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewService(db)

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)

	following, err := service.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	ok, err := service.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 反向关系互不影响
	ok, err = service.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	following, err = service.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	var count int64
	db.Model(&follow.Follow{}).Count(&count)
	assert.Zero(t, count)
}

func TestToggleErrors(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewService(db)
	alice := testutils.CreateTestUser(db)

	_, err := service.Toggle(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrFollowSelf)

	_, err = service.Toggle(ctx, alice.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	repo := NewRepository(db)
	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)

	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))

	n, err := repo.CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestToggleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)
	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)

	r := gin.New()
	RegisterRoutes(r.Group("/api/profiles"), NewService(db))

	token, err := pkg.GenerateAccessToken(alice.ID)
	require.NoError(t, err)

	do := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/profiles/"+target+"/follow", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(bob.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"following":true`)

	w = do(alice.ID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You cannot follow yourself")

	w = do(uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 未登录
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/profiles/"+bob.ID+"/follow", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
