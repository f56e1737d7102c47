package favorite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/testutils"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewService(db)

	author := testutils.CreateTestUser(db)
	reader := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, author.ID)

	favorited, err := service.Toggle(ctx, reader.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, count, err := service.ToggleBySlug(ctx, author.ID, a.Slug)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.Equal(t, int64(2), count)

	favorited, count, err = service.ToggleBySlug(ctx, reader.ID, a.Slug)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.Equal(t, int64(1), count)
}

func TestToggleMissingArticle(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewService(db)
	reader := testutils.CreateTestUser(db)

	_, err := service.Toggle(ctx, reader.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, _, err = service.ToggleBySlug(ctx, reader.ID, "missing-slug")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestToggleMissingUser(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewService(db)
	author := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, author.ID)

	_, err := service.Toggle(ctx, uuid.NewString(), a.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, http.StatusUnauthorized, ToBusinessError(err).Code.HTTPStatus())

	var count int64
	db.Model(&article.Favorite{}).Count(&count)
	assert.Zero(t, count)
}

func TestToggleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)
	author := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, author.ID)

	r := gin.New()
	RegisterRoutes(r.Group("/api/articles"), NewService(db))

	token, err := pkg.GenerateAccessToken(author.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/"+a.Slug+"/favorite", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"favorited":true`)
	assert.Contains(t, w.Body.String(), `"favorites_count":1`)

	req = httptest.NewRequest(http.MethodPost, "/api/articles/nope/favorite", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
