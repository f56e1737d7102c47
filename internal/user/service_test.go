package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/conduit/internal/follow"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/refresh"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/internal/testutils"
	"terminal-terrace/conduit/packages/response"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	jane := testutils.CreateTestUser(db, testutils.WithName("Jane Doe"))
	bob := testutils.CreateTestUser(db)

	t.Run("anonymous", func(t *testing.T) {
		p, bizErr := service.GetProfile(ctx, jane.ID, "")
		require.Nil(t, bizErr)
		assert.Equal(t, "Jane Doe", p.Name)
		assert.Nil(t, p.Following)
		assert.Zero(t, p.Followers)
	})

	t.Run("yourself", func(t *testing.T) {
		p, bizErr := service.GetProfile(ctx, jane.ID, jane.ID)
		require.Nil(t, bizErr)
		require.NotNil(t, p.Following)
		assert.False(t, *p.Following)
	})

	t.Run("follower", func(t *testing.T) {
		_, err := follow.NewService(db).Toggle(ctx, bob.ID, jane.ID)
		require.NoError(t, err)

		p, bizErr := service.GetProfile(ctx, jane.ID, bob.ID)
		require.Nil(t, bizErr)
		require.NotNil(t, p.Following)
		assert.True(t, *p.Following)
		assert.Equal(t, int64(1), p.Followers)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, bizErr := service.GetProfile(ctx, "not-a-uuid", "")
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)

		_, bizErr = service.GetProfile(ctx, "00000000-0000-0000-0000-000000000000", "")
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	service := NewUserService(db)

	u := testutils.CreateTestUser(db, testutils.WithEmail("jane@example.com"))
	testutils.CreateTestUser(db, testutils.WithEmail("taken@example.com"))

	tests := []struct {
		name string
		req  SettingsRequest
		code response.ResponseCode
		msg  string
	}{
		{"password mismatch", SettingsRequest{Email: "jane@example.com", Password: "Secret#123", ConfirmPassword: "Secret#124"}, response.InvalidParameter, "Passwords do not match"},
		{"short bio", SettingsRequest{Email: "jane@example.com", Bio: "hi"}, response.InvalidParameter, "bio too short, at least 10 characters"},
		{"bad image", SettingsRequest{Email: "jane@example.com", Image: "ftp://x"}, response.InvalidParameter, "Invalid image!"},
		{"bad email", SettingsRequest{Email: "nope"}, response.InvalidParameter, "Invalid email format"},
		{"weak password", SettingsRequest{Email: "jane@example.com", Password: "short", ConfirmPassword: "short"}, response.InvalidParameter, "Password must be at least 8 characters"},
		{"email taken", SettingsRequest{Email: "Taken@Example.com"}, response.Conflict, "Email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bizErr := service.UpdateSettings(ctx, u.ID, tt.req)
			require.NotNil(t, bizErr)
			assert.Equal(t, tt.code, bizErr.Code)
			assert.Equal(t, tt.msg, bizErr.Msg)
		})
	}

	t.Run("profile only", func(t *testing.T) {
		updated, changed, bizErr := service.UpdateSettings(ctx, u.ID, SettingsRequest{
			Email: " New@Example.com ",
			Bio:   "I write about Go and gardens.",
			Image: "https://example.com/me.png",
		})
		require.Nil(t, bizErr)
		assert.False(t, changed)
		assert.Equal(t, "new@example.com", updated.Email)
		assert.Equal(t, pkg.HashEmail("new@example.com"), updated.EmailHash)
		require.NotNil(t, updated.Bio)
		assert.Equal(t, "I write about Go and gardens.", *updated.Bio)
		assert.True(t, pkg.CheckPassword(updated.PasswordHash, testutils.DefaultPassword))
	})

	t.Run("clear bio and change password", func(t *testing.T) {
		updated, changed, bizErr := service.UpdateSettings(ctx, u.ID, SettingsRequest{
			Email:           "new@example.com",
			Password:        "Another#456",
			ConfirmPassword: "Another#456",
		})
		require.Nil(t, bizErr)
		assert.True(t, changed)
		assert.Nil(t, updated.Bio)
		assert.Nil(t, updated.Image)
		assert.True(t, pkg.CheckPassword(updated.PasswordHash, "Another#456"))
	})
}

func TestUpdateSettingsRevokesSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)
	client, _ := testutils.SetupTestRedis(t)

	refreshService := refresh.NewService(refresh.NewRepository(client))
	handler := NewUserHandler(NewUserService(db), session.NewManager(refreshService))

	r := gin.New()
	RegisterRoutes(r.Group("/api"), handler)

	u := testutils.CreateTestUser(db)
	old, err := refreshService.Issue(context.Background(), refresh.TokenData{UserID: u.ID})
	require.NoError(t, err)

	token, err := pkg.GenerateAccessToken(u.ID)
	require.NoError(t, err)

	body := `{"email":"` + u.Email + `","password":"Another#456","confirm_password":"Another#456"}`
	req := httptest.NewRequest(http.MethodPut, "/api/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Values("Set-Cookie")[0], pkg.AuthCookie+"=")

	_, bizErr := refreshService.Rotate(context.Background(), old)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Unauthorized, bizErr.Code)

	var stored userModel.User
	require.NoError(t, db.First(&stored, "id = ?", u.ID).Error)
	assert.True(t, pkg.CheckPassword(stored.PasswordHash, "Another#456"))
}
