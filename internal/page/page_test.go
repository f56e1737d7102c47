package page

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/comment"
	"terminal-terrace/conduit/internal/favorite"
	"terminal-terrace/conduit/internal/follow"
	"terminal-terrace/conduit/internal/login"
	articleModel "terminal-terrace/conduit/internal/model/article"
	commentModel "terminal-terrace/conduit/internal/model/comment"
	followModel "terminal-terrace/conduit/internal/model/follow"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/internal/testutils"
	"terminal-terrace/conduit/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newPageRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)

	h, err := NewHandler(Deps{
		DB:        db,
		Articles:  article.NewArticleService(db, article.NewTagCache(nil)),
		Comments:  comment.NewDefaultService(db),
		Users:     user.NewUserService(db),
		Follows:   follow.NewService(db),
		Favorites: favorite.NewService(db),
		Limiter:   login.NewDefaultLimiter(),
		Sessions:  session.NewManager(nil),
	})
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, db, h)
	return r, db
}

func authCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := pkg.GenerateAccessToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: pkg.AuthCookie, Value: token}
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	r, db := newPageRouter(t)
	author := testutils.CreateTestUser(db, testutils.WithName("Jane Doe"))
	testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("Go generics in practice"), testutils.WithTags("go"))

	w := get(r, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Go generics in practice")
	assert.Contains(t, body, "Sign in")
	assert.Contains(t, body, `href="/?tag=go"`)
	assert.Contains(t, body, `href="/?page=1"`)
	assert.NotContains(t, body, "Your Feed")

	w = get(r, "/", authCookie(t, author.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Article")
	assert.Contains(t, w.Body.String(), "Your Feed")
	assert.Contains(t, w.Body.String(), `href="/?my_feed=true"`)

	w = get(r, "/?tag=rust", nil)
	assert.Contains(t, w.Body.String(), "No articles are here")
}

func TestLoginAndSignupPages(t *testing.T) {
	r, db := newPageRouter(t)
	u := testutils.CreateTestUser(db, testutils.WithEmail("jane@example.com"))

	t.Run("bad credentials re-render the form", func(t *testing.T) {
		w := postForm(r, "/login", url.Values{"email": {"jane@example.com"}, "password": {"wrong"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.Contains(t, w.Body.String(), `value="jane@example.com"`)
		// 未启用 Redis 时不展示会话数
		assert.NotContains(t, w.Body.String(), "Signed in on")
	})

	t.Run("login redirects home", func(t *testing.T) {
		w := postForm(r, "/login", url.Values{"email": {"Jane@Example.com"}, "password": {testutils.DefaultPassword}}, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), pkg.AuthCookie+"=")
	})

	t.Run("signed in users skip the login page", func(t *testing.T) {
		w := get(r, "/login", authCookie(t, u.ID))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("signup validation", func(t *testing.T) {
		w := postForm(r, "/signup", url.Values{"name": {"Bob"}, "email": {"bob@example.com"}, "password": {"Secret#123"}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "is too short")
	})

	t.Run("signup duplicate email", func(t *testing.T) {
		w := postForm(r, "/signup", url.Values{"name": {"Jane Again"}, "email": {"jane@example.com"}, "password": {"Secret#123"}}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
	})

	t.Run("signup success", func(t *testing.T) {
		w := postForm(r, "/signup", url.Values{"name": {"Bobby Tables"}, "email": {"bobby@example.com"}, "password": {"Secret#123"}}, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("logout clears cookies", func(t *testing.T) {
		w := postForm(r, "/logout", nil, authCookie(t, u.ID))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		for _, c := range w.Result().Cookies() {
			assert.Equal(t, -1, c.MaxAge)
		}
	})
}

func TestEditorPages(t *testing.T) {
	r, db := newPageRouter(t)
	author := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	cookie := authCookie(t, author.ID)

	w := get(r, "/editor", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = postForm(r, "/editor", url.Values{"title": {"Hi"}, "description": {"desc"}, "body": {"body"}}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title must be at least")

	// 无法解析的表单回显到编辑页
	req := httptest.NewRequest(http.MethodPost, "/editor", strings.NewReader("title=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request")

	form := url.Values{
		"title":       {"Writing Go services"},
		"description": {"Notes from production"},
		"body":        {"Keep handlers thin and services testable."},
		"tag_list":    {"go backend"},
	}
	w = postForm(r, "/editor", form, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/article/writing-go-services", w.Header().Get("Location"))

	w = get(r, "/editor/writing-go-services", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="backend go"`)

	w = get(r, "/editor/writing-go-services", authCookie(t, other.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	form.Set("title", "Writing Go services, revised")
	w = postForm(r, "/editor/writing-go-services", form, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/article/writing-go-services-revised", w.Header().Get("Location"))

	w = postForm(r, "/article/writing-go-services-revised/delete", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var count int64
	db.Model(&articleModel.Article{}).Count(&count)
	assert.Zero(t, count)
}

func TestArticlePageInteractions(t *testing.T) {
	r, db := newPageRouter(t)
	author := testutils.CreateTestUser(db, testutils.WithName("Jane Doe"))
	reader := testutils.CreateTestUser(db, testutils.WithName("Reader One"))
	a := testutils.CreateTestArticle(db, author.ID, testutils.WithBody("Body <b>text</b>"))
	cookie := authCookie(t, reader.ID)

	w := get(r, "/article/"+a.Slug, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Body &lt;b&gt;text&lt;/b&gt;")
	assert.Contains(t, w.Body.String(), "to add comments on this article")

	assert.Equal(t, http.StatusNotFound, get(r, "/article/missing", nil).Code)

	t.Run("comments", func(t *testing.T) {
		w := postForm(r, "/article/"+a.Slug+"/comments", url.Values{"body": {"Nice"}}, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		w = postForm(r, "/article/"+a.Slug+"/comments", url.Values{"body": {"  "}}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Comment cannot be empty")

		w = postForm(r, "/article/"+a.Slug+"/comments", url.Values{"body": {"Great write-up"}}, cookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		var c commentModel.Comment
		require.NoError(t, db.Where("article_id = ?", a.ID).First(&c).Error)

		w = postForm(r, "/article/"+a.Slug+"/comments/"+c.ID+"/delete", nil, authCookie(t, author.ID))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = postForm(r, "/article/"+a.Slug+"/comments/"+c.ID+"/delete", nil, cookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("favorite", func(t *testing.T) {
		w := postForm(r, "/article/"+a.Slug+"/favorite", url.Values{"redirect": {"//evil.example"}}, cookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/article/"+a.Slug, w.Header().Get("Location"))

		var count int64
		db.Model(&articleModel.Favorite{}).Where("user_id = ? AND article_id = ?", reader.ID, a.ID).Count(&count)
		assert.Equal(t, int64(1), count)

		w = postForm(r, "/article/"+a.Slug+"/favorite", url.Values{"redirect": {"/?page=1"}}, cookie)
		assert.Equal(t, "/?page=1", w.Header().Get("Location"))
		db.Model(&articleModel.Favorite{}).Where("user_id = ? AND article_id = ?", reader.ID, a.ID).Count(&count)
		assert.Zero(t, count)
	})
}

func TestProfileAndSettingsPages(t *testing.T) {
	r, db := newPageRouter(t)
	jane := testutils.CreateTestUser(db, testutils.WithName("Jane Doe"), testutils.WithEmail("jane@example.com"))
	bob := testutils.CreateTestUser(db)
	testutils.CreateTestArticle(db, jane.ID, testutils.WithTitle("Jane writes things"))

	w := get(r, "/profile/"+jane.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane writes things")
	assert.NotContains(t, w.Body.String(), "Follow Jane Doe")
	assert.Contains(t, w.Body.String(), "0 followers")

	w = get(r, "/profile/"+jane.ID, authCookie(t, bob.ID))
	assert.Contains(t, w.Body.String(), "Follow Jane Doe")

	w = postForm(r, "/profile/"+jane.ID+"/follow", nil, authCookie(t, bob.ID))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/profile/"+jane.ID, w.Header().Get("Location"))

	var follows int64
	db.Model(&followModel.Follow{}).Count(&follows)
	assert.Equal(t, int64(1), follows)

	w = get(r, "/profile/"+jane.ID, authCookie(t, bob.ID))
	assert.Contains(t, w.Body.String(), "Unfollow Jane Doe")
	assert.Contains(t, w.Body.String(), "1 follower<")

	w = postForm(r, "/profile/"+jane.ID+"/follow", nil, authCookie(t, jane.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/profile/"+jane.ID+"?favourites=true", nil)
	assert.NotContains(t, w.Body.String(), "Jane writes things")

	t.Run("settings", func(t *testing.T) {
		cookie := authCookie(t, jane.ID)

		w := get(r, "/settings", cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="jane@example.com"`)
		// 未启用 Redis 时不展示会话数
		assert.NotContains(t, w.Body.String(), "Signed in on")

		w = postForm(r, "/settings", url.Values{
			"email":            {"jane@example.com"},
			"password":         {"Another#456"},
			"confirm_password": {"Another#457"},
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Passwords do not match")

		w = postForm(r, "/settings", url.Values{
			"email": {"jane@example.com"},
			"bio":   {"Gopher and gardener."},
		}, cookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/profile/"+jane.ID, w.Header().Get("Location"))
	})
}

func TestUnknownPage(t *testing.T) {
	r, _ := newPageRouter(t)
	w := get(r, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestRedirectTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		next string
		want string
	}{
		{"/?page=1", "/?page=1"},
		{"/profile/abc", "/profile/abc"},
		{"", "/fallback"},
		{"https://evil.example", "/fallback"},
		{"//evil.example", "/fallback"},
		{"/\\evil.example", "/fallback"},
		{"/\\/evil.example", "/fallback"},
		{"/\tevil", "/fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"redirect": {tt.next}}.Encode()))
			c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			assert.Equal(t, tt.want, redirectTarget(c, "/fallback"))
		})
	}
}
