package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/conduit/internal/logger"
	articleModel "terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/testutils"
)

// fakeDevTo 两篇文章出自同一作者，第三篇详情返回 404
func fakeDevTo(t *testing.T, flaky *int32) *httptest.Server {
	t.Helper()

	author := map[string]any{
		"username":      "janedev",
		"name":          "Jane Dev",
		"summary":       "Writes about distributed systems.",
		"profile_image": "https://example.com/jane.png",
	}
	details := map[string]map[string]any{
		"1": {
			"title": "First post", "slug": "first-post-1a2b", "tags": []string{"go", "web"},
			"description": "A first post", "body_html": "<p>Hello</p>", "reading_time_minutes": 3,
			"user": author,
		},
		"2": {
			"title": "Second post", "slug": "second-post-3c4d", "tags": []string{"go"},
			"description": "", "body_html": "<h1>Title</h1>\n<p>Some <b>bold</b>   text.</p>",
			"user": author,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/articles/latest", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") != "1" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "user": author},
			{"id": 2, "user": author},
			{"id": 3, "user": author},
		})
	})
	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/articles/")
		if id == "2" && flaky != nil && atomic.AddInt32(flaky, -1) >= 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		detail, ok := details[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(detail)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	c := NewClient(baseURL, "", 0)
	c.retryDelay = time.Millisecond
	return c
}

func TestImporterRun(t *testing.T) {
	db := testutils.SetupTestDB(t)
	flaky := int32(1)
	srv := fakeDevTo(t, &flaky)

	im := NewImporter(db, newTestClient(srv.URL), logger.Nop())
	summary, err := im.Run(context.Background(), Options{Pages: 2, PerPage: 50})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.UsersCreated)
	assert.Equal(t, 1, summary.UsersExisting)
	assert.Equal(t, 2, summary.ArticlesCreated)
	assert.Equal(t, 0, summary.ArticlesSkipped)
	assert.Equal(t, 1, summary.Failures)

	var u user.User
	require.NoError(t, db.Where("email = ?", "janedev@example.com").First(&u).Error)
	assert.Equal(t, "Jane Dev", u.Name)
	assert.True(t, strings.HasPrefix(u.Username, "jane_dev_"))
	assert.True(t, pkg.CheckPassword(u.PasswordHash, "defaultpassword"))
	assert.Equal(t, pkg.HashEmail("janedev@example.com"), u.EmailHash)
	require.NotNil(t, u.Bio)
	assert.Equal(t, "Writes about distributed systems.", *u.Bio)

	var second articleModel.Article
	require.NoError(t, db.Where("slug = ?", "second-post-3c4d").First(&second).Error)
	assert.Equal(t, "Title Some bold text.", second.Description)
	assert.Equal(t, u.ID, second.AuthorID)

	var first articleModel.Article
	require.NoError(t, db.Where("slug = ?", "first-post-1a2b").First(&first).Error)
	assert.Equal(t, 3, first.ReadingTime)

	var tagLinks int64
	db.Model(&articleModel.ArticleTag{}).Where("article_id = ?", first.ID).Count(&tagLinks)
	assert.Equal(t, int64(2), tagLinks)

	t.Run("rerun skips duplicates", func(t *testing.T) {
		summary, err := im.Run(context.Background(), Options{Pages: 1, PerPage: 50})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.UsersCreated)
		assert.Equal(t, 2, summary.ArticlesSkipped)

		var count int64
		db.Model(&articleModel.Article{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})
}

func TestImporterStopsOnCancel(t *testing.T) {
	db := testutils.SetupTestDB(t)
	srv := fakeDevTo(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewImporter(db, newTestClient(srv.URL), logger.Nop()).Run(ctx, Options{Pages: 3, PerPage: 50})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, &Summary{}, summary)
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Article(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	var se *statusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
}

func TestPlainTextPrefix(t *testing.T) {
	assert.Equal(t, "", PlainTextPrefix("", 200))
	assert.Equal(t, "Hello world", PlainTextPrefix("<div><p>Hello</p>\n<p>world</p></div>", 200))
	assert.Equal(t, "Héllo", PlainTextPrefix("<p>Héllo wörld</p>", 5))
}
