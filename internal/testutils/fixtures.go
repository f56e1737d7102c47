package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/comment"
	"terminal-terrace/conduit/internal/model/user"
)

// DefaultPassword 测试用户的默认明文密码
const DefaultPassword = "Secret#123"

var defaultPasswordHash = func() string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	return string(hash)
}()

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	testUser := &user.User{
		Name:         "Test User",
		Username:     fmt.Sprintf("test_user_%s", uniqueID),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: defaultPasswordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithName sets the display name
func WithName(name string) UserOption {
	return func(u *user.User) {
		u.Name = name
	}
}

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithPassword sets the password (will be hashed)
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// WithImage sets the avatar url
func WithImage(image string) UserOption {
	return func(u *user.User) {
		u.Image = &image
	}
}

// ArticleOption configures test article
type ArticleOption func(*articleFixture)

type articleFixture struct {
	article article.Article
	tags    []string
}

// WithTitle sets the title and derives a unique slug
func WithTitle(title string) ArticleOption {
	return func(f *articleFixture) {
		f.article.Title = title
	}
}

// WithSlug sets the slug
func WithSlug(slug string) ArticleOption {
	return func(f *articleFixture) {
		f.article.Slug = slug
	}
}

// WithBody sets the body
func WithBody(body string) ArticleOption {
	return func(f *articleFixture) {
		f.article.Body = body
	}
}

// WithCreatedAt sets the creation time
func WithCreatedAt(t time.Time) ArticleOption {
	return func(f *articleFixture) {
		f.article.CreatedAt = t
	}
}

// WithTags attaches tags, creating them if needed
func WithTags(tags ...string) ArticleOption {
	return func(f *articleFixture) {
		f.tags = append(f.tags, tags...)
	}
}

// CreateTestArticle creates an article owned by authorID
func CreateTestArticle(db *gorm.DB, authorID string, opts ...ArticleOption) *article.Article {
	uniqueID := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	f := &articleFixture{
		article: article.Article{
			Slug:        "test-article-" + uniqueID,
			Title:       "Test Article " + uniqueID,
			Description: "Test description",
			Body:        "Test body with enough characters",
			AuthorID:    authorID,
		},
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := db.Create(&f.article).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	for _, name := range f.tags {
		tag := article.Tag{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			panic(fmt.Sprintf("Failed to create test tag: %v", err))
		}
		link := article.ArticleTag{ArticleID: f.article.ID, TagID: tag.ID}
		if err := db.Create(&link).Error; err != nil {
			panic(fmt.Sprintf("Failed to link test tag: %v", err))
		}
	}

	return &f.article
}

// CreateTestComment creates a comment on articleID by userID
func CreateTestComment(db *gorm.DB, articleID, userID, body string) *comment.Comment {
	c := &comment.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Body:      body,
	}
	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test comment: %v", err))
	}
	return c
}

// Favorite marks articleID as favorited by userID
func Favorite(db *gorm.DB, userID, articleID string) {
	if err := db.Create(&article.Favorite{UserID: userID, ArticleID: articleID}).Error; err != nil {
		panic(fmt.Sprintf("Failed to favorite test article: %v", err))
	}
}
