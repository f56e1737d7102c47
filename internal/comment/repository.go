package comment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/article"
	commentModel "terminal-terrace/conduit/internal/model/comment"
)

// commentRow 评论 + 作者
type commentRow struct {
	ID        string
	ArticleID string
	UserID    string
	Body      string
	CreatedAt time.Time
	UserImage *string
	Username  string
	Name      string
}

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	FindArticleIDBySlug(ctx context.Context, slug string) (string, error)
	FindByArticleID(ctx context.Context, articleID string) ([]commentRow, error)
	FindByID(ctx context.Context, commentID string) (*commentRow, error)
	Create(ctx context.Context, c *commentModel.Comment) error
	DeleteOwned(ctx context.Context, commentID, articleID, userID string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建 Repository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// FindArticleIDBySlug 文章不存在时返回 gorm.ErrRecordNotFound
func (r *commentRepository) FindArticleIDBySlug(ctx context.Context, slug string) (string, error) {
	var art article.Article
	if err := r.db.WithContext(ctx).Select("id").Where("slug = ?", slug).First(&art).Error; err != nil {
		return "", err
	}
	return art.ID, nil
}

func (r *commentRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.id, c.article_id, c.user_id, c.body, c.created_at, u.image AS user_image, u.username, u.name").
		Joins("JOIN users u ON u.id = c.user_id")
}

// FindByArticleID 按创建时间升序
func (r *commentRepository) FindByArticleID(ctx context.Context, articleID string) ([]commentRow, error) {
	var rows []commentRow
	err := r.withAuthor(ctx).
		Where("c.article_id = ?", articleID).
		Order("c.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *commentRepository) FindByID(ctx context.Context, commentID string) (*commentRow, error) {
	var rows []commentRow
	if err := r.withAuthor(ctx).Where("c.id = ?", commentID).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *commentRepository) Create(ctx context.Context, c *commentModel.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// DeleteOwned 只删除自己在指定文章下的评论，返回受影响行数
func (r *commentRepository) DeleteOwned(ctx context.Context, commentID, articleID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND article_id = ? AND user_id = ?", commentID, articleID, userID).
		Delete(&commentModel.Comment{})
	return result.RowsAffected, result.Error
}
