package article

import (
	"context"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/comment"
	"terminal-terrace/conduit/internal/pagination"
)

// articleRow 列表与详情查询的扁平结果
type articleRow struct {
	ID             string
	Slug           string
	Title          string
	Description    string
	Body           string
	CoverImage     string
	ReadingTime    int
	CreatedAt      time.Time
	AuthorID       string
	Username       string
	Name           string
	Image          *string
	FavoritesCount int64
	Fav            bool
	Following      bool
}

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// previewQuery 文章 + 作者 + 收藏数 + viewer 视角的 fav/following
func (r *ArticleRepository) previewQuery(ctx context.Context, viewerID string, withBody bool) *gorm.DB {
	columns := `a.id, a.slug, a.title, a.description, a.cover_image, a.reading_time, a.created_at,
		u.id AS author_id, u.username, u.name, u.image,
		(SELECT COUNT(*) FROM fav_articles f WHERE f.article_id = a.id) AS favorites_count,
		EXISTS(SELECT 1 FROM fav_articles f WHERE f.article_id = a.id AND f.user_id = ?) AS fav,
		EXISTS(SELECT 1 FROM follows fo WHERE fo.follower_id = ? AND fo.influencer_id = a.author_id) AS following`
	if withBody {
		columns += ", a.body"
	}

	return r.db.WithContext(ctx).
		Table("articles AS a").
		Select(columns, viewerID, viewerID).
		Joins("JOIN users u ON u.id = a.author_id")
}

// ListHome 首页：可选标签过滤，my_feed 只看关注的作者，按创建时间倒序分页
func (r *ArticleRepository) ListHome(ctx context.Context, p pagination.Pagination, viewerID string) ([]articleRow, error) {
	query := r.previewQuery(ctx, viewerID, false)

	if p.Tag != "" {
		query = query.Where(`a.id IN (SELECT at.article_id FROM article_tags at
			JOIN tags t ON t.id = at.tag_id WHERE t.name = ?)`, p.Tag)
	}
	if p.MyFeed {
		query = query.Where("a.author_id IN (SELECT influencer_id FROM follows WHERE follower_id = ?)", viewerID)
	}

	var rows []articleRow
	err := query.Order("a.created_at DESC").
		Limit(int(p.Limit())).
		Offset(p.Offset()).
		Scan(&rows).Error
	return rows, err
}

// ListForProfile 用户发表的文章，或 favourites=true 时用户收藏的文章
func (r *ArticleRepository) ListForProfile(ctx context.Context, userID string, favourites bool, viewerID string) ([]articleRow, error) {
	query := r.previewQuery(ctx, viewerID, false)

	if favourites {
		query = query.Where("EXISTS(SELECT 1 FROM fav_articles fa WHERE fa.article_id = a.id AND fa.user_id = ?)", userID)
	} else {
		query = query.Where("a.author_id = ?", userID)
	}

	var rows []articleRow
	err := query.Order("a.created_at DESC").Scan(&rows).Error
	return rows, err
}

// GetBySlug 不存在时返回 gorm.ErrRecordNotFound
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug, viewerID string) (*articleRow, error) {
	var rows []articleRow
	if err := r.previewQuery(ctx, viewerID, true).Where("a.slug = ?", slug).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// FindBySlug 只查文章表
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	var art article.Article
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&art).Error
	return &art, err
}

func (r *ArticleRepository) Create(ctx context.Context, art *article.Article) error {
	return r.db.WithContext(ctx).Create(art).Error
}

// UpdateOwned 按 slug 和作者更新，返回受影响行数
func (r *ArticleRepository) UpdateOwned(ctx context.Context, slug, authorID string, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).Model(&article.Article{}).
		Where("slug = ? AND author_id = ?", slug, authorID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteOwned 删除文章及其标签关联、收藏与评论，返回文章表受影响行数
func (r *ArticleRepository) DeleteOwned(ctx context.Context, articleID, authorID string) (int64, error) {
	db := r.db.WithContext(ctx)
	if err := db.Where("article_id = ?", articleID).Delete(&article.ArticleTag{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("article_id = ?", articleID).Delete(&article.Favorite{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("article_id = ?", articleID).Delete(&comment.Comment{}).Error; err != nil {
		return 0, err
	}

	result := db.Where("id = ? AND author_id = ?", articleID, authorID).Delete(&article.Article{})
	return result.RowsAffected, result.Error
}

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// FindOrCreateTag 查找或创建标签
func (r *TagRepository) FindOrCreateTag(ctx context.Context, name string) (*article.Tag, error) {
	tag := article.Tag{Name: name}
	err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// AddArticleTag 添加文章标签关联
func (r *TagRepository) AddArticleTag(ctx context.Context, articleID string, tagID uint) error {
	return r.db.WithContext(ctx).Create(&article.ArticleTag{
		ArticleID: articleID,
		TagID:     tagID,
	}).Error
}

// RemoveArticleTags 移除文章的所有标签
func (r *TagRepository) RemoveArticleTags(ctx context.Context, articleID string) error {
	return r.db.WithContext(ctx).Where("article_id = ?", articleID).Delete(&article.ArticleTag{}).Error
}

// SetArticleTags 用 names 替换文章的标签
func (r *TagRepository) SetArticleTags(ctx context.Context, articleID string, names []string) error {
	if err := r.RemoveArticleTags(ctx, articleID); err != nil {
		return err
	}
	for _, name := range names {
		tag, err := r.FindOrCreateTag(ctx, name)
		if err != nil {
			return err
		}
		if err := r.AddArticleTag(ctx, articleID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// TagsForArticles 批量取标签，按标签名排序
func (r *TagRepository) TagsForArticles(ctx context.Context, articleIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(articleIDs))
	if len(articleIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ArticleID string
		Name      string
	}
	err := r.db.WithContext(ctx).
		Table("article_tags AS at").
		Select("at.article_id, t.name").
		Joins("JOIN tags t ON t.id = at.tag_id").
		Where("at.article_id IN ?", articleIDs).
		Order("t.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ArticleID] = append(out[row.ArticleID], row.Name)
	}
	return out, nil
}

// Popular 按文章数排序的前 limit 个标签，同数按名称
func (r *TagRepository) Popular(ctx context.Context, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("tags AS t").
		Joins("JOIN article_tags at ON at.tag_id = t.id").
		Group("t.id, t.name").
		Order("COUNT(*) DESC, t.name ASC").
		Limit(limit).
		Pluck("t.name", &names).Error
	return names, err
}
