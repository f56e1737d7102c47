package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model"
	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/pagination"
	"terminal-terrace/conduit/packages/database"
	"terminal-terrace/conduit/packages/response"
)

const (
	titleMinLength       = 4
	descriptionMinLength = 4
	bodyMinLength        = 10

	popularTagLimit = 10
)

// ArticleService 文章业务
type ArticleService struct {
	db    *gorm.DB
	cache TagCache
}

func NewArticleService(db *gorm.DB, cache TagCache) *ArticleService {
	if cache == nil {
		cache = noopCache{}
	}
	return &ArticleService{db: db, cache: cache}
}

func notFound() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("Article not found"),
	)
}

func invalid(msg string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage(msg),
	)
}

// List 首页文章列表
func (s *ArticleService) List(ctx context.Context, p pagination.Pagination, viewerID string) ([]ArticleResponse, *response.BusinessError) {
	if p.MyFeed && viewerID == "" {
		return []ArticleResponse{}, nil
	}

	rows, err := NewArticleRepository(s.db).ListHome(ctx, p, viewerID)
	if err != nil {
		return nil, response.Internal(err)
	}
	return s.toResponses(ctx, rows, false)
}

// ListForProfile 个人主页文章列表
func (s *ArticleService) ListForProfile(ctx context.Context, userID string, favourites bool, viewerID string) ([]ArticleResponse, *response.BusinessError) {
	rows, err := NewArticleRepository(s.db).ListForProfile(ctx, userID, favourites, viewerID)
	if err != nil {
		return nil, response.Internal(err)
	}
	return s.toResponses(ctx, rows, false)
}

// Get 文章详情（含正文）
func (s *ArticleService) Get(ctx context.Context, slug, viewerID string) (*ArticleResponse, *response.BusinessError) {
	row, err := NewArticleRepository(s.db).GetBySlug(ctx, slug, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, response.Internal(err)
	}

	out, bizErr := s.toResponses(ctx, []articleRow{*row}, true)
	if bizErr != nil {
		return nil, bizErr
	}
	return &out[0], nil
}

// PopularTags 热门标签，优先读缓存
func (s *ArticleService) PopularTags(ctx context.Context) ([]string, *response.BusinessError) {
	if tags, ok := s.cache.Get(ctx); ok {
		return tags, nil
	}

	tags, err := NewTagRepository(s.db).Popular(ctx, popularTagLimit)
	if err != nil {
		return nil, response.Internal(err)
	}
	if tags == nil {
		tags = []string{}
	}
	s.cache.Set(ctx, tags)
	return tags, nil
}

func (s *ArticleService) toResponses(ctx context.Context, rows []articleRow, withBody bool) ([]ArticleResponse, *response.BusinessError) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	tags, err := NewTagRepository(s.db).TagsForArticles(ctx, ids)
	if err != nil {
		return nil, response.Internal(err)
	}

	out := make([]ArticleResponse, 0, len(rows))
	for _, row := range rows {
		resp := ArticleResponse{
			ID:             row.ID,
			Slug:           row.Slug,
			Title:          row.Title,
			Description:    row.Description,
			CoverImage:     row.CoverImage,
			ReadingTime:    row.ReadingTime,
			CreatedAt:      row.CreatedAt.Format(model.DateFormat),
			FavoritesCount: row.FavoritesCount,
			Fav:            row.Fav,
			TagList:        tags[row.ID],
			Author: AuthorPreview{
				UserID:    row.AuthorID,
				Username:  row.Username,
				Name:      row.Name,
				Image:     row.Image,
				Following: row.Following,
			},
		}
		if resp.TagList == nil {
			resp.TagList = []string{}
		}
		if withBody {
			body := row.Body
			resp.Body = &body
		}
		out = append(out, resp)
	}
	return out, nil
}

// articleUpdate 校验后的编辑内容
type articleUpdate struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Tags        []string
}

// validateArticle 标题/摘要/正文长度校验，slug 由标题生成
func validateArticle(req EditorRequest) (*articleUpdate, error) {
	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) < titleMinLength {
		return nil, fmt.Errorf("Title must be at least %d characters", titleMinLength)
	}
	if utf8.RuneCountInString(req.Description) < descriptionMinLength {
		return nil, fmt.Errorf("Description must be at least %d characters", descriptionMinLength)
	}
	if utf8.RuneCountInString(req.Body) < bodyMinLength {
		return nil, fmt.Errorf("Body must be at least %d characters", bodyMinLength)
	}

	slug := Slugify(title)
	if strings.Trim(slug, "-") == "" {
		return nil, errors.New("Title must contain at least one letter or number")
	}

	return &articleUpdate{
		Slug:        slug,
		Title:       title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        ParseTags(req.TagList),
	}, nil
}

func slugConflict(err error) *response.BusinessError {
	if column, ok := database.DuplicateColumn(err); ok && (column == "slug" || column == "") {
		return response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("An article with this title already exists"),
			response.WithError(err),
		)
	}
	return response.Internal(err)
}

// Create 新建文章，返回 slug
func (s *ArticleService) Create(ctx context.Context, authorID string, req EditorRequest) (string, *response.BusinessError) {
	update, err := validateArticle(req)
	if err != nil {
		return "", invalid(err.Error())
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		art := &article.Article{
			Slug:        update.Slug,
			Title:       update.Title,
			Description: update.Description,
			Body:        update.Body,
			AuthorID:    authorID,
		}
		if err := NewArticleRepository(tx).Create(ctx, art); err != nil {
			return err
		}
		return NewTagRepository(tx).SetArticleTags(ctx, art.ID, update.Tags)
	})
	if err != nil {
		return "", slugConflict(err)
	}

	s.cache.Invalidate(ctx)
	return update.Slug, nil
}

// Update 只能修改自己的文章，slug 随标题重新生成
func (s *ArticleService) Update(ctx context.Context, authorID, slug string, req EditorRequest) (string, *response.BusinessError) {
	update, err := validateArticle(req)
	if err != nil {
		return "", invalid(err.Error())
	}

	var bizErr *response.BusinessError
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewArticleRepository(tx)

		existing, err := repo.FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				bizErr = notFound()
			}
			return err
		}
		if existing.AuthorID != authorID {
			bizErr = response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("You can only edit your own articles"),
			)
			return errors.New("not the author")
		}

		rows, err := repo.UpdateOwned(ctx, slug, authorID, map[string]any{
			"slug":        update.Slug,
			"title":       update.Title,
			"description": update.Description,
			"body":        update.Body,
		})
		if err != nil {
			return err
		}
		if rows != 1 {
			bizErr = notFound()
			return fmt.Errorf("expected 1 row affected, got %d", rows)
		}

		return NewTagRepository(tx).SetArticleTags(ctx, existing.ID, update.Tags)
	})
	if bizErr != nil {
		return "", bizErr
	}
	if err != nil {
		return "", slugConflict(err)
	}

	s.cache.Invalidate(ctx)
	return update.Slug, nil
}

// Delete 只能删除自己的文章
func (s *ArticleService) Delete(ctx context.Context, authorID, slug string) *response.BusinessError {
	var rows int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewArticleRepository(tx)

		existing, err := repo.FindBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if existing.AuthorID != authorID {
			return nil
		}

		rows, err = repo.DeleteOwned(ctx, existing.ID, authorID)
		return err
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.Internal(err)
	}
	if rows == 0 {
		return notFound()
	}

	s.cache.Invalidate(ctx)
	return nil
}
