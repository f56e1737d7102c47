package comment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model"
	commentModel "terminal-terrace/conduit/internal/model/comment"
	"terminal-terrace/conduit/packages/database"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrArticleNotFound = errors.New("article not found")
	ErrEmptyComment    = errors.New("comment cannot be empty")
	ErrUserNotFound    = errors.New("user not found")
)

// CommentService 评论服务接口
type CommentService interface {
	// 获取文章的所有评论（按时间升序）
	ListByArticle(ctx context.Context, slug string) ([]CommentResponse, error)

	// 发表评论
	Create(ctx context.Context, slug, userID string, req *CreateCommentRequest) (*CommentResponse, error)

	// 删除自己在该文章下的评论
	Delete(ctx context.Context, slug, commentID, userID string) error
}

type commentService struct {
	repo CommentRepository
}

// NewCommentService 创建服务实例
func NewCommentService(repo CommentRepository) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) articleID(ctx context.Context, slug string) (string, error) {
	id, err := s.repo.FindArticleIDBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrArticleNotFound
	}
	return id, err
}

func (s *commentService) ListByArticle(ctx context.Context, slug string) ([]CommentResponse, error) {
	articleID, err := s.articleID(ctx, slug)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	out := make([]CommentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, nil
}

func (s *commentService) Create(ctx context.Context, slug, userID string, req *CreateCommentRequest) (*CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyComment
	}

	articleID, err := s.articleID(ctx, slug)
	if err != nil {
		return nil, err
	}

	c := &commentModel.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Body:      body,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	resp := toResponse(*row)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, slug, commentID, userID string) error {
	articleID, err := s.articleID(ctx, slug)
	if err != nil {
		return err
	}

	rows, err := s.repo.DeleteOwned(ctx, commentID, articleID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func toResponse(row commentRow) CommentResponse {
	return CommentResponse{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		UserID:    row.UserID,
		Body:      row.Body,
		CreatedAt: row.CreatedAt.Format(model.DateFormat),
		UserImage: row.UserImage,
		Username:  row.Username,
		Name:      row.Name,
	}
}
