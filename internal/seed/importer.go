// Package seed 从 dev.to 拉取文章与作者写入本地数据库
package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/metrics"
	articleModel "terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/packages/database"
)

const (
	// 导入用户统一使用的初始密码
	defaultPassword      = "defaultpassword"
	descriptionMaxLength = 200
)

type Importer struct {
	db      *gorm.DB
	client  *Client
	log     *zap.Logger
	metrics *metrics.Collector
}

func NewImporter(db *gorm.DB, client *Client, log *zap.Logger) *Importer {
	return &Importer{db: db, client: client, log: log, metrics: metrics.Default}
}

// Run 逐页导入；单篇失败只记日志，ctx 取消时返回已完成部分的统计
func (im *Importer) Run(ctx context.Context, opts Options) (*Summary, error) {
	summary := &Summary{}

	for page := 1; page <= opts.Pages; page++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		listed, err := im.client.ListLatest(ctx, page, opts.PerPage)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			im.log.Error("fetch article list failed", zap.Int("page", page), zap.Error(err))
			summary.Failures++
			continue
		}
		im.log.Debug("fetched article list", zap.Int("page", page), zap.Int("count", len(listed)))

		for _, item := range listed {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			im.importOne(ctx, item, summary)
		}
	}

	return summary, nil
}

func (im *Importer) importOne(ctx context.Context, item ListedArticle, summary *Summary) {
	detail, err := im.client.Article(ctx, item.ID)
	if err != nil {
		im.log.Error("fetch article detail failed", zap.Int("id", item.ID), zap.Error(err))
		summary.Failures++
		return
	}

	authorID, created, err := im.ensureAuthor(ctx, item.User)
	if err != nil {
		im.log.Warn("user creation failed", zap.String("username", item.User.Username), zap.Error(err))
		im.metrics.SeedImport("user", "failed")
		summary.Failures++
		return
	}
	if created {
		summary.UsersCreated++
		im.metrics.SeedImport("user", "created")
	} else {
		summary.UsersExisting++
		im.metrics.SeedImport("user", "existing")
	}

	inserted, err := im.insertArticle(ctx, authorID, detail)
	switch {
	case err != nil:
		im.log.Warn("article creation failed", zap.String("slug", detail.Slug), zap.Error(err))
		im.metrics.SeedImport("article", "failed")
		summary.Failures++
	case !inserted:
		im.log.Warn("article already exists, skipping", zap.String("slug", detail.Slug))
		im.metrics.SeedImport("article", "skipped")
		summary.ArticlesSkipped++
	default:
		im.log.Info("article created", zap.String("slug", detail.Slug))
		im.metrics.SeedImport("article", "created")
		summary.ArticlesCreated++
	}
}

// ensureAuthor 按 <username>@example.com 建用户，邮箱冲突时复用已有用户
func (im *Importer) ensureAuthor(ctx context.Context, dev DevUser) (string, bool, error) {
	email := pkg.NormalizeEmail(dev.Username + "@example.com")

	username, err := pkg.GenerateUsername(dev.Name)
	if err != nil {
		return "", false, err
	}
	hashed, err := pkg.HashPassword(defaultPassword)
	if err != nil {
		return "", false, err
	}

	u := &user.User{
		Name:         dev.Name,
		Username:     username,
		Email:        email,
		EmailHash:    pkg.HashEmail(email),
		PasswordHash: hashed,
		Bio:          nonEmpty(dev.Summary),
		Image:        nonEmpty(dev.ProfileImage),
	}
	err = database.TranslateError(im.db.WithContext(ctx).Create(u).Error)
	if err == nil {
		return u.ID, true, nil
	}
	if !errors.Is(err, database.ErrDuplicate) {
		return "", false, err
	}

	var existing user.User
	if err := im.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&existing).Error; err != nil {
		return "", false, err
	}
	return existing.ID, false, nil
}

// insertArticle 返回 false 表示 slug 已存在
func (im *Importer) insertArticle(ctx context.Context, authorID string, d *ArticleDetail) (bool, error) {
	body := deref(d.BodyHTML)
	description := strings.TrimSpace(d.Description)
	if description == "" {
		description = PlainTextPrefix(body, descriptionMaxLength)
	}

	art := &articleModel.Article{
		Slug:        d.Slug,
		Title:       d.Title,
		Description: description,
		Body:        body,
		AuthorID:    authorID,
		CoverImage:  deref(d.CoverImage),
	}
	if d.ReadingTimeMinutes != nil {
		art.ReadingTime = *d.ReadingTimeMinutes
	}

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(art).Error; err != nil {
			return err
		}
		return article.NewTagRepository(tx).SetArticleTags(ctx, art.ID, article.ParseTags(strings.Join(d.Tags, " ")))
	})
	if err != nil {
		if errors.Is(database.TranslateError(err), database.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PlainTextPrefix 去掉 HTML 标签，压缩空白后截取前 n 个字符
func PlainTextPrefix(html string, n int) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	text := []rune(strings.Join(strings.Fields(doc.Text()), " "))
	if len(text) > n {
		text = text[:n]
	}
	return string(text)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
