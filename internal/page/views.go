package page

import (
	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/comment"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/user"
)

// base 所有页面共享：标题、导航用的当前用户、表单错误
type base struct {
	Title       string
	CurrentUser *userModel.User
	Error       string
}

type tagLink struct {
	Name string
	URL  string
}

type homeView struct {
	base
	Articles  []article.ArticleResponse
	Tags      []tagLink
	ActiveTag string
	MyFeed    bool
	GlobalURL string
	FeedURL   string
	Previous  string
	Next      string
}

type loginView struct {
	base
	Email string
}

type signupView struct {
	base
	Name  string
	Email string
}

type settingsView struct {
	base
	Form user.SettingsRequest
	// 未启用 Redis 时 ShowSessions 为 false
	ShowSessions bool
	SessionCount int
}

type editorView struct {
	base
	Slug string // 为空表示新建
	Form article.EditorRequest
}

type articleView struct {
	base
	Article  *article.ArticleResponse
	Comments []comment.CommentResponse
	IsAuthor bool
}

type profileView struct {
	base
	Profile    *user.ProfileResponse
	Articles   []article.ArticleResponse
	Favourites bool
	IsSelf     bool
}

type errorView struct {
	base
	Status int
}
