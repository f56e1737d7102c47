package article

// AuthorPreview 文章作者摘要
type AuthorPreview struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// ArticleResponse 文章摘要（列表）或全文（详情，带 body）
type ArticleResponse struct {
	ID             string        `json:"id"`
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Body           *string       `json:"body,omitempty"`
	CoverImage     string        `json:"cover_image,omitempty"`
	ReadingTime    int           `json:"reading_time,omitempty"`
	CreatedAt      string        `json:"created_at" example:"17/10/2026 09:30"`
	FavoritesCount int64         `json:"favorites_count"`
	Fav            bool          `json:"fav"`
	TagList        []string      `json:"tag_list"`
	Author         AuthorPreview `json:"author"`
}

// ArticleListResponse 首页列表
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Previous string            `json:"previous" example:"/"`
	Next     string            `json:"next" example:"/?page=1"`
}

// EditorRequest 新建/编辑文章；tag_list 为空白分隔的标签
type EditorRequest struct {
	Title       string `json:"title" form:"title" example:"How to train your dragon"`
	Description string `json:"description" form:"description" example:"Ever wonder how?"`
	Body        string `json:"body" form:"body" example:"You have to believe"`
	TagList     string `json:"tag_list" form:"tag_list" example:"dragons training"`
}

// EditorResponse 保存结果
type EditorResponse struct {
	Slug string `json:"slug" example:"how-to-train-your-dragon"`
}

// TagsResponse 热门标签
type TagsResponse struct {
	Tags []string `json:"tags"`
}
