package seed

// ListedArticle /articles/latest 列表项，只用到 id 与作者
type ListedArticle struct {
	ID   int     `json:"id"`
	User DevUser `json:"user"`
}

// DevUser dev.to 作者信息
type DevUser struct {
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Summary      *string `json:"summary"`
	ProfileImage *string `json:"profile_image"`
}

// ArticleDetail /articles/{id} 详情
type ArticleDetail struct {
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	Tags               []string `json:"tags"`
	Description        string   `json:"description"`
	BodyHTML           *string  `json:"body_html"`
	CoverImage         *string  `json:"cover_image"`
	ReadingTimeMinutes *int     `json:"reading_time_minutes"`
	User               DevUser  `json:"user"`
}

// Options 一次导入的范围
type Options struct {
	Pages   int
	PerPage int
}

// Summary 导入结果统计
type Summary struct {
	UsersCreated    int `json:"users_created"`
	UsersExisting   int `json:"users_existing"`
	ArticlesCreated int `json:"articles_created"`
	ArticlesSkipped int `json:"articles_skipped"`
	Failures        int `json:"failures"`
}
