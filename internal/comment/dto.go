package comment

// ========== 请求 DTO ==========

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Body string `json:"body" form:"body" binding:"max=5000" example:"Great read!"` // 评论内容
}

// ========== 响应 DTO ==========

// CommentResponse 评论响应（附带作者信息）
type CommentResponse struct {
	ID        string  `json:"id"`
	ArticleID string  `json:"article_id"`
	UserID    string  `json:"user_id"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"created_at" example:"17/10/2026 09:30"`
	UserImage *string `json:"user_image"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
}
